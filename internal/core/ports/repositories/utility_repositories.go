package repositories

import (
	"context"

	"github.com/propertyops/property_billing_app/internal/core/domain"
)

// UtilityProviderReader defines read operations for utility provider data.
type UtilityProviderReader interface {
	// FindProviderByID retrieves a specific provider by its unique identifier.
	FindProviderByID(ctx context.Context, providerID string) (*domain.UtilityProvider, error)

	// ListProvidersByProperty retrieves all providers of a property in their
	// persisted (creation) order. The payslip generator relies on this
	// ordering being stable.
	ListProvidersByProperty(ctx context.Context, propertyID string) ([]domain.UtilityProvider, error)
}

// UtilityProviderWriter defines write operations for utility provider data.
type UtilityProviderWriter interface {
	// SaveProvider persists a new provider.
	SaveProvider(ctx context.Context, provider domain.UtilityProvider) error

	// UpdateProvider updates an existing provider.
	UpdateProvider(ctx context.Context, provider domain.UtilityProvider) error

	// DeleteProvider removes a provider; forecasts, payments and balance
	// sheets cascade.
	DeleteProvider(ctx context.Context, providerID string) error
}

// UtilityProviderRepositoryFacade combines all provider-related repository
// interfaces.
type UtilityProviderRepositoryFacade interface {
	UtilityProviderReader
	UtilityProviderWriter
}
