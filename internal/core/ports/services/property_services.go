package services

import (
	"context"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/propertyops/property_billing_app/internal/dto"
)

// PropertySvcFacade defines operations on properties.
type PropertySvcFacade interface {
	// CreateProperty persists a new property.
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error)

	// GetPropertyByID retrieves a specific property.
	GetPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// ListProperties retrieves all properties.
	ListProperties(ctx context.Context) ([]domain.Property, error)

	// UpdateProperty updates property details.
	UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest) (*domain.Property, error)

	// DeleteProperty removes a property and everything it owns.
	DeleteProperty(ctx context.Context, propertyID string) error
}

// TenancySvcFacade defines operations on tenancies.
type TenancySvcFacade interface {
	// CreateTenancy persists a new tenancy under a property.
	CreateTenancy(ctx context.Context, propertyID string, req dto.CreateTenancyRequest) (*domain.PropertyTenant, error)

	// GetTenancyByID retrieves a specific tenancy.
	GetTenancyByID(ctx context.Context, tenancyID string) (*domain.PropertyTenant, error)

	// ListTenanciesByProperty retrieves all tenancies of a property.
	ListTenanciesByProperty(ctx context.Context, propertyID string) ([]domain.PropertyTenant, error)

	// UpdateTenancy updates tenancy details, including the live rent amount.
	UpdateTenancy(ctx context.Context, tenancyID string, req dto.UpdateTenancyRequest) (*domain.PropertyTenant, error)

	// DeleteTenancy removes a tenancy and everything it owns.
	DeleteTenancy(ctx context.Context, tenancyID string) error
}

// UtilityProviderSvcFacade defines operations on utility providers.
type UtilityProviderSvcFacade interface {
	// CreateProvider persists a new provider under a property.
	CreateProvider(ctx context.Context, propertyID string, req dto.CreateProviderRequest) (*domain.UtilityProvider, error)

	// GetProviderByID retrieves a specific provider.
	GetProviderByID(ctx context.Context, providerID string) (*domain.UtilityProvider, error)

	// ListProvidersByProperty retrieves all providers of a property in
	// persisted order.
	ListProvidersByProperty(ctx context.Context, propertyID string) ([]domain.UtilityProvider, error)

	// UpdateProvider updates provider details, including the forecast
	// expiration behavior.
	UpdateProvider(ctx context.Context, providerID string, req dto.UpdateProviderRequest) (*domain.UtilityProvider, error)

	// DeleteProvider removes a provider and everything it owns.
	DeleteProvider(ctx context.Context, providerID string) error
}
