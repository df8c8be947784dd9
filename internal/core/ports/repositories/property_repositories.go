package repositories

import (
	"context"

	"github.com/propertyops/property_billing_app/internal/core/domain"
)

// PropertyReader defines read operations for property data.
type PropertyReader interface {
	// FindPropertyByID retrieves a specific property by its unique identifier.
	FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// ListProperties retrieves all properties ordered by creation time.
	ListProperties(ctx context.Context) ([]domain.Property, error)
}

// PropertyWriter defines write operations for property data.
type PropertyWriter interface {
	// SaveProperty persists a new property.
	SaveProperty(ctx context.Context, property domain.Property) error

	// UpdateProperty updates an existing property.
	UpdateProperty(ctx context.Context, property domain.Property) error

	// DeleteProperty removes a property; providers, tenancies and their
	// dependents cascade.
	DeleteProperty(ctx context.Context, propertyID string) error
}

// PropertyRepositoryFacade combines all property-related repository interfaces.
type PropertyRepositoryFacade interface {
	PropertyReader
	PropertyWriter
}

// TenancyReader defines read operations for tenancy data.
type TenancyReader interface {
	// FindTenancyByID retrieves a specific tenancy by its unique identifier.
	FindTenancyByID(ctx context.Context, tenancyID string) (*domain.PropertyTenant, error)

	// ListTenanciesByProperty retrieves all tenancies of a property ordered
	// by creation time.
	ListTenanciesByProperty(ctx context.Context, propertyID string) ([]domain.PropertyTenant, error)
}

// TenancyWriter defines write operations for tenancy data.
type TenancyWriter interface {
	// SaveTenancy persists a new tenancy.
	SaveTenancy(ctx context.Context, tenancy domain.PropertyTenant) error

	// UpdateTenancy updates an existing tenancy.
	UpdateTenancy(ctx context.Context, tenancy domain.PropertyTenant) error

	// DeleteTenancy removes a tenancy; payslips, payments and balance
	// sheets cascade.
	DeleteTenancy(ctx context.Context, tenancyID string) error
}

// TenancyRepositoryFacade combines all tenancy-related repository interfaces.
type TenancyRepositoryFacade interface {
	TenancyReader
	TenancyWriter
}
