package repositories

import (
	"context"

	"github.com/propertyops/property_billing_app/internal/core/domain"
)

// TenantBalanceSheetReader defines read operations for tenant balance sheets.
type TenantBalanceSheetReader interface {
	// FindTenantBalanceSheet retrieves the tenancy's balance sheet row for
	// the given month. Returns apperrors.ErrNotFound when none exists.
	FindTenantBalanceSheet(ctx context.Context, tenancyID string, month domain.Month) (*domain.TenantBalanceSheet, error)

	// ListTenantBalanceSheets retrieves all balance sheet rows of a tenancy,
	// most recent month first.
	ListTenantBalanceSheets(ctx context.Context, tenancyID string) ([]domain.TenantBalanceSheet, error)
}

// TenantBalanceSheetWriter defines write operations for tenant balance sheets.
type TenantBalanceSheetWriter interface {
	// UpsertTenantBalanceSheet creates or replaces the row keyed by
	// (tenancy, month) in a single statement, so concurrent reconcile runs
	// serialize on the unique constraint instead of racing.
	UpsertTenantBalanceSheet(ctx context.Context, sheet domain.TenantBalanceSheet) error
}

// TenantBalanceSheetRepositoryFacade combines tenant balance sheet interfaces.
type TenantBalanceSheetRepositoryFacade interface {
	TenantBalanceSheetReader
	TenantBalanceSheetWriter
}

// ProviderBalanceSheetReader defines read operations for provider balance
// sheets.
type ProviderBalanceSheetReader interface {
	// FindProviderBalanceSheet retrieves the provider's balance sheet row
	// for the given month. Returns apperrors.ErrNotFound when none exists.
	FindProviderBalanceSheet(ctx context.Context, providerID string, month domain.Month) (*domain.UtilityProviderBalanceSheet, error)

	// ListProviderBalanceSheets retrieves all balance sheet rows of a
	// provider, most recent month first.
	ListProviderBalanceSheets(ctx context.Context, providerID string) ([]domain.UtilityProviderBalanceSheet, error)
}

// ProviderBalanceSheetWriter defines write operations for provider balance
// sheets.
type ProviderBalanceSheetWriter interface {
	// UpsertProviderBalanceSheet creates or replaces the row keyed by
	// (provider, month) in a single statement.
	UpsertProviderBalanceSheet(ctx context.Context, sheet domain.UtilityProviderBalanceSheet) error
}

// ProviderBalanceSheetRepositoryFacade combines provider balance sheet
// interfaces.
type ProviderBalanceSheetRepositoryFacade interface {
	ProviderBalanceSheetReader
	ProviderBalanceSheetWriter
}
