package services

import (
	"context"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/propertyops/property_billing_app/internal/dto"
)

// TenantBalanceSvcFacade derives and persists per-month owed/paid snapshots
// for tenancies.
type TenantBalanceSvcFacade interface {
	// UpdateBalanceSheetForMonth fetches or creates the tenancy's balance
	// sheet row for the month. An existing row is returned unchanged unless
	// allowUpdate is set; past months stay frozen.
	UpdateBalanceSheetForMonth(ctx context.Context, tenancyID string, month domain.Month, allowUpdate bool) (*domain.TenantBalanceSheet, error)

	// UpdateAllMissingMonths backfills balance sheet rows for every month
	// referenced by the tenancy's payslips, payments or the property's
	// forecasts, up to and including the current month. The current month is
	// always recomputed; existing past rows are left untouched; future
	// months are never created.
	UpdateAllMissingMonths(ctx context.Context, tenancyID string) ([]domain.TenantBalanceSheet, error)

	// ListBalanceSheets retrieves the tenancy's balance sheet rows, most
	// recent month first.
	ListBalanceSheets(ctx context.Context, tenancyID string) ([]domain.TenantBalanceSheet, error)
}

// ProviderBalanceSvcFacade mirrors TenantBalanceSvcFacade at the utility
// provider level.
type ProviderBalanceSvcFacade interface {
	// UpdateBalanceSheetForMonth fetches or creates the provider's balance
	// sheet row for the month, under the same freeze rules as the tenant
	// side.
	UpdateBalanceSheetForMonth(ctx context.Context, providerID string, month domain.Month, allowUpdate bool) (*domain.UtilityProviderBalanceSheet, error)

	// UpdateAllMissingMonths backfills rows for every month referenced by
	// the provider's forecast line items or payments, up to and including
	// the current month.
	UpdateAllMissingMonths(ctx context.Context, providerID string) ([]domain.UtilityProviderBalanceSheet, error)

	// ListBalanceSheets retrieves the provider's balance sheet rows, most
	// recent month first.
	ListBalanceSheets(ctx context.Context, providerID string) ([]domain.UtilityProviderBalanceSheet, error)
}

// ReconciliationSvcFacade runs the balance sheet batch across whole
// properties.
type ReconciliationSvcFacade interface {
	// ReconcileProperty runs UpdateAllMissingMonths for every tenancy and
	// every provider of the property. Idempotent.
	ReconcileProperty(ctx context.Context, propertyID string) (*dto.ReconcileSummary, error)
}
