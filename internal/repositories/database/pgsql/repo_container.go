package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PropertyRepo:             newPgxPropertyRepository(dbPool),
		TenancyRepo:              newPgxTenancyRepository(dbPool),
		ProviderRepo:             newPgxProviderRepository(dbPool),
		ForecastRepo:             newPgxForecastRepository(dbPool),
		PayslipRepo:              newPgxPayslipRepository(dbPool),
		TenantPaymentRepo:        newPgxTenantPaymentRepository(dbPool),
		UtilityPaymentRepo:       newPgxUtilityPaymentRepository(dbPool),
		TenantBalanceSheetRepo:   newPgxTenantBalanceSheetRepository(dbPool),
		ProviderBalanceSheetRepo: newPgxProviderBalanceSheetRepository(dbPool),
	}
}
