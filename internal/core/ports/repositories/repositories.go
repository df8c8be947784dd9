package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PropertyRepo             PropertyRepositoryFacade
	TenancyRepo              TenancyRepositoryFacade
	ProviderRepo             UtilityProviderRepositoryFacade
	ForecastRepo             ForecastRepositoryFacade
	PayslipRepo              PayslipRepositoryFacade
	TenantPaymentRepo        TenantPaymentRepositoryFacade
	UtilityPaymentRepo       UtilityPaymentRepositoryFacade
	TenantBalanceSheetRepo   TenantBalanceSheetRepositoryFacade
	ProviderBalanceSheetRepo ProviderBalanceSheetRepositoryFacade
}
