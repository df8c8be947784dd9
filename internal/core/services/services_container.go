package services

import (
	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	portssvc "github.com/propertyops/property_billing_app/internal/core/ports/services"
	"github.com/propertyops/property_billing_app/internal/platform/config"
)

// NewServiceContainer wires every service with its repository dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	forecastSvc := NewForecastService(repos.ForecastRepo, repos.ProviderRepo)
	tenantBalanceSvc := NewTenantBalanceService(
		repos.TenancyRepo,
		repos.ProviderRepo,
		repos.PayslipRepo,
		repos.TenantPaymentRepo,
		repos.ForecastRepo,
		repos.TenantBalanceSheetRepo,
		cfg.Billing,
	)
	providerBalanceSvc := NewProviderBalanceService(
		repos.ProviderRepo,
		repos.ForecastRepo,
		repos.UtilityPaymentRepo,
		repos.ProviderBalanceSheetRepo,
		cfg.Billing,
	)

	return &portssvc.ServiceContainer{
		Property: NewPropertyService(repos.PropertyRepo),
		Tenancy:  NewTenancyService(repos.TenancyRepo, repos.PropertyRepo),
		Provider: NewProviderService(repos.ProviderRepo, repos.PropertyRepo),
		Forecast: forecastSvc,
		Payslip: NewPayslipService(
			repos.TenancyRepo,
			repos.ProviderRepo,
			repos.PayslipRepo,
			repos.TenantPaymentRepo,
			repos.ForecastRepo,
			forecastSvc,
			cfg.Billing,
		),
		Payment: NewPaymentService(
			repos.TenancyRepo,
			repos.ProviderRepo,
			repos.TenantPaymentRepo,
			repos.UtilityPaymentRepo,
		),
		TenantBalance:   tenantBalanceSvc,
		ProviderBalance: providerBalanceSvc,
		Reconciliation: NewReconciliationService(
			repos.PropertyRepo,
			repos.TenancyRepo,
			repos.ProviderRepo,
			tenantBalanceSvc,
			providerBalanceSvc,
		),
	}
}
