package services

// ServiceContainer holds all the services needed by the handlers layer.
type ServiceContainer struct {
	Property        PropertySvcFacade
	Tenancy         TenancySvcFacade
	Provider        UtilityProviderSvcFacade
	Forecast        ForecastSvcFacade
	Payslip         PayslipSvcFacade
	Payment         PaymentSvcFacade
	TenantBalance   TenantBalanceSvcFacade
	ProviderBalance ProviderBalanceSvcFacade
	Reconciliation  ReconciliationSvcFacade
}
