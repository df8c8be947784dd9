package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/propertyops/property_billing_app/internal/core/ports/services"
	"github.com/propertyops/property_billing_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerPropertyRoutes(v1, services.Property, services.Reconciliation)
	registerTenancyRoutes(v1, services.Tenancy, services.Payslip, services.Payment, services.TenantBalance)
	registerProviderRoutes(v1, services.Provider, services.Forecast, services.Payment, services.ProviderBalance)
	registerForecastRoutes(v1, services.Forecast)
	registerPayslipRoutes(v1, services.Payslip)
	registerPaymentRoutes(v1, services.Payment)
}
