package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propertyops/property_billing_app/internal/apperrors"
	portssvc "github.com/propertyops/property_billing_app/internal/core/ports/services"
	"github.com/propertyops/property_billing_app/internal/dto"
	"github.com/propertyops/property_billing_app/internal/middleware"
)

// providerHandler handles HTTP requests related to utility providers and the
// provider-side resources nested under them.
type providerHandler struct {
	providerService portssvc.UtilityProviderSvcFacade
	forecastService portssvc.ForecastSvcFacade
	paymentService  portssvc.PaymentSvcFacade
	balanceService  portssvc.ProviderBalanceSvcFacade
}

// newProviderHandler creates a new providerHandler.
func newProviderHandler(
	ps portssvc.UtilityProviderSvcFacade,
	fs portssvc.ForecastSvcFacade,
	pay portssvc.PaymentSvcFacade,
	bs portssvc.ProviderBalanceSvcFacade,
) *providerHandler {
	return &providerHandler{
		providerService: ps,
		forecastService: fs,
		paymentService:  pay,
		balanceService:  bs,
	}
}

// registerProviderRoutes registers provider routes plus the forecast, payment
// and balance sheet routes nested under a provider.
func registerProviderRoutes(
	rg *gin.RouterGroup,
	providerService portssvc.UtilityProviderSvcFacade,
	forecastService portssvc.ForecastSvcFacade,
	paymentService portssvc.PaymentSvcFacade,
	balanceService portssvc.ProviderBalanceSvcFacade,
) {
	h := newProviderHandler(providerService, forecastService, paymentService, balanceService)

	properties := rg.Group("/properties/:property_id")
	{
		properties.POST("/providers", h.createProvider)
		properties.GET("/providers", h.listProviders)
	}

	providers := rg.Group("/providers/:provider_id")
	{
		providers.GET("", h.getProvider)
		providers.PUT("", h.updateProvider)
		providers.DELETE("", h.deleteProvider)

		providers.POST("/forecasts", h.createForecast)
		providers.GET("/forecasts", h.listForecasts)

		providers.POST("/payments", h.createPayment)
		providers.GET("/payments", h.listPayments)

		providers.GET("/balance-sheets", h.listBalanceSheets)
		providers.POST("/balance-sheets/reconcile", h.reconcile)
	}
}

func (h *providerHandler) createProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")

	var req dto.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProvider", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	provider, err := h.providerService.CreateProvider(c.Request.Context(), propertyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Provider with this name already exists for the property"})
		} else {
			logger.Error("Failed to create provider", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create provider"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProviderResponse(provider))
}

func (h *providerHandler) listProviders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")

	providers, err := h.providerService.ListProvidersByProperty(c.Request.Context(), propertyID)
	if err != nil {
		logger.Error("Failed to list providers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list providers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProviderResponse(providers))
}

func (h *providerHandler) getProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("provider_id")

	provider, err := h.providerService.GetProviderByID(c.Request.Context(), providerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		} else {
			logger.Error("Failed to get provider", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve provider"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProviderResponse(provider))
}

func (h *providerHandler) updateProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("provider_id")

	var req dto.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProvider", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	provider, err := h.providerService.UpdateProvider(c.Request.Context(), providerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Provider with this name already exists for the property"})
		} else {
			logger.Error("Failed to update provider", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update provider"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProviderResponse(provider))
}

func (h *providerHandler) deleteProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("provider_id")

	if err := h.providerService.DeleteProvider(c.Request.Context(), providerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		} else {
			logger.Error("Failed to delete provider", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete provider"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *providerHandler) createForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("provider_id")

	var req dto.CreateForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateForecast", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	forecast, err := h.forecastService.CreateForecast(c.Request.Context(), providerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create forecast", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create forecast"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToForecastResponse(forecast))
}

func (h *providerHandler) listForecasts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("provider_id")

	forecasts, err := h.forecastService.ListForecastsByProvider(c.Request.Context(), providerID)
	if err != nil {
		logger.Error("Failed to list forecasts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list forecasts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListForecastResponse(forecasts))
}

func (h *providerHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("provider_id")

	var req dto.CreateUtilityPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateUtilityPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.CreateUtilityPayment(c.Request.Context(), providerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Payment already recorded for this month"})
		} else {
			logger.Error("Failed to create utility payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUtilityPaymentResponse(payment))
}

func (h *providerHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("provider_id")

	payments, err := h.paymentService.ListUtilityPayments(c.Request.Context(), providerID)
	if err != nil {
		logger.Error("Failed to list utility payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListUtilityPaymentResponse(payments))
}

func (h *providerHandler) listBalanceSheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("provider_id")

	sheets, err := h.balanceService.ListBalanceSheets(c.Request.Context(), providerID)
	if err != nil {
		logger.Error("Failed to list balance sheets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balance sheets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProviderBalanceSheetResponse(sheets))
}

// reconcile backfills the provider's missing balance sheet months and
// recomputes the current one.
func (h *providerHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("provider_id")

	sheets, err := h.balanceService.UpdateAllMissingMonths(c.Request.Context(), providerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		} else {
			logger.Error("Failed to reconcile provider", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile balance sheets"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListProviderBalanceSheetResponse(sheets))
}
