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

// forecastHandler handles HTTP requests addressing a forecast directly.
// Creation and listing live under the provider routes.
type forecastHandler struct {
	forecastService portssvc.ForecastSvcFacade
}

// newForecastHandler creates a new forecastHandler.
func newForecastHandler(fs portssvc.ForecastSvcFacade) *forecastHandler {
	return &forecastHandler{forecastService: fs}
}

// registerForecastRoutes registers routes addressing a forecast by ID.
func registerForecastRoutes(rg *gin.RouterGroup, forecastService portssvc.ForecastSvcFacade) {
	h := newForecastHandler(forecastService)

	forecasts := rg.Group("/forecasts")
	{
		forecasts.GET("/:forecast_id", h.getForecast)
		forecasts.PUT("/:forecast_id", h.updateForecast)
		forecasts.DELETE("/:forecast_id", h.deleteForecast)
	}
}

func (h *forecastHandler) getForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	forecastID := c.Param("forecast_id")

	forecast, err := h.forecastService.GetForecastByID(c.Request.Context(), forecastID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Forecast not found"})
		} else {
			logger.Error("Failed to get forecast", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve forecast"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToForecastResponse(forecast))
}

func (h *forecastHandler) updateForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	forecastID := c.Param("forecast_id")

	var req dto.UpdateForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateForecast", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	forecast, err := h.forecastService.UpdateForecast(c.Request.Context(), forecastID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Forecast not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update forecast", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update forecast"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToForecastResponse(forecast))
}

func (h *forecastHandler) deleteForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	forecastID := c.Param("forecast_id")

	if err := h.forecastService.DeleteForecast(c.Request.Context(), forecastID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Forecast not found"})
		} else {
			logger.Error("Failed to delete forecast", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete forecast"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
