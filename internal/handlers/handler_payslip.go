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

// payslipHandler handles HTTP requests addressing a payslip directly.
// Preview, creation and listing live under the tenancy routes.
type payslipHandler struct {
	payslipService portssvc.PayslipSvcFacade
}

// newPayslipHandler creates a new payslipHandler.
func newPayslipHandler(ps portssvc.PayslipSvcFacade) *payslipHandler {
	return &payslipHandler{payslipService: ps}
}

// registerPayslipRoutes registers routes addressing a payslip by ID.
func registerPayslipRoutes(rg *gin.RouterGroup, payslipService portssvc.PayslipSvcFacade) {
	h := newPayslipHandler(payslipService)

	payslips := rg.Group("/payslips")
	{
		payslips.GET("/:payslip_id", h.getPayslip)
		payslips.DELETE("/:payslip_id", h.deletePayslip)
	}
}

func (h *payslipHandler) getPayslip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payslipID := c.Param("payslip_id")

	payslip, err := h.payslipService.GetPayslipByID(c.Request.Context(), payslipID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payslip not found"})
		} else {
			logger.Error("Failed to get payslip", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payslip"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPayslipResponse(payslip))
}

func (h *payslipHandler) deletePayslip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payslipID := c.Param("payslip_id")

	if err := h.payslipService.DeletePayslip(c.Request.Context(), payslipID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payslip not found"})
		} else {
			logger.Error("Failed to delete payslip", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payslip"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
