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

// tenancyHandler handles HTTP requests related to tenancies and the
// tenant-side resources nested under them.
type tenancyHandler struct {
	tenancyService portssvc.TenancySvcFacade
	payslipService portssvc.PayslipSvcFacade
	paymentService portssvc.PaymentSvcFacade
	balanceService portssvc.TenantBalanceSvcFacade
}

// newTenancyHandler creates a new tenancyHandler.
func newTenancyHandler(
	ts portssvc.TenancySvcFacade,
	ps portssvc.PayslipSvcFacade,
	pay portssvc.PaymentSvcFacade,
	bs portssvc.TenantBalanceSvcFacade,
) *tenancyHandler {
	return &tenancyHandler{
		tenancyService: ts,
		payslipService: ps,
		paymentService: pay,
		balanceService: bs,
	}
}

// registerTenancyRoutes registers tenancy routes plus the payslip, payment
// and balance sheet routes nested under a tenancy.
func registerTenancyRoutes(
	rg *gin.RouterGroup,
	tenancyService portssvc.TenancySvcFacade,
	payslipService portssvc.PayslipSvcFacade,
	paymentService portssvc.PaymentSvcFacade,
	balanceService portssvc.TenantBalanceSvcFacade,
) {
	h := newTenancyHandler(tenancyService, payslipService, paymentService, balanceService)

	properties := rg.Group("/properties/:property_id")
	{
		properties.POST("/tenancies", h.createTenancy)
		properties.GET("/tenancies", h.listTenancies)
	}

	tenancies := rg.Group("/tenancies/:tenancy_id")
	{
		tenancies.GET("", h.getTenancy)
		tenancies.PUT("", h.updateTenancy)
		tenancies.DELETE("", h.deleteTenancy)

		tenancies.GET("/payslips/preview", h.previewPayslip)
		tenancies.POST("/payslips", h.createPayslip)
		tenancies.GET("/payslips", h.listPayslips)

		tenancies.POST("/payments", h.createPayment)
		tenancies.GET("/payments", h.listPayments)

		tenancies.GET("/balance-sheets", h.listBalanceSheets)
		tenancies.POST("/balance-sheets/reconcile", h.reconcile)
	}
}

func (h *tenancyHandler) createTenancy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")

	var req dto.CreateTenancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTenancy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenancy, err := h.tenancyService.CreateTenancy(c.Request.Context(), propertyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create tenancy", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tenancy"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTenancyResponse(tenancy))
}

func (h *tenancyHandler) listTenancies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")

	tenancies, err := h.tenancyService.ListTenanciesByProperty(c.Request.Context(), propertyID)
	if err != nil {
		logger.Error("Failed to list tenancies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tenancies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTenancyResponse(tenancies))
}

func (h *tenancyHandler) getTenancy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenancyID := c.Param("tenancy_id")

	tenancy, err := h.tenancyService.GetTenancyByID(c.Request.Context(), tenancyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenancy not found"})
		} else {
			logger.Error("Failed to get tenancy", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tenancy"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTenancyResponse(tenancy))
}

func (h *tenancyHandler) updateTenancy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenancyID := c.Param("tenancy_id")

	var req dto.UpdateTenancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTenancy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenancy, err := h.tenancyService.UpdateTenancy(c.Request.Context(), tenancyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenancy not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update tenancy", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tenancy"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTenancyResponse(tenancy))
}

func (h *tenancyHandler) deleteTenancy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenancyID := c.Param("tenancy_id")

	if err := h.tenancyService.DeleteTenancy(c.Request.Context(), tenancyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenancy not found"})
		} else {
			logger.Error("Failed to delete tenancy", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tenancy"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// previewPayslip computes the tenancy's payslip draft without persisting it.
// Optional query params: month (YYYY-MM), due_date (YYYY-MM-DD).
func (h *tenancyHandler) previewPayslip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenancyID := c.Param("tenancy_id")

	var params dto.PayslipPreviewParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	draft, err := h.payslipService.PreviewPayslip(c.Request.Context(), tenancyID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenancy not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to preview payslip", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to preview payslip"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPayslipDraftResponse(draft))
}

func (h *tenancyHandler) createPayslip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenancyID := c.Param("tenancy_id")

	var req dto.CreatePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayslip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payslip, err := h.payslipService.CreatePayslip(c.Request.Context(), tenancyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenancy not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Payslip already exists for this month"})
		} else {
			logger.Error("Failed to create payslip", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payslip"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPayslipResponse(payslip))
}

func (h *tenancyHandler) listPayslips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenancyID := c.Param("tenancy_id")

	payslips, err := h.payslipService.ListPayslipsByTenancy(c.Request.Context(), tenancyID)
	if err != nil {
		logger.Error("Failed to list payslips", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payslips"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPayslipResponse(payslips))
}

func (h *tenancyHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenancyID := c.Param("tenancy_id")

	var req dto.CreateTenantPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTenantPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.CreateTenantPayment(c.Request.Context(), tenancyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenancy not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Payment already recorded for this month"})
		} else {
			logger.Error("Failed to create tenant payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTenantPaymentResponse(payment))
}

func (h *tenancyHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenancyID := c.Param("tenancy_id")

	payments, err := h.paymentService.ListTenantPayments(c.Request.Context(), tenancyID)
	if err != nil {
		logger.Error("Failed to list tenant payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTenantPaymentResponse(payments))
}

func (h *tenancyHandler) listBalanceSheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenancyID := c.Param("tenancy_id")

	sheets, err := h.balanceService.ListBalanceSheets(c.Request.Context(), tenancyID)
	if err != nil {
		logger.Error("Failed to list balance sheets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balance sheets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTenantBalanceSheetResponse(sheets))
}

// reconcile backfills the tenancy's missing balance sheet months and
// recomputes the current one.
func (h *tenancyHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenancyID := c.Param("tenancy_id")

	sheets, err := h.balanceService.UpdateAllMissingMonths(c.Request.Context(), tenancyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenancy not found"})
		} else {
			logger.Error("Failed to reconcile tenancy", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile balance sheets"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListTenantBalanceSheetResponse(sheets))
}
