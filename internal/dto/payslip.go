package dto

import (
	"time"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayslipPreviewParams are the query parameters of the payslip preview
// endpoint. Both are optional; month defaults to the next calendar month and
// due date to the configured due day of that month.
type PayslipPreviewParams struct {
	Month   string `form:"month"`    // YYYY-MM
	DueDate string `form:"due_date"` // YYYY-MM-DD
}

// PayslipLineItemInput is one charge on a payslip create request.
type PayslipLineItemInput struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreatePayslipRequest persists a payslip, typically an edited draft.
type CreatePayslipRequest struct {
	Month     string                 `json:"month" binding:"required"`   // YYYY-MM
	DueDate   string                 `json:"dueDate" binding:"required"` // YYYY-MM-DD
	LineItems []PayslipLineItemInput `json:"lineItems" binding:"required,min=1,dive"`
}

// PayslipLineItemResponse defines the data returned for a payslip line item.
type PayslipLineItemResponse struct {
	PayslipLineItemID string          `json:"payslipLineItemID"`
	Name              string          `json:"name"`
	Amount            decimal.Decimal `json:"amount"`
}

// PayslipResponse defines the data returned for a persisted payslip.
type PayslipResponse struct {
	PayslipID        string                    `json:"payslipID"`
	PropertyID       string                    `json:"propertyID"`
	PropertyTenantID string                    `json:"propertyTenantID"`
	Month            string                    `json:"month"`
	DueDate          string                    `json:"dueDate"`
	LineItems        []PayslipLineItemResponse `json:"lineItems"`
	TotalAmount      decimal.Decimal           `json:"totalAmount"`
	CreatedAt        time.Time                 `json:"createdAt"`
}

// ToPayslipResponse converts a domain.Payslip to PayslipResponse.
func ToPayslipResponse(p *domain.Payslip) PayslipResponse {
	items := make([]PayslipLineItemResponse, len(p.LineItems))
	for i, li := range p.LineItems {
		items[i] = PayslipLineItemResponse{
			PayslipLineItemID: li.PayslipLineItemID,
			Name:              li.Name,
			Amount:            li.Amount,
		}
	}
	return PayslipResponse{
		PayslipID:        p.PayslipID,
		PropertyID:       p.PropertyID,
		PropertyTenantID: p.PropertyTenantID,
		Month:            p.Month.String(),
		DueDate:          p.DueDate.Format("2006-01-02"),
		LineItems:        items,
		TotalAmount:      p.TotalAmount(),
		CreatedAt:        p.CreatedAt,
	}
}

// ToListPayslipResponse converts a slice of domain.Payslip.
func ToListPayslipResponse(payslips []domain.Payslip) []PayslipResponse {
	res := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		res[i] = ToPayslipResponse(&p)
	}
	return res
}

// DraftLineItemResponse is one charge on a payslip draft.
type DraftLineItemResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PayslipDraftResponse defines the data returned by the preview endpoint.
type PayslipDraftResponse struct {
	PropertyID       string                  `json:"propertyID"`
	PropertyTenantID string                  `json:"propertyTenantID"`
	Month            string                  `json:"month"`
	DueDate          string                  `json:"dueDate"`
	LineItems        []DraftLineItemResponse `json:"lineItems"`
	TotalAmount      decimal.Decimal         `json:"totalAmount"`
}

// ToPayslipDraftResponse converts a domain.PayslipDraft.
func ToPayslipDraftResponse(d *domain.PayslipDraft) PayslipDraftResponse {
	items := make([]DraftLineItemResponse, len(d.LineItems))
	for i, li := range d.LineItems {
		items[i] = DraftLineItemResponse{Name: li.Name, Amount: li.Amount}
	}
	return PayslipDraftResponse{
		PropertyID:       d.PropertyID,
		PropertyTenantID: d.PropertyTenantID,
		Month:            d.Month.String(),
		DueDate:          d.DueDate.Format("2006-01-02"),
		LineItems:        items,
		TotalAmount:      d.TotalAmount(),
	}
}
