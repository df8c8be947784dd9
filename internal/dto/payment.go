package dto

import (
	"time"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTenantPaymentRequest records money received from a tenant.
type CreateTenantPaymentRequest struct {
	Month    string          `json:"month" binding:"required"` // YYYY-MM
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	PaidDate string          `json:"paidDate" binding:"required"` // YYYY-MM-DD
}

// CreateUtilityPaymentRequest records money paid to a utility provider.
type CreateUtilityPaymentRequest struct {
	Month    string          `json:"month" binding:"required"` // YYYY-MM
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	PaidDate string          `json:"paidDate" binding:"required"` // YYYY-MM-DD
}

// TenantPaymentResponse defines the data returned for a tenant payment.
type TenantPaymentResponse struct {
	TenantPaymentID  string          `json:"tenantPaymentID"`
	PropertyTenantID string          `json:"propertyTenantID"`
	PropertyID       string          `json:"propertyID"`
	Month            string          `json:"month"`
	Amount           decimal.Decimal `json:"amount"`
	PaidDate         string          `json:"paidDate"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToTenantPaymentResponse converts a domain.TenantPayment.
func ToTenantPaymentResponse(p *domain.TenantPayment) TenantPaymentResponse {
	return TenantPaymentResponse{
		TenantPaymentID:  p.TenantPaymentID,
		PropertyTenantID: p.PropertyTenantID,
		PropertyID:       p.PropertyID,
		Month:            p.Month.String(),
		Amount:           p.Amount,
		PaidDate:         p.PaidDate.Format("2006-01-02"),
		CreatedAt:        p.CreatedAt,
	}
}

// ToListTenantPaymentResponse converts a slice of domain.TenantPayment.
func ToListTenantPaymentResponse(payments []domain.TenantPayment) []TenantPaymentResponse {
	res := make([]TenantPaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToTenantPaymentResponse(&p)
	}
	return res
}

// UtilityPaymentResponse defines the data returned for a utility payment.
type UtilityPaymentResponse struct {
	UtilityPaymentID  string          `json:"utilityPaymentID"`
	UtilityProviderID string          `json:"utilityProviderID"`
	PropertyID        string          `json:"propertyID"`
	Month             string          `json:"month"`
	Amount            decimal.Decimal `json:"amount"`
	PaidDate          string          `json:"paidDate"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToUtilityPaymentResponse converts a domain.UtilityPayment.
func ToUtilityPaymentResponse(p *domain.UtilityPayment) UtilityPaymentResponse {
	return UtilityPaymentResponse{
		UtilityPaymentID:  p.UtilityPaymentID,
		UtilityProviderID: p.UtilityProviderID,
		PropertyID:        p.PropertyID,
		Month:             p.Month.String(),
		Amount:            p.Amount,
		PaidDate:          p.PaidDate.Format("2006-01-02"),
		CreatedAt:         p.CreatedAt,
	}
}

// ToListUtilityPaymentResponse converts a slice of domain.UtilityPayment.
func ToListUtilityPaymentResponse(payments []domain.UtilityPayment) []UtilityPaymentResponse {
	res := make([]UtilityPaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToUtilityPaymentResponse(&p)
	}
	return res
}
