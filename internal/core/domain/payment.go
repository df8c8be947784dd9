package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantPayment records money received from a tenant. The Month field is the
// billing month the payment was made against; the balance sheet calculators
// group payments by the month of PaidDate instead.
type TenantPayment struct {
	TenantPaymentID  string          `json:"tenantPaymentID"` // Primary Key (UUID)
	PropertyTenantID string          `json:"propertyTenantID"`
	PropertyID       string          `json:"propertyID"`
	Month            Month           `json:"month"`
	Amount           decimal.Decimal `json:"amount"`
	PaidDate         time.Time       `json:"paidDate"`
	AuditFields
}

// UtilityPayment records money paid out to a utility provider.
type UtilityPayment struct {
	UtilityPaymentID  string          `json:"utilityPaymentID"` // Primary Key (UUID)
	UtilityProviderID string          `json:"utilityProviderID"`
	PropertyID        string          `json:"propertyID"`
	Month             Month           `json:"month"`
	Amount            decimal.Decimal `json:"amount"`
	PaidDate          time.Time       `json:"paidDate"`
	AuditFields
}
