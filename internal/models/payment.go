package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantPayment represents money received from a tenant. Month is stored as
// the first day of the month.
type TenantPayment struct {
	TenantPaymentID  string          `json:"tenantPaymentID"` // Primary Key (UUID)
	PropertyTenantID string          `json:"propertyTenantID"`
	PropertyID       string          `json:"propertyID"`
	Month            time.Time       `json:"month"`
	Amount           decimal.Decimal `json:"amount"`
	PaidDate         time.Time       `json:"paidDate"`
	AuditFields
}

// UtilityPayment represents money paid to a utility provider.
type UtilityPayment struct {
	UtilityPaymentID  string          `json:"utilityPaymentID"` // Primary Key (UUID)
	UtilityProviderID string          `json:"utilityProviderID"`
	PropertyID        string          `json:"propertyID"`
	Month             time.Time       `json:"month"`
	Amount            decimal.Decimal `json:"amount"`
	PaidDate          time.Time       `json:"paidDate"`
	AuditFields
}
