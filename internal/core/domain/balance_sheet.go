package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantBalanceSheet is a per-month owed/paid snapshot for a tenancy.
// Unique per (property_tenant, month). Rows for past months are never
// touched by the reconciliation batch once created.
type TenantBalanceSheet struct {
	TenantBalanceSheetID string          `json:"tenantBalanceSheetID"` // Primary Key (UUID)
	PropertyTenantID     string          `json:"propertyTenantID"`
	PropertyID           string          `json:"propertyID"`
	Month                Month           `json:"month"`
	DueDate              time.Time       `json:"dueDate"`
	Owed                 decimal.Decimal `json:"owed"`
	Paid                 decimal.Decimal `json:"paid"`
	AuditFields
}

// Balance is owed minus paid; negative when the tenant overpaid.
func (s TenantBalanceSheet) Balance() decimal.Decimal {
	return s.Owed.Sub(s.Paid)
}

// UtilityProviderBalanceSheet is the provider-side counterpart of
// TenantBalanceSheet. Unique per (utility_provider, month).
type UtilityProviderBalanceSheet struct {
	UtilityProviderBalanceSheetID string          `json:"utilityProviderBalanceSheetID"` // Primary Key (UUID)
	UtilityProviderID             string          `json:"utilityProviderID"`
	PropertyID                    string          `json:"propertyID"`
	Month                         Month           `json:"month"`
	DueDate                       time.Time       `json:"dueDate"`
	Owed                          decimal.Decimal `json:"owed"`
	Paid                          decimal.Decimal `json:"paid"`
	AuditFields
}

// Balance is owed minus paid; negative when the provider was overpaid.
func (s UtilityProviderBalanceSheet) Balance() decimal.Decimal {
	return s.Owed.Sub(s.Paid)
}
