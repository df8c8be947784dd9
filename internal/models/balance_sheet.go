package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantBalanceSheet represents a per-month owed/paid snapshot for a tenancy.
// Month is stored as the first day of the month.
type TenantBalanceSheet struct {
	TenantBalanceSheetID string          `json:"tenantBalanceSheetID"` // Primary Key (UUID)
	PropertyTenantID     string          `json:"propertyTenantID"`
	PropertyID           string          `json:"propertyID"`
	Month                time.Time       `json:"month"`
	DueDate              time.Time       `json:"dueDate"`
	Owed                 decimal.Decimal `json:"owed"`
	Paid                 decimal.Decimal `json:"paid"`
	AuditFields
}

// UtilityProviderBalanceSheet represents a per-month owed/paid snapshot for a
// utility provider.
type UtilityProviderBalanceSheet struct {
	UtilityProviderBalanceSheetID string          `json:"utilityProviderBalanceSheetID"` // Primary Key (UUID)
	UtilityProviderID             string          `json:"utilityProviderID"`
	PropertyID                    string          `json:"propertyID"`
	Month                         time.Time       `json:"month"`
	DueDate                       time.Time       `json:"dueDate"`
	Owed                          decimal.Decimal `json:"owed"`
	Paid                          decimal.Decimal `json:"paid"`
	AuditFields
}
