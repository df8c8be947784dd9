package dto

import (
	"time"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSheetResponse is a per-month owed/paid snapshot, shared by the
// tenant and provider sides.
type BalanceSheetResponse struct {
	BalanceSheetID string          `json:"balanceSheetID"`
	OwnerID        string          `json:"ownerID"` // tenancy or provider ID
	PropertyID     string          `json:"propertyID"`
	Month          string          `json:"month"`
	DueDate        string          `json:"dueDate"`
	Owed           decimal.Decimal `json:"owed"`
	Paid           decimal.Decimal `json:"paid"`
	Balance        decimal.Decimal `json:"balance"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToTenantBalanceSheetResponse converts a domain.TenantBalanceSheet.
func ToTenantBalanceSheetResponse(s *domain.TenantBalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		BalanceSheetID: s.TenantBalanceSheetID,
		OwnerID:        s.PropertyTenantID,
		PropertyID:     s.PropertyID,
		Month:          s.Month.String(),
		DueDate:        s.DueDate.Format("2006-01-02"),
		Owed:           s.Owed,
		Paid:           s.Paid,
		Balance:        s.Balance(),
		LastUpdatedAt:  s.LastUpdatedAt,
	}
}

// ToListTenantBalanceSheetResponse converts a slice of tenant balance sheets.
func ToListTenantBalanceSheetResponse(sheets []domain.TenantBalanceSheet) []BalanceSheetResponse {
	res := make([]BalanceSheetResponse, len(sheets))
	for i, s := range sheets {
		res[i] = ToTenantBalanceSheetResponse(&s)
	}
	return res
}

// ToProviderBalanceSheetResponse converts a domain.UtilityProviderBalanceSheet.
func ToProviderBalanceSheetResponse(s *domain.UtilityProviderBalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		BalanceSheetID: s.UtilityProviderBalanceSheetID,
		OwnerID:        s.UtilityProviderID,
		PropertyID:     s.PropertyID,
		Month:          s.Month.String(),
		DueDate:        s.DueDate.Format("2006-01-02"),
		Owed:           s.Owed,
		Paid:           s.Paid,
		Balance:        s.Balance(),
		LastUpdatedAt:  s.LastUpdatedAt,
	}
}

// ToListProviderBalanceSheetResponse converts a slice of provider balance
// sheets.
func ToListProviderBalanceSheetResponse(sheets []domain.UtilityProviderBalanceSheet) []BalanceSheetResponse {
	res := make([]BalanceSheetResponse, len(sheets))
	for i, s := range sheets {
		res[i] = ToProviderBalanceSheetResponse(&s)
	}
	return res
}

// ReconcileSummary reports what a property-wide reconciliation touched.
type ReconcileSummary struct {
	PropertyID            string `json:"propertyID"`
	TenanciesReconciled   int    `json:"tenanciesReconciled"`
	ProvidersReconciled   int    `json:"providersReconciled"`
	TenantSheetsWritten   int    `json:"tenantSheetsWritten"`
	ProviderSheetsWritten int    `json:"providerSheetsWritten"`
}
