package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payslip represents a persisted monthly bill. Month is stored as the first
// day of the month.
type Payslip struct {
	PayslipID        string    `json:"payslipID"` // Primary Key (UUID)
	PropertyID       string    `json:"propertyID"`
	PropertyTenantID string    `json:"propertyTenantID"`
	Month            time.Time `json:"month"`
	DueDate          time.Time `json:"dueDate"`
	AuditFields
}

// PayslipLineItem represents a single charge on a payslip.
type PayslipLineItem struct {
	PayslipLineItemID string          `json:"payslipLineItemID"` // Primary Key (UUID)
	PayslipID         string          `json:"payslipID"`         // FK -> payslips
	Position          int             `json:"position"`          // 0-based display order within the payslip
	Name              string          `json:"name"`
	Amount            decimal.Decimal `json:"amount"`
}
