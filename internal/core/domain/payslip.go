package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payslip is the persisted monthly bill presented to a tenant. Unique per
// (property_tenant, month).
type Payslip struct {
	PayslipID        string            `json:"payslipID"` // Primary Key (UUID)
	PropertyID       string            `json:"propertyID"`
	PropertyTenantID string            `json:"propertyTenantID"`
	Month            Month             `json:"month"`
	DueDate          time.Time         `json:"dueDate"`
	LineItems        []PayslipLineItem `json:"lineItems"`
	AuditFields
}

// PayslipLineItem is a single charge on a payslip. Amount may be negative
// (a credit line).
type PayslipLineItem struct {
	PayslipLineItemID string          `json:"payslipLineItemID"` // Primary Key (UUID)
	PayslipID         string          `json:"payslipID"`         // FK -> payslips
	Name              string          `json:"name"`
	Amount            decimal.Decimal `json:"amount"`
}

// TotalAmount is the sum of the payslip's line item amounts.
func (p Payslip) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, li := range p.LineItems {
		total = total.Add(li.Amount)
	}
	return total
}

// PayslipDraft is a computed, not yet persisted payslip. The generator
// returns drafts; the caller decides whether to save them, possibly after
// operator edits.
type PayslipDraft struct {
	PropertyID       string          `json:"propertyID"`
	PropertyTenantID string          `json:"propertyTenantID"`
	Month            Month           `json:"month"`
	DueDate          time.Time       `json:"dueDate"`
	LineItems        []DraftLineItem `json:"lineItems"`
}

// DraftLineItem is a name/amount pair on a payslip draft.
type DraftLineItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// TotalAmount is the sum of the draft's line item amounts.
func (d PayslipDraft) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, li := range d.LineItems {
		total = total.Add(li.Amount)
	}
	return total
}
