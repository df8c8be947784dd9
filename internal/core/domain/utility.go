package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastBehavior controls what a provider charges for a month that no
// forecast covers.
type ForecastBehavior string

const (
	// ZeroAfterExpiry yields no charge once the last forecast has expired.
	ZeroAfterExpiry ForecastBehavior = "zero_after_expiry"
	// CarryForward reuses the most recent applicable forecast's
	// carry-forward line items.
	CarryForward ForecastBehavior = "carry_forward"
)

// UtilityProvider supplies a utility (water, heating, ...) to a property.
// Name is unique per property. It owns forecasts and utility payments.
type UtilityProvider struct {
	UtilityProviderID string           `json:"utilityProviderID"` // Primary Key (UUID)
	PropertyID        string           `json:"propertyID"`        // FK -> properties
	Name              string           `json:"name"`
	ForecastBehavior  ForecastBehavior `json:"forecastBehavior"`
	AuditFields
}

// Forecast is a dated issuance of expected charges for a provider. Multiple
// forecasts may exist over time, later ones superseding or supplementing
// earlier ones for overlapping months.
type Forecast struct {
	ForecastID        string             `json:"forecastID"`        // Primary Key (UUID)
	UtilityProviderID string             `json:"utilityProviderID"` // FK -> utility_providers
	PropertyID        string             `json:"propertyID"`        // Denormalized; must match the provider's property
	IssuedDate        time.Time          `json:"issuedDate"`
	LineItems         []ForecastLineItem `json:"lineItems"`
	AuditFields
}

// ForecastLineItem is a single expected charge within a forecast. Amount may
// be negative (a correction or refund). CarryForward marks the item as
// eligible for reuse when no forecast is active for a later month.
type ForecastLineItem struct {
	ForecastLineItemID string          `json:"forecastLineItemID"` // Primary Key (UUID)
	ForecastID         string          `json:"forecastID"`         // FK -> forecasts
	Name               string          `json:"name"`
	Amount             decimal.Decimal `json:"amount"`
	DueDate            time.Time       `json:"dueDate"`
	CarryForward       bool            `json:"carryForward"`
}

// CarryForwardItems returns the line items flagged for carry-forward reuse.
func (f Forecast) CarryForwardItems() []ForecastLineItem {
	var items []ForecastLineItem
	for _, li := range f.LineItems {
		if li.CarryForward {
			items = append(items, li)
		}
	}
	return items
}

// ItemsDueIn returns the line items whose due date falls within the month.
func (f Forecast) ItemsDueIn(month Month) []ForecastLineItem {
	var items []ForecastLineItem
	for _, li := range f.LineItems {
		if month.Contains(li.DueDate) {
			items = append(items, li)
		}
	}
	return items
}

// SumAmounts totals the amounts of a set of line items.
func SumAmounts(items []ForecastLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Amount)
	}
	return total
}
