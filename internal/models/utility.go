package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UtilityProvider represents a utility supplier attached to a property.
type UtilityProvider struct {
	UtilityProviderID string `json:"utilityProviderID"` // Primary Key (UUID)
	PropertyID        string `json:"propertyID"`        // FK -> properties
	Name              string `json:"name"`
	ForecastBehavior  string `json:"forecastBehavior"` // "zero_after_expiry" or "carry_forward"
	AuditFields
}

// Forecast represents a dated issuance of expected charges.
type Forecast struct {
	ForecastID        string    `json:"forecastID"`        // Primary Key (UUID)
	UtilityProviderID string    `json:"utilityProviderID"` // FK -> utility_providers
	PropertyID        string    `json:"propertyID"`
	IssuedDate        time.Time `json:"issuedDate"`
	AuditFields
}

// ForecastLineItem represents a single expected charge within a forecast.
type ForecastLineItem struct {
	ForecastLineItemID string          `json:"forecastLineItemID"` // Primary Key (UUID)
	ForecastID         string          `json:"forecastID"`         // FK -> forecasts
	Name               string          `json:"name"`
	Amount             decimal.Decimal `json:"amount"`
	DueDate            time.Time       `json:"dueDate"`
	CarryForward       bool            `json:"carryForward"`
}
