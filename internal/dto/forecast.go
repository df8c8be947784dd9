package dto

import (
	"time"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ForecastLineItemInput is one expected charge within a forecast request.
// Dates use the YYYY-MM-DD layout.
type ForecastLineItemInput struct {
	Name         string          `json:"name" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	DueDate      string          `json:"dueDate" binding:"required"`
	CarryForward bool            `json:"carryForward"`
}

// CreateForecastRequest defines the data needed to create a forecast with
// its line items.
type CreateForecastRequest struct {
	IssuedDate string                  `json:"issuedDate" binding:"required"`
	LineItems  []ForecastLineItemInput `json:"lineItems" binding:"required,min=1,dive"`
}

// ForecastLineItemUpsert is one entry of a batch line item mutation. A nil
// ForecastLineItemID inserts a new item; otherwise the existing item is
// updated.
type ForecastLineItemUpsert struct {
	ForecastLineItemID *string         `json:"forecastLineItemID"`
	Name               string          `json:"name" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	DueDate            string          `json:"dueDate" binding:"required"`
	CarryForward       bool            `json:"carryForward"`
}

// UpdateForecastRequest applies forecast field changes plus a batch of line
// item upserts and deletes in one transactional save.
type UpdateForecastRequest struct {
	IssuedDate        *string                  `json:"issuedDate"`
	UpsertLineItems   []ForecastLineItemUpsert `json:"upsertLineItems" binding:"omitempty,dive"`
	DeleteLineItemIDs []string                 `json:"deleteLineItemIDs"`
}

// ForecastLineItemResponse defines the data returned for a forecast line item.
type ForecastLineItemResponse struct {
	ForecastLineItemID string          `json:"forecastLineItemID"`
	Name               string          `json:"name"`
	Amount             decimal.Decimal `json:"amount"`
	DueDate            string          `json:"dueDate"`
	CarryForward       bool            `json:"carryForward"`
}

// ForecastResponse defines the data returned for a forecast.
type ForecastResponse struct {
	ForecastID        string                     `json:"forecastID"`
	UtilityProviderID string                     `json:"utilityProviderID"`
	PropertyID        string                     `json:"propertyID"`
	IssuedDate        string                     `json:"issuedDate"`
	LineItems         []ForecastLineItemResponse `json:"lineItems"`
	CreatedAt         time.Time                  `json:"createdAt"`
	LastUpdatedAt     time.Time                  `json:"lastUpdatedAt"`
}

// ToForecastResponse converts a domain.Forecast to ForecastResponse.
func ToForecastResponse(f *domain.Forecast) ForecastResponse {
	items := make([]ForecastLineItemResponse, len(f.LineItems))
	for i, li := range f.LineItems {
		items[i] = ForecastLineItemResponse{
			ForecastLineItemID: li.ForecastLineItemID,
			Name:               li.Name,
			Amount:             li.Amount,
			DueDate:            li.DueDate.Format("2006-01-02"),
			CarryForward:       li.CarryForward,
		}
	}
	return ForecastResponse{
		ForecastID:        f.ForecastID,
		UtilityProviderID: f.UtilityProviderID,
		PropertyID:        f.PropertyID,
		IssuedDate:        f.IssuedDate.Format("2006-01-02"),
		LineItems:         items,
		CreatedAt:         f.CreatedAt,
		LastUpdatedAt:     f.LastUpdatedAt,
	}
}

// ToListForecastResponse converts a slice of domain.Forecast.
func ToListForecastResponse(forecasts []domain.Forecast) []ForecastResponse {
	res := make([]ForecastResponse, len(forecasts))
	for i, f := range forecasts {
		res[i] = ToForecastResponse(&f)
	}
	return res
}
