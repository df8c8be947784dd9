package services

import (
	"context"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/propertyops/property_billing_app/internal/dto"
)

// ForecastResolverSvc determines which forecast line items apply to a
// provider for a target month, honoring the provider's expiration policy.
type ForecastResolverSvc interface {
	// ResolveLineItemsForMonth returns the line items billable for the
	// month: all items due within the month if any exist, otherwise the
	// carry-forward flagged items of the most recent prior forecast for
	// carry_forward providers, otherwise nothing. An empty result is not an
	// error.
	ResolveLineItemsForMonth(ctx context.Context, provider domain.UtilityProvider, month domain.Month) ([]domain.ForecastLineItem, error)
}

// ForecastWriterSvc defines write operations for forecasts.
type ForecastWriterSvc interface {
	// CreateForecast persists a forecast with its line items.
	CreateForecast(ctx context.Context, providerID string, req dto.CreateForecastRequest) (*domain.Forecast, error)

	// UpdateForecast applies a batch of line item upserts and deletes in one
	// transactional save. Each line item is validated before anything
	// commits.
	UpdateForecast(ctx context.Context, forecastID string, req dto.UpdateForecastRequest) (*domain.Forecast, error)

	// DeleteForecast removes a forecast and its line items.
	DeleteForecast(ctx context.Context, forecastID string) error
}

// ForecastReaderSvc defines read operations for forecasts.
type ForecastReaderSvc interface {
	// GetForecastByID retrieves a forecast with its line items.
	GetForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error)

	// ListForecastsByProvider retrieves a provider's forecasts, most
	// recently issued first.
	ListForecastsByProvider(ctx context.Context, providerID string) ([]domain.Forecast, error)
}

// ForecastSvcFacade combines all forecast-related service interfaces.
type ForecastSvcFacade interface {
	ForecastReaderSvc
	ForecastWriterSvc
	ForecastResolverSvc
}
