package repositories

import (
	"context"
	"time"

	"github.com/propertyops/property_billing_app/internal/core/domain"
)

// ForecastReader defines read operations for forecast data, including the
// range queries the reconciliation engine is built on.
type ForecastReader interface {
	// FindForecastByID retrieves a forecast with its line items.
	FindForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error)

	// ListForecastsByProvider retrieves all forecasts of a provider with
	// their line items, most recently issued first.
	ListForecastsByProvider(ctx context.Context, providerID string) ([]domain.Forecast, error)

	// FindLineItemsDueInMonth retrieves all line items of the provider's
	// forecasts whose due date falls within the month, regardless of when
	// their forecast was issued.
	FindLineItemsDueInMonth(ctx context.Context, providerID string, month domain.Month) ([]domain.ForecastLineItem, error)

	// FindLineItemsDueInMonthIssuedBy retrieves line items due within the
	// month whose parent forecast was issued on or before the given date.
	FindLineItemsDueInMonthIssuedBy(ctx context.Context, providerID string, month domain.Month, issuedBy time.Time) ([]domain.ForecastLineItem, error)

	// FindLineItemsDueInMonthIssuedAfter retrieves line items due within the
	// month whose parent forecast was issued strictly after the given
	// instant. Used to pick up corrections that postdate a payslip snapshot.
	FindLineItemsDueInMonthIssuedAfter(ctx context.Context, providerID string, month domain.Month, issuedAfter time.Time) ([]domain.ForecastLineItem, error)

	// FindLatestForecastWithItemsBefore retrieves the most recently issued
	// forecast of the provider that has at least one line item due strictly
	// before the given date, with all of its line items. Returns
	// apperrors.ErrNotFound when no such forecast exists.
	FindLatestForecastWithItemsBefore(ctx context.Context, providerID string, before time.Time) (*domain.Forecast, error)

	// FindLatestForecastForMonth retrieves the most recently issued forecast
	// of the provider that has at least one line item due within the month,
	// with all of its line items. When issuedAfter is non-nil, only
	// forecasts issued strictly after that instant qualify. Returns
	// apperrors.ErrNotFound when no such forecast exists.
	FindLatestForecastForMonth(ctx context.Context, providerID string, month domain.Month, issuedAfter *time.Time) (*domain.Forecast, error)

	// ListLineItemDueDates retrieves the due dates of every line item
	// belonging to the provider's forecasts.
	ListLineItemDueDates(ctx context.Context, providerID string) ([]time.Time, error)

	// EarliestDueDateInMonth retrieves the earliest line item due date
	// within the month among forecasts issued on or before the month's end.
	// Returns nil when no line item qualifies.
	EarliestDueDateInMonth(ctx context.Context, providerID string, month domain.Month) (*time.Time, error)
}

// ForecastWriter defines write operations for forecast data.
type ForecastWriter interface {
	// SaveForecast persists a forecast and its line items in one transaction.
	SaveForecast(ctx context.Context, forecast domain.Forecast) error

	// UpdateForecast applies a batch of line item upserts and deletes along
	// with forecast field changes in one transaction. Line items present in
	// forecast.LineItems are inserted or updated; deleteLineItemIDs are
	// removed. Nothing commits if any part fails.
	UpdateForecast(ctx context.Context, forecast domain.Forecast, deleteLineItemIDs []string) error

	// DeleteForecast removes a forecast; its line items cascade.
	DeleteForecast(ctx context.Context, forecastID string) error
}

// ForecastRepositoryFacade combines all forecast-related repository interfaces.
type ForecastRepositoryFacade interface {
	ForecastReader
	ForecastWriter
}
