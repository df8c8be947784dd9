package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propertyops/property_billing_app/internal/apperrors"
	"github.com/propertyops/property_billing_app/internal/core/domain"
	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	"github.com/propertyops/property_billing_app/internal/models"
	"github.com/propertyops/property_billing_app/internal/utils/mapping"
)

type PgxForecastRepository struct {
	BaseRepository
}

// newPgxForecastRepository creates a new repository for forecast data.
func newPgxForecastRepository(pool *pgxpool.Pool) portsrepo.ForecastRepositoryFacade {
	return &PgxForecastRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ForecastRepositoryFacade = (*PgxForecastRepository)(nil)

// SaveForecast inserts a forecast and its line items in one transaction.
func (r *PgxForecastRepository) SaveForecast(ctx context.Context, forecast domain.Forecast) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	model := mapping.ToModelForecast(forecast)
	forecastQuery := `
		INSERT INTO forecasts (forecast_id, utility_provider_id, property_id, issued_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, forecastQuery,
		model.ForecastID,
		model.UtilityProviderID,
		model.PropertyID,
		model.IssuedDate,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert forecast %s: %w", model.ForecastID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO forecast_line_items (forecast_line_item_id, forecast_id, name, amount, due_date, carry_forward)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, li := range forecast.LineItems {
		item := mapping.ToModelForecastLineItem(li)
		batch.Queue(itemQuery,
			item.ForecastLineItemID,
			item.ForecastID,
			item.Name,
			item.Amount,
			item.DueDate,
			item.CarryForward,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert forecast line items: %w", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateForecast applies forecast field changes plus line item upserts and
// deletes in one transaction.
func (r *PgxForecastRepository) UpdateForecast(ctx context.Context, forecast domain.Forecast, deleteLineItemIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	model := mapping.ToModelForecast(forecast)
	tag, err := tx.Exec(ctx, `
		UPDATE forecasts
		SET issued_date = $2, last_updated_at = $3
		WHERE forecast_id = $1;
	`, model.ForecastID, model.IssuedDate, model.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update forecast %s: %w", model.ForecastID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	batch := &pgx.Batch{}
	upsertQuery := `
		INSERT INTO forecast_line_items (forecast_line_item_id, forecast_id, name, amount, due_date, carry_forward)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (forecast_line_item_id) DO UPDATE SET
			name = EXCLUDED.name,
			amount = EXCLUDED.amount,
			due_date = EXCLUDED.due_date,
			carry_forward = EXCLUDED.carry_forward;
	`
	for _, li := range forecast.LineItems {
		item := mapping.ToModelForecastLineItem(li)
		batch.Queue(upsertQuery,
			item.ForecastLineItemID,
			item.ForecastID,
			item.Name,
			item.Amount,
			item.DueDate,
			item.CarryForward,
		)
	}
	for _, id := range deleteLineItemIDs {
		batch.Queue(`DELETE FROM forecast_line_items WHERE forecast_line_item_id = $1 AND forecast_id = $2;`, id, model.ForecastID)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to apply forecast line item changes: %w", err)
	}

	return r.Commit(ctx, tx)
}

// DeleteForecast removes a forecast; its line items cascade.
func (r *PgxForecastRepository) DeleteForecast(ctx context.Context, forecastID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM forecasts WHERE forecast_id = $1;`, forecastID)
	if err != nil {
		return fmt.Errorf("failed to delete forecast %s: %w", forecastID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindForecastByID retrieves a forecast with its line items.
func (r *PgxForecastRepository) FindForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error) {
	query := `
		SELECT forecast_id, utility_provider_id, property_id, issued_date, created_at, last_updated_at
		FROM forecasts
		WHERE forecast_id = $1;
	`
	var model models.Forecast
	err := r.Pool.QueryRow(ctx, query, forecastID).Scan(
		&model.ForecastID,
		&model.UtilityProviderID,
		&model.PropertyID,
		&model.IssuedDate,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find forecast %s: %w", forecastID, err)
	}

	items, err := r.findLineItemsByForecastIDs(ctx, []string{forecastID})
	if err != nil {
		return nil, err
	}

	forecast := mapping.ToDomainForecast(model, items[forecastID])
	return &forecast, nil
}

// ListForecastsByProvider retrieves a provider's forecasts with their line
// items, most recently issued first.
func (r *PgxForecastRepository) ListForecastsByProvider(ctx context.Context, providerID string) ([]domain.Forecast, error) {
	query := `
		SELECT forecast_id, utility_provider_id, property_id, issued_date, created_at, last_updated_at
		FROM forecasts
		WHERE utility_provider_id = $1
		ORDER BY issued_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query forecasts: %w", err)
	}
	defer rows.Close()

	modelForecasts, err := pgx.CollectRows(rows, scanForecast)
	if err != nil {
		return nil, fmt.Errorf("failed to scan forecasts: %w", err)
	}
	if len(modelForecasts) == 0 {
		return []domain.Forecast{}, nil
	}

	ids := make([]string, len(modelForecasts))
	for i, f := range modelForecasts {
		ids[i] = f.ForecastID
	}
	itemsByForecast, err := r.findLineItemsByForecastIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	forecasts := make([]domain.Forecast, len(modelForecasts))
	for i, f := range modelForecasts {
		forecasts[i] = mapping.ToDomainForecast(f, itemsByForecast[f.ForecastID])
	}
	return forecasts, nil
}

// FindLineItemsDueInMonth retrieves line items due within the month across
// all of the provider's forecasts, regardless of issuance time.
func (r *PgxForecastRepository) FindLineItemsDueInMonth(ctx context.Context, providerID string, month domain.Month) ([]domain.ForecastLineItem, error) {
	query := `
		SELECT li.forecast_line_item_id, li.forecast_id, li.name, li.amount, li.due_date, li.carry_forward
		FROM forecast_line_items li
		JOIN forecasts f ON f.forecast_id = li.forecast_id
		WHERE f.utility_provider_id = $1 AND li.due_date BETWEEN $2 AND $3
		ORDER BY li.due_date, li.name;
	`
	return r.queryLineItems(ctx, query, providerID, month.Start(), month.End())
}

// FindLineItemsDueInMonthIssuedBy retrieves line items due within the month
// whose parent forecast was issued on or before the given date.
func (r *PgxForecastRepository) FindLineItemsDueInMonthIssuedBy(ctx context.Context, providerID string, month domain.Month, issuedBy time.Time) ([]domain.ForecastLineItem, error) {
	query := `
		SELECT li.forecast_line_item_id, li.forecast_id, li.name, li.amount, li.due_date, li.carry_forward
		FROM forecast_line_items li
		JOIN forecasts f ON f.forecast_id = li.forecast_id
		WHERE f.utility_provider_id = $1 AND li.due_date BETWEEN $2 AND $3 AND f.issued_date <= $4
		ORDER BY li.due_date, li.name;
	`
	return r.queryLineItems(ctx, query, providerID, month.Start(), month.End(), issuedBy)
}

// FindLineItemsDueInMonthIssuedAfter retrieves line items due within the
// month whose parent forecast was issued strictly after the given instant.
func (r *PgxForecastRepository) FindLineItemsDueInMonthIssuedAfter(ctx context.Context, providerID string, month domain.Month, issuedAfter time.Time) ([]domain.ForecastLineItem, error) {
	query := `
		SELECT li.forecast_line_item_id, li.forecast_id, li.name, li.amount, li.due_date, li.carry_forward
		FROM forecast_line_items li
		JOIN forecasts f ON f.forecast_id = li.forecast_id
		WHERE f.utility_provider_id = $1 AND li.due_date BETWEEN $2 AND $3 AND f.issued_date > $4
		ORDER BY li.due_date, li.name;
	`
	return r.queryLineItems(ctx, query, providerID, month.Start(), month.End(), issuedAfter)
}

// FindLatestForecastWithItemsBefore retrieves the most recently issued
// forecast with at least one line item due strictly before the given date.
func (r *PgxForecastRepository) FindLatestForecastWithItemsBefore(ctx context.Context, providerID string, before time.Time) (*domain.Forecast, error) {
	query := `
		SELECT f.forecast_id, f.utility_provider_id, f.property_id, f.issued_date, f.created_at, f.last_updated_at
		FROM forecasts f
		WHERE f.utility_provider_id = $1
		  AND EXISTS (
			SELECT 1 FROM forecast_line_items li
			WHERE li.forecast_id = f.forecast_id AND li.due_date < $2
		  )
		ORDER BY f.issued_date DESC, f.created_at DESC
		LIMIT 1;
	`
	return r.queryOneForecast(ctx, query, providerID, before)
}

// FindLatestForecastForMonth retrieves the most recently issued forecast with
// a line item due within the month, optionally restricted to forecasts issued
// strictly after a given instant.
func (r *PgxForecastRepository) FindLatestForecastForMonth(ctx context.Context, providerID string, month domain.Month, issuedAfter *time.Time) (*domain.Forecast, error) {
	if issuedAfter != nil {
		query := `
			SELECT f.forecast_id, f.utility_provider_id, f.property_id, f.issued_date, f.created_at, f.last_updated_at
			FROM forecasts f
			WHERE f.utility_provider_id = $1
			  AND f.issued_date > $4
			  AND EXISTS (
				SELECT 1 FROM forecast_line_items li
				WHERE li.forecast_id = f.forecast_id AND li.due_date BETWEEN $2 AND $3
			  )
			ORDER BY f.issued_date DESC, f.created_at DESC
			LIMIT 1;
		`
		return r.queryOneForecast(ctx, query, providerID, month.Start(), month.End(), *issuedAfter)
	}
	query := `
		SELECT f.forecast_id, f.utility_provider_id, f.property_id, f.issued_date, f.created_at, f.last_updated_at
		FROM forecasts f
		WHERE f.utility_provider_id = $1
		  AND EXISTS (
			SELECT 1 FROM forecast_line_items li
			WHERE li.forecast_id = f.forecast_id AND li.due_date BETWEEN $2 AND $3
		  )
		ORDER BY f.issued_date DESC, f.created_at DESC
		LIMIT 1;
	`
	return r.queryOneForecast(ctx, query, providerID, month.Start(), month.End())
}

// ListLineItemDueDates retrieves the due dates of every line item belonging
// to the provider's forecasts.
func (r *PgxForecastRepository) ListLineItemDueDates(ctx context.Context, providerID string) ([]time.Time, error) {
	query := `
		SELECT li.due_date
		FROM forecast_line_items li
		JOIN forecasts f ON f.forecast_id = li.forecast_id
		WHERE f.utility_provider_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line item due dates: %w", err)
	}
	defer rows.Close()

	dates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (time.Time, error) {
		var d time.Time
		err := row.Scan(&d)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan due dates: %w", err)
	}
	return dates, nil
}

// EarliestDueDateInMonth retrieves the earliest in-month due date among
// forecasts issued by the month's end, or nil when none qualifies.
func (r *PgxForecastRepository) EarliestDueDateInMonth(ctx context.Context, providerID string, month domain.Month) (*time.Time, error) {
	query := `
		SELECT MIN(li.due_date)
		FROM forecast_line_items li
		JOIN forecasts f ON f.forecast_id = li.forecast_id
		WHERE f.utility_provider_id = $1 AND li.due_date BETWEEN $2 AND $3 AND f.issued_date <= $3;
	`
	var earliest *time.Time
	if err := r.Pool.QueryRow(ctx, query, providerID, month.Start(), month.End()).Scan(&earliest); err != nil {
		return nil, fmt.Errorf("failed to find earliest due date in %s: %w", month, err)
	}
	return earliest, nil
}

func (r *PgxForecastRepository) queryOneForecast(ctx context.Context, query string, args ...any) (*domain.Forecast, error) {
	var model models.Forecast
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&model.ForecastID,
		&model.UtilityProviderID,
		&model.PropertyID,
		&model.IssuedDate,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find forecast: %w", err)
	}

	items, err := r.findLineItemsByForecastIDs(ctx, []string{model.ForecastID})
	if err != nil {
		return nil, err
	}
	forecast := mapping.ToDomainForecast(model, items[model.ForecastID])
	return &forecast, nil
}

func (r *PgxForecastRepository) queryLineItems(ctx context.Context, query string, args ...any) ([]domain.ForecastLineItem, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query forecast line items: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, scanForecastLineItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan forecast line items: %w", err)
	}
	return mapping.ToDomainForecastLineItemSlice(modelItems), nil
}

func (r *PgxForecastRepository) findLineItemsByForecastIDs(ctx context.Context, forecastIDs []string) (map[string][]models.ForecastLineItem, error) {
	query := `
		SELECT forecast_line_item_id, forecast_id, name, amount, due_date, carry_forward
		FROM forecast_line_items
		WHERE forecast_id = ANY($1)
		ORDER BY due_date, name;
	`
	rows, err := r.Pool.Query(ctx, query, forecastIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query forecast line items: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, scanForecastLineItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan forecast line items: %w", err)
	}

	byForecast := make(map[string][]models.ForecastLineItem, len(forecastIDs))
	for _, item := range modelItems {
		byForecast[item.ForecastID] = append(byForecast[item.ForecastID], item)
	}
	return byForecast, nil
}

func scanForecast(row pgx.CollectableRow) (models.Forecast, error) {
	var f models.Forecast
	err := row.Scan(
		&f.ForecastID,
		&f.UtilityProviderID,
		&f.PropertyID,
		&f.IssuedDate,
		&f.CreatedAt,
		&f.LastUpdatedAt,
	)
	return f, err
}

func scanForecastLineItem(row pgx.CollectableRow) (models.ForecastLineItem, error) {
	var li models.ForecastLineItem
	err := row.Scan(
		&li.ForecastLineItemID,
		&li.ForecastID,
		&li.Name,
		&li.Amount,
		&li.DueDate,
		&li.CarryForward,
	)
	return li, err
}
