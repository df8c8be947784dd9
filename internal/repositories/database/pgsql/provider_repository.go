package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propertyops/property_billing_app/internal/apperrors"
	"github.com/propertyops/property_billing_app/internal/core/domain"
	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	"github.com/propertyops/property_billing_app/internal/models"
	"github.com/propertyops/property_billing_app/internal/utils/mapping"
)

type PgxProviderRepository struct {
	BaseRepository
}

// newPgxProviderRepository creates a new repository for utility provider data.
func newPgxProviderRepository(pool *pgxpool.Pool) portsrepo.UtilityProviderRepositoryFacade {
	return &PgxProviderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UtilityProviderRepositoryFacade = (*PgxProviderRepository)(nil)

// SaveProvider inserts a new provider. Provider names are unique per property.
func (r *PgxProviderRepository) SaveProvider(ctx context.Context, provider domain.UtilityProvider) error {
	model := mapping.ToModelProvider(provider)
	query := `
		INSERT INTO utility_providers (utility_provider_id, property_id, name, forecast_behavior, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.UtilityProviderID,
		model.PropertyID,
		model.Name,
		model.ForecastBehavior,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: provider %q already exists for this property", apperrors.ErrDuplicate, model.Name)
		}
		return fmt.Errorf("failed to save provider %s: %w", model.UtilityProviderID, err)
	}
	return nil
}

// FindProviderByID retrieves a provider by its ID.
func (r *PgxProviderRepository) FindProviderByID(ctx context.Context, providerID string) (*domain.UtilityProvider, error) {
	query := `
		SELECT utility_provider_id, property_id, name, forecast_behavior, created_at, last_updated_at
		FROM utility_providers
		WHERE utility_provider_id = $1;
	`
	var model models.UtilityProvider
	err := r.Pool.QueryRow(ctx, query, providerID).Scan(
		&model.UtilityProviderID,
		&model.PropertyID,
		&model.Name,
		&model.ForecastBehavior,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find provider %s: %w", providerID, err)
	}

	provider := mapping.ToDomainProvider(model)
	return &provider, nil
}

// ListProvidersByProperty retrieves all providers of a property in their
// persisted (creation) order. The payslip generator relies on this ordering.
func (r *PgxProviderRepository) ListProvidersByProperty(ctx context.Context, propertyID string) ([]domain.UtilityProvider, error) {
	query := `
		SELECT utility_provider_id, property_id, name, forecast_behavior, created_at, last_updated_at
		FROM utility_providers
		WHERE property_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query providers: %w", err)
	}
	defer rows.Close()

	modelProviders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.UtilityProvider, error) {
		var provider models.UtilityProvider
		err := row.Scan(
			&provider.UtilityProviderID,
			&provider.PropertyID,
			&provider.Name,
			&provider.ForecastBehavior,
			&provider.CreatedAt,
			&provider.LastUpdatedAt,
		)
		return provider, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan providers: %w", err)
	}

	return mapping.ToDomainProviderSlice(modelProviders), nil
}

// UpdateProvider updates an existing provider.
func (r *PgxProviderRepository) UpdateProvider(ctx context.Context, provider domain.UtilityProvider) error {
	model := mapping.ToModelProvider(provider)
	query := `
		UPDATE utility_providers
		SET name = $2, forecast_behavior = $3, last_updated_at = $4
		WHERE utility_provider_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.UtilityProviderID,
		model.Name,
		model.ForecastBehavior,
		model.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: provider %q already exists for this property", apperrors.ErrDuplicate, model.Name)
		}
		return fmt.Errorf("failed to update provider %s: %w", model.UtilityProviderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProvider removes a provider; forecasts, payments and balance sheets
// cascade.
func (r *PgxProviderRepository) DeleteProvider(ctx context.Context, providerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM utility_providers WHERE utility_provider_id = $1;`, providerID)
	if err != nil {
		return fmt.Errorf("failed to delete provider %s: %w", providerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
