package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propertyops/property_billing_app/internal/apperrors"
	"github.com/propertyops/property_billing_app/internal/core/domain"
	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	"github.com/propertyops/property_billing_app/internal/models"
	"github.com/propertyops/property_billing_app/internal/utils/mapping"
)

type PgxTenantBalanceSheetRepository struct {
	BaseRepository
}

// newPgxTenantBalanceSheetRepository creates a new repository for tenant
// balance sheet data.
func newPgxTenantBalanceSheetRepository(pool *pgxpool.Pool) portsrepo.TenantBalanceSheetRepositoryFacade {
	return &PgxTenantBalanceSheetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TenantBalanceSheetRepositoryFacade = (*PgxTenantBalanceSheetRepository)(nil)

// UpsertTenantBalanceSheet creates or replaces the row keyed by (tenancy,
// month) in a single statement. Concurrent reconcile runs for the same month
// serialize on the unique constraint instead of racing.
func (r *PgxTenantBalanceSheetRepository) UpsertTenantBalanceSheet(ctx context.Context, sheet domain.TenantBalanceSheet) error {
	model := mapping.ToModelTenantBalanceSheet(sheet)
	query := `
		INSERT INTO tenant_balance_sheets (tenant_balance_sheet_id, property_tenant_id, property_id, month, due_date, owed, paid, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (property_tenant_id, month) DO UPDATE SET
			due_date = EXCLUDED.due_date,
			owed = EXCLUDED.owed,
			paid = EXCLUDED.paid,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		model.TenantBalanceSheetID,
		model.PropertyTenantID,
		model.PropertyID,
		model.Month,
		model.DueDate,
		model.Owed,
		model.Paid,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert tenant balance sheet %s: %w", model.TenantBalanceSheetID, err)
	}
	return nil
}

// FindTenantBalanceSheet retrieves the tenancy's row for the given month.
func (r *PgxTenantBalanceSheetRepository) FindTenantBalanceSheet(ctx context.Context, tenancyID string, month domain.Month) (*domain.TenantBalanceSheet, error) {
	query := `
		SELECT tenant_balance_sheet_id, property_tenant_id, property_id, month, due_date, owed, paid, created_at, last_updated_at
		FROM tenant_balance_sheets
		WHERE property_tenant_id = $1 AND month = $2;
	`
	var model models.TenantBalanceSheet
	err := r.Pool.QueryRow(ctx, query, tenancyID, month.Start()).Scan(
		&model.TenantBalanceSheetID,
		&model.PropertyTenantID,
		&model.PropertyID,
		&model.Month,
		&model.DueDate,
		&model.Owed,
		&model.Paid,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant balance sheet for %s: %w", month, err)
	}

	sheet := mapping.ToDomainTenantBalanceSheet(model)
	return &sheet, nil
}

// ListTenantBalanceSheets retrieves all rows of a tenancy, most recent month
// first.
func (r *PgxTenantBalanceSheetRepository) ListTenantBalanceSheets(ctx context.Context, tenancyID string) ([]domain.TenantBalanceSheet, error) {
	query := `
		SELECT tenant_balance_sheet_id, property_tenant_id, property_id, month, due_date, owed, paid, created_at, last_updated_at
		FROM tenant_balance_sheets
		WHERE property_tenant_id = $1
		ORDER BY month DESC;
	`
	rows, err := r.Pool.Query(ctx, query, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant balance sheets: %w", err)
	}
	defer rows.Close()

	modelSheets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TenantBalanceSheet, error) {
		var sheet models.TenantBalanceSheet
		err := row.Scan(
			&sheet.TenantBalanceSheetID,
			&sheet.PropertyTenantID,
			&sheet.PropertyID,
			&sheet.Month,
			&sheet.DueDate,
			&sheet.Owed,
			&sheet.Paid,
			&sheet.CreatedAt,
			&sheet.LastUpdatedAt,
		)
		return sheet, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tenant balance sheets: %w", err)
	}

	return mapping.ToDomainTenantBalanceSheetSlice(modelSheets), nil
}

type PgxProviderBalanceSheetRepository struct {
	BaseRepository
}

// newPgxProviderBalanceSheetRepository creates a new repository for provider
// balance sheet data.
func newPgxProviderBalanceSheetRepository(pool *pgxpool.Pool) portsrepo.ProviderBalanceSheetRepositoryFacade {
	return &PgxProviderBalanceSheetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProviderBalanceSheetRepositoryFacade = (*PgxProviderBalanceSheetRepository)(nil)

// UpsertProviderBalanceSheet creates or replaces the row keyed by (provider,
// month) in a single statement.
func (r *PgxProviderBalanceSheetRepository) UpsertProviderBalanceSheet(ctx context.Context, sheet domain.UtilityProviderBalanceSheet) error {
	model := mapping.ToModelProviderBalanceSheet(sheet)
	query := `
		INSERT INTO utility_provider_balance_sheets (utility_provider_balance_sheet_id, utility_provider_id, property_id, month, due_date, owed, paid, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (utility_provider_id, month) DO UPDATE SET
			due_date = EXCLUDED.due_date,
			owed = EXCLUDED.owed,
			paid = EXCLUDED.paid,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		model.UtilityProviderBalanceSheetID,
		model.UtilityProviderID,
		model.PropertyID,
		model.Month,
		model.DueDate,
		model.Owed,
		model.Paid,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert provider balance sheet %s: %w", model.UtilityProviderBalanceSheetID, err)
	}
	return nil
}

// FindProviderBalanceSheet retrieves the provider's row for the given month.
func (r *PgxProviderBalanceSheetRepository) FindProviderBalanceSheet(ctx context.Context, providerID string, month domain.Month) (*domain.UtilityProviderBalanceSheet, error) {
	query := `
		SELECT utility_provider_balance_sheet_id, utility_provider_id, property_id, month, due_date, owed, paid, created_at, last_updated_at
		FROM utility_provider_balance_sheets
		WHERE utility_provider_id = $1 AND month = $2;
	`
	var model models.UtilityProviderBalanceSheet
	err := r.Pool.QueryRow(ctx, query, providerID, month.Start()).Scan(
		&model.UtilityProviderBalanceSheetID,
		&model.UtilityProviderID,
		&model.PropertyID,
		&model.Month,
		&model.DueDate,
		&model.Owed,
		&model.Paid,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find provider balance sheet for %s: %w", month, err)
	}

	sheet := mapping.ToDomainProviderBalanceSheet(model)
	return &sheet, nil
}

// ListProviderBalanceSheets retrieves all rows of a provider, most recent
// month first.
func (r *PgxProviderBalanceSheetRepository) ListProviderBalanceSheets(ctx context.Context, providerID string) ([]domain.UtilityProviderBalanceSheet, error) {
	query := `
		SELECT utility_provider_balance_sheet_id, utility_provider_id, property_id, month, due_date, owed, paid, created_at, last_updated_at
		FROM utility_provider_balance_sheets
		WHERE utility_provider_id = $1
		ORDER BY month DESC;
	`
	rows, err := r.Pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query provider balance sheets: %w", err)
	}
	defer rows.Close()

	modelSheets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.UtilityProviderBalanceSheet, error) {
		var sheet models.UtilityProviderBalanceSheet
		err := row.Scan(
			&sheet.UtilityProviderBalanceSheetID,
			&sheet.UtilityProviderID,
			&sheet.PropertyID,
			&sheet.Month,
			&sheet.DueDate,
			&sheet.Owed,
			&sheet.Paid,
			&sheet.CreatedAt,
			&sheet.LastUpdatedAt,
		)
		return sheet, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan provider balance sheets: %w", err)
	}

	return mapping.ToDomainProviderBalanceSheetSlice(modelSheets), nil
}
