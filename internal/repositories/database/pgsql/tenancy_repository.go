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

type PgxTenancyRepository struct {
	BaseRepository
}

// newPgxTenancyRepository creates a new repository for tenancy data.
func newPgxTenancyRepository(pool *pgxpool.Pool) portsrepo.TenancyRepositoryFacade {
	return &PgxTenancyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TenancyRepositoryFacade = (*PgxTenancyRepository)(nil)

// SaveTenancy inserts a new tenancy.
func (r *PgxTenancyRepository) SaveTenancy(ctx context.Context, tenancy domain.PropertyTenant) error {
	model := mapping.ToModelTenancy(tenancy)
	query := `
		INSERT INTO property_tenants (property_tenant_id, property_id, tenant_name, rent_amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.PropertyTenantID,
		model.PropertyID,
		model.TenantName,
		model.RentAmount,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save tenancy %s: %w", model.PropertyTenantID, err)
	}
	return nil
}

// FindTenancyByID retrieves a tenancy by its ID.
func (r *PgxTenancyRepository) FindTenancyByID(ctx context.Context, tenancyID string) (*domain.PropertyTenant, error) {
	query := `
		SELECT property_tenant_id, property_id, tenant_name, rent_amount, created_at, last_updated_at
		FROM property_tenants
		WHERE property_tenant_id = $1;
	`
	var model models.PropertyTenant
	err := r.Pool.QueryRow(ctx, query, tenancyID).Scan(
		&model.PropertyTenantID,
		&model.PropertyID,
		&model.TenantName,
		&model.RentAmount,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenancy %s: %w", tenancyID, err)
	}

	tenancy := mapping.ToDomainTenancy(model)
	return &tenancy, nil
}

// ListTenanciesByProperty retrieves all tenancies of a property ordered by
// creation time.
func (r *PgxTenancyRepository) ListTenanciesByProperty(ctx context.Context, propertyID string) ([]domain.PropertyTenant, error) {
	query := `
		SELECT property_tenant_id, property_id, tenant_name, rent_amount, created_at, last_updated_at
		FROM property_tenants
		WHERE property_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenancies: %w", err)
	}
	defer rows.Close()

	modelTenancies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PropertyTenant, error) {
		var tenancy models.PropertyTenant
		err := row.Scan(
			&tenancy.PropertyTenantID,
			&tenancy.PropertyID,
			&tenancy.TenantName,
			&tenancy.RentAmount,
			&tenancy.CreatedAt,
			&tenancy.LastUpdatedAt,
		)
		return tenancy, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tenancies: %w", err)
	}

	return mapping.ToDomainTenancySlice(modelTenancies), nil
}

// UpdateTenancy updates an existing tenancy.
func (r *PgxTenancyRepository) UpdateTenancy(ctx context.Context, tenancy domain.PropertyTenant) error {
	model := mapping.ToModelTenancy(tenancy)
	query := `
		UPDATE property_tenants
		SET tenant_name = $2, rent_amount = $3, last_updated_at = $4
		WHERE property_tenant_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.PropertyTenantID,
		model.TenantName,
		model.RentAmount,
		model.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update tenancy %s: %w", model.PropertyTenantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTenancy removes a tenancy; payslips, payments and balance sheets
// cascade.
func (r *PgxTenancyRepository) DeleteTenancy(ctx context.Context, tenancyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM property_tenants WHERE property_tenant_id = $1;`, tenancyID)
	if err != nil {
		return fmt.Errorf("failed to delete tenancy %s: %w", tenancyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
