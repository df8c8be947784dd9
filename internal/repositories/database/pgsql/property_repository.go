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

type PgxPropertyRepository struct {
	BaseRepository
}

// newPgxPropertyRepository creates a new repository for property data.
func newPgxPropertyRepository(pool *pgxpool.Pool) portsrepo.PropertyRepositoryFacade {
	return &PgxPropertyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PropertyRepositoryFacade = (*PgxPropertyRepository)(nil)

// SaveProperty inserts a new property.
func (r *PgxPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) error {
	model := mapping.ToModelProperty(property)
	query := `
		INSERT INTO properties (property_id, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.PropertyID,
		model.Name,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save property %s: %w", model.PropertyID, err)
	}
	return nil
}

// FindPropertyByID retrieves a property by its ID.
func (r *PgxPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	query := `
		SELECT property_id, name, created_at, last_updated_at
		FROM properties
		WHERE property_id = $1;
	`
	var model models.Property
	err := r.Pool.QueryRow(ctx, query, propertyID).Scan(
		&model.PropertyID,
		&model.Name,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find property %s: %w", propertyID, err)
	}

	property := mapping.ToDomainProperty(model)
	return &property, nil
}

// ListProperties retrieves all properties ordered by creation time.
func (r *PgxPropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	query := `
		SELECT property_id, name, created_at, last_updated_at
		FROM properties
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	modelProperties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Property, error) {
		var property models.Property
		err := row.Scan(
			&property.PropertyID,
			&property.Name,
			&property.CreatedAt,
			&property.LastUpdatedAt,
		)
		return property, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan properties: %w", err)
	}

	return mapping.ToDomainPropertySlice(modelProperties), nil
}

// UpdateProperty updates an existing property.
func (r *PgxPropertyRepository) UpdateProperty(ctx context.Context, property domain.Property) error {
	model := mapping.ToModelProperty(property)
	query := `
		UPDATE properties
		SET name = $2, last_updated_at = $3
		WHERE property_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.PropertyID,
		model.Name,
		model.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update property %s: %w", model.PropertyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProperty removes a property; everything it owns cascades.
func (r *PgxPropertyRepository) DeleteProperty(ctx context.Context, propertyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM properties WHERE property_id = $1;`, propertyID)
	if err != nil {
		return fmt.Errorf("failed to delete property %s: %w", propertyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
