package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propertyops/property_billing_app/internal/apperrors"
	"github.com/propertyops/property_billing_app/internal/core/domain"
	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	"github.com/propertyops/property_billing_app/internal/models"
	"github.com/propertyops/property_billing_app/internal/utils/mapping"
)

type PgxPayslipRepository struct {
	BaseRepository
}

// newPgxPayslipRepository creates a new repository for payslip data.
func newPgxPayslipRepository(pool *pgxpool.Pool) portsrepo.PayslipRepositoryFacade {
	return &PgxPayslipRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PayslipRepositoryFacade = (*PgxPayslipRepository)(nil)

// SavePayslip inserts a payslip and its line items in one transaction. The
// unique (property_tenant_id, month) constraint surfaces as ErrDuplicate.
func (r *PgxPayslipRepository) SavePayslip(ctx context.Context, payslip domain.Payslip) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	model := mapping.ToModelPayslip(payslip)
	payslipQuery := `
		INSERT INTO payslips (payslip_id, property_id, property_tenant_id, month, due_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, payslipQuery,
		model.PayslipID,
		model.PropertyID,
		model.PropertyTenantID,
		model.Month,
		model.DueDate,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: payslip already exists for this tenancy and month", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert payslip %s: %w", model.PayslipID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO payslip_line_items (payslip_line_item_id, payslip_id, position, name, amount)
		VALUES ($1, $2, $3, $4, $5);
	`
	for i, li := range payslip.LineItems {
		item := mapping.ToModelPayslipLineItem(li, i)
		batch.Queue(itemQuery,
			item.PayslipLineItemID,
			item.PayslipID,
			item.Position,
			item.Name,
			item.Amount,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert payslip line items: %w", err)
	}

	return r.Commit(ctx, tx)
}

// DeletePayslip removes a payslip; its line items cascade.
func (r *PgxPayslipRepository) DeletePayslip(ctx context.Context, payslipID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payslips WHERE payslip_id = $1;`, payslipID)
	if err != nil {
		return fmt.Errorf("failed to delete payslip %s: %w", payslipID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPayslipByID retrieves a payslip with its line items.
func (r *PgxPayslipRepository) FindPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error) {
	query := `
		SELECT payslip_id, property_id, property_tenant_id, month, due_date, created_at, last_updated_at
		FROM payslips
		WHERE payslip_id = $1;
	`
	return r.queryOnePayslip(ctx, query, payslipID)
}

// FindPayslipForMonth retrieves the tenancy's payslip for the given month.
func (r *PgxPayslipRepository) FindPayslipForMonth(ctx context.Context, tenancyID string, month domain.Month) (*domain.Payslip, error) {
	query := `
		SELECT payslip_id, property_id, property_tenant_id, month, due_date, created_at, last_updated_at
		FROM payslips
		WHERE property_tenant_id = $1 AND month = $2;
	`
	return r.queryOnePayslip(ctx, query, tenancyID, month.Start())
}

// ListPayslipsByTenancy retrieves a tenancy's payslips with their line items,
// most recent month first.
func (r *PgxPayslipRepository) ListPayslipsByTenancy(ctx context.Context, tenancyID string) ([]domain.Payslip, error) {
	query := `
		SELECT payslip_id, property_id, property_tenant_id, month, due_date, created_at, last_updated_at
		FROM payslips
		WHERE property_tenant_id = $1
		ORDER BY month DESC;
	`
	rows, err := r.Pool.Query(ctx, query, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payslips: %w", err)
	}
	defer rows.Close()

	modelPayslips, err := pgx.CollectRows(rows, scanPayslip)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payslips: %w", err)
	}
	if len(modelPayslips) == 0 {
		return []domain.Payslip{}, nil
	}

	ids := make([]string, len(modelPayslips))
	for i, p := range modelPayslips {
		ids[i] = p.PayslipID
	}
	itemsByPayslip, err := r.findLineItemsByPayslipIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	payslips := make([]domain.Payslip, len(modelPayslips))
	for i, p := range modelPayslips {
		payslips[i] = mapping.ToDomainPayslip(p, itemsByPayslip[p.PayslipID])
	}
	return payslips, nil
}

// ListPayslipMonths retrieves the distinct months the tenancy has payslips
// for.
func (r *PgxPayslipRepository) ListPayslipMonths(ctx context.Context, tenancyID string) ([]domain.Month, error) {
	query := `
		SELECT DISTINCT month
		FROM payslips
		WHERE property_tenant_id = $1
		ORDER BY month;
	`
	rows, err := r.Pool.Query(ctx, query, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payslip months: %w", err)
	}
	defer rows.Close()

	months, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Month, error) {
		var t time.Time
		if err := row.Scan(&t); err != nil {
			return domain.Month{}, err
		}
		return domain.MonthOf(t), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payslip months: %w", err)
	}
	return months, nil
}

func (r *PgxPayslipRepository) queryOnePayslip(ctx context.Context, query string, args ...any) (*domain.Payslip, error) {
	var model models.Payslip
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&model.PayslipID,
		&model.PropertyID,
		&model.PropertyTenantID,
		&model.Month,
		&model.DueDate,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payslip: %w", err)
	}

	items, err := r.findLineItemsByPayslipIDs(ctx, []string{model.PayslipID})
	if err != nil {
		return nil, err
	}
	payslip := mapping.ToDomainPayslip(model, items[model.PayslipID])
	return &payslip, nil
}

func (r *PgxPayslipRepository) findLineItemsByPayslipIDs(ctx context.Context, payslipIDs []string) (map[string][]models.PayslipLineItem, error) {
	query := `
		SELECT payslip_line_item_id, payslip_id, position, name, amount
		FROM payslip_line_items
		WHERE payslip_id = ANY($1)
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, payslipIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query payslip line items: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PayslipLineItem, error) {
		var li models.PayslipLineItem
		err := row.Scan(
			&li.PayslipLineItemID,
			&li.PayslipID,
			&li.Position,
			&li.Name,
			&li.Amount,
		)
		return li, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payslip line items: %w", err)
	}

	byPayslip := make(map[string][]models.PayslipLineItem, len(payslipIDs))
	for _, item := range modelItems {
		byPayslip[item.PayslipID] = append(byPayslip[item.PayslipID], item)
	}
	return byPayslip, nil
}

func scanPayslip(row pgx.CollectableRow) (models.Payslip, error) {
	var p models.Payslip
	err := row.Scan(
		&p.PayslipID,
		&p.PropertyID,
		&p.PropertyTenantID,
		&p.Month,
		&p.DueDate,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	return p, err
}
