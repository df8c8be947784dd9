package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/propertyops/property_billing_app/internal/apperrors"
	"github.com/propertyops/property_billing_app/internal/core/domain"
	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	"github.com/propertyops/property_billing_app/internal/models"
	"github.com/propertyops/property_billing_app/internal/utils/mapping"
)

type PgxTenantPaymentRepository struct {
	BaseRepository
}

// newPgxTenantPaymentRepository creates a new repository for tenant payment data.
func newPgxTenantPaymentRepository(pool *pgxpool.Pool) portsrepo.TenantPaymentRepositoryFacade {
	return &PgxTenantPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TenantPaymentRepositoryFacade = (*PgxTenantPaymentRepository)(nil)

// SaveTenantPayment inserts a new tenant payment. The unique
// (property_tenant_id, month) constraint surfaces as ErrDuplicate.
func (r *PgxTenantPaymentRepository) SaveTenantPayment(ctx context.Context, payment domain.TenantPayment) error {
	model := mapping.ToModelTenantPayment(payment)
	query := `
		INSERT INTO tenant_payments (tenant_payment_id, property_tenant_id, property_id, month, amount, paid_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.TenantPaymentID,
		model.PropertyTenantID,
		model.PropertyID,
		model.Month,
		model.Amount,
		model.PaidDate,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: payment already exists for this tenancy and month", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save tenant payment %s: %w", model.TenantPaymentID, err)
	}
	return nil
}

// FindTenantPaymentByID retrieves a tenant payment by its ID.
func (r *PgxTenantPaymentRepository) FindTenantPaymentByID(ctx context.Context, paymentID string) (*domain.TenantPayment, error) {
	query := `
		SELECT tenant_payment_id, property_tenant_id, property_id, month, amount, paid_date, created_at, last_updated_at
		FROM tenant_payments
		WHERE tenant_payment_id = $1;
	`
	var model models.TenantPayment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&model.TenantPaymentID,
		&model.PropertyTenantID,
		&model.PropertyID,
		&model.Month,
		&model.Amount,
		&model.PaidDate,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant payment %s: %w", paymentID, err)
	}

	payment := mapping.ToDomainTenantPayment(model)
	return &payment, nil
}

// ListTenantPaymentsByTenancy retrieves a tenancy's payments, most recent
// paid date first.
func (r *PgxTenantPaymentRepository) ListTenantPaymentsByTenancy(ctx context.Context, tenancyID string) ([]domain.TenantPayment, error) {
	query := `
		SELECT tenant_payment_id, property_tenant_id, property_id, month, amount, paid_date, created_at, last_updated_at
		FROM tenant_payments
		WHERE property_tenant_id = $1
		ORDER BY paid_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant payments: %w", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TenantPayment, error) {
		var payment models.TenantPayment
		err := row.Scan(
			&payment.TenantPaymentID,
			&payment.PropertyTenantID,
			&payment.PropertyID,
			&payment.Month,
			&payment.Amount,
			&payment.PaidDate,
			&payment.CreatedAt,
			&payment.LastUpdatedAt,
		)
		return payment, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tenant payments: %w", err)
	}

	return mapping.ToDomainTenantPaymentSlice(modelPayments), nil
}

// SumTenantPaymentsPaidIn sums payments whose paid date falls within the
// month, irrespective of the payment's own month attribute.
func (r *PgxTenantPaymentRepository) SumTenantPaymentsPaidIn(ctx context.Context, tenancyID string, month domain.Month) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM tenant_payments
		WHERE property_tenant_id = $1 AND paid_date BETWEEN $2 AND $3;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, tenancyID, month.Start(), month.End()).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum tenant payments for %s: %w", month, err)
	}
	return total, nil
}

// ListTenantPaymentPaidDates retrieves the paid dates of every payment of the
// tenancy.
func (r *PgxTenantPaymentRepository) ListTenantPaymentPaidDates(ctx context.Context, tenancyID string) ([]time.Time, error) {
	query := `
		SELECT paid_date
		FROM tenant_payments
		WHERE property_tenant_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant payment paid dates: %w", err)
	}
	defer rows.Close()

	dates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (time.Time, error) {
		var d time.Time
		err := row.Scan(&d)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan paid dates: %w", err)
	}
	return dates, nil
}

// DeleteTenantPayment removes a tenant payment.
func (r *PgxTenantPaymentRepository) DeleteTenantPayment(ctx context.Context, paymentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM tenant_payments WHERE tenant_payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete tenant payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
