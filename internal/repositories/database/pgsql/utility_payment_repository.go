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

type PgxUtilityPaymentRepository struct {
	BaseRepository
}

// newPgxUtilityPaymentRepository creates a new repository for utility payment data.
func newPgxUtilityPaymentRepository(pool *pgxpool.Pool) portsrepo.UtilityPaymentRepositoryFacade {
	return &PgxUtilityPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UtilityPaymentRepositoryFacade = (*PgxUtilityPaymentRepository)(nil)

// SaveUtilityPayment inserts a new utility payment. The unique
// (utility_provider_id, month) constraint surfaces as ErrDuplicate.
func (r *PgxUtilityPaymentRepository) SaveUtilityPayment(ctx context.Context, payment domain.UtilityPayment) error {
	model := mapping.ToModelUtilityPayment(payment)
	query := `
		INSERT INTO utility_payments (utility_payment_id, utility_provider_id, property_id, month, amount, paid_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.UtilityPaymentID,
		model.UtilityProviderID,
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
			return fmt.Errorf("%w: payment already exists for this provider and month", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save utility payment %s: %w", model.UtilityPaymentID, err)
	}
	return nil
}

// FindUtilityPaymentByID retrieves a utility payment by its ID.
func (r *PgxUtilityPaymentRepository) FindUtilityPaymentByID(ctx context.Context, paymentID string) (*domain.UtilityPayment, error) {
	query := `
		SELECT utility_payment_id, utility_provider_id, property_id, month, amount, paid_date, created_at, last_updated_at
		FROM utility_payments
		WHERE utility_payment_id = $1;
	`
	var model models.UtilityPayment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&model.UtilityPaymentID,
		&model.UtilityProviderID,
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
		return nil, fmt.Errorf("failed to find utility payment %s: %w", paymentID, err)
	}

	payment := mapping.ToDomainUtilityPayment(model)
	return &payment, nil
}

// ListUtilityPaymentsByProvider retrieves a provider's payments, most recent
// paid date first.
func (r *PgxUtilityPaymentRepository) ListUtilityPaymentsByProvider(ctx context.Context, providerID string) ([]domain.UtilityPayment, error) {
	query := `
		SELECT utility_payment_id, utility_provider_id, property_id, month, amount, paid_date, created_at, last_updated_at
		FROM utility_payments
		WHERE utility_provider_id = $1
		ORDER BY paid_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query utility payments: %w", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.UtilityPayment, error) {
		var payment models.UtilityPayment
		err := row.Scan(
			&payment.UtilityPaymentID,
			&payment.UtilityProviderID,
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
		return nil, fmt.Errorf("failed to scan utility payments: %w", err)
	}

	return mapping.ToDomainUtilityPaymentSlice(modelPayments), nil
}

// SumUtilityPaymentsPaidIn sums payments whose paid date falls within the
// month.
func (r *PgxUtilityPaymentRepository) SumUtilityPaymentsPaidIn(ctx context.Context, providerID string, month domain.Month) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM utility_payments
		WHERE utility_provider_id = $1 AND paid_date BETWEEN $2 AND $3;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, providerID, month.Start(), month.End()).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum utility payments for %s: %w", month, err)
	}
	return total, nil
}

// ListUtilityPaymentPaidDates retrieves the paid dates of every payment to
// the provider.
func (r *PgxUtilityPaymentRepository) ListUtilityPaymentPaidDates(ctx context.Context, providerID string) ([]time.Time, error) {
	query := `
		SELECT paid_date
		FROM utility_payments
		WHERE utility_provider_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query utility payment paid dates: %w", err)
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

// DeleteUtilityPayment removes a utility payment.
func (r *PgxUtilityPaymentRepository) DeleteUtilityPayment(ctx context.Context, paymentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM utility_payments WHERE utility_payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete utility payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
