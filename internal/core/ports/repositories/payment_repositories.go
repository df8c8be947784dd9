package repositories

import (
	"context"
	"time"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TenantPaymentReader defines read operations for tenant payment data.
type TenantPaymentReader interface {
	// FindTenantPaymentByID retrieves a specific tenant payment.
	FindTenantPaymentByID(ctx context.Context, paymentID string) (*domain.TenantPayment, error)

	// ListTenantPaymentsByTenancy retrieves all payments of a tenancy,
	// most recent paid date first.
	ListTenantPaymentsByTenancy(ctx context.Context, tenancyID string) ([]domain.TenantPayment, error)

	// SumTenantPaymentsPaidIn sums payments whose paid date falls within the
	// month, irrespective of the payment's own month attribute.
	SumTenantPaymentsPaidIn(ctx context.Context, tenancyID string, month domain.Month) (decimal.Decimal, error)

	// ListTenantPaymentPaidDates retrieves the paid dates of every payment
	// of the tenancy.
	ListTenantPaymentPaidDates(ctx context.Context, tenancyID string) ([]time.Time, error)
}

// TenantPaymentWriter defines write operations for tenant payment data.
type TenantPaymentWriter interface {
	// SaveTenantPayment persists a new tenant payment.
	SaveTenantPayment(ctx context.Context, payment domain.TenantPayment) error

	// DeleteTenantPayment removes a tenant payment.
	DeleteTenantPayment(ctx context.Context, paymentID string) error
}

// TenantPaymentRepositoryFacade combines tenant payment repository interfaces.
type TenantPaymentRepositoryFacade interface {
	TenantPaymentReader
	TenantPaymentWriter
}

// UtilityPaymentReader defines read operations for utility payment data.
type UtilityPaymentReader interface {
	// FindUtilityPaymentByID retrieves a specific utility payment.
	FindUtilityPaymentByID(ctx context.Context, paymentID string) (*domain.UtilityPayment, error)

	// ListUtilityPaymentsByProvider retrieves all payments to a provider,
	// most recent paid date first.
	ListUtilityPaymentsByProvider(ctx context.Context, providerID string) ([]domain.UtilityPayment, error)

	// SumUtilityPaymentsPaidIn sums payments whose paid date falls within
	// the month.
	SumUtilityPaymentsPaidIn(ctx context.Context, providerID string, month domain.Month) (decimal.Decimal, error)

	// ListUtilityPaymentPaidDates retrieves the paid dates of every payment
	// to the provider.
	ListUtilityPaymentPaidDates(ctx context.Context, providerID string) ([]time.Time, error)
}

// UtilityPaymentWriter defines write operations for utility payment data.
type UtilityPaymentWriter interface {
	// SaveUtilityPayment persists a new utility payment.
	SaveUtilityPayment(ctx context.Context, payment domain.UtilityPayment) error

	// DeleteUtilityPayment removes a utility payment.
	DeleteUtilityPayment(ctx context.Context, paymentID string) error
}

// UtilityPaymentRepositoryFacade combines utility payment repository interfaces.
type UtilityPaymentRepositoryFacade interface {
	UtilityPaymentReader
	UtilityPaymentWriter
}
