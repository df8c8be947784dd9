package repositories

import (
	"context"

	"github.com/propertyops/property_billing_app/internal/core/domain"
)

// PayslipReader defines read operations for payslip data.
type PayslipReader interface {
	// FindPayslipByID retrieves a payslip with its line items.
	FindPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error)

	// FindPayslipForMonth retrieves the tenancy's payslip for the given
	// month with its line items. Returns apperrors.ErrNotFound when the
	// month has no payslip.
	FindPayslipForMonth(ctx context.Context, tenancyID string, month domain.Month) (*domain.Payslip, error)

	// ListPayslipsByTenancy retrieves all payslips of a tenancy with their
	// line items, most recent month first.
	ListPayslipsByTenancy(ctx context.Context, tenancyID string) ([]domain.Payslip, error)

	// ListPayslipMonths retrieves the distinct months the tenancy has
	// payslips for.
	ListPayslipMonths(ctx context.Context, tenancyID string) ([]domain.Month, error)
}

// PayslipWriter defines write operations for payslip data.
type PayslipWriter interface {
	// SavePayslip persists a payslip and its line items in one transaction.
	// Violating the one-payslip-per-month constraint surfaces as
	// apperrors.ErrDuplicate.
	SavePayslip(ctx context.Context, payslip domain.Payslip) error

	// DeletePayslip removes a payslip; its line items cascade.
	DeletePayslip(ctx context.Context, payslipID string) error
}

// PayslipRepositoryFacade combines all payslip-related repository interfaces.
type PayslipRepositoryFacade interface {
	PayslipReader
	PayslipWriter
}
