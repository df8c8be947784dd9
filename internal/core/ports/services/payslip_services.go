package services

import (
	"context"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/propertyops/property_billing_app/internal/dto"
)

// PayslipGeneratorSvc composes payslip drafts without persisting them.
type PayslipGeneratorSvc interface {
	// PreviewPayslip computes the tenancy's payslip draft for the given
	// month: rent, resolved utility charges, the previous month's payment
	// difference and any late forecast adjustment. Month defaults to the
	// next calendar month, due date to the configured due day. Generation
	// never fails on missing data; it just yields fewer line items.
	PreviewPayslip(ctx context.Context, tenancyID string, params dto.PayslipPreviewParams) (*domain.PayslipDraft, error)
}

// PayslipWriterSvc defines write operations for payslips.
type PayslipWriterSvc interface {
	// CreatePayslip persists a payslip with the given line items, which may
	// be an edited version of a draft. One payslip per tenancy and month.
	CreatePayslip(ctx context.Context, tenancyID string, req dto.CreatePayslipRequest) (*domain.Payslip, error)

	// DeletePayslip removes a payslip and its line items.
	DeletePayslip(ctx context.Context, payslipID string) error
}

// PayslipReaderSvc defines read operations for payslips.
type PayslipReaderSvc interface {
	// GetPayslipByID retrieves a payslip with its line items.
	GetPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error)

	// ListPayslipsByTenancy retrieves a tenancy's payslips, most recent
	// month first.
	ListPayslipsByTenancy(ctx context.Context, tenancyID string) ([]domain.Payslip, error)
}

// PayslipSvcFacade combines all payslip-related service interfaces.
type PayslipSvcFacade interface {
	PayslipGeneratorSvc
	PayslipReaderSvc
	PayslipWriterSvc
}
