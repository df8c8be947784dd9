package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	portssvc "github.com/propertyops/property_billing_app/internal/core/ports/services"
	"github.com/propertyops/property_billing_app/internal/dto"
)

// paymentService records tenant and utility payments.
type paymentService struct {
	BaseService
	tenancyRepo        portsrepo.TenancyRepositoryFacade
	providerRepo       portsrepo.UtilityProviderRepositoryFacade
	tenantPaymentRepo  portsrepo.TenantPaymentRepositoryFacade
	utilityPaymentRepo portsrepo.UtilityPaymentRepositoryFacade
	now                func() time.Time
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	tenancyRepo portsrepo.TenancyRepositoryFacade,
	providerRepo portsrepo.UtilityProviderRepositoryFacade,
	tenantPaymentRepo portsrepo.TenantPaymentRepositoryFacade,
	utilityPaymentRepo portsrepo.UtilityPaymentRepositoryFacade,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		tenancyRepo:        tenancyRepo,
		providerRepo:       providerRepo,
		tenantPaymentRepo:  tenantPaymentRepo,
		utilityPaymentRepo: utilityPaymentRepo,
		now:                time.Now,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreateTenantPayment(ctx context.Context, tenancyID string, req dto.CreateTenantPaymentRequest) (*domain.TenantPayment, error) {
	tenancy, err := s.tenancyRepo.FindTenancyByID(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenancy %s for payment: %w", tenancyID, err)
	}

	month, err := parseMonthField("month", req.Month)
	if err != nil {
		return nil, err
	}
	paidDate, err := parseDate("paidDate", req.PaidDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	payment := domain.TenantPayment{
		TenantPaymentID:  uuid.NewString(),
		PropertyTenantID: tenancy.PropertyTenantID,
		PropertyID:       tenancy.PropertyID,
		Month:            month,
		Amount:           req.Amount,
		PaidDate:         paidDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.tenantPaymentRepo.SaveTenantPayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create tenant payment: %w", err)
	}

	s.LogInfo(ctx, "Tenant payment recorded",
		slog.String("payment_id", payment.TenantPaymentID),
		slog.String("tenancy_id", tenancyID),
		slog.String("amount", req.Amount.String()))
	return &payment, nil
}

func (s *paymentService) ListTenantPayments(ctx context.Context, tenancyID string) ([]domain.TenantPayment, error) {
	payments, err := s.tenantPaymentRepo.ListTenantPaymentsByTenancy(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for tenancy %s: %w", tenancyID, err)
	}
	if payments == nil {
		return []domain.TenantPayment{}, nil
	}
	return payments, nil
}

func (s *paymentService) DeleteTenantPayment(ctx context.Context, paymentID string) error {
	if err := s.tenantPaymentRepo.DeleteTenantPayment(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to delete tenant payment %s: %w", paymentID, err)
	}
	s.LogInfo(ctx, "Tenant payment deleted", slog.String("payment_id", paymentID))
	return nil
}

func (s *paymentService) CreateUtilityPayment(ctx context.Context, providerID string, req dto.CreateUtilityPaymentRequest) (*domain.UtilityPayment, error) {
	provider, err := s.providerRepo.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find provider %s for payment: %w", providerID, err)
	}

	month, err := parseMonthField("month", req.Month)
	if err != nil {
		return nil, err
	}
	paidDate, err := parseDate("paidDate", req.PaidDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	payment := domain.UtilityPayment{
		UtilityPaymentID:  uuid.NewString(),
		UtilityProviderID: provider.UtilityProviderID,
		PropertyID:        provider.PropertyID,
		Month:             month,
		Amount:            req.Amount,
		PaidDate:          paidDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.utilityPaymentRepo.SaveUtilityPayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create utility payment: %w", err)
	}

	s.LogInfo(ctx, "Utility payment recorded",
		slog.String("payment_id", payment.UtilityPaymentID),
		slog.String("provider_id", providerID),
		slog.String("amount", req.Amount.String()))
	return &payment, nil
}

func (s *paymentService) ListUtilityPayments(ctx context.Context, providerID string) ([]domain.UtilityPayment, error) {
	payments, err := s.utilityPaymentRepo.ListUtilityPaymentsByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for provider %s: %w", providerID, err)
	}
	if payments == nil {
		return []domain.UtilityPayment{}, nil
	}
	return payments, nil
}

func (s *paymentService) DeleteUtilityPayment(ctx context.Context, paymentID string) error {
	if err := s.utilityPaymentRepo.DeleteUtilityPayment(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to delete utility payment %s: %w", paymentID, err)
	}
	s.LogInfo(ctx, "Utility payment deleted", slog.String("payment_id", paymentID))
	return nil
}
