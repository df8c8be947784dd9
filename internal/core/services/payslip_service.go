package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propertyops/property_billing_app/internal/apperrors"
	"github.com/propertyops/property_billing_app/internal/core/domain"
	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	portssvc "github.com/propertyops/property_billing_app/internal/core/ports/services"
	"github.com/propertyops/property_billing_app/internal/dto"
	"github.com/propertyops/property_billing_app/internal/platform/config"
)

// payslipService composes payslip drafts and manages persisted payslips.
type payslipService struct {
	BaseService
	tenancyRepo       portsrepo.TenancyRepositoryFacade
	providerRepo      portsrepo.UtilityProviderRepositoryFacade
	payslipRepo       portsrepo.PayslipRepositoryFacade
	tenantPaymentRepo portsrepo.TenantPaymentRepositoryFacade
	forecastRepo      portsrepo.ForecastRepositoryFacade
	forecastSvc       portssvc.ForecastResolverSvc
	billing           config.BillingConfig
	now               func() time.Time
}

// NewPayslipService creates a new payslip service.
func NewPayslipService(
	tenancyRepo portsrepo.TenancyRepositoryFacade,
	providerRepo portsrepo.UtilityProviderRepositoryFacade,
	payslipRepo portsrepo.PayslipRepositoryFacade,
	tenantPaymentRepo portsrepo.TenantPaymentRepositoryFacade,
	forecastRepo portsrepo.ForecastRepositoryFacade,
	forecastSvc portssvc.ForecastResolverSvc,
	billing config.BillingConfig,
) portssvc.PayslipSvcFacade {
	return &payslipService{
		tenancyRepo:       tenancyRepo,
		providerRepo:      providerRepo,
		payslipRepo:       payslipRepo,
		tenantPaymentRepo: tenantPaymentRepo,
		forecastRepo:      forecastRepo,
		forecastSvc:       forecastSvc,
		billing:           billing,
		now:               time.Now,
	}
}

var _ portssvc.PayslipSvcFacade = (*payslipService)(nil)

// PreviewPayslip builds the tenancy's draft for the month. Line items are
// appended in a fixed order: rent, utilities per provider, the previous
// month's payment difference, then the late forecast adjustment. Missing
// data only shrinks the draft, it never fails generation.
func (s *payslipService) PreviewPayslip(ctx context.Context, tenancyID string, params dto.PayslipPreviewParams) (*domain.PayslipDraft, error) {
	tenancy, err := s.tenancyRepo.FindTenancyByID(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenancy %s for preview: %w", tenancyID, err)
	}

	month := domain.MonthOf(s.now()).Next()
	if params.Month != "" {
		month, err = parseMonthField("month", params.Month)
		if err != nil {
			return nil, err
		}
	}
	dueDate := month.Date(s.billing.DefaultDueDay)
	if params.DueDate != "" {
		dueDate, err = parseDate("due_date", params.DueDate)
		if err != nil {
			return nil, err
		}
	}

	draft := domain.PayslipDraft{
		PropertyID:       tenancy.PropertyID,
		PropertyTenantID: tenancy.PropertyTenantID,
		Month:            month,
		DueDate:          dueDate,
		LineItems: []domain.DraftLineItem{
			{Name: s.billing.RentLabel, Amount: tenancy.RentAmount},
		},
	}

	providers, err := s.providerRepo.ListProvidersByProperty(ctx, tenancy.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers for preview: %w", err)
	}
	for _, provider := range providers {
		resolved, err := s.forecastSvc.ResolveLineItemsForMonth(ctx, provider, month)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve line items for provider %s: %w", provider.UtilityProviderID, err)
		}
		for _, li := range resolved {
			draft.LineItems = append(draft.LineItems, domain.DraftLineItem{
				Name:   provider.Name + " - " + li.Name,
				Amount: li.Amount,
			})
		}
	}

	// Both adjustments reconcile against the previous month's persisted
	// payslip; without one there is nothing to settle.
	prevMonth := month.Prev()
	prevPayslip, err := s.payslipRepo.FindPayslipForMonth(ctx, tenancyID, prevMonth)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &draft, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payslip for %s: %w", prevMonth, err)
	}

	diffItem, err := s.paymentDifferenceItem(ctx, tenancyID, prevMonth, prevPayslip)
	if err != nil {
		return nil, err
	}
	if diffItem != nil {
		draft.LineItems = append(draft.LineItems, *diffItem)
	}

	adjItem, err := s.forecastAdjustmentItem(ctx, providers, prevMonth, prevPayslip)
	if err != nil {
		return nil, err
	}
	if adjItem != nil {
		draft.LineItems = append(draft.LineItems, *adjItem)
	}

	return &draft, nil
}

// paymentDifferenceItem compares what the tenant paid during the previous
// month against that month's payslip total. Overpayment becomes a credit
// line, underpayment a debt line, an exact match no line at all.
func (s *payslipService) paymentDifferenceItem(ctx context.Context, tenancyID string, prevMonth domain.Month, prevPayslip *domain.Payslip) (*domain.DraftLineItem, error) {
	totalPaid, err := s.tenantPaymentRepo.SumTenantPaymentsPaidIn(ctx, tenancyID, prevMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments for %s: %w", prevMonth, err)
	}

	difference := totalPaid.Sub(prevPayslip.TotalAmount())
	switch {
	case difference.IsPositive():
		return &domain.DraftLineItem{Name: s.billing.OverpaymentLabel, Amount: difference.Neg()}, nil
	case difference.IsNegative():
		return &domain.DraftLineItem{Name: s.billing.UnderpaymentLabel, Amount: difference.Neg()}, nil
	default:
		return nil, nil
	}
}

// forecastAdjustmentItem settles corrections issued after the previous
// payslip was created. For each provider it recovers the amounts the payslip
// billed from the "<provider> - <item>" naming convention, compares them to
// the forecast now considered current for that month, and sums the deltas.
func (s *payslipService) forecastAdjustmentItem(ctx context.Context, providers []domain.UtilityProvider, prevMonth domain.Month, prevPayslip *domain.Payslip) (*domain.DraftLineItem, error) {
	totalAdjustment := decimal.Zero

	for _, provider := range providers {
		billed := billedAmountsForProvider(prevPayslip, provider.Name)

		current, err := s.forecastRepo.FindLatestForecastForMonth(ctx, provider.UtilityProviderID, prevMonth, &prevPayslip.CreatedAt)
		if errors.Is(err, apperrors.ErrNotFound) {
			current, err = s.forecastRepo.FindLatestForecastForMonth(ctx, provider.UtilityProviderID, prevMonth, nil)
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find current forecast for provider %s: %w", provider.UtilityProviderID, err)
		}

		for _, li := range current.ItemsDueIn(prevMonth) {
			totalAdjustment = totalAdjustment.Add(li.Amount.Sub(billed[li.Name]))
		}
	}

	if totalAdjustment.IsZero() {
		return nil, nil
	}
	return &domain.DraftLineItem{Name: s.billing.AdjustmentLabel, Amount: totalAdjustment}, nil
}

// billedAmountsForProvider recovers the per-item amounts a payslip billed for
// one provider by stripping the provider prefix from its line item names.
func billedAmountsForProvider(payslip *domain.Payslip, providerName string) map[string]decimal.Decimal {
	prefix := providerName + " - "
	billed := make(map[string]decimal.Decimal)
	for _, li := range payslip.LineItems {
		if name, ok := strings.CutPrefix(li.Name, prefix); ok {
			billed[name] = li.Amount
		}
	}
	return billed
}

func (s *payslipService) CreatePayslip(ctx context.Context, tenancyID string, req dto.CreatePayslipRequest) (*domain.Payslip, error) {
	tenancy, err := s.tenancyRepo.FindTenancyByID(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenancy %s for payslip: %w", tenancyID, err)
	}

	month, err := parseMonthField("month", req.Month)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate("dueDate", req.DueDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	payslip := domain.Payslip{
		PayslipID:        uuid.NewString(),
		PropertyID:       tenancy.PropertyID,
		PropertyTenantID: tenancy.PropertyTenantID,
		Month:            month,
		DueDate:          dueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	for _, input := range req.LineItems {
		if strings.TrimSpace(input.Name) == "" {
			return nil, fmt.Errorf("%w: payslip line item name is required", apperrors.ErrValidation)
		}
		payslip.LineItems = append(payslip.LineItems, domain.PayslipLineItem{
			PayslipLineItemID: uuid.NewString(),
			PayslipID:         payslip.PayslipID,
			Name:              input.Name,
			Amount:            input.Amount,
		})
	}

	if err := s.payslipRepo.SavePayslip(ctx, payslip); err != nil {
		return nil, fmt.Errorf("failed to create payslip for %s: %w", month, err)
	}

	s.LogInfo(ctx, "Payslip created",
		slog.String("payslip_id", payslip.PayslipID),
		slog.String("tenancy_id", tenancyID),
		slog.String("month", month.String()),
		slog.String("total", payslip.TotalAmount().String()))
	return &payslip, nil
}

func (s *payslipService) GetPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error) {
	payslip, err := s.payslipRepo.FindPayslipByID(ctx, payslipID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payslip %s: %w", payslipID, err)
	}
	return payslip, nil
}

func (s *payslipService) ListPayslipsByTenancy(ctx context.Context, tenancyID string) ([]domain.Payslip, error) {
	payslips, err := s.payslipRepo.ListPayslipsByTenancy(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips for tenancy %s: %w", tenancyID, err)
	}
	if payslips == nil {
		return []domain.Payslip{}, nil
	}
	return payslips, nil
}

func (s *payslipService) DeletePayslip(ctx context.Context, payslipID string) error {
	if err := s.payslipRepo.DeletePayslip(ctx, payslipID); err != nil {
		return fmt.Errorf("failed to delete payslip %s: %w", payslipID, err)
	}
	s.LogInfo(ctx, "Payslip deleted", slog.String("payslip_id", payslipID))
	return nil
}
