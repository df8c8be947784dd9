package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propertyops/property_billing_app/internal/apperrors"
	"github.com/propertyops/property_billing_app/internal/core/domain"
	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	portssvc "github.com/propertyops/property_billing_app/internal/core/ports/services"
	"github.com/propertyops/property_billing_app/internal/platform/config"
)

// tenantBalanceService derives and persists per-month owed/paid snapshots
// for tenancies.
//
// Owed is payslip-based: the month's payslip total plus any forecast line
// items issued after that payslip was created. A month with no payslip falls
// back to forecasts issued by the month's end. Paid is the sum of payments
// by paid date, irrespective of the payment's own month attribute.
type tenantBalanceService struct {
	BaseService
	tenancyRepo       portsrepo.TenancyRepositoryFacade
	providerRepo      portsrepo.UtilityProviderRepositoryFacade
	payslipRepo       portsrepo.PayslipRepositoryFacade
	tenantPaymentRepo portsrepo.TenantPaymentRepositoryFacade
	forecastRepo      portsrepo.ForecastRepositoryFacade
	sheetRepo         portsrepo.TenantBalanceSheetRepositoryFacade
	billing           config.BillingConfig
	now               func() time.Time
}

// NewTenantBalanceService creates a new tenant balance sheet service.
func NewTenantBalanceService(
	tenancyRepo portsrepo.TenancyRepositoryFacade,
	providerRepo portsrepo.UtilityProviderRepositoryFacade,
	payslipRepo portsrepo.PayslipRepositoryFacade,
	tenantPaymentRepo portsrepo.TenantPaymentRepositoryFacade,
	forecastRepo portsrepo.ForecastRepositoryFacade,
	sheetRepo portsrepo.TenantBalanceSheetRepositoryFacade,
	billing config.BillingConfig,
) portssvc.TenantBalanceSvcFacade {
	return &tenantBalanceService{
		tenancyRepo:       tenancyRepo,
		providerRepo:      providerRepo,
		payslipRepo:       payslipRepo,
		tenantPaymentRepo: tenantPaymentRepo,
		forecastRepo:      forecastRepo,
		sheetRepo:         sheetRepo,
		billing:           billing,
		now:               time.Now,
	}
}

var _ portssvc.TenantBalanceSvcFacade = (*tenantBalanceService)(nil)

func (s *tenantBalanceService) UpdateBalanceSheetForMonth(ctx context.Context, tenancyID string, month domain.Month, allowUpdate bool) (*domain.TenantBalanceSheet, error) {
	tenancy, err := s.tenancyRepo.FindTenancyByID(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenancy %s for balance sheet: %w", tenancyID, err)
	}

	existing, err := s.sheetRepo.FindTenantBalanceSheet(ctx, tenancyID, month)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find balance sheet for %s: %w", month, err)
	}
	// Past months stay frozen: an existing row is only recomputed when the
	// caller explicitly allows it.
	if existing != nil && !allowUpdate {
		return existing, nil
	}

	payslip, err := s.payslipRepo.FindPayslipForMonth(ctx, tenancyID, month)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find payslip for %s: %w", month, err)
	}

	owed, err := s.calculateOwed(ctx, tenancy.PropertyID, month, payslip)
	if err != nil {
		return nil, err
	}
	paid, err := s.tenantPaymentRepo.SumTenantPaymentsPaidIn(ctx, tenancyID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments for %s: %w", month, err)
	}

	dueDate := month.Date(s.billing.DefaultDueDay)
	if payslip != nil {
		dueDate = payslip.DueDate
	}

	now := s.now()
	sheet := domain.TenantBalanceSheet{
		TenantBalanceSheetID: uuid.NewString(),
		PropertyTenantID:     tenancy.PropertyTenantID,
		PropertyID:           tenancy.PropertyID,
		Month:                month,
		DueDate:              dueDate,
		Owed:                 owed,
		Paid:                 paid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if existing != nil {
		sheet.TenantBalanceSheetID = existing.TenantBalanceSheetID
		sheet.CreatedAt = existing.CreatedAt
	}

	if err := s.sheetRepo.UpsertTenantBalanceSheet(ctx, sheet); err != nil {
		return nil, fmt.Errorf("failed to upsert balance sheet for %s: %w", month, err)
	}

	s.LogDebug(ctx, "Tenant balance sheet updated",
		slog.String("tenancy_id", tenancyID),
		slog.String("month", month.String()),
		slog.String("owed", owed.String()),
		slog.String("paid", paid.String()))
	return &sheet, nil
}

// calculateOwed is the payslip total plus forecast corrections that postdate
// the payslip snapshot. Without a payslip it falls back to everything the
// providers had forecast for the month by its end.
func (s *tenantBalanceService) calculateOwed(ctx context.Context, propertyID string, month domain.Month, payslip *domain.Payslip) (decimal.Decimal, error) {
	owed := decimal.Zero
	if payslip != nil {
		owed = payslip.TotalAmount()
	}

	providers, err := s.providerRepo.ListProvidersByProperty(ctx, propertyID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list providers for owed calculation: %w", err)
	}
	for _, provider := range providers {
		var items []domain.ForecastLineItem
		if payslip != nil {
			items, err = s.forecastRepo.FindLineItemsDueInMonthIssuedAfter(ctx, provider.UtilityProviderID, month, payslip.CreatedAt)
		} else {
			items, err = s.forecastRepo.FindLineItemsDueInMonthIssuedBy(ctx, provider.UtilityProviderID, month, month.End())
		}
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to find line items for provider %s in %s: %w", provider.UtilityProviderID, month, err)
		}
		owed = owed.Add(domain.SumAmounts(items))
	}
	return owed, nil
}

func (s *tenantBalanceService) UpdateAllMissingMonths(ctx context.Context, tenancyID string) ([]domain.TenantBalanceSheet, error) {
	tenancy, err := s.tenancyRepo.FindTenancyByID(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenancy %s for reconciliation: %w", tenancyID, err)
	}

	seen := make(map[domain.Month]bool)

	payslipMonths, err := s.payslipRepo.ListPayslipMonths(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslip months: %w", err)
	}
	for _, m := range payslipMonths {
		seen[m] = true
	}

	paidDates, err := s.tenantPaymentRepo.ListTenantPaymentPaidDates(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment paid dates: %w", err)
	}
	for _, d := range paidDates {
		seen[domain.MonthOf(d)] = true
	}

	providers, err := s.providerRepo.ListProvidersByProperty(ctx, tenancy.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers for reconciliation: %w", err)
	}
	for _, provider := range providers {
		dueDates, err := s.forecastRepo.ListLineItemDueDates(ctx, provider.UtilityProviderID)
		if err != nil {
			return nil, fmt.Errorf("failed to list due dates for provider %s: %w", provider.UtilityProviderID, err)
		}
		for _, d := range dueDates {
			seen[domain.MonthOf(d)] = true
		}
	}

	current := domain.CurrentMonth(s.now())
	seen[current] = true

	months := make([]domain.Month, 0, len(seen))
	for m := range seen {
		// Future months are never materialized.
		if m.After(current) {
			continue
		}
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	sheets := make([]domain.TenantBalanceSheet, 0, len(months))
	for _, m := range months {
		sheet, err := s.UpdateBalanceSheetForMonth(ctx, tenancyID, m, m.Equal(current))
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, *sheet)
	}

	s.LogInfo(ctx, "Tenant balance sheets reconciled",
		slog.String("tenancy_id", tenancyID),
		slog.Int("months", len(sheets)))
	return sheets, nil
}

func (s *tenantBalanceService) ListBalanceSheets(ctx context.Context, tenancyID string) ([]domain.TenantBalanceSheet, error) {
	sheets, err := s.sheetRepo.ListTenantBalanceSheets(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list balance sheets for tenancy %s: %w", tenancyID, err)
	}
	if sheets == nil {
		return []domain.TenantBalanceSheet{}, nil
	}
	return sheets, nil
}
