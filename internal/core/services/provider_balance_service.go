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

// providerBalanceService is the provider-side counterpart of
// tenantBalanceService.
//
// Owed sums the forecast line items due in the month among forecasts issued
// by the month's end; a month with none falls back to the provider's
// expiration behavior, where carry-forward reuses only the flagged items of
// the most recent earlier forecast.
type providerBalanceService struct {
	BaseService
	providerRepo       portsrepo.UtilityProviderRepositoryFacade
	forecastRepo       portsrepo.ForecastRepositoryFacade
	utilityPaymentRepo portsrepo.UtilityPaymentRepositoryFacade
	sheetRepo          portsrepo.ProviderBalanceSheetRepositoryFacade
	billing            config.BillingConfig
	now                func() time.Time
}

// NewProviderBalanceService creates a new provider balance sheet service.
func NewProviderBalanceService(
	providerRepo portsrepo.UtilityProviderRepositoryFacade,
	forecastRepo portsrepo.ForecastRepositoryFacade,
	utilityPaymentRepo portsrepo.UtilityPaymentRepositoryFacade,
	sheetRepo portsrepo.ProviderBalanceSheetRepositoryFacade,
	billing config.BillingConfig,
) portssvc.ProviderBalanceSvcFacade {
	return &providerBalanceService{
		providerRepo:       providerRepo,
		forecastRepo:       forecastRepo,
		utilityPaymentRepo: utilityPaymentRepo,
		sheetRepo:          sheetRepo,
		billing:            billing,
		now:                time.Now,
	}
}

var _ portssvc.ProviderBalanceSvcFacade = (*providerBalanceService)(nil)

func (s *providerBalanceService) UpdateBalanceSheetForMonth(ctx context.Context, providerID string, month domain.Month, allowUpdate bool) (*domain.UtilityProviderBalanceSheet, error) {
	provider, err := s.providerRepo.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find provider %s for balance sheet: %w", providerID, err)
	}

	existing, err := s.sheetRepo.FindProviderBalanceSheet(ctx, providerID, month)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find balance sheet for %s: %w", month, err)
	}
	if existing != nil && !allowUpdate {
		return existing, nil
	}

	owed, err := s.calculateOwed(ctx, *provider, month)
	if err != nil {
		return nil, err
	}
	paid, err := s.utilityPaymentRepo.SumUtilityPaymentsPaidIn(ctx, providerID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments for %s: %w", month, err)
	}
	dueDate, err := s.dueDateForMonth(ctx, providerID, month)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sheet := domain.UtilityProviderBalanceSheet{
		UtilityProviderBalanceSheetID: uuid.NewString(),
		UtilityProviderID:             provider.UtilityProviderID,
		PropertyID:                    provider.PropertyID,
		Month:                         month,
		DueDate:                       dueDate,
		Owed:                          owed,
		Paid:                          paid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if existing != nil {
		sheet.UtilityProviderBalanceSheetID = existing.UtilityProviderBalanceSheetID
		sheet.CreatedAt = existing.CreatedAt
	}

	if err := s.sheetRepo.UpsertProviderBalanceSheet(ctx, sheet); err != nil {
		return nil, fmt.Errorf("failed to upsert balance sheet for %s: %w", month, err)
	}

	s.LogDebug(ctx, "Provider balance sheet updated",
		slog.String("provider_id", providerID),
		slog.String("month", month.String()),
		slog.String("owed", owed.String()),
		slog.String("paid", paid.String()))
	return &sheet, nil
}

func (s *providerBalanceService) calculateOwed(ctx context.Context, provider domain.UtilityProvider, month domain.Month) (decimal.Decimal, error) {
	active, err := s.forecastRepo.FindLineItemsDueInMonthIssuedBy(ctx, provider.UtilityProviderID, month, month.End())
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find active line items for %s: %w", month, err)
	}
	// Presence gates the fallback, not amount: a month covered by
	// zero-amount items still counts as covered.
	if len(active) > 0 {
		return domain.SumAmounts(active), nil
	}

	switch provider.ForecastBehavior {
	case domain.CarryForward:
		last, err := s.forecastRepo.FindLatestForecastWithItemsBefore(ctx, provider.UtilityProviderID, month.Start())
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to find carry-forward forecast: %w", err)
		}
		return domain.SumAmounts(last.CarryForwardItems()), nil
	default:
		return decimal.Zero, nil
	}
}

func (s *providerBalanceService) dueDateForMonth(ctx context.Context, providerID string, month domain.Month) (time.Time, error) {
	earliest, err := s.forecastRepo.EarliestDueDateInMonth(ctx, providerID, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to find earliest due date for %s: %w", month, err)
	}
	if earliest != nil {
		return *earliest, nil
	}
	return month.Date(s.billing.DefaultDueDay), nil
}

func (s *providerBalanceService) UpdateAllMissingMonths(ctx context.Context, providerID string) ([]domain.UtilityProviderBalanceSheet, error) {
	if _, err := s.providerRepo.FindProviderByID(ctx, providerID); err != nil {
		return nil, fmt.Errorf("failed to find provider %s for reconciliation: %w", providerID, err)
	}

	seen := make(map[domain.Month]bool)

	dueDates, err := s.forecastRepo.ListLineItemDueDates(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forecast due dates: %w", err)
	}
	for _, d := range dueDates {
		seen[domain.MonthOf(d)] = true
	}

	paidDates, err := s.utilityPaymentRepo.ListUtilityPaymentPaidDates(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment paid dates: %w", err)
	}
	for _, d := range paidDates {
		seen[domain.MonthOf(d)] = true
	}

	current := domain.CurrentMonth(s.now())
	seen[current] = true

	months := make([]domain.Month, 0, len(seen))
	for m := range seen {
		if m.After(current) {
			continue
		}
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	sheets := make([]domain.UtilityProviderBalanceSheet, 0, len(months))
	for _, m := range months {
		sheet, err := s.UpdateBalanceSheetForMonth(ctx, providerID, m, m.Equal(current))
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, *sheet)
	}

	s.LogInfo(ctx, "Provider balance sheets reconciled",
		slog.String("provider_id", providerID),
		slog.Int("months", len(sheets)))
	return sheets, nil
}

func (s *providerBalanceService) ListBalanceSheets(ctx context.Context, providerID string) ([]domain.UtilityProviderBalanceSheet, error) {
	sheets, err := s.sheetRepo.ListProviderBalanceSheets(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list balance sheets for provider %s: %w", providerID, err)
	}
	if sheets == nil {
		return []domain.UtilityProviderBalanceSheet{}, nil
	}
	return sheets, nil
}
