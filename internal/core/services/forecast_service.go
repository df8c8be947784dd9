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
)

// forecastService provides forecast CRUD and the per-month line item
// resolution the billing engine is built on.
type forecastService struct {
	BaseService
	forecastRepo portsrepo.ForecastRepositoryFacade
	providerRepo portsrepo.UtilityProviderRepositoryFacade
	now          func() time.Time
}

// NewForecastService creates a new forecast service.
func NewForecastService(forecastRepo portsrepo.ForecastRepositoryFacade, providerRepo portsrepo.UtilityProviderRepositoryFacade) portssvc.ForecastSvcFacade {
	return &forecastService{
		forecastRepo: forecastRepo,
		providerRepo: providerRepo,
		now:          time.Now,
	}
}

var _ portssvc.ForecastSvcFacade = (*forecastService)(nil)

// ResolveLineItemsForMonth returns the line items billable for the month.
// Items due within the month always win, even zero-amount ones; only a
// month with no active items at all falls through to the provider's
// expiration behavior.
func (s *forecastService) ResolveLineItemsForMonth(ctx context.Context, provider domain.UtilityProvider, month domain.Month) ([]domain.ForecastLineItem, error) {
	active, err := s.forecastRepo.FindLineItemsDueInMonth(ctx, provider.UtilityProviderID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to find active line items for provider %s in %s: %w", provider.UtilityProviderID, month, err)
	}
	if len(active) > 0 {
		return active, nil
	}

	switch provider.ForecastBehavior {
	case domain.CarryForward:
		last, err := s.forecastRepo.FindLatestForecastWithItemsBefore(ctx, provider.UtilityProviderID, month.Start())
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find carry-forward forecast for provider %s: %w", provider.UtilityProviderID, err)
		}
		// A stale forecast alone does not guarantee a carried charge;
		// only items the operator flagged as recurring come forward.
		return last.CarryForwardItems(), nil
	default: // zero_after_expiry
		return nil, nil
	}
}

func (s *forecastService) CreateForecast(ctx context.Context, providerID string, req dto.CreateForecastRequest) (*domain.Forecast, error) {
	provider, err := s.providerRepo.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find provider %s for forecast: %w", providerID, err)
	}

	issuedDate, err := parseDate("issuedDate", req.IssuedDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	forecast := domain.Forecast{
		ForecastID:        uuid.NewString(),
		UtilityProviderID: provider.UtilityProviderID,
		PropertyID:        provider.PropertyID,
		IssuedDate:        issuedDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	for _, input := range req.LineItems {
		item, err := s.buildLineItem(forecast.ForecastID, input.Name, input.Amount, input.DueDate, input.CarryForward)
		if err != nil {
			return nil, err
		}
		forecast.LineItems = append(forecast.LineItems, *item)
	}

	if err := s.forecastRepo.SaveForecast(ctx, forecast); err != nil {
		return nil, fmt.Errorf("failed to create forecast: %w", err)
	}

	s.LogInfo(ctx, "Forecast created",
		slog.String("forecast_id", forecast.ForecastID),
		slog.String("provider_id", providerID),
		slog.Int("line_items", len(forecast.LineItems)))
	return &forecast, nil
}

func (s *forecastService) GetForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error) {
	forecast, err := s.forecastRepo.FindForecastByID(ctx, forecastID)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast %s: %w", forecastID, err)
	}
	return forecast, nil
}

func (s *forecastService) ListForecastsByProvider(ctx context.Context, providerID string) ([]domain.Forecast, error) {
	forecasts, err := s.forecastRepo.ListForecastsByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forecasts for provider %s: %w", providerID, err)
	}
	if forecasts == nil {
		return []domain.Forecast{}, nil
	}
	return forecasts, nil
}

// UpdateForecast applies the whole batch of line item upserts and deletes in
// one transactional save; every entry is validated before anything commits.
func (s *forecastService) UpdateForecast(ctx context.Context, forecastID string, req dto.UpdateForecastRequest) (*domain.Forecast, error) {
	forecast, err := s.forecastRepo.FindForecastByID(ctx, forecastID)
	if err != nil {
		return nil, fmt.Errorf("failed to find forecast %s for update: %w", forecastID, err)
	}

	if req.IssuedDate != nil {
		issuedDate, err := parseDate("issuedDate", *req.IssuedDate)
		if err != nil {
			return nil, err
		}
		forecast.IssuedDate = issuedDate
	}

	deleting := make(map[string]bool, len(req.DeleteLineItemIDs))
	for _, id := range req.DeleteLineItemIDs {
		deleting[id] = true
	}

	existing := make(map[string]int, len(forecast.LineItems))
	for i, li := range forecast.LineItems {
		existing[li.ForecastLineItemID] = i
	}

	for _, upsert := range req.UpsertLineItems {
		if upsert.ForecastLineItemID != nil {
			idx, ok := existing[*upsert.ForecastLineItemID]
			if !ok {
				return nil, fmt.Errorf("%w: line item %s does not belong to forecast %s", apperrors.ErrValidation, *upsert.ForecastLineItemID, forecastID)
			}
			item, err := s.buildLineItem(forecastID, upsert.Name, upsert.Amount, upsert.DueDate, upsert.CarryForward)
			if err != nil {
				return nil, err
			}
			item.ForecastLineItemID = *upsert.ForecastLineItemID
			forecast.LineItems[idx] = *item
			continue
		}
		item, err := s.buildLineItem(forecastID, upsert.Name, upsert.Amount, upsert.DueDate, upsert.CarryForward)
		if err != nil {
			return nil, err
		}
		forecast.LineItems = append(forecast.LineItems, *item)
	}

	kept := forecast.LineItems[:0]
	for _, li := range forecast.LineItems {
		if !deleting[li.ForecastLineItemID] {
			kept = append(kept, li)
		}
	}
	forecast.LineItems = kept
	forecast.LastUpdatedAt = s.now()

	if err := s.forecastRepo.UpdateForecast(ctx, *forecast, req.DeleteLineItemIDs); err != nil {
		return nil, fmt.Errorf("failed to update forecast %s: %w", forecastID, err)
	}

	s.LogInfo(ctx, "Forecast updated",
		slog.String("forecast_id", forecastID),
		slog.Int("upserts", len(req.UpsertLineItems)),
		slog.Int("deletes", len(req.DeleteLineItemIDs)))
	return forecast, nil
}

func (s *forecastService) DeleteForecast(ctx context.Context, forecastID string) error {
	if err := s.forecastRepo.DeleteForecast(ctx, forecastID); err != nil {
		return fmt.Errorf("failed to delete forecast %s: %w", forecastID, err)
	}
	s.LogInfo(ctx, "Forecast deleted", slog.String("forecast_id", forecastID))
	return nil
}

func (s *forecastService) buildLineItem(forecastID, name string, amount decimal.Decimal, dueDate string, carryForward bool) (*domain.ForecastLineItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: forecast line item name is required", apperrors.ErrValidation)
	}
	due, err := parseDate("dueDate", dueDate)
	if err != nil {
		return nil, err
	}
	return &domain.ForecastLineItem{
		ForecastLineItemID: uuid.NewString(),
		ForecastID:         forecastID,
		Name:               name,
		Amount:             amount,
		DueDate:            due,
		CarryForward:       carryForward,
	}, nil
}
