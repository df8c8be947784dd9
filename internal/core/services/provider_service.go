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

// providerService provides CRUD operations on utility providers.
type providerService struct {
	BaseService
	providerRepo portsrepo.UtilityProviderRepositoryFacade
	propertyRepo portsrepo.PropertyRepositoryFacade
	now          func() time.Time
}

// NewProviderService creates a new utility provider service.
func NewProviderService(providerRepo portsrepo.UtilityProviderRepositoryFacade, propertyRepo portsrepo.PropertyRepositoryFacade) portssvc.UtilityProviderSvcFacade {
	return &providerService{
		providerRepo: providerRepo,
		propertyRepo: propertyRepo,
		now:          time.Now,
	}
}

var _ portssvc.UtilityProviderSvcFacade = (*providerService)(nil)

func (s *providerService) CreateProvider(ctx context.Context, propertyID string, req dto.CreateProviderRequest) (*domain.UtilityProvider, error) {
	if _, err := s.propertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		return nil, fmt.Errorf("failed to find property %s for provider: %w", propertyID, err)
	}

	now := s.now()
	provider := domain.UtilityProvider{
		UtilityProviderID: uuid.NewString(),
		PropertyID:        propertyID,
		Name:              req.Name,
		ForecastBehavior:  req.ForecastBehavior,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// Provider names are unique per property; the repository surfaces a
	// duplicate as apperrors.ErrDuplicate.
	if err := s.providerRepo.SaveProvider(ctx, provider); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	s.LogInfo(ctx, "Utility provider created", slog.String("provider_id", provider.UtilityProviderID), slog.String("property_id", propertyID))
	return &provider, nil
}

func (s *providerService) GetProviderByID(ctx context.Context, providerID string) (*domain.UtilityProvider, error) {
	provider, err := s.providerRepo.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider %s: %w", providerID, err)
	}
	return provider, nil
}

func (s *providerService) ListProvidersByProperty(ctx context.Context, propertyID string) ([]domain.UtilityProvider, error) {
	providers, err := s.providerRepo.ListProvidersByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers for property %s: %w", propertyID, err)
	}
	if providers == nil {
		return []domain.UtilityProvider{}, nil
	}
	return providers, nil
}

func (s *providerService) UpdateProvider(ctx context.Context, providerID string, req dto.UpdateProviderRequest) (*domain.UtilityProvider, error) {
	provider, err := s.providerRepo.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find provider %s for update: %w", providerID, err)
	}

	if req.Name != nil {
		provider.Name = *req.Name
	}
	if req.ForecastBehavior != nil {
		provider.ForecastBehavior = *req.ForecastBehavior
	}
	provider.LastUpdatedAt = s.now()

	if err := s.providerRepo.UpdateProvider(ctx, *provider); err != nil {
		return nil, fmt.Errorf("failed to update provider %s: %w", providerID, err)
	}
	return provider, nil
}

func (s *providerService) DeleteProvider(ctx context.Context, providerID string) error {
	if err := s.providerRepo.DeleteProvider(ctx, providerID); err != nil {
		return fmt.Errorf("failed to delete provider %s: %w", providerID, err)
	}
	s.LogInfo(ctx, "Utility provider deleted", slog.String("provider_id", providerID))
	return nil
}
