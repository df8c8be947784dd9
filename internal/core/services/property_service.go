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

// propertyService provides CRUD operations on properties.
type propertyService struct {
	BaseService
	propertyRepo portsrepo.PropertyRepositoryFacade
	now          func() time.Time
}

// NewPropertyService creates a new property service.
func NewPropertyService(propertyRepo portsrepo.PropertyRepositoryFacade) portssvc.PropertySvcFacade {
	return &propertyService{
		propertyRepo: propertyRepo,
		now:          time.Now,
	}
}

// Ensure propertyService implements the facade.
var _ portssvc.PropertySvcFacade = (*propertyService)(nil)

func (s *propertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error) {
	now := s.now()
	property := domain.Property{
		PropertyID: uuid.NewString(),
		Name:       req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.propertyRepo.SaveProperty(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.LogInfo(ctx, "Property created", slog.String("property_id", property.PropertyID))
	return &property, nil
}

func (s *propertyService) GetPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property %s: %w", propertyID, err)
	}
	return property, nil
}

func (s *propertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	properties, err := s.propertyRepo.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	if properties == nil {
		return []domain.Property{}, nil
	}
	return properties, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find property %s for update: %w", propertyID, err)
	}

	if req.Name != nil {
		property.Name = *req.Name
	}
	property.LastUpdatedAt = s.now()

	if err := s.propertyRepo.UpdateProperty(ctx, *property); err != nil {
		return nil, fmt.Errorf("failed to update property %s: %w", propertyID, err)
	}
	return property, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	if err := s.propertyRepo.DeleteProperty(ctx, propertyID); err != nil {
		return fmt.Errorf("failed to delete property %s: %w", propertyID, err)
	}
	s.LogInfo(ctx, "Property deleted", slog.String("property_id", propertyID))
	return nil
}
