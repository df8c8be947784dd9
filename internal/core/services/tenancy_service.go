package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/property_billing_app/internal/apperrors"
	"github.com/propertyops/property_billing_app/internal/core/domain"
	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	portssvc "github.com/propertyops/property_billing_app/internal/core/ports/services"
	"github.com/propertyops/property_billing_app/internal/dto"
)

// tenancyService provides CRUD operations on tenancies.
type tenancyService struct {
	BaseService
	tenancyRepo  portsrepo.TenancyRepositoryFacade
	propertyRepo portsrepo.PropertyRepositoryFacade
	now          func() time.Time
}

// NewTenancyService creates a new tenancy service.
func NewTenancyService(tenancyRepo portsrepo.TenancyRepositoryFacade, propertyRepo portsrepo.PropertyRepositoryFacade) portssvc.TenancySvcFacade {
	return &tenancyService{
		tenancyRepo:  tenancyRepo,
		propertyRepo: propertyRepo,
		now:          time.Now,
	}
}

var _ portssvc.TenancySvcFacade = (*tenancyService)(nil)

func (s *tenancyService) CreateTenancy(ctx context.Context, propertyID string, req dto.CreateTenancyRequest) (*domain.PropertyTenant, error) {
	if _, err := s.propertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		return nil, fmt.Errorf("failed to find property %s for tenancy: %w", propertyID, err)
	}
	if !req.RentAmount.IsPositive() {
		return nil, fmt.Errorf("%w: rent amount must be greater than zero", apperrors.ErrValidation)
	}

	now := s.now()
	tenancy := domain.PropertyTenant{
		PropertyTenantID: uuid.NewString(),
		PropertyID:       propertyID,
		TenantName:       req.TenantName,
		RentAmount:       req.RentAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.tenancyRepo.SaveTenancy(ctx, tenancy); err != nil {
		return nil, fmt.Errorf("failed to create tenancy: %w", err)
	}

	s.LogInfo(ctx, "Tenancy created", slog.String("tenancy_id", tenancy.PropertyTenantID), slog.String("property_id", propertyID))
	return &tenancy, nil
}

func (s *tenancyService) GetTenancyByID(ctx context.Context, tenancyID string) (*domain.PropertyTenant, error) {
	tenancy, err := s.tenancyRepo.FindTenancyByID(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenancy %s: %w", tenancyID, err)
	}
	return tenancy, nil
}

func (s *tenancyService) ListTenanciesByProperty(ctx context.Context, propertyID string) ([]domain.PropertyTenant, error) {
	tenancies, err := s.tenancyRepo.ListTenanciesByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenancies for property %s: %w", propertyID, err)
	}
	if tenancies == nil {
		return []domain.PropertyTenant{}, nil
	}
	return tenancies, nil
}

func (s *tenancyService) UpdateTenancy(ctx context.Context, tenancyID string, req dto.UpdateTenancyRequest) (*domain.PropertyTenant, error) {
	tenancy, err := s.tenancyRepo.FindTenancyByID(ctx, tenancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenancy %s for update: %w", tenancyID, err)
	}

	if req.TenantName != nil {
		tenancy.TenantName = *req.TenantName
	}
	if req.RentAmount != nil {
		if !req.RentAmount.IsPositive() {
			return nil, fmt.Errorf("%w: rent amount must be greater than zero", apperrors.ErrValidation)
		}
		// The live rent amount; the payslip generator always bills this
		// value, not a historical one.
		tenancy.RentAmount = *req.RentAmount
	}
	tenancy.LastUpdatedAt = s.now()

	if err := s.tenancyRepo.UpdateTenancy(ctx, *tenancy); err != nil {
		return nil, fmt.Errorf("failed to update tenancy %s: %w", tenancyID, err)
	}
	return tenancy, nil
}

func (s *tenancyService) DeleteTenancy(ctx context.Context, tenancyID string) error {
	if err := s.tenancyRepo.DeleteTenancy(ctx, tenancyID); err != nil {
		return fmt.Errorf("failed to delete tenancy %s: %w", tenancyID, err)
	}
	s.LogInfo(ctx, "Tenancy deleted", slog.String("tenancy_id", tenancyID))
	return nil
}
