package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	portssvc "github.com/propertyops/property_billing_app/internal/core/ports/services"
	"github.com/propertyops/property_billing_app/internal/dto"
)

// reconciliationService runs the balance sheet batch across a whole property:
// every tenancy and every provider gets its missing months backfilled and its
// current month recomputed.
type reconciliationService struct {
	BaseService
	propertyRepo    portsrepo.PropertyRepositoryFacade
	tenancyRepo     portsrepo.TenancyRepositoryFacade
	providerRepo    portsrepo.UtilityProviderRepositoryFacade
	tenantBalance   portssvc.TenantBalanceSvcFacade
	providerBalance portssvc.ProviderBalanceSvcFacade
}

// NewReconciliationService creates a new reconciliation service.
func NewReconciliationService(
	propertyRepo portsrepo.PropertyRepositoryFacade,
	tenancyRepo portsrepo.TenancyRepositoryFacade,
	providerRepo portsrepo.UtilityProviderRepositoryFacade,
	tenantBalance portssvc.TenantBalanceSvcFacade,
	providerBalance portssvc.ProviderBalanceSvcFacade,
) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		propertyRepo:    propertyRepo,
		tenancyRepo:     tenancyRepo,
		providerRepo:    providerRepo,
		tenantBalance:   tenantBalance,
		providerBalance: providerBalance,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

func (s *reconciliationService) ReconcileProperty(ctx context.Context, propertyID string) (*dto.ReconcileSummary, error) {
	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find property %s for reconciliation: %w", propertyID, err)
	}

	summary := dto.ReconcileSummary{PropertyID: property.PropertyID}

	tenancies, err := s.tenancyRepo.ListTenanciesByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenancies for reconciliation: %w", err)
	}
	for _, tenancy := range tenancies {
		sheets, err := s.tenantBalance.UpdateAllMissingMonths(ctx, tenancy.PropertyTenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile tenancy %s: %w", tenancy.PropertyTenantID, err)
		}
		summary.TenanciesReconciled++
		summary.TenantSheetsWritten += len(sheets)
	}

	providers, err := s.providerRepo.ListProvidersByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers for reconciliation: %w", err)
	}
	for _, provider := range providers {
		sheets, err := s.providerBalance.UpdateAllMissingMonths(ctx, provider.UtilityProviderID)
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile provider %s: %w", provider.UtilityProviderID, err)
		}
		summary.ProvidersReconciled++
		summary.ProviderSheetsWritten += len(sheets)
	}

	s.LogInfo(ctx, "Property reconciled",
		slog.String("property_id", propertyID),
		slog.Int("tenancies", summary.TenanciesReconciled),
		slog.Int("providers", summary.ProvidersReconciled))
	return &summary, nil
}
