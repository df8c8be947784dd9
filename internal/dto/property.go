package dto

import (
	"time"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest defines the data needed to create a new property.
type CreatePropertyRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdatePropertyRequest defines the data allowed for updating a property.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePropertyRequest struct {
	Name *string `json:"name"`
}

// PropertyResponse defines the data returned for a property.
type PropertyResponse struct {
	PropertyID    string    `json:"propertyID"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToPropertyResponse converts a domain.Property to PropertyResponse.
func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		PropertyID:    p.PropertyID,
		Name:          p.Name,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListPropertyResponse converts a slice of domain.Property.
func ToListPropertyResponse(properties []domain.Property) []PropertyResponse {
	res := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		res[i] = ToPropertyResponse(&p)
	}
	return res
}

// CreateTenancyRequest defines the data needed to create a new tenancy.
type CreateTenancyRequest struct {
	TenantName string          `json:"tenantName" binding:"required"`
	RentAmount decimal.Decimal `json:"rentAmount" binding:"required"`
}

// UpdateTenancyRequest defines the data allowed for updating a tenancy.
type UpdateTenancyRequest struct {
	TenantName *string          `json:"tenantName"`
	RentAmount *decimal.Decimal `json:"rentAmount"`
}

// TenancyResponse defines the data returned for a tenancy.
type TenancyResponse struct {
	PropertyTenantID string          `json:"propertyTenantID"`
	PropertyID       string          `json:"propertyID"`
	TenantName       string          `json:"tenantName"`
	RentAmount       decimal.Decimal `json:"rentAmount"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}

// ToTenancyResponse converts a domain.PropertyTenant to TenancyResponse.
func ToTenancyResponse(t *domain.PropertyTenant) TenancyResponse {
	return TenancyResponse{
		PropertyTenantID: t.PropertyTenantID,
		PropertyID:       t.PropertyID,
		TenantName:       t.TenantName,
		RentAmount:       t.RentAmount,
		CreatedAt:        t.CreatedAt,
		LastUpdatedAt:    t.LastUpdatedAt,
	}
}

// ToListTenancyResponse converts a slice of domain.PropertyTenant.
func ToListTenancyResponse(tenancies []domain.PropertyTenant) []TenancyResponse {
	res := make([]TenancyResponse, len(tenancies))
	for i, t := range tenancies {
		res[i] = ToTenancyResponse(&t)
	}
	return res
}

// CreateProviderRequest defines the data needed to create a utility provider.
type CreateProviderRequest struct {
	Name             string                  `json:"name" binding:"required"`
	ForecastBehavior domain.ForecastBehavior `json:"forecastBehavior" binding:"required,oneof=zero_after_expiry carry_forward"`
}

// UpdateProviderRequest defines the data allowed for updating a provider.
type UpdateProviderRequest struct {
	Name             *string                  `json:"name"`
	ForecastBehavior *domain.ForecastBehavior `json:"forecastBehavior" binding:"omitempty,oneof=zero_after_expiry carry_forward"`
}

// ProviderResponse defines the data returned for a utility provider.
type ProviderResponse struct {
	UtilityProviderID string                  `json:"utilityProviderID"`
	PropertyID        string                  `json:"propertyID"`
	Name              string                  `json:"name"`
	ForecastBehavior  domain.ForecastBehavior `json:"forecastBehavior"`
	CreatedAt         time.Time               `json:"createdAt"`
	LastUpdatedAt     time.Time               `json:"lastUpdatedAt"`
}

// ToProviderResponse converts a domain.UtilityProvider to ProviderResponse.
func ToProviderResponse(p *domain.UtilityProvider) ProviderResponse {
	return ProviderResponse{
		UtilityProviderID: p.UtilityProviderID,
		PropertyID:        p.PropertyID,
		Name:              p.Name,
		ForecastBehavior:  p.ForecastBehavior,
		CreatedAt:         p.CreatedAt,
		LastUpdatedAt:     p.LastUpdatedAt,
	}
}

// ToListProviderResponse converts a slice of domain.UtilityProvider.
func ToListProviderResponse(providers []domain.UtilityProvider) []ProviderResponse {
	res := make([]ProviderResponse, len(providers))
	for i, p := range providers {
		res[i] = ToProviderResponse(&p)
	}
	return res
}
