package mapping

import (
	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/propertyops/property_billing_app/internal/models"
)

// ToModelProvider converts a domain UtilityProvider to a model UtilityProvider
func ToModelProvider(d domain.UtilityProvider) models.UtilityProvider {
	return models.UtilityProvider{
		UtilityProviderID: d.UtilityProviderID,
		PropertyID:        d.PropertyID,
		Name:              d.Name,
		ForecastBehavior:  string(d.ForecastBehavior),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainProvider converts a model UtilityProvider to a domain UtilityProvider
func ToDomainProvider(m models.UtilityProvider) domain.UtilityProvider {
	return domain.UtilityProvider{
		UtilityProviderID: m.UtilityProviderID,
		PropertyID:        m.PropertyID,
		Name:              m.Name,
		ForecastBehavior:  domain.ForecastBehavior(m.ForecastBehavior),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainProviderSlice converts a slice of model UtilityProviders
func ToDomainProviderSlice(ms []models.UtilityProvider) []domain.UtilityProvider {
	ds := make([]domain.UtilityProvider, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProvider(m)
	}
	return ds
}

// ToModelForecast converts a domain Forecast to a model Forecast. Line items
// are mapped separately.
func ToModelForecast(d domain.Forecast) models.Forecast {
	return models.Forecast{
		ForecastID:        d.ForecastID,
		UtilityProviderID: d.UtilityProviderID,
		PropertyID:        d.PropertyID,
		IssuedDate:        d.IssuedDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainForecast converts a model Forecast plus its line items to a domain
// Forecast.
func ToDomainForecast(m models.Forecast, items []models.ForecastLineItem) domain.Forecast {
	return domain.Forecast{
		ForecastID:        m.ForecastID,
		UtilityProviderID: m.UtilityProviderID,
		PropertyID:        m.PropertyID,
		IssuedDate:        m.IssuedDate,
		LineItems:         ToDomainForecastLineItemSlice(items),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToModelForecastLineItem converts a domain ForecastLineItem
func ToModelForecastLineItem(d domain.ForecastLineItem) models.ForecastLineItem {
	return models.ForecastLineItem{
		ForecastLineItemID: d.ForecastLineItemID,
		ForecastID:         d.ForecastID,
		Name:               d.Name,
		Amount:             d.Amount,
		DueDate:            d.DueDate,
		CarryForward:       d.CarryForward,
	}
}

// ToDomainForecastLineItem converts a model ForecastLineItem
func ToDomainForecastLineItem(m models.ForecastLineItem) domain.ForecastLineItem {
	return domain.ForecastLineItem{
		ForecastLineItemID: m.ForecastLineItemID,
		ForecastID:         m.ForecastID,
		Name:               m.Name,
		Amount:             m.Amount,
		DueDate:            m.DueDate,
		CarryForward:       m.CarryForward,
	}
}

// ToDomainForecastLineItemSlice converts a slice of model ForecastLineItems
func ToDomainForecastLineItemSlice(ms []models.ForecastLineItem) []domain.ForecastLineItem {
	if len(ms) == 0 {
		return nil
	}
	ds := make([]domain.ForecastLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainForecastLineItem(m)
	}
	return ds
}
