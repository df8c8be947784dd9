package mapping

import (
	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/propertyops/property_billing_app/internal/models"
)

// ToModelProperty converts a domain Property to a model Property
func ToModelProperty(d domain.Property) models.Property {
	return models.Property{
		PropertyID: d.PropertyID,
		Name:       d.Name,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainProperty converts a model Property to a domain Property
func ToDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		PropertyID: m.PropertyID,
		Name:       m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainPropertySlice converts a slice of model Properties
func ToDomainPropertySlice(ms []models.Property) []domain.Property {
	ds := make([]domain.Property, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProperty(m)
	}
	return ds
}

// ToModelTenancy converts a domain PropertyTenant to a model PropertyTenant
func ToModelTenancy(d domain.PropertyTenant) models.PropertyTenant {
	return models.PropertyTenant{
		PropertyTenantID: d.PropertyTenantID,
		PropertyID:       d.PropertyID,
		TenantName:       d.TenantName,
		RentAmount:       d.RentAmount,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainTenancy converts a model PropertyTenant to a domain PropertyTenant
func ToDomainTenancy(m models.PropertyTenant) domain.PropertyTenant {
	return domain.PropertyTenant{
		PropertyTenantID: m.PropertyTenantID,
		PropertyID:       m.PropertyID,
		TenantName:       m.TenantName,
		RentAmount:       m.RentAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainTenancySlice converts a slice of model PropertyTenants
func ToDomainTenancySlice(ms []models.PropertyTenant) []domain.PropertyTenant {
	ds := make([]domain.PropertyTenant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenancy(m)
	}
	return ds
}
