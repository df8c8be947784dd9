package mapping

import (
	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/propertyops/property_billing_app/internal/models"
)

// ToModelTenantPayment converts a domain TenantPayment
func ToModelTenantPayment(d domain.TenantPayment) models.TenantPayment {
	return models.TenantPayment{
		TenantPaymentID:  d.TenantPaymentID,
		PropertyTenantID: d.PropertyTenantID,
		PropertyID:       d.PropertyID,
		Month:            d.Month.Start(),
		Amount:           d.Amount,
		PaidDate:         d.PaidDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainTenantPayment converts a model TenantPayment
func ToDomainTenantPayment(m models.TenantPayment) domain.TenantPayment {
	return domain.TenantPayment{
		TenantPaymentID:  m.TenantPaymentID,
		PropertyTenantID: m.PropertyTenantID,
		PropertyID:       m.PropertyID,
		Month:            domain.MonthOf(m.Month),
		Amount:           m.Amount,
		PaidDate:         m.PaidDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainTenantPaymentSlice converts a slice of model TenantPayments
func ToDomainTenantPaymentSlice(ms []models.TenantPayment) []domain.TenantPayment {
	ds := make([]domain.TenantPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenantPayment(m)
	}
	return ds
}

// ToModelUtilityPayment converts a domain UtilityPayment
func ToModelUtilityPayment(d domain.UtilityPayment) models.UtilityPayment {
	return models.UtilityPayment{
		UtilityPaymentID:  d.UtilityPaymentID,
		UtilityProviderID: d.UtilityProviderID,
		PropertyID:        d.PropertyID,
		Month:             d.Month.Start(),
		Amount:            d.Amount,
		PaidDate:          d.PaidDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainUtilityPayment converts a model UtilityPayment
func ToDomainUtilityPayment(m models.UtilityPayment) domain.UtilityPayment {
	return domain.UtilityPayment{
		UtilityPaymentID:  m.UtilityPaymentID,
		UtilityProviderID: m.UtilityProviderID,
		PropertyID:        m.PropertyID,
		Month:             domain.MonthOf(m.Month),
		Amount:            m.Amount,
		PaidDate:          m.PaidDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainUtilityPaymentSlice converts a slice of model UtilityPayments
func ToDomainUtilityPaymentSlice(ms []models.UtilityPayment) []domain.UtilityPayment {
	ds := make([]domain.UtilityPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUtilityPayment(m)
	}
	return ds
}
