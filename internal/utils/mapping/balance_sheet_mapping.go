package mapping

import (
	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/propertyops/property_billing_app/internal/models"
)

// ToModelTenantBalanceSheet converts a domain TenantBalanceSheet
func ToModelTenantBalanceSheet(d domain.TenantBalanceSheet) models.TenantBalanceSheet {
	return models.TenantBalanceSheet{
		TenantBalanceSheetID: d.TenantBalanceSheetID,
		PropertyTenantID:     d.PropertyTenantID,
		PropertyID:           d.PropertyID,
		Month:                d.Month.Start(),
		DueDate:              d.DueDate,
		Owed:                 d.Owed,
		Paid:                 d.Paid,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainTenantBalanceSheet converts a model TenantBalanceSheet
func ToDomainTenantBalanceSheet(m models.TenantBalanceSheet) domain.TenantBalanceSheet {
	return domain.TenantBalanceSheet{
		TenantBalanceSheetID: m.TenantBalanceSheetID,
		PropertyTenantID:     m.PropertyTenantID,
		PropertyID:           m.PropertyID,
		Month:                domain.MonthOf(m.Month),
		DueDate:              m.DueDate,
		Owed:                 m.Owed,
		Paid:                 m.Paid,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainTenantBalanceSheetSlice converts a slice of model TenantBalanceSheets
func ToDomainTenantBalanceSheetSlice(ms []models.TenantBalanceSheet) []domain.TenantBalanceSheet {
	ds := make([]domain.TenantBalanceSheet, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenantBalanceSheet(m)
	}
	return ds
}

// ToModelProviderBalanceSheet converts a domain UtilityProviderBalanceSheet
func ToModelProviderBalanceSheet(d domain.UtilityProviderBalanceSheet) models.UtilityProviderBalanceSheet {
	return models.UtilityProviderBalanceSheet{
		UtilityProviderBalanceSheetID: d.UtilityProviderBalanceSheetID,
		UtilityProviderID:             d.UtilityProviderID,
		PropertyID:                    d.PropertyID,
		Month:                         d.Month.Start(),
		DueDate:                       d.DueDate,
		Owed:                          d.Owed,
		Paid:                          d.Paid,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainProviderBalanceSheet converts a model UtilityProviderBalanceSheet
func ToDomainProviderBalanceSheet(m models.UtilityProviderBalanceSheet) domain.UtilityProviderBalanceSheet {
	return domain.UtilityProviderBalanceSheet{
		UtilityProviderBalanceSheetID: m.UtilityProviderBalanceSheetID,
		UtilityProviderID:             m.UtilityProviderID,
		PropertyID:                    m.PropertyID,
		Month:                         domain.MonthOf(m.Month),
		DueDate:                       m.DueDate,
		Owed:                          m.Owed,
		Paid:                          m.Paid,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainProviderBalanceSheetSlice converts a slice of model
// UtilityProviderBalanceSheets
func ToDomainProviderBalanceSheetSlice(ms []models.UtilityProviderBalanceSheet) []domain.UtilityProviderBalanceSheet {
	ds := make([]domain.UtilityProviderBalanceSheet, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProviderBalanceSheet(m)
	}
	return ds
}
