package mapping

import (
	"sort"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/propertyops/property_billing_app/internal/models"
)

// ToModelPayslip converts a domain Payslip to a model Payslip. The month is
// stored as its first day; line items are mapped separately.
func ToModelPayslip(d domain.Payslip) models.Payslip {
	return models.Payslip{
		PayslipID:        d.PayslipID,
		PropertyID:       d.PropertyID,
		PropertyTenantID: d.PropertyTenantID,
		Month:            d.Month.Start(),
		DueDate:          d.DueDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainPayslip converts a model Payslip plus its line items to a domain
// Payslip.
func ToDomainPayslip(m models.Payslip, items []models.PayslipLineItem) domain.Payslip {
	return domain.Payslip{
		PayslipID:        m.PayslipID,
		PropertyID:       m.PropertyID,
		PropertyTenantID: m.PropertyTenantID,
		Month:            domain.MonthOf(m.Month),
		DueDate:          m.DueDate,
		LineItems:        ToDomainPayslipLineItemSlice(items),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToModelPayslipLineItem converts a domain PayslipLineItem. Position records
// the item's index within the payslip so re-reads preserve display order.
func ToModelPayslipLineItem(d domain.PayslipLineItem, position int) models.PayslipLineItem {
	return models.PayslipLineItem{
		PayslipLineItemID: d.PayslipLineItemID,
		PayslipID:         d.PayslipID,
		Position:          position,
		Name:              d.Name,
		Amount:            d.Amount,
	}
}

// ToDomainPayslipLineItemSlice converts a slice of model PayslipLineItems,
// ordered by position. Slice order is the domain's display order (rent first,
// then utilities, then adjustments), so it must survive the round trip
// through storage.
func ToDomainPayslipLineItemSlice(ms []models.PayslipLineItem) []domain.PayslipLineItem {
	if len(ms) == 0 {
		return nil
	}
	ms = append([]models.PayslipLineItem(nil), ms...)
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Position < ms[j].Position })
	ds := make([]domain.PayslipLineItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.PayslipLineItem{
			PayslipLineItemID: m.PayslipLineItemID,
			PayslipID:         m.PayslipID,
			Name:              m.Name,
			Amount:            m.Amount,
		}
	}
	return ds
}
