package domain

import "github.com/shopspring/decimal"

// Property is a rental property. It owns utility providers and tenancies.
type Property struct {
	PropertyID string `json:"propertyID"` // Primary Key (UUID)
	Name       string `json:"name"`
	AuditFields
}

// PropertyTenant is a tenancy: one tenant renting one property. Unique per
// (property, tenant). It owns payslips, tenant payments and tenant balance
// sheets.
type PropertyTenant struct {
	PropertyTenantID string          `json:"propertyTenantID"` // Primary Key (UUID)
	PropertyID       string          `json:"propertyID"`       // FK -> properties
	TenantName       string          `json:"tenantName"`
	RentAmount       decimal.Decimal `json:"rentAmount"` // Must be > 0
	AuditFields
}
