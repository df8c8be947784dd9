package models

import "github.com/shopspring/decimal"

// Property represents a managed property.
type Property struct {
	PropertyID string `json:"propertyID"` // Primary Key (UUID)
	Name       string `json:"name"`
	AuditFields
}

// PropertyTenant represents a tenancy: who rents the property and for how
// much.
type PropertyTenant struct {
	PropertyTenantID string          `json:"propertyTenantID"` // Primary Key (UUID)
	PropertyID       string          `json:"propertyID"`       // FK -> properties
	TenantName       string          `json:"tenantName"`
	RentAmount       decimal.Decimal `json:"rentAmount"`
	AuditFields
}
