package services

import (
	"context"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	"github.com/propertyops/property_billing_app/internal/dto"
)

// PaymentSvcFacade defines operations on tenant and utility payments.
type PaymentSvcFacade interface {
	// CreateTenantPayment records money received from a tenant.
	CreateTenantPayment(ctx context.Context, tenancyID string, req dto.CreateTenantPaymentRequest) (*domain.TenantPayment, error)

	// ListTenantPayments retrieves a tenancy's payments, most recent first.
	ListTenantPayments(ctx context.Context, tenancyID string) ([]domain.TenantPayment, error)

	// DeleteTenantPayment removes a tenant payment.
	DeleteTenantPayment(ctx context.Context, paymentID string) error

	// CreateUtilityPayment records money paid to a utility provider.
	CreateUtilityPayment(ctx context.Context, providerID string, req dto.CreateUtilityPaymentRequest) (*domain.UtilityPayment, error)

	// ListUtilityPayments retrieves a provider's payments, most recent first.
	ListUtilityPayments(ctx context.Context, providerID string) ([]domain.UtilityPayment, error)

	// DeleteUtilityPayment removes a utility payment.
	DeleteUtilityPayment(ctx context.Context, paymentID string) error
}
