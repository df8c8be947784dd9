package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/propertyops/property_billing_app/internal/core/domain"
	portsrepo "github.com/propertyops/property_billing_app/internal/core/ports/repositories"
	portssvc "github.com/propertyops/property_billing_app/internal/core/ports/services"
)

// Shared repository mocks for the service suites. Several services depend on
// the same repositories, so the mocks live here instead of per test file.

// --- Mock TenancyRepository ---

type MockTenancyRepository struct {
	mock.Mock
}

var _ portsrepo.TenancyRepositoryFacade = (*MockTenancyRepository)(nil)

func (m *MockTenancyRepository) FindTenancyByID(ctx context.Context, tenancyID string) (*domain.PropertyTenant, error) {
	args := m.Called(ctx, tenancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyTenant), args.Error(1)
}

func (m *MockTenancyRepository) ListTenanciesByProperty(ctx context.Context, propertyID string) ([]domain.PropertyTenant, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyTenant), args.Error(1)
}

func (m *MockTenancyRepository) SaveTenancy(ctx context.Context, tenancy domain.PropertyTenant) error {
	args := m.Called(ctx, tenancy)
	return args.Error(0)
}

func (m *MockTenancyRepository) UpdateTenancy(ctx context.Context, tenancy domain.PropertyTenant) error {
	args := m.Called(ctx, tenancy)
	return args.Error(0)
}

func (m *MockTenancyRepository) DeleteTenancy(ctx context.Context, tenancyID string) error {
	args := m.Called(ctx, tenancyID)
	return args.Error(0)
}

// --- Mock UtilityProviderRepository ---

type MockProviderRepository struct {
	mock.Mock
}

var _ portsrepo.UtilityProviderRepositoryFacade = (*MockProviderRepository)(nil)

func (m *MockProviderRepository) FindProviderByID(ctx context.Context, providerID string) (*domain.UtilityProvider, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UtilityProvider), args.Error(1)
}

func (m *MockProviderRepository) ListProvidersByProperty(ctx context.Context, propertyID string) ([]domain.UtilityProvider, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UtilityProvider), args.Error(1)
}

func (m *MockProviderRepository) SaveProvider(ctx context.Context, provider domain.UtilityProvider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *MockProviderRepository) UpdateProvider(ctx context.Context, provider domain.UtilityProvider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *MockProviderRepository) DeleteProvider(ctx context.Context, providerID string) error {
	args := m.Called(ctx, providerID)
	return args.Error(0)
}

// --- Mock ForecastRepository ---

type MockForecastRepository struct {
	mock.Mock
}

var _ portsrepo.ForecastRepositoryFacade = (*MockForecastRepository)(nil)

func (m *MockForecastRepository) FindForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error) {
	args := m.Called(ctx, forecastID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forecast), args.Error(1)
}

func (m *MockForecastRepository) ListForecastsByProvider(ctx context.Context, providerID string) ([]domain.Forecast, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Forecast), args.Error(1)
}

func (m *MockForecastRepository) FindLineItemsDueInMonth(ctx context.Context, providerID string, month domain.Month) ([]domain.ForecastLineItem, error) {
	args := m.Called(ctx, providerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ForecastLineItem), args.Error(1)
}

func (m *MockForecastRepository) FindLineItemsDueInMonthIssuedBy(ctx context.Context, providerID string, month domain.Month, issuedBy time.Time) ([]domain.ForecastLineItem, error) {
	args := m.Called(ctx, providerID, month, issuedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ForecastLineItem), args.Error(1)
}

func (m *MockForecastRepository) FindLineItemsDueInMonthIssuedAfter(ctx context.Context, providerID string, month domain.Month, issuedAfter time.Time) ([]domain.ForecastLineItem, error) {
	args := m.Called(ctx, providerID, month, issuedAfter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ForecastLineItem), args.Error(1)
}

func (m *MockForecastRepository) FindLatestForecastWithItemsBefore(ctx context.Context, providerID string, before time.Time) (*domain.Forecast, error) {
	args := m.Called(ctx, providerID, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forecast), args.Error(1)
}

func (m *MockForecastRepository) FindLatestForecastForMonth(ctx context.Context, providerID string, month domain.Month, issuedAfter *time.Time) (*domain.Forecast, error) {
	args := m.Called(ctx, providerID, month, issuedAfter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forecast), args.Error(1)
}

func (m *MockForecastRepository) ListLineItemDueDates(ctx context.Context, providerID string) ([]time.Time, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockForecastRepository) EarliestDueDateInMonth(ctx context.Context, providerID string, month domain.Month) (*time.Time, error) {
	args := m.Called(ctx, providerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockForecastRepository) SaveForecast(ctx context.Context, forecast domain.Forecast) error {
	args := m.Called(ctx, forecast)
	return args.Error(0)
}

func (m *MockForecastRepository) UpdateForecast(ctx context.Context, forecast domain.Forecast, deleteLineItemIDs []string) error {
	args := m.Called(ctx, forecast, deleteLineItemIDs)
	return args.Error(0)
}

func (m *MockForecastRepository) DeleteForecast(ctx context.Context, forecastID string) error {
	args := m.Called(ctx, forecastID)
	return args.Error(0)
}

// --- Mock PayslipRepository ---

type MockPayslipRepository struct {
	mock.Mock
}

var _ portsrepo.PayslipRepositoryFacade = (*MockPayslipRepository)(nil)

func (m *MockPayslipRepository) FindPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error) {
	args := m.Called(ctx, payslipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payslip), args.Error(1)
}

func (m *MockPayslipRepository) FindPayslipForMonth(ctx context.Context, tenancyID string, month domain.Month) (*domain.Payslip, error) {
	args := m.Called(ctx, tenancyID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payslip), args.Error(1)
}

func (m *MockPayslipRepository) ListPayslipsByTenancy(ctx context.Context, tenancyID string) ([]domain.Payslip, error) {
	args := m.Called(ctx, tenancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payslip), args.Error(1)
}

func (m *MockPayslipRepository) ListPayslipMonths(ctx context.Context, tenancyID string) ([]domain.Month, error) {
	args := m.Called(ctx, tenancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Month), args.Error(1)
}

func (m *MockPayslipRepository) SavePayslip(ctx context.Context, payslip domain.Payslip) error {
	args := m.Called(ctx, payslip)
	return args.Error(0)
}

func (m *MockPayslipRepository) DeletePayslip(ctx context.Context, payslipID string) error {
	args := m.Called(ctx, payslipID)
	return args.Error(0)
}

// --- Mock TenantPaymentRepository ---

type MockTenantPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.TenantPaymentRepositoryFacade = (*MockTenantPaymentRepository)(nil)

func (m *MockTenantPaymentRepository) FindTenantPaymentByID(ctx context.Context, paymentID string) (*domain.TenantPayment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantPayment), args.Error(1)
}

func (m *MockTenantPaymentRepository) ListTenantPaymentsByTenancy(ctx context.Context, tenancyID string) ([]domain.TenantPayment, error) {
	args := m.Called(ctx, tenancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantPayment), args.Error(1)
}

func (m *MockTenantPaymentRepository) SumTenantPaymentsPaidIn(ctx context.Context, tenancyID string, month domain.Month) (decimal.Decimal, error) {
	args := m.Called(ctx, tenancyID, month)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTenantPaymentRepository) ListTenantPaymentPaidDates(ctx context.Context, tenancyID string) ([]time.Time, error) {
	args := m.Called(ctx, tenancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockTenantPaymentRepository) SaveTenantPayment(ctx context.Context, payment domain.TenantPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockTenantPaymentRepository) DeleteTenantPayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Mock UtilityPaymentRepository ---

type MockUtilityPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.UtilityPaymentRepositoryFacade = (*MockUtilityPaymentRepository)(nil)

func (m *MockUtilityPaymentRepository) FindUtilityPaymentByID(ctx context.Context, paymentID string) (*domain.UtilityPayment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UtilityPayment), args.Error(1)
}

func (m *MockUtilityPaymentRepository) ListUtilityPaymentsByProvider(ctx context.Context, providerID string) ([]domain.UtilityPayment, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UtilityPayment), args.Error(1)
}

func (m *MockUtilityPaymentRepository) SumUtilityPaymentsPaidIn(ctx context.Context, providerID string, month domain.Month) (decimal.Decimal, error) {
	args := m.Called(ctx, providerID, month)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockUtilityPaymentRepository) ListUtilityPaymentPaidDates(ctx context.Context, providerID string) ([]time.Time, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockUtilityPaymentRepository) SaveUtilityPayment(ctx context.Context, payment domain.UtilityPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockUtilityPaymentRepository) DeleteUtilityPayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Mock TenantBalanceSheetRepository ---

type MockTenantBalanceSheetRepository struct {
	mock.Mock
}

var _ portsrepo.TenantBalanceSheetRepositoryFacade = (*MockTenantBalanceSheetRepository)(nil)

func (m *MockTenantBalanceSheetRepository) FindTenantBalanceSheet(ctx context.Context, tenancyID string, month domain.Month) (*domain.TenantBalanceSheet, error) {
	args := m.Called(ctx, tenancyID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantBalanceSheet), args.Error(1)
}

func (m *MockTenantBalanceSheetRepository) ListTenantBalanceSheets(ctx context.Context, tenancyID string) ([]domain.TenantBalanceSheet, error) {
	args := m.Called(ctx, tenancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantBalanceSheet), args.Error(1)
}

func (m *MockTenantBalanceSheetRepository) UpsertTenantBalanceSheet(ctx context.Context, sheet domain.TenantBalanceSheet) error {
	args := m.Called(ctx, sheet)
	return args.Error(0)
}

// --- Mock ProviderBalanceSheetRepository ---

type MockProviderBalanceSheetRepository struct {
	mock.Mock
}

var _ portsrepo.ProviderBalanceSheetRepositoryFacade = (*MockProviderBalanceSheetRepository)(nil)

func (m *MockProviderBalanceSheetRepository) FindProviderBalanceSheet(ctx context.Context, providerID string, month domain.Month) (*domain.UtilityProviderBalanceSheet, error) {
	args := m.Called(ctx, providerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UtilityProviderBalanceSheet), args.Error(1)
}

func (m *MockProviderBalanceSheetRepository) ListProviderBalanceSheets(ctx context.Context, providerID string) ([]domain.UtilityProviderBalanceSheet, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UtilityProviderBalanceSheet), args.Error(1)
}

func (m *MockProviderBalanceSheetRepository) UpsertProviderBalanceSheet(ctx context.Context, sheet domain.UtilityProviderBalanceSheet) error {
	args := m.Called(ctx, sheet)
	return args.Error(0)
}

// --- Mock ForecastResolver ---

type MockForecastResolver struct {
	mock.Mock
}

var _ portssvc.ForecastResolverSvc = (*MockForecastResolver)(nil)

func (m *MockForecastResolver) ResolveLineItemsForMonth(ctx context.Context, provider domain.UtilityProvider, month domain.Month) ([]domain.ForecastLineItem, error) {
	args := m.Called(ctx, provider, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ForecastLineItem), args.Error(1)
}
