package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/propertyops/property_billing_app/internal/apperrors"
	"github.com/propertyops/property_billing_app/internal/core/domain"
	portssvc "github.com/propertyops/property_billing_app/internal/core/ports/services"
	"github.com/propertyops/property_billing_app/internal/core/services"
	"github.com/propertyops/property_billing_app/internal/dto"
	"github.com/propertyops/property_billing_app/internal/platform/config"
)

func testBillingConfig() config.BillingConfig {
	return config.BillingConfig{
		RentLabel:         "Czynsz",
		UnderpaymentLabel: "Zaległe",
		OverpaymentLabel:  "Nadpłata",
		AdjustmentLabel:   "Wyrównanie",
		DefaultDueDay:     10,
	}
}

type PayslipServiceTestSuite struct {
	suite.Suite
	mockTenancyRepo       *MockTenancyRepository
	mockProviderRepo      *MockProviderRepository
	mockPayslipRepo       *MockPayslipRepository
	mockTenantPaymentRepo *MockTenantPaymentRepository
	mockForecastRepo      *MockForecastRepository
	mockResolver          *MockForecastResolver
	service               portssvc.PayslipSvcFacade

	tenancy domain.PropertyTenant
}

func (suite *PayslipServiceTestSuite) SetupTest() {
	suite.mockTenancyRepo = new(MockTenancyRepository)
	suite.mockProviderRepo = new(MockProviderRepository)
	suite.mockPayslipRepo = new(MockPayslipRepository)
	suite.mockTenantPaymentRepo = new(MockTenantPaymentRepository)
	suite.mockForecastRepo = new(MockForecastRepository)
	suite.mockResolver = new(MockForecastResolver)
	suite.service = services.NewPayslipService(
		suite.mockTenancyRepo,
		suite.mockProviderRepo,
		suite.mockPayslipRepo,
		suite.mockTenantPaymentRepo,
		suite.mockForecastRepo,
		suite.mockResolver,
		testBillingConfig(),
	)

	suite.tenancy = domain.PropertyTenant{
		PropertyTenantID: uuid.NewString(),
		PropertyID:       uuid.NewString(),
		TenantName:       "Anna Kowalska",
		RentAmount:       decimal.NewFromInt(1500),
	}
}

// --- PreviewPayslip ---

func (suite *PayslipServiceTestSuite) TestPreview_RentOnlyTenancy() {
	ctx := context.Background()
	month := domain.Month{Year: 2024, Month: time.February}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, suite.tenancy.PropertyTenantID).Return(&suite.tenancy, nil).Once()
	suite.mockProviderRepo.On("ListProvidersByProperty", ctx, suite.tenancy.PropertyID).Return(nil, nil).Once()
	suite.mockPayslipRepo.On("FindPayslipForMonth", ctx, suite.tenancy.PropertyTenantID, month.Prev()).Return(nil, apperrors.ErrNotFound).Once()

	draft, err := suite.service.PreviewPayslip(ctx, suite.tenancy.PropertyTenantID, dto.PayslipPreviewParams{Month: "2024-02"})

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.Require().Len(draft.LineItems, 1)
	suite.Equal("Czynsz", draft.LineItems[0].Name)
	suite.True(decimal.NewFromInt(1500).Equal(draft.LineItems[0].Amount))
	suite.Equal(month, draft.Month)
	suite.Equal(month.Date(10), draft.DueDate)
	suite.mockPayslipRepo.AssertExpectations(suite.T())
}

func (suite *PayslipServiceTestSuite) TestPreview_UtilityItemsCarryProviderPrefix() {
	ctx := context.Background()
	month := domain.Month{Year: 2024, Month: time.February}
	provider := domain.UtilityProvider{
		UtilityProviderID: uuid.NewString(),
		PropertyID:        suite.tenancy.PropertyID,
		Name:              "Wodociągi",
	}
	resolved := []domain.ForecastLineItem{
		{Name: "Water", Amount: decimal.NewFromInt(220)},
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, suite.tenancy.PropertyTenantID).Return(&suite.tenancy, nil).Once()
	suite.mockProviderRepo.On("ListProvidersByProperty", ctx, suite.tenancy.PropertyID).Return([]domain.UtilityProvider{provider}, nil).Once()
	suite.mockResolver.On("ResolveLineItemsForMonth", ctx, provider, month).Return(resolved, nil).Once()
	suite.mockPayslipRepo.On("FindPayslipForMonth", ctx, suite.tenancy.PropertyTenantID, month.Prev()).Return(nil, apperrors.ErrNotFound).Once()

	draft, err := suite.service.PreviewPayslip(ctx, suite.tenancy.PropertyTenantID, dto.PayslipPreviewParams{Month: "2024-02"})

	suite.Require().NoError(err)
	suite.Require().Len(draft.LineItems, 2)
	suite.Equal("Wodociągi - Water", draft.LineItems[1].Name)
	suite.mockResolver.AssertExpectations(suite.T())
}

func (suite *PayslipServiceTestSuite) TestPreview_UnderpaymentLine() {
	ctx := context.Background()
	month := domain.Month{Year: 2024, Month: time.February}
	prevMonth := month.Prev()
	prevPayslip := &domain.Payslip{
		PayslipID:        uuid.NewString(),
		PropertyTenantID: suite.tenancy.PropertyTenantID,
		Month:            prevMonth,
		LineItems: []domain.PayslipLineItem{
			{Name: "Czynsz", Amount: decimal.NewFromInt(2000)},
		},
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, suite.tenancy.PropertyTenantID).Return(&suite.tenancy, nil).Once()
	suite.mockProviderRepo.On("ListProvidersByProperty", ctx, suite.tenancy.PropertyID).Return(nil, nil).Once()
	suite.mockPayslipRepo.On("FindPayslipForMonth", ctx, suite.tenancy.PropertyTenantID, prevMonth).Return(prevPayslip, nil).Once()
	suite.mockTenantPaymentRepo.On("SumTenantPaymentsPaidIn", ctx, suite.tenancy.PropertyTenantID, prevMonth).Return(decimal.NewFromInt(1500), nil).Once()

	draft, err := suite.service.PreviewPayslip(ctx, suite.tenancy.PropertyTenantID, dto.PayslipPreviewParams{Month: "2024-02"})

	suite.Require().NoError(err)
	suite.Require().Len(draft.LineItems, 2)
	suite.Equal("Zaległe", draft.LineItems[1].Name)
	suite.True(decimal.NewFromInt(500).Equal(draft.LineItems[1].Amount))
}

func (suite *PayslipServiceTestSuite) TestPreview_OverpaymentBecomesCredit() {
	ctx := context.Background()
	month := domain.Month{Year: 2024, Month: time.February}
	prevMonth := month.Prev()
	prevPayslip := &domain.Payslip{
		PayslipID:        uuid.NewString(),
		PropertyTenantID: suite.tenancy.PropertyTenantID,
		Month:            prevMonth,
		LineItems: []domain.PayslipLineItem{
			{Name: "Czynsz", Amount: decimal.NewFromInt(2000)},
		},
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, suite.tenancy.PropertyTenantID).Return(&suite.tenancy, nil).Once()
	suite.mockProviderRepo.On("ListProvidersByProperty", ctx, suite.tenancy.PropertyID).Return(nil, nil).Once()
	suite.mockPayslipRepo.On("FindPayslipForMonth", ctx, suite.tenancy.PropertyTenantID, prevMonth).Return(prevPayslip, nil).Once()
	suite.mockTenantPaymentRepo.On("SumTenantPaymentsPaidIn", ctx, suite.tenancy.PropertyTenantID, prevMonth).Return(decimal.NewFromInt(2300), nil).Once()

	draft, err := suite.service.PreviewPayslip(ctx, suite.tenancy.PropertyTenantID, dto.PayslipPreviewParams{Month: "2024-02"})

	suite.Require().NoError(err)
	suite.Require().Len(draft.LineItems, 2)
	suite.Equal("Nadpłata", draft.LineItems[1].Name)
	suite.True(decimal.NewFromInt(-300).Equal(draft.LineItems[1].Amount))
}

func (suite *PayslipServiceTestSuite) TestPreview_ExactPaymentAddsNoLine() {
	ctx := context.Background()
	month := domain.Month{Year: 2024, Month: time.February}
	prevMonth := month.Prev()
	prevPayslip := &domain.Payslip{
		PayslipID:        uuid.NewString(),
		PropertyTenantID: suite.tenancy.PropertyTenantID,
		Month:            prevMonth,
		LineItems: []domain.PayslipLineItem{
			{Name: "Czynsz", Amount: decimal.NewFromInt(2000)},
		},
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, suite.tenancy.PropertyTenantID).Return(&suite.tenancy, nil).Once()
	suite.mockProviderRepo.On("ListProvidersByProperty", ctx, suite.tenancy.PropertyID).Return(nil, nil).Once()
	suite.mockPayslipRepo.On("FindPayslipForMonth", ctx, suite.tenancy.PropertyTenantID, prevMonth).Return(prevPayslip, nil).Once()
	suite.mockTenantPaymentRepo.On("SumTenantPaymentsPaidIn", ctx, suite.tenancy.PropertyTenantID, prevMonth).Return(decimal.NewFromInt(2000), nil).Once()

	draft, err := suite.service.PreviewPayslip(ctx, suite.tenancy.PropertyTenantID, dto.PayslipPreviewParams{Month: "2024-02"})

	suite.Require().NoError(err)
	suite.Len(draft.LineItems, 1)
}

func (suite *PayslipServiceTestSuite) TestPreview_ForecastAdjustmentSumsDeltas() {
	ctx := context.Background()
	month := domain.Month{Year: 2024, Month: time.February}
	prevMonth := month.Prev()
	provider := domain.UtilityProvider{
		UtilityProviderID: uuid.NewString(),
		PropertyID:        suite.tenancy.PropertyID,
		Name:              "MPWiK",
	}
	prevCreatedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	prevPayslip := &domain.Payslip{
		PayslipID:        uuid.NewString(),
		PropertyTenantID: suite.tenancy.PropertyTenantID,
		Month:            prevMonth,
		LineItems: []domain.PayslipLineItem{
			{Name: "Czynsz", Amount: decimal.NewFromInt(1500)},
			{Name: "MPWiK - Waste", Amount: decimal.NewFromInt(100)},
			{Name: "MPWiK - Water", Amount: decimal.NewFromInt(200)},
		},
		AuditFields: domain.AuditFields{CreatedAt: prevCreatedAt},
	}
	// Correction issued after the January payslip: waste drops to 90,
	// water rises to 220, net +10.
	corrected := &domain.Forecast{
		ForecastID: uuid.NewString(),
		LineItems: []domain.ForecastLineItem{
			{Name: "Waste", Amount: decimal.NewFromInt(90), DueDate: prevMonth.Date(10)},
			{Name: "Water", Amount: decimal.NewFromInt(220), DueDate: prevMonth.Date(10)},
		},
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, suite.tenancy.PropertyTenantID).Return(&suite.tenancy, nil).Once()
	suite.mockProviderRepo.On("ListProvidersByProperty", ctx, suite.tenancy.PropertyID).Return([]domain.UtilityProvider{provider}, nil).Once()
	suite.mockResolver.On("ResolveLineItemsForMonth", ctx, provider, month).Return(nil, nil).Once()
	suite.mockPayslipRepo.On("FindPayslipForMonth", ctx, suite.tenancy.PropertyTenantID, prevMonth).Return(prevPayslip, nil).Once()
	suite.mockTenantPaymentRepo.On("SumTenantPaymentsPaidIn", ctx, suite.tenancy.PropertyTenantID, prevMonth).Return(prevPayslip.TotalAmount(), nil).Once()
	suite.mockForecastRepo.On("FindLatestForecastForMonth", ctx, provider.UtilityProviderID, prevMonth, &prevCreatedAt).Return(corrected, nil).Once()

	draft, err := suite.service.PreviewPayslip(ctx, suite.tenancy.PropertyTenantID, dto.PayslipPreviewParams{Month: "2024-02"})

	suite.Require().NoError(err)
	suite.Require().Len(draft.LineItems, 2)
	suite.Equal("Wyrównanie", draft.LineItems[1].Name)
	suite.True(decimal.NewFromInt(10).Equal(draft.LineItems[1].Amount))
	suite.mockForecastRepo.AssertExpectations(suite.T())
}

func (suite *PayslipServiceTestSuite) TestPreview_NoCorrectionMeansNoAdjustment() {
	ctx := context.Background()
	month := domain.Month{Year: 2024, Month: time.February}
	prevMonth := month.Prev()
	provider := domain.UtilityProvider{
		UtilityProviderID: uuid.NewString(),
		PropertyID:        suite.tenancy.PropertyID,
		Name:              "MPWiK",
	}
	prevCreatedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	prevPayslip := &domain.Payslip{
		PayslipID:        uuid.NewString(),
		PropertyTenantID: suite.tenancy.PropertyTenantID,
		Month:            prevMonth,
		LineItems: []domain.PayslipLineItem{
			{Name: "Czynsz", Amount: decimal.NewFromInt(1500)},
			{Name: "MPWiK - Water", Amount: decimal.NewFromInt(200)},
		},
		AuditFields: domain.AuditFields{CreatedAt: prevCreatedAt},
	}
	// No forecast postdates the payslip; the one it billed from is still
	// current, so deltas cancel out.
	billedFrom := &domain.Forecast{
		ForecastID: uuid.NewString(),
		LineItems: []domain.ForecastLineItem{
			{Name: "Water", Amount: decimal.NewFromInt(200), DueDate: prevMonth.Date(10)},
		},
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, suite.tenancy.PropertyTenantID).Return(&suite.tenancy, nil).Once()
	suite.mockProviderRepo.On("ListProvidersByProperty", ctx, suite.tenancy.PropertyID).Return([]domain.UtilityProvider{provider}, nil).Once()
	suite.mockResolver.On("ResolveLineItemsForMonth", ctx, provider, month).Return(nil, nil).Once()
	suite.mockPayslipRepo.On("FindPayslipForMonth", ctx, suite.tenancy.PropertyTenantID, prevMonth).Return(prevPayslip, nil).Once()
	suite.mockTenantPaymentRepo.On("SumTenantPaymentsPaidIn", ctx, suite.tenancy.PropertyTenantID, prevMonth).Return(prevPayslip.TotalAmount(), nil).Once()
	suite.mockForecastRepo.On("FindLatestForecastForMonth", ctx, provider.UtilityProviderID, prevMonth, &prevCreatedAt).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockForecastRepo.On("FindLatestForecastForMonth", ctx, provider.UtilityProviderID, prevMonth, (*time.Time)(nil)).Return(billedFrom, nil).Once()

	draft, err := suite.service.PreviewPayslip(ctx, suite.tenancy.PropertyTenantID, dto.PayslipPreviewParams{Month: "2024-02"})

	suite.Require().NoError(err)
	suite.Len(draft.LineItems, 1)
	suite.mockForecastRepo.AssertExpectations(suite.T())
}

// --- CreatePayslip ---

func (suite *PayslipServiceTestSuite) TestCreatePayslip_Success() {
	ctx := context.Background()
	req := dto.CreatePayslipRequest{
		Month:   "2024-02",
		DueDate: "2024-02-10",
		LineItems: []dto.PayslipLineItemInput{
			{Name: "Czynsz", Amount: decimal.NewFromInt(1500)},
		},
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, suite.tenancy.PropertyTenantID).Return(&suite.tenancy, nil).Once()
	suite.mockPayslipRepo.On("SavePayslip", ctx, mock.MatchedBy(func(p domain.Payslip) bool {
		return p.PropertyTenantID == suite.tenancy.PropertyTenantID &&
			p.Month.Equal(domain.Month{Year: 2024, Month: time.February}) &&
			len(p.LineItems) == 1
	})).Return(nil).Once()

	payslip, err := suite.service.CreatePayslip(ctx, suite.tenancy.PropertyTenantID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payslip)
	suite.True(decimal.NewFromInt(1500).Equal(payslip.TotalAmount()))
	suite.mockPayslipRepo.AssertExpectations(suite.T())
}

func (suite *PayslipServiceTestSuite) TestCreatePayslip_BlankItemName() {
	ctx := context.Background()
	req := dto.CreatePayslipRequest{
		Month:   "2024-02",
		DueDate: "2024-02-10",
		LineItems: []dto.PayslipLineItemInput{
			{Name: " ", Amount: decimal.NewFromInt(1500)},
		},
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, suite.tenancy.PropertyTenantID).Return(&suite.tenancy, nil).Once()

	payslip, err := suite.service.CreatePayslip(ctx, suite.tenancy.PropertyTenantID, req)

	suite.Require().Error(err)
	suite.Nil(payslip)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPayslipRepo.AssertNotCalled(suite.T(), "SavePayslip", mock.Anything, mock.Anything)
}

func (suite *PayslipServiceTestSuite) TestCreatePayslip_DuplicateMonth() {
	ctx := context.Background()
	req := dto.CreatePayslipRequest{
		Month:   "2024-02",
		DueDate: "2024-02-10",
		LineItems: []dto.PayslipLineItemInput{
			{Name: "Czynsz", Amount: decimal.NewFromInt(1500)},
		},
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, suite.tenancy.PropertyTenantID).Return(&suite.tenancy, nil).Once()
	suite.mockPayslipRepo.On("SavePayslip", ctx, mock.AnythingOfType("domain.Payslip")).Return(apperrors.ErrDuplicate).Once()

	payslip, err := suite.service.CreatePayslip(ctx, suite.tenancy.PropertyTenantID, req)

	suite.Require().Error(err)
	suite.Nil(payslip)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockPayslipRepo.AssertExpectations(suite.T())
}

func TestPayslipService(t *testing.T) {
	suite.Run(t, new(PayslipServiceTestSuite))
}
