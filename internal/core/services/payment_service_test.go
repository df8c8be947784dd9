package services_test

import (
	"context"
	"fmt"
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
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockTenancyRepo        *MockTenancyRepository
	mockProviderRepo       *MockProviderRepository
	mockTenantPaymentRepo  *MockTenantPaymentRepository
	mockUtilityPaymentRepo *MockUtilityPaymentRepository
	service                portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockTenancyRepo = new(MockTenancyRepository)
	suite.mockProviderRepo = new(MockProviderRepository)
	suite.mockTenantPaymentRepo = new(MockTenantPaymentRepository)
	suite.mockUtilityPaymentRepo = new(MockUtilityPaymentRepository)
	suite.service = services.NewPaymentService(
		suite.mockTenancyRepo,
		suite.mockProviderRepo,
		suite.mockTenantPaymentRepo,
		suite.mockUtilityPaymentRepo,
	)
}

func (suite *PaymentServiceTestSuite) tenancy() *domain.PropertyTenant {
	return &domain.PropertyTenant{
		PropertyTenantID: uuid.NewString(),
		PropertyID:       uuid.NewString(),
		TenantName:       "Anna Kowalska",
		RentAmount:       decimal.NewFromInt(2000),
	}
}

func (suite *PaymentServiceTestSuite) provider() *domain.UtilityProvider {
	return &domain.UtilityProvider{
		UtilityProviderID: uuid.NewString(),
		PropertyID:        uuid.NewString(),
		Name:              "Wodociągi",
		ForecastBehavior:  domain.CarryForward,
	}
}

// --- CreateTenantPayment ---

func (suite *PaymentServiceTestSuite) TestCreateTenantPayment_Success() {
	ctx := context.Background()
	tenancy := suite.tenancy()
	req := dto.CreateTenantPaymentRequest{
		Month:    "2024-03",
		Amount:   decimal.NewFromInt(2000),
		PaidDate: "2024-03-05",
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, tenancy.PropertyTenantID).Return(tenancy, nil).Once()
	suite.mockTenantPaymentRepo.On("SaveTenantPayment", ctx, mock.MatchedBy(func(p domain.TenantPayment) bool {
		return p.PropertyTenantID == tenancy.PropertyTenantID &&
			p.PropertyID == tenancy.PropertyID &&
			p.Month == domain.Month{Year: 2024, Month: time.March} &&
			p.Amount.Equal(decimal.NewFromInt(2000))
	})).Return(nil).Once()

	payment, err := suite.service.CreateTenantPayment(ctx, tenancy.PropertyTenantID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(payment.TenantPaymentID)
	suite.Equal(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), payment.PaidDate)
	suite.mockTenantPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreateTenantPayment_DuplicateMonth() {
	ctx := context.Background()
	tenancy := suite.tenancy()
	req := dto.CreateTenantPaymentRequest{
		Month:    "2024-03",
		Amount:   decimal.NewFromInt(2000),
		PaidDate: "2024-03-05",
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, tenancy.PropertyTenantID).Return(tenancy, nil).Once()
	suite.mockTenantPaymentRepo.On("SaveTenantPayment", ctx, mock.Anything).
		Return(fmt.Errorf("%w: payment already exists for this tenancy and month", apperrors.ErrDuplicate)).Once()

	payment, err := suite.service.CreateTenantPayment(ctx, tenancy.PropertyTenantID, req)

	// A second submission for the same month must surface as a duplicate,
	// not silently record a second payment.
	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(payment)
	suite.mockTenantPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreateTenantPayment_TenancyNotFound() {
	ctx := context.Background()
	req := dto.CreateTenantPaymentRequest{
		Month:    "2024-03",
		Amount:   decimal.NewFromInt(2000),
		PaidDate: "2024-03-05",
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.CreateTenantPayment(ctx, "missing", req)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(payment)
	suite.mockTenantPaymentRepo.AssertNotCalled(suite.T(), "SaveTenantPayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreateTenantPayment_InvalidMonth() {
	ctx := context.Background()
	tenancy := suite.tenancy()
	req := dto.CreateTenantPaymentRequest{
		Month:    "March 2024",
		Amount:   decimal.NewFromInt(2000),
		PaidDate: "2024-03-05",
	}

	suite.mockTenancyRepo.On("FindTenancyByID", ctx, tenancy.PropertyTenantID).Return(tenancy, nil).Once()

	payment, err := suite.service.CreateTenantPayment(ctx, tenancy.PropertyTenantID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(payment)
	suite.mockTenantPaymentRepo.AssertNotCalled(suite.T(), "SaveTenantPayment", mock.Anything, mock.Anything)
}

// --- CreateUtilityPayment ---

func (suite *PaymentServiceTestSuite) TestCreateUtilityPayment_Success() {
	ctx := context.Background()
	provider := suite.provider()
	req := dto.CreateUtilityPaymentRequest{
		Month:    "2024-03",
		Amount:   decimal.NewFromInt(310),
		PaidDate: "2024-03-12",
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, provider.UtilityProviderID).Return(provider, nil).Once()
	suite.mockUtilityPaymentRepo.On("SaveUtilityPayment", ctx, mock.MatchedBy(func(p domain.UtilityPayment) bool {
		return p.UtilityProviderID == provider.UtilityProviderID &&
			p.PropertyID == provider.PropertyID &&
			p.Month == domain.Month{Year: 2024, Month: time.March} &&
			p.Amount.Equal(decimal.NewFromInt(310))
	})).Return(nil).Once()

	payment, err := suite.service.CreateUtilityPayment(ctx, provider.UtilityProviderID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(payment.UtilityPaymentID)
	suite.mockUtilityPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreateUtilityPayment_DuplicateMonth() {
	ctx := context.Background()
	provider := suite.provider()
	req := dto.CreateUtilityPaymentRequest{
		Month:    "2024-03",
		Amount:   decimal.NewFromInt(310),
		PaidDate: "2024-03-12",
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, provider.UtilityProviderID).Return(provider, nil).Once()
	suite.mockUtilityPaymentRepo.On("SaveUtilityPayment", ctx, mock.Anything).
		Return(fmt.Errorf("%w: payment already exists for this provider and month", apperrors.ErrDuplicate)).Once()

	payment, err := suite.service.CreateUtilityPayment(ctx, provider.UtilityProviderID, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(payment)
	suite.mockUtilityPaymentRepo.AssertExpectations(suite.T())
}

// --- Delete ---

func (suite *PaymentServiceTestSuite) TestDeleteTenantPayment_NotFound() {
	ctx := context.Background()

	suite.mockTenantPaymentRepo.On("DeleteTenantPayment", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTenantPayment(ctx, "missing")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTenantPaymentRepo.AssertExpectations(suite.T())
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
