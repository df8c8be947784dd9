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
)

type ForecastServiceTestSuite struct {
	suite.Suite
	mockForecastRepo *MockForecastRepository
	mockProviderRepo *MockProviderRepository
	service          portssvc.ForecastSvcFacade
}

func (suite *ForecastServiceTestSuite) SetupTest() {
	suite.mockForecastRepo = new(MockForecastRepository)
	suite.mockProviderRepo = new(MockProviderRepository)
	suite.service = services.NewForecastService(suite.mockForecastRepo, suite.mockProviderRepo)
}

func (suite *ForecastServiceTestSuite) provider(behavior domain.ForecastBehavior) domain.UtilityProvider {
	return domain.UtilityProvider{
		UtilityProviderID: uuid.NewString(),
		PropertyID:        uuid.NewString(),
		Name:              "Water",
		ForecastBehavior:  behavior,
	}
}

// --- ResolveLineItemsForMonth ---

func (suite *ForecastServiceTestSuite) TestResolve_ActiveItemsWin() {
	ctx := context.Background()
	provider := suite.provider(domain.CarryForward)
	month := domain.Month{Year: 2024, Month: time.March}
	active := []domain.ForecastLineItem{
		{ForecastLineItemID: uuid.NewString(), Name: "Water", Amount: decimal.NewFromInt(220)},
	}

	suite.mockForecastRepo.On("FindLineItemsDueInMonth", ctx, provider.UtilityProviderID, month).Return(active, nil).Once()

	items, err := suite.service.ResolveLineItemsForMonth(ctx, provider, month)

	suite.Require().NoError(err)
	suite.Equal(active, items)
	// The carry-forward path must never be consulted when the month is covered.
	suite.mockForecastRepo.AssertNotCalled(suite.T(), "FindLatestForecastWithItemsBefore", mock.Anything, mock.Anything, mock.Anything)
	suite.mockForecastRepo.AssertExpectations(suite.T())
}

func (suite *ForecastServiceTestSuite) TestResolve_ZeroAmountItemStillCoversMonth() {
	ctx := context.Background()
	provider := suite.provider(domain.CarryForward)
	month := domain.Month{Year: 2024, Month: time.March}
	active := []domain.ForecastLineItem{
		{ForecastLineItemID: uuid.NewString(), Name: "Water", Amount: decimal.Zero},
	}

	suite.mockForecastRepo.On("FindLineItemsDueInMonth", ctx, provider.UtilityProviderID, month).Return(active, nil).Once()

	items, err := suite.service.ResolveLineItemsForMonth(ctx, provider, month)

	suite.Require().NoError(err)
	suite.Len(items, 1)
	suite.True(items[0].Amount.IsZero())
	suite.mockForecastRepo.AssertNotCalled(suite.T(), "FindLatestForecastWithItemsBefore", mock.Anything, mock.Anything, mock.Anything)
	suite.mockForecastRepo.AssertExpectations(suite.T())
}

func (suite *ForecastServiceTestSuite) TestResolve_CarryForwardUsesFlaggedItemsOnly() {
	ctx := context.Background()
	provider := suite.provider(domain.CarryForward)
	month := domain.Month{Year: 2024, Month: time.June}
	last := &domain.Forecast{
		ForecastID: uuid.NewString(),
		LineItems: []domain.ForecastLineItem{
			{Name: "Water", Amount: decimal.NewFromInt(200), CarryForward: true},
			{Name: "Connection fee", Amount: decimal.NewFromInt(300), CarryForward: false},
		},
	}

	suite.mockForecastRepo.On("FindLineItemsDueInMonth", ctx, provider.UtilityProviderID, month).Return(nil, nil).Once()
	suite.mockForecastRepo.On("FindLatestForecastWithItemsBefore", ctx, provider.UtilityProviderID, month.Start()).Return(last, nil).Once()

	items, err := suite.service.ResolveLineItemsForMonth(ctx, provider, month)

	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("Water", items[0].Name)
	suite.True(decimal.NewFromInt(200).Equal(items[0].Amount))
	suite.mockForecastRepo.AssertExpectations(suite.T())
}

func (suite *ForecastServiceTestSuite) TestResolve_CarryForwardWithoutHistory() {
	ctx := context.Background()
	provider := suite.provider(domain.CarryForward)
	month := domain.Month{Year: 2024, Month: time.June}

	suite.mockForecastRepo.On("FindLineItemsDueInMonth", ctx, provider.UtilityProviderID, month).Return(nil, nil).Once()
	suite.mockForecastRepo.On("FindLatestForecastWithItemsBefore", ctx, provider.UtilityProviderID, month.Start()).Return(nil, apperrors.ErrNotFound).Once()

	items, err := suite.service.ResolveLineItemsForMonth(ctx, provider, month)

	suite.Require().NoError(err)
	suite.Empty(items)
	suite.mockForecastRepo.AssertExpectations(suite.T())
}

func (suite *ForecastServiceTestSuite) TestResolve_ZeroAfterExpiry() {
	ctx := context.Background()
	provider := suite.provider(domain.ZeroAfterExpiry)
	month := domain.Month{Year: 2024, Month: time.June}

	suite.mockForecastRepo.On("FindLineItemsDueInMonth", ctx, provider.UtilityProviderID, month).Return(nil, nil).Once()

	items, err := suite.service.ResolveLineItemsForMonth(ctx, provider, month)

	suite.Require().NoError(err)
	suite.Empty(items)
	suite.mockForecastRepo.AssertNotCalled(suite.T(), "FindLatestForecastWithItemsBefore", mock.Anything, mock.Anything, mock.Anything)
	suite.mockForecastRepo.AssertExpectations(suite.T())
}

// --- CreateForecast ---

func (suite *ForecastServiceTestSuite) TestCreateForecast_Success() {
	ctx := context.Background()
	provider := suite.provider(domain.ZeroAfterExpiry)
	req := dto.CreateForecastRequest{
		IssuedDate: "2024-02-15",
		LineItems: []dto.ForecastLineItemInput{
			{Name: "Water", Amount: decimal.NewFromInt(220), DueDate: "2024-03-10", CarryForward: true},
			{Name: "Waste", Amount: decimal.NewFromInt(90), DueDate: "2024-03-10"},
		},
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, provider.UtilityProviderID).Return(&provider, nil).Once()
	suite.mockForecastRepo.On("SaveForecast", ctx, mock.MatchedBy(func(f domain.Forecast) bool {
		return f.UtilityProviderID == provider.UtilityProviderID &&
			f.PropertyID == provider.PropertyID &&
			len(f.LineItems) == 2 &&
			f.LineItems[0].CarryForward &&
			!f.LineItems[1].CarryForward
	})).Return(nil).Once()

	forecast, err := suite.service.CreateForecast(ctx, provider.UtilityProviderID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(forecast)
	suite.Equal("2024-02-15", forecast.IssuedDate.Format("2006-01-02"))
	suite.Len(forecast.LineItems, 2)
	suite.mockProviderRepo.AssertExpectations(suite.T())
	suite.mockForecastRepo.AssertExpectations(suite.T())
}

func (suite *ForecastServiceTestSuite) TestCreateForecast_BlankItemName() {
	ctx := context.Background()
	provider := suite.provider(domain.ZeroAfterExpiry)
	req := dto.CreateForecastRequest{
		IssuedDate: "2024-02-15",
		LineItems: []dto.ForecastLineItemInput{
			{Name: "   ", Amount: decimal.NewFromInt(220), DueDate: "2024-03-10"},
		},
	}

	suite.mockProviderRepo.On("FindProviderByID", ctx, provider.UtilityProviderID).Return(&provider, nil).Once()

	forecast, err := suite.service.CreateForecast(ctx, provider.UtilityProviderID, req)

	suite.Require().Error(err)
	suite.Nil(forecast)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockForecastRepo.AssertNotCalled(suite.T(), "SaveForecast", mock.Anything, mock.Anything)
}

func (suite *ForecastServiceTestSuite) TestCreateForecast_ProviderNotFound() {
	ctx := context.Background()
	providerID := uuid.NewString()

	suite.mockProviderRepo.On("FindProviderByID", ctx, providerID).Return(nil, apperrors.ErrNotFound).Once()

	forecast, err := suite.service.CreateForecast(ctx, providerID, dto.CreateForecastRequest{IssuedDate: "2024-02-15"})

	suite.Require().Error(err)
	suite.Nil(forecast)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateForecast ---

func (suite *ForecastServiceTestSuite) TestUpdateForecast_UpsertAndDelete() {
	ctx := context.Background()
	forecastID := uuid.NewString()
	keepID := uuid.NewString()
	dropID := uuid.NewString()
	existing := &domain.Forecast{
		ForecastID: forecastID,
		IssuedDate: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		LineItems: []domain.ForecastLineItem{
			{ForecastLineItemID: keepID, ForecastID: forecastID, Name: "Water", Amount: decimal.NewFromInt(200), DueDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
			{ForecastLineItemID: dropID, ForecastID: forecastID, Name: "Waste", Amount: decimal.NewFromInt(90), DueDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		},
	}
	req := dto.UpdateForecastRequest{
		UpsertLineItems: []dto.ForecastLineItemUpsert{
			{ForecastLineItemID: &keepID, Name: "Water", Amount: decimal.NewFromInt(220), DueDate: "2024-03-10"},
			{Name: "Heating", Amount: decimal.NewFromInt(340), DueDate: "2024-03-15"},
		},
		DeleteLineItemIDs: []string{dropID},
	}

	suite.mockForecastRepo.On("FindForecastByID", ctx, forecastID).Return(existing, nil).Once()
	suite.mockForecastRepo.On("UpdateForecast", ctx, mock.MatchedBy(func(f domain.Forecast) bool {
		if len(f.LineItems) != 2 {
			return false
		}
		return f.LineItems[0].ForecastLineItemID == keepID &&
			decimal.NewFromInt(220).Equal(f.LineItems[0].Amount) &&
			f.LineItems[1].Name == "Heating"
	}), []string{dropID}).Return(nil).Once()

	forecast, err := suite.service.UpdateForecast(ctx, forecastID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(forecast)
	suite.Len(forecast.LineItems, 2)
	suite.mockForecastRepo.AssertExpectations(suite.T())
}

func (suite *ForecastServiceTestSuite) TestUpdateForecast_ForeignLineItemRejected() {
	ctx := context.Background()
	forecastID := uuid.NewString()
	foreignID := uuid.NewString()
	existing := &domain.Forecast{ForecastID: forecastID}
	req := dto.UpdateForecastRequest{
		UpsertLineItems: []dto.ForecastLineItemUpsert{
			{ForecastLineItemID: &foreignID, Name: "Water", Amount: decimal.NewFromInt(220), DueDate: "2024-03-10"},
		},
	}

	suite.mockForecastRepo.On("FindForecastByID", ctx, forecastID).Return(existing, nil).Once()

	forecast, err := suite.service.UpdateForecast(ctx, forecastID, req)

	suite.Require().Error(err)
	suite.Nil(forecast)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockForecastRepo.AssertNotCalled(suite.T(), "UpdateForecast", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ForecastServiceTestSuite) TestDeleteForecast_NotFound() {
	ctx := context.Background()
	forecastID := uuid.NewString()

	suite.mockForecastRepo.On("DeleteForecast", ctx, forecastID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteForecast(ctx, forecastID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockForecastRepo.AssertExpectations(suite.T())
}

func TestForecastService(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}
