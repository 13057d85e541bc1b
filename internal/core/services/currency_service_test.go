package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByID_Success() {
	ctx := context.Background()
	expected := usd

	suite.mockRepo.On("FindCurrencyByID", ctx, int64(2)).Return(&expected, nil).Once()

	currency, err := suite.service.GetCurrencyByID(ctx, 2)

	suite.Require().NoError(err)
	suite.Equal("USD", currency.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByID(ctx, 99)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Success() {
	ctx := context.Background()
	expected := []domain.Currency{eur, usd}

	suite.mockRepo.On("ListCurrencies", ctx).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	var expected []domain.Currency

	suite.mockRepo.On("ListCurrencies", ctx).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Empty(currencies)
	suite.NotNil(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, assert.AnError).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
