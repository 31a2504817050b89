package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type DashboardServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockTxnRepo       *MockTransactionRepository
	service           portssvc.DashboardService
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewDashboardService(suite.mockReportingRepo, suite.mockTxnRepo)
}

// --- Test Cases ---

func (suite *DashboardServiceTestSuite) TestGetMetrics_Success() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockReportingRepo.On("SumConfirmedAmount", mock.Anything, companyID, domain.KindIncome,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(5000), nil).Once()
	suite.mockReportingRepo.On("SumConfirmedAmount", mock.Anything, companyID, domain.KindExpense,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(3200), nil).Once()
	suite.mockReportingRepo.On("CountPendingTransactions", mock.Anything, companyID).
		Return(int64(7), nil).Once()

	metrics, err := suite.service.GetMetrics(ctx, companyID)

	suite.Require().NoError(err)
	suite.Require().NotNil(metrics)
	suite.True(metrics.Income.Equal(decimal.NewFromInt(5000)))
	suite.True(metrics.Expense.Equal(decimal.NewFromInt(3200)))
	suite.True(metrics.Net.Equal(decimal.NewFromInt(1800)))
	suite.Equal(int64(7), metrics.PendingCount)

	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetMetrics_DegradesToZerosOnFailure() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockReportingRepo.On("SumConfirmedAmount", mock.Anything, companyID, domain.KindIncome,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(decimal.Zero, assert.AnError)
	suite.mockReportingRepo.On("SumConfirmedAmount", mock.Anything, companyID, domain.KindExpense,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(3200), nil).Maybe()
	suite.mockReportingRepo.On("CountPendingTransactions", mock.Anything, companyID).
		Return(int64(7), nil).Maybe()

	metrics, err := suite.service.GetMetrics(ctx, companyID)

	// Fail-soft: the dashboard renders zeros instead of an error page
	suite.Require().NoError(err)
	suite.Require().NotNil(metrics)
	suite.True(metrics.Income.IsZero())
	suite.True(metrics.Expense.IsZero())
	suite.True(metrics.Net.IsZero())
	suite.Equal(int64(0), metrics.PendingCount)
}

func (suite *DashboardServiceTestSuite) TestGetMonthlyEvolution_DropsEmptyMonths() {
	ctx := context.Background()
	companyID := uuid.NewString()

	buckets := []domain.MonthBucket{
		{Month: "2025-01", Income: decimal.NewFromInt(1000), Expense: decimal.NewFromInt(400)},
		{Month: "2025-02", Income: decimal.Zero, Expense: decimal.Zero},
		{Month: "2025-03", Income: decimal.Zero, Expense: decimal.NewFromInt(250)},
	}

	suite.mockReportingRepo.On("GetMonthlyTotals", ctx, companyID,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(buckets, nil).Once()

	result, err := suite.service.GetMonthlyEvolution(ctx, companyID, 6)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("2025-01", result[0].Month)
	suite.Equal("2025-03", result[1].Month)

	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetMonthlyEvolution_WindowStart() {
	ctx := context.Background()
	companyID := uuid.NewString()

	var capturedFrom time.Time
	suite.mockReportingRepo.On("GetMonthlyTotals", ctx, companyID,
		mock.MatchedBy(func(from time.Time) bool {
			capturedFrom = from
			return true
		}), mock.AnythingOfType("time.Time")).
		Return([]domain.MonthBucket{}, nil).Once()

	_, err := suite.service.GetMonthlyEvolution(ctx, companyID, 6)

	suite.Require().NoError(err)
	// The window opens on the first day of a month, 6 months back
	suite.Equal(1, capturedFrom.Day())
	now := time.Now()
	expected := time.Date(now.Year(), now.Month()-6, 1, 0, 0, 0, 0, now.Location())
	suite.Equal(expected.Month(), capturedFrom.Month())
	suite.Equal(expected.Year(), capturedFrom.Year())
}

func (suite *DashboardServiceTestSuite) TestGetMonthlyEvolution_DegradesToEmptyOnFailure() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockReportingRepo.On("GetMonthlyTotals", ctx, companyID,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()

	result, err := suite.service.GetMonthlyEvolution(ctx, companyID, 6)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *DashboardServiceTestSuite) TestGetCategoryDistribution_LabelsUncategorized() {
	ctx := context.Background()
	companyID := uuid.NewString()
	categoryID := uuid.NewString()

	totals := []domain.CategoryTotal{
		{CategoryID: &categoryID, CategoryName: "Alimentação", CategoryColor: "#dc2626", ExpenseTotal: decimal.NewFromInt(300)},
		{CategoryID: nil, ExpenseTotal: decimal.NewFromInt(120)},
	}

	suite.mockReportingRepo.On("GetCategoryTotals", ctx, companyID,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(totals, nil).Once()

	result, err := suite.service.GetCategoryDistribution(ctx, companyID)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Alimentação", result[0].CategoryName)
	suite.Equal(domain.UncategorizedName, result[1].CategoryName)
	suite.Equal(domain.UncategorizedColor, result[1].CategoryColor)

	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetCategoryDistribution_DegradesToEmptyOnFailure() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockReportingRepo.On("GetCategoryTotals", ctx, companyID,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()

	result, err := suite.service.GetCategoryDistribution(ctx, companyID)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *DashboardServiceTestSuite) TestGetRecentTransactions_Success() {
	ctx := context.Background()
	companyID := uuid.NewString()
	expected := []domain.Transaction{
		{TransactionID: uuid.NewString(), Description: "Mais recente"},
		{TransactionID: uuid.NewString(), Description: "Anterior"},
	}

	suite.mockTxnRepo.On("ListRecentTransactions", ctx, companyID, 5).Return(expected, nil).Once()

	result, err := suite.service.GetRecentTransactions(ctx, companyID)

	suite.Require().NoError(err)
	suite.Equal(expected, result)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetRecentTransactions_DegradesToEmptyOnFailure() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockTxnRepo.On("ListRecentTransactions", ctx, companyID, 5).Return(nil, assert.AnError).Once()

	result, err := suite.service.GetRecentTransactions(ctx, companyID)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

// --- Run Test Suite ---

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
