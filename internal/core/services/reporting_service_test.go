package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/core/services"
)

// MockBudgetRepository is a mock type for the BudgetRepositoryFacade interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, userID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, userID string, filter portsrepo.BudgetFilter) ([]domain.Budget, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsActiveAt(ctx context.Context, userID string, at time.Time) ([]domain.Budget, error) {
	args := m.Called(ctx, userID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, userID string, budgetID string) error {
	args := m.Called(ctx, userID, budgetID)
	return args.Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepositoryFacade interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) PeriodTotals(ctx context.Context, userID string, from, to time.Time) (domain.PeriodTotals, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(domain.PeriodTotals), args.Error(1)
}

func (m *MockReportingRepository) RecentTransactions(ctx context.Context, userID string, from, to time.Time, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo   *MockAccountRepository
	mockGoalRepo      *MockGoalRepository
	mockBudgetRepo    *MockBudgetRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvcFacade

	userID string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(
		suite.mockAccountRepo,
		suite.mockGoalRepo,
		suite.mockBudgetRepo,
		suite.mockReportingRepo,
	)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestGetDashboard_AggregatesEverything() {
	ctx := context.Background()

	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Balance: decimal.NewFromInt(700)},
		{AccountID: uuid.NewString(), Balance: decimal.NewFromInt(-200)}, // Credit card debt
	}
	goals := []domain.Goal{
		{GoalID: uuid.NewString(), Status: domain.GoalInProgress, TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(250)},
		{GoalID: uuid.NewString(), Status: domain.GoalCompleted, TargetAmount: decimal.NewFromInt(500), CurrentAmount: decimal.NewFromInt(500)}, // Excluded from progress
	}
	budgets := []domain.Budget{
		{BudgetID: uuid.NewString(), Limit: decimal.NewFromInt(600), Spent: decimal.NewFromInt(150)},
		{BudgetID: uuid.NewString(), Limit: decimal.NewFromInt(400), Spent: decimal.NewFromInt(410)},
	}
	recent := []domain.Transaction{{TransactionID: uuid.NewString()}}

	monthTotals := domain.PeriodTotals{Income: decimal.NewFromInt(3000), Expense: decimal.NewFromInt(1200)}
	weekTotals := domain.PeriodTotals{Income: decimal.NewFromInt(800), Expense: decimal.NewFromInt(300)}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID, false).Return(accounts, nil).Once()
	// Month-to-date first, trailing week second.
	suite.mockReportingRepo.On("PeriodTotals", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(monthTotals, nil).Once()
	suite.mockReportingRepo.On("PeriodTotals", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(weekTotals, nil).Once()
	suite.mockGoalRepo.On("ListGoals", ctx, suite.userID, domain.GoalStatus("")).Return(goals, nil).Once()
	suite.mockBudgetRepo.On("ListBudgetsActiveAt", ctx, suite.userID, mock.AnythingOfType("time.Time")).Return(budgets, nil).Once()
	suite.mockReportingRepo.On("RecentTransactions", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 10).
		Return(recent, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(dashboard)
	suite.True(dashboard.Summary.TotalBalance.Equal(decimal.NewFromInt(500)))
	suite.True(dashboard.Summary.TotalIncome.Equal(decimal.NewFromInt(3000)))
	suite.True(dashboard.Summary.TotalExpense.Equal(decimal.NewFromInt(1200)))
	suite.True(dashboard.Summary.RevenueLastWeek.Equal(decimal.NewFromInt(800)))
	suite.True(dashboard.Summary.ExpenseLastWeek.Equal(decimal.NewFromInt(300)))
	// Completed goal excluded: 250 / 1000 = 25%.
	suite.True(dashboard.Summary.GoalTarget.Equal(decimal.NewFromInt(1000)))
	suite.True(dashboard.Summary.GoalCurrent.Equal(decimal.NewFromInt(250)))
	suite.Equal(25, dashboard.Summary.SavingsProgress)
	suite.True(dashboard.Summary.TotalBudgetLimit.Equal(decimal.NewFromInt(1000)))
	suite.True(dashboard.Summary.TotalBudgetSpent.Equal(decimal.NewFromInt(560)))
	suite.Len(dashboard.Transactions, 1)
	suite.Len(dashboard.Accounts, 2)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_SavingsProgressClampedAt100() {
	ctx := context.Background()

	goals := []domain.Goal{
		{GoalID: uuid.NewString(), Status: domain.GoalInProgress, TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(250)},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID, false).Return([]domain.Account{}, nil).Once()
	suite.mockReportingRepo.On("PeriodTotals", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(domain.PeriodTotals{Income: decimal.Zero, Expense: decimal.Zero}, nil).Twice()
	suite.mockGoalRepo.On("ListGoals", ctx, suite.userID, domain.GoalStatus("")).Return(goals, nil).Once()
	suite.mockBudgetRepo.On("ListBudgetsActiveAt", ctx, suite.userID, mock.AnythingOfType("time.Time")).Return([]domain.Budget{}, nil).Once()
	suite.mockReportingRepo.On("RecentTransactions", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 10).
		Return([]domain.Transaction{}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(100, dashboard.Summary.SavingsProgress)
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_RecentTransactionsScopedToCurrentMonth() {
	ctx := context.Background()
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID, false).Return([]domain.Account{}, nil).Once()
	suite.mockReportingRepo.On("PeriodTotals", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(domain.PeriodTotals{Income: decimal.Zero, Expense: decimal.Zero}, nil).Twice()
	suite.mockGoalRepo.On("ListGoals", ctx, suite.userID, domain.GoalStatus("")).Return([]domain.Goal{}, nil).Once()
	suite.mockBudgetRepo.On("ListBudgetsActiveAt", ctx, suite.userID, mock.AnythingOfType("time.Time")).Return([]domain.Budget{}, nil).Once()
	// The recent list starts at the first of the month, not a trailing window.
	suite.mockReportingRepo.On("RecentTransactions", ctx, suite.userID,
		mock.MatchedBy(func(from time.Time) bool { return from.Equal(monthStart) }),
		mock.AnythingOfType("time.Time"), 10).
		Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.GetDashboard(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_NoGoalsMeansZeroProgress() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID, false).Return([]domain.Account{}, nil).Once()
	suite.mockReportingRepo.On("PeriodTotals", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(domain.PeriodTotals{Income: decimal.Zero, Expense: decimal.Zero}, nil).Twice()
	suite.mockGoalRepo.On("ListGoals", ctx, suite.userID, domain.GoalStatus("")).Return([]domain.Goal{}, nil).Once()
	suite.mockBudgetRepo.On("ListBudgetsActiveAt", ctx, suite.userID, mock.AnythingOfType("time.Time")).Return([]domain.Budget{}, nil).Once()
	suite.mockReportingRepo.On("RecentTransactions", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 10).
		Return([]domain.Transaction{}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, dashboard.Summary.SavingsProgress)
	suite.True(dashboard.Summary.GoalTarget.IsZero())
}

// --- Run Test Suite ---

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
