package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/core/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
)

// MockGoalRepository is a mock type for the GoalRepositoryFacade interface
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, userID, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, userID string, status domain.GoalStatus) ([]domain.Goal, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	args := m.Called(ctx, userID, goalID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type GoalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockGoalRepository
	service  portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockGoalRepository)
	suite.service = services.NewGoalService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *GoalServiceTestSuite) TestCreateGoal_StartsInProgress() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateGoalRequest{
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(10000),
	}

	suite.mockRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.Status == domain.GoalInProgress && g.CurrentAmount.IsZero()
	})).Return(nil).Once()

	goal, err := suite.service.CreateGoal(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.GoalInProgress, goal.Status)
	suite.True(goal.CurrentAmount.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_RejectsNonPositiveTarget() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Name:         "Broken",
		TargetAmount: decimal.Zero,
	}

	goal, err := suite.service.CreateGoal(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveGoal", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestCreateGoal_RejectsNegativeCurrent() {
	ctx := context.Background()
	negative := decimal.NewFromInt(-1)
	req := dto.CreateGoalRequest{
		Name:          "Broken",
		TargetAmount:  decimal.NewFromInt(100),
		CurrentAmount: &negative,
	}

	goal, err := suite.service.CreateGoal(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_ReachingTargetDoesNotComplete() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          "Vacation",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(1500),
		Status:        domain.GoalInProgress,
	}

	atTarget := decimal.NewFromInt(2000)
	req := dto.UpdateGoalRequest{CurrentAmount: &atTarget}

	suite.mockRepo.On("FindGoalByID", ctx, userID, existing.GoalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		// Completion is an explicit user action, never automatic.
		return g.Status == domain.GoalInProgress && g.CurrentAmount.Equal(atTarget)
	})).Return(nil).Once()

	goal, err := suite.service.UpdateGoal(ctx, userID, existing.GoalID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.GoalInProgress, goal.Status)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_ExplicitCompletion() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          "Vacation",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(2000),
		Status:        domain.GoalInProgress,
	}

	completed := domain.GoalCompleted
	req := dto.UpdateGoalRequest{Status: &completed}

	suite.mockRepo.On("FindGoalByID", ctx, userID, existing.GoalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.Status == domain.GoalCompleted
	})).Return(nil).Once()

	goal, err := suite.service.UpdateGoal(ctx, userID, existing.GoalID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.GoalCompleted, goal.Status)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	missingID := uuid.NewString()
	newName := "Doesn't matter"
	req := dto.UpdateGoalRequest{Name: &newName}

	suite.mockRepo.On("FindGoalByID", ctx, userID, missingID).Return(nil, apperrors.ErrNotFound).Once()

	goal, err := suite.service.UpdateGoal(ctx, userID, missingID, req)

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GoalServiceTestSuite) TestListGoals_StatusFilterPassedThrough() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.Goal{{GoalID: uuid.NewString(), Status: domain.GoalCompleted}}

	suite.mockRepo.On("ListGoals", ctx, userID, domain.GoalCompleted).Return(expected, nil).Once()

	goals, err := suite.service.ListGoals(ctx, userID, string(domain.GoalCompleted))

	suite.Require().NoError(err)
	suite.Equal(expected, goals)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestGoalService(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
