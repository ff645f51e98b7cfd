package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
)

// goalService provides CRUD for savings goals.
type goalService struct {
	goalRepo portsrepo.GoalRepositoryFacade
}

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// CreateGoal persists a new goal in IN_PROGRESS state.
func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}
	current := decimal.Zero
	if req.CurrentAmount != nil {
		current = *req.CurrentAmount
	}
	if current.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: current amount cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: current,
		Deadline:      req.Deadline,
		Status:        domain.GoalInProgress,
		Icon:          req.Icon,
		Color:         req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		logger.Error("Failed to save goal", "error", err)
		return nil, err
	}

	logger.Info("Goal created", "goal_id", goal.GoalID)
	return &goal, nil
}

// GetGoalByID retrieves a goal owned by the user.
func (s *goalService) GetGoalByID(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	return s.goalRepo.FindGoalByID(ctx, userID, goalID)
}

// ListGoals retrieves the user's goals, optionally filtered by status.
func (s *goalService) ListGoals(ctx context.Context, userID string, status string) ([]domain.Goal, error) {
	return s.goalRepo.ListGoals(ctx, userID, domain.GoalStatus(status))
}

// UpdateGoal applies a partial update. Reaching the target does not flip the
// status automatically; completion is an explicit user action.
func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	goal, err := s.goalRepo.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	if req.Icon != nil {
		goal.Icon = *req.Icon
	}
	if req.Color != nil {
		goal.Color = *req.Color
	}

	if goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}
	if goal.CurrentAmount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: current amount cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	goal.LastUpdatedAt = now
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		logger.Error("Failed to update goal", "error", err, "goal_id", goalID)
		return nil, err
	}

	return goal, nil
}

// DeleteGoal removes a goal.
func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.goalRepo.DeleteGoal(ctx, userID, goalID); err != nil {
		logger.Error("Failed to delete goal", "error", err, "goal_id", goalID)
		return err
	}

	logger.Info("Goal deleted", "goal_id", goalID)
	return nil
}
