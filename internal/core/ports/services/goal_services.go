package services

import (
	"context"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
)

// GoalSvcFacade defines operations on savings goals.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)
	GetGoalByID(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string, status string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
}
