package repositories

import (
	"context"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
)

// GoalRepositoryFacade defines persistence operations for savings goals,
// scoped to the owning user.
type GoalRepositoryFacade interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error
	FindGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error)
	// ListGoals retrieves the user's goals, newest first, optionally filtered by status.
	ListGoals(ctx context.Context, userID string, status domain.GoalStatus) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, userID string, goalID string) error
}
