package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
)

// BudgetFilter narrows budget listings. Zero values mean "no filter".
type BudgetFilter struct {
	AccountID string
	Period    domain.BudgetPeriod
}

// BudgetRepositoryFacade defines persistence operations for budgets,
// scoped to the owning user.
type BudgetRepositoryFacade interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string, filter BudgetFilter) ([]domain.Budget, error)
	// ListBudgetsActiveAt retrieves budgets whose window contains the given instant.
	ListBudgetsActiveAt(ctx context.Context, userID string, at time.Time) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	DeleteBudget(ctx context.Context, userID string, budgetID string) error
}
