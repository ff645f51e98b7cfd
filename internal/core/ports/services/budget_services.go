package services

import (
	"context"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
)

// BudgetSvcFacade defines operations on spending budgets.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, *domain.Account, error)
	GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, *domain.Account, error)
	ListBudgets(ctx context.Context, userID string, params dto.ListBudgetsParams) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, *domain.Account, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
