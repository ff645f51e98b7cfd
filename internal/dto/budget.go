package dto

import (
	"time"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a spending cap.
type CreateBudgetRequest struct {
	AccountID      *string             `json:"accountId"`
	Category       string              `json:"category" binding:"required,min=1"`
	Limit          decimal.Decimal     `json:"limit" binding:"required"`
	Period         domain.BudgetPeriod `json:"period" binding:"omitempty,oneof=WEEKLY MONTHLY YEARLY"`
	AlertThreshold *int                `json:"alertThreshold" binding:"omitempty,min=1,max=100"`
	StartDate      time.Time           `json:"startDate" binding:"required"`
	EndDate        time.Time           `json:"endDate" binding:"required"`
}

// UpdateBudgetRequest defines a partial budget update. Spent is writable:
// it is stored state, not derived from transactions.
type UpdateBudgetRequest struct {
	AccountID      *string              `json:"accountId"`
	Category       *string              `json:"category" binding:"omitempty,min=1"`
	Limit          *decimal.Decimal     `json:"limit"`
	Spent          *decimal.Decimal     `json:"spent"`
	Period         *domain.BudgetPeriod `json:"period" binding:"omitempty,oneof=WEEKLY MONTHLY YEARLY"`
	AlertThreshold *int                 `json:"alertThreshold" binding:"omitempty,min=1,max=100"`
	StartDate      *time.Time           `json:"startDate"`
	EndDate        *time.Time           `json:"endDate"`
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	AccountID string `form:"accountId"`
	Period    string `form:"period" binding:"omitempty,oneof=WEEKLY MONTHLY YEARLY"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID       string              `json:"budgetID"`
	AccountID      string              `json:"accountID,omitempty"`
	Category       string              `json:"category"`
	Limit          decimal.Decimal     `json:"limit"`
	Spent          decimal.Decimal     `json:"spent"`
	Period         domain.BudgetPeriod `json:"period"`
	AlertThreshold int                 `json:"alertThreshold"`
	StartDate      time.Time           `json:"startDate"`
	EndDate        time.Time           `json:"endDate"`
	Account        *AccountSummary     `json:"account,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// ListBudgetsResponse wraps the list of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain.Budget, optionally embedding its account summary.
func ToBudgetResponse(b *domain.Budget, account *domain.Account) BudgetResponse {
	return BudgetResponse{
		BudgetID:       b.BudgetID,
		AccountID:      b.AccountID,
		Category:       b.Category,
		Limit:          b.Limit,
		Spent:          b.Spent,
		Period:         b.Period,
		AlertThreshold: b.AlertThreshold,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		Account:        ToAccountSummary(account),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.LastUpdatedAt,
	}
}

// ToBudgetResponses converts a slice of domain budgets without account embeddings.
func ToBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i], nil)
	}
	return res
}
