package dto

import (
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse mirrors domain.DashboardSummary on the wire.
type DashboardSummaryResponse struct {
	TotalBalance     decimal.Decimal `json:"totalBalance"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	Goal             decimal.Decimal `json:"goal"`
	SavingsProgress  int             `json:"savingsProgress"`
	RevenueLastWeek  decimal.Decimal `json:"revenueLastWeek"`
	ExpenseLastWeek  decimal.Decimal `json:"expenseLastWeek"`
	TotalBudgetLimit decimal.Decimal `json:"totalBudgetLimit"`
	TotalBudgetSpent decimal.Decimal `json:"totalBudgetSpent"`
}

// DashboardResponse is the aggregate payload for the dashboard screen.
type DashboardResponse struct {
	Summary      DashboardSummaryResponse `json:"summary"`
	Transactions []TransactionResponse    `json:"transactions"`
	Accounts     []AccountResponse        `json:"accounts"`
	Goals        []GoalResponse           `json:"goals"`
	Budgets      []BudgetResponse         `json:"budgets"`
}

// ToDashboardResponse converts a domain.Dashboard.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Summary: DashboardSummaryResponse{
			TotalBalance:     d.Summary.TotalBalance,
			TotalIncome:      d.Summary.TotalIncome,
			TotalExpense:     d.Summary.TotalExpense,
			Goal:             d.Summary.GoalTarget,
			SavingsProgress:  d.Summary.SavingsProgress,
			RevenueLastWeek:  d.Summary.RevenueLastWeek,
			ExpenseLastWeek:  d.Summary.ExpenseLastWeek,
			TotalBudgetLimit: d.Summary.TotalBudgetLimit,
			TotalBudgetSpent: d.Summary.TotalBudgetSpent,
		},
		Transactions: ToTransactionResponses(d.Transactions),
		Accounts:     ToAccountResponses(d.Accounts),
		Goals:        ToGoalResponses(d.Goals),
		Budgets:      ToBudgetResponses(d.Budgets),
	}
}
