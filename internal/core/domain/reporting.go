package domain

import "github.com/shopspring/decimal"

// PeriodTotals holds income/expense sums for a date range.
type PeriodTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DashboardSummary is the aggregate view backing the dashboard screen.
type DashboardSummary struct {
	TotalBalance     decimal.Decimal
	TotalIncome      decimal.Decimal // Month to date
	TotalExpense     decimal.Decimal // Month to date
	RevenueLastWeek  decimal.Decimal
	ExpenseLastWeek  decimal.Decimal
	GoalTarget       decimal.Decimal
	GoalCurrent      decimal.Decimal
	SavingsProgress  int // Percent, 0 when no goal target
	TotalBudgetLimit decimal.Decimal
	TotalBudgetSpent decimal.Decimal
}

// Dashboard bundles the summary with the collections the screen renders.
type Dashboard struct {
	Summary      DashboardSummary
	Transactions []Transaction
	Accounts     []Account
	Goals        []Goal
	Budgets      []Budget
}
