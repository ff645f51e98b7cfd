package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence label of a budget window.
type BudgetPeriod string

const (
	Weekly  BudgetPeriod = "WEEKLY"
	Monthly BudgetPeriod = "MONTHLY"
	Yearly  BudgetPeriod = "YEARLY"
)

// Budget is a spending cap for a category within a date window.
// Spent is stored state updated through the budget API, not derived.
type Budget struct {
	BudgetID       string          `json:"budgetID"`
	UserID         string          `json:"userID"`
	AccountID      string          `json:"accountID,omitempty"` // Optional scope to one account
	Category       string          `json:"category"`
	Limit          decimal.Decimal `json:"limit"`
	Spent          decimal.Decimal `json:"spent"`
	Period         BudgetPeriod    `json:"period"`
	AlertThreshold int             `json:"alertThreshold"` // Percent of limit that triggers a warning in the UI
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	AuditFields
}
