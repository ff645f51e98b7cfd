package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus tracks the lifecycle of a savings goal.
type GoalStatus string

const (
	GoalInProgress GoalStatus = "IN_PROGRESS"
	GoalCompleted  GoalStatus = "COMPLETED"
	GoalCancelled  GoalStatus = "CANCELLED"
)

// Goal is a savings target with manually tracked progress.
type Goal struct {
	GoalID        string          `json:"goalID"`
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Status        GoalStatus      `json:"status"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
	AuditFields
}
