package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is the DB representation of a savings goal.
type Goal struct {
	GoalID        string          `db:"goal_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Deadline      *time.Time      `db:"deadline"` // Nullable
	Status        string          `db:"status"`
	Icon          string          `db:"icon"`
	Color         string          `db:"color"`
	AuditFields
}
