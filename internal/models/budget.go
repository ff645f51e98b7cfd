package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the DB representation of a category spending cap.
type Budget struct {
	BudgetID       string          `db:"budget_id"`
	UserID         string          `db:"user_id"`
	AccountID      string          `db:"account_id"` // Empty when not scoped to an account
	Category       string          `db:"category"`
	LimitAmount    decimal.Decimal `db:"limit_amount"`
	SpentAmount    decimal.Decimal `db:"spent_amount"`
	Period         string          `db:"period"`
	AlertThreshold int             `db:"alert_threshold"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        time.Time       `db:"end_date"`
	AuditFields
}
