package models

import "github.com/shopspring/decimal"

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

// Account is the DB representation of a financial account.
type Account struct {
	AccountID   string           `db:"account_id"`
	UserID      string           `db:"user_id"`
	Name        string           `db:"name"`
	AccountType AccountType      `db:"account_type"`
	Balance     decimal.Decimal  `db:"balance"`
	Color       string           `db:"color"`
	Icon        string           `db:"icon"`
	CreditLimit *decimal.Decimal `db:"credit_limit"` // Nullable, credit accounts only
	ClosingDay  *int             `db:"closing_day"`  // Nullable
	DueDay      *int             `db:"due_day"`      // Nullable
	IsArchived  bool             `db:"is_archived"`
	AuditFields
}
