package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account for display and sign conventions.
// It never changes reconciliation arithmetic.
type AccountType string

const (
	Checking   AccountType = "CHECKING"
	Savings    AccountType = "SAVINGS"
	Cash       AccountType = "CASH"
	Credit     AccountType = "CREDIT"
	Investment AccountType = "INVESTMENT"
)

// Account represents a financial account owned by a single user.
//
// Balance is cached state: it must always equal the sum of signed
// contributions of the account's live transactions (+amount for INCOME,
// -amount for EXPENSE). Only the transaction service and the explicit
// adjust-balance operation may write it.
type Account struct {
	AccountID string          `json:"accountID"`
	UserID    string          `json:"userID"`
	Name      string          `json:"name"`
	Type      AccountType     `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Color     string          `json:"color"`
	Icon      string          `json:"icon"`

	// Credit card fields, meaningful only when Type == Credit.
	CreditLimit *decimal.Decimal `json:"creditLimit,omitempty"`
	ClosingDay  *int             `json:"closingDay,omitempty"`
	DueDay      *int             `json:"dueDay,omitempty"`

	IsArchived bool `json:"isArchived"`
	AuditFields
}
