package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

// Transaction is the DB representation of a ledger entry.
// Amount is a positive magnitude; the sign is carried by TransactionType.
type Transaction struct {
	TransactionID     string          `db:"transaction_id"`
	UserID            string          `db:"user_id"`
	AccountID         string          `db:"account_id"`
	Description       string          `db:"description"`
	Amount            decimal.Decimal `db:"amount"`
	TransactionType   TransactionType `db:"transaction_type"`
	Category          string          `db:"category"`
	OccurredAt        time.Time       `db:"occurred_at"`
	Status            string          `db:"status"`
	Notes             string          `db:"notes"`
	InstallmentNumber *int            `db:"installment_number"` // Nullable
	InstallmentTotal  *int            `db:"installment_total"`  // Nullable
	AuditFields
}
