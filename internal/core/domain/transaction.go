package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType carries the sign of a transaction's contribution to the
// owning account balance. Amount itself is always a positive magnitude.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
	// Transfer is declared in the type vocabulary for forward compatibility
	// but is rejected by every mutating operation: no reconciliation rule
	// exists for it.
	Transfer TransactionType = "TRANSFER"
)

// TransactionStatus is descriptive only; it never affects balance math.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// Transaction represents a single income or expense entry against one account.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	UserID        string            `json:"userID"`
	AccountID     string            `json:"accountID"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"` // Positive magnitude; sign lives in Type
	Type          TransactionType   `json:"type"`
	Category      string            `json:"category"`
	OccurredAt    time.Time         `json:"date"` // Attribution date, independent of creation time
	Status        TransactionStatus `json:"status"`
	Notes         string            `json:"notes,omitempty"`

	// Optional installment metadata, descriptive only.
	InstallmentNumber *int `json:"installmentNumber,omitempty"`
	InstallmentTotal  *int `json:"installmentTotal,omitempty"`

	AuditFields
}
