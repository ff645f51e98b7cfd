package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows transaction listings. Zero values mean "no filter".
type TransactionFilter struct {
	AccountID string
	Type      domain.TransactionType
	Category  string
	Status    domain.TransactionStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionReader defines read operations for transaction data,
// scoped to the owning user.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction owned by userID.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the user's transactions, date descending,
	// with token pagination.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data.
//
// Each mutation takes a balanceChanges map of signed deltas per account.
// The row write and every balance adjustment commit as one database
// transaction: either all of them become visible or none do.
type TransactionWriter interface {
	// SaveTransaction inserts the transaction and applies balanceChanges atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	// UpdateTransaction persists the transaction's new field values and
	// applies balanceChanges atomically. balanceChanges may span two
	// accounts when the transaction moved between them.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	// DeleteTransaction removes the row and applies balanceChanges atomically.
	DeleteTransaction(ctx context.Context, userID string, transactionID string, balanceChanges map[string]decimal.Decimal, updatedBy string, now time.Time) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction management.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
