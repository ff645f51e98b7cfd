package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data. All lookups are
// scoped to the owning user; an account owned by someone else behaves as
// if it did not exist.
type AccountReader interface {
	// FindAccountByID retrieves an account owned by userID.
	FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the user's accounts, newest first.
	// Archived accounts are included only when includeArchived is set.
	ListAccounts(ctx context.Context, userID string, includeArchived bool) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an account's descriptive fields and archive flag.
	// It never touches the balance column.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// ArchiveAccount soft-disables an account.
	ArchiveAccount(ctx context.Context, userID string, accountID string, updatedBy string, now time.Time) error

	// AdjustBalance applies a signed delta to the account balance using a
	// server-side increment, and returns the account after the change.
	AdjustBalance(ctx context.Context, userID string, accountID string, delta decimal.Decimal, updatedBy string, now time.Time) (*domain.Account, error)
}

// AccountTransactionSupport defines operations used by the transaction
// repository while reconciling balances inside a database transaction.
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects the user's accounts and locks the rows for update.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, userID string, accountIDs []string) (map[string]domain.Account, error)

	// AdjustBalancesInTx applies signed deltas to multiple accounts within the given transaction.
	AdjustBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, updatedBy string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
