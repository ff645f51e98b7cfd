package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack-backend/internal/models"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, user_id, name, account_type, balance, color, icon, credit_limit, closing_day, due_day, is_archived, created_at, created_by, last_updated_at, last_updated_by`

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		UserID:      d.UserID,
		Name:        d.Name,
		AccountType: models.AccountType(d.Type),
		Balance:     d.Balance,
		Color:       d.Color,
		Icon:        d.Icon,
		CreditLimit: d.CreditLimit,
		ClosingDay:  d.ClosingDay,
		DueDay:      d.DueDay,
		IsArchived:  d.IsArchived,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		UserID:      m.UserID,
		Name:        m.Name,
		Type:        domain.AccountType(m.AccountType),
		Balance:     m.Balance,
		Color:       m.Color,
		Icon:        m.Icon,
		CreditLimit: m.CreditLimit,
		ClosingDay:  m.ClosingDay,
		DueDay:      m.DueDay,
		IsArchived:  m.IsArchived,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// scanAccount reads one account row in accountColumns order.
func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.Name,
		&m.AccountType,
		&m.Balance,
		&m.Color,
		&m.Icon,
		&m.CreditLimit,
		&m.ClosingDay,
		&m.DueDay,
		&m.IsArchived,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Name,
		m.AccountType,
		m.Balance,
		m.Color,
		m.Icon,
		m.CreditLimit,
		m.ClosingDay,
		m.DueDay,
		m.IsArchived,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account owned by the given user. An account
// owned by someone else is indistinguishable from a missing one.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1 AND user_id = $2;
	`
	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	acc := toDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves the user's accounts, newest first.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, userID string, includeArchived bool) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1 AND ($2 OR is_archived = FALSE)
		ORDER BY created_at DESC, account_id;
	`
	rows, err := r.pool.Query(ctx, query, userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccount updates an account's descriptive fields and archive flag.
// The balance column is deliberately not part of this statement.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $3, account_type = $4, color = $5, icon = $6, credit_limit = $7,
			closing_day = $8, due_day = $9, is_archived = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE account_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Name,
		m.AccountType,
		m.Color,
		m.Icon,
		m.CreditLimit,
		m.ClosingDay,
		m.DueDay,
		m.IsArchived,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ArchiveAccount soft-disables an account. History is untouched.
func (r *PgxAccountRepository) ArchiveAccount(ctx context.Context, userID string, accountID string, updatedBy string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_archived = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1 AND user_id = $2 AND is_archived = FALSE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, accountID, userID, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to execute archive account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Distinguish "missing" from "already archived".
		_, findErr := r.FindAccountByID(ctx, userID, accountID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check account status after archive attempt for %s: %w", accountID, findErr)
		}
		return fmt.Errorf("%w: account %s is already archived", apperrors.ErrValidation, accountID)
	}
	return nil
}

// AdjustBalance applies a signed delta with a server-side increment so
// concurrent adjustments never lose updates, and returns the refreshed row.
func (r *PgxAccountRepository) AdjustBalance(ctx context.Context, userID string, accountID string, delta decimal.Decimal, updatedBy string, now time.Time) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1 AND user_id = $2
		RETURNING ` + accountColumns + `;
	`
	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID, userID, delta, now, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to adjust balance for account %s: %w", accountID, err)
	}

	acc := toDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDsForUpdate retrieves the user's accounts by IDs and locks
// the rows for update. Must be called within a transaction. Any account that
// is missing or not owned by the user fails the whole lookup.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, userID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1 AND account_id = ANY($2)
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, userID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs for update: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.Account)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		accountsMap[m.AccountID] = toDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", err)
	}

	if len(accountsMap) != len(uniqueStrings(accountIDs)) {
		missing := []string{}
		for _, id := range accountIDs {
			if _, found := accountsMap[id]; !found {
				missing = append(missing, id)
			}
		}
		return nil, fmt.Errorf("%w: could not find or lock all requested accounts, missing: %v", apperrors.ErrNotFound, missing)
	}

	return accountsMap, nil
}

// AdjustBalancesInTx applies signed deltas to multiple accounts within the
// given transaction, using server-side increments.
func (r *PgxAccountRepository) AdjustBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, updatedBy string, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`

	batch := &pgx.Batch{}
	accountIDs := make([]string, 0, len(balanceChanges))
	for accountID, delta := range balanceChanges {
		if delta.IsZero() {
			continue
		}
		batch.Queue(query, accountID, delta, now, updatedBy)
		accountIDs = append(accountIDs, accountID)
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for account %s: %w", accountIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, accountIDs[i])
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}
	return batchErr
}

// uniqueStrings deduplicates while preserving order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
