package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack-backend/internal/models"
	"github.com/fintrackhq/fintrack-backend/internal/utils/pagination"
)

// PgxTransactionRepository persists ledger entries. Every mutation bundles
// the row write with the account balance adjustments in one database
// transaction, locking the affected account rows first.
type PgxTransactionRepository struct {
	baseRepository
	accountSupport portsrepo.AccountTransactionSupport
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountSupport portsrepo.AccountTransactionSupport) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		baseRepository: baseRepository{pool: pool},
		accountSupport: accountSupport,
	}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, account_id, description, amount, transaction_type, category, occurred_at, status, notes, installment_number, installment_total, created_at, created_by, last_updated_at, last_updated_by`

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.TransactionID,
		UserID:            d.UserID,
		AccountID:         d.AccountID,
		Description:       d.Description,
		Amount:            d.Amount,
		TransactionType:   models.TransactionType(d.Type),
		Category:          d.Category,
		OccurredAt:        d.OccurredAt,
		Status:            string(d.Status),
		Notes:             d.Notes,
		InstallmentNumber: d.InstallmentNumber,
		InstallmentTotal:  d.InstallmentTotal,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:     m.TransactionID,
		UserID:            m.UserID,
		AccountID:         m.AccountID,
		Description:       m.Description,
		Amount:            m.Amount,
		Type:              domain.TransactionType(m.TransactionType),
		Category:          m.Category,
		OccurredAt:        m.OccurredAt,
		Status:            domain.TransactionStatus(m.Status),
		Notes:             m.Notes,
		InstallmentNumber: m.InstallmentNumber,
		InstallmentTotal:  m.InstallmentTotal,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// scanTransaction reads one transaction row in transactionColumns order.
func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.AccountID,
		&m.Description,
		&m.Amount,
		&m.TransactionType,
		&m.Category,
		&m.OccurredAt,
		&m.Status,
		&m.Notes,
		&m.InstallmentNumber,
		&m.InstallmentTotal,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// balanceChangeAccountIDs lists the accounts a mutation touches.
func balanceChangeAccountIDs(balanceChanges map[string]decimal.Decimal) []string {
	ids := make([]string, 0, len(balanceChanges))
	for id := range balanceChanges {
		ids = append(ids, id)
	}
	return ids
}

// SaveTransaction inserts the row and applies balanceChanges atomically.
// The affected account rows are locked before either write happens.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	m := toModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if _, err := r.accountSupport.FindAccountsByIDsForUpdate(ctx, tx, txn.UserID, balanceChangeAccountIDs(balanceChanges)); err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	if _, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.AccountID,
		m.Description,
		m.Amount,
		m.TransactionType,
		m.Category,
		m.OccurredAt,
		m.Status,
		m.Notes,
		m.InstallmentNumber,
		m.InstallmentTotal,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}

	if err := r.accountSupport.AdjustBalancesInTx(ctx, tx, balanceChanges, m.LastUpdatedBy, m.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction owned by the given user.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves the user's transactions ordered by occurrence
// date then creation time, both descending, using keyset pagination.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`)
	args := []any{userID}

	addFilter := func(clause string, value any) {
		args = append(args, value)
		sb.WriteString(" AND " + clause + "$" + strconv.Itoa(len(args)))
	}

	if filter.AccountID != "" {
		addFilter("account_id = ", filter.AccountID)
	}
	if filter.Type != "" {
		addFilter("transaction_type = ", string(filter.Type))
	}
	if filter.Category != "" {
		addFilter("category = ", filter.Category)
	}
	if filter.Status != "" {
		addFilter("status = ", string(filter.Status))
	}
	if filter.StartDate != nil {
		addFilter("occurred_at >= ", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addFilter("occurred_at <= ", *filter.EndDate)
	}

	if nextToken != nil && *nextToken != "" {
		occurredAt, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, occurredAt, createdAt)
		sb.WriteString(fmt.Sprintf(" AND (occurred_at, created_at) < ($%d, $%d)", len(args)-1, len(args)))
	}

	args = append(args, limit+1)
	sb.WriteString(fmt.Sprintf(" ORDER BY occurred_at DESC, created_at DESC LIMIT $%d;", len(args)))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	// One extra row was fetched to detect whether a next page exists.
	var newNextToken *string
	if len(transactions) > limit {
		transactions = transactions[:limit]
		last := transactions[len(transactions)-1]
		token := pagination.EncodeToken(last.OccurredAt, last.CreatedAt)
		newNextToken = &token
	}

	return transactions, newNextToken, nil
}

// UpdateTransaction persists the transaction's new field values and applies
// balanceChanges atomically. balanceChanges may span two accounts when the
// transaction moved between them.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	m := toModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if _, err := r.accountSupport.FindAccountsByIDsForUpdate(ctx, tx, txn.UserID, balanceChangeAccountIDs(balanceChanges)); err != nil {
		return err
	}

	query := `
		UPDATE transactions
		SET account_id = $3, description = $4, amount = $5, transaction_type = $6,
			category = $7, occurred_at = $8, status = $9, notes = $10,
			installment_number = $11, installment_total = $12,
			last_updated_at = $13, last_updated_by = $14
		WHERE transaction_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.AccountID,
		m.Description,
		m.Amount,
		m.TransactionType,
		m.Category,
		m.OccurredAt,
		m.Status,
		m.Notes,
		m.InstallmentNumber,
		m.InstallmentTotal,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.accountSupport.AdjustBalancesInTx(ctx, tx, balanceChanges, m.LastUpdatedBy, m.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes the row and applies balanceChanges atomically.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string, balanceChanges map[string]decimal.Decimal, updatedBy string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if _, err := r.accountSupport.FindAccountsByIDsForUpdate(ctx, tx, userID, balanceChangeAccountIDs(balanceChanges)); err != nil {
		return err
	}

	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	cmdTag, err := tx.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.accountSupport.AdjustBalancesInTx(ctx, tx, balanceChanges, updatedBy, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
