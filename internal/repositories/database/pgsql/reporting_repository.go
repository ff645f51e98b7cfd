package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a new repository for dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// PeriodTotals sums income and expense amounts for the user's transactions
// dated within [from, to]. The sums are computed server-side with filtered
// aggregates so one round trip covers both.
func (r *PgxReportingRepository) PeriodTotals(ctx context.Context, userID string, from, to time.Time) (domain.PeriodTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'INCOME'), 0) AS income,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'EXPENSE'), 0) AS expense
		FROM transactions
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at <= $3;
	`
	var totals domain.PeriodTotals
	err := r.pool.QueryRow(ctx, query, userID, from, to).Scan(&totals.Income, &totals.Expense)
	if err != nil {
		return domain.PeriodTotals{}, fmt.Errorf("failed to compute period totals for user %s: %w", userID, err)
	}
	return totals, nil
}

// RecentTransactions retrieves the user's most recent transactions dated
// within [from, to], date descending.
func (r *PgxReportingRepository) RecentTransactions(ctx context.Context, userID string, from, to time.Time, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at <= $3
		ORDER BY occurred_at DESC, created_at DESC
		LIMIT $4;
	`
	rows, err := r.pool.Query(ctx, query, userID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent transaction row: %w", err)
		}
		transactions = append(transactions, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent transaction rows: %w", err)
	}
	return transactions, nil
}
