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

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack-backend/internal/models"
)

type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{pool: pool}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, user_id, account_id, category, limit_amount, spent_amount, period, alert_threshold, start_date, end_date, created_at, created_by, last_updated_at, last_updated_by`

func toModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:       d.BudgetID,
		UserID:         d.UserID,
		AccountID:      d.AccountID,
		Category:       d.Category,
		LimitAmount:    d.Limit,
		SpentAmount:    d.Spent,
		Period:         string(d.Period),
		AlertThreshold: d.AlertThreshold,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:       m.BudgetID,
		UserID:         m.UserID,
		AccountID:      m.AccountID,
		Category:       m.Category,
		Limit:          m.LimitAmount,
		Spent:          m.SpentAmount,
		Period:         domain.BudgetPeriod(m.Period),
		AlertThreshold: m.AlertThreshold,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// scanBudget reads one budget row in budgetColumns order. account_id is
// nullable in the schema and maps to "" in the model.
func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	var accountID *string
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&accountID,
		&m.Category,
		&m.LimitAmount,
		&m.SpentAmount,
		&m.Period,
		&m.AlertThreshold,
		&m.StartDate,
		&m.EndDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if accountID != nil {
		m.AccountID = *accountID
	}
	return m, err
}

// nullableAccountID maps the model's "" sentinel to SQL NULL.
func nullableAccountID(accountID string) *string {
	if accountID == "" {
		return nil
	}
	return &accountID
}

// SaveBudget persists a new budget.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		nullableAccountID(m.AccountID),
		m.Category,
		m.LimitAmount,
		m.SpentAmount,
		m.Period,
		m.AlertThreshold,
		m.StartDate,
		m.EndDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget with ID %s already exists", apperrors.ErrDuplicate, m.BudgetID)
		}
		return fmt.Errorf("failed to save budget %s: %w", m.BudgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves a budget owned by the given user.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE budget_id = $1 AND user_id = $2;
	`
	m, err := scanBudget(r.pool.QueryRow(ctx, query, budgetID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}

	b := toDomainBudget(m)
	return &b, nil
}

// ListBudgets retrieves the user's budgets, newest window first.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, userID string, filter portsrepo.BudgetFilter) ([]domain.Budget, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1`)
	args := []any{userID}

	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		sb.WriteString(" AND account_id = $" + strconv.Itoa(len(args)))
	}
	if filter.Period != "" {
		args = append(args, string(filter.Period))
		sb.WriteString(" AND period = $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY start_date DESC, budget_id;")

	return r.queryBudgets(ctx, sb.String(), args...)
}

// ListBudgetsActiveAt retrieves budgets whose window contains the given instant.
func (r *PgxBudgetRepository) ListBudgetsActiveAt(ctx context.Context, userID string, at time.Time) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND start_date <= $2 AND end_date >= $2
		ORDER BY start_date DESC, budget_id;
	`
	return r.queryBudgets(ctx, query, userID, at)
}

func (r *PgxBudgetRepository) queryBudgets(ctx context.Context, query string, args ...any) ([]domain.Budget, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, toDomainBudget(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}
	return budgets, nil
}

// UpdateBudget persists the budget's new field values.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)

	query := `
		UPDATE budgets
		SET account_id = $3, category = $4, limit_amount = $5, spent_amount = $6,
			period = $7, alert_threshold = $8, start_date = $9, end_date = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE budget_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		nullableAccountID(m.AccountID),
		m.Category,
		m.LimitAmount,
		m.SpentAmount,
		m.Period,
		m.AlertThreshold,
		m.StartDate,
		m.EndDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %s: %w", m.BudgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes a budget.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID string, budgetID string) error {
	query := `DELETE FROM budgets WHERE budget_id = $1 AND user_id = $2;`
	cmdTag, err := r.pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
