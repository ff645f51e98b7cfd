package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack-backend/internal/models"
)

type PgxGoalRepository struct {
	pool *pgxpool.Pool
}

// newPgxGoalRepository creates a new repository for goal data.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{pool: pool}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

const goalColumns = `goal_id, user_id, name, description, target_amount, current_amount, deadline, status, icon, color, created_at, created_by, last_updated_at, last_updated_by`

func toModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:        d.GoalID,
		UserID:        d.UserID,
		Name:          d.Name,
		Description:   d.Description,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		Deadline:      d.Deadline,
		Status:        string(d.Status),
		Icon:          d.Icon,
		Color:         d.Color,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:        m.GoalID,
		UserID:        m.UserID,
		Name:          m.Name,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline,
		Status:        domain.GoalStatus(m.Status),
		Icon:          m.Icon,
		Color:         m.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// scanGoal reads one goal row in goalColumns order.
func scanGoal(row pgx.Row) (models.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.GoalID,
		&m.UserID,
		&m.Name,
		&m.Description,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.Deadline,
		&m.Status,
		&m.Icon,
		&m.Color,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveGoal persists a new goal.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := toModelGoal(goal)

	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.GoalID,
		m.UserID,
		m.Name,
		m.Description,
		m.TargetAmount,
		m.CurrentAmount,
		m.Deadline,
		m.Status,
		m.Icon,
		m.Color,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: goal with ID %s already exists", apperrors.ErrDuplicate, m.GoalID)
		}
		return fmt.Errorf("failed to save goal %s: %w", m.GoalID, err)
	}
	return nil
}

// FindGoalByID retrieves a goal owned by the given user.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE goal_id = $1 AND user_id = $2;
	`
	m, err := scanGoal(r.pool.QueryRow(ctx, query, goalID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}

	g := toDomainGoal(m)
	return &g, nil
}

// ListGoals retrieves the user's goals, newest first, optionally filtered by status.
func (r *PgxGoalRepository) ListGoals(ctx context.Context, userID string, status domain.GoalStatus) ([]domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC, goal_id;
	`
	rows, err := r.pool.Query(ctx, query, userID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query goals for user %s: %w", userID, err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, toDomainGoal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", err)
	}
	return goals, nil
}

// UpdateGoal persists the goal's new field values.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := toModelGoal(goal)

	query := `
		UPDATE goals
		SET name = $3, description = $4, target_amount = $5, current_amount = $6,
			deadline = $7, status = $8, icon = $9, color = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE goal_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.GoalID,
		m.UserID,
		m.Name,
		m.Description,
		m.TargetAmount,
		m.CurrentAmount,
		m.Deadline,
		m.Status,
		m.Icon,
		m.Color,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", m.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGoal removes a goal.
func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	query := `DELETE FROM goals WHERE goal_id = $1 AND user_id = $2;`
	cmdTag, err := r.pool.Exec(ctx, query, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
