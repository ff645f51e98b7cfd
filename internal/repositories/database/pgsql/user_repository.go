package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack-backend/internal/models"
)

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{pool: pool}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, name, email, password_hash, auth_provider, provider_user_id, email_verified, refresh_token_hash, is_deleted, created_at, created_by, last_updated_at, last_updated_by`

func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:           d.UserID,
		Name:             d.Name,
		Email:            d.Email,
		PasswordHash:     d.PasswordHash,
		AuthProvider:     string(d.AuthProvider),
		ProviderUserID:   d.ProviderUserID,
		EmailVerified:    d.EmailVerified,
		RefreshTokenHash: d.RefreshTokenHash,
		IsDeleted:        d.IsDeleted,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:           m.UserID,
		Name:             m.Name,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		AuthProvider:     domain.AuthProvider(m.AuthProvider),
		ProviderUserID:   m.ProviderUserID,
		EmailVerified:    m.EmailVerified,
		RefreshTokenHash: m.RefreshTokenHash,
		IsDeleted:        m.IsDeleted,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// scanUser reads one user row in userColumns order.
func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.EmailVerified,
		&m.RefreshTokenHash,
		&m.IsDeleted,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveUser persists a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.AuthProvider,
		m.ProviderUserID,
		m.EmailVerified,
		m.RefreshTokenHash,
		m.IsDeleted,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user %s: %w", m.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a user by their unique identifier.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1 AND is_deleted = FALSE;
	`
	m, err := scanUser(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}

	u := toDomainUser(m)
	return &u, nil
}

// FindUserByEmail retrieves a user by email address.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND is_deleted = FALSE;
	`
	m, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	u := toDomainUser(m)
	return &u, nil
}

// FindUserByProvider retrieves a user by OAuth provider and provider subject.
func (r *PgxUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE auth_provider = $1 AND provider_user_id = $2 AND is_deleted = FALSE;
	`
	m, err := scanUser(r.pool.QueryRow(ctx, query, string(provider), providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider: %w", err)
	}

	u := toDomainUser(m)
	return &u, nil
}

// UpdateUser updates mutable profile fields.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)

	query := `
		UPDATE users
		SET name = $2, email_verified = $3, last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $1 AND is_deleted = FALSE;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.EmailVerified,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", m.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRefreshTokenHash stores (or clears, with empty hash) the refresh token hash.
func (r *PgxUserRepository) UpdateRefreshTokenHash(ctx context.Context, userID string, tokenHash string, now time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $2, last_updated_at = $3, last_updated_by = $1
		WHERE user_id = $1 AND is_deleted = FALSE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, userID, tokenHash, now)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkUserDeleted soft-deletes the user.
func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, now time.Time) error {
	query := `
		UPDATE users
		SET is_deleted = TRUE, last_updated_at = $2, last_updated_by = $1
		WHERE user_id = $1 AND is_deleted = FALSE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, userID, now)
	if err != nil {
		return fmt.Errorf("failed to mark user %s deleted: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
