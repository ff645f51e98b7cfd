package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
)

// NewRepositoryContainer builds all PostgreSQL repositories on one pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *portsrepo.RepositoryContainer {
	accountRepo := newPgxAccountRepository(pool)

	return &portsrepo.RepositoryContainer{
		User:        newPgxUserRepository(pool),
		Account:     accountRepo,
		Transaction: newPgxTransactionRepository(pool, accountRepo),
		Budget:      newPgxBudgetRepository(pool),
		Goal:        newPgxGoalRepository(pool),
		Reporting:   newPgxReportingRepository(pool),
	}
}
