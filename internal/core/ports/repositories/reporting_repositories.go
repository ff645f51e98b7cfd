package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
)

// ReportingRepositoryFacade defines read-only aggregate queries backing the dashboard.
type ReportingRepositoryFacade interface {
	// PeriodTotals sums income and expense amounts for the user's
	// transactions dated within [from, to].
	PeriodTotals(ctx context.Context, userID string, from, to time.Time) (domain.PeriodTotals, error)

	// RecentTransactions retrieves the user's most recent transactions
	// dated within [from, to], date descending.
	RecentTransactions(ctx context.Context, userID string, from, to time.Time, limit int) ([]domain.Transaction, error)
}
