package services

import (
	"context"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
)

// ReportingSvcFacade assembles read-only aggregates for the dashboard.
type ReportingSvcFacade interface {
	GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
}
