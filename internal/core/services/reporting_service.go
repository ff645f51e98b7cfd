package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
)

const dashboardRecentLimit = 10

// reportingService assembles the read-only dashboard aggregate.
type reportingService struct {
	accountRepo   portsrepo.AccountReader
	goalRepo      portsrepo.GoalRepositoryFacade
	budgetRepo    portsrepo.BudgetRepositoryFacade
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	accountRepo portsrepo.AccountReader,
	goalRepo portsrepo.GoalRepositoryFacade,
	budgetRepo portsrepo.BudgetRepositoryFacade,
	reportingRepo portsrepo.ReportingRepositoryFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo:   accountRepo,
		goalRepo:      goalRepo,
		budgetRepo:    budgetRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDashboard composes account totals, month-to-date and trailing-week
// income/expense sums, goal progress, active budgets, and the current
// month's most recent transactions into one payload.
func (s *reportingService) GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	accounts, err := s.accountRepo.ListAccounts(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	totalBalance := decimal.Zero
	for _, acc := range accounts {
		totalBalance = totalBalance.Add(acc.Balance)
	}

	monthTotals, err := s.reportingRepo.PeriodTotals(ctx, userID, monthStart, now)
	if err != nil {
		return nil, err
	}
	weekTotals, err := s.reportingRepo.PeriodTotals(ctx, userID, weekAgo, now)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.ListGoals(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	goalTarget := decimal.Zero
	goalCurrent := decimal.Zero
	for _, g := range goals {
		if g.Status != domain.GoalInProgress {
			continue
		}
		goalTarget = goalTarget.Add(g.TargetAmount)
		goalCurrent = goalCurrent.Add(g.CurrentAmount)
	}
	savingsProgress := 0
	if goalTarget.GreaterThan(decimal.Zero) {
		pct := goalCurrent.Div(goalTarget).Mul(decimal.NewFromInt(100))
		savingsProgress = int(pct.IntPart())
		if savingsProgress > 100 {
			savingsProgress = 100
		}
		if savingsProgress < 0 {
			savingsProgress = 0
		}
	}

	budgets, err := s.budgetRepo.ListBudgetsActiveAt(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	budgetLimit := decimal.Zero
	budgetSpent := decimal.Zero
	for _, b := range budgets {
		budgetLimit = budgetLimit.Add(b.Limit)
		budgetSpent = budgetSpent.Add(b.Spent)
	}

	recent, err := s.reportingRepo.RecentTransactions(ctx, userID, monthStart, now, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	logger.Info("Dashboard assembled", "accounts", len(accounts), "goals", len(goals), "budgets", len(budgets))

	return &domain.Dashboard{
		Summary: domain.DashboardSummary{
			TotalBalance:     totalBalance,
			TotalIncome:      monthTotals.Income,
			TotalExpense:     monthTotals.Expense,
			RevenueLastWeek:  weekTotals.Income,
			ExpenseLastWeek:  weekTotals.Expense,
			GoalTarget:       goalTarget,
			GoalCurrent:      goalCurrent,
			SavingsProgress:  savingsProgress,
			TotalBudgetLimit: budgetLimit,
			TotalBudgetSpent: budgetSpent,
		},
		Transactions: recent,
		Accounts:     accounts,
		Goals:        goals,
		Budgets:      budgets,
	}, nil
}
