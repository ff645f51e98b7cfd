package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
)

const defaultAlertThreshold = 80

// budgetService provides CRUD for category spending caps.
type budgetService struct {
	budgetRepo portsrepo.BudgetRepositoryFacade
	accountSvc portssvc.AccountSvcFacade
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: budgetRepo,
		accountSvc: accountSvc,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// accountForBudget resolves the optional account embedding of a budget.
func (s *budgetService) accountForBudget(ctx context.Context, userID string, budget *domain.Budget) (*domain.Account, error) {
	if budget.AccountID == "" {
		return nil, nil
	}
	return s.accountSvc.GetAccountByID(ctx, userID, budget.AccountID)
}

// CreateBudget persists a new budget after validating its window and
// optional account scope.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, *domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Limit.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: budget limit must be positive", apperrors.ErrValidation)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, nil, fmt.Errorf("%w: endDate must be after startDate", apperrors.ErrValidation)
	}

	var account *domain.Account
	if req.AccountID != nil && *req.AccountID != "" {
		var err error
		account, err = s.accountSvc.GetAccountByID(ctx, userID, *req.AccountID)
		if err != nil {
			return nil, nil, err
		}
	}

	period := req.Period
	if period == "" {
		period = domain.Monthly
	}
	alertThreshold := defaultAlertThreshold
	if req.AlertThreshold != nil {
		alertThreshold = *req.AlertThreshold
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:       uuid.NewString(),
		UserID:         userID,
		Category:       req.Category,
		Limit:          req.Limit,
		Spent:          decimal.Zero,
		Period:         period,
		AlertThreshold: alertThreshold,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if account != nil {
		budget.AccountID = account.AccountID
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		logger.Error("Failed to save budget", "error", err)
		return nil, nil, err
	}

	logger.Info("Budget created", "budget_id", budget.BudgetID, "category", budget.Category)
	return &budget, account, nil
}

// GetBudgetByID retrieves a budget with its optional account embedding.
func (s *budgetService) GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, *domain.Account, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, nil, err
	}
	account, err := s.accountForBudget(ctx, userID, budget)
	if err != nil {
		return nil, nil, err
	}
	return budget, account, nil
}

// ListBudgets retrieves the user's budgets.
func (s *budgetService) ListBudgets(ctx context.Context, userID string, params dto.ListBudgetsParams) ([]domain.Budget, error) {
	filter := portsrepo.BudgetFilter{
		AccountID: params.AccountID,
		Period:    domain.BudgetPeriod(params.Period),
	}
	return s.budgetRepo.ListBudgets(ctx, userID, filter)
}

// UpdateBudget applies a partial update.
func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, *domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, nil, err
	}

	if req.AccountID != nil {
		if *req.AccountID == "" {
			budget.AccountID = ""
		} else {
			if _, err := s.accountSvc.GetAccountByID(ctx, userID, *req.AccountID); err != nil {
				return nil, nil, err
			}
			budget.AccountID = *req.AccountID
		}
	}
	if req.Category != nil {
		budget.Category = *req.Category
	}
	if req.Limit != nil {
		budget.Limit = *req.Limit
	}
	if req.Spent != nil {
		budget.Spent = *req.Spent
	}
	if req.Period != nil {
		budget.Period = *req.Period
	}
	if req.AlertThreshold != nil {
		budget.AlertThreshold = *req.AlertThreshold
	}
	if req.StartDate != nil {
		budget.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		budget.EndDate = *req.EndDate
	}

	if budget.Limit.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: budget limit must be positive", apperrors.ErrValidation)
	}
	if budget.Spent.LessThan(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: budget spent cannot be negative", apperrors.ErrValidation)
	}
	if !budget.EndDate.After(budget.StartDate) {
		return nil, nil, fmt.Errorf("%w: endDate must be after startDate", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	budget.LastUpdatedAt = now
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		logger.Error("Failed to update budget", "error", err, "budget_id", budgetID)
		return nil, nil, err
	}

	account, err := s.accountForBudget(ctx, userID, budget)
	if err != nil {
		return nil, nil, err
	}
	return budget, account, nil
}

// DeleteBudget removes a budget.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		logger.Error("Failed to delete budget", "error", err, "budget_id", budgetID)
		return err
	}

	logger.Info("Budget deleted", "budget_id", budgetID)
	return nil
}
