package services

import (
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/platform/config"
)

// NewServiceContainer wires the repositories into the full service graph.
func NewServiceContainer(repos *portsrepo.RepositoryContainer, cfg *config.Config) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.User, cfg)
	tokenSvc := NewTokenService(cfg)
	googleSvc := NewGoogleOAuthService(cfg, userSvc)
	accountSvc := NewAccountService(repos.Account)
	transactionSvc := NewTransactionService(repos.Transaction, accountSvc)
	budgetSvc := NewBudgetService(repos.Budget, accountSvc)
	goalSvc := NewGoalService(repos.Goal)
	reportingSvc := NewReportingService(repos.Account, repos.Goal, repos.Budget, repos.Reporting)

	return &portssvc.ServiceContainer{
		UserService:        userSvc,
		TokenService:       tokenSvc,
		GoogleOAuthService: googleSvc,
		AccountService:     accountSvc,
		TransactionService: transactionSvc,
		BudgetService:      budgetSvc,
		GoalService:        goalSvc,
		ReportingService:   reportingSvc,
	}
}
