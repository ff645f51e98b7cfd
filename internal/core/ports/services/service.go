package services

// ServiceContainer holds instances of all the application services.
type ServiceContainer struct {
	UserService        UserSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthService GoogleOAuthSvcFacade
	AccountService     AccountSvcFacade
	TransactionService TransactionSvcFacade
	BudgetService      BudgetSvcFacade
	GoalService        GoalSvcFacade
	ReportingService   ReportingSvcFacade
}
