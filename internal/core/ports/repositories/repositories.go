package repositories

// RepositoryContainer holds instances of all repository facades.
// Constructed once at startup and handed to the service layer.
type RepositoryContainer struct {
	User        UserRepositoryFacade
	Account     AccountRepositoryFacade
	Transaction TransactionRepositoryWithTx
	Budget      BudgetRepositoryFacade
	Goal        GoalRepositoryFacade
	Reporting   ReportingRepositoryFacade
}
