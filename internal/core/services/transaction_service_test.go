package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/core/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryWithTx interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Transaction), token, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceChanges)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceChanges)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string, balanceChanges map[string]decimal.Decimal, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, transactionID, balanceChanges, updatedBy, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockAccountService is a mock type for the AccountSvcFacade interface
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, userID string, includeArchived bool) ([]domain.Account, error) {
	args := m.Called(ctx, userID, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ArchiveAccount(ctx context.Context, userID, accountID string) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

func (m *MockAccountService) AdjustBalance(ctx context.Context, userID, accountID string, req dto.AdjustBalanceRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockTransactionRepository
	mockAccountSvc *MockAccountService
	service        portssvc.TransactionSvcFacade

	userID  string
	account *domain.Account
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewTransactionService(suite.mockRepo, suite.mockAccountSvc)

	suite.userID = uuid.NewString()
	suite.account = &domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      "Checking",
		Type:      domain.Checking,
		Balance:   decimal.NewFromInt(500),
	}
}

// singleChange matches a balanceChanges map holding exactly one delta for accountID.
func singleChange(accountID string, want decimal.Decimal) func(map[string]decimal.Decimal) bool {
	return func(changes map[string]decimal.Decimal) bool {
		if len(changes) != 1 {
			return false
		}
		delta, ok := changes[accountID]
		return ok && delta.Equal(want)
	}
}

// --- CreateTransaction ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_IncomeAddsToBalance() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:   suite.account.AccountID,
		Type:        domain.Income,
		Amount:      decimal.NewFromInt(120),
		Description: "Salary",
		Category:    "salary",
		Date:        time.Now().UTC(),
	}

	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, suite.account.AccountID).Return(suite.account, nil).Twice()
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(singleChange(suite.account.AccountID, decimal.NewFromInt(120)))).Return(nil).Once()

	txn, account, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Require().NotNil(account)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Income, txn.Type)
	suite.Equal(domain.StatusCompleted, txn.Status) // Defaulted
	suite.Equal(suite.userID, txn.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExpenseSubtractsFromBalance() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:   suite.account.AccountID,
		Type:        domain.Expense,
		Amount:      decimal.NewFromInt(45),
		Description: "Groceries",
		Category:    "food",
		Date:        time.Now().UTC(),
	}

	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, suite.account.AccountID).Return(suite.account, nil).Twice()
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(singleChange(suite.account.AccountID, decimal.NewFromInt(-45)))).Return(nil).Once()

	txn, _, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Expense, txn.Type)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:   suite.account.AccountID,
		Type:        domain.Expense,
		Amount:      decimal.Zero,
		Description: "Nothing",
		Category:    "misc",
		Date:        time.Now().UTC(),
	}

	txn, account, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsTransferType() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:   suite.account.AccountID,
		Type:        domain.Transfer,
		Amount:      decimal.NewFromInt(10),
		Description: "Move money",
		Category:    "transfer",
		Date:        time.Now().UTC(),
	}

	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, suite.account.AccountID).Return(suite.account, nil).Once()

	txn, _, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsArchivedAccount() {
	ctx := context.Background()
	archived := *suite.account
	archived.IsArchived = true
	req := dto.CreateTransactionRequest{
		AccountID:   archived.AccountID,
		Type:        domain.Expense,
		Amount:      decimal.NewFromInt(10),
		Description: "Late entry",
		Category:    "misc",
		Date:        time.Now().UTC(),
	}

	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, archived.AccountID).Return(&archived, nil).Once()

	txn, _, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnownedAccountNotFound() {
	ctx := context.Background()
	otherAccountID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		AccountID:   otherAccountID,
		Type:        domain.Income,
		Amount:      decimal.NewFromInt(10),
		Description: "Sneaky",
		Category:    "misc",
		Date:        time.Now().UTC(),
	}

	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, otherAccountID).Return(nil, apperrors.ErrNotFound).Once()

	txn, _, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateTransaction ---

func (suite *TransactionServiceTestSuite) existingExpense(amount int64) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		AccountID:     suite.account.AccountID,
		Description:   "Dinner",
		Amount:        decimal.NewFromInt(amount),
		Type:          domain.Expense,
		Category:      "food",
		OccurredAt:    time.Now().UTC().Add(-24 * time.Hour),
		Status:        domain.StatusCompleted,
	}
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AmountChangeReconciles() {
	ctx := context.Background()
	existing := suite.existingExpense(100)
	newAmount := decimal.NewFromInt(30)
	req := dto.UpdateTransactionRequest{Amount: &newAmount}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).Return(existing, nil).Once()
	// Old contribution -100 reversed, new contribution -30 applied: net +70.
	suite.mockRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(singleChange(suite.account.AccountID, decimal.NewFromInt(70)))).Return(nil).Once()
	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, suite.account.AccountID).Return(suite.account, nil).Once()

	txn, _, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(newAmount))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_TypeFlipReconciles() {
	ctx := context.Background()
	existing := suite.existingExpense(40)
	newType := domain.Income
	req := dto.UpdateTransactionRequest{Type: &newType}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).Return(existing, nil).Once()
	// Reversing -40 and applying +40 nets +80.
	suite.mockRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(singleChange(suite.account.AccountID, decimal.NewFromInt(80)))).Return(nil).Once()
	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, suite.account.AccountID).Return(suite.account, nil).Once()

	txn, _, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Income, txn.Type)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AccountMoveTouchesBothBalances() {
	ctx := context.Background()
	existing := suite.existingExpense(25)
	destination := &domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      "Cash",
		Type:      domain.Cash,
	}
	req := dto.UpdateTransactionRequest{AccountID: &destination.AccountID}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).Return(existing, nil).Once()
	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, destination.AccountID).Return(destination, nil).Twice()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 2 &&
				changes[suite.account.AccountID].Equal(decimal.NewFromInt(25)) &&
				changes[destination.AccountID].Equal(decimal.NewFromInt(-25))
		})).Return(nil).Once()

	txn, account, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.Equal(destination.AccountID, txn.AccountID)
	suite.Equal(destination.AccountID, account.AccountID)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AccountMoveWithAmountChange() {
	ctx := context.Background()
	existing := suite.existingExpense(50)
	destination := &domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      "Cash",
		Type:      domain.Cash,
	}
	newAmount := decimal.NewFromInt(80)
	req := dto.UpdateTransactionRequest{AccountID: &destination.AccountID, Amount: &newAmount}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).Return(existing, nil).Once()
	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, destination.AccountID).Return(destination, nil).Twice()
	// Old -50 reversed on the source, new -80 applied on the destination.
	suite.mockRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 2 &&
				changes[suite.account.AccountID].Equal(decimal.NewFromInt(50)) &&
				changes[destination.AccountID].Equal(decimal.NewFromInt(-80))
		})).Return(nil).Once()

	txn, account, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(newAmount))
	suite.Equal(destination.AccountID, txn.AccountID)
	suite.Equal(destination.AccountID, account.AccountID)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_DescriptiveEditSkipsReconciliation() {
	ctx := context.Background()
	existing := suite.existingExpense(100)
	newDescription := "Team dinner"
	newCategory := "work"
	req := dto.UpdateTransactionRequest{Description: &newDescription, Category: &newCategory}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 0
		})).Return(nil).Once()
	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, suite.account.AccountID).Return(suite.account, nil).Once()

	txn, _, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.Equal(newDescription, txn.Description)
	suite.Equal(newCategory, txn.Category)
	suite.True(txn.Amount.Equal(existing.Amount))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_SameAmountDifferentScaleSkipsReconciliation() {
	ctx := context.Background()
	existing := suite.existingExpense(100)
	// 100.00 vs 100: numerically equal, must not trigger reconciliation.
	sameAmount := decimal.RequireFromString("100.00")
	req := dto.UpdateTransactionRequest{Amount: &sameAmount}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 0
		})).Return(nil).Once()
	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, suite.account.AccountID).Return(suite.account, nil).Once()

	_, _, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	existing := suite.existingExpense(100)
	badAmount := decimal.NewFromInt(-5)
	req := dto.UpdateTransactionRequest{Amount: &badAmount}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).Return(existing, nil).Once()

	txn, _, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_ArchivedDestinationRejected() {
	ctx := context.Background()
	existing := suite.existingExpense(25)
	archived := &domain.Account{
		AccountID:  uuid.NewString(),
		UserID:     suite.userID,
		IsArchived: true,
	}
	req := dto.UpdateTransactionRequest{AccountID: &archived.AccountID}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).Return(existing, nil).Once()
	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, archived.AccountID).Return(archived, nil).Once()

	txn, _, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()
	newDescription := "Doesn't matter"
	req := dto.UpdateTransactionRequest{Description: &newDescription}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, missingID).Return(nil, apperrors.ErrNotFound).Once()

	txn, _, err := suite.service.UpdateTransaction(ctx, suite.userID, missingID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteTransaction ---

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_ReversesContribution() {
	ctx := context.Background()
	existing := suite.existingExpense(60)

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).Return(existing, nil).Once()
	// Deleting an expense of 60 gives the money back.
	suite.mockRepo.On("DeleteTransaction", ctx, suite.userID, existing.TransactionID,
		mock.MatchedBy(singleChange(suite.account.AccountID, decimal.NewFromInt(60))),
		suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, existing.TransactionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_IncomeReversesNegative() {
	ctx := context.Background()
	existing := suite.existingExpense(75)
	existing.Type = domain.Income

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteTransaction", ctx, suite.userID, existing.TransactionID,
		mock.MatchedBy(singleChange(suite.account.AccountID, decimal.NewFromInt(-75))),
		suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, existing.TransactionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, missingID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, missingID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTransaction",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- ListTransactions ---

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultsLimit() {
	ctx := context.Background()
	expected := []domain.Transaction{*suite.existingExpense(10)}

	suite.mockRepo.On("ListTransactions", ctx, suite.userID, mock.AnythingOfType("repositories.TransactionFilter"), 20, (*string)(nil)).
		Return(expected, nil, nil).Once()

	transactions, nextToken, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Equal(expected, transactions)
	suite.Nil(nextToken)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
