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

// transactionService implements the ledger operations and keeps account
// balances reconciled with the stored transactions.
type transactionService struct {
	txnRepo    portsrepo.TransactionRepositoryWithTx
	accountSvc portssvc.AccountSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryWithTx, accountSvc portssvc.AccountSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:    txnRepo,
		accountSvc: accountSvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// signedContribution maps a transaction onto its effect on the owning
// account balance: +amount for INCOME, -amount for EXPENSE. TRANSFER has
// no contribution rule and is rejected.
func signedContribution(txnType domain.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	switch txnType {
	case domain.Income:
		return amount, nil
	case domain.Expense:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: transaction type %s is not supported", apperrors.ErrValidation, txnType)
	}
}

// pruneZeroChanges drops accounts whose net delta is zero so the repository
// does not lock rows it will not change.
func pruneZeroChanges(balanceChanges map[string]decimal.Decimal) {
	for accountID, delta := range balanceChanges {
		if delta.IsZero() {
			delete(balanceChanges, accountID)
		}
	}
}

// CreateTransaction records a transaction and applies its contribution to
// the owning account's balance in one database transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.accountSvc.GetAccountByID(ctx, userID, req.AccountID)
	if err != nil {
		return nil, nil, err
	}
	if account.IsArchived {
		return nil, nil, fmt.Errorf("%w: account %s is archived", apperrors.ErrValidation, account.AccountID)
	}

	status := domain.StatusCompleted
	if req.Status != nil {
		status = *req.Status
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:     uuid.NewString(),
		UserID:            userID,
		AccountID:         req.AccountID,
		Description:       req.Description,
		Amount:            req.Amount,
		Type:              req.Type,
		Category:          req.Category,
		OccurredAt:        req.Date,
		Status:            status,
		Notes:             req.Notes,
		InstallmentNumber: req.InstallmentNumber,
		InstallmentTotal:  req.InstallmentTotal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	contribution, err := signedContribution(txn.Type, txn.Amount)
	if err != nil {
		return nil, nil, err
	}
	balanceChanges := map[string]decimal.Decimal{
		txn.AccountID: contribution,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, balanceChanges); err != nil {
		logger.Error("Failed to save transaction", "error", err, "account_id", txn.AccountID)
		return nil, nil, err
	}

	account, err = s.accountSvc.GetAccountByID(ctx, userID, txn.AccountID)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Transaction created", "transaction_id", txn.TransactionID, "account_id", txn.AccountID)
	return &txn, account, nil
}

// GetTransactionByID retrieves a transaction with its account embedding.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, *domain.Account, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, nil, err
	}
	account, err := s.accountSvc.GetAccountByID(ctx, userID, txn.AccountID)
	if err != nil {
		return nil, nil, err
	}
	return txn, account, nil
}

// ListTransactions returns a page of the user's transactions.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	filter := portsrepo.TransactionFilter{
		AccountID: params.AccountID,
		Type:      domain.TransactionType(params.Type),
		Category:  params.Category,
		Status:    domain.TransactionStatus(params.Status),
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}
	return s.txnRepo.ListTransactions(ctx, userID, filter, limit, params.NextToken)
}

// UpdateTransaction applies a partial update. Whenever the amount, type, or
// owning account changes, the previous contribution is reversed and the new
// one applied atomically with the row write. Descriptive edits (description,
// category, date, status, notes) leave balances alone.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, *domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, nil, err
	}

	updated := *existing
	if req.AccountID != nil {
		updated.AccountID = *req.AccountID
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.Date != nil {
		updated.OccurredAt = *req.Date
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.InstallmentNumber != nil {
		updated.InstallmentNumber = req.InstallmentNumber
	}
	if req.InstallmentTotal != nil {
		updated.InstallmentTotal = req.InstallmentTotal
	}

	if updated.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	// Moving the transaction to another account requires that account to
	// exist, belong to the user, and accept new entries.
	if updated.AccountID != existing.AccountID {
		destination, err := s.accountSvc.GetAccountByID(ctx, userID, updated.AccountID)
		if err != nil {
			return nil, nil, err
		}
		if destination.IsArchived {
			return nil, nil, fmt.Errorf("%w: account %s is archived", apperrors.ErrValidation, destination.AccountID)
		}
	}

	now := time.Now().UTC()
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	balanceChanges := make(map[string]decimal.Decimal)
	reconcile := !updated.Amount.Equal(existing.Amount) ||
		updated.Type != existing.Type ||
		updated.AccountID != existing.AccountID
	if reconcile {
		oldContribution, err := signedContribution(existing.Type, existing.Amount)
		if err != nil {
			return nil, nil, err
		}
		newContribution, err := signedContribution(updated.Type, updated.Amount)
		if err != nil {
			return nil, nil, err
		}
		balanceChanges[existing.AccountID] = balanceChanges[existing.AccountID].Sub(oldContribution)
		balanceChanges[updated.AccountID] = balanceChanges[updated.AccountID].Add(newContribution)
		pruneZeroChanges(balanceChanges)
	}

	if err := s.txnRepo.UpdateTransaction(ctx, updated, balanceChanges); err != nil {
		logger.Error("Failed to update transaction", "error", err, "transaction_id", transactionID)
		return nil, nil, err
	}

	account, err := s.accountSvc.GetAccountByID(ctx, userID, updated.AccountID)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Transaction updated", "transaction_id", transactionID, "reconciled", reconcile)
	return &updated, account, nil
}

// DeleteTransaction removes a transaction and reverses its contribution in
// the same database transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}

	contribution, err := signedContribution(existing.Type, existing.Amount)
	if err != nil {
		return err
	}
	balanceChanges := map[string]decimal.Decimal{
		existing.AccountID: contribution.Neg(),
	}

	now := time.Now().UTC()
	if err := s.txnRepo.DeleteTransaction(ctx, userID, transactionID, balanceChanges, userID, now); err != nil {
		logger.Error("Failed to delete transaction", "error", err, "transaction_id", transactionID)
		return err
	}

	logger.Info("Transaction deleted", "transaction_id", transactionID, "account_id", existing.AccountID)
	return nil
}
