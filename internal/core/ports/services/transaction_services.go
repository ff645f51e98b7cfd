package services

import (
	"context"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
)

// TransactionSvcFacade defines operations on the transaction ledger.
// Create, update, and delete keep account balances reconciled with the
// ledger atomically.
type TransactionSvcFacade interface {
	// CreateTransaction records a transaction and applies its signed
	// contribution to the owning account's balance. The refreshed account
	// is returned alongside the transaction.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.Account, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, *domain.Account, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)
	// UpdateTransaction applies a partial update. When amount, type, or
	// account changes, the old contribution is reversed and the new one
	// applied in the same database transaction.
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, *domain.Account, error)
	// DeleteTransaction removes the row and reverses its contribution.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
