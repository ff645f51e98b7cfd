package dto

import (
	"time"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// TRANSFER is intentionally absent from the accepted types.
type CreateTransactionRequest struct {
	AccountID         string                    `json:"accountId" binding:"required"`
	Type              domain.TransactionType    `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount            decimal.Decimal           `json:"amount" binding:"required"`
	Description       string                    `json:"description" binding:"required,min=1"`
	Category          string                    `json:"category" binding:"required,min=1"`
	Date              time.Time                 `json:"date" binding:"required"`
	Status            *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	Notes             string                    `json:"notes"`
	InstallmentNumber *int                      `json:"installmentNumber" binding:"omitempty,gt=0"`
	InstallmentTotal  *int                      `json:"installmentTotal" binding:"omitempty,gt=0"`
}

// UpdateTransactionRequest defines a partial transaction update.
// A change to Amount, Type, or AccountID triggers balance reconciliation;
// the remaining fields are descriptive.
type UpdateTransactionRequest struct {
	AccountID         *string                   `json:"accountId"`
	Type              *domain.TransactionType   `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Amount            *decimal.Decimal          `json:"amount"`
	Description       *string                   `json:"description" binding:"omitempty,min=1"`
	Category          *string                   `json:"category" binding:"omitempty,min=1"`
	Date              *time.Time                `json:"date"`
	Status            *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	Notes             *string                   `json:"notes"`
	InstallmentNumber *int                      `json:"installmentNumber" binding:"omitempty,gt=0"`
	InstallmentTotal  *int                      `json:"installmentTotal" binding:"omitempty,gt=0"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID string     `form:"accountId"`
	Type      string     `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Category  string     `form:"category"`
	Status    string     `form:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string    `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction,
// with the owning account's summary embedded.
type TransactionResponse struct {
	TransactionID     string                   `json:"transactionID"`
	AccountID         string                   `json:"accountID"`
	Description       string                   `json:"description"`
	Amount            decimal.Decimal          `json:"amount"`
	Type              domain.TransactionType   `json:"type"`
	Category          string                   `json:"category"`
	Date              time.Time                `json:"date"`
	Status            domain.TransactionStatus `json:"status"`
	Notes             string                   `json:"notes,omitempty"`
	InstallmentNumber *int                     `json:"installmentNumber,omitempty"`
	InstallmentTotal  *int                     `json:"installmentTotal,omitempty"`
	Account           *AccountSummary          `json:"account,omitempty"`
	CreatedAt         time.Time                `json:"createdAt"`
	UpdatedAt         time.Time                `json:"updatedAt"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// DeleteTransactionResponse confirms a deletion.
type DeleteTransactionResponse struct {
	Message string `json:"message"`
}

// ToTransactionResponse converts a domain.Transaction, optionally embedding
// its account summary.
func ToTransactionResponse(txn *domain.Transaction, account *domain.Account) TransactionResponse {
	return TransactionResponse{
		TransactionID:     txn.TransactionID,
		AccountID:         txn.AccountID,
		Description:       txn.Description,
		Amount:            txn.Amount,
		Type:              txn.Type,
		Category:          txn.Category,
		Date:              txn.OccurredAt,
		Status:            txn.Status,
		Notes:             txn.Notes,
		InstallmentNumber: txn.InstallmentNumber,
		InstallmentTotal:  txn.InstallmentTotal,
		Account:           ToAccountSummary(account),
		CreatedAt:         txn.CreatedAt,
		UpdatedAt:         txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions without
// account embeddings.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i], nil)
	}
	return res
}
