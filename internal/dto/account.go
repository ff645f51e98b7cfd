package dto

import (
	"time"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	Type        domain.AccountType `json:"type" binding:"required,oneof=CHECKING SAVINGS CASH CREDIT INVESTMENT"`
	Balance     decimal.Decimal    `json:"balance"` // Opening balance, defaults to zero
	Color       string             `json:"color" binding:"required"`
	Icon        string             `json:"icon"`
	CreditLimit *decimal.Decimal   `json:"creditLimit"`
	ClosingDay  *int               `json:"closingDay" binding:"omitempty,min=1,max=31"`
	DueDay      *int               `json:"dueDay" binding:"omitempty,min=1,max=31"`
}

// UpdateAccountRequest defines the fields allowed for a partial account update.
// Pointers distinguish "not provided" from zero values. Balance is absent on
// purpose: it is only written through transactions or the adjust operation.
type UpdateAccountRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1"`
	Type        *domain.AccountType `json:"type" binding:"omitempty,oneof=CHECKING SAVINGS CASH CREDIT INVESTMENT"`
	Color       *string             `json:"color"`
	Icon        *string             `json:"icon"`
	CreditLimit *decimal.Decimal    `json:"creditLimit"`
	ClosingDay  *int                `json:"closingDay" binding:"omitempty,min=1,max=31"`
	DueDay      *int                `json:"dueDay" binding:"omitempty,min=1,max=31"`
	IsArchived  *bool               `json:"isArchived"`
}

// AdjustBalanceRequest books an explicit signed correction onto the account balance.
type AdjustBalanceRequest struct {
	Delta  decimal.Decimal `json:"delta" binding:"required"`
	Reason string          `json:"reason"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	IncludeArchived bool `form:"includeArchived,default=false"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	Name        string             `json:"name"`
	Type        domain.AccountType `json:"type"`
	Balance     decimal.Decimal    `json:"balance"`
	Color       string             `json:"color"`
	Icon        string             `json:"icon"`
	CreditLimit *decimal.Decimal   `json:"creditLimit,omitempty"`
	ClosingDay  *int               `json:"closingDay,omitempty"`
	DueDay      *int               `json:"dueDay,omitempty"`
	IsArchived  bool               `json:"isArchived"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// AccountSummary is the compact account embedding returned inside
// transaction and budget payloads.
type AccountSummary struct {
	AccountID string             `json:"accountID"`
	Name      string             `json:"name"`
	Type      domain.AccountType `json:"type"`
	Color     string             `json:"color"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Name:        acc.Name,
		Type:        acc.Type,
		Balance:     acc.Balance,
		Color:       acc.Color,
		Icon:        acc.Icon,
		CreditLimit: acc.CreditLimit,
		ClosingDay:  acc.ClosingDay,
		DueDay:      acc.DueDay,
		IsArchived:  acc.IsArchived,
		CreatedAt:   acc.CreatedAt,
		UpdatedAt:   acc.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ToAccountSummary converts a domain.Account to its compact embedding.
func ToAccountSummary(acc *domain.Account) *AccountSummary {
	if acc == nil {
		return nil
	}
	return &AccountSummary{
		AccountID: acc.AccountID,
		Name:      acc.Name,
		Type:      acc.Type,
		Color:     acc.Color,
	}
}
