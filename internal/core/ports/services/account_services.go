package services

import (
	"context"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
)

// AccountSvcFacade defines operations on financial accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string, includeArchived bool) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	// ArchiveAccount soft-hides an account; its history stays intact.
	ArchiveAccount(ctx context.Context, userID, accountID string) error
	// AdjustBalance books an explicit signed correction onto the balance
	// outside the transaction ledger.
	AdjustBalance(ctx context.Context, userID, accountID string, req dto.AdjustBalanceRequest) (*domain.Account, error)
}
