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

// accountService provides account CRUD and explicit balance corrections.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account with its opening balance. The
// opening balance may be negative; credit cards commonly start in debt.
func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Type != domain.Credit && (req.CreditLimit != nil || req.ClosingDay != nil || req.DueDay != nil) {
		return nil, fmt.Errorf("%w: credit card fields are only valid for CREDIT accounts", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Type:        req.Type,
		Balance:     req.Balance,
		Color:       req.Color,
		Icon:        req.Icon,
		CreditLimit: req.CreditLimit,
		ClosingDay:  req.ClosingDay,
		DueDay:      req.DueDay,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", "error", err)
		return nil, err
	}

	logger.Info("Account created", "account_id", account.AccountID, "type", account.Type)
	return &account, nil
}

// GetAccountByID retrieves an account owned by the user.
func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, userID, accountID)
}

// ListAccounts retrieves the user's accounts.
func (s *accountService) ListAccounts(ctx context.Context, userID string, includeArchived bool) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, userID, includeArchived)
}

// UpdateAccount applies a partial update to descriptive fields. The balance
// is never writable here; it only moves through transactions and AdjustBalance.
func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Type != nil {
		account.Type = *req.Type
	}
	if req.Color != nil {
		account.Color = *req.Color
	}
	if req.Icon != nil {
		account.Icon = *req.Icon
	}
	if req.CreditLimit != nil {
		account.CreditLimit = req.CreditLimit
	}
	if req.ClosingDay != nil {
		account.ClosingDay = req.ClosingDay
	}
	if req.DueDay != nil {
		account.DueDay = req.DueDay
	}
	if req.IsArchived != nil {
		account.IsArchived = *req.IsArchived
	}

	if account.Type != domain.Credit && (account.CreditLimit != nil || account.ClosingDay != nil || account.DueDay != nil) {
		return nil, fmt.Errorf("%w: credit card fields are only valid for CREDIT accounts", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", "error", err, "account_id", accountID)
		return nil, err
	}

	return account, nil
}

// ArchiveAccount soft-hides an account. Its transactions and their balance
// contributions stay intact.
func (s *accountService) ArchiveAccount(ctx context.Context, userID, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	if err := s.accountRepo.ArchiveAccount(ctx, userID, accountID, userID, now); err != nil {
		logger.Error("Failed to archive account", "error", err, "account_id", accountID)
		return err
	}

	logger.Info("Account archived", "account_id", accountID)
	return nil
}

// AdjustBalance books an explicit signed correction outside the ledger,
// e.g. to align with a bank statement.
func (s *accountService) AdjustBalance(ctx context.Context, userID, accountID string, req dto.AdjustBalanceRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Delta.Equal(decimal.Zero) {
		return nil, fmt.Errorf("%w: adjustment delta must be non-zero", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	account, err := s.accountRepo.AdjustBalance(ctx, userID, accountID, req.Delta, userID, now)
	if err != nil {
		logger.Error("Failed to adjust account balance", "error", err, "account_id", accountID)
		return nil, err
	}

	logger.Info("Account balance adjusted", "account_id", accountID, "delta", req.Delta.String(), "reason", req.Reason)
	return account, nil
}
