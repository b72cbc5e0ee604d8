package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_ledger/internal/core/ports/services"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	uow         portsrepo.UnitOfWork
}

// NewAccountService creates a new chart of accounts service. Writes that depend on an
// account's movements run in a unit of work holding that account's row lock.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, uow portsrepo.UnitOfWork) portssvc.AccountSvcFacade {
	return &accountServiceImpl{accountRepo: repo, uow: uow}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, workplaceID string, req dto.CreateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	if existing, err := s.accountRepo.FindAccountByCode(ctx, workplaceID, req.Code); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account code", slog.String("code", req.Code))
		return nil, err
	}

	allowsMovements := true
	if req.AllowsMovements != nil {
		allowsMovements = *req.AllowsMovements
	}

	now := s.now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		WorkplaceID:     workplaceID,
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     req.AccountType,
		Description:     req.Description,
		AllowsMovements: allowsMovements,
		IsActive:        true,
		DebitTotal:      decimal.Zero,
		CreditTotal:     decimal.Zero,
		AuditFields:     newAudit(actor, now),
	}

	err := s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if req.ParentAccountID != nil && *req.ParentAccountID != "" {
			parent, err := s.lockParent(ctx, repos.Accounts, workplaceID, *req.ParentAccountID, req.AccountType)
			if err != nil {
				return err
			}
			account.ParentAccountID = parent.AccountID

			// The parent becomes a summary account. Updating its row makes a posting that
			// is waiting on the same row lock see it as non-leaf.
			if parent.AllowsMovements {
				parent.AllowsMovements = false
				touch(&parent.AuditFields, actor, now)
				if err := repos.Accounts.UpdateAccount(ctx, parent); err != nil {
					return err
				}
			}
		}
		return repos.Accounts.SaveAccount(ctx, account)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save account in repository", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// lockParent loads and row-locks the would-be parent and checks it can take a child.
func (s *accountServiceImpl) lockParent(ctx context.Context, accounts portsrepo.AccountTxRepository, workplaceID, parentID string, childType domain.AccountType) (domain.Account, error) {
	locked, err := accounts.FindAccountsByIDsForUpdate(ctx, []string{parentID})
	if err != nil {
		return domain.Account{}, err
	}
	parent, ok := locked[parentID]
	if !ok || parent.WorkplaceID != workplaceID {
		return domain.Account{}, fmt.Errorf("%w: parent account %s does not exist", apperrors.ErrValidation, parentID)
	}
	if parent.AccountType != childType {
		return domain.Account{}, fmt.Errorf("%w: parent account %s is %s, not %s", apperrors.ErrValidation, parentID, parent.AccountType, childType)
	}
	if !parent.DebitTotal.IsZero() || !parent.CreditTotal.IsZero() {
		return domain.Account{}, fmt.Errorf("%w: parent account %s already has movements", apperrors.ErrConflict, parentID)
	}
	return parent, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, workplaceID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account by ID in repository", slog.String("account_id", accountID))
		return nil, err
	}
	if account.WorkplaceID != workplaceID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context, workplaceID string, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error) {
	if err := dto.Validate(params); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	accounts, next, err := s.accountRepo.ListAccounts(ctx, workplaceID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	return &dto.ListAccountsResponse{
		Accounts:  dto.ToListAccountResponse(accounts),
		NextToken: next,
	}, nil
}

func (s *accountServiceImpl) UpdateAccount(ctx context.Context, workplaceID, accountID string, req dto.UpdateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
	}

	var account domain.Account
	err := s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		locked, err := repos.Accounts.FindAccountsByIDsForUpdate(ctx, []string{accountID})
		if err != nil {
			return err
		}
		var ok bool
		account, ok = locked[accountID]
		if !ok || account.WorkplaceID != workplaceID {
			return apperrors.ErrNotFound
		}

		if req.Name != nil {
			account.Name = *req.Name
		}
		if req.Description != nil {
			account.Description = *req.Description
		}
		if req.IsActive != nil {
			account.IsActive = *req.IsActive
		}
		if req.AllowsMovements != nil {
			if !*req.AllowsMovements && (!account.DebitTotal.IsZero() || !account.CreditTotal.IsZero()) {
				return fmt.Errorf("%w: account %s already has movements", apperrors.ErrConflict, accountID)
			}
			account.AllowsMovements = *req.AllowsMovements
		}
		touch(&account.AuditFields, actor, s.now())
		return repos.Accounts.UpdateAccount(ctx, account)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update account in repository", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return &account, nil
}
