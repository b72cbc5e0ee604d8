package services

import (
	"context"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts.
type AccountReaderSvc interface {
	GetAccountByID(ctx context.Context, workplaceID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, workplaceID string, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error)
}

// AccountWriterSvc defines write operations for the chart of accounts.
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, workplaceID string, req dto.CreateAccountRequest, actor domain.Actor) (*domain.Account, error)
	UpdateAccount(ctx context.Context, workplaceID, accountID string, req dto.UpdateAccountRequest, actor domain.Actor) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
