package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// FindAccountByID retrieves an account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by id. Missing ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountByCode retrieves an account by its code within a workplace.
	FindAccountByCode(ctx context.Context, workplaceID, code string) (*domain.Account, error)

	// ListAccounts retrieves the accounts of a workplace ordered by code.
	ListAccounts(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.Account, *string, error)

	// SumAppliedMovements sums debits and credits of an account over entries whose ledger
	// effect is in force and whose entry date is not after asOf.
	SumAppliedMovements(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error)
}

// AccountWriter defines write operations for the chart of accounts.
type AccountWriter interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates descriptive fields of an account. Totals are never written here.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountTxRepository is the account store as seen inside a unit of work.
type AccountTxRepository interface {
	AccountWriter

	// FindAccountsByIDsForUpdate loads and row-locks accounts in ascending id order.
	FindAccountsByIDsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// IncrementTotals adds the deltas to the account's running totals in place.
	IncrementTotals(ctx context.Context, accountID string, debitDelta, creditDelta decimal.Decimal) error
}
