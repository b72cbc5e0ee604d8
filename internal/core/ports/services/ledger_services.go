package services

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// LedgerSvc owns account running totals. Nothing else writes them.
type LedgerSvc interface {
	// ApplyMovement adds one debit or credit to a leaf account inside an open unit of work.
	ApplyMovement(ctx context.Context, accounts portsrepo.AccountTxRepository, accountID string, debit, credit decimal.Decimal) error

	// ApplyEntry locks the entry's accounts, validates the entry against them and applies every line.
	ApplyEntry(ctx context.Context, accounts portsrepo.AccountTxRepository, entry *domain.JournalEntry) error

	// RevertEntry applies the inverse of every line of a previously applied entry.
	RevertEntry(ctx context.Context, accounts portsrepo.AccountTxRepository, entry *domain.JournalEntry) error

	// GetBalance returns the current balance, or the balance as of a date when asOf is set.
	GetBalance(ctx context.Context, workplaceID, accountID string, asOf *time.Time) (*domain.AccountBalance, error)
}
