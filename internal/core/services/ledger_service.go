package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_ledger/internal/core/ports/services"
	"github.com/SscSPs/backoffice_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ledgerService is the only writer of account running totals.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	precision   int32
}

// NewLedgerService creates a new ledger service checking balances at precision decimal places.
func NewLedgerService(accountRepo portsrepo.AccountReader, precision int32) portssvc.LedgerSvc {
	return &ledgerService{accountRepo: accountRepo, precision: precision}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) ApplyMovement(ctx context.Context, accounts portsrepo.AccountTxRepository, accountID string, debit, credit decimal.Decimal) error {
	if debit.IsNegative() || credit.IsNegative() {
		return &domain.InvalidLineError{Index: -1, Field: domain.FieldAmount, Reason: domain.ReasonNegative}
	}

	locked, err := accounts.FindAccountsByIDsForUpdate(ctx, []string{accountID})
	if err != nil {
		return fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}
	acc, ok := locked[accountID]
	if !ok {
		return &domain.InvalidLineError{Index: -1, Field: domain.FieldAccount, Reason: domain.ReasonUnknownAccount}
	}
	if !acc.IsLeaf() {
		return &domain.InvalidLineError{Index: -1, Field: domain.FieldAccount, Reason: domain.ReasonNonLeafAccount}
	}

	if err := accounts.IncrementTotals(ctx, accountID, debit, credit); err != nil {
		return fmt.Errorf("failed to apply movement to account %s: %w", accountID, err)
	}
	return nil
}

func (s *ledgerService) ApplyEntry(ctx context.Context, accounts portsrepo.AccountTxRepository, entry *domain.JournalEntry) error {
	movements := accounting.AggregateMovements(entry.Movements())

	locked, err := accounts.FindAccountsByIDsForUpdate(ctx, accounting.SortedAccountIDs(movements))
	if err != nil {
		return fmt.Errorf("failed to lock accounts of entry %s: %w", entry.EntryID, err)
	}
	if err := entry.Validate(locked, s.precision); err != nil {
		return err
	}

	for _, m := range movements {
		if err := accounts.IncrementTotals(ctx, m.AccountID, m.Debit, m.Credit); err != nil {
			s.LogError(ctx, err, "Failed to apply ledger movement",
				slog.String("entry_id", entry.EntryID), slog.String("account_id", m.AccountID))
			return fmt.Errorf("failed to apply movement to account %s: %w", m.AccountID, err)
		}
	}
	return nil
}

func (s *ledgerService) RevertEntry(ctx context.Context, accounts portsrepo.AccountTxRepository, entry *domain.JournalEntry) error {
	movements := accounting.AggregateMovements(entry.Movements())

	locked, err := accounts.FindAccountsByIDsForUpdate(ctx, accounting.SortedAccountIDs(movements))
	if err != nil {
		return fmt.Errorf("failed to lock accounts of entry %s: %w", entry.EntryID, err)
	}

	for _, m := range movements {
		acc, ok := locked[m.AccountID]
		if !ok {
			return fmt.Errorf("%w: account %s of entry %s no longer exists", apperrors.ErrConflict, m.AccountID, entry.EntryID)
		}
		if acc.DebitTotal.LessThan(m.Debit) || acc.CreditTotal.LessThan(m.Credit) {
			return fmt.Errorf("%w: reverting entry %s would drive totals of account %s negative",
				apperrors.ErrConflict, entry.EntryID, m.AccountID)
		}
		if err := accounts.IncrementTotals(ctx, m.AccountID, m.Debit.Neg(), m.Credit.Neg()); err != nil {
			s.LogError(ctx, err, "Failed to revert ledger movement",
				slog.String("entry_id", entry.EntryID), slog.String("account_id", m.AccountID))
			return fmt.Errorf("failed to revert movement on account %s: %w", m.AccountID, err)
		}
	}
	return nil
}

func (s *ledgerService) GetBalance(ctx context.Context, workplaceID, accountID string, asOf *time.Time) (*domain.AccountBalance, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account for balance", slog.String("account_id", accountID))
		return nil, err
	}
	if acc.WorkplaceID != workplaceID {
		return nil, apperrors.ErrNotFound
	}

	debit, credit := acc.DebitTotal, acc.CreditTotal
	if asOf != nil {
		debit, credit, err = s.accountRepo.SumAppliedMovements(ctx, accountID, *asOf)
		if err != nil {
			s.LogError(ctx, err, "Failed to sum account movements", slog.String("account_id", accountID))
			return nil, fmt.Errorf("failed to compute balance as of %s: %w", asOf.Format("2006-01-02"), err)
		}
	}

	return &domain.AccountBalance{
		AccountID:   acc.AccountID,
		AccountType: acc.AccountType,
		DebitTotal:  debit,
		CreditTotal: credit,
		Balance:     domain.SignedBalance(acc.AccountType, debit, credit),
	}, nil
}
