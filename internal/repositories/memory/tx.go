package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// txStore is the view of a Store handed to a unit of work.
type txStore struct {
	st *Store
}

var (
	_ portsrepo.AccountTxRepository      = (*txStore)(nil)
	_ portsrepo.JournalEntryTxRepository = (*txStore)(nil)
	_ portsrepo.SequenceRepository       = (*txStore)(nil)
)

func (t *txStore) FindAccountsByIDsForUpdate(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	ids := append([]string(nil), accountIDs...)
	sort.Strings(ids)
	t.st.mu.RLock()
	defer t.st.mu.RUnlock()
	return t.st.findAccounts(ids), nil
}

func (t *txStore) SaveAccount(ctx context.Context, account domain.Account) error {
	return t.st.SaveAccount(ctx, account)
}

func (t *txStore) UpdateAccount(ctx context.Context, account domain.Account) error {
	return t.st.UpdateAccount(ctx, account)
}

func (t *txStore) IncrementTotals(_ context.Context, accountID string, debitDelta, creditDelta decimal.Decimal) error {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	if err := t.st.applyErrs[accountID]; err != nil {
		return err
	}
	acc, ok := t.st.s.accounts[accountID]
	if !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	acc.DebitTotal = acc.DebitTotal.Add(debitDelta)
	acc.CreditTotal = acc.CreditTotal.Add(creditDelta)
	t.st.s.accounts[accountID] = acc
	return nil
}

func (t *txStore) FindEntryByIDForUpdate(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return t.st.FindEntryByID(ctx, entryID)
}

func (t *txStore) FindEntryBySource(_ context.Context, workplaceID string, source domain.SourceDocument) (*domain.JournalEntry, error) {
	t.st.mu.RLock()
	defer t.st.mu.RUnlock()
	for _, e := range t.st.s.entries {
		if e.WorkplaceID == workplaceID && e.Source != nil && *e.Source == source {
			e = cloneEntry(e)
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (t *txStore) SaveEntry(_ context.Context, entry domain.JournalEntry) error {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	if _, ok := t.st.s.entries[entry.EntryID]; ok {
		return fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrDuplicate, entry.EntryID)
	}
	if entry.Source != nil {
		for _, e := range t.st.s.entries {
			if e.WorkplaceID == entry.WorkplaceID && e.Source != nil && *e.Source == *entry.Source {
				return fmt.Errorf("%w: %s %s already has journal entry %s", apperrors.ErrDuplicate, entry.Source.Type, entry.Source.ID, e.EntryID)
			}
		}
	}
	if err := t.checkNumber(entry); err != nil {
		return err
	}
	t.st.s.entries[entry.EntryID] = cloneEntry(entry)
	return nil
}

func (t *txStore) ReplaceDraft(_ context.Context, entry domain.JournalEntry, expectedVersion int64) error {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	stored, ok := t.st.s.entries[entry.EntryID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if stored.Version != expectedVersion {
		return fmt.Errorf("%w: journal entry %s was modified concurrently", apperrors.ErrConflict, entry.EntryID)
	}
	t.st.s.entries[entry.EntryID] = cloneEntry(entry)
	return nil
}

func (t *txStore) UpdateEntryState(_ context.Context, entry domain.JournalEntry, expectedVersion int64) error {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	stored, ok := t.st.s.entries[entry.EntryID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if stored.Version != expectedVersion {
		return fmt.Errorf("%w: journal entry %s was modified concurrently", apperrors.ErrConflict, entry.EntryID)
	}
	if err := t.checkNumber(entry); err != nil {
		return err
	}
	// Lines are immutable through this path.
	entry.Lines = stored.Lines
	t.st.s.entries[entry.EntryID] = cloneEntry(entry)
	return nil
}

func (t *txStore) checkNumber(entry domain.JournalEntry) error {
	if entry.Number == "" {
		return nil
	}
	for id, e := range t.st.s.entries {
		if id != entry.EntryID && e.WorkplaceID == entry.WorkplaceID && e.JournalCode == entry.JournalCode && e.Number == entry.Number {
			return fmt.Errorf("%w: entry number %s already used", apperrors.ErrDuplicate, entry.Number)
		}
	}
	return nil
}

func (t *txStore) DeleteEntry(_ context.Context, entryID string) error {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	if _, ok := t.st.s.entries[entryID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(t.st.s.entries, entryID)
	return nil
}

func (t *txStore) NextValue(_ context.Context, workplaceID, journalCode, period string) (int64, error) {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	key := workplaceID + "|" + journalCode + "|" + period
	t.st.s.sequences[key]++
	return t.st.s.sequences[key], nil
}
