// Package memory is an in-process implementation of the repository ports. Transactions
// are serialized and rolled back from a snapshot, which gives the same all-or-nothing
// behaviour as the Postgres implementation for a single process.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type state struct {
	accounts   map[string]domain.Account
	entries    map[string]domain.JournalEntry
	sequences  map[string]int64
	defaults   map[string]domain.CompanyDefaults
	products   map[string]domain.Product
	categories map[string]domain.ProductCategory
	parties    map[string]domain.ThirdParty
	partyTypes map[string]domain.ThirdPartyType
	banks      map[string]domain.BankAccount
}

func newState() state {
	return state{
		accounts:   map[string]domain.Account{},
		entries:    map[string]domain.JournalEntry{},
		sequences:  map[string]int64{},
		defaults:   map[string]domain.CompanyDefaults{},
		products:   map[string]domain.Product{},
		categories: map[string]domain.ProductCategory{},
		parties:    map[string]domain.ThirdParty{},
		partyTypes: map[string]domain.ThirdPartyType{},
		banks:      map[string]domain.BankAccount{},
	}
}

func (s state) clone() state {
	c := newState()
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.entries {
		c.entries[k] = cloneEntry(v)
	}
	for k, v := range s.sequences {
		c.sequences[k] = v
	}
	for k, v := range s.defaults {
		c.defaults[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.parties {
		c.parties[k] = v
	}
	for k, v := range s.partyTypes {
		c.partyTypes[k] = v
	}
	for k, v := range s.banks {
		c.banks[k] = v
	}
	return c
}

func cloneEntry(e domain.JournalEntry) domain.JournalEntry {
	lines := make([]domain.JournalLine, len(e.Lines))
	copy(lines, e.Lines)
	e.Lines = lines
	return e
}

// Store holds every repository in memory.
type Store struct {
	txMu sync.Mutex // one unit of work at a time
	mu   sync.RWMutex
	s    state

	applyErrs map[string]error
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{s: newState(), applyErrs: map[string]error{}}
}

var (
	_ portsrepo.UnitOfWork                    = (*Store)(nil)
	_ portsrepo.AccountRepositoryFacade       = (*Store)(nil)
	_ portsrepo.JournalEntryRepositoryFacade  = (*Store)(nil)
	_ portsrepo.DeterminationRepositoryFacade = (*Store)(nil)
)

// Provider returns a RepositoryProvider backed by the store.
func (st *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:       st,
		JournalRepo:       st,
		DeterminationRepo: st,
		UnitOfWork:        st,
	}
}

// InjectApplyError makes IncrementTotals fail for accountID. Passing nil clears it.
func (st *Store) InjectApplyError(accountID string, err error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if err == nil {
		delete(st.applyErrs, accountID)
		return
	}
	st.applyErrs[accountID] = err
}

// WithTx runs fn against the store and restores the previous state if fn fails.
// Writes made outside WithTx while fn runs are lost on rollback.
func (st *Store) WithTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	st.txMu.Lock()
	defer st.txMu.Unlock()

	st.mu.RLock()
	snapshot := st.s.clone()
	st.mu.RUnlock()

	tx := &txStore{st: st}
	repos := portsrepo.TxRepositories{Accounts: tx, Entries: tx, Sequences: tx}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}
	if err := fn(ctx, repos); err != nil {
		st.mu.Lock()
		st.s = snapshot
		st.mu.Unlock()
		return err
	}
	return nil
}

func (st *Store) withChildren(acc domain.Account) domain.Account {
	acc.HasChildren = false
	for _, other := range st.s.accounts {
		if other.ParentAccountID == acc.AccountID {
			acc.HasChildren = true
			break
		}
	}
	return acc
}

// --- accounts ---

func (st *Store) SaveAccount(_ context.Context, account domain.Account) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.s.accounts[account.AccountID]; ok {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	for _, other := range st.s.accounts {
		if other.WorkplaceID == account.WorkplaceID && other.Code == account.Code {
			return fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, account.Code)
		}
	}
	account.HasChildren = false
	st.s.accounts[account.AccountID] = account
	return nil
}

func (st *Store) UpdateAccount(_ context.Context, account domain.Account) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	stored, ok := st.s.accounts[account.AccountID]
	if !ok {
		return apperrors.ErrNotFound
	}
	stored.Name = account.Name
	stored.Description = account.Description
	stored.IsActive = account.IsActive
	stored.AllowsMovements = account.AllowsMovements
	stored.LastUpdatedAt = account.LastUpdatedAt
	stored.LastUpdatedBy = account.LastUpdatedBy
	st.s.accounts[account.AccountID] = stored
	return nil
}

func (st *Store) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	acc, ok := st.s.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	acc = st.withChildren(acc)
	return &acc, nil
}

func (st *Store) FindAccountsByIDs(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.findAccounts(accountIDs), nil
}

func (st *Store) findAccounts(accountIDs []string) map[string]domain.Account {
	out := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if acc, ok := st.s.accounts[id]; ok {
			out[id] = st.withChildren(acc)
		}
	}
	return out
}

func (st *Store) FindAccountByCode(_ context.Context, workplaceID, code string) (*domain.Account, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, acc := range st.s.accounts {
		if acc.WorkplaceID == workplaceID && acc.Code == code {
			acc = st.withChildren(acc)
			return &acc, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (st *Store) ListAccounts(_ context.Context, workplaceID string, limit int, nextToken *string) ([]domain.Account, *string, error) {
	after := ""
	if nextToken != nil && *nextToken != "" {
		key, err := pagination.DecodeKeyToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		after = key
	}

	st.mu.RLock()
	all := make([]domain.Account, 0)
	for _, acc := range st.s.accounts {
		if acc.WorkplaceID == workplaceID && acc.Code > after {
			all = append(all, st.withChildren(acc))
		}
	}
	st.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	if limit <= 0 || len(all) <= limit {
		return all, nil, nil
	}
	page := all[:limit]
	token := pagination.EncodeKeyToken(page[len(page)-1].Code)
	return page, &token, nil
}

func (st *Store) SumAppliedMovements(_ context.Context, accountID string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range st.s.entries {
		if !e.LedgerApplied || e.EntryDate.After(asOf) {
			continue
		}
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				debit = debit.Add(l.Debit)
				credit = credit.Add(l.Credit)
			}
		}
	}
	return debit, credit, nil
}

// --- journal entries (reads) ---

func (st *Store) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	e, ok := st.s.entries[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	e = cloneEntry(e)
	return &e, nil
}

func (st *Store) ListEntries(_ context.Context, workplaceID string, filter portsrepo.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	var cursor *pagination.EntryCursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	st.mu.RLock()
	matched := make([]domain.JournalEntry, 0)
	for _, e := range st.s.entries {
		if e.WorkplaceID != workplaceID || !matches(e, filter) {
			continue
		}
		if cursor != nil && !cursor.Before(e.EntryDate, e.CreatedAt, e.EntryID) {
			continue
		}
		matched = append(matched, cloneEntry(e))
	}
	st.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.After(b.EntryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.EntryID > b.EntryID
	})

	if limit <= 0 || len(matched) <= limit {
		return matched, nil, nil
	}
	page := matched[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeEntryCursor(pagination.EntryCursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, EntryID: last.EntryID})
	return page, &token, nil
}

func matches(e domain.JournalEntry, f portsrepo.EntryFilter) bool {
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.JournalCode != "" && e.JournalCode != f.JournalCode {
		return false
	}
	if f.From != nil && e.EntryDate.Before(*f.From) {
		return false
	}
	if f.To != nil && e.EntryDate.After(*f.To) {
		return false
	}
	return true
}

// Entries returns a snapshot of all stored entries, for assertions in tests.
func (st *Store) Entries() []domain.JournalEntry {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]domain.JournalEntry, 0, len(st.s.entries))
	for _, e := range st.s.entries {
		out = append(out, cloneEntry(e))
	}
	return out
}

// --- master data ---

func (st *Store) FindCompanyDefaults(_ context.Context, workplaceID string) (*domain.CompanyDefaults, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	d, ok := st.s.defaults[workplaceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &d, nil
}

func (st *Store) FindProductByID(_ context.Context, productID string) (*domain.Product, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	p, ok := st.s.products[productID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (st *Store) FindProductCategoryByID(_ context.Context, categoryID string) (*domain.ProductCategory, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	c, ok := st.s.categories[categoryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (st *Store) FindThirdPartyByID(_ context.Context, thirdPartyID string) (*domain.ThirdParty, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	p, ok := st.s.parties[thirdPartyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (st *Store) FindThirdPartyTypeByID(_ context.Context, typeID string) (*domain.ThirdPartyType, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	t, ok := st.s.partyTypes[typeID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (st *Store) FindBankAccountByID(_ context.Context, bankAccountID string) (*domain.BankAccount, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	b, ok := st.s.banks[bankAccountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &b, nil
}

func (st *Store) SaveCompanyDefaults(_ context.Context, defaults domain.CompanyDefaults) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.defaults[defaults.WorkplaceID] = defaults
	return nil
}

func (st *Store) SaveProduct(_ context.Context, product domain.Product) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.products[product.ProductID] = product
	return nil
}

func (st *Store) SaveProductCategory(_ context.Context, category domain.ProductCategory) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.categories[category.CategoryID] = category
	return nil
}

func (st *Store) SaveThirdParty(_ context.Context, party domain.ThirdParty) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.parties[party.ThirdPartyID] = party
	return nil
}

func (st *Store) SaveThirdPartyType(_ context.Context, partyType domain.ThirdPartyType) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.partyTypes[partyType.TypeID] = partyType
	return nil
}

func (st *Store) SaveBankAccount(_ context.Context, bankAccount domain.BankAccount) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.banks[bankAccount.BankAccountID] = bankAccount
	return nil
}
