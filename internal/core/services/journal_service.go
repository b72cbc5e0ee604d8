package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_ledger/internal/core/ports/services"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
	"github.com/SscSPs/backoffice_ledger/internal/platform/lock"
	"github.com/SscSPs/backoffice_ledger/internal/utils/accounting"
	"github.com/google/uuid"
)

// journalService implements JournalSvcFacade: draft maintenance, reads and every
// lifecycle transition of a journal entry.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalEntryReader
	accountRepo portsrepo.AccountReader
	uow         portsrepo.UnitOfWork
	ledger      portssvc.LedgerSvc
	locks       lock.Manager
	policies    domain.CancellationPolicies
	precision   int32
}

// JournalOption is a functional option for configuring the journal service
type JournalOption func(*journalService)

// WithLockManager serializes transitions of one entry across instances.
func WithLockManager(m lock.Manager) JournalOption {
	return func(s *journalService) {
		if m != nil {
			s.locks = m
		}
	}
}

// WithCancellationPolicies sets the cancel behaviour per source document type.
func WithCancellationPolicies(p domain.CancellationPolicies) JournalOption {
	return func(s *journalService) {
		s.policies = p
	}
}

// WithPrecision sets the number of decimal places balances are checked at.
func WithPrecision(precision int32) JournalOption {
	return func(s *journalService) {
		s.precision = precision
	}
}

// WithClock replaces the time source used for audit and posting timestamps.
func WithClock(now func() time.Time) JournalOption {
	return func(s *journalService) {
		s.clock = newPostingClock(now)
	}
}

func newJournalService(repos portsrepo.RepositoryProvider, ledger portssvc.LedgerSvc, options ...JournalOption) *journalService {
	svc := &journalService{
		BaseService: BaseService{clock: newPostingClock(nil)},
		journalRepo: repos.JournalRepo,
		accountRepo: repos.AccountRepo,
		uow:         repos.UnitOfWork,
		ledger:      ledger,
		locks:       lock.NopManager{},
		precision:   domain.DefaultCurrencyPrecision,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// NewJournalService creates a new journal service with the provided options
func NewJournalService(repos portsrepo.RepositoryProvider, ledger portssvc.LedgerSvc, options ...JournalOption) portssvc.JournalSvcFacade {
	return newJournalService(repos, ledger, options...)
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// dateOnly drops the time of day; entry dates are calendar dates.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalizeJournalCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return domain.JournalGeneral
	}
	return code
}

func assignLineIDs(lines []domain.JournalLine, entryID string) []domain.JournalLine {
	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].EntryID = entryID
		lines[i].Position = i + 1
	}
	return lines
}

// withLockedEntry runs fn in one unit of work with the entry row locked. fn mutates entry
// in place; the mutated entry is returned when the unit commits.
func (s *journalService) withLockedEntry(
	ctx context.Context,
	workplaceID, entryID string,
	fn func(ctx context.Context, repos portsrepo.TxRepositories, entry *domain.JournalEntry) error,
) (*domain.JournalEntry, error) {
	var result *domain.JournalEntry
	err := s.locks.WithLock(ctx, lock.EntryLockName(entryID), func(ctx context.Context) error {
		return s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
			entry, err := repos.Entries.FindEntryByIDForUpdate(ctx, entryID)
			if err != nil {
				return err
			}
			if entry.WorkplaceID != workplaceID {
				return apperrors.ErrNotFound
			}
			if err := fn(ctx, repos, entry); err != nil {
				return err
			}
			result = entry
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *journalService) CreateDraft(ctx context.Context, workplaceID string, req dto.CreateJournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.Source != nil {
		if req.Source.ID == "" || (req.Source.Type != domain.DocumentInvoice && req.Source.Type != domain.DocumentPayment && req.Source.Type != domain.DocumentManual) {
			return nil, fmt.Errorf("%w: invalid source document", apperrors.ErrValidation)
		}
	}

	now := s.now()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		EntryID:      entryID,
		WorkplaceID:  workplaceID,
		JournalCode:  normalizeJournalCode(req.JournalCode),
		EntryDate:    dateOnly(req.EntryDate),
		Description:  req.Description,
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		Status:       domain.Draft,
		Lines:        assignLineIDs(dto.ToDomainLines(req.Lines), entryID),
		Source:       req.Source,
		Version:      1,
		AuditFields:  newAudit(actor, now),
	}
	if err := entry.ValidateShape(s.precision); err != nil {
		return nil, err
	}

	err := s.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		return repos.Entries.SaveEntry(ctx, entry)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save draft entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Draft entry created", slog.String("entry_id", entryID), slog.Int("lines", len(entry.Lines)))
	return &entry, nil
}

func (s *journalService) UpdateDraft(ctx context.Context, workplaceID, entryID string, req dto.UpdateJournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	entry, err := s.withLockedEntry(ctx, workplaceID, entryID, func(ctx context.Context, repos portsrepo.TxRepositories, entry *domain.JournalEntry) error {
		if !entry.Status.IsEditable() {
			return domain.ErrEntryNotEditable
		}
		if req.Version != nil && *req.Version != entry.Version {
			return fmt.Errorf("%w: entry %s is at version %d, not %d", apperrors.ErrConflict, entryID, entry.Version, *req.Version)
		}

		lines := assignLineIDs(dto.ToDomainLines(req.Lines), entryID)
		if entry.LedgerApplied && !sameMovements(entry.Lines, lines) {
			return fmt.Errorf("%w: entry %s still carries ledger movements from a cancelled posting; its lines cannot change",
				apperrors.ErrConflict, entryID)
		}

		entry.EntryDate = dateOnly(req.EntryDate)
		entry.Description = req.Description
		entry.CurrencyCode = strings.ToUpper(req.CurrencyCode)
		entry.Lines = lines
		if err := entry.ValidateShape(s.precision); err != nil {
			return err
		}
		touch(&entry.AuditFields, actor, s.now())

		expected := entry.Version
		entry.Version++
		return repos.Entries.ReplaceDraft(ctx, *entry, expected)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update draft entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Draft entry updated", slog.String("entry_id", entryID), slog.Int64("version", entry.Version))
	return entry, nil
}

func sameMovements(a, b []domain.JournalLine) bool {
	toMovements := func(lines []domain.JournalLine) []domain.Movement {
		out := make([]domain.Movement, len(lines))
		for i, l := range lines {
			out[i] = l.Movement()
		}
		return accounting.AggregateMovements(out)
	}
	ma, mb := toMovements(a), toMovements(b)
	if len(ma) != len(mb) {
		return false
	}
	for i := range ma {
		if ma[i].AccountID != mb[i].AccountID || !ma[i].Debit.Equal(mb[i].Debit) || !ma[i].Credit.Equal(mb[i].Credit) {
			return false
		}
	}
	return true
}

func (s *journalService) DeleteDraft(ctx context.Context, workplaceID, entryID string, actor domain.Actor) error {
	_, err := s.withLockedEntry(ctx, workplaceID, entryID, func(ctx context.Context, repos portsrepo.TxRepositories, entry *domain.JournalEntry) error {
		if !entry.Status.IsEditable() {
			return domain.ErrEntryNotEditable
		}
		if entry.LedgerApplied {
			return fmt.Errorf("%w: entry %s still carries ledger movements", apperrors.ErrConflict, entryID)
		}
		return repos.Entries.DeleteEntry(ctx, entryID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete draft entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Draft entry deleted", slog.String("entry_id", entryID), slog.String("user_id", actor.UserID))
	return nil
}

func (s *journalService) GetEntry(ctx context.Context, workplaceID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	if entry.WorkplaceID != workplaceID {
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, workplaceID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	if err := dto.Validate(params); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	filter := portsrepo.EntryFilter{
		Status:      domain.JournalStatus(params.Status),
		JournalCode: strings.ToUpper(params.JournalCode),
		From:        params.From,
		To:          params.To,
	}

	entries, next, err := s.journalRepo.ListEntries(ctx, workplaceID, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	return &dto.ListJournalEntriesResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: next,
	}, nil
}
