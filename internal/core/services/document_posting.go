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
	"github.com/google/uuid"
)

// documentPostingService turns invoices and payments into posted journal entries. Every
// account is resolved before anything is persisted; the draft and its posting share one
// unit of work.
type documentPostingService struct {
	BaseService
	journal  *journalService
	resolver portssvc.AccountResolverSvc
	repo     portsrepo.DeterminationReader
}

// newDocumentPostingService creates the invoice and payment adapters on top of a journal service.
func newDocumentPostingService(journal *journalService, resolver portssvc.AccountResolverSvc, repo portsrepo.DeterminationReader) *documentPostingService {
	return &documentPostingService{
		BaseService: BaseService{clock: journal.clock},
		journal:     journal,
		resolver:    resolver,
		repo:        repo,
	}
}

var _ portssvc.DocumentPostingSvc = (*documentPostingService)(nil)

// sourceLockName guards the one-entry-per-document rule across instances.
func sourceLockName(src domain.SourceDocument) string {
	return fmt.Sprintf("lock:source:%s:%s", src.Type, src.ID)
}

// createAndPost saves entry as a draft and posts it in the same unit of work. A document
// that already produced an entry is rejected with apperrors.ErrDuplicate.
func (s *documentPostingService) createAndPost(ctx context.Context, entry domain.JournalEntry, actor domain.Actor) (*domain.JournalEntry, error) {
	src := *entry.Source
	err := s.journal.locks.WithLock(ctx, sourceLockName(src), func(ctx context.Context) error {
		return s.journal.uow.WithTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
			existing, err := repos.Entries.FindEntryBySource(ctx, entry.WorkplaceID, src)
			if err == nil && existing != nil {
				return fmt.Errorf("%w: %s %s was already posted as entry %s", apperrors.ErrDuplicate, src.Type, src.ID, existing.EntryID)
			}
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			if err := repos.Entries.SaveEntry(ctx, entry); err != nil {
				return err
			}
			return s.journal.postInTx(ctx, repos, &entry, actor)
		})
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *documentPostingService) resolve(ctx context.Context, rc domain.ResolutionContext) (string, error) {
	res, err := s.resolver.Resolve(ctx, rc)
	if err != nil {
		return "", err
	}
	return res.AccountID, nil
}

func newDocumentEntry(workplaceID, journalCode, description, currency string, src domain.SourceDocument, lines []domain.JournalLine, audit domain.AuditFields) domain.JournalEntry {
	entryID := uuid.NewString()
	return domain.JournalEntry{
		EntryID:      entryID,
		WorkplaceID:  workplaceID,
		JournalCode:  journalCode,
		Description:  description,
		CurrencyCode: currency,
		Status:       domain.Draft,
		Lines:        assignLineIDs(lines, entryID),
		Source:       &src,
		Version:      1,
		AuditFields:  audit,
	}
}

func logDocumentPosted(ctx context.Context, s *BaseService, kind string, docID string, entry *domain.JournalEntry) {
	s.LogInfo(ctx, kind+" posted",
		slog.String("document_id", docID),
		slog.String("entry_id", entry.EntryID),
		slog.String("number", entry.Number))
}
