package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
)

// EntryFilter narrows ListEntries results. Zero values do not filter.
type EntryFilter struct {
	Status      domain.JournalStatus
	JournalCode string
	From        *time.Time
	To          *time.Time
}

// JournalEntryReader defines read operations for journal entries.
type JournalEntryReader interface {
	// FindEntryByID retrieves an entry with its lines ordered by position.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entries of a workplace, newest entry date first, using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, workplaceID string, filter EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalEntryRepositoryFacade combines the non-transactional journal entry interfaces.
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
}

// JournalEntryWriter defines write operations for journal entries. All of them run
// inside a unit of work.
type JournalEntryWriter interface {
	// SaveEntry inserts a new entry and its lines.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// ReplaceDraft updates header fields and replaces all lines of a draft.
	ReplaceDraft(ctx context.Context, entry domain.JournalEntry, expectedVersion int64) error

	// UpdateEntryState writes status, numbering, reversal links and audit fields.
	// It fails with apperrors.ErrConflict when the stored version differs from expectedVersion.
	UpdateEntryState(ctx context.Context, entry domain.JournalEntry, expectedVersion int64) error

	// DeleteEntry physically removes an entry and its lines.
	DeleteEntry(ctx context.Context, entryID string) error
}

// JournalEntryTxRepository is the journal entry store bound to a unit of work.
type JournalEntryTxRepository interface {
	JournalEntryWriter

	// FindEntryByIDForUpdate loads an entry and row-locks it for the rest of the transaction.
	FindEntryByIDForUpdate(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindEntryBySource retrieves the entry generated from a source document, if any.
	FindEntryBySource(ctx context.Context, workplaceID string, source domain.SourceDocument) (*domain.JournalEntry, error)
}

// SequenceRepository allocates entry numbers.
type SequenceRepository interface {
	// NextValue returns the next value of the (workplace, journal, period) sequence, starting at 1.
	NextValue(ctx context.Context, workplaceID, journalCode, period string) (int64, error)
}
