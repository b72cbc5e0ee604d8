package services

import (
	"context"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries.
type JournalReaderSvc interface {
	GetEntry(ctx context.Context, workplaceID, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, workplaceID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines draft maintenance.
type JournalWriterSvc interface {
	CreateDraft(ctx context.Context, workplaceID string, req dto.CreateJournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error)
	UpdateDraft(ctx context.Context, workplaceID, entryID string, req dto.UpdateJournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error)
	DeleteDraft(ctx context.Context, workplaceID, entryID string, actor domain.Actor) error
}

// PostingSvc defines the lifecycle transitions of a journal entry. Each call is one
// atomic unit: either every effect lands or none does.
type PostingSvc interface {
	Approve(ctx context.Context, workplaceID, entryID string, actor domain.Actor) (*domain.JournalEntry, error)
	Post(ctx context.Context, workplaceID, entryID string, actor domain.Actor) (*domain.JournalEntry, error)
	Cancel(ctx context.Context, workplaceID, entryID, reason string, actor domain.Actor) (*domain.JournalEntry, error)
	// Reverse returns the newly posted reversal entry.
	Reverse(ctx context.Context, workplaceID, entryID string, req dto.ReverseEntryRequest, actor domain.Actor) (*domain.JournalEntry, error)
	ResetToDraft(ctx context.Context, workplaceID, entryID string, actor domain.Actor) (*domain.JournalEntry, error)
	MarkReconciled(ctx context.Context, workplaceID, entryID, reconciliationID string, actor domain.Actor) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	PostingSvc
}

// DocumentPostingSvc turns business documents into posted journal entries.
type DocumentPostingSvc interface {
	PostInvoice(ctx context.Context, invoice domain.Invoice, actor domain.Actor) (*domain.JournalEntry, error)
	ConfirmPayment(ctx context.Context, payment domain.Payment, actor domain.Actor) (*domain.JournalEntry, error)
}
