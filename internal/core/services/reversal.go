package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
	"github.com/google/uuid"
)

func (s *journalService) Reverse(ctx context.Context, workplaceID, entryID string, req dto.ReverseEntryRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	var reversal *domain.JournalEntry
	_, err := s.withLockedEntry(ctx, workplaceID, entryID, func(ctx context.Context, repos portsrepo.TxRepositories, original *domain.JournalEntry) error {
		var err error
		reversal, err = s.reverseInTx(ctx, repos, original, strings.TrimSpace(req.Reason), req.ReversalDate, actor, false)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Reverse rejected", slog.String("entry_id", entryID))
		return nil, err
	}
	s.LogInfo(ctx, "Entry reversed",
		slog.String("entry_id", entryID),
		slog.String("reversal_entry_id", reversal.EntryID),
		slog.String("reversal_number", reversal.Number))
	return reversal, nil
}

// reverseInTx creates and posts the mirror of original inside an open unit of work and
// links both entries. With markReversed the original also moves to REVERSED, which is
// how the reversal cancellation policy cancels an entry.
func (s *journalService) reverseInTx(
	ctx context.Context,
	repos portsrepo.TxRepositories,
	original *domain.JournalEntry,
	reason string,
	reversalDate *time.Time,
	actor domain.Actor,
	markReversed bool,
) (*domain.JournalEntry, error) {
	requested := domain.Posted
	if markReversed {
		requested = domain.Reversed
	}
	stateErr := func(detail string) error {
		return &domain.InvalidStateTransitionError{
			EntryID: original.EntryID, Current: original.Status, Requested: requested, Detail: detail,
		}
	}
	switch {
	case original.Status != domain.Posted:
		return nil, stateErr("only posted entries can be reversed")
	case original.IsReversal():
		return nil, stateErr("a reversal cannot be reversed")
	case original.ReversedByID != nil:
		return nil, stateErr("entry has already been reversed")
	}

	now := s.now()
	entryDate := original.EntryDate
	if reversalDate != nil {
		entryDate = dateOnly(*reversalDate)
	}
	if entryDate.Before(original.EntryDate) {
		return nil, fmt.Errorf("%w: reversal date precedes the original entry date", apperrors.ErrValidation)
	}

	mirrorID := uuid.NewString()
	lines := make([]domain.JournalLine, len(original.Lines))
	for i, l := range original.Lines {
		lines[i] = l.Mirror()
	}
	description := fmt.Sprintf("Reversal of %s", original.Number)
	if reason != "" {
		description += ": " + reason
	}
	originalID := original.EntryID
	mirror := domain.JournalEntry{
		EntryID:      mirrorID,
		WorkplaceID:  original.WorkplaceID,
		JournalCode:  original.JournalCode,
		EntryDate:    entryDate,
		Description:  description,
		CurrencyCode: original.CurrencyCode,
		Status:       domain.Draft,
		Lines:        assignLineIDs(lines, mirrorID),
		ReversalOfID: &originalID,
		Version:      1,
		AuditFields:  newAudit(actor, now),
	}

	if err := repos.Entries.SaveEntry(ctx, mirror); err != nil {
		return nil, fmt.Errorf("failed to save reversal of %s: %w", original.EntryID, err)
	}
	if err := s.postInTx(ctx, repos, &mirror, actor); err != nil {
		return nil, err
	}

	original.ReversedByID = &mirror.EntryID
	if markReversed {
		if err := original.EnsureTransition(domain.Reversed); err != nil {
			return nil, err
		}
		cancelledAt := s.now()
		original.Status = domain.Reversed
		original.CancelReason = &reason
		original.CancelledAt = &cancelledAt
		original.CancelledBy = &actor.UserID
	}
	touch(&original.AuditFields, actor, s.now())

	expected := original.Version
	original.Version++
	if err := repos.Entries.UpdateEntryState(ctx, *original, expected); err != nil {
		return nil, err
	}
	return &mirror, nil
}
