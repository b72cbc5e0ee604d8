package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
)

// entryNumber formats a sequence value as JOURNAL/YYYY-MM/00001.
func entryNumber(journalCode, period string, seq int64) string {
	return fmt.Sprintf("%s/%s/%05d", journalCode, period, seq)
}

func (s *journalService) Approve(ctx context.Context, workplaceID, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
	entry, err := s.withLockedEntry(ctx, workplaceID, entryID, func(ctx context.Context, repos portsrepo.TxRepositories, entry *domain.JournalEntry) error {
		if err := entry.EnsureTransition(domain.Approved); err != nil {
			return err
		}
		accounts, err := s.accountRepo.FindAccountsByIDs(ctx, entry.AccountIDs())
		if err != nil {
			return fmt.Errorf("failed to load accounts of entry %s: %w", entryID, err)
		}
		if err := entry.Validate(accounts, s.precision); err != nil {
			return err
		}

		now := s.now()
		entry.Status = domain.Approved
		entry.ApprovedAt = &now
		entry.ApprovedBy = &actor.UserID
		touch(&entry.AuditFields, actor, now)

		expected := entry.Version
		entry.Version++
		return repos.Entries.UpdateEntryState(ctx, *entry, expected)
	})
	if err != nil {
		s.LogError(ctx, err, "Approve rejected", slog.String("entry_id", entryID))
		return nil, err
	}
	s.LogInfo(ctx, "Entry approved", slog.String("entry_id", entryID), slog.String("user_id", actor.UserID))
	return entry, nil
}

func (s *journalService) Post(ctx context.Context, workplaceID, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
	entry, err := s.withLockedEntry(ctx, workplaceID, entryID, func(ctx context.Context, repos portsrepo.TxRepositories, entry *domain.JournalEntry) error {
		return s.postInTx(ctx, repos, entry, actor)
	})
	if err != nil {
		s.LogError(ctx, err, "Post rejected", slog.String("entry_id", entryID))
		return nil, err
	}
	s.LogInfo(ctx, "Entry posted",
		slog.String("entry_id", entryID),
		slog.String("number", entry.Number),
		slog.String("user_id", actor.UserID))
	return entry, nil
}

// postInTx moves a DRAFT or APPROVED entry to POSTED inside an open unit of work. The
// accounts are locked and the entry validated against the locked rows before any total
// changes. An entry whose movements are still in the totals (reset after an in-place
// cancel) is not applied a second time.
func (s *journalService) postInTx(ctx context.Context, repos portsrepo.TxRepositories, entry *domain.JournalEntry, actor domain.Actor) error {
	if err := entry.EnsureTransition(domain.Posted); err != nil {
		return err
	}

	if entry.LedgerApplied {
		locked, err := repos.Accounts.FindAccountsByIDsForUpdate(ctx, entry.AccountIDs())
		if err != nil {
			return fmt.Errorf("failed to lock accounts of entry %s: %w", entry.EntryID, err)
		}
		if err := entry.Validate(locked, s.precision); err != nil {
			return err
		}
	} else if err := s.ledger.ApplyEntry(ctx, repos.Accounts, entry); err != nil {
		return err
	}

	if entry.Number == "" {
		period := entry.EntryDate.Format("2006-01")
		seq, err := repos.Sequences.NextValue(ctx, entry.WorkplaceID, entry.JournalCode, period)
		if err != nil {
			return fmt.Errorf("failed to allocate number for entry %s: %w", entry.EntryID, err)
		}
		entry.Number = entryNumber(entry.JournalCode, period, seq)
	}

	now := s.now()
	entry.Status = domain.Posted
	entry.PostedAt = &now
	entry.PostedBy = &actor.UserID
	entry.LedgerApplied = true
	entry.LedgerReverted = false
	touch(&entry.AuditFields, actor, now)

	expected := entry.Version
	entry.Version++
	return repos.Entries.UpdateEntryState(ctx, *entry, expected)
}

func (s *journalService) Cancel(ctx context.Context, workplaceID, entryID, reason string, actor domain.Actor) (*domain.JournalEntry, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: a cancellation reason is required", apperrors.ErrValidation)
	}

	var policy domain.CancellationPolicy
	entry, err := s.withLockedEntry(ctx, workplaceID, entryID, func(ctx context.Context, repos portsrepo.TxRepositories, entry *domain.JournalEntry) error {
		policy = s.policies.For(entry.DocumentType())
		if policy == domain.CancelByReversal {
			_, err := s.reverseInTx(ctx, repos, entry, reason, nil, actor, true)
			return err
		}

		if err := entry.EnsureTransition(domain.Cancelled); err != nil {
			return err
		}
		if entry.ReversedByID != nil {
			return &domain.InvalidStateTransitionError{
				EntryID: entryID, Current: entry.Status, Requested: domain.Cancelled,
				Detail: "entry has already been reversed",
			}
		}
		if policy == domain.CancelInPlaceRevertLedger && entry.LedgerApplied {
			if err := s.ledger.RevertEntry(ctx, repos.Accounts, entry); err != nil {
				return err
			}
			entry.LedgerApplied = false
			entry.LedgerReverted = true
		}

		now := s.now()
		entry.Status = domain.Cancelled
		entry.CancelReason = &reason
		entry.CancelledAt = &now
		entry.CancelledBy = &actor.UserID
		touch(&entry.AuditFields, actor, now)

		expected := entry.Version
		entry.Version++
		return repos.Entries.UpdateEntryState(ctx, *entry, expected)
	})
	if err != nil {
		s.LogError(ctx, err, "Cancel rejected", slog.String("entry_id", entryID))
		return nil, err
	}
	s.LogInfo(ctx, "Entry cancelled",
		slog.String("entry_id", entryID),
		slog.String("policy", string(policy)),
		slog.String("user_id", actor.UserID))
	return entry, nil
}

func (s *journalService) ResetToDraft(ctx context.Context, workplaceID, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
	entry, err := s.withLockedEntry(ctx, workplaceID, entryID, func(ctx context.Context, repos portsrepo.TxRepositories, entry *domain.JournalEntry) error {
		if err := entry.EnsureTransition(domain.Draft); err != nil {
			return err
		}
		if entry.ReconciliationID != nil {
			return &domain.InvalidStateTransitionError{
				EntryID: entryID, Current: entry.Status, Requested: domain.Draft,
				Detail: "entry is reconciled",
			}
		}
		if entry.ReversalOfID != nil || entry.ReversedByID != nil {
			return &domain.InvalidStateTransitionError{
				EntryID: entryID, Current: entry.Status, Requested: domain.Draft,
				Detail: "entry is linked to a reversal",
			}
		}

		// Only a posted entry is taken out of the totals. A cancelled one keeps whatever
		// its cancellation left in place.
		if entry.Status == domain.Posted && entry.LedgerApplied {
			if err := s.ledger.RevertEntry(ctx, repos.Accounts, entry); err != nil {
				return err
			}
			entry.LedgerApplied = false
		}

		now := s.now()
		entry.Status = domain.Draft
		entry.ApprovedAt, entry.ApprovedBy = nil, nil
		entry.PostedAt, entry.PostedBy = nil, nil
		entry.CancelReason, entry.CancelledAt, entry.CancelledBy = nil, nil, nil
		entry.LedgerReverted = false
		touch(&entry.AuditFields, actor, now)

		expected := entry.Version
		entry.Version++
		return repos.Entries.UpdateEntryState(ctx, *entry, expected)
	})
	if err != nil {
		s.LogError(ctx, err, "Reset to draft rejected", slog.String("entry_id", entryID))
		return nil, err
	}
	s.LogInfo(ctx, "Entry reset to draft", slog.String("entry_id", entryID), slog.String("user_id", actor.UserID))
	return entry, nil
}

func (s *journalService) MarkReconciled(ctx context.Context, workplaceID, entryID, reconciliationID string, actor domain.Actor) (*domain.JournalEntry, error) {
	if strings.TrimSpace(reconciliationID) == "" {
		return nil, fmt.Errorf("%w: reconciliation id is required", apperrors.ErrValidation)
	}
	entry, err := s.withLockedEntry(ctx, workplaceID, entryID, func(ctx context.Context, repos portsrepo.TxRepositories, entry *domain.JournalEntry) error {
		if entry.Status != domain.Posted {
			return &domain.InvalidStateTransitionError{
				EntryID: entryID, Current: entry.Status, Requested: entry.Status,
				Detail: "only posted entries can be reconciled",
			}
		}
		if entry.ReconciliationID != nil {
			if *entry.ReconciliationID == reconciliationID {
				return nil
			}
			return fmt.Errorf("%w: entry %s is already reconciled under %s", apperrors.ErrConflict, entryID, *entry.ReconciliationID)
		}

		entry.ReconciliationID = &reconciliationID
		touch(&entry.AuditFields, actor, s.now())

		expected := entry.Version
		entry.Version++
		return repos.Entries.UpdateEntryState(ctx, *entry, expected)
	})
	if err != nil {
		s.LogError(ctx, err, "Mark reconciled rejected", slog.String("entry_id", entryID))
		return nil, err
	}
	s.LogInfo(ctx, "Entry reconciled", slog.String("entry_id", entryID), slog.String("reconciliation_id", reconciliationID))
	return entry, nil
}
