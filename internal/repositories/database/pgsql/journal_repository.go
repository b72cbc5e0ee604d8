package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_ledger/internal/models"
	"github.com/SscSPs/backoffice_ledger/internal/utils/mapping"
	"github.com/SscSPs/backoffice_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

// PgxJournalRepository stores journal entries and their lines.
type PgxJournalRepository struct {
	db querier
}

// NewPgxJournalRepository creates a new repository for journal entries.
func NewPgxJournalRepository(db querier) *PgxJournalRepository {
	return &PgxJournalRepository{db: db}
}

var (
	_ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalRepository)(nil)
	_ portsrepo.JournalEntryTxRepository     = (*PgxJournalRepository)(nil)
)

const selectEntrySQL = `
	SELECT e.entry_id, e.workplace_id, e.journal_code, e.number, e.entry_date, e.description,
	       e.currency_code, e.status, e.source_type, e.source_id, e.reversal_of_id, e.reversed_by_id,
	       e.approved_at, e.approved_by, e.posted_at, e.posted_by,
	       e.cancel_reason, e.cancelled_at, e.cancelled_by, e.ledger_reverted, e.ledger_applied,
	       e.reconciliation_id, e.version,
	       e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
	FROM journal_entries e`

const insertLineSQL = `
	INSERT INTO journal_entry_lines (
		line_id, entry_id, position, account_id, debit, credit,
		third_party_id, cost_center_id, product_id, quantity, unit_price, notes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID, &m.WorkplaceID, &m.JournalCode, &m.Number, &m.EntryDate, &m.Description,
		&m.CurrencyCode, &m.Status, &m.SourceType, &m.SourceID, &m.ReversalOfID, &m.ReversedByID,
		&m.ApprovedAt, &m.ApprovedBy, &m.PostedAt, &m.PostedBy,
		&m.CancelReason, &m.CancelledAt, &m.CancelledBy, &m.LedgerReverted, &m.LedgerApplied,
		&m.ReconciliationID, &m.Version,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveEntry inserts a new entry and its lines.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (
			entry_id, workplace_id, journal_code, number, entry_date, description, currency_code, status,
			source_type, source_id, reversal_of_id, reversed_by_id,
			approved_at, approved_by, posted_at, posted_by,
			cancel_reason, cancelled_at, cancelled_by, ledger_reverted, ledger_applied,
			reconciliation_id, version,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
		        $20, $21, $22, $23, $24, $25, $26, $27);
	`
	_, err := r.db.Exec(ctx, query,
		m.EntryID, m.WorkplaceID, m.JournalCode, m.Number, m.EntryDate, m.Description, m.CurrencyCode, m.Status,
		m.SourceType, m.SourceID, m.ReversalOfID, m.ReversedByID,
		m.ApprovedAt, m.ApprovedBy, m.PostedAt, m.PostedBy,
		m.CancelReason, m.CancelledAt, m.CancelledBy, m.LedgerReverted, m.LedgerApplied,
		m.ReconciliationID, m.Version,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to insert journal entry "+m.EntryID)
	}
	return r.insertLines(ctx, entry)
}

func (r *PgxJournalRepository) insertLines(ctx context.Context, entry domain.JournalEntry) error {
	if len(entry.Lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, l := range entry.Lines {
		ml := mapping.ToModelJournalLine(l)
		batch.Queue(insertLineSQL,
			ml.LineID, entry.EntryID, ml.Position, ml.AccountID, ml.Debit, ml.Credit,
			ml.ThirdPartyID, ml.CostCenterID, ml.ProductID, ml.Quantity, ml.UnitPrice, ml.Notes,
		)
	}
	// Close reports the first failing statement of the batch.
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return mapPgError(err, "failed to insert lines of journal entry "+entry.EntryID)
	}
	return nil
}

// ReplaceDraft updates the header of a draft and replaces its lines.
func (r *PgxJournalRepository) ReplaceDraft(ctx context.Context, entry domain.JournalEntry, expectedVersion int64) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		UPDATE journal_entries
		SET journal_code = $2, entry_date = $3, description = $4, currency_code = $5,
		    version = $6, last_updated_at = $7, last_updated_by = $8
		WHERE entry_id = $1 AND version = $9;
	`
	tag, err := r.db.Exec(ctx, query,
		m.EntryID, m.JournalCode, m.EntryDate, m.Description, m.CurrencyCode,
		m.Version, m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion,
	)
	if err != nil {
		return mapPgError(err, "failed to update journal entry "+m.EntryID)
	}
	if tag.RowsAffected() == 0 {
		return r.versionMiss(ctx, m.EntryID)
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM journal_entry_lines WHERE entry_id = $1;`, m.EntryID); err != nil {
		return mapPgError(err, "failed to delete lines of journal entry "+m.EntryID)
	}
	return r.insertLines(ctx, entry)
}

// UpdateEntryState writes everything except the lines, guarded by the version.
func (r *PgxJournalRepository) UpdateEntryState(ctx context.Context, entry domain.JournalEntry, expectedVersion int64) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		UPDATE journal_entries
		SET status = $2, number = $3, reversal_of_id = $4, reversed_by_id = $5,
		    approved_at = $6, approved_by = $7, posted_at = $8, posted_by = $9,
		    cancel_reason = $10, cancelled_at = $11, cancelled_by = $12,
		    ledger_reverted = $13, ledger_applied = $14, reconciliation_id = $15,
		    version = $16, last_updated_at = $17, last_updated_by = $18
		WHERE entry_id = $1 AND version = $19;
	`
	tag, err := r.db.Exec(ctx, query,
		m.EntryID, m.Status, m.Number, m.ReversalOfID, m.ReversedByID,
		m.ApprovedAt, m.ApprovedBy, m.PostedAt, m.PostedBy,
		m.CancelReason, m.CancelledAt, m.CancelledBy,
		m.LedgerReverted, m.LedgerApplied, m.ReconciliationID,
		m.Version, m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion,
	)
	if err != nil {
		return mapPgError(err, "failed to update state of journal entry "+m.EntryID)
	}
	if tag.RowsAffected() == 0 {
		return r.versionMiss(ctx, m.EntryID)
	}
	return nil
}

// versionMiss tells a missing row apart from a stale version after an UPDATE hit nothing.
func (r *PgxJournalRepository) versionMiss(ctx context.Context, entryID string) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE entry_id = $1)`, entryID).Scan(&exists)
	if err != nil {
		return mapPgError(err, "failed to check journal entry "+entryID)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("%w: journal entry %s was modified concurrently", apperrors.ErrConflict, entryID)
}

// DeleteEntry removes an entry; its lines go with it through ON DELETE CASCADE.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return mapPgError(err, "failed to delete journal entry "+entryID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindEntryByID retrieves an entry with its lines ordered by position.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return r.findOne(ctx, selectEntrySQL+` WHERE e.entry_id = $1`, entryID)
}

// FindEntryByIDForUpdate is FindEntryByID holding a row lock on the entry.
func (r *PgxJournalRepository) FindEntryByIDForUpdate(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return r.findOne(ctx, selectEntrySQL+` WHERE e.entry_id = $1 FOR UPDATE`, entryID)
}

// FindEntryBySource retrieves the entry generated from a source document.
func (r *PgxJournalRepository) FindEntryBySource(ctx context.Context, workplaceID string, source domain.SourceDocument) (*domain.JournalEntry, error) {
	query := selectEntrySQL + ` WHERE e.workplace_id = $1 AND e.source_type = $2 AND e.source_id = $3`
	return r.findOne(ctx, query, workplaceID, string(source.Type), source.ID)
}

func (r *PgxJournalRepository) findOne(ctx context.Context, query string, args ...any) (*domain.JournalEntry, error) {
	m, err := scanEntry(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to find journal entry")
	}
	lines, err := r.findLines(ctx, []string{m.EntryID})
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainJournalEntry(m, lines[m.EntryID])
	return &entry, nil
}

// findLines loads the lines of several entries grouped by entry id.
func (r *PgxJournalRepository) findLines(ctx context.Context, entryIDs []string) (map[string][]models.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, position, account_id, debit, credit,
		       third_party_id, cost_center_id, product_id, quantity, unit_price, notes
		FROM journal_entry_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, position;
	`
	rows, err := r.db.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, mapPgError(err, "failed to query journal entry lines")
	}
	defer rows.Close()

	byEntry := make(map[string][]models.JournalLine, len(entryIDs))
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(
			&l.LineID, &l.EntryID, &l.Position, &l.AccountID, &l.Debit, &l.Credit,
			&l.ThirdPartyID, &l.CostCenterID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry line: %w", err)
		}
		byEntry[l.EntryID] = append(byEntry[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating journal entry lines")
	}
	return byEntry, nil
}

// ListEntries retrieves entries of a workplace, newest first, using keyset pagination on
// (entry_date, created_at, entry_id).
func (r *PgxJournalRepository) ListEntries(ctx context.Context, workplaceID string, filter portsrepo.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := []any{workplaceID}
	query := selectEntrySQL + ` WHERE e.workplace_id = $1`
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		query += ` AND e.status = ` + arg(string(filter.Status))
	}
	if filter.JournalCode != "" {
		query += ` AND e.journal_code = ` + arg(filter.JournalCode)
	}
	if filter.From != nil {
		query += ` AND e.entry_date >= ` + arg(*filter.From)
	}
	if filter.To != nil {
		query += ` AND e.entry_date <= ` + arg(*filter.To)
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += fmt.Sprintf(` AND (e.entry_date, e.created_at, e.entry_id) < (%s, %s, %s)`,
			arg(cursor.EntryDate), arg(cursor.CreatedAt), arg(cursor.EntryID))
	}
	query += ` ORDER BY e.entry_date DESC, e.created_at DESC, e.entry_id DESC`
	if limit > 0 {
		query += ` LIMIT ` + arg(limit+1)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapPgError(err, "failed to list journal entries")
	}
	headers := make([]models.JournalEntry, 0)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		headers = append(headers, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, mapPgError(err, "error iterating journal entry rows")
	}

	var token *string
	if limit > 0 && len(headers) > limit {
		headers = headers[:limit]
		last := headers[limit-1]
		t := pagination.EncodeEntryCursor(pagination.EntryCursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, EntryID: last.EntryID})
		token = &t
	}
	if len(headers) == 0 {
		return []domain.JournalEntry{}, nil, nil
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.EntryID
	}
	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h, lines[h.EntryID])
	}
	return entries, token, nil
}
