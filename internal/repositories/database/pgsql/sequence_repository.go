package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
)

// PgxSequenceRepository hands out entry numbers. The row lock taken by the upsert is held
// until the surrounding transaction ends, so a rolled back post leaves no gap.
type PgxSequenceRepository struct {
	db querier
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

func (r *PgxSequenceRepository) NextValue(ctx context.Context, workplaceID, journalCode, period string) (int64, error) {
	query := `
		INSERT INTO entry_sequences (workplace_id, journal_code, period, last_value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (workplace_id, journal_code, period)
		DO UPDATE SET last_value = entry_sequences.last_value + 1
		RETURNING last_value;
	`
	var value int64
	if err := r.db.QueryRow(ctx, query, workplaceID, journalCode, period).Scan(&value); err != nil {
		return 0, mapPgError(err, "failed to allocate number for journal "+journalCode)
	}
	return value, nil
}
