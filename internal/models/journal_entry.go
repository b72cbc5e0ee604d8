package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID          string        `db:"entry_id"`
	WorkplaceID      string        `db:"workplace_id"`
	JournalCode      string        `db:"journal_code"`
	Number           *string       `db:"number"`
	EntryDate        time.Time     `db:"entry_date"`
	Description      string        `db:"description"`
	CurrencyCode     string        `db:"currency_code"`
	Status           JournalStatus `db:"status"`
	SourceType       *string       `db:"source_type"`
	SourceID         *string       `db:"source_id"`
	ReversalOfID     *string       `db:"reversal_of_id"`
	ReversedByID     *string       `db:"reversed_by_id"`
	ApprovedAt       *time.Time    `db:"approved_at"`
	ApprovedBy       *string       `db:"approved_by"`
	PostedAt         *time.Time    `db:"posted_at"`
	PostedBy         *string       `db:"posted_by"`
	CancelReason     *string       `db:"cancel_reason"`
	CancelledAt      *time.Time    `db:"cancelled_at"`
	CancelledBy      *string       `db:"cancelled_by"`
	LedgerReverted   bool          `db:"ledger_reverted"`
	LedgerApplied    bool          `db:"ledger_applied"`
	ReconciliationID *string       `db:"reconciliation_id"`
	Version          int64         `db:"version"`
	AuditFields
}

// JournalLine is a row of the journal_entry_lines table.
type JournalLine struct {
	LineID       string           `db:"line_id"`
	EntryID      string           `db:"entry_id"`
	Position     int              `db:"position"`
	AccountID    string           `db:"account_id"`
	Debit        decimal.Decimal  `db:"debit"`
	Credit       decimal.Decimal  `db:"credit"`
	ThirdPartyID *string          `db:"third_party_id"`
	CostCenterID *string          `db:"cost_center_id"`
	ProductID    *string          `db:"product_id"`
	Quantity     *decimal.Decimal `db:"quantity"`
	UnitPrice    *decimal.Decimal `db:"unit_price"`
	Notes        string           `db:"notes"`
}
