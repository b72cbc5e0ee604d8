package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the lifecycle state of a journal entry.
type JournalStatus string

const (
	Draft     JournalStatus = "DRAFT"
	Approved  JournalStatus = "APPROVED"
	Posted    JournalStatus = "POSTED"
	Cancelled JournalStatus = "CANCELLED"
	Reversed  JournalStatus = "REVERSED"
)

// transitions lists, for each status, the statuses it may move to.
var transitions = map[JournalStatus][]JournalStatus{
	Draft:     {Approved, Posted},
	Approved:  {Posted},
	Posted:    {Cancelled, Reversed, Draft},
	Cancelled: {Draft},
	Reversed:  {},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s JournalStatus) CanTransitionTo(next JournalStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsEditable reports whether header and lines of an entry in this status may change.
func (s JournalStatus) IsEditable() bool {
	return s == Draft
}

// IsValid reports whether s is a known status.
func (s JournalStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// DocumentType identifies the kind of business document an entry was generated from.
type DocumentType string

const (
	DocumentManual  DocumentType = "MANUAL"
	DocumentInvoice DocumentType = "INVOICE"
	DocumentPayment DocumentType = "PAYMENT"
)

// SourceDocument links an entry back to the document that produced it.
type SourceDocument struct {
	Type DocumentType `json:"type"`
	ID   string       `json:"id"`
}

// Well-known journal codes.
const (
	JournalGeneral   = "GEN"
	JournalSales     = "SAL"
	JournalPurchases = "PUR"
	JournalBank      = "BNK"
)

// JournalEntry is the aggregate root of a double-entry accounting fact.
type JournalEntry struct {
	EntryID      string          `json:"entryID"`
	WorkplaceID  string          `json:"workplaceID"`
	JournalCode  string          `json:"journalCode"`
	Number       string          `json:"number,omitempty"` // assigned on first post
	EntryDate    time.Time       `json:"entryDate"`
	Description  string          `json:"description"`
	CurrencyCode string          `json:"currencyCode"`
	Status       JournalStatus   `json:"status"`
	Lines        []JournalLine   `json:"lines"`
	Source       *SourceDocument `json:"source,omitempty"`

	ReversalOfID *string `json:"reversalOfID,omitempty"`
	ReversedByID *string `json:"reversedByID,omitempty"`

	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy *string    `json:"approvedBy,omitempty"`
	PostedAt   *time.Time `json:"postedAt,omitempty"`
	PostedBy   *string    `json:"postedBy,omitempty"`

	CancelReason   *string    `json:"cancelReason,omitempty"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy    *string    `json:"cancelledBy,omitempty"`
	LedgerReverted bool       `json:"ledgerReverted"`

	// LedgerApplied is true while the account totals include this entry's lines.
	LedgerApplied bool `json:"ledgerApplied"`

	ReconciliationID *string `json:"reconciliationID,omitempty"`
	Version          int64   `json:"version"`
	AuditFields
}

// JournalLine is one debit or credit of a journal entry. Exactly one of Debit and
// Credit is non-zero.
type JournalLine struct {
	LineID       string           `json:"lineID"`
	EntryID      string           `json:"entryID"`
	Position     int              `json:"position"`
	AccountID    string           `json:"accountID"`
	Debit        decimal.Decimal  `json:"debit"`
	Credit       decimal.Decimal  `json:"credit"`
	ThirdPartyID *string          `json:"thirdPartyID,omitempty"`
	CostCenterID *string          `json:"costCenterID,omitempty"`
	ProductID    *string          `json:"productID,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`  // informational only
	UnitPrice    *decimal.Decimal `json:"unitPrice,omitempty"` // informational only
	Notes        string           `json:"notes,omitempty"`
}

// Movement returns the ledger movement the line produces.
func (l JournalLine) Movement() Movement {
	return Movement{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit}
}

// Mirror returns a copy of the line with debit and credit swapped and identity cleared.
func (l JournalLine) Mirror() JournalLine {
	m := l
	m.LineID = ""
	m.EntryID = ""
	m.Debit, m.Credit = l.Credit, l.Debit
	return m
}

// Totals returns the sum of debits and credits over all lines.
func (e *JournalEntry) Totals() (decimal.Decimal, decimal.Decimal) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// AccountIDs returns the distinct account ids referenced by the lines, in line order.
func (e *JournalEntry) AccountIDs() []string {
	seen := make(map[string]struct{}, len(e.Lines))
	ids := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	return ids
}

// Movements returns the ledger movements of all lines.
func (e *JournalEntry) Movements() []Movement {
	out := make([]Movement, len(e.Lines))
	for i, l := range e.Lines {
		out[i] = l.Movement()
	}
	return out
}

// IsReversal reports whether the entry reverses another one.
func (e *JournalEntry) IsReversal() bool {
	return e.ReversalOfID != nil
}

// DocumentType returns the source document type, MANUAL when the entry has no source.
func (e *JournalEntry) DocumentType() DocumentType {
	if e.Source == nil || e.Source.Type == "" {
		return DocumentManual
	}
	return e.Source.Type
}

// EnsureTransition returns an *InvalidStateTransitionError if the entry cannot move to next.
func (e *JournalEntry) EnsureTransition(next JournalStatus) error {
	if !e.Status.CanTransitionTo(next) {
		return &InvalidStateTransitionError{EntryID: e.EntryID, Current: e.Status, Requested: next}
	}
	return nil
}
