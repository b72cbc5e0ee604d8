package dto

import (
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit or credit line of a journal entry request.
type JournalLineRequest struct {
	AccountID    string           `json:"accountID" binding:"required" validate:"required"`
	Debit        decimal.Decimal  `json:"debit" validate:"gte=0"`
	Credit       decimal.Decimal  `json:"credit" validate:"gte=0"`
	ThirdPartyID *string          `json:"thirdPartyID"`
	CostCenterID *string          `json:"costCenterID"`
	ProductID    *string          `json:"productID"`
	Quantity     *decimal.Decimal `json:"quantity"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	Notes        string           `json:"notes"`
}

// CreateJournalEntryRequest defines the data needed to create a draft entry.
type CreateJournalEntryRequest struct {
	JournalCode  string                 `json:"journalCode" validate:"omitempty,max=8"`
	EntryDate    time.Time              `json:"entryDate" binding:"required" validate:"required"`
	Description  string                 `json:"description" binding:"required" validate:"required"`
	CurrencyCode string                 `json:"currencyCode" binding:"required,len=3" validate:"required,len=3"`
	Lines        []JournalLineRequest   `json:"lines" binding:"required,dive" validate:"required,dive"`
	Source       *domain.SourceDocument `json:"source"`
}

// UpdateJournalEntryRequest replaces header and lines of a draft.
type UpdateJournalEntryRequest struct {
	EntryDate    time.Time            `json:"entryDate" binding:"required" validate:"required"`
	Description  string               `json:"description" binding:"required" validate:"required"`
	CurrencyCode string               `json:"currencyCode" binding:"required,len=3" validate:"required,len=3"`
	Lines        []JournalLineRequest `json:"lines" binding:"required,dive" validate:"required,dive"`
	Version      *int64               `json:"version"` // optional optimistic check
}

// CancelEntryRequest carries the reason for a cancellation.
type CancelEntryRequest struct {
	Reason string `json:"reason" binding:"required" validate:"required"`
}

// ReverseEntryRequest carries the reason and optional date of a reversal.
type ReverseEntryRequest struct {
	Reason       string     `json:"reason" binding:"required" validate:"required"`
	ReversalDate *time.Time `json:"reversalDate"`
}

// MarkReconciledRequest links a posted entry to a settled reconciliation.
type MarkReconciledRequest struct {
	ReconciliationID string `json:"reconciliationID" binding:"required" validate:"required"`
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit       int        `form:"limit,default=20" validate:"gte=0,lte=200"`
	NextToken   *string    `form:"nextToken"`
	Status      string     `form:"status" validate:"omitempty,oneof=DRAFT APPROVED POSTED CANCELLED REVERSED"`
	JournalCode string     `form:"journalCode"`
	From        *time.Time `form:"from" time_format:"2006-01-02"`
	To          *time.Time `form:"to" time_format:"2006-01-02"`
}

// JournalLineResponse defines the data returned for a line.
type JournalLineResponse struct {
	LineID       string           `json:"lineID"`
	Position     int              `json:"position"`
	AccountID    string           `json:"accountID"`
	Debit        decimal.Decimal  `json:"debit"`
	Credit       decimal.Decimal  `json:"credit"`
	ThirdPartyID *string          `json:"thirdPartyID,omitempty"`
	CostCenterID *string          `json:"costCenterID,omitempty"`
	ProductID    *string          `json:"productID,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unitPrice,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID          string                 `json:"entryID"`
	WorkplaceID      string                 `json:"workplaceID"`
	JournalCode      string                 `json:"journalCode"`
	Number           string                 `json:"number,omitempty"`
	EntryDate        time.Time              `json:"entryDate"`
	Description      string                 `json:"description"`
	CurrencyCode     string                 `json:"currencyCode"`
	Status           domain.JournalStatus   `json:"status"`
	DebitTotal       decimal.Decimal        `json:"debitTotal"`
	CreditTotal      decimal.Decimal        `json:"creditTotal"`
	Source           *domain.SourceDocument `json:"source,omitempty"`
	ReversalOfID     *string                `json:"reversalOfID,omitempty"`
	ReversedByID     *string                `json:"reversedByID,omitempty"`
	ApprovedAt       *time.Time             `json:"approvedAt,omitempty"`
	ApprovedBy       *string                `json:"approvedBy,omitempty"`
	PostedAt         *time.Time             `json:"postedAt,omitempty"`
	PostedBy         *string                `json:"postedBy,omitempty"`
	CancelReason     *string                `json:"cancelReason,omitempty"`
	CancelledAt      *time.Time             `json:"cancelledAt,omitempty"`
	CancelledBy      *string                `json:"cancelledBy,omitempty"`
	LedgerReverted   bool                   `json:"ledgerReverted"`
	ReconciliationID *string                `json:"reconciliationID,omitempty"`
	Version          int64                  `json:"version"`
	Lines            []JournalLineResponse  `json:"lines"`
	CreatedAt        time.Time              `json:"createdAt"`
	CreatedBy        string                 `json:"createdBy"`
	LastUpdatedAt    time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy    string                 `json:"lastUpdatedBy"`
}

// ListJournalEntriesResponse wraps a page of entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	debit, credit := e.Totals()
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:       l.LineID,
			Position:     l.Position,
			AccountID:    l.AccountID,
			Debit:        l.Debit,
			Credit:       l.Credit,
			ThirdPartyID: l.ThirdPartyID,
			CostCenterID: l.CostCenterID,
			ProductID:    l.ProductID,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			Notes:        l.Notes,
		}
	}
	return JournalEntryResponse{
		EntryID:          e.EntryID,
		WorkplaceID:      e.WorkplaceID,
		JournalCode:      e.JournalCode,
		Number:           e.Number,
		EntryDate:        e.EntryDate,
		Description:      e.Description,
		CurrencyCode:     e.CurrencyCode,
		Status:           e.Status,
		DebitTotal:       debit,
		CreditTotal:      credit,
		Source:           e.Source,
		ReversalOfID:     e.ReversalOfID,
		ReversedByID:     e.ReversedByID,
		ApprovedAt:       e.ApprovedAt,
		ApprovedBy:       e.ApprovedBy,
		PostedAt:         e.PostedAt,
		PostedBy:         e.PostedBy,
		CancelReason:     e.CancelReason,
		CancelledAt:      e.CancelledAt,
		CancelledBy:      e.CancelledBy,
		LedgerReverted:   e.LedgerReverted,
		ReconciliationID: e.ReconciliationID,
		Version:          e.Version,
		Lines:            lines,
		CreatedAt:        e.CreatedAt,
		CreatedBy:        e.CreatedBy,
		LastUpdatedAt:    e.LastUpdatedAt,
		LastUpdatedBy:    e.LastUpdatedBy,
	}
}

// ToJournalEntryResponses converts a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToJournalEntryResponse(&entries[i])
	}
	return out
}

// ToDomainLines converts request lines to domain lines, numbering positions from 1.
func ToDomainLines(lines []JournalLineRequest) []domain.JournalLine {
	out := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		out[i] = domain.JournalLine{
			Position:     i + 1,
			AccountID:    l.AccountID,
			Debit:        l.Debit,
			Credit:       l.Credit,
			ThirdPartyID: l.ThirdPartyID,
			CostCenterID: l.CostCenterID,
			ProductID:    l.ProductID,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			Notes:        l.Notes,
		}
	}
	return out
}
