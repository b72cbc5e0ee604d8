package mapping

import (
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/SscSPs/backoffice_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		EntryID:          d.EntryID,
		WorkplaceID:      d.WorkplaceID,
		JournalCode:      d.JournalCode,
		EntryDate:        d.EntryDate,
		Description:      d.Description,
		CurrencyCode:     d.CurrencyCode,
		Status:           models.JournalStatus(d.Status),
		ReversalOfID:     d.ReversalOfID,
		ReversedByID:     d.ReversedByID,
		ApprovedAt:       d.ApprovedAt,
		ApprovedBy:       d.ApprovedBy,
		PostedAt:         d.PostedAt,
		PostedBy:         d.PostedBy,
		CancelReason:     d.CancelReason,
		CancelledAt:      d.CancelledAt,
		CancelledBy:      d.CancelledBy,
		LedgerReverted:   d.LedgerReverted,
		LedgerApplied:    d.LedgerApplied,
		ReconciliationID: d.ReconciliationID,
		Version:          d.Version,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if d.Number != "" {
		n := d.Number
		m.Number = &n
	}
	if d.Source != nil {
		t, id := string(d.Source.Type), d.Source.ID
		m.SourceType, m.SourceID = &t, &id
	}
	return m
}

// ToDomainJournalEntry converts a model JournalEntry and its lines to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	d := domain.JournalEntry{
		EntryID:          m.EntryID,
		WorkplaceID:      m.WorkplaceID,
		JournalCode:      m.JournalCode,
		EntryDate:        m.EntryDate,
		Description:      m.Description,
		CurrencyCode:     m.CurrencyCode,
		Status:           domain.JournalStatus(m.Status),
		ReversalOfID:     m.ReversalOfID,
		ReversedByID:     m.ReversedByID,
		ApprovedAt:       m.ApprovedAt,
		ApprovedBy:       m.ApprovedBy,
		PostedAt:         m.PostedAt,
		PostedBy:         m.PostedBy,
		CancelReason:     m.CancelReason,
		CancelledAt:      m.CancelledAt,
		CancelledBy:      m.CancelledBy,
		LedgerReverted:   m.LedgerReverted,
		LedgerApplied:    m.LedgerApplied,
		ReconciliationID: m.ReconciliationID,
		Version:          m.Version,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if m.Number != nil {
		d.Number = *m.Number
	}
	if m.SourceType != nil && m.SourceID != nil {
		d.Source = &domain.SourceDocument{Type: domain.DocumentType(*m.SourceType), ID: *m.SourceID}
	}
	d.Lines = make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		d.Lines[i] = ToDomainJournalLine(l)
	}
	return d
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		EntryID:      d.EntryID,
		Position:     d.Position,
		AccountID:    d.AccountID,
		Debit:        d.Debit,
		Credit:       d.Credit,
		ThirdPartyID: d.ThirdPartyID,
		CostCenterID: d.CostCenterID,
		ProductID:    d.ProductID,
		Quantity:     d.Quantity,
		UnitPrice:    d.UnitPrice,
		Notes:        d.Notes,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		EntryID:      m.EntryID,
		Position:     m.Position,
		AccountID:    m.AccountID,
		Debit:        m.Debit,
		Credit:       m.Credit,
		ThirdPartyID: m.ThirdPartyID,
		CostCenterID: m.CostCenterID,
		ProductID:    m.ProductID,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		Notes:        m.Notes,
	}
}
