package domain_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalStatus_CanTransitionTo(t *testing.T) {
	allowed := map[domain.JournalStatus][]domain.JournalStatus{
		domain.Draft:     {domain.Approved, domain.Posted},
		domain.Approved:  {domain.Posted},
		domain.Posted:    {domain.Cancelled, domain.Reversed, domain.Draft},
		domain.Cancelled: {domain.Draft},
	}
	all := []domain.JournalStatus{domain.Draft, domain.Approved, domain.Posted, domain.Cancelled, domain.Reversed}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestEnsureTransition(t *testing.T) {
	entry := domain.JournalEntry{EntryID: "e-1", Status: domain.Cancelled}

	err := entry.EnsureTransition(domain.Posted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	var stateErr *domain.InvalidStateTransitionError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, domain.Cancelled, stateErr.Current)
	assert.Equal(t, domain.Posted, stateErr.Requested)

	assert.NoError(t, entry.EnsureTransition(domain.Draft))
}

func TestJournalLine_Mirror(t *testing.T) {
	line := domain.JournalLine{LineID: "l-1", EntryID: "e-1", Position: 2, AccountID: "a", Debit: d("12.50"), Notes: "n"}
	m := line.Mirror()

	assert.Empty(t, m.LineID)
	assert.Empty(t, m.EntryID)
	assert.Equal(t, 2, m.Position)
	assert.True(t, m.Debit.IsZero())
	assert.True(t, m.Credit.Equal(d("12.50")))
	assert.Equal(t, "n", m.Notes)
}

func TestAccount_Balance(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		want        string
	}{
		{domain.Asset, "70"},
		{domain.Expense, "70"},
		{domain.Cost, "70"},
		{domain.Liability, "-70"},
		{domain.Equity, "-70"},
		{domain.Income, "-70"},
	}
	for _, tt := range tests {
		acc := domain.Account{AccountType: tt.accountType, DebitTotal: d("100"), CreditTotal: d("30")}
		assert.True(t, acc.Balance().Equal(d(tt.want)), "%s balance = %s", tt.accountType, acc.Balance())
	}
}

func TestEntry_AccountIDsAndDocumentType(t *testing.T) {
	entry := domain.JournalEntry{Lines: []domain.JournalLine{
		{AccountID: "b"}, {AccountID: "a"}, {AccountID: "b"},
	}}
	assert.Equal(t, []string{"b", "a"}, entry.AccountIDs())
	assert.Equal(t, domain.DocumentManual, entry.DocumentType())

	entry.Source = &domain.SourceDocument{Type: domain.DocumentInvoice, ID: "inv-1"}
	assert.Equal(t, domain.DocumentInvoice, entry.DocumentType())
}

func TestParseCancellationPolicy(t *testing.T) {
	p, err := domain.ParseCancellationPolicy("")
	require.NoError(t, err)
	assert.Equal(t, domain.CancelInPlace, p)

	p, err = domain.ParseCancellationPolicy("reversal")
	require.NoError(t, err)
	assert.Equal(t, domain.CancelByReversal, p)

	_, err = domain.ParseCancellationPolicy("shred")
	assert.True(t, errors.Is(err, apperrors.ErrConfiguration))

	policies := domain.CancellationPolicies{domain.DocumentPayment: domain.CancelInPlaceRevertLedger}
	assert.Equal(t, domain.CancelInPlaceRevertLedger, policies.For(domain.DocumentPayment))
	assert.Equal(t, domain.CancelInPlace, policies.For(domain.DocumentInvoice))
}
