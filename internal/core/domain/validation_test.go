package domain_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func leaf(id string) domain.Account {
	return domain.Account{AccountID: id, WorkplaceID: "wp-1", AccountType: domain.Asset, AllowsMovements: true}
}

func TestValidateBalance(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr bool
	}{
		{
			name: "balanced",
			lines: []domain.JournalLine{
				{AccountID: "a", Debit: d("100")},
				{AccountID: "b", Credit: d("60")},
				{AccountID: "c", Credit: d("40")},
			},
		},
		{
			name: "off by one",
			lines: []domain.JournalLine{
				{AccountID: "a", Debit: d("100")},
				{AccountID: "b", Credit: d("59")},
			},
			wantErr: true,
		},
		{
			name: "difference below precision",
			lines: []domain.JournalLine{
				{AccountID: "a", Debit: d("10.001")},
				{AccountID: "b", Credit: d("10.00")},
			},
			wantErr: true,
		},
		{
			name: "difference at precision",
			lines: []domain.JournalLine{
				{AccountID: "a", Debit: d("10.01")},
				{AccountID: "b", Credit: d("10.00")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.JournalEntry{Lines: tt.lines}
			err := entry.ValidateBalance()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var unbalanced *domain.UnbalancedEntryError
			require.True(t, errors.As(err, &unbalanced))
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
			debit, credit := entry.Totals()
			assert.True(t, debit.Equal(unbalanced.DebitTotal))
			assert.True(t, credit.Equal(unbalanced.CreditTotal))
		})
	}
}

func TestValidateLines(t *testing.T) {
	parent := leaf("parent")
	parent.HasChildren = true
	noMoves := leaf("summary")
	noMoves.AllowsMovements = false
	foreign := leaf("foreign")
	foreign.WorkplaceID = "wp-2"

	accounts := map[string]domain.Account{
		"a":       leaf("a"),
		"b":       leaf("b"),
		"parent":  parent,
		"summary": noMoves,
		"foreign": foreign,
	}

	tests := []struct {
		name       string
		lines      []domain.JournalLine
		wantIndex  int
		wantReason string
		wantCount  int
	}{
		{
			name:      "single line",
			lines:     []domain.JournalLine{{AccountID: "a", Debit: d("1")}},
			wantCount: 1,
		},
		{
			name: "both sides",
			lines: []domain.JournalLine{
				{AccountID: "a", Debit: d("1"), Credit: d("1")},
				{AccountID: "b", Credit: d("1")},
			},
			wantIndex:  0,
			wantReason: domain.ReasonBothSides,
		},
		{
			name: "negative credit",
			lines: []domain.JournalLine{
				{AccountID: "a", Debit: d("1")},
				{AccountID: "b", Credit: d("-1")},
			},
			wantIndex:  1,
			wantReason: domain.ReasonNegative,
		},
		{
			name: "zero line",
			lines: []domain.JournalLine{
				{AccountID: "a", Debit: d("1")},
				{AccountID: "b"},
			},
			wantIndex:  1,
			wantReason: domain.ReasonNoAmount,
		},
		{
			name: "unknown account",
			lines: []domain.JournalLine{
				{AccountID: "a", Debit: d("1")},
				{AccountID: "zzz", Credit: d("1")},
			},
			wantIndex:  1,
			wantReason: domain.ReasonUnknownAccount,
		},
		{
			name: "account with children",
			lines: []domain.JournalLine{
				{AccountID: "parent", Debit: d("1")},
				{AccountID: "b", Credit: d("1")},
			},
			wantIndex:  0,
			wantReason: domain.ReasonNonLeafAccount,
		},
		{
			name: "account without movements",
			lines: []domain.JournalLine{
				{AccountID: "a", Debit: d("1")},
				{AccountID: "summary", Credit: d("1")},
			},
			wantIndex:  1,
			wantReason: domain.ReasonNonLeafAccount,
		},
		{
			name: "account of another workplace",
			lines: []domain.JournalLine{
				{AccountID: "a", Debit: d("1")},
				{AccountID: "foreign", Credit: d("1")},
			},
			wantIndex:  1,
			wantReason: domain.ReasonOtherWorkplace,
		},
		{
			name: "amount finer than the currency",
			lines: []domain.JournalLine{
				{AccountID: "a", Debit: d("10.00")},
				{AccountID: "b", Credit: d("10.004")},
			},
			wantIndex:  1,
			wantReason: domain.ReasonExcessPrecision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.JournalEntry{WorkplaceID: "wp-1", Lines: tt.lines}
			err := entry.ValidateLines(accounts, domain.DefaultCurrencyPrecision)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))

			if tt.wantCount > 0 {
				var insufficient *domain.InsufficientLinesError
				require.True(t, errors.As(err, &insufficient))
				assert.Equal(t, tt.wantCount, insufficient.Count)
				return
			}
			lineErr, ok := domain.AsInvalidLine(err)
			require.True(t, ok, "expected InvalidLineError, got %v", err)
			assert.Equal(t, tt.wantIndex, lineErr.Index)
			assert.Equal(t, tt.wantReason, lineErr.Reason)
		})
	}
}

func TestValidateLines_Valid(t *testing.T) {
	entry := domain.JournalEntry{
		WorkplaceID: "wp-1",
		Lines: []domain.JournalLine{
			{AccountID: "a", Debit: d("5")},
			{AccountID: "b", Credit: d("5")},
		},
	}
	accounts := map[string]domain.Account{"a": leaf("a"), "b": leaf("b")}
	assert.NoError(t, entry.Validate(accounts, 2))
}
