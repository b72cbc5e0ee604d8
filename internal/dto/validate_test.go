package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidate_JournalEntryRequest(t *testing.T) {
	valid := CreateJournalEntryRequest{
		EntryDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Description:  "rent",
		CurrencyCode: "EUR",
		Lines: []JournalLineRequest{
			{AccountID: "a", Debit: decimal.NewFromInt(10)},
			{AccountID: "b", Credit: decimal.NewFromInt(10)},
		},
	}
	assert.NoError(t, Validate(valid))

	negative := valid
	negative.Lines = []JournalLineRequest{
		{AccountID: "a", Debit: decimal.NewFromInt(-10)},
		{AccountID: "b", Credit: decimal.NewFromInt(10)},
	}
	err := Validate(negative)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Contains(t, err.Error(), "Debit")

	noCurrency := valid
	noCurrency.CurrencyCode = ""
	assert.True(t, errors.Is(Validate(noCurrency), apperrors.ErrValidation))
}

func TestValidate_PaymentAmountMustBePositive(t *testing.T) {
	req := ConfirmPaymentRequest{
		PaymentID:     "p-1",
		Direction:     "CUSTOMER",
		ThirdPartyID:  "tp",
		BankAccountID: "bank",
		PaymentDate:   time.Now(),
		CurrencyCode:  "EUR",
		Amount:        decimal.Zero,
	}
	assert.Error(t, Validate(req))

	req.Amount = decimal.RequireFromString("0.01")
	assert.NoError(t, Validate(req))
}
