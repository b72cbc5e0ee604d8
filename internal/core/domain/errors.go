package domain

import (
	"errors"
	"fmt"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Line field names reported by InvalidLineError.
const (
	FieldAccount = "accountID"
	FieldDebit   = "debit"
	FieldCredit  = "credit"
	FieldAmount  = "amount"
)

// Reasons reported by InvalidLineError.
const (
	ReasonBothSides      = "both debit and credit are non-zero"
	ReasonNoAmount       = "debit and credit are both zero"
	ReasonNegative       = "amount must not be negative"
	ReasonUnknownAccount = "account does not exist"
	ReasonNonLeafAccount = "NonLeafAccount"
	ReasonOtherWorkplace = "account belongs to another workplace"

	ReasonExcessPrecision = "amount has more decimal places than the currency allows"
)

// ErrEntryNotEditable is returned when a non-draft entry is modified or deleted.
var ErrEntryNotEditable = fmt.Errorf("%w: journal entry is not a draft", apperrors.ErrConflict)

// UnbalancedEntryError reports an entry whose debits and credits differ.
type UnbalancedEntryError struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry is unbalanced: debits %s, credits %s", e.DebitTotal.String(), e.CreditTotal.String())
}

func (e *UnbalancedEntryError) Unwrap() error { return apperrors.ErrValidation }

// InsufficientLinesError reports an entry with fewer than two lines.
type InsufficientLinesError struct {
	Count int
}

func (e *InsufficientLinesError) Error() string {
	return fmt.Sprintf("journal entry needs at least 2 lines, got %d", e.Count)
}

func (e *InsufficientLinesError) Unwrap() error { return apperrors.ErrValidation }

// InvalidLineError reports a malformed line.
type InvalidLineError struct {
	Index  int
	LineID string
	Field  string
	Reason string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Index, e.Field, e.Reason)
}

func (e *InvalidLineError) Unwrap() error { return apperrors.ErrValidation }

// IsNonLeaf reports whether the line was rejected for targeting a non-leaf account.
func (e *InvalidLineError) IsNonLeaf() bool {
	return e.Reason == ReasonNonLeafAccount
}

// InvalidStateTransitionError reports an operation attempted from an illegal state.
type InvalidStateTransitionError struct {
	EntryID   string
	Current   JournalStatus
	Requested JournalStatus
	Detail    string
}

func (e *InvalidStateTransitionError) Error() string {
	msg := fmt.Sprintf("journal entry %s cannot move from %s to %s", e.EntryID, e.Current, e.Requested)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *InvalidStateTransitionError) Unwrap() error { return apperrors.ErrConflict }

// NoDefaultAccountConfiguredError reports that no resolution level produced an account.
type NoDefaultAccountConfiguredError struct {
	Purpose AccountPurpose
}

func (e *NoDefaultAccountConfiguredError) Error() string {
	return fmt.Sprintf("no account configured for purpose %s", e.Purpose)
}

func (e *NoDefaultAccountConfiguredError) Unwrap() error { return apperrors.ErrConfiguration }

// AsInvalidLine extracts an *InvalidLineError from err.
func AsInvalidLine(err error) (*InvalidLineError, bool) {
	var lineErr *InvalidLineError
	if errors.As(err, &lineErr) {
		return lineErr, true
	}
	return nil, false
}
