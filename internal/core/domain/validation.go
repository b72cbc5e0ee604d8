package domain

// ValidateBalance checks that debits equal credits exactly. Line amounts are held to the
// currency precision by the shape checks, so no rounding tolerance applies here.
func (e *JournalEntry) ValidateBalance() error {
	debit, credit := e.Totals()
	if !debit.Equal(credit) {
		return &UnbalancedEntryError{DebitTotal: debit, CreditTotal: credit}
	}
	return nil
}

// ValidateLines checks line shape and that every line targets an existing leaf
// account of the entry's workplace. accounts is keyed by account id.
func (e *JournalEntry) ValidateLines(accounts map[string]Account, precision int32) error {
	if len(e.Lines) < 2 {
		return &InsufficientLinesError{Count: len(e.Lines)}
	}
	for i, l := range e.Lines {
		if err := validateLineShape(i, l, precision); err != nil {
			return err
		}
		acc, ok := accounts[l.AccountID]
		if !ok {
			return &InvalidLineError{Index: i, LineID: l.LineID, Field: FieldAccount, Reason: ReasonUnknownAccount}
		}
		if e.WorkplaceID != "" && acc.WorkplaceID != e.WorkplaceID {
			return &InvalidLineError{Index: i, LineID: l.LineID, Field: FieldAccount, Reason: ReasonOtherWorkplace}
		}
		if !acc.IsLeaf() {
			return &InvalidLineError{Index: i, LineID: l.LineID, Field: FieldAccount, Reason: ReasonNonLeafAccount}
		}
	}
	return nil
}

// ValidateShape runs the checks that need no account data. Drafts are checked with it
// on save; the full validation happens before leaving DRAFT.
func (e *JournalEntry) ValidateShape(precision int32) error {
	for i, l := range e.Lines {
		if err := validateLineShape(i, l, precision); err != nil {
			return err
		}
	}
	return nil
}

// Validate runs ValidateLines then ValidateBalance.
func (e *JournalEntry) Validate(accounts map[string]Account, precision int32) error {
	if err := e.ValidateLines(accounts, precision); err != nil {
		return err
	}
	return e.ValidateBalance()
}

func validateLineShape(i int, l JournalLine, precision int32) error {
	switch {
	case l.AccountID == "":
		return &InvalidLineError{Index: i, LineID: l.LineID, Field: FieldAccount, Reason: ReasonUnknownAccount}
	case l.Debit.IsNegative():
		return &InvalidLineError{Index: i, LineID: l.LineID, Field: FieldDebit, Reason: ReasonNegative}
	case l.Credit.IsNegative():
		return &InvalidLineError{Index: i, LineID: l.LineID, Field: FieldCredit, Reason: ReasonNegative}
	case !l.Debit.IsZero() && !l.Credit.IsZero():
		return &InvalidLineError{Index: i, LineID: l.LineID, Field: FieldAmount, Reason: ReasonBothSides}
	case l.Debit.IsZero() && l.Credit.IsZero():
		return &InvalidLineError{Index: i, LineID: l.LineID, Field: FieldAmount, Reason: ReasonNoAmount}
	case !l.Debit.Equal(l.Debit.Round(precision)):
		return &InvalidLineError{Index: i, LineID: l.LineID, Field: FieldDebit, Reason: ReasonExcessPrecision}
	case !l.Credit.Equal(l.Credit.Round(precision)):
		return &InvalidLineError{Index: i, LineID: l.LineID, Field: FieldCredit, Reason: ReasonExcessPrecision}
	}
	return nil
}
