package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
	Cost      AccountType = "COST"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense, Cost:
		return true
	}
	return false
}

// IsDebitNormal reports whether the natural balance of the type is on the debit side.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense || t == Cost
}

// Account is a node of a tenant's chart of accounts.
// Totals are only changed through the account ledger.
type Account struct {
	AccountID       string          `json:"accountID"`
	WorkplaceID     string          `json:"workplaceID"`
	Code            string          `json:"code"` // unique per workplace
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	ParentAccountID string          `json:"parentAccountID,omitempty"`
	Description     string          `json:"description,omitempty"`
	AllowsMovements bool            `json:"allowsMovements"`
	HasChildren     bool            `json:"hasChildren"`
	IsActive        bool            `json:"isActive"`
	DebitTotal      decimal.Decimal `json:"debitTotal"`
	CreditTotal     decimal.Decimal `json:"creditTotal"`
	AuditFields
}

// IsLeaf reports whether the account may receive movements.
func (a Account) IsLeaf() bool {
	return a.AllowsMovements && !a.HasChildren
}

// Balance returns the signed balance according to the account type's normal side.
func (a Account) Balance() decimal.Decimal {
	return SignedBalance(a.AccountType, a.DebitTotal, a.CreditTotal)
}

// SignedBalance computes the balance of a (debit, credit) pair for an account type.
func SignedBalance(t AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if t.IsDebitNormal() {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// Movement is a single debit or credit applied to an account's running totals.
type Movement struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// AccountBalance is the balance of one account, optionally as of a date.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	AccountType AccountType     `json:"accountType"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	Balance     decimal.Decimal `json:"balance"`
}
