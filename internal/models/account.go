package models

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

// Account is a row of the accounts table.
type Account struct {
	AccountID       string          `db:"account_id"`
	WorkplaceID     string          `db:"workplace_id"`
	Code            string          `db:"code"`
	Name            string          `db:"name"`
	AccountType     AccountType     `db:"account_type"`
	ParentAccountID *string         `db:"parent_account_id"` // Nullable
	Description     string          `db:"description"`
	AllowsMovements bool            `db:"allows_movements"`
	HasChildren     bool            `db:"has_children"` // derived in queries
	IsActive        bool            `db:"is_active"`
	DebitTotal      decimal.Decimal `db:"debit_total"`
	CreditTotal     decimal.Decimal `db:"credit_total"`
	AuditFields
}
