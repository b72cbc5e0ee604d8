package domain

// AccountPurpose names the role an account plays in a generated entry.
type AccountPurpose string

const (
	PurposeSaleIncome      AccountPurpose = "SALE_INCOME"
	PurposePurchaseExpense AccountPurpose = "PURCHASE_EXPENSE"
	PurposeTaxPayable      AccountPurpose = "TAX_PAYABLE"
	PurposeTaxReceivable   AccountPurpose = "TAX_RECEIVABLE"
	PurposeReceivable      AccountPurpose = "RECEIVABLE"
	PurposePayable         AccountPurpose = "PAYABLE"
	PurposeBank            AccountPurpose = "BANK"
)

// IsValid reports whether p is a known purpose.
func (p AccountPurpose) IsValid() bool {
	switch p {
	case PurposeSaleIncome, PurposePurchaseExpense, PurposeTaxPayable, PurposeTaxReceivable,
		PurposeReceivable, PurposePayable, PurposeBank:
		return true
	}
	return false
}

// ResolutionLevel identifies which strategy produced an account.
type ResolutionLevel string

const (
	LevelOverride       ResolutionLevel = "OVERRIDE"
	LevelEntity         ResolutionLevel = "ENTITY"
	LevelCategory       ResolutionLevel = "CATEGORY"
	LevelCompanyDefault ResolutionLevel = "COMPANY_DEFAULT"
)

// CompanyDefaults holds the per-workplace fallback accounts.
type CompanyDefaults struct {
	WorkplaceID              string  `json:"workplaceID"`
	SaleIncomeAccountID      *string `json:"saleIncomeAccountID,omitempty"`
	PurchaseExpenseAccountID *string `json:"purchaseExpenseAccountID,omitempty"`
	TaxPayableAccountID      *string `json:"taxPayableAccountID,omitempty"`
	TaxReceivableAccountID   *string `json:"taxReceivableAccountID,omitempty"`
	ReceivableAccountID      *string `json:"receivableAccountID,omitempty"`
	PayableAccountID         *string `json:"payableAccountID,omitempty"`
	BankAccountID            *string `json:"bankAccountID,omitempty"`
	AuditFields
}

// AccountFor returns the default account for a purpose, if configured.
func (d *CompanyDefaults) AccountFor(p AccountPurpose) *string {
	if d == nil {
		return nil
	}
	switch p {
	case PurposeSaleIncome:
		return d.SaleIncomeAccountID
	case PurposePurchaseExpense:
		return d.PurchaseExpenseAccountID
	case PurposeTaxPayable:
		return d.TaxPayableAccountID
	case PurposeTaxReceivable:
		return d.TaxReceivableAccountID
	case PurposeReceivable:
		return d.ReceivableAccountID
	case PurposePayable:
		return d.PayableAccountID
	case PurposeBank:
		return d.BankAccountID
	}
	return nil
}

// ProductCategory groups products and carries their default accounts.
type ProductCategory struct {
	CategoryID       string  `json:"categoryID"`
	WorkplaceID      string  `json:"workplaceID"`
	Name             string  `json:"name"`
	IncomeAccountID  *string `json:"incomeAccountID,omitempty"`
	ExpenseAccountID *string `json:"expenseAccountID,omitempty"`
	AuditFields
}

// Product is a sellable or purchasable item.
type Product struct {
	ProductID        string  `json:"productID"`
	WorkplaceID      string  `json:"workplaceID"`
	Name             string  `json:"name"`
	CategoryID       *string `json:"categoryID,omitempty"`
	IncomeAccountID  *string `json:"incomeAccountID,omitempty"`
	ExpenseAccountID *string `json:"expenseAccountID,omitempty"`
	AuditFields
}

// ThirdPartyType groups customers and suppliers and carries their default accounts.
type ThirdPartyType struct {
	TypeID              string  `json:"typeID"`
	WorkplaceID         string  `json:"workplaceID"`
	Name                string  `json:"name"`
	ReceivableAccountID *string `json:"receivableAccountID,omitempty"`
	PayableAccountID    *string `json:"payableAccountID,omitempty"`
	AuditFields
}

// ThirdParty is a customer or supplier.
type ThirdParty struct {
	ThirdPartyID        string  `json:"thirdPartyID"`
	WorkplaceID         string  `json:"workplaceID"`
	Name                string  `json:"name"`
	TypeID              *string `json:"typeID,omitempty"`
	ReceivableAccountID *string `json:"receivableAccountID,omitempty"`
	PayableAccountID    *string `json:"payableAccountID,omitempty"`
	AuditFields
}

// BankAccount is a bank or cash register backed by a ledger account.
type BankAccount struct {
	BankAccountID   string `json:"bankAccountID"`
	WorkplaceID     string `json:"workplaceID"`
	Name            string `json:"name"`
	LedgerAccountID string `json:"ledgerAccountID"`
	JournalCode     string `json:"journalCode,omitempty"`
	AuditFields
}

// ResolutionContext is the input of one account determination.
type ResolutionContext struct {
	WorkplaceID     string
	Purpose         AccountPurpose
	Override        *string
	ProductID       *string
	ThirdPartyID    *string
	CompanyDefaults *CompanyDefaults
}

// AccountResolution is the result of a successful determination.
type AccountResolution struct {
	AccountID string          `json:"accountID"`
	Level     ResolutionLevel `json:"level"`
}
