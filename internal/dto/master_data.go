package dto

import "github.com/SscSPs/backoffice_ledger/internal/core/domain"

// CompanyDefaultsRequest sets the fallback accounts of a workplace.
type CompanyDefaultsRequest struct {
	SaleIncomeAccountID      *string `json:"saleIncomeAccountID"`
	PurchaseExpenseAccountID *string `json:"purchaseExpenseAccountID"`
	TaxPayableAccountID      *string `json:"taxPayableAccountID"`
	TaxReceivableAccountID   *string `json:"taxReceivableAccountID"`
	ReceivableAccountID      *string `json:"receivableAccountID"`
	PayableAccountID         *string `json:"payableAccountID"`
	BankAccountID            *string `json:"bankAccountID"`
}

// ProductCategoryRequest creates or updates a product category.
type ProductCategoryRequest struct {
	CategoryID       *string `json:"categoryID"` // empty creates a new category
	Name             string  `json:"name" binding:"required" validate:"required"`
	IncomeAccountID  *string `json:"incomeAccountID"`
	ExpenseAccountID *string `json:"expenseAccountID"`
}

// ProductRequest creates or updates a product.
type ProductRequest struct {
	ProductID        *string `json:"productID"`
	Name             string  `json:"name" binding:"required" validate:"required"`
	CategoryID       *string `json:"categoryID"`
	IncomeAccountID  *string `json:"incomeAccountID"`
	ExpenseAccountID *string `json:"expenseAccountID"`
}

// ThirdPartyTypeRequest creates or updates a third party type.
type ThirdPartyTypeRequest struct {
	TypeID              *string `json:"typeID"`
	Name                string  `json:"name" binding:"required" validate:"required"`
	ReceivableAccountID *string `json:"receivableAccountID"`
	PayableAccountID    *string `json:"payableAccountID"`
}

// ThirdPartyRequest creates or updates a customer or supplier.
type ThirdPartyRequest struct {
	ThirdPartyID        *string `json:"thirdPartyID"`
	Name                string  `json:"name" binding:"required" validate:"required"`
	TypeID              *string `json:"typeID"`
	ReceivableAccountID *string `json:"receivableAccountID"`
	PayableAccountID    *string `json:"payableAccountID"`
}

// BankAccountRequest creates or updates a bank or cash account.
type BankAccountRequest struct {
	BankAccountID   *string `json:"bankAccountID"`
	Name            string  `json:"name" binding:"required" validate:"required"`
	LedgerAccountID string  `json:"ledgerAccountID" binding:"required" validate:"required"`
	JournalCode     string  `json:"journalCode" validate:"omitempty,max=8"`
}

// ResolveAccountRequest asks which account a purpose resolves to.
type ResolveAccountRequest struct {
	Purpose      domain.AccountPurpose `json:"purpose" binding:"required" validate:"required,oneof=SALE_INCOME PURCHASE_EXPENSE TAX_PAYABLE TAX_RECEIVABLE RECEIVABLE PAYABLE BANK"`
	Override     *string               `json:"override"`
	ProductID    *string               `json:"productID"`
	ThirdPartyID *string               `json:"thirdPartyID"`
}
