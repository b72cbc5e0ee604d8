package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes sales from purchase invoices.
type InvoiceKind string

const (
	InvoiceSale     InvoiceKind = "SALE"
	InvoicePurchase InvoiceKind = "PURCHASE"
)

// Invoice is the part of a business invoice needed to post it.
type Invoice struct {
	InvoiceID    string        `json:"invoiceID"`
	WorkplaceID  string        `json:"workplaceID"`
	Kind         InvoiceKind   `json:"kind"`
	Reference    string        `json:"reference"`
	ThirdPartyID string        `json:"thirdPartyID"`
	InvoiceDate  time.Time     `json:"invoiceDate"`
	CurrencyCode string        `json:"currencyCode"`
	Lines        []InvoiceLine `json:"lines"`
}

// InvoiceLine is one item of an invoice.
type InvoiceLine struct {
	ProductID       *string         `json:"productID,omitempty"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	AccountOverride *string         `json:"accountOverride,omitempty"`
	CostCenterID    *string         `json:"costCenterID,omitempty"`
}

// Net returns quantity times unit price rounded to precision.
func (l InvoiceLine) Net(precision int32) decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice).Round(precision)
}

// PaymentDirection tells whether money comes in from a customer or goes out to a supplier.
type PaymentDirection string

const (
	PaymentFromCustomer PaymentDirection = "CUSTOMER"
	PaymentToSupplier   PaymentDirection = "SUPPLIER"
)

// Payment is the part of a payment document needed to post it.
type Payment struct {
	PaymentID     string           `json:"paymentID"`
	WorkplaceID   string           `json:"workplaceID"`
	Direction     PaymentDirection `json:"direction"`
	Reference     string           `json:"reference"`
	ThirdPartyID  string           `json:"thirdPartyID"`
	BankAccountID string           `json:"bankAccountID"`
	PaymentDate   time.Time        `json:"paymentDate"`
	CurrencyCode  string           `json:"currencyCode"`
	Amount        decimal.Decimal  `json:"amount"`
}
