package dto

import (
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceLineRequest is one item of an invoice to post.
type InvoiceLineRequest struct {
	ProductID       *string         `json:"productID"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitPrice       decimal.Decimal `json:"unitPrice" validate:"gte=0"`
	TaxAmount       decimal.Decimal `json:"taxAmount" validate:"gte=0"`
	AccountOverride *string         `json:"accountOverride"`
	CostCenterID    *string         `json:"costCenterID"`
}

// PostInvoiceRequest carries the invoice data the ledger needs.
type PostInvoiceRequest struct {
	InvoiceID    string               `json:"invoiceID" binding:"required" validate:"required"`
	Kind         domain.InvoiceKind   `json:"kind" binding:"required,oneof=SALE PURCHASE" validate:"required,oneof=SALE PURCHASE"`
	Reference    string               `json:"reference"`
	ThirdPartyID string               `json:"thirdPartyID" binding:"required" validate:"required"`
	InvoiceDate  time.Time            `json:"invoiceDate" binding:"required" validate:"required"`
	CurrencyCode string               `json:"currencyCode" binding:"required,len=3" validate:"required,len=3"`
	Lines        []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive" validate:"required,min=1,dive"`
}

// ToDomain converts the request into a domain.Invoice.
func (r PostInvoiceRequest) ToDomain(workplaceID string) domain.Invoice {
	lines := make([]domain.InvoiceLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.InvoiceLine{
			ProductID:       l.ProductID,
			Description:     l.Description,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			TaxAmount:       l.TaxAmount,
			AccountOverride: l.AccountOverride,
			CostCenterID:    l.CostCenterID,
		}
	}
	return domain.Invoice{
		InvoiceID:    r.InvoiceID,
		WorkplaceID:  workplaceID,
		Kind:         r.Kind,
		Reference:    r.Reference,
		ThirdPartyID: r.ThirdPartyID,
		InvoiceDate:  r.InvoiceDate,
		CurrencyCode: r.CurrencyCode,
		Lines:        lines,
	}
}

// ConfirmPaymentRequest carries the payment data the ledger needs.
type ConfirmPaymentRequest struct {
	PaymentID     string                  `json:"paymentID" binding:"required" validate:"required"`
	Direction     domain.PaymentDirection `json:"direction" binding:"required,oneof=CUSTOMER SUPPLIER" validate:"required,oneof=CUSTOMER SUPPLIER"`
	Reference     string                  `json:"reference"`
	ThirdPartyID  string                  `json:"thirdPartyID" binding:"required" validate:"required"`
	BankAccountID string                  `json:"bankAccountID" binding:"required" validate:"required"`
	PaymentDate   time.Time               `json:"paymentDate" binding:"required" validate:"required"`
	CurrencyCode  string                  `json:"currencyCode" binding:"required,len=3" validate:"required,len=3"`
	Amount        decimal.Decimal         `json:"amount" validate:"gt=0"`
}

// ToDomain converts the request into a domain.Payment.
func (r ConfirmPaymentRequest) ToDomain(workplaceID string) domain.Payment {
	return domain.Payment{
		PaymentID:     r.PaymentID,
		WorkplaceID:   workplaceID,
		Direction:     r.Direction,
		Reference:     r.Reference,
		ThirdPartyID:  r.ThirdPartyID,
		BankAccountID: r.BankAccountID,
		PaymentDate:   r.PaymentDate,
		CurrencyCode:  r.CurrencyCode,
		Amount:        r.Amount,
	}
}
