package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// invoiceSides describes on which side each part of an invoice lands.
type invoiceSides struct {
	journalCode   string
	itemPurpose   domain.AccountPurpose
	taxPurpose    domain.AccountPurpose
	partyPurpose  domain.AccountPurpose
	itemsOnCredit bool // sales credit income and tax, debit the receivable
}

func sidesFor(kind domain.InvoiceKind) (invoiceSides, error) {
	switch kind {
	case domain.InvoiceSale:
		return invoiceSides{
			journalCode:   domain.JournalSales,
			itemPurpose:   domain.PurposeSaleIncome,
			taxPurpose:    domain.PurposeTaxPayable,
			partyPurpose:  domain.PurposeReceivable,
			itemsOnCredit: true,
		}, nil
	case domain.InvoicePurchase:
		return invoiceSides{
			journalCode:  domain.JournalPurchases,
			itemPurpose:  domain.PurposePurchaseExpense,
			taxPurpose:   domain.PurposeTaxReceivable,
			partyPurpose: domain.PurposePayable,
		}, nil
	}
	return invoiceSides{}, fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, kind)
}

// sided builds a line carrying amount on the credit side when onCredit, else on the debit side.
func sided(accountID string, amount decimal.Decimal, onCredit bool) domain.JournalLine {
	l := domain.JournalLine{AccountID: accountID, Debit: decimal.Zero, Credit: decimal.Zero}
	if onCredit {
		l.Credit = amount
	} else {
		l.Debit = amount
	}
	return l
}

// PostInvoice posts a sales or purchase invoice: one line per item, one aggregated tax
// line when tax is charged, and the third party line for the invoice total.
func (s *documentPostingService) PostInvoice(ctx context.Context, invoice domain.Invoice, actor domain.Actor) (*domain.JournalEntry, error) {
	sides, err := sidesFor(invoice.Kind)
	if err != nil {
		return nil, err
	}
	if invoice.InvoiceID == "" || invoice.ThirdPartyID == "" {
		return nil, fmt.Errorf("%w: invoice id and third party are required", apperrors.ErrValidation)
	}
	if len(invoice.Lines) == 0 {
		return nil, fmt.Errorf("%w: invoice %s has no lines", apperrors.ErrValidation, invoice.InvoiceID)
	}

	defaults, err := loadCompanyDefaults(ctx, s.repo, invoice.WorkplaceID)
	if err != nil {
		return nil, err
	}
	precision := s.journal.precision
	partyID := invoice.ThirdPartyID

	lines := make([]domain.JournalLine, 0, len(invoice.Lines)+2)
	lines = append(lines, domain.JournalLine{}) // third party line, sized below
	net, tax := decimal.Zero, decimal.Zero

	for i, item := range invoice.Lines {
		if item.Quantity.IsNegative() || item.UnitPrice.IsNegative() || item.TaxAmount.IsNegative() {
			return nil, fmt.Errorf("%w: invoice line %d has a negative amount", apperrors.ErrValidation, i)
		}
		tax = tax.Add(item.TaxAmount.Round(precision))

		amount := item.Net(precision)
		if amount.IsZero() {
			continue
		}
		accountID, err := s.resolve(ctx, domain.ResolutionContext{
			WorkplaceID:     invoice.WorkplaceID,
			Purpose:         sides.itemPurpose,
			Override:        item.AccountOverride,
			ProductID:       item.ProductID,
			ThirdPartyID:    &partyID,
			CompanyDefaults: defaults,
		})
		if err != nil {
			return nil, err
		}
		qty, price := item.Quantity, item.UnitPrice
		line := sided(accountID, amount, sides.itemsOnCredit)
		line.ProductID = item.ProductID
		line.CostCenterID = item.CostCenterID
		line.ThirdPartyID = &partyID
		line.Quantity = &qty
		line.UnitPrice = &price
		line.Notes = item.Description
		lines = append(lines, line)
		net = net.Add(amount)
	}

	if tax.IsPositive() {
		taxAccount, err := s.resolve(ctx, domain.ResolutionContext{
			WorkplaceID:     invoice.WorkplaceID,
			Purpose:         sides.taxPurpose,
			CompanyDefaults: defaults,
		})
		if err != nil {
			return nil, err
		}
		taxLine := sided(taxAccount, tax, sides.itemsOnCredit)
		taxLine.Notes = "Tax"
		lines = append(lines, taxLine)
	}

	total := net.Add(tax)
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: invoice %s has a zero total", apperrors.ErrValidation, invoice.InvoiceID)
	}

	partyAccount, err := s.resolve(ctx, domain.ResolutionContext{
		WorkplaceID:     invoice.WorkplaceID,
		Purpose:         sides.partyPurpose,
		ThirdPartyID:    &partyID,
		CompanyDefaults: defaults,
	})
	if err != nil {
		return nil, err
	}
	lines[0] = sided(partyAccount, total, !sides.itemsOnCredit)
	lines[0].ThirdPartyID = &partyID

	description := "Sales invoice " + invoice.Reference
	if invoice.Kind == domain.InvoicePurchase {
		description = "Purchase invoice " + invoice.Reference
	}
	entry := newDocumentEntry(
		invoice.WorkplaceID, sides.journalCode, strings.TrimSpace(description), strings.ToUpper(invoice.CurrencyCode),
		domain.SourceDocument{Type: domain.DocumentInvoice, ID: invoice.InvoiceID},
		lines, newAudit(actor, s.now()),
	)
	entry.EntryDate = dateOnly(invoice.InvoiceDate)

	posted, err := s.createAndPost(ctx, entry, actor)
	if err != nil {
		s.LogError(ctx, err, "Failed to post invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}
	logDocumentPosted(ctx, &s.BaseService, "Invoice", invoice.InvoiceID, posted)
	return posted, nil
}
