package services

import (
	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (s *ledgerSuite) documents() *documentPostingService {
	return newDocumentPostingService(s.journal, NewAccountResolver(s.store), s.store)
}

func (s *ledgerSuite) seedMasterData() {
	s.Require().NoError(s.store.SaveCompanyDefaults(s.ctx, domain.CompanyDefaults{
		WorkplaceID:              wp,
		SaleIncomeAccountID:      strPtr("revenue"),
		PurchaseExpenseAccountID: strPtr("expense"),
		TaxPayableAccountID:      strPtr("tax-payable"),
		TaxReceivableAccountID:   strPtr("tax-receivable"),
		ReceivableAccountID:      strPtr("receivable"),
		PayableAccountID:         strPtr("payable"),
	}))
	s.Require().NoError(s.store.SaveProduct(s.ctx, domain.Product{
		ProductID: "consulting", WorkplaceID: wp, Name: "Consulting", IncomeAccountID: strPtr("revenue2"),
	}))
	s.Require().NoError(s.store.SaveThirdParty(s.ctx, domain.ThirdParty{ThirdPartyID: "acme", WorkplaceID: wp, Name: "Acme"}))
	s.Require().NoError(s.store.SaveBankAccount(s.ctx, domain.BankAccount{
		BankAccountID: "main", WorkplaceID: wp, Name: "Main", LedgerAccountID: "bank", JournalCode: domain.JournalBank,
	}))
}

func (s *ledgerSuite) saleInvoice(id string) domain.Invoice {
	return domain.Invoice{
		InvoiceID:    id,
		WorkplaceID:  wp,
		Kind:         domain.InvoiceSale,
		Reference:    "INV-" + id,
		ThirdPartyID: "acme",
		InvoiceDate:  entryDate,
		CurrencyCode: "USD",
		Lines: []domain.InvoiceLine{
			{ProductID: strPtr("consulting"), Description: "hours", Quantity: d("10"), UnitPrice: d("15"), TaxAmount: d("30")},
			{Description: "travel", Quantity: d("1"), UnitPrice: d("50"), TaxAmount: d("10")},
		},
	}
}

func (s *ledgerSuite) TestPostInvoice_Sale() {
	s.seedMasterData()

	entry, err := s.documents().PostInvoice(s.ctx, s.saleInvoice("1"), s.actor)
	s.Require().NoError(err)

	s.Equal(domain.Posted, entry.Status)
	s.Equal("SAL/2026-10/00001", entry.Number)
	s.Require().NotNil(entry.Source)
	s.Equal(domain.SourceDocument{Type: domain.DocumentInvoice, ID: "1"}, *entry.Source)
	s.Len(entry.Lines, 4)

	s.assertTotals("receivable", "240", "0")
	s.assertTotals("revenue2", "0", "150")
	s.assertTotals("revenue", "0", "50")
	s.assertTotals("tax-payable", "0", "40")
	s.assertLedgerBalanced()
}

func (s *ledgerSuite) TestPostInvoice_PurchaseMirrorsSale() {
	s.seedMasterData()
	invoice := domain.Invoice{
		InvoiceID: "p-1", WorkplaceID: wp, Kind: domain.InvoicePurchase, ThirdPartyID: "acme",
		InvoiceDate: entryDate, CurrencyCode: "USD",
		Lines: []domain.InvoiceLine{{Description: "paper", Quantity: d("2"), UnitPrice: d("12.5"), TaxAmount: d("5")}},
	}

	entry, err := s.documents().PostInvoice(s.ctx, invoice, s.actor)
	s.Require().NoError(err)
	s.Equal("PUR/2026-10/00001", entry.Number)
	s.assertTotals("payable", "0", "30")
	s.assertTotals("expense", "25", "0")
	s.assertTotals("tax-receivable", "5", "0")
}

func (s *ledgerSuite) TestPostInvoice_DuplicateIsRejected() {
	s.seedMasterData()
	docs := s.documents()
	_, err := docs.PostInvoice(s.ctx, s.saleInvoice("dup"), s.actor)
	s.Require().NoError(err)

	_, err = docs.PostInvoice(s.ctx, s.saleInvoice("dup"), s.actor)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.assertTotals("receivable", "240", "0")
}

func (s *ledgerSuite) TestPostInvoice_MissingConfigurationPersistsNothing() {
	s.Require().NoError(s.store.SaveThirdParty(s.ctx, domain.ThirdParty{ThirdPartyID: "acme", WorkplaceID: wp}))
	s.Require().NoError(s.store.SaveProduct(s.ctx, domain.Product{ProductID: "consulting", WorkplaceID: wp, IncomeAccountID: strPtr("revenue2")}))

	_, err := s.documents().PostInvoice(s.ctx, s.saleInvoice("1"), s.actor)
	var noDefault *domain.NoDefaultAccountConfiguredError
	s.Require().ErrorAs(err, &noDefault)
	s.Equal(domain.PurposeSaleIncome, noDefault.Purpose)
	s.Empty(s.store.Entries())
}

func (s *ledgerSuite) TestPostInvoice_CancelPolicyForInvoices() {
	s.seedMasterData()
	s.journal.policies = domain.CancellationPolicies{domain.DocumentInvoice: domain.CancelByReversal}

	entry, err := s.documents().PostInvoice(s.ctx, s.saleInvoice("1"), s.actor)
	s.Require().NoError(err)

	cancelled, err := s.journal.Cancel(s.ctx, wp, entry.EntryID, "credit note", s.actor)
	s.Require().NoError(err)
	s.Equal(domain.Reversed, cancelled.Status)
	s.True(s.balance("receivable").IsZero())
}

func (s *ledgerSuite) TestConfirmPayment_CustomerAndSupplier() {
	s.seedMasterData()
	docs := s.documents()

	in, err := docs.ConfirmPayment(s.ctx, domain.Payment{
		PaymentID: "pay-in", WorkplaceID: wp, Direction: domain.PaymentFromCustomer, ThirdPartyID: "acme",
		BankAccountID: "main", PaymentDate: entryDate, CurrencyCode: "USD", Amount: d("240"),
	}, s.actor)
	s.Require().NoError(err)
	s.Equal("BNK/2026-10/00001", in.Number)
	s.assertTotals("bank", "240", "0")
	s.assertTotals("receivable", "0", "240")

	out, err := docs.ConfirmPayment(s.ctx, domain.Payment{
		PaymentID: "pay-out", WorkplaceID: wp, Direction: domain.PaymentToSupplier, ThirdPartyID: "acme",
		BankAccountID: "main", PaymentDate: entryDate, CurrencyCode: "USD", Amount: d("40"),
	}, s.actor)
	s.Require().NoError(err)
	s.Equal("BNK/2026-10/00002", out.Number)
	s.assertTotals("bank", "240", "40")
	s.assertTotals("payable", "40", "0")
	s.assertLedgerBalanced()
}

func (s *ledgerSuite) TestConfirmPayment_Validation() {
	s.seedMasterData()
	docs := s.documents()

	_, err := docs.ConfirmPayment(s.ctx, domain.Payment{
		PaymentID: "p", WorkplaceID: wp, Direction: domain.PaymentFromCustomer, ThirdPartyID: "acme",
		BankAccountID: "main", PaymentDate: entryDate, CurrencyCode: "USD", Amount: decimal.Zero,
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = docs.ConfirmPayment(s.ctx, domain.Payment{
		PaymentID: "p", WorkplaceID: wp, Direction: domain.PaymentFromCustomer, ThirdPartyID: "acme",
		BankAccountID: "ghost", PaymentDate: entryDate, CurrencyCode: "USD", Amount: d("1"),
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)
}
