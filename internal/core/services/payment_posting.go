package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
)

// ConfirmPayment posts a customer receipt (debit bank, credit receivable) or a supplier
// payment (debit payable, credit bank).
func (s *documentPostingService) ConfirmPayment(ctx context.Context, payment domain.Payment, actor domain.Actor) (*domain.JournalEntry, error) {
	if payment.PaymentID == "" || payment.ThirdPartyID == "" || payment.BankAccountID == "" {
		return nil, fmt.Errorf("%w: payment id, third party and bank account are required", apperrors.ErrValidation)
	}
	if !payment.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	amount := payment.Amount.Round(s.journal.precision)

	var partyPurpose domain.AccountPurpose
	switch payment.Direction {
	case domain.PaymentFromCustomer:
		partyPurpose = domain.PurposeReceivable
	case domain.PaymentToSupplier:
		partyPurpose = domain.PurposePayable
	default:
		return nil, fmt.Errorf("%w: unknown payment direction %q", apperrors.ErrValidation, payment.Direction)
	}

	bank, err := s.repo.FindBankAccountByID(ctx, payment.BankAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: bank account %s does not exist", apperrors.ErrValidation, payment.BankAccountID)
		}
		return nil, err
	}
	if bank.WorkplaceID != payment.WorkplaceID {
		return nil, fmt.Errorf("%w: bank account %s does not exist", apperrors.ErrValidation, payment.BankAccountID)
	}

	defaults, err := loadCompanyDefaults(ctx, s.repo, payment.WorkplaceID)
	if err != nil {
		return nil, err
	}
	partyID := payment.ThirdPartyID

	bankAccount, err := s.resolve(ctx, domain.ResolutionContext{
		WorkplaceID:     payment.WorkplaceID,
		Purpose:         domain.PurposeBank,
		Override:        &bank.LedgerAccountID,
		CompanyDefaults: defaults,
	})
	if err != nil {
		return nil, err
	}
	partyAccount, err := s.resolve(ctx, domain.ResolutionContext{
		WorkplaceID:     payment.WorkplaceID,
		Purpose:         partyPurpose,
		ThirdPartyID:    &partyID,
		CompanyDefaults: defaults,
	})
	if err != nil {
		return nil, err
	}

	fromCustomer := payment.Direction == domain.PaymentFromCustomer
	bankLine := sided(bankAccount, amount, !fromCustomer)
	partyLine := sided(partyAccount, amount, fromCustomer)
	partyLine.ThirdPartyID = &partyID

	journalCode := bank.JournalCode
	if journalCode == "" {
		journalCode = domain.JournalBank
	}
	description := "Customer payment"
	if !fromCustomer {
		description = "Supplier payment"
	}
	if payment.Reference != "" {
		description += " " + payment.Reference
	}

	entry := newDocumentEntry(
		payment.WorkplaceID, journalCode, description, strings.ToUpper(payment.CurrencyCode),
		domain.SourceDocument{Type: domain.DocumentPayment, ID: payment.PaymentID},
		orderedPaymentLines(fromCustomer, bankLine, partyLine), newAudit(actor, s.now()),
	)
	entry.EntryDate = dateOnly(payment.PaymentDate)

	posted, err := s.createAndPost(ctx, entry, actor)
	if err != nil {
		s.LogError(ctx, err, "Failed to confirm payment", slog.String("payment_id", payment.PaymentID))
		return nil, err
	}
	logDocumentPosted(ctx, &s.BaseService, "Payment", payment.PaymentID, posted)
	return posted, nil
}

// orderedPaymentLines puts the debit line first.
func orderedPaymentLines(fromCustomer bool, bankLine, partyLine domain.JournalLine) []domain.JournalLine {
	if fromCustomer {
		return []domain.JournalLine{bankLine, partyLine}
	}
	return []domain.JournalLine{partyLine, bankLine}
}
