package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_ledger/internal/core/ports/services"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
	"github.com/google/uuid"
)

type masterDataService struct {
	BaseService
	repo        portsrepo.DeterminationRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewMasterDataService creates the service maintaining determination master data.
func NewMasterDataService(repo portsrepo.DeterminationRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.MasterDataSvcFacade {
	return &masterDataService{repo: repo, accountRepo: accountRepo}
}

var _ portssvc.MasterDataSvcFacade = (*masterDataService)(nil)

// checkAccounts verifies that every referenced account exists in the workplace and is a leaf.
func (s *masterDataService) checkAccounts(ctx context.Context, workplaceID string, ids ...*string) error {
	wanted := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != nil && *id != "" {
			wanted = append(wanted, *id)
		}
	}
	if len(wanted) == 0 {
		return nil
	}
	found, err := s.accountRepo.FindAccountsByIDs(ctx, wanted)
	if err != nil {
		return err
	}
	for _, id := range wanted {
		acc, ok := found[id]
		if !ok || acc.WorkplaceID != workplaceID {
			return fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, id)
		}
		if !acc.IsLeaf() {
			return fmt.Errorf("%w: account %s does not accept movements", apperrors.ErrValidation, id)
		}
	}
	return nil
}

func idOrNew(id *string) (string, bool) {
	if id != nil && *id != "" {
		return *id, false
	}
	return uuid.NewString(), true
}

func (s *masterDataService) GetCompanyDefaults(ctx context.Context, workplaceID string) (*domain.CompanyDefaults, error) {
	defaults, err := s.repo.FindCompanyDefaults(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find company defaults", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	return defaults, nil
}

func (s *masterDataService) SetCompanyDefaults(ctx context.Context, workplaceID string, req dto.CompanyDefaultsRequest, actor domain.Actor) (*domain.CompanyDefaults, error) {
	if err := s.checkAccounts(ctx, workplaceID,
		req.SaleIncomeAccountID, req.PurchaseExpenseAccountID, req.TaxPayableAccountID,
		req.TaxReceivableAccountID, req.ReceivableAccountID, req.PayableAccountID, req.BankAccountID,
	); err != nil {
		return nil, err
	}

	now := s.now()
	defaults := domain.CompanyDefaults{
		WorkplaceID:              workplaceID,
		SaleIncomeAccountID:      req.SaleIncomeAccountID,
		PurchaseExpenseAccountID: req.PurchaseExpenseAccountID,
		TaxPayableAccountID:      req.TaxPayableAccountID,
		TaxReceivableAccountID:   req.TaxReceivableAccountID,
		ReceivableAccountID:      req.ReceivableAccountID,
		PayableAccountID:         req.PayableAccountID,
		BankAccountID:            req.BankAccountID,
		AuditFields:              newAudit(actor, now),
	}
	if existing, err := s.repo.FindCompanyDefaults(ctx, workplaceID); err == nil {
		defaults.CreatedAt, defaults.CreatedBy = existing.CreatedAt, existing.CreatedBy
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if err := s.repo.SaveCompanyDefaults(ctx, defaults); err != nil {
		s.LogError(ctx, err, "Failed to save company defaults", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	s.LogInfo(ctx, "Company defaults saved", slog.String("workplace_id", workplaceID))
	return &defaults, nil
}

func (s *masterDataService) SaveProductCategory(ctx context.Context, workplaceID string, req dto.ProductCategoryRequest, actor domain.Actor) (*domain.ProductCategory, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := s.checkAccounts(ctx, workplaceID, req.IncomeAccountID, req.ExpenseAccountID); err != nil {
		return nil, err
	}
	id, created := idOrNew(req.CategoryID)
	category := domain.ProductCategory{
		CategoryID:       id,
		WorkplaceID:      workplaceID,
		Name:             req.Name,
		IncomeAccountID:  req.IncomeAccountID,
		ExpenseAccountID: req.ExpenseAccountID,
		AuditFields:      newAudit(actor, s.now()),
	}
	if !created {
		existing, err := s.repo.FindProductCategoryByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.WorkplaceID != workplaceID {
			return nil, apperrors.ErrNotFound
		}
		category.CreatedAt, category.CreatedBy = existing.CreatedAt, existing.CreatedBy
	}
	if err := s.repo.SaveProductCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save product category", slog.String("category_id", id))
		return nil, err
	}
	return &category, nil
}

func (s *masterDataService) SaveProduct(ctx context.Context, workplaceID string, req dto.ProductRequest, actor domain.Actor) (*domain.Product, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := s.checkAccounts(ctx, workplaceID, req.IncomeAccountID, req.ExpenseAccountID); err != nil {
		return nil, err
	}
	if req.CategoryID != nil && *req.CategoryID != "" {
		category, err := s.repo.FindProductCategoryByID(ctx, *req.CategoryID)
		if err != nil || category.WorkplaceID != workplaceID {
			return nil, fmt.Errorf("%w: product category %s does not exist", apperrors.ErrValidation, *req.CategoryID)
		}
	}
	id, created := idOrNew(req.ProductID)
	product := domain.Product{
		ProductID:        id,
		WorkplaceID:      workplaceID,
		Name:             req.Name,
		CategoryID:       req.CategoryID,
		IncomeAccountID:  req.IncomeAccountID,
		ExpenseAccountID: req.ExpenseAccountID,
		AuditFields:      newAudit(actor, s.now()),
	}
	if !created {
		existing, err := s.repo.FindProductByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.WorkplaceID != workplaceID {
			return nil, apperrors.ErrNotFound
		}
		product.CreatedAt, product.CreatedBy = existing.CreatedAt, existing.CreatedBy
	}
	if err := s.repo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_id", id))
		return nil, err
	}
	return &product, nil
}

func (s *masterDataService) SaveThirdPartyType(ctx context.Context, workplaceID string, req dto.ThirdPartyTypeRequest, actor domain.Actor) (*domain.ThirdPartyType, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := s.checkAccounts(ctx, workplaceID, req.ReceivableAccountID, req.PayableAccountID); err != nil {
		return nil, err
	}
	id, created := idOrNew(req.TypeID)
	partyType := domain.ThirdPartyType{
		TypeID:              id,
		WorkplaceID:         workplaceID,
		Name:                req.Name,
		ReceivableAccountID: req.ReceivableAccountID,
		PayableAccountID:    req.PayableAccountID,
		AuditFields:         newAudit(actor, s.now()),
	}
	if !created {
		existing, err := s.repo.FindThirdPartyTypeByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.WorkplaceID != workplaceID {
			return nil, apperrors.ErrNotFound
		}
		partyType.CreatedAt, partyType.CreatedBy = existing.CreatedAt, existing.CreatedBy
	}
	if err := s.repo.SaveThirdPartyType(ctx, partyType); err != nil {
		s.LogError(ctx, err, "Failed to save third party type", slog.String("type_id", id))
		return nil, err
	}
	return &partyType, nil
}

func (s *masterDataService) SaveThirdParty(ctx context.Context, workplaceID string, req dto.ThirdPartyRequest, actor domain.Actor) (*domain.ThirdParty, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := s.checkAccounts(ctx, workplaceID, req.ReceivableAccountID, req.PayableAccountID); err != nil {
		return nil, err
	}
	if req.TypeID != nil && *req.TypeID != "" {
		partyType, err := s.repo.FindThirdPartyTypeByID(ctx, *req.TypeID)
		if err != nil || partyType.WorkplaceID != workplaceID {
			return nil, fmt.Errorf("%w: third party type %s does not exist", apperrors.ErrValidation, *req.TypeID)
		}
	}
	id, created := idOrNew(req.ThirdPartyID)
	party := domain.ThirdParty{
		ThirdPartyID:        id,
		WorkplaceID:         workplaceID,
		Name:                req.Name,
		TypeID:              req.TypeID,
		ReceivableAccountID: req.ReceivableAccountID,
		PayableAccountID:    req.PayableAccountID,
		AuditFields:         newAudit(actor, s.now()),
	}
	if !created {
		existing, err := s.repo.FindThirdPartyByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.WorkplaceID != workplaceID {
			return nil, apperrors.ErrNotFound
		}
		party.CreatedAt, party.CreatedBy = existing.CreatedAt, existing.CreatedBy
	}
	if err := s.repo.SaveThirdParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save third party", slog.String("third_party_id", id))
		return nil, err
	}
	return &party, nil
}

func (s *masterDataService) SaveBankAccount(ctx context.Context, workplaceID string, req dto.BankAccountRequest, actor domain.Actor) (*domain.BankAccount, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := s.checkAccounts(ctx, workplaceID, &req.LedgerAccountID); err != nil {
		return nil, err
	}
	journalCode := req.JournalCode
	if journalCode == "" {
		journalCode = domain.JournalBank
	}
	id, created := idOrNew(req.BankAccountID)
	bank := domain.BankAccount{
		BankAccountID:   id,
		WorkplaceID:     workplaceID,
		Name:            req.Name,
		LedgerAccountID: req.LedgerAccountID,
		JournalCode:     journalCode,
		AuditFields:     newAudit(actor, s.now()),
	}
	if !created {
		existing, err := s.repo.FindBankAccountByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.WorkplaceID != workplaceID {
			return nil, apperrors.ErrNotFound
		}
		bank.CreatedAt, bank.CreatedBy = existing.CreatedAt, existing.CreatedBy
	}
	if err := s.repo.SaveBankAccount(ctx, bank); err != nil {
		s.LogError(ctx, err, "Failed to save bank account", slog.String("bank_account_id", id))
		return nil, err
	}
	return &bank, nil
}
