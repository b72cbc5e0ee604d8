package services

import (
	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
)

func (s *ledgerSuite) TestMasterData_FeedsResolver() {
	repos := s.store.Provider()
	md := NewMasterDataService(repos.DeterminationRepo, repos.AccountRepo)
	resolver := NewAccountResolver(repos.DeterminationRepo)

	_, err := md.SetCompanyDefaults(s.ctx, wp, dto.CompanyDefaultsRequest{SaleIncomeAccountID: strPtr("revenue")}, s.actor)
	s.Require().NoError(err)

	category, err := md.SaveProductCategory(s.ctx, wp, dto.ProductCategoryRequest{Name: "Services", IncomeAccountID: strPtr("revenue2")}, s.actor)
	s.Require().NoError(err)
	s.NotEmpty(category.CategoryID)

	product, err := md.SaveProduct(s.ctx, wp, dto.ProductRequest{Name: "Consulting", CategoryID: &category.CategoryID}, s.actor)
	s.Require().NoError(err)

	res, err := resolver.ResolveAccount(s.ctx, wp, dto.ResolveAccountRequest{Purpose: domain.PurposeSaleIncome, ProductID: &product.ProductID})
	s.Require().NoError(err)
	s.Equal("revenue2", res.AccountID)

	res, err = resolver.ResolveAccount(s.ctx, wp, dto.ResolveAccountRequest{Purpose: domain.PurposeSaleIncome})
	s.Require().NoError(err)
	s.Equal("revenue", res.AccountID)

	// Updating keeps the original creation audit.
	renamed, err := md.SaveProduct(s.ctx, wp, dto.ProductRequest{ProductID: &product.ProductID, Name: "Advisory", CategoryID: &category.CategoryID}, s.actor)
	s.Require().NoError(err)
	s.Equal(product.CreatedAt, renamed.CreatedAt)
	s.Equal("Advisory", renamed.Name)
}

func (s *ledgerSuite) TestMasterData_RejectsUnusableAccounts() {
	repos := s.store.Provider()
	md := NewMasterDataService(repos.DeterminationRepo, repos.AccountRepo)

	_, err := md.SetCompanyDefaults(s.ctx, wp, dto.CompanyDefaultsRequest{ReceivableAccountID: strPtr("group")}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = md.SaveBankAccount(s.ctx, wp, dto.BankAccountRequest{Name: "Main", LedgerAccountID: "missing"}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = md.SaveThirdParty(s.ctx, "wp-other", dto.ThirdPartyRequest{Name: "ACME", ReceivableAccountID: strPtr("receivable")}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = md.SaveProduct(s.ctx, wp, dto.ProductRequest{Name: "Orphan", CategoryID: strPtr("no-such-category")}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	bank, err := md.SaveBankAccount(s.ctx, wp, dto.BankAccountRequest{Name: "Main", LedgerAccountID: "bank"}, s.actor)
	s.Require().NoError(err)
	s.Equal(domain.JournalBank, bank.JournalCode)
}
