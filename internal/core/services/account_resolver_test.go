package services

import (
	"context"
	"testing"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDeterminationReader is a mock type for the DeterminationReader type
type MockDeterminationReader struct {
	mock.Mock
}

func (m *MockDeterminationReader) FindCompanyDefaults(ctx context.Context, workplaceID string) (*domain.CompanyDefaults, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyDefaults), args.Error(1)
}

func (m *MockDeterminationReader) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockDeterminationReader) FindProductCategoryByID(ctx context.Context, categoryID string) (*domain.ProductCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductCategory), args.Error(1)
}

func (m *MockDeterminationReader) FindThirdPartyByID(ctx context.Context, thirdPartyID string) (*domain.ThirdParty, error) {
	args := m.Called(ctx, thirdPartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThirdParty), args.Error(1)
}

func (m *MockDeterminationReader) FindThirdPartyTypeByID(ctx context.Context, typeID string) (*domain.ThirdPartyType, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThirdPartyType), args.Error(1)
}

func (m *MockDeterminationReader) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestResolve_LevelOrder(t *testing.T) {
	ctx := context.Background()
	defaults := &domain.CompanyDefaults{
		WorkplaceID:         wp,
		SaleIncomeAccountID: strPtr("default-income"),
		ReceivableAccountID: strPtr("default-receivable"),
		TaxPayableAccountID: strPtr("default-tax"),
	}
	productWithAccount := &domain.Product{ProductID: "p1", WorkplaceID: wp, IncomeAccountID: strPtr("product-income"), CategoryID: strPtr("c1")}
	productWithCategory := &domain.Product{ProductID: "p2", WorkplaceID: wp, CategoryID: strPtr("c1")}
	productBare := &domain.Product{ProductID: "p3", WorkplaceID: wp}
	category := &domain.ProductCategory{CategoryID: "c1", WorkplaceID: wp, IncomeAccountID: strPtr("category-income")}

	tests := []struct {
		name      string
		rc        domain.ResolutionContext
		wantID    string
		wantLevel domain.ResolutionLevel
	}{
		{
			name:      "override wins",
			rc:        domain.ResolutionContext{Purpose: domain.PurposeSaleIncome, Override: strPtr("manual"), ProductID: strPtr("p1"), CompanyDefaults: defaults},
			wantID:    "manual",
			wantLevel: domain.LevelOverride,
		},
		{
			name:      "product account",
			rc:        domain.ResolutionContext{Purpose: domain.PurposeSaleIncome, ProductID: strPtr("p1"), CompanyDefaults: defaults},
			wantID:    "product-income",
			wantLevel: domain.LevelEntity,
		},
		{
			name:      "category account",
			rc:        domain.ResolutionContext{Purpose: domain.PurposeSaleIncome, ProductID: strPtr("p2"), CompanyDefaults: defaults},
			wantID:    "category-income",
			wantLevel: domain.LevelCategory,
		},
		{
			name:      "falls through to company default",
			rc:        domain.ResolutionContext{Purpose: domain.PurposeSaleIncome, ProductID: strPtr("p3"), CompanyDefaults: defaults},
			wantID:    "default-income",
			wantLevel: domain.LevelCompanyDefault,
		},
		{
			name:      "no entity at all uses company default",
			rc:        domain.ResolutionContext{Purpose: domain.PurposeTaxPayable, ProductID: strPtr("p1"), CompanyDefaults: defaults},
			wantID:    "default-tax",
			wantLevel: domain.LevelCompanyDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDeterminationReader)
			repo.On("FindProductByID", ctx, "p1").Return(productWithAccount, nil).Maybe()
			repo.On("FindProductByID", ctx, "p2").Return(productWithCategory, nil).Maybe()
			repo.On("FindProductByID", ctx, "p3").Return(productBare, nil).Maybe()
			repo.On("FindProductCategoryByID", ctx, "c1").Return(category, nil).Maybe()

			tt.rc.WorkplaceID = wp
			res, err := NewAccountResolver(repo).Resolve(ctx, tt.rc)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.AccountID)
			assert.Equal(t, tt.wantLevel, res.Level)
		})
	}
}

func TestResolve_TaxPurposeNeverReadsProduct(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDeterminationReader)

	res, err := NewAccountResolver(repo).Resolve(ctx, domain.ResolutionContext{
		WorkplaceID:     wp,
		Purpose:         domain.PurposeTaxReceivable,
		ProductID:       strPtr("p1"),
		CompanyDefaults: &domain.CompanyDefaults{TaxReceivableAccountID: strPtr("vat-in")},
	})
	require.NoError(t, err)
	assert.Equal(t, "vat-in", res.AccountID)
	repo.AssertNotCalled(t, "FindProductByID", mock.Anything, mock.Anything)
}

func TestResolve_ThirdPartyTypeAndMemoizedLookup(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDeterminationReader)
	repo.On("FindThirdPartyByID", ctx, "tp1").Return(&domain.ThirdParty{ThirdPartyID: "tp1", WorkplaceID: wp, TypeID: strPtr("local")}, nil).Once()
	repo.On("FindThirdPartyTypeByID", ctx, "local").Return(&domain.ThirdPartyType{TypeID: "local", WorkplaceID: wp, PayableAccountID: strPtr("local-payable")}, nil).Once()

	res, err := NewAccountResolver(repo).Resolve(ctx, domain.ResolutionContext{
		WorkplaceID:  wp,
		Purpose:      domain.PurposePayable,
		ThirdPartyID: strPtr("tp1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "local-payable", res.AccountID)
	assert.Equal(t, domain.LevelCategory, res.Level)
	repo.AssertExpectations(t)
}

func TestResolve_NothingConfigured(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDeterminationReader)
	repo.On("FindThirdPartyByID", ctx, "tp1").Return(&domain.ThirdParty{ThirdPartyID: "tp1", WorkplaceID: wp}, nil)

	_, err := NewAccountResolver(repo).Resolve(ctx, domain.ResolutionContext{
		WorkplaceID:  wp,
		Purpose:      domain.PurposeReceivable,
		ThirdPartyID: strPtr("tp1"),
	})
	var noDefault *domain.NoDefaultAccountConfiguredError
	require.ErrorAs(t, err, &noDefault)
	assert.Equal(t, domain.PurposeReceivable, noDefault.Purpose)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestResolve_UnknownProductIsValidationError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDeterminationReader)
	repo.On("FindProductByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := NewAccountResolver(repo).Resolve(ctx, domain.ResolutionContext{
		WorkplaceID: wp,
		Purpose:     domain.PurposeSaleIncome,
		ProductID:   strPtr("ghost"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestResolveAccount_LoadsCompanyDefaults(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDeterminationReader)
	repo.On("FindCompanyDefaults", ctx, wp).Return(&domain.CompanyDefaults{WorkplaceID: wp, BankAccountID: strPtr("main-bank")}, nil)

	res, err := NewAccountResolver(repo).ResolveAccount(ctx, wp, dto.ResolveAccountRequest{Purpose: domain.PurposeBank})
	require.NoError(t, err)
	assert.Equal(t, "main-bank", res.AccountID)

	repo2 := new(MockDeterminationReader)
	repo2.On("FindCompanyDefaults", ctx, wp).Return(nil, apperrors.ErrNotFound)
	_, err = NewAccountResolver(repo2).ResolveAccount(ctx, wp, dto.ResolveAccountRequest{Purpose: domain.PurposeBank})
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)

	_, err = NewAccountResolver(repo2).ResolveAccount(ctx, wp, dto.ResolveAccountRequest{Purpose: "NOPE"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
