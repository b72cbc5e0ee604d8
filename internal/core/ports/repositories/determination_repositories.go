package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
)

// DeterminationReader defines read operations for master data consulted by the account resolver.
type DeterminationReader interface {
	FindCompanyDefaults(ctx context.Context, workplaceID string) (*domain.CompanyDefaults, error)
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	FindProductCategoryByID(ctx context.Context, categoryID string) (*domain.ProductCategory, error)
	FindThirdPartyByID(ctx context.Context, thirdPartyID string) (*domain.ThirdParty, error)
	FindThirdPartyTypeByID(ctx context.Context, typeID string) (*domain.ThirdPartyType, error)
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
}

// DeterminationWriter defines upserts for the same master data.
type DeterminationWriter interface {
	SaveCompanyDefaults(ctx context.Context, defaults domain.CompanyDefaults) error
	SaveProduct(ctx context.Context, product domain.Product) error
	SaveProductCategory(ctx context.Context, category domain.ProductCategory) error
	SaveThirdParty(ctx context.Context, party domain.ThirdParty) error
	SaveThirdPartyType(ctx context.Context, partyType domain.ThirdPartyType) error
	SaveBankAccount(ctx context.Context, bankAccount domain.BankAccount) error
}

// DeterminationRepositoryFacade combines master data read and write interfaces.
type DeterminationRepositoryFacade interface {
	DeterminationReader
	DeterminationWriter
}
