package services

import (
	"context"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
)

// MasterDataSvcFacade maintains the master data consulted by account determination.
type MasterDataSvcFacade interface {
	GetCompanyDefaults(ctx context.Context, workplaceID string) (*domain.CompanyDefaults, error)
	SetCompanyDefaults(ctx context.Context, workplaceID string, req dto.CompanyDefaultsRequest, actor domain.Actor) (*domain.CompanyDefaults, error)
	SaveProductCategory(ctx context.Context, workplaceID string, req dto.ProductCategoryRequest, actor domain.Actor) (*domain.ProductCategory, error)
	SaveProduct(ctx context.Context, workplaceID string, req dto.ProductRequest, actor domain.Actor) (*domain.Product, error)
	SaveThirdPartyType(ctx context.Context, workplaceID string, req dto.ThirdPartyTypeRequest, actor domain.Actor) (*domain.ThirdPartyType, error)
	SaveThirdParty(ctx context.Context, workplaceID string, req dto.ThirdPartyRequest, actor domain.Actor) (*domain.ThirdParty, error)
	SaveBankAccount(ctx context.Context, workplaceID string, req dto.BankAccountRequest, actor domain.Actor) (*domain.BankAccount, error)
}

// AccountResolverSvc picks the ledger account for a purpose.
type AccountResolverSvc interface {
	// Resolve walks the resolution levels in order and returns the first hit.
	Resolve(ctx context.Context, rc domain.ResolutionContext) (*domain.AccountResolution, error)

	// ResolveAccount loads the workplace's company defaults and resolves the request.
	ResolveAccount(ctx context.Context, workplaceID string, req dto.ResolveAccountRequest) (*domain.AccountResolution, error)
}
