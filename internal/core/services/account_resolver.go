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
)

// resolutionStrategy is one level of account determination. lookup returns nil when the
// level has nothing configured for the purpose.
type resolutionStrategy struct {
	level  domain.ResolutionLevel
	lookup func(ctx context.Context, sc *resolutionScope) (*string, error)
}

// defaultStrategies is the resolution order. The first hit wins.
var defaultStrategies = []resolutionStrategy{
	{level: domain.LevelOverride, lookup: lookupOverride},
	{level: domain.LevelEntity, lookup: lookupEntity},
	{level: domain.LevelCategory, lookup: lookupCategory},
	{level: domain.LevelCompanyDefault, lookup: lookupCompanyDefault},
}

type accountResolver struct {
	BaseService
	repo       portsrepo.DeterminationReader
	strategies []resolutionStrategy
}

// NewAccountResolver creates a resolver using the standard strategy order.
func NewAccountResolver(repo portsrepo.DeterminationReader) portssvc.AccountResolverSvc {
	return &accountResolver{repo: repo, strategies: defaultStrategies}
}

var _ portssvc.AccountResolverSvc = (*accountResolver)(nil)

func (r *accountResolver) Resolve(ctx context.Context, rc domain.ResolutionContext) (*domain.AccountResolution, error) {
	if !rc.Purpose.IsValid() {
		return nil, fmt.Errorf("%w: unknown account purpose %q", apperrors.ErrValidation, rc.Purpose)
	}
	return r.newScope(rc).resolve(ctx, r.strategies)
}

func (r *accountResolver) ResolveAccount(ctx context.Context, workplaceID string, req dto.ResolveAccountRequest) (*domain.AccountResolution, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	defaults, err := loadCompanyDefaults(ctx, r.repo, workplaceID)
	if err != nil {
		return nil, err
	}
	return r.Resolve(ctx, domain.ResolutionContext{
		WorkplaceID:     workplaceID,
		Purpose:         req.Purpose,
		Override:        req.Override,
		ProductID:       req.ProductID,
		ThirdPartyID:    req.ThirdPartyID,
		CompanyDefaults: defaults,
	})
}

// loadCompanyDefaults returns nil defaults when the workplace has none configured.
func loadCompanyDefaults(ctx context.Context, repo portsrepo.DeterminationReader, workplaceID string) (*domain.CompanyDefaults, error) {
	defaults, err := repo.FindCompanyDefaults(ctx, workplaceID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load company defaults: %w", err)
	}
	return defaults, nil
}

func (r *accountResolver) newScope(rc domain.ResolutionContext) *resolutionScope {
	return &resolutionScope{rc: rc, repo: r.repo, base: &r.BaseService}
}

// resolutionScope memoizes master data lookups for one resolution, so the entity and
// category levels share a single product or third party read.
type resolutionScope struct {
	rc   domain.ResolutionContext
	repo portsrepo.DeterminationReader
	base *BaseService

	product       *domain.Product
	productLoaded bool
	party         *domain.ThirdParty
	partyLoaded   bool
}

func (sc *resolutionScope) resolve(ctx context.Context, strategies []resolutionStrategy) (*domain.AccountResolution, error) {
	for _, st := range strategies {
		id, err := st.lookup(ctx, sc)
		if err != nil {
			return nil, err
		}
		if id != nil && *id != "" {
			sc.base.GetLogger(ctx).Debug("Account resolved",
				slog.String("purpose", string(sc.rc.Purpose)),
				slog.String("level", string(st.level)),
				slog.String("account_id", *id))
			return &domain.AccountResolution{AccountID: *id, Level: st.level}, nil
		}
	}
	return nil, &domain.NoDefaultAccountConfiguredError{Purpose: sc.rc.Purpose}
}

func (sc *resolutionScope) loadProduct(ctx context.Context) (*domain.Product, error) {
	if sc.productLoaded {
		return sc.product, nil
	}
	sc.productLoaded = true
	if sc.rc.ProductID == nil || *sc.rc.ProductID == "" {
		return nil, nil
	}
	p, err := sc.repo.FindProductByID(ctx, *sc.rc.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %s does not exist", apperrors.ErrValidation, *sc.rc.ProductID)
		}
		return nil, err
	}
	if sc.rc.WorkplaceID != "" && p.WorkplaceID != sc.rc.WorkplaceID {
		return nil, fmt.Errorf("%w: product %s does not exist", apperrors.ErrValidation, *sc.rc.ProductID)
	}
	sc.product = p
	return p, nil
}

func (sc *resolutionScope) loadThirdParty(ctx context.Context) (*domain.ThirdParty, error) {
	if sc.partyLoaded {
		return sc.party, nil
	}
	sc.partyLoaded = true
	if sc.rc.ThirdPartyID == nil || *sc.rc.ThirdPartyID == "" {
		return nil, nil
	}
	p, err := sc.repo.FindThirdPartyByID(ctx, *sc.rc.ThirdPartyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: third party %s does not exist", apperrors.ErrValidation, *sc.rc.ThirdPartyID)
		}
		return nil, err
	}
	if sc.rc.WorkplaceID != "" && p.WorkplaceID != sc.rc.WorkplaceID {
		return nil, fmt.Errorf("%w: third party %s does not exist", apperrors.ErrValidation, *sc.rc.ThirdPartyID)
	}
	sc.party = p
	return p, nil
}

func lookupOverride(_ context.Context, sc *resolutionScope) (*string, error) {
	return sc.rc.Override, nil
}

func lookupEntity(ctx context.Context, sc *resolutionScope) (*string, error) {
	switch sc.rc.Purpose {
	case domain.PurposeSaleIncome, domain.PurposePurchaseExpense:
		p, err := sc.loadProduct(ctx)
		if err != nil || p == nil {
			return nil, err
		}
		if sc.rc.Purpose == domain.PurposeSaleIncome {
			return p.IncomeAccountID, nil
		}
		return p.ExpenseAccountID, nil
	case domain.PurposeReceivable, domain.PurposePayable:
		p, err := sc.loadThirdParty(ctx)
		if err != nil || p == nil {
			return nil, err
		}
		if sc.rc.Purpose == domain.PurposeReceivable {
			return p.ReceivableAccountID, nil
		}
		return p.PayableAccountID, nil
	}
	return nil, nil
}

func lookupCategory(ctx context.Context, sc *resolutionScope) (*string, error) {
	switch sc.rc.Purpose {
	case domain.PurposeSaleIncome, domain.PurposePurchaseExpense:
		p, err := sc.loadProduct(ctx)
		if err != nil || p == nil || p.CategoryID == nil {
			return nil, err
		}
		c, err := sc.repo.FindProductCategoryByID(ctx, *p.CategoryID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if sc.rc.Purpose == domain.PurposeSaleIncome {
			return c.IncomeAccountID, nil
		}
		return c.ExpenseAccountID, nil
	case domain.PurposeReceivable, domain.PurposePayable:
		p, err := sc.loadThirdParty(ctx)
		if err != nil || p == nil || p.TypeID == nil {
			return nil, err
		}
		t, err := sc.repo.FindThirdPartyTypeByID(ctx, *p.TypeID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if sc.rc.Purpose == domain.PurposeReceivable {
			return t.ReceivableAccountID, nil
		}
		return t.PayableAccountID, nil
	}
	return nil, nil
}

func lookupCompanyDefault(_ context.Context, sc *resolutionScope) (*string, error) {
	return sc.rc.CompanyDefaults.AccountFor(sc.rc.Purpose), nil
}
