package services

import (
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_ledger/internal/core/ports/services"
	"github.com/SscSPs/backoffice_ledger/internal/platform/config"
	"github.com/SscSPs/backoffice_ledger/internal/platform/lock"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locks lock.Manager) *portssvc.ServiceContainer {
	precision := cfg.CurrencyPrecision

	ledger := NewLedgerService(repos.AccountRepo, precision)
	resolver := NewAccountResolver(repos.DeterminationRepo)
	journal := newJournalService(repos, ledger,
		WithLockManager(locks),
		WithCancellationPolicies(cfg.CancellationPolicies),
		WithPrecision(precision),
	)

	return &portssvc.ServiceContainer{
		Ledger:     ledger,
		Account:    NewAccountService(repos.AccountRepo, repos.UnitOfWork),
		MasterData: NewMasterDataService(repos.DeterminationRepo, repos.AccountRepo),
		Resolver:   resolver,
		Journal:    journal,
		Documents:  newDocumentPostingService(journal, resolver, repos.DeterminationRepo),
	}
}
