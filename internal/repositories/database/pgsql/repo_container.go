package pgsql

import (
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates a new RepositoryProvider with all repositories initialized
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:       NewPgxAccountRepository(dbPool),
		JournalRepo:       NewPgxJournalRepository(dbPool),
		DeterminationRepo: NewPgxDeterminationRepository(dbPool),
		UnitOfWork:        newUnitOfWork(dbPool),
	}
}
