//go:build integration

package pgsql_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_ledger/internal/core/services"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
	"github.com/SscSPs/backoffice_ledger/internal/platform/config"
	"github.com/SscSPs/backoffice_ledger/internal/platform/lock"
	"github.com/SscSPs/backoffice_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/backoffice_ledger/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const wp = "wp-int"

func setupRepos(t *testing.T) portsrepo.RepositoryProvider {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("ledger"),
		tcpostgres.WithPassword("ledger"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, container.Terminate(ctx)) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(dsn, "file://../../../../migrations"))

	pool, err := database.NewPgxPool(ctx, dsn, database.PoolOptions{MaxConns: 8, PingOnStartup: true})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pgsql.NewRepositoryProvider(pool)
}

func newAccount(id, code string, accountType domain.AccountType, parentID string) domain.Account {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Account{
		AccountID:       id,
		WorkplaceID:     wp,
		Code:            code,
		Name:            code,
		AccountType:     accountType,
		ParentAccountID: parentID,
		AllowsMovements: true,
		IsActive:        true,
		DebitTotal:      decimal.Zero,
		CreditTotal:     decimal.Zero,
		AuditFields:     domain.AuditFields{CreatedAt: now, CreatedBy: "it", LastUpdatedAt: now, LastUpdatedBy: "it"},
	}
}

func TestIntegration_PostingAgainstPostgres(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	for _, acc := range []domain.Account{
		newAccount("acc-group", "1000", domain.Asset, ""),
		newAccount("acc-cash", "1010", domain.Asset, "acc-group"),
		newAccount("acc-rev", "7000", domain.Income, ""),
	} {
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, acc))
	}

	group, err := repos.AccountRepo.FindAccountByID(ctx, "acc-group")
	require.NoError(t, err)
	assert.True(t, group.HasChildren)
	assert.False(t, group.IsLeaf())

	err = repos.AccountRepo.SaveAccount(ctx, newAccount("acc-dup", "1010", domain.Asset, ""))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	cfg := &config.Config{CurrencyPrecision: 2}
	svc := services.NewServiceContainer(cfg, repos, lock.NopManager{})
	actor := domain.Actor{UserID: "it"}
	entryDate := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)

	newDraft := func(amount int64) *domain.JournalEntry {
		draft, err := svc.Journal.CreateDraft(ctx, wp, dto.CreateJournalEntryRequest{
			EntryDate:    entryDate,
			Description:  "integration",
			CurrencyCode: "EUR",
			Lines: []dto.JournalLineRequest{
				{AccountID: "acc-cash", Debit: decimal.NewFromInt(amount)},
				{AccountID: "acc-rev", Credit: decimal.NewFromInt(amount)},
			},
		}, actor)
		require.NoError(t, err)
		return draft
	}

	first := newDraft(100)
	posted, err := svc.Journal.Post(ctx, wp, first.EntryID, actor)
	require.NoError(t, err)
	assert.Equal(t, "GEN/2026-10/00001", posted.Number)

	reloaded, err := svc.Journal.GetEntry(ctx, wp, first.EntryID)
	require.NoError(t, err)
	assert.Equal(t, domain.Posted, reloaded.Status)
	assert.True(t, reloaded.LedgerApplied)
	require.Len(t, reloaded.Lines, 2)
	assert.Equal(t, 1, reloaded.Lines[0].Position)

	// Concurrent posts against the same accounts serialize on the row locks.
	const workers = 6
	drafts := make([]*domain.JournalEntry, workers)
	for i := range drafts {
		drafts[i] = newDraft(10)
	}
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range drafts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Journal.Post(ctx, wp, drafts[i].EntryID, actor)
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil && !errors.Is(err, apperrors.ErrTransient) {
			t.Fatalf("post %d failed: %v", i, err)
		}
	}

	cash, err := repos.AccountRepo.FindAccountByID(ctx, "acc-cash")
	require.NoError(t, err)
	applied, _, err := repos.AccountRepo.SumAppliedMovements(ctx, "acc-cash", entryDate)
	require.NoError(t, err)
	assert.True(t, cash.DebitTotal.Equal(applied), "running total %s must equal applied lines %s", cash.DebitTotal, applied)

	// Reversal leaves the ledger where it was before the original post.
	_, err = svc.Journal.Reverse(ctx, wp, first.EntryID, dto.ReverseEntryRequest{Reason: "integration"}, actor)
	require.NoError(t, err)
	after, err := repos.AccountRepo.FindAccountByID(ctx, "acc-cash")
	require.NoError(t, err)
	assert.True(t, after.Balance().Equal(cash.Balance().Sub(decimal.NewFromInt(100))))

	page, err := svc.Journal.ListEntries(ctx, wp, dto.ListJournalEntriesParams{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, page.Entries, 3)
	require.NotNil(t, page.NextToken)

	next, err := svc.Journal.ListEntries(ctx, wp, dto.ListJournalEntriesParams{Limit: 50, NextToken: page.NextToken})
	require.NoError(t, err)
	assert.Len(t, next.Entries, workers+2-3)
}

func TestIntegration_StaleVersionIsConflict(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	require.NoError(t, repos.AccountRepo.SaveAccount(ctx, newAccount("acc-a", "1", domain.Asset, "")))

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.JournalEntry{
		EntryID:      "e-1",
		WorkplaceID:  wp,
		JournalCode:  domain.JournalGeneral,
		EntryDate:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Description:  "stale",
		CurrencyCode: "EUR",
		Status:       domain.Draft,
		Version:      1,
		Lines: []domain.JournalLine{
			{LineID: "l-1", EntryID: "e-1", Position: 1, AccountID: "acc-a", Debit: decimal.NewFromInt(1)},
			{LineID: "l-2", EntryID: "e-1", Position: 2, AccountID: "acc-a", Credit: decimal.NewFromInt(1)},
		},
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "it", LastUpdatedAt: now, LastUpdatedBy: "it"},
	}

	err := repos.UnitOfWork.WithTx(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		return tx.Entries.SaveEntry(ctx, entry)
	})
	require.NoError(t, err)

	entry.Status = domain.Approved
	entry.Version = 3
	err = repos.UnitOfWork.WithTx(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		return tx.Entries.UpdateEntryState(ctx, entry, 2)
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	seq := make([]int64, 0, 2)
	for i := 0; i < 2; i++ {
		err = repos.UnitOfWork.WithTx(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
			v, err := tx.Sequences.NextValue(ctx, wp, "GEN", "2026-10")
			seq = append(seq, v)
			return err
		})
		require.NoError(t, err)
	}
	assert.Equal(t, []int64{1, 2}, seq)
}
