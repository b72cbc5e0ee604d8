package repositories

import (
	"context"
)

// TxRepositories exposes the repositories bound to one open transaction.
type TxRepositories struct {
	Accounts  AccountTxRepository
	Entries   JournalEntryTxRepository
	Sequences SequenceRepository
}

// UnitOfWork runs fn inside one atomic storage transaction. The transaction commits when
// fn returns nil and rolls back otherwise; nothing fn wrote is visible after a rollback.
type UnitOfWork interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
