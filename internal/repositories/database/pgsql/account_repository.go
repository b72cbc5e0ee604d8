package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_ledger/internal/models"
	"github.com/SscSPs/backoffice_ledger/internal/utils/mapping"
	"github.com/SscSPs/backoffice_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PgxAccountRepository stores the chart of accounts. Bound to the pool it serves reads and
// descriptive updates; bound to a transaction it serves the ledger side.
type PgxAccountRepository struct {
	db querier
}

// NewPgxAccountRepository creates a new repository for account data.
func NewPgxAccountRepository(db querier) *PgxAccountRepository {
	return &PgxAccountRepository{db: db}
}

var (
	_ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)
	_ portsrepo.AccountTxRepository     = (*PgxAccountRepository)(nil)
)

const selectAccountSQL = `
	SELECT a.account_id, a.workplace_id, a.code, a.name, a.account_type, a.parent_account_id,
	       a.description, a.allows_movements,
	       EXISTS (SELECT 1 FROM accounts c WHERE c.parent_account_id = a.account_id) AS has_children,
	       a.is_active, a.debit_total, a.credit_total,
	       a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
	FROM accounts a`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID, &m.WorkplaceID, &m.Code, &m.Name, &m.AccountType, &m.ParentAccountID,
		&m.Description, &m.AllowsMovements, &m.HasChildren,
		&m.IsActive, &m.DebitTotal, &m.CreditTotal,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (
			account_id, workplace_id, code, name, account_type, parent_account_id, description,
			allows_movements, is_active, debit_total, credit_total,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		m.AccountID, m.WorkplaceID, m.Code, m.Name, m.AccountType, m.ParentAccountID, m.Description,
		m.AllowsMovements, m.IsActive, m.DebitTotal, m.CreditTotal,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save account "+m.AccountID)
	}
	return nil
}

// UpdateAccount updates descriptive fields. Totals are only changed by IncrementTotals.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $2, description = $3, allows_movements = $4, is_active = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.AccountID, m.Name, m.Description, m.AllowsMovements, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update account "+m.AccountID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
	}
	return nil
}

// FindAccountByID retrieves an account by its unique identifier.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := scanAccount(r.db.QueryRow(ctx, selectAccountSQL+` WHERE a.account_id = $1`, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to find account "+accountID)
	}
	return &acc, nil
}

// FindAccountByCode retrieves an account by its code within a workplace.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, workplaceID, code string) (*domain.Account, error) {
	acc, err := scanAccount(r.db.QueryRow(ctx, selectAccountSQL+` WHERE a.workplace_id = $1 AND a.code = $2`, workplaceID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to find account by code "+code)
	}
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts keyed by id.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	return r.queryAccountMap(ctx, selectAccountSQL+` WHERE a.account_id = ANY($1)`, accountIDs)
}

// FindAccountsByIDsForUpdate row-locks the accounts in ascending id order so that two
// transactions touching overlapping sets always acquire locks in the same sequence.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := selectAccountSQL + ` WHERE a.account_id = ANY($1) ORDER BY a.account_id FOR UPDATE OF a`
	return r.queryAccountMap(ctx, query, accountIDs)
}

func (r *PgxAccountRepository) queryAccountMap(ctx context.Context, query string, accountIDs []string) (map[string]domain.Account, error) {
	rows, err := r.db.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, mapPgError(err, "failed to query accounts")
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[acc.AccountID] = acc
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating account rows")
	}
	return accounts, nil
}

// ListAccounts retrieves the accounts of a workplace ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.Account, *string, error) {
	args := []any{workplaceID}
	query := selectAccountSQL + ` WHERE a.workplace_id = $1`
	if nextToken != nil && *nextToken != "" {
		lastCode, err := pagination.DecodeKeyToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, lastCode)
		query += fmt.Sprintf(` AND a.code > $%d`, len(args))
	}
	query += ` ORDER BY a.code`
	if limit > 0 {
		// One extra row tells whether another page exists.
		args = append(args, limit+1)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapPgError(err, "failed to list accounts")
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, mapPgError(err, "error iterating account rows")
	}

	if limit <= 0 || len(accounts) <= limit {
		return accounts, nil, nil
	}
	accounts = accounts[:limit]
	token := pagination.EncodeKeyToken(accounts[limit-1].Code)
	return accounts, &token, nil
}

// SumAppliedMovements sums the lines of entries whose ledger effect is in force.
func (r *PgxAccountRepository) SumAppliedMovements(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE l.account_id = $1 AND e.ledger_applied AND e.entry_date <= $2;
	`
	var debit, credit decimal.Decimal
	if err := r.db.QueryRow(ctx, query, accountID, asOf).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, mapPgError(err, "failed to sum movements for account "+accountID)
	}
	return debit, credit, nil
}

// IncrementTotals adds the deltas to the running totals in a single statement.
func (r *PgxAccountRepository) IncrementTotals(ctx context.Context, accountID string, debitDelta, creditDelta decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET debit_total = debit_total + $2, credit_total = credit_total + $3
		WHERE account_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, accountID, debitDelta, creditDelta)
	if err != nil {
		return mapPgError(err, "failed to update totals of account "+accountID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}
