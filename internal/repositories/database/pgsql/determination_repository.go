package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// PgxDeterminationRepository stores the master data read by the account resolver.
type PgxDeterminationRepository struct {
	db querier
}

// NewPgxDeterminationRepository creates a new repository for determination master data.
func NewPgxDeterminationRepository(db querier) *PgxDeterminationRepository {
	return &PgxDeterminationRepository{db: db}
}

var _ portsrepo.DeterminationRepositoryFacade = (*PgxDeterminationRepository)(nil)

func notFoundOr(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return mapPgError(err, msg)
}

func (r *PgxDeterminationRepository) FindCompanyDefaults(ctx context.Context, workplaceID string) (*domain.CompanyDefaults, error) {
	query := `
		SELECT workplace_id, sale_income_account_id, purchase_expense_account_id, tax_payable_account_id,
		       tax_receivable_account_id, receivable_account_id, payable_account_id, bank_account_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM company_defaults WHERE workplace_id = $1;
	`
	var d domain.CompanyDefaults
	err := r.db.QueryRow(ctx, query, workplaceID).Scan(
		&d.WorkplaceID, &d.SaleIncomeAccountID, &d.PurchaseExpenseAccountID, &d.TaxPayableAccountID,
		&d.TaxReceivableAccountID, &d.ReceivableAccountID, &d.PayableAccountID, &d.BankAccountID,
		&d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find company defaults of workplace "+workplaceID)
	}
	return &d, nil
}

func (r *PgxDeterminationRepository) SaveCompanyDefaults(ctx context.Context, d domain.CompanyDefaults) error {
	query := `
		INSERT INTO company_defaults (
			workplace_id, sale_income_account_id, purchase_expense_account_id, tax_payable_account_id,
			tax_receivable_account_id, receivable_account_id, payable_account_id, bank_account_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (workplace_id) DO UPDATE SET
			sale_income_account_id = EXCLUDED.sale_income_account_id,
			purchase_expense_account_id = EXCLUDED.purchase_expense_account_id,
			tax_payable_account_id = EXCLUDED.tax_payable_account_id,
			tax_receivable_account_id = EXCLUDED.tax_receivable_account_id,
			receivable_account_id = EXCLUDED.receivable_account_id,
			payable_account_id = EXCLUDED.payable_account_id,
			bank_account_id = EXCLUDED.bank_account_id,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		d.WorkplaceID, d.SaleIncomeAccountID, d.PurchaseExpenseAccountID, d.TaxPayableAccountID,
		d.TaxReceivableAccountID, d.ReceivableAccountID, d.PayableAccountID, d.BankAccountID,
		d.CreatedAt, d.CreatedBy, d.LastUpdatedAt, d.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save company defaults of workplace "+d.WorkplaceID)
	}
	return nil
}

func (r *PgxDeterminationRepository) FindProductCategoryByID(ctx context.Context, categoryID string) (*domain.ProductCategory, error) {
	query := `
		SELECT category_id, workplace_id, name, income_account_id, expense_account_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM product_categories WHERE category_id = $1;
	`
	var c domain.ProductCategory
	err := r.db.QueryRow(ctx, query, categoryID).Scan(
		&c.CategoryID, &c.WorkplaceID, &c.Name, &c.IncomeAccountID, &c.ExpenseAccountID,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find product category "+categoryID)
	}
	return &c, nil
}

func (r *PgxDeterminationRepository) SaveProductCategory(ctx context.Context, c domain.ProductCategory) error {
	query := `
		INSERT INTO product_categories (
			category_id, workplace_id, name, income_account_id, expense_account_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (category_id) DO UPDATE SET
			name = EXCLUDED.name,
			income_account_id = EXCLUDED.income_account_id,
			expense_account_id = EXCLUDED.expense_account_id,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		c.CategoryID, c.WorkplaceID, c.Name, c.IncomeAccountID, c.ExpenseAccountID,
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save product category "+c.CategoryID)
	}
	return nil
}

func (r *PgxDeterminationRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT product_id, workplace_id, name, category_id, income_account_id, expense_account_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM products WHERE product_id = $1;
	`
	var p domain.Product
	err := r.db.QueryRow(ctx, query, productID).Scan(
		&p.ProductID, &p.WorkplaceID, &p.Name, &p.CategoryID, &p.IncomeAccountID, &p.ExpenseAccountID,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find product "+productID)
	}
	return &p, nil
}

func (r *PgxDeterminationRepository) SaveProduct(ctx context.Context, p domain.Product) error {
	query := `
		INSERT INTO products (
			product_id, workplace_id, name, category_id, income_account_id, expense_account_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (product_id) DO UPDATE SET
			name = EXCLUDED.name,
			category_id = EXCLUDED.category_id,
			income_account_id = EXCLUDED.income_account_id,
			expense_account_id = EXCLUDED.expense_account_id,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		p.ProductID, p.WorkplaceID, p.Name, p.CategoryID, p.IncomeAccountID, p.ExpenseAccountID,
		p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save product "+p.ProductID)
	}
	return nil
}

func (r *PgxDeterminationRepository) FindThirdPartyTypeByID(ctx context.Context, typeID string) (*domain.ThirdPartyType, error) {
	query := `
		SELECT type_id, workplace_id, name, receivable_account_id, payable_account_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM third_party_types WHERE type_id = $1;
	`
	var t domain.ThirdPartyType
	err := r.db.QueryRow(ctx, query, typeID).Scan(
		&t.TypeID, &t.WorkplaceID, &t.Name, &t.ReceivableAccountID, &t.PayableAccountID,
		&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find third party type "+typeID)
	}
	return &t, nil
}

func (r *PgxDeterminationRepository) SaveThirdPartyType(ctx context.Context, t domain.ThirdPartyType) error {
	query := `
		INSERT INTO third_party_types (
			type_id, workplace_id, name, receivable_account_id, payable_account_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (type_id) DO UPDATE SET
			name = EXCLUDED.name,
			receivable_account_id = EXCLUDED.receivable_account_id,
			payable_account_id = EXCLUDED.payable_account_id,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		t.TypeID, t.WorkplaceID, t.Name, t.ReceivableAccountID, t.PayableAccountID,
		t.CreatedAt, t.CreatedBy, t.LastUpdatedAt, t.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save third party type "+t.TypeID)
	}
	return nil
}

func (r *PgxDeterminationRepository) FindThirdPartyByID(ctx context.Context, thirdPartyID string) (*domain.ThirdParty, error) {
	query := `
		SELECT third_party_id, workplace_id, name, type_id, receivable_account_id, payable_account_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM third_parties WHERE third_party_id = $1;
	`
	var p domain.ThirdParty
	err := r.db.QueryRow(ctx, query, thirdPartyID).Scan(
		&p.ThirdPartyID, &p.WorkplaceID, &p.Name, &p.TypeID, &p.ReceivableAccountID, &p.PayableAccountID,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find third party "+thirdPartyID)
	}
	return &p, nil
}

func (r *PgxDeterminationRepository) SaveThirdParty(ctx context.Context, p domain.ThirdParty) error {
	query := `
		INSERT INTO third_parties (
			third_party_id, workplace_id, name, type_id, receivable_account_id, payable_account_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (third_party_id) DO UPDATE SET
			name = EXCLUDED.name,
			type_id = EXCLUDED.type_id,
			receivable_account_id = EXCLUDED.receivable_account_id,
			payable_account_id = EXCLUDED.payable_account_id,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		p.ThirdPartyID, p.WorkplaceID, p.Name, p.TypeID, p.ReceivableAccountID, p.PayableAccountID,
		p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save third party "+p.ThirdPartyID)
	}
	return nil
}

func (r *PgxDeterminationRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `
		SELECT bank_account_id, workplace_id, name, ledger_account_id, journal_code,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM bank_accounts WHERE bank_account_id = $1;
	`
	var b domain.BankAccount
	err := r.db.QueryRow(ctx, query, bankAccountID).Scan(
		&b.BankAccountID, &b.WorkplaceID, &b.Name, &b.LedgerAccountID, &b.JournalCode,
		&b.CreatedAt, &b.CreatedBy, &b.LastUpdatedAt, &b.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find bank account "+bankAccountID)
	}
	return &b, nil
}

func (r *PgxDeterminationRepository) SaveBankAccount(ctx context.Context, b domain.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (
			bank_account_id, workplace_id, name, ledger_account_id, journal_code,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (bank_account_id) DO UPDATE SET
			name = EXCLUDED.name,
			ledger_account_id = EXCLUDED.ledger_account_id,
			journal_code = EXCLUDED.journal_code,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		b.BankAccountID, b.WorkplaceID, b.Name, b.LedgerAccountID, b.JournalCode,
		b.CreatedAt, b.CreatedBy, b.LastUpdatedAt, b.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save bank account "+b.BankAccountID)
	}
	return nil
}
