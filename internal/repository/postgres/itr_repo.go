package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billmitra/internal/domain"
	"billmitra/internal/port"
)

type itrRepo struct {
	db *sqlx.DB
}

// NewITRRepo creates a new PostgreSQL-backed ITRRepository.
func NewITRRepo(db *sqlx.DB) port.ITRRepository {
	return &itrRepo{db: db}
}

// Upsert inserts or replaces the computation keyed by
// (tenant_id, user_id, financial_year).
func (r *itrRepo) Upsert(ctx context.Context, comp *domain.ITRComputation) error {
	now := time.Now().UTC()
	if comp.ID == uuid.Nil {
		comp.ID = uuid.New()
		comp.CreatedAt = now
	}
	comp.UpdatedAt = now

	query := `INSERT INTO itr_computations (id, tenant_id, user_id, financial_year, regime,
		gross_receipts, total_expenses, deductions, presumptive, taxable_income, tax_computed,
		rebate, cess, total_tax_liability, tax_paid, tax_payable, refund_due, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (tenant_id, user_id, financial_year) DO UPDATE SET
			regime = EXCLUDED.regime,
			gross_receipts = EXCLUDED.gross_receipts,
			total_expenses = EXCLUDED.total_expenses,
			deductions = EXCLUDED.deductions,
			presumptive = EXCLUDED.presumptive,
			taxable_income = EXCLUDED.taxable_income,
			tax_computed = EXCLUDED.tax_computed,
			rebate = EXCLUDED.rebate,
			cess = EXCLUDED.cess,
			total_tax_liability = EXCLUDED.total_tax_liability,
			tax_paid = EXCLUDED.tax_paid,
			tax_payable = EXCLUDED.tax_payable,
			refund_due = EXCLUDED.refund_due,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		comp.ID, comp.TenantID, comp.UserID, comp.FinancialYear, comp.Regime,
		comp.GrossReceipts, comp.TotalExpenses, comp.Deductions, comp.Presumptive,
		comp.TaxableIncome, comp.TaxComputed, comp.Rebate, comp.Cess,
		comp.TotalTaxLiability, comp.TaxPaid, comp.TaxPayable, comp.RefundDue,
		comp.CreatedAt, comp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("itrRepo.Upsert: %w", err)
	}
	return nil
}

func (r *itrRepo) GetByUserAndYear(ctx context.Context, tenantID, userID uuid.UUID, financialYear string) (*domain.ITRComputation, error) {
	var comp domain.ITRComputation
	err := r.db.GetContext(ctx, &comp,
		"SELECT * FROM itr_computations WHERE tenant_id = $1 AND user_id = $2 AND financial_year = $3",
		tenantID, userID, financialYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("itrRepo.GetByUserAndYear: %w", err)
	}
	return &comp, nil
}

func (r *itrRepo) ListByUser(ctx context.Context, tenantID, userID uuid.UUID) ([]domain.ITRComputation, error) {
	var comps []domain.ITRComputation
	err := r.db.SelectContext(ctx, &comps,
		"SELECT * FROM itr_computations WHERE tenant_id = $1 AND user_id = $2 ORDER BY financial_year DESC",
		tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("itrRepo.ListByUser: %w", err)
	}
	return comps, nil
}
