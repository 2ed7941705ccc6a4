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

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// Create persists the invoice header and all its lines in one transaction.
func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice, lines []domain.InvoiceLine) error {
	invoice.ID = uuid.New()
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	headerQuery := `INSERT INTO invoices (id, tenant_id, party_id, invoice_number, invoice_date, interstate,
		taxable_value, cgst, sgst, igst, grand_total, amount_paid, balance_due, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err = tx.ExecContext(ctx, headerQuery,
		invoice.ID, invoice.TenantID, invoice.PartyID, invoice.InvoiceNumber,
		invoice.InvoiceDate, invoice.Interstate, invoice.TaxableValue,
		invoice.CGST, invoice.SGST, invoice.IGST, invoice.GrandTotal,
		invoice.AmountPaid, invoice.BalanceDue, invoice.Status,
		invoice.CreatedBy, invoice.CreatedAt, invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create header: %w", err)
	}

	lineQuery := `INSERT INTO invoice_lines (id, invoice_id, tenant_id, description, hsn_sac_code,
		quantity, unit_price, discount_percent, tax_rate_percent, taxable_value, cgst, sgst, igst)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	for i := range lines {
		lines[i].ID = uuid.New()
		lines[i].InvoiceID = invoice.ID
		lines[i].TenantID = invoice.TenantID
		_, err = tx.ExecContext(ctx, lineQuery,
			lines[i].ID, lines[i].InvoiceID, lines[i].TenantID, lines[i].Description,
			lines[i].HSNSACCode, lines[i].Quantity, lines[i].UnitPrice,
			lines[i].DiscountPercent, lines[i].TaxRatePercent, lines[i].TaxableValue,
			lines[i].CGST, lines[i].SGST, lines[i].IGST)
		if err != nil {
			return fmt.Errorf("invoiceRepo.Create line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice,
		"SELECT * FROM invoices WHERE id = $1 AND tenant_id = $2", invoiceID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &invoice, nil
}

func (r *invoiceRepo) GetLines(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceLine, error) {
	var lines []domain.InvoiceLine
	err := r.db.SelectContext(ctx, &lines,
		"SELECT * FROM invoice_lines WHERE invoice_id = $1 AND tenant_id = $2", invoiceID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetLines: %w", err)
	}
	return lines, nil
}

func (r *invoiceRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM invoices WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByTenant count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices WHERE tenant_id = $1 ORDER BY invoice_date DESC, invoice_number DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByTenant: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListByParty(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices WHERE tenant_id = $1 AND party_id = $2 AND invoice_date >= $3 AND invoice_date <= $4
		ORDER BY invoice_date ASC, created_at ASC`,
		tenantID, partyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByParty: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices WHERE tenant_id = $1 AND invoice_date >= $2 AND invoice_date <= $3
		ORDER BY invoice_date ASC, created_at ASC`,
		tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByDateRange: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) UpdateBalance(ctx context.Context, invoice *domain.Invoice) error {
	invoice.UpdatedAt = time.Now().UTC()
	query := `UPDATE invoices SET amount_paid = $1, balance_due = $2, status = $3, updated_at = $4
		WHERE id = $5 AND tenant_id = $6`
	result, err := r.db.ExecContext(ctx, query,
		invoice.AmountPaid, invoice.BalanceDue, invoice.Status, invoice.UpdatedAt,
		invoice.ID, invoice.TenantID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateBalance: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextInvoiceNumber allocates the next sequential number for the tenant from
// a per-tenant counter row. The upsert-returning form keeps allocation atomic
// under concurrent invoice creation.
func (r *invoiceRepo) NextInvoiceNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	var seq int64
	query := `INSERT INTO invoice_counters (tenant_id, seq) VALUES ($1, 1)
		ON CONFLICT (tenant_id) DO UPDATE SET seq = invoice_counters.seq + 1
		RETURNING seq`
	if err := r.db.GetContext(ctx, &seq, query, tenantID); err != nil {
		return "", fmt.Errorf("invoiceRepo.NextInvoiceNumber: %w", err)
	}
	return fmt.Sprintf("INV-%04d", seq), nil
}
