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

type ewayBillRepo struct {
	db *sqlx.DB
}

// NewEWayBillRepo creates a new PostgreSQL-backed EWayBillRepository.
func NewEWayBillRepo(db *sqlx.DB) port.EWayBillRepository {
	return &ewayBillRepo{db: db}
}

func (r *ewayBillRepo) Create(ctx context.Context, bill *domain.EWayBill) error {
	bill.ID = uuid.New()
	now := time.Now().UTC()
	bill.CreatedAt = now
	bill.UpdatedAt = now

	query := `INSERT INTO eway_bills (id, tenant_id, invoice_id, bill_number, consignment_value, distance_km,
		transport_mode, status, issued_at, valid_until, cancelled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		bill.ID, bill.TenantID, bill.InvoiceID, bill.BillNumber,
		bill.ConsignmentValue, bill.DistanceKm, bill.TransportMode, bill.Status,
		bill.IssuedAt, bill.ValidUntil, bill.CancelledAt, bill.CreatedAt, bill.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ewayBillRepo.Create: %w", err)
	}
	return nil
}

func (r *ewayBillRepo) GetByID(ctx context.Context, tenantID, billID uuid.UUID) (*domain.EWayBill, error) {
	var bill domain.EWayBill
	err := r.db.GetContext(ctx, &bill,
		"SELECT * FROM eway_bills WHERE id = $1 AND tenant_id = $2", billID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ewayBillRepo.GetByID: %w", err)
	}
	return &bill, nil
}

func (r *ewayBillRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.EWayBill, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM eway_bills WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("ewayBillRepo.ListByTenant count: %w", err)
	}

	var bills []domain.EWayBill
	err = r.db.SelectContext(ctx, &bills,
		"SELECT * FROM eway_bills WHERE tenant_id = $1 ORDER BY issued_at DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ewayBillRepo.ListByTenant: %w", err)
	}
	return bills, total, nil
}

func (r *ewayBillRepo) UpdateStatus(ctx context.Context, bill *domain.EWayBill) error {
	bill.UpdatedAt = time.Now().UTC()
	query := `UPDATE eway_bills SET status = $1, cancelled_at = $2, updated_at = $3
		WHERE id = $4 AND tenant_id = $5`
	result, err := r.db.ExecContext(ctx, query,
		bill.Status, bill.CancelledAt, bill.UpdatedAt, bill.ID, bill.TenantID)
	if err != nil {
		return fmt.Errorf("ewayBillRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
