package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billmitra/internal/domain"
	"billmitra/internal/port"
)

type purchaseRepo struct {
	db *sqlx.DB
}

// NewPurchaseRepo creates a new PostgreSQL-backed PurchaseRepository.
func NewPurchaseRepo(db *sqlx.DB) port.PurchaseRepository {
	return &purchaseRepo{db: db}
}

func (r *purchaseRepo) Create(ctx context.Context, purchase *domain.Purchase) error {
	purchase.ID = uuid.New()
	purchase.CreatedAt = time.Now().UTC()

	query := `INSERT INTO purchases (id, tenant_id, party_id, voucher_number, amount, purchase_date, is_payment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		purchase.ID, purchase.TenantID, purchase.PartyID, purchase.VoucherNumber,
		purchase.Amount, purchase.PurchaseDate, purchase.IsPayment, purchase.CreatedAt)
	if err != nil {
		return fmt.Errorf("purchaseRepo.Create: %w", err)
	}
	return nil
}

func (r *purchaseRepo) ListByParty(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	err := r.db.SelectContext(ctx, &purchases,
		`SELECT * FROM purchases WHERE tenant_id = $1 AND party_id = $2 AND purchase_date >= $3 AND purchase_date <= $4
		ORDER BY purchase_date ASC, created_at ASC`,
		tenantID, partyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("purchaseRepo.ListByParty: %w", err)
	}
	return purchases, nil
}

func (r *purchaseRepo) ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	err := r.db.SelectContext(ctx, &purchases,
		`SELECT * FROM purchases WHERE tenant_id = $1 AND purchase_date >= $2 AND purchase_date <= $3
		ORDER BY purchase_date ASC, created_at ASC`,
		tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("purchaseRepo.ListByDateRange: %w", err)
	}
	return purchases, nil
}
