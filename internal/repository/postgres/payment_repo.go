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

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	payment.ID = uuid.New()
	payment.CreatedAt = time.Now().UTC()

	query := `INSERT INTO payments (id, tenant_id, invoice_id, party_id, amount, payment_date, method, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID, payment.TenantID, payment.InvoiceID, payment.PartyID,
		payment.Amount, payment.PaymentDate, payment.Method, payment.Reference,
		payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentRepo) ListByParty(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.SelectContext(ctx, &payments,
		`SELECT * FROM payments WHERE tenant_id = $1 AND party_id = $2 AND payment_date >= $3 AND payment_date <= $4
		ORDER BY payment_date ASC, created_at ASC`,
		tenantID, partyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByParty: %w", err)
	}
	return payments, nil
}

func (r *paymentRepo) ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.SelectContext(ctx, &payments,
		`SELECT * FROM payments WHERE tenant_id = $1 AND payment_date >= $2 AND payment_date <= $3
		ORDER BY payment_date ASC, created_at ASC`,
		tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByDateRange: %w", err)
	}
	return payments, nil
}
