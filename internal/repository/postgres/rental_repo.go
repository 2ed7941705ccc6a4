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

type rentalRepo struct {
	db *sqlx.DB
}

// NewRentalRepo creates a new PostgreSQL-backed RentalRepository.
func NewRentalRepo(db *sqlx.DB) port.RentalRepository {
	return &rentalRepo{db: db}
}

func (r *rentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	rental.ID = uuid.New()
	now := time.Now().UTC()
	rental.CreatedAt = now
	rental.UpdatedAt = now

	query := `INSERT INTO rentals (id, tenant_id, party_id, item_name, rate_per_day, late_fee_per_day,
		start_date, expected_return_date, returned_at, late_fees, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		rental.ID, rental.TenantID, rental.PartyID, rental.ItemName,
		rental.RatePerDay, rental.LateFeePerDay, rental.StartDate,
		rental.ExpectedReturnDate, rental.ReturnedAt, rental.LateFees,
		rental.Status, rental.CreatedAt, rental.UpdatedAt)
	if err != nil {
		return fmt.Errorf("rentalRepo.Create: %w", err)
	}
	return nil
}

func (r *rentalRepo) GetByID(ctx context.Context, tenantID, rentalID uuid.UUID) (*domain.Rental, error) {
	var rental domain.Rental
	err := r.db.GetContext(ctx, &rental,
		"SELECT * FROM rentals WHERE id = $1 AND tenant_id = $2", rentalID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("rentalRepo.GetByID: %w", err)
	}
	return &rental, nil
}

func (r *rentalRepo) ListByStatus(ctx context.Context, tenantID uuid.UUID, status domain.RentalStatus) ([]domain.Rental, error) {
	var rentals []domain.Rental
	err := r.db.SelectContext(ctx, &rentals,
		"SELECT * FROM rentals WHERE tenant_id = $1 AND status = $2 ORDER BY expected_return_date ASC",
		tenantID, status)
	if err != nil {
		return nil, fmt.Errorf("rentalRepo.ListByStatus: %w", err)
	}
	return rentals, nil
}

func (r *rentalRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Rental, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM rentals WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("rentalRepo.ListByTenant count: %w", err)
	}

	var rentals []domain.Rental
	err = r.db.SelectContext(ctx, &rentals,
		"SELECT * FROM rentals WHERE tenant_id = $1 ORDER BY start_date DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("rentalRepo.ListByTenant: %w", err)
	}
	return rentals, total, nil
}

func (r *rentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	rental.UpdatedAt = time.Now().UTC()
	query := `UPDATE rentals SET returned_at = $1, late_fees = $2, status = $3, updated_at = $4
		WHERE id = $5 AND tenant_id = $6`
	result, err := r.db.ExecContext(ctx, query,
		rental.ReturnedAt, rental.LateFees, rental.Status, rental.UpdatedAt,
		rental.ID, rental.TenantID)
	if err != nil {
		return fmt.Errorf("rentalRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
