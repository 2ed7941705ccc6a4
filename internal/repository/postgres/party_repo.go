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

type partyRepo struct {
	db *sqlx.DB
}

// NewPartyRepo creates a new PostgreSQL-backed PartyRepository.
func NewPartyRepo(db *sqlx.DB) port.PartyRepository {
	return &partyRepo{db: db}
}

func (r *partyRepo) Create(ctx context.Context, party *domain.Party) error {
	party.ID = uuid.New()
	now := time.Now().UTC()
	party.CreatedAt = now
	party.UpdatedAt = now

	query := `INSERT INTO parties (id, tenant_id, name, type, gstin, state_code, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		party.ID, party.TenantID, party.Name, party.Type, party.GSTIN,
		party.StateCode, party.Email, party.Phone, party.CreatedAt, party.UpdatedAt)
	if err != nil {
		return fmt.Errorf("partyRepo.Create: %w", err)
	}
	return nil
}

func (r *partyRepo) GetByID(ctx context.Context, tenantID, partyID uuid.UUID) (*domain.Party, error) {
	var party domain.Party
	err := r.db.GetContext(ctx, &party,
		"SELECT * FROM parties WHERE id = $1 AND tenant_id = $2", partyID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("partyRepo.GetByID: %w", err)
	}
	return &party, nil
}

func (r *partyRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, partyType domain.PartyType, offset, limit int) ([]domain.Party, int, error) {
	countQuery := "SELECT COUNT(*) FROM parties WHERE tenant_id = $1"
	listQuery := "SELECT * FROM parties WHERE tenant_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3"
	args := []interface{}{tenantID}
	listArgs := []interface{}{tenantID, limit, offset}

	if partyType != "" {
		countQuery = "SELECT COUNT(*) FROM parties WHERE tenant_id = $1 AND type = $2"
		listQuery = "SELECT * FROM parties WHERE tenant_id = $1 AND type = $2 ORDER BY name ASC LIMIT $3 OFFSET $4"
		args = append(args, partyType)
		listArgs = []interface{}{tenantID, partyType, limit, offset}
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("partyRepo.ListByTenant count: %w", err)
	}

	var parties []domain.Party
	if err := r.db.SelectContext(ctx, &parties, listQuery, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("partyRepo.ListByTenant: %w", err)
	}
	return parties, total, nil
}

func (r *partyRepo) Update(ctx context.Context, party *domain.Party) error {
	party.UpdatedAt = time.Now().UTC()
	query := `UPDATE parties SET name = $1, type = $2, gstin = $3, state_code = $4, email = $5, phone = $6, updated_at = $7
		WHERE id = $8 AND tenant_id = $9`
	result, err := r.db.ExecContext(ctx, query,
		party.Name, party.Type, party.GSTIN, party.StateCode, party.Email,
		party.Phone, party.UpdatedAt, party.ID, party.TenantID)
	if err != nil {
		return fmt.Errorf("partyRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *partyRepo) Delete(ctx context.Context, tenantID, partyID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM parties WHERE id = $1 AND tenant_id = $2", partyID, tenantID)
	if err != nil {
		return fmt.Errorf("partyRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
