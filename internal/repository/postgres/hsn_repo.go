package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"billmitra/internal/port"
)

type hsnRepo struct {
	db *sqlx.DB
}

// NewHSNRepo creates a new PostgreSQL-backed HSNRepository.
func NewHSNRepo(db *sqlx.DB) port.HSNRepository {
	return &hsnRepo{db: db}
}

// LoadAll fetches the full HSN master. The caller builds an in-memory lookup
// from it at startup; no per-request queries are made against this table.
func (r *hsnRepo) LoadAll(ctx context.Context) ([]port.HSNEntry, error) {
	var entries []port.HSNEntry
	err := r.db.SelectContext(ctx, &entries,
		"SELECT code, description, gst_rate, condition_desc FROM hsn_codes ORDER BY code ASC")
	if err != nil {
		return nil, fmt.Errorf("hsnRepo.LoadAll: %w", err)
	}
	return entries, nil
}
