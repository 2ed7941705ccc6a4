package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"billmitra/internal/domain"
	"billmitra/internal/port"
)

type industryConfigRepo struct {
	db *sqlx.DB
}

// NewIndustryConfigRepo creates a new PostgreSQL-backed IndustryConfigRepository.
func NewIndustryConfigRepo(db *sqlx.DB) port.IndustryConfigRepository {
	return &industryConfigRepo{db: db}
}

func (r *industryConfigRepo) Get(ctx context.Context, industry domain.Industry) (*domain.IndustryConfig, error) {
	var cfg domain.IndustryConfig
	err := r.db.GetContext(ctx, &cfg,
		"SELECT * FROM industry_config WHERE industry = $1", industry)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("industryConfigRepo.Get: %w", err)
	}
	return &cfg, nil
}

func (r *industryConfigRepo) List(ctx context.Context) ([]domain.IndustryConfig, error) {
	var configs []domain.IndustryConfig
	err := r.db.SelectContext(ctx, &configs,
		"SELECT * FROM industry_config ORDER BY industry ASC")
	if err != nil {
		return nil, fmt.Errorf("industryConfigRepo.List: %w", err)
	}
	return configs, nil
}
