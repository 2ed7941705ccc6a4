package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
	"billmitra/internal/port"
)

// estimatedCostRatio approximates the cost basis of a product whose purchase
// price was never recorded. Assumed at 70% of the sale price for margin
// reporting only; invoices and ledgers never use it.
var estimatedCostRatio = decimal.RequireFromString("0.7")

// CreateProductInput is the DTO for creating a product.
type CreateProductInput struct {
	Name          string          `json:"name" binding:"required"`
	HSNSACCode    string          `json:"hsn_sac_code"`
	UnitPrice     decimal.Decimal `json:"unit_price" binding:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
}

// UpdateProductInput is the DTO for updating a product.
type UpdateProductInput struct {
	Name          *string          `json:"name"`
	HSNSACCode    *string          `json:"hsn_sac_code"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	GSTRate       *decimal.Decimal `json:"gst_rate"`
}

// ProductMargin is the per-unit margin estimate for one product.
type ProductMargin struct {
	Product       domain.Product  `json:"product"`
	CostBasis     decimal.Decimal `json:"cost_basis"`
	Margin        decimal.Decimal `json:"margin"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
	Estimated     bool            `json:"estimated"`
}

// ProductService defines the product management contract.
type ProductService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Product, int, error)
	Margins(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]ProductMargin, int, error)
	Update(ctx context.Context, tenantID, productID uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, tenantID, productID uuid.UUID) error
}

type productService struct {
	repo port.ProductRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(repo port.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, tenantID uuid.UUID, input CreateProductInput) (*domain.Product, error) {
	if input.UnitPrice.IsNegative() || input.PurchasePrice.IsNegative() ||
		input.GSTRate.IsNegative() || input.GSTRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}

	product := &domain.Product{
		TenantID:      tenantID,
		Name:          input.Name,
		HSNSACCode:    input.HSNSACCode,
		UnitPrice:     input.UnitPrice,
		PurchasePrice: input.PurchasePrice,
		GSTRate:       input.GSTRate,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, tenantID, productID)
}

func (s *productService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Product, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

// Margins returns per-unit margin estimates. Products without a recorded
// purchase price fall back to the estimated cost ratio and are flagged.
func (s *productService) Margins(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]ProductMargin, int, error) {
	products, total, err := s.repo.ListByTenant(ctx, tenantID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	margins := make([]ProductMargin, 0, len(products))
	for _, p := range products {
		cost := p.PurchasePrice
		estimated := false
		if cost.IsZero() {
			cost = p.UnitPrice.Mul(estimatedCostRatio).Round(2)
			estimated = true
		}
		margin := p.UnitPrice.Sub(cost)
		marginPct := decimal.Zero
		if p.UnitPrice.IsPositive() {
			marginPct = margin.Div(p.UnitPrice).Mul(decimal.NewFromInt(100)).Round(2)
		}
		margins = append(margins, ProductMargin{
			Product:       p,
			CostBasis:     cost,
			Margin:        margin,
			MarginPercent: marginPct,
			Estimated:     estimated,
		})
	}
	return margins, total, nil
}

func (s *productService) Update(ctx context.Context, tenantID, productID uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.HSNSACCode != nil {
		product.HSNSACCode = *input.HSNSACCode
	}
	if input.UnitPrice != nil {
		product.UnitPrice = *input.UnitPrice
	}
	if input.PurchasePrice != nil {
		product.PurchasePrice = *input.PurchasePrice
	}
	if input.GSTRate != nil {
		product.GSTRate = *input.GSTRate
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, productID)
}
