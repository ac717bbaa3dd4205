// Package productrepo implements the catalog gateway against the products
// table. The catalog itself is owned by the storefront; the fulfillment
// side only reads product snapshots at checkout and writes back the
// aggregate stock figure after ledger mutations.
package productrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID            string `gorm:"primaryKey;size:64"`
	Name          string
	Price         float64
	LabelledPrice float64
	Image         string
	TotalStock    int
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// GormCatalogGateway implements CatalogGateway using GORM.
type GormCatalogGateway struct {
	db *gorm.DB
}

// NewGormCatalogGateway creates a new GORM catalog gateway.
func NewGormCatalogGateway(db *gorm.DB) *GormCatalogGateway {
	return &GormCatalogGateway{db: db}
}

// Resolve returns the catalog snapshot for a product.
func (g *GormCatalogGateway) Resolve(ctx context.Context, productID string) (ports.ProductInfo, error) {
	if productID == "" {
		return ports.ProductInfo{}, errs.NewValueIsRequiredError("productId")
	}

	var dto ProductDTO
	if err := g.db.WithContext(ctx).First(&dto, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ProductInfo{}, errs.NewObjectNotFoundError("product", productID)
		}
		return ports.ProductInfo{}, err
	}

	return ports.ProductInfo{
		ID:            dto.ID,
		Name:          dto.Name,
		Price:         dto.Price,
		LabelledPrice: dto.LabelledPrice,
		Image:         dto.Image,
	}, nil
}

// PublishTotalStock writes a product's ledger-wide stock total back to the
// catalog row. The figure is eventually consistent: it is refreshed after
// each committed adjustment and by the periodic rollup job.
func (g *GormCatalogGateway) PublishTotalStock(ctx context.Context, productID string, total int) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	if total < 0 {
		return errs.NewValueIsOutOfRangeError("total", total, 0, "unbounded")
	}

	result := g.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", productID).
		Update("total_stock", total)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", productID)
	}

	return nil
}
