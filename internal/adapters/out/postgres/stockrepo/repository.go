package stockrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockRepository implements StockRepository using GORM.
//
// Adjust relies on a single conditional UPDATE so that concurrent
// adjustments serialize inside the database: no interleaving can drive a
// quantity negative, and no application-level locking is needed.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// Get retrieves the ledger record for a (location, productId) pair.
func (r *GormStockRepository) Get(ctx context.Context, location kernel.RDC, productID string) (*stock.Record, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productId")
	}

	var dto StockRecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "location = ? AND product_id = ?", location.String(), productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock record",
				fmt.Sprintf("%s/%s", location, productID))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLocation retrieves all ledger records at one distribution center.
func (r *GormStockRepository) GetByLocation(ctx context.Context, location kernel.RDC) ([]*stock.Record, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	var dtos []StockRecordDTO
	err := r.db.WithContext(ctx).
		Order("product_id").
		Find(&dtos, "location = ?", location.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Adjust applies a signed delta as one atomic conditional update. The WHERE
// clause carries the non-negative rule, so a concurrent deduction that
// would overdraw the record simply matches no row.
func (r *GormStockRepository) Adjust(
	ctx context.Context,
	location kernel.RDC,
	productID string,
	delta int,
) (*stock.Record, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productId")
	}
	if delta == 0 {
		return nil, stock.ErrZeroAdjustment
	}

	now := time.Now()

	result := r.db.WithContext(ctx).
		Model(&StockRecordDTO{}).
		Where("location = ? AND product_id = ? AND quantity + ? >= 0", location.String(), productID, delta).
		Updates(map[string]any{
			"quantity":     gorm.Expr("quantity + ?", delta),
			"last_updated": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return r.resolveFailedAdjust(ctx, location, productID, delta, now)
	}

	return r.Get(ctx, location, productID)
}

// resolveFailedAdjust distinguishes a missing record from an overdraw after
// the conditional update matched nothing.
func (r *GormStockRepository) resolveFailedAdjust(
	ctx context.Context,
	location kernel.RDC,
	productID string,
	delta int,
	now time.Time,
) (*stock.Record, error) {
	existing, err := r.Get(ctx, location, productID)
	if err == nil {
		return nil, stock.NewInsufficientStockError(location, productID, -delta, existing.Quantity())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if delta < 0 {
		return nil, stock.NewInsufficientStockError(location, productID, -delta, 0)
	}

	record, err := stock.NewRecord(location, productID, now)
	if err != nil {
		return nil, err
	}
	if err = record.Credit(delta, now); err != nil {
		return nil, err
	}

	dto := fromDomain(record)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return record, nil
}

// TotalQuantity sums a product's quantity across all locations.
func (r *GormStockRepository) TotalQuantity(ctx context.Context, productID string) (int, error) {
	if productID == "" {
		return 0, errs.NewValueIsRequiredError("productId")
	}

	var total int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(quantity), 0)
		FROM stock_records
		WHERE product_id = ?
	`, productID).Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

// TotalsByProduct sums quantities across locations for every product in the
// ledger.
func (r *GormStockRepository) TotalsByProduct(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT product_id, SUM(quantity)
		FROM stock_records
		GROUP BY product_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var productID string
		var total int
		if err = rows.Scan(&productID, &total); err != nil {
			return nil, err
		}
		totals[productID] = total
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}

// GetBelowThreshold retrieves records whose quantity is at or below the
// threshold, ordered by quantity so the scarcest come first.
func (r *GormStockRepository) GetBelowThreshold(ctx context.Context, threshold int) ([]*stock.Record, error) {
	if threshold < 0 {
		return nil, errs.NewValueIsOutOfRangeError("threshold", threshold, 0, "unbounded")
	}

	var dtos []StockRecordDTO
	err := r.db.WithContext(ctx).
		Order("quantity, location, product_id").
		Find(&dtos, "quantity <= ?", threshold).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []StockRecordDTO) ([]*stock.Record, error) {
	records := make([]*stock.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
