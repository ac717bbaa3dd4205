package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines and initial tracking history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the mutable state of an existing order. Lines never change
// after checkout; tracking history is append-only, so only events beyond
// the already persisted ones are inserted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"payment_status":    dto.PaymentStatus,
			"status":            dto.Status,
			"origin_rdc":        dto.OriginRDC,
			"driver_name":       dto.DriverName,
			"driver_phone":      dto.DriverPhone,
			"driver_vehicle_no": dto.DriverVehicleNo,
			"delivered_at":      dto.DeliveredAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.OrderID().String())
	}

	if len(dto.Tracking) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Tracking).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by its internal identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getFirst(ctx, id.String(), "id = ?", id.Bytes())
}

// GetByOrderID retrieves an order by its business identifier. OrderID
// canonicalizes to upper case on construction, so a plain equality match
// is already case-insensitive from the caller's point of view.
func (r *GormOrderRepository) GetByOrderID(ctx context.Context, orderID kernel.OrderID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return r.getFirst(ctx, orderID.String(), "order_id = ?", orderID.String())
}

func (r *GormOrderRepository) getFirst(ctx context.Context, ident, query string, arg any) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("line_no") }).
		Preload("Tracking", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", ident)
		}
		return nil, err
	}

	return toDomain(dto)
}
