// Package orderrepo persists order aggregates. An order spans three tables:
// the order row itself, its immutable lines, and the append-only tracking
// history. Statuses are stored in their persisted string forms so the rows
// stay readable straight from the database.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for order aggregates.
type OrderDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID string    `gorm:"uniqueIndex;size:16"`

	CustomerName    string
	CustomerEmail   string `gorm:"index"`
	CustomerPhone   string
	CustomerAddress string

	Total         float64
	LabelledTotal float64
	PaymentMethod string `gorm:"size:8"`
	PaymentStatus string `gorm:"size:16"`
	Receipt       string

	Status    string `gorm:"index;size:16"`
	OriginRDC string `gorm:"column:origin_rdc"`

	DriverName      *string
	DriverPhone     *string
	DriverVehicleNo *string

	PlacedAt          time.Time
	DeliveredAt       *time.Time
	EstimatedDelivery *time.Time

	Lines    []OrderLineDTO     `gorm:"foreignKey:OrderID;references:ID"`
	Tracking []TrackingEventDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one product line of an order. Lines are written
// at checkout and never change afterwards.
type OrderLineDTO struct {
	OrderID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNo        int       `gorm:"primaryKey"`
	ProductID     string    `gorm:"size:64"`
	Name          string
	Price         float64
	LabelledPrice float64
	Quantity      int
	Image         string
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// TrackingEventDTO represents one entry of an order's tracking history.
// The (order, seq) primary key makes inserts idempotent: re-inserting the
// history on update touches only events that are actually new.
type TrackingEventDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey"`
	Status    string
	Date      time.Time
	Completed bool
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().String(),
		CustomerName:      aggregate.Customer().Name(),
		CustomerEmail:     aggregate.Customer().Email(),
		CustomerPhone:     aggregate.Customer().Phone(),
		CustomerAddress:   aggregate.Customer().Address(),
		Total:             aggregate.Total(),
		LabelledTotal:     aggregate.LabelledTotal(),
		PaymentMethod:     aggregate.PaymentMethod().String(),
		PaymentStatus:     aggregate.PaymentStatus().String(),
		Receipt:           aggregate.Receipt(),
		Status:            aggregate.Status().String(),
		OriginRDC:         aggregate.OriginRDC(),
		PlacedAt:          aggregate.PlacedAt(),
		DeliveredAt:       aggregate.DeliveredAt(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
	}

	if aggregate.HasDriver() {
		info := aggregate.Driver()
		name, phone, vehicleNo := info.Name(), info.Phone(), info.VehicleNo()
		dto.DriverName = &name
		dto.DriverPhone = &phone
		dto.DriverVehicleNo = &vehicleNo
	}

	for i, line := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, OrderLineDTO{
			OrderID:       dto.ID,
			LineNo:        i + 1,
			ProductID:     line.ProductID(),
			Name:          line.Name(),
			Price:         line.Price(),
			LabelledPrice: line.LabelledPrice(),
			Quantity:      line.Quantity(),
			Image:         line.Image(),
		})
	}

	for i, event := range aggregate.Tracking() {
		dto.Tracking = append(dto.Tracking, TrackingEventDTO{
			OrderID:   dto.ID,
			Seq:       i + 1,
			Status:    event.Status(),
			Date:      event.Date(),
			Completed: event.Completed(),
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.ParseOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone, dto.CustomerAddress)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := order.NewLine(l.ProductID, l.Name, l.Price, l.LabelledPrice, l.Quantity, l.Image)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverInfo *order.DriverInfo
	if dto.DriverName != nil {
		info, infoErr := order.NewDriverInfo(
			*dto.DriverName,
			stringOrEmpty(dto.DriverPhone),
			stringOrEmpty(dto.DriverVehicleNo),
		)
		if infoErr != nil {
			return nil, infoErr
		}
		driverInfo = &info
	}

	tracking := make([]order.TrackingEvent, 0, len(dto.Tracking))
	for _, t := range dto.Tracking {
		event, eventErr := order.NewTrackingEvent(t.Status, t.Date)
		if eventErr != nil {
			return nil, eventErr
		}
		tracking = append(tracking, event)
	}

	return order.RestoreOrder(
		id,
		orderID,
		customer,
		lines,
		dto.Total,
		dto.LabelledTotal,
		method,
		paymentStatus,
		dto.Receipt,
		status,
		dto.OriginRDC,
		driverInfo,
		tracking,
		dto.PlacedAt,
		dto.DeliveredAt,
		dto.EstimatedDelivery,
	)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
