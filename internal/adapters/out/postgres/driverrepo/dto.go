// Package driverrepo persists driver aggregates. The current order column
// doubles as the registry's reverse index: finding who is delivering an
// order is a lookup on it.
package driverrepo

import (
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for driver aggregates.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	VehicleNo string
	LicenseNo string

	Status         string  `gorm:"index;size:16"`
	CurrentOrderID *string `gorm:"index;size:16"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		VehicleNo: aggregate.VehicleNo(),
		LicenseNo: aggregate.LicenseNo(),
		Status:    aggregate.Status().String(),
	}

	if orderID := aggregate.CurrentOrderID(); orderID != nil {
		raw := orderID.String()
		dto.CurrentOrderID = &raw
	}

	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := driver.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.OrderID
	if dto.CurrentOrderID != nil {
		orderID, orderErr := kernel.ParseOrderID(*dto.CurrentOrderID)
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &orderID
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone, dto.VehicleNo, dto.LicenseNo, status, currentOrderID)
}
