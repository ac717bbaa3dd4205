package order

import (
	"fulfillment/internal/pkg/errs"
)

// Placeholder values shown for orders that have no driver assigned yet.
const (
	DriverNamePending      = "Pending Assignment"
	DriverFieldPlaceholder = "--"
)

// DriverInfo is the snapshot of the assigned driver stored on the order.
// The snapshot is denormalized on purpose: the customer-facing tracking
// view must keep showing the driver who delivered the order even if the
// driver record changes later.
type DriverInfo struct {
	name      string
	phone     string
	vehicleNo string

	isConstructed bool
}

// NewDriverInfo creates a driver snapshot.
func NewDriverInfo(name, phone, vehicleNo string) (DriverInfo, error) {
	if name == "" {
		return DriverInfo{}, errs.NewValueIsRequiredError("driver name")
	}

	return DriverInfo{
		name:          name,
		phone:         phone,
		vehicleNo:     vehicleNo,
		isConstructed: true,
	}, nil
}

// UnassignedDriverInfo returns the placeholder snapshot shown before a
// driver is assigned.
func UnassignedDriverInfo() DriverInfo {
	return DriverInfo{
		name:          DriverNamePending,
		phone:         DriverFieldPlaceholder,
		vehicleNo:     DriverFieldPlaceholder,
		isConstructed: true,
	}
}

// Validate ensures the snapshot came from a constructor.
func (d DriverInfo) Validate() error {
	if !d.isConstructed {
		return errs.NewValueIsInvalidError("driver info must be created via NewDriverInfo")
	}
	return nil
}

// Name returns the driver's name.
func (d DriverInfo) Name() string {
	return d.name
}

// Phone returns the driver's contact phone.
func (d DriverInfo) Phone() string {
	return d.phone
}

// VehicleNo returns the driver's vehicle registration.
func (d DriverInfo) VehicleNo() string {
	return d.vehicleNo
}
