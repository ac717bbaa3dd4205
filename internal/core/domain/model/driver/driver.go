package driver

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a driver without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrVehicleNoIsRequired is returned when attempting to create a driver without a vehicle number.
	ErrVehicleNoIsRequired = errs.NewValueIsRequiredError("vehicleNo")
	// ErrLicenseNoIsRequired is returned when attempting to create a driver without a license number.
	ErrLicenseNoIsRequired = errs.NewValueIsRequiredError("licenseNo")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// DriverUnavailableError reports an order assignment to a driver who cannot
// take it.
type DriverUnavailableError struct {
	Name   string
	Status Status
}

// NewDriverUnavailableError creates a DriverUnavailableError.
func NewDriverUnavailableError(name string, status Status) *DriverUnavailableError {
	return &DriverUnavailableError{Name: name, Status: status}
}

func (e *DriverUnavailableError) Error() string {
	return fmt.Sprintf("driver %s is not available: status is %s", e.Name, e.Status)
}

func (e *DriverUnavailableError) Unwrap() error {
	return errs.ErrConflict
}

// Driver is the aggregate root for a delivery driver. It manages the
// driver's identity, duty status and current delivery.
//
// Business rules:
//   - A driver carries at most one order at a time
//   - A current order is present exactly while the driver is OnDelivery
//   - Only Available drivers can take orders or go off duty
type Driver struct {
	id        kernel.UUID
	name      string
	phone     string
	vehicleNo string
	licenseNo string

	status         Status
	currentOrderID *kernel.OrderID

	guard guard.ConstructorGuard
}

// NewDriver creates a new driver in the Available state.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: driver's name (required)
//   - phone: contact phone (required)
//   - vehicleNo: vehicle registration (required)
//   - licenseNo: driving license number (required)
//
// Returns:
//   - *Driver: a fully initialized driver ready for assignments
//   - error: validation error if any parameter is invalid
func NewDriver(id kernel.UUID, name, phone, vehicleNo, licenseNo string) (*Driver, error) {
	driver := &Driver{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setVehicleNo(vehicleNo),
		driver.setLicenseNo(licenseNo),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a driver from persistent storage, including
// the duty status and current delivery at the time of persistence.
//
// The status and current order must be consistent: an order is present
// exactly while the driver is OnDelivery.
func RestoreDriver(
	id kernel.UUID,
	name, phone, vehicleNo, licenseNo string,
	status Status,
	currentOrderID *kernel.OrderID,
) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setVehicleNo(vehicleNo),
		driver.setLicenseNo(licenseNo),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if currentOrderID != nil {
		if err := currentOrderID.Validate(); err != nil {
			return nil, err
		}
	}

	if (currentOrderID != nil) != (status == OnDelivery) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"driver state is invalid",
			fmt.Errorf("status %s is inconsistent with current order", status),
		)
	}

	driver.status = status
	if currentOrderID != nil {
		orderID := *currentOrderID
		driver.currentOrderID = &orderID
	}

	return driver, nil
}

// Validate checks if the Driver was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact phone.
func (d *Driver) Phone() string {
	return d.phone
}

// VehicleNo returns the driver's vehicle registration.
func (d *Driver) VehicleNo() string {
	return d.vehicleNo
}

// LicenseNo returns the driver's driving license number.
func (d *Driver) LicenseNo() string {
	return d.licenseNo
}

// Status returns the driver's duty status.
func (d *Driver) Status() Status {
	return d.status
}

// CurrentOrderID returns the order the driver is delivering.
// It is nil unless the driver is OnDelivery.
func (d *Driver) CurrentOrderID() *kernel.OrderID {
	return d.currentOrderID
}

// IsAvailable reports whether the driver can take an order.
func (d *Driver) IsAvailable() bool {
	return d.status == Available
}

// Snapshot returns the driver details stored on an order at dispatch.
func (d *Driver) Snapshot() (order.DriverInfo, error) {
	return order.NewDriverInfo(d.name, d.phone, d.vehicleNo)
}

// AssignOrder puts the driver on delivery for the given order.
//
// Business rules:
//   - The driver must be Available
//   - The driver holds the order until CompleteDelivery
//
// Returns DriverUnavailableError if the driver cannot take the order.
func (d *Driver) AssignOrder(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if d.status != Available {
		return NewDriverUnavailableError(d.name, d.status)
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.currentOrderID = &orderID
	return nil
}

// CompleteDelivery releases the driver's current order and makes the
// driver Available again.
//
// Returns an error if the driver is not out on a delivery.
func (d *Driver) CompleteDelivery() error {
	newStatus, err := d.status.Release()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.currentOrderID = nil
	return nil
}

// GoOffDuty takes an idle driver off duty.
//
// Returns an error if the driver is on a delivery or already off duty.
func (d *Driver) GoOffDuty() error {
	newStatus, err := d.status.GoOffDuty()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// ReturnToDuty brings an off-duty driver back to Available.
func (d *Driver) ReturnToDuty() error {
	newStatus, err := d.status.ReturnToDuty()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicleNo(vehicleNo string) error {
	if vehicleNo == "" {
		return ErrVehicleNoIsRequired
	}
	d.vehicleNo = vehicleNo
	return nil
}

func (d *Driver) setLicenseNo(licenseNo string) error {
	if licenseNo == "" {
		return ErrLicenseNoIsRequired
	}
	d.licenseNo = licenseNo
	return nil
}
