package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAddDriverCommandIsNotConstructed = errors.New(
	"AddDriverCommand must be created via NewAddDriverCommand constructor",
)

// AddDriverCommand represents a request to register a new delivery driver.
// New drivers start Available.
//
// Example:
//
//	driverID := kernel.NewUUID()
//	cmd, err := NewAddDriverCommand(driverID, "Kasun Silva", "0719876543", "WP-AB-4455", "B1234567")
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewAddDriverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register driver: %w", err)
//	}
type AddDriverCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	name      string
	phone     string
	vehicleNo string
	licenseNo string

	guard guard.ConstructorGuard
}

// NewAddDriverCommand creates a driver registration command.
// Validates that the ID is a valid UUID and name, phone, vehicle number
// and license number are not empty.
func NewAddDriverCommand(driverID kernel.UUID, name, phone, vehicleNo, licenseNo string) (AddDriverCommand, error) {
	command := AddDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setName(name),
		command.setPhone(phone),
		command.setVehicleNo(vehicleNo),
		command.setLicenseNo(licenseNo),
	); err != nil {
		return AddDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDriverCommand) Validate() error {
	return c.guard.Validate(ErrAddDriverCommandIsNotConstructed)
}

// DriverID returns the identifier for the new driver.
func (c AddDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's name.
func (c AddDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver's contact phone.
func (c AddDriverCommand) Phone() string {
	return c.phone
}

// VehicleNo returns the driver's vehicle registration.
func (c AddDriverCommand) VehicleNo() string {
	return c.vehicleNo
}

// LicenseNo returns the driver's driving license number.
func (c AddDriverCommand) LicenseNo() string {
	return c.licenseNo
}

func (c *AddDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AddDriverCommand) setName(name string) error {
	if name == "" {
		return driver.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return driver.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *AddDriverCommand) setVehicleNo(vehicleNo string) error {
	if vehicleNo == "" {
		return driver.ErrVehicleNoIsRequired
	}

	c.vehicleNo = vehicleNo
	return nil
}

func (c *AddDriverCommand) setLicenseNo(licenseNo string) error {
	if licenseNo == "" {
		return driver.ErrLicenseNoIsRequired
	}

	c.licenseNo = licenseNo
	return nil
}
