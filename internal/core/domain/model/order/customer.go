package order

import (
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Customer is the contact and shipping snapshot captured at checkout.
// It is a value object owned by the order; there is no customer aggregate.
type Customer struct {
	name    string
	email   string
	phone   string
	address string

	isConstructed bool
}

// NewCustomer creates a customer snapshot. Name, email and address are
// required; phone may be empty. The email is normalized to lower case so
// lookups by email are case-insensitive.
func NewCustomer(name, email, phone, address string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return Customer{}, errs.NewValueIsRequiredError("email")
	}
	if address == "" {
		return Customer{}, errs.NewValueIsRequiredError("address")
	}

	return Customer{
		name:          name,
		email:         strings.ToLower(strings.TrimSpace(email)),
		phone:         phone,
		address:       address,
		isConstructed: true,
	}, nil
}

// Validate ensures the customer came from NewCustomer.
func (c Customer) Validate() error {
	if !c.isConstructed {
		return errs.NewValueIsInvalidError("customer must be created via NewCustomer")
	}
	return nil
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Email returns the normalized contact email.
func (c Customer) Email() string {
	return c.email
}

// Phone returns the contact phone, possibly empty.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the shipping address.
func (c Customer) Address() string {
	return c.address
}
