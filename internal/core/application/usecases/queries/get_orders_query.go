package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves the order list visible to one actor.
// Staff roles see every order; customers see only orders placed with
// their own email address.
//
// Example:
//
//	query, err := queries.NewGetOrdersQuery(kernel.RoleCustomer, "nimal@example.com")
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetOrdersQuery struct {
	role          kernel.Role
	customerEmail string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order list.
// Customers must supply the email their orders were placed with; for staff
// roles the email is ignored and may be empty.
func NewGetOrdersQuery(role kernel.Role, customerEmail string) (GetOrdersQuery, error) {
	if err := role.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	if !role.IsStaff() && customerEmail == "" {
		return GetOrdersQuery{}, errs.NewValueIsRequiredError("customerEmail")
	}

	return GetOrdersQuery{
		role:          role,
		customerEmail: customerEmail,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Role returns the role of the requesting actor.
func (q GetOrdersQuery) Role() kernel.Role {
	return q.role
}

// CustomerEmail returns the email used to scope customer requests.
func (q GetOrdersQuery) CustomerEmail() string {
	return q.customerEmail
}

// GetOrdersQueryResponse represents one order in the listing read model.
// Status carries the customer-facing display form, e.g. "In transit".
type GetOrdersQueryResponse struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
	PaymentMethod string
	PaymentStatus string
	Status        string
	Total         float64
	ItemCount     int
	PlacedAt      time.Time
}
