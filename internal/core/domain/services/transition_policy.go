package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// AccessDeniedError reports a status change the caller's role does not allow.
type AccessDeniedError struct {
	Role   kernel.Role
	Detail string
}

// NewAccessDeniedError creates an AccessDeniedError.
func NewAccessDeniedError(role kernel.Role, detail string) *AccessDeniedError {
	return &AccessDeniedError{Role: role, Detail: detail}
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied for role %s: %s", e.Role, e.Detail)
}

func (e *AccessDeniedError) Unwrap() error {
	return errs.ErrAccessDenied
}

// TransitionPolicy is a domain service deciding who may request which order
// status change. The Status state machine decides whether a transition is
// possible at all; the policy decides whether this caller may request it.
//
// Rules:
//   - Staff roles may request any transition the state machine allows
//   - Customers may only cancel, and only while the order is Pending
type TransitionPolicy struct{}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// Authorize checks whether the role may move an order from its current
// status to the requested one. It does not mutate the order; the state
// machine still validates the transition itself when it is applied.
//
// Returns:
//   - nil when the request is allowed
//   - AccessDeniedError when the role may never request the transition
//   - IllegalTransitionError when a customer cancels too late
func (p TransitionPolicy) Authorize(role kernel.Role, current, requested order.Status) error {
	if err := role.Validate(); err != nil {
		return err
	}

	if role.IsStaff() {
		return nil
	}

	if requested != order.Canceled {
		return NewAccessDeniedError(role, "customers can only cancel their orders")
	}

	if current != order.Pending {
		return order.NewIllegalTransitionError(current, requested)
	}

	return nil
}
