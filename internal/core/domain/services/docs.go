// Package services holds domain services: logic that spans aggregates or
// needs context a single aggregate does not have. TransitionPolicy decides
// whether a caller's role may request an order status change; the order
// aggregate itself still enforces the state machine.
package services
