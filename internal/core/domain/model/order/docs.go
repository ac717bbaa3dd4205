// Package order implements the order fulfillment aggregate.
//
// An Order is created at checkout and moves through a state machine from
// payment review (bank transfers) or pending (card, cash on delivery)
// through processing, dispatch and transit to delivery. Every state change
// appends an event to the order's tracking history, which only ever grows.
//
// The package owns the supporting value objects: order lines with their
// catalog snapshots, the customer contact snapshot, the driver snapshot
// attached at dispatch, and the tracking events themselves.
package order
