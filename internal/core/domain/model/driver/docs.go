// Package driver implements the delivery driver aggregate.
//
// A Driver cycles between Available, OnDelivery and OffDuty. Assignments
// are exclusive: a driver holds at most one order, recorded as the current
// order ID, and holds it exactly while OnDelivery. The dual update of the
// order and the driver during assignment is coordinated one level up, in
// the command handlers.
package driver
