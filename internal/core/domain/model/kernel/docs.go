// Package kernel provides the shared domain primitives of the fulfillment
// system: the RDC location enumeration, the human-readable OrderID, the
// actor Role enumeration and a UUID value object for store-assigned
// identifiers.
//
// All types here are immutable value objects with validating constructors;
// the zero value of each is invalid. They carry no behavior beyond identity,
// normalization and validation, and are safe for concurrent use.
package kernel
