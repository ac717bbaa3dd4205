package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// RDC identifies one of the fixed Regional Distribution Centers.
// The persisted representation is the upper-cased name ("NORTH", "SOUTH",
// "EAST", "WEST", "CENTRAL"); ParseRDC normalizes case on the way in so
// callers may submit any casing.
//
// RDC is a value object: the zero value is invalid and every instance must
// come from ParseRDC or one of the exported constants.
type RDC string

const (
	RDCNorth   RDC = "NORTH"
	RDCSouth   RDC = "SOUTH"
	RDCEast    RDC = "EAST"
	RDCWest    RDC = "WEST"
	RDCCentral RDC = "CENTRAL"
)

// getValidRDCs returns the fixed set of distribution centers.
func getValidRDCs() map[RDC]struct{} {
	return map[RDC]struct{}{
		RDCNorth:   {},
		RDCSouth:   {},
		RDCEast:    {},
		RDCWest:    {},
		RDCCentral: {},
	}
}

// ParseRDC converts a raw location string into an RDC, normalizing case.
// Returns an error for empty input or a location outside the fixed set.
func ParseRDC(raw string) (RDC, error) {
	if raw == "" {
		return "", errs.NewValueIsRequiredError("rdc")
	}

	rdc := RDC(strings.ToUpper(strings.TrimSpace(raw)))
	if err := rdc.Validate(); err != nil {
		return "", err
	}

	return rdc, nil
}

// Validate checks that the RDC is one of the enumerated distribution centers.
func (r RDC) Validate() error {
	if _, ok := getValidRDCs()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("rdc",
			fmt.Errorf("%q is not a known distribution center", string(r)))
	}
	return nil
}

// String returns the persisted upper-cased name.
func (r RDC) String() string {
	return string(r)
}

// IsEqual compares two RDCs.
func (r RDC) IsEqual(other RDC) bool {
	return r == other
}
