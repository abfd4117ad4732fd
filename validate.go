package kepler

import (
	"errors"
	"fmt"
)

// The engine core trusts its caller and never checks its preconditions.
// These helpers are for the layers which collect user input: call them
// before constructing an Orbit or requesting a transfer.

// ValidateElements checks the bound-orbit invariants required for the
// derived quantities of an Orbit to be meaningful.
func ValidateElements(μ, a, e float64) error {
	if μ <= 0 {
		return errors.New("gravitational parameter must be positive")
	}
	if a <= 0 {
		return errors.New("semi major axis must be positive")
	}
	if e < 0 || e >= 1 {
		return fmt.Errorf("eccentricity %f outside of [0,1): only bound orbits are supported", e)
	}
	return nil
}

// ValidateRadii checks the preconditions of a Hohmann transfer.
func ValidateRadii(μ, rI, rF float64) error {
	if μ <= 0 {
		return errors.New("gravitational parameter must be positive")
	}
	if rI <= 0 || rF <= 0 {
		return errors.New("transfer radii must be positive")
	}
	return nil
}
