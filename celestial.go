package kepler

import (
	"fmt"
	"strings"
)

// CelestialObject defines a celestial object as the central body of an
// orbit. Only the gravitational parameter matters to the planar engine;
// the radius and SOI are carried for altitude conversions and reporting.
type CelestialObject struct {
	Name   string
	Radius float64
	μ      float64
	SOI    float64 // With respect to the Sun
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.μ == b.μ && c.SOI == b.SOI
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined body '%s'", name)
	}
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 695700, 1.32712440017987e11, -1}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 6051.8, 3.24858599e5, 0.616e6}

// Earth is home.
var Earth = CelestialObject{"Earth", 6378.1363, 3.98600433e5, 924645.0}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3396.19, 4.28283100e4, 576000}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 71492.0, 1.266865361e8, 48.2e6}
