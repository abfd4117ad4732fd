package kepler

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	distanceε     = 2e1                          // 20 km
	velocityε     = 1e-6                         // in km/s
)

// Orbit defines a bound planar orbit via its orbital elements.
//
// The inclination, RAAN and argument of perigee are carried for reporting
// and for the inertial-frame embedding only: every planar computation
// happens in the perifocal frame. An Orbit is immutable for its lifetime.
//
// The engine trusts its caller: elements are not validated at
// construction, and the behavior of the derived quantities is undefined
// for a <= 0, e >= 1 or a non-positive gravitational parameter. Clamping
// user input is the job of the layer which collects it, cf. ValidateElements.
type Orbit struct {
	a, e, i, Ω, ω float64
	Origin        CelestialObject
	solver        KeplerSolver
}

// NewOrbit creates an orbit from the orbital elements.
// WARNING: Angles must be in degrees not radians.
func NewOrbit(a, e, i, Ω, ω float64, c CelestialObject) Orbit {
	return Orbit{a, e, Deg2rad(i), Deg2rad(Ω), Deg2rad(ω), c, NewKeplerSolver()}
}

// Energyξ returns the specific mechanical energy ξ.
func (o Orbit) Energyξ() float64 {
	return -o.Origin.μ / (2 * o.a)
}

// SemiParameter returns the semi-parameter (semi-latus rectum).
func (o Orbit) SemiParameter() float64 {
	return o.a * (1 - o.e*o.e)
}

// Apoapsis returns the apoapsis radius.
func (o Orbit) Apoapsis() float64 {
	return o.a * (1 + o.e)
}

// Periapsis returns the periapsis radius.
func (o Orbit) Periapsis() float64 {
	return o.a * (1 - o.e)
}

// PeriodSeconds returns the Keplerian orbital period in seconds.
func (o Orbit) PeriodSeconds() float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(o.a, 3)/o.Origin.μ)
}

// Period returns the period of this orbit.
func (o Orbit) Period() time.Duration {
	// The time package does not trivially handle fractions of a second, so let's
	// compute this in a convoluted way...
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", o.PeriodSeconds()))
	return duration
}

// MeanMotion returns the mean motion n in radians per second.
func (o Orbit) MeanMotion() float64 {
	return math.Sqrt(o.Origin.μ / math.Pow(o.a, 3))
}

// PositionAtMeanAnomaly returns the perifocal position (x toward perigee)
// for the provided mean anomaly in radians. The returned radius always
// lies within [a(1-e), a(1+e)].
func (o Orbit) PositionAtMeanAnomaly(M float64) Vector2 {
	E, _, _ := o.solver.SolveE(M, o.e)
	r := o.a * (1 - o.e*math.Cos(E))
	sinν, cosν := math.Sincos(TrueAnomalyFromEccentric(E, o.e))
	return Vector2{r * cosν, r * sinν}
}

// VelocityAtMeanAnomaly returns the perifocal velocity vector for the
// provided mean anomaly in radians (cf. Vallado's COE2RV, page 118).
func (o Orbit) VelocityAtMeanAnomaly(M float64) Vector2 {
	E, _, _ := o.solver.SolveE(M, o.e)
	sinν, cosν := math.Sincos(TrueAnomalyFromEccentric(E, o.e))
	vScale := math.Sqrt(o.Origin.μ / o.SemiParameter())
	return Vector2{-vScale * sinν, vScale * (o.e + cosν)}
}

// VelocityAtRadius returns the orbital speed at the provided radius from
// the vis-viva equation. The caller must supply a radius consistent with
// the orbit: outside [a(1-e), a(1+e)] the radicand goes negative and the
// result is NaN.
func (o Orbit) VelocityAtRadius(r float64) float64 {
	return math.Sqrt(o.Origin.μ * (2/r - 1/o.a))
}

// RVInertial embeds the planar state at the provided mean anomaly into
// 3D and rotates it by (i, Ω, ω) into the inertial frame. Reporting only:
// no planar computation depends on these angles.
func (o Orbit) RVInertial(M float64) (R, V []float64) {
	pos := o.PositionAtMeanAnomaly(M)
	vel := o.VelocityAtMeanAnomaly(M)
	R = PQW2ECI(o.i, o.ω, o.Ω, []float64{pos.X, pos.Y, 0})
	V = PQW2ECI(o.i, o.ω, o.Ω, []float64{vel.X, vel.Y, 0})
	return
}

// Elements returns the stored orbital elements, angles in radians.
func (o Orbit) Elements() (a, e, i, Ω, ω float64) {
	return o.a, o.e, o.i, o.Ω, o.ω
}

// String implements the stringer interface (hence the value receiver)
func (o Orbit) String() string {
	if o.e < eccentricityε {
		// Circular orbit
		return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f", o.a, o.e, Rad2deg(o.i), Rad2deg(o.Ω))
	}
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f", o.a, o.e, Rad2deg(o.i), Rad2deg(o.Ω), Rad2deg(o.ω))
}

// Equals returns whether two orbits are identical within the tolerances
// used throughout this package.
func (o Orbit) Equals(o1 Orbit) (bool, error) {
	if !o.Origin.Equals(o1.Origin) {
		return false, errors.New("different origin")
	}
	if !floats.EqualWithinAbs(o.a, o1.a, distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !floats.EqualWithinAbs(o.e, o1.e, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if !floats.EqualWithinAbs(o.i, o1.i, angleε) {
		return false, errors.New("inclination invalid")
	}
	if !floats.EqualWithinAbs(o.Ω, o1.Ω, angleε) {
		return false, errors.New("RAAN invalid")
	}
	if o.e >= eccentricityε && !floats.EqualWithinAbs(o.ω, o1.ω, angleε) {
		return false, errors.New("argument of perigee invalid")
	}
	return true, nil
}

// Radii2ae returns the semi major axis and the eccentricity from the radii.
func Radii2ae(rA, rP float64) (a, e float64) {
	if rA < rP {
		panic("periapsis cannot be greater than apoapsis")
	}
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}
