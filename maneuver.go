package kepler

import (
	"fmt"
	"math"
	"time"
)

// TransferResult holds the burns, total cost and timing of a coplanar
// circular-to-circular Hohmann transfer. Purely derived values.
type TransferResult struct {
	ΔvInit    float64 // km/s, departure burn magnitude
	ΔvFinal   float64 // km/s, arrival burn magnitude
	ΔvTotal   float64 // km/s
	ATransfer float64 // km, semi-major axis of the transfer ellipse
	TOF       time.Duration
}

// TOFSeconds returns the time of flight in seconds.
func (t TransferResult) TOFSeconds() float64 {
	return t.TOF.Seconds()
}

func (t TransferResult) String() string {
	return fmt.Sprintf("Δv=%.4f+%.4f=%.4f km/s, aT=%.1f km, tof=%s", t.ΔvInit, t.ΔvFinal, t.ΔvTotal, t.ATransfer, t.TOF)
}

// HohmannFromGM computes a Hohmann transfer between two circular orbits of
// radii rI and rF about a body of gravitational parameter μ. The transfer
// works in either direction: swapping rI and rF changes which burn is
// which, but not the total cost nor the time of flight.
// Precondition (unchecked): μ, rI and rF must all be positive.
func HohmannFromGM(μ, rI, rF float64) TransferResult {
	aTransfer := 0.5 * (rI + rF)
	vI := math.Sqrt(μ / rI)
	vF := math.Sqrt(μ / rF)
	vDeparture := math.Sqrt((2 * μ / rI) - (μ / aTransfer))
	vArrival := math.Sqrt((2 * μ / rF) - (μ / aTransfer))
	ΔvInit := math.Abs(vDeparture - vI)
	ΔvFinal := math.Abs(vF - vArrival)
	// Half the period of the transfer ellipse.
	tof, _ := time.ParseDuration(fmt.Sprintf("%.6fs", math.Pi*math.Sqrt(math.Pow(aTransfer, 3)/μ)))
	return TransferResult{ΔvInit, ΔvFinal, ΔvInit + ΔvFinal, aTransfer, tof}
}

// Hohmann computes a Hohmann transfer about the provided celestial body.
func Hohmann(rI, rF float64, body CelestialObject) TransferResult {
	return HohmannFromGM(body.GM(), rI, rF)
}
