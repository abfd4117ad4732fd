package kepler

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestHohmannLEO2GEO(t *testing.T) {
	// LEO parking orbit to the geostationary radius.
	μ, rI, rF := testEarth.GM(), 6771.0, 42164.0
	xfer := HohmannFromGM(μ, rI, rF)
	if !floats.EqualWithinAbs(xfer.ATransfer, (rI+rF)/2, 1e-12) {
		t.Fatalf("aT=%f", xfer.ATransfer)
	}
	if !floats.EqualWithinAbs(xfer.ΔvInit, 2.39947, 1e-4) {
		t.Fatalf("ΔvInit=%f", xfer.ΔvInit)
	}
	if !floats.EqualWithinAbs(xfer.ΔvFinal, 1.45722, 1e-4) {
		t.Fatalf("ΔvFinal=%f", xfer.ΔvFinal)
	}
	if !floats.EqualWithinAbs(xfer.ΔvTotal, xfer.ΔvInit+xfer.ΔvFinal, 1e-12) {
		t.Fatalf("ΔvTotal=%f is not the sum of the burns", xfer.ΔvTotal)
	}
	if !floats.EqualWithinAbs(xfer.TOFSeconds(), 19044.3, 1) {
		t.Fatalf("tof=%f s, expected about 5.29 hours", xfer.TOFSeconds())
	}
}

func TestHohmannVallado(t *testing.T) {
	// Reference case: 191.34411 km to 35781.34857 km altitude (Vallado
	// example 6-1), using this package's Earth.
	rI := Earth.Radius + 191.34411
	rF := Earth.Radius + 35781.34857
	xfer := Hohmann(rI, rF, Earth)
	if !floats.EqualWithinAbs(xfer.ΔvInit, 2.457038, velocityε) {
		t.Fatalf("ΔvInit=%f", xfer.ΔvInit)
	}
	if !floats.EqualWithinAbs(xfer.ΔvFinal, 1.478187, velocityε) {
		t.Fatalf("ΔvFinal=%f", xfer.ΔvFinal)
	}
	tofExp := time.Duration(5)*time.Hour + time.Duration(15)*time.Minute + time.Duration(24)*time.Second
	if delta := xfer.TOF - tofExp; delta > time.Second || delta < -time.Second {
		t.Fatalf("tof=%s, expected %s", xfer.TOF, tofExp)
	}
}

func TestHohmannSymmetry(t *testing.T) {
	// Raising and lowering transfers cost the same total Δv and take the
	// same time; the individual burns swap.
	μ := testEarth.GM()
	up := HohmannFromGM(μ, 6771, 42164)
	down := HohmannFromGM(μ, 42164, 6771)
	if !floats.EqualWithinAbs(up.ΔvTotal, down.ΔvTotal, 1e-12) {
		t.Fatalf("total Δv not symmetric: %f != %f", up.ΔvTotal, down.ΔvTotal)
	}
	if up.TOF != down.TOF {
		t.Fatalf("tof not symmetric: %s != %s", up.TOF, down.TOF)
	}
	if !floats.EqualWithinAbs(up.ΔvInit, down.ΔvFinal, 1e-12) || !floats.EqualWithinAbs(up.ΔvFinal, down.ΔvInit, 1e-12) {
		t.Fatal("burn magnitudes did not swap")
	}
}

func TestHohmannDegenerate(t *testing.T) {
	// A transfer between identical radii needs no burn at all.
	xfer := HohmannFromGM(testEarth.GM(), 42164, 42164)
	if xfer.ΔvTotal != 0 {
		t.Fatalf("Δv=%f for a null transfer", xfer.ΔvTotal)
	}
	// ... and its time of flight is half the circular period.
	o := NewOrbit(42164, 0, 0, 0, 0, testEarth)
	if !floats.EqualWithinAbs(xfer.TOFSeconds(), o.PeriodSeconds()/2, 1e-3) {
		t.Fatalf("tof=%f != T/2=%f", xfer.TOFSeconds(), o.PeriodSeconds()/2)
	}
}

func TestHohmannMarsOrbits(t *testing.T) {
	// Sanity about another body: the transfer ellipse apses speeds must
	// straddle the circular speeds.
	rI, rF := Mars.Radius+400, Mars.Radius+17000
	xfer := Hohmann(rI, rF, Mars)
	vI := math.Sqrt(Mars.GM() / rI)
	if xfer.ΔvInit <= 0 || xfer.ΔvInit >= vI {
		t.Fatalf("ΔvInit=%f outside (0, %f)", xfer.ΔvInit, vI)
	}
	if xfer.TOF <= 0 {
		t.Fatal("tof must be positive")
	}
}
