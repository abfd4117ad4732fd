package kepler

import (
	"math"
)

const (
	// circularε is the eccentricity below which an orbit is treated as circular
	// by the solver (E = M exactly when e = 0).
	circularε = 1e-8
	// solverTolerance is the default absolute tolerance on the Newton step.
	solverTolerance = 1e-9
	// solverMaxIters is the default iteration budget.
	solverMaxIters = 200
)

// KeplerSolver converts mean anomaly to eccentric anomaly by solving
// Kepler's equation E - e·sin(E) = M with Newton-Raphson iteration.
//
// The solver is best-effort: it never fails. If the iteration budget runs
// out before the step shrinks below the tolerance, the last iterate is
// returned with converged set to false. Callers which need stricter
// guarantees should inspect the returned residual.
type KeplerSolver struct {
	Tolerance float64
	MaxIters  int
}

// NewKeplerSolver returns a solver with the configured tolerance and
// iteration budget (cf. conf.toml), or the defaults of 1e-9 and 200.
func NewKeplerSolver() KeplerSolver {
	conf := kepConfig()
	return KeplerSolver{conf.solverTol, conf.solverIters}
}

// SolveE returns the eccentric anomaly E (radians) for the provided mean
// anomaly M (radians, may be unreduced) and eccentricity e ∈ [0, 1).
// The residual is E - e·sin(E) - M at the returned iterate.
func (s KeplerSolver) SolveE(M, e float64) (E, residual float64, converged bool) {
	if e < circularε {
		// Circular orbit: E = M, no iteration needed.
		return M, 0, true
	}
	tol := s.Tolerance
	if tol <= 0 {
		tol = solverTolerance
	}
	maxIters := s.MaxIters
	if maxIters <= 0 {
		maxIters = solverMaxIters
	}
	// Standard starting guess: M itself is fine for moderate eccentricities,
	// π keeps Newton convergent as e approaches 1 (cf. Vallado's KepEqtnE).
	E = M
	if e >= 0.8 {
		E = math.Pi
	}
	for iter := 0; iter < maxIters; iter++ {
		sinE, cosE := math.Sincos(E)
		step := (E - e*sinE - M) / (1 - e*cosE)
		E -= step
		if math.Abs(step) < tol {
			converged = true
			break
		}
	}
	residual = E - e*math.Sin(E) - M
	return
}

// TrueAnomalyFromEccentric converts an eccentric anomaly to the true
// anomaly via atan2, so the result is quadrant-correct.
func TrueAnomalyFromEccentric(E, e float64) float64 {
	sinE, cosE := math.Sincos(E)
	denom := 1 - e*cosE
	sinν := math.Sqrt(1-e*e) * sinE / denom
	cosν := (cosE - e) / denom
	return math.Atan2(sinν, cosν)
}

// EccentricAnomalyFromTrue converts a true anomaly to the eccentric
// anomaly (cf. Vallado page 85).
func EccentricAnomalyFromTrue(ν, e float64) float64 {
	sinν, cosν := math.Sincos(ν)
	denom := 1 + e*cosν
	sinE := math.Sqrt(1-e*e) * sinν / denom
	cosE := (e + cosν) / denom
	return math.Atan2(sinE, cosE)
}

// MeanAnomalyFromEccentric applies Kepler's equation in its closed form.
func MeanAnomalyFromEccentric(E, e float64) float64 {
	return E - e*math.Sin(E)
}
