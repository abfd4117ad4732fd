package kepler

import (
	"math"

	"github.com/gonum/floats"
)

const (
	deg2rad = math.Pi / 180
)

// Vector2 is an immutable planar vector. Components are in kilometers or
// km/s depending on context.
type Vector2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{v.X - w.X, v.Y - w.Y}
}

// Scale returns s*v.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{s * v.X, s * v.Y}
}

// Norm returns the Euclidean norm of v.
func (v Vector2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit returns the unit vector of v, or the nil vector if v is nil.
func (v Vector2) Unit() Vector2 {
	n := v.Norm()
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return Vector2{}
	}
	return v.Scale(1 / n)
}

// Dot returns the inner product of v and w.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of v x w, the only non-zero component for
// planar vectors.
func (v Vector2) Cross(w Vector2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// sign returns the sign of a given number.
func sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}
