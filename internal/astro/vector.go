package astro

import (
	"math"
	"strconv"
	"strings"
)

// Vec3 represents a 3D vector. Units are whatever the caller supplies
// (light-years, km, or dimensionless on the unit sphere).
type Vec3 struct {
	X, Y, Z float64
}

// String formats the vector as (x, y, z) using the shortest exact
// representation of each component.
func (v Vec3) String() string {
	return "(" + FormatFloat(v.X) + ", " + FormatFloat(v.Y) + ", " + FormatFloat(v.Z) + ")"
}

// FormatFloat renders f in its shortest round-trip form, using
// exponent notation outside [1e-4, 1e16) and always keeping a decimal point.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Magnitude returns the Euclidean norm of v.
func Magnitude(v Vec3) float64 {
	return v.Norm()
}

// UnitVector divides each component by the magnitude of v.
//
// A zero vector yields NaN components; callers that need an error
// should use CheckedProjectStar or test IsZero first.
func UnitVector(v Vec3) Vec3 {
	m := Magnitude(v)
	return Vec3{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
}

// VectorFromPoints returns the vector from p1 to p2.
func VectorFromPoints(p1, p2 Vec3) Vec3 {
	return p2.Sub(p1)
}

// Cross returns the cross product a × b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// RotateTangentUnitVector rotates tangent by a quarter turn about normal
// (Rodrigues' formula with the k(k·v) term dropped, valid for tangent ⟂ normal).
//
// The trig factors are evaluated, not folded: cos(π/2) is 6.1e-17 in
// float64 and that residual stays in the result.
func RotateTangentUnitVector(normal, tangent Vec3) Vec3 {
	cross := Cross(normal, tangent)
	cos := math.Cos(math.Pi / 2)
	sin := math.Sin(math.Pi / 2)
	return tangent.Scale(cos).Add(cross.Scale(sin))
}
