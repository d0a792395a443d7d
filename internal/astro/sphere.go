package astro

import "math"

// AngularDiameter returns the small-angle approximation of an object's
// angular diameter in radians. Diameter and distance must share a unit.
func AngularDiameter(diameter, distance float64) float64 {
	return diameter / distance
}

// AngularDiameterInRadians returns the exact angular diameter 2·atan(r/D)
// of a sphere of radius r at distance D. AngularDiameter(2r, D) agrees with
// it for small r/D and diverges as r/D grows.
func AngularDiameterInRadians(radius, distance float64) float64 {
	return 2 * math.Atan(radius/distance)
}

// Inclination returns the angle between a unit vector and the equatorial
// (xy) plane, acos(√(x²+y²)). A point on the equator returns exactly 0.
//
// The acos argument is not clamped; a non-unit input can yield NaN.
func Inclination(p Vec3) float64 {
	if p.Z == 0 {
		return 0
	}
	return math.Acos(math.Sqrt(p.X*p.X + p.Y*p.Y))
}

// RadiansAngleOfNormalisedVectorFromCentre is Inclination without the
// equator guard.
func RadiansAngleOfNormalisedVectorFromCentre(v Vec3) float64 {
	return math.Acos(math.Sqrt(v.X*v.X + v.Y*v.Y))
}

// TangentUnitVector returns the unit tangent at p on the unit sphere that
// points along the meridian toward the pole on p's side of the equator.
//
// theta is p's inclination. The tangent line at p meets the polar axis at
// (0, 0, ±csc θ); the result is the unit vector from p to that point.
// When theta is 0 the tangent line never meets the axis and the zero
// vector is returned.
func TangentUnitVector(p Vec3, theta float64) Vec3 {
	if theta == 0 {
		return Vec3{}
	}
	sz := Csc(theta)
	s := Vec3{Z: sz}
	if p.Z <= 0 {
		s.Z = -sz
	}
	return UnitVector(VectorFromPoints(p, s))
}
