package astro

// SphereDemoResult holds every step of a tangent-frame walk-through for
// a single direction.
type SphereDemoResult struct {
	Point          Vec3    // unit vector toward the input
	Angle          float64 // Inclination(Point)
	Tangent        Vec3    // TangentUnitVector(Point, Angle)
	TangentVector  Vec3    // Tangent - Point
	RotatedTangent Vec3    // TangentVector turned 90° about Point
	Tip            Vec3    // RotatedTangent + Point
}

// SphereDemo runs the tangent-frame construction for v and returns every
// intermediate value. TangentVector treats the unit tangent as a point,
// so RotatedTangent is generally not a unit vector.
func SphereDemo(v Vec3) SphereDemoResult {
	point := UnitVector(v)
	angle := Inclination(point)
	tangent := TangentUnitVector(point, angle)
	tangentVector := VectorFromPoints(point, tangent)
	rotated := RotateTangentUnitVector(point, tangentVector)

	return SphereDemoResult{
		Point:          point,
		Angle:          angle,
		Tangent:        tangent,
		TangentVector:  tangentVector,
		RotatedTangent: rotated,
		Tip:            rotated.Add(point),
	}
}

// AngularSizeResult expresses an exact angular diameter in several units.
type AngularSizeResult struct {
	Radians         float64
	Degrees         float64
	ArcSeconds      float64
	MilliArcSeconds float64
}

// AngularSize computes the exact angular diameter of a sphere and its
// conversions. Radius and distance must share a unit.
func AngularSize(radius, distance float64) AngularSizeResult {
	rad := AngularDiameterInRadians(radius, distance)
	return AngularSizeResult{
		Radians:         rad,
		Degrees:         DegreesFromRadians(rad),
		ArcSeconds:      ArcSecondsFromRadians(rad),
		MilliArcSeconds: MilliArcSecondsFromRadians(rad),
	}
}

// SunAngularSize is AngularSize for the Sun seen from 1 AU.
func SunAngularSize() AngularSizeResult {
	return AngularSize(SunRadiusKm, KmFromAU(1))
}
