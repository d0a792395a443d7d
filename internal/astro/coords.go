package astro

import "math"

// PositionFromEquatorial converts equatorial coordinates (J2000 RA/Dec in
// degrees) and a distance to a Cartesian vector in the distance's unit.
// +X points at the vernal equinox and +Z at the north celestial pole.
func PositionFromEquatorial(raDeg, decDeg, distance float64) Vec3 {
	ra := RadiansFromDegrees(raDeg)
	dec := RadiansFromDegrees(decDeg)

	cosDec := math.Cos(dec)
	return Vec3{
		X: distance * cosDec * math.Cos(ra),
		Y: distance * cosDec * math.Sin(ra),
		Z: distance * math.Sin(dec),
	}
}

// EquatorialFromPosition is the inverse of PositionFromEquatorial.
// RA is normalized to 0-360. A zero vector returns all zeros.
func EquatorialFromPosition(v Vec3) (raDeg, decDeg, distance float64) {
	distance = v.Norm()
	if distance == 0 {
		return 0, 0, 0
	}

	raDeg = DegreesFromRadians(math.Atan2(v.Y, v.X))
	if raDeg < 0 {
		raDeg += 360
	}
	decDeg = DegreesFromRadians(math.Asin(v.Z / distance))
	return raDeg, decDeg, distance
}

// AngularSeparation returns the angle in degrees between two equatorial
// directions, using the haversine form for accuracy at small separations.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	ra1Rad := RadiansFromDegrees(ra1)
	dec1Rad := RadiansFromDegrees(dec1)
	ra2Rad := RadiansFromDegrees(ra2)
	dec2Rad := RadiansFromDegrees(dec2)

	dRA := ra2Rad - ra1Rad
	dDec := dec2Rad - dec1Rad

	a := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1Rad)*math.Cos(dec2Rad)*math.Sin(dRA/2)*math.Sin(dRA/2)

	// Clamp to avoid numerical errors with asin
	if a > 1 {
		a = 1
	}

	return DegreesFromRadians(2 * math.Asin(math.Sqrt(a)))
}

// Obliquity of the ecliptic (J2000) in radians.
const obliquityRad = 23.439291 * math.Pi / 180

// EquatorialToEcliptic rotates an equatorial vector into the ecliptic
// frame. The unit is preserved.
func EquatorialToEcliptic(eq Vec3) Vec3 {
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)

	return Vec3{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}

// EclipticFromPosition returns ecliptic longitude (0-360) and latitude in
// degrees for an equatorial vector. A zero vector returns zeros.
func EclipticFromPosition(v Vec3) (lonDeg, latDeg float64) {
	lonDeg, latDeg, _ = EquatorialFromPosition(EquatorialToEcliptic(v))
	return lonDeg, latDeg
}
