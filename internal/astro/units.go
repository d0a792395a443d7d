// Package astro provides the vector and angle math used to place a star on
// the unit celestial sphere.
package astro

import (
	"fmt"
	"math"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// Physical constants. Lengths are in kilometres.
const (
	KilometresPerLightYear = 9460730472000
	KilometresPerAU        = 149600000
	SunRadiusKm            = 695700

	// ArcSecondsPerRadian is 648000/π.
	ArcSecondsPerRadian = 648000 / math.Pi
)

// RadiansFromDegrees converts degrees to radians.
func RadiansFromDegrees(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// DegreesFromRadians converts radians to degrees.
func DegreesFromRadians(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// ArcMinutesFromRadians converts radians to arc-minutes.
func ArcMinutesFromRadians(rad float64) float64 {
	return rad * (10800 / math.Pi)
}

// ArcMinutesFromDegrees converts degrees to arc-minutes.
func ArcMinutesFromDegrees(deg float64) float64 {
	return deg * 60
}

// ArcSecondsFromRadians converts radians to arc-seconds.
func ArcSecondsFromRadians(rad float64) float64 {
	return rad * ArcSecondsPerRadian
}

// ArcSecondsFromDegrees converts degrees to arc-seconds.
func ArcSecondsFromDegrees(deg float64) float64 {
	return ArcMinutesFromDegrees(deg) * 60
}

// MilliArcSecondsFromArcSeconds converts arc-seconds to milliarc-seconds.
func MilliArcSecondsFromArcSeconds(as float64) float64 {
	return as * 1000
}

// MilliArcSecondsFromRadians converts radians to milliarc-seconds.
func MilliArcSecondsFromRadians(rad float64) float64 {
	return ArcSecondsFromRadians(rad) * 1000
}

// KmFromLightYears converts light-years to kilometres.
func KmFromLightYears(ly float64) float64 {
	return ly * KilometresPerLightYear
}

// KmFromAU converts Astronomical Units to kilometres.
func KmFromAU(au float64) float64 {
	return au * KilometresPerAU
}

// Csc returns the cosecant of an angle in radians.
// Csc(0) is +Inf.
func Csc(angle float64) float64 {
	return 1 / math.Sin(angle)
}

// AngleFromRadians wraps a radian value as a unit.Angle.
func AngleFromRadians(rad float64) unit.Angle {
	return unit.Angle(rad)
}

// FormatAngle renders an angle in radians as sexagesimal degrees,
// e.g. 0°31′58.4″, with prec decimal places on the seconds field.
func FormatAngle(rad float64, prec int) string {
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		return fmt.Sprint(rad)
	}
	return fmt.Sprintf("%.*s", prec, sexa.FmtAngle(AngleFromRadians(rad)))
}
