package astro

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Errors returned by CheckedProjectStar.
var (
	ErrZeroVector          = errors.New("star position has zero magnitude")
	ErrNonPositiveDiameter = errors.New("star diameter must be positive")
	ErrNonFinite           = errors.New("projection produced a non-finite value")
)

// Projection is the full directional and angular description of a star
// as seen from the origin.
type Projection struct {
	Distance        float64 // same unit as the position vector
	AngularDiameter float64 // radians, small-angle
	Direction       Vec3    // unit vector toward the star (disc normal)
	Inclination     float64 // radians from the equatorial plane
	Tangent         Vec3    // unit tangent along the meridian
	RotatedTangent  Vec3    // Tangent turned 90° about Direction
	PhysicalRadius  float64 // sin(AngularDiameter/2), radius on the unit sphere
}

// ProjectStar derives a star's projection on the unit sphere from its
// physical diameter and position. Both must be in the same length unit.
//
// Degenerate input propagates as NaN; see CheckedProjectStar.
func ProjectStar(diameter float64, position Vec3) Projection {
	distance := Magnitude(position)
	angular := AngularDiameter(diameter, distance)

	direction := UnitVector(position)
	inclination := Inclination(direction)
	tangent := TangentUnitVector(direction, inclination)
	rotated := RotateTangentUnitVector(direction, tangent)

	return Projection{
		Distance:        distance,
		AngularDiameter: angular,
		Direction:       direction,
		Inclination:     inclination,
		Tangent:         tangent,
		RotatedTangent:  rotated,
		PhysicalRadius:  math.Sin(angular / 2),
	}
}

// CheckedProjectStar is ProjectStar with input and result validation.
func CheckedProjectStar(diameter float64, position Vec3) (Projection, error) {
	if position.IsZero() {
		return Projection{}, ErrZeroVector
	}
	if !(diameter > 0) {
		return Projection{}, fmt.Errorf("%w: got %v", ErrNonPositiveDiameter, diameter)
	}

	p := ProjectStar(diameter, position)
	if !p.finite() {
		return p, ErrNonFinite
	}
	return p, nil
}

func (p Projection) finite() bool {
	return isFinite(p.Distance) &&
		isFinite(p.AngularDiameter) &&
		isFinite(p.Inclination) &&
		isFinite(p.PhysicalRadius) &&
		p.Direction.IsFinite() &&
		p.Tangent.IsFinite() &&
		p.RotatedTangent.IsFinite()
}

// DrawStar projects a star and writes every intermediate quantity to w
// in a fixed order. It returns the star's physical radius on the unit sphere.
func DrawStar(w io.Writer, diameter float64, position Vec3) float64 {
	p := ProjectStar(diameter, position)
	WriteProjection(w, p)
	return p.PhysicalRadius
}

// WriteProjection writes the labelled lines produced by DrawStar.
func WriteProjection(w io.Writer, p Projection) {
	fmt.Fprintln(w, "Distance km: ", FormatFloat(p.Distance))
	fmt.Fprintln(w, "Angular Diameter rad: ", FormatFloat(p.AngularDiameter))
	fmt.Fprintln(w, "Normal Vector: ", p.Direction)
	fmt.Fprintln(w, "Inclination: ", FormatFloat(p.Inclination))
	fmt.Fprintln(w, "Tangent Vector: ", p.Tangent)
	fmt.Fprintln(w, "Rotated Tangent Vector: ", p.RotatedTangent)
}
