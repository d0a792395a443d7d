// Package report writes projections as labelled text, tables, and JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-skybox/internal/astro"
)

// SnapshotExport is the JSON-serializable result of projecting a catalog.
type SnapshotExport struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Stars       []ProjectionExport `json:"stars"`
}

// ProjectionExport is a JSON-friendly star projection.
type ProjectionExport struct {
	Name               string     `json:"name"`
	RAdeg              float64    `json:"ra_deg"`
	DecDeg             float64    `json:"dec_deg"`
	DistanceLy         float64    `json:"distance_ly"`
	DiameterRsun       float64    `json:"diameter_rsun"`
	DistanceKm         float64    `json:"distance_km"`
	AngularDiameterRad float64    `json:"angular_diameter_rad"`
	AngularDiameterMas float64    `json:"angular_diameter_mas"`
	Direction          [3]float64 `json:"direction"`
	InclinationRad     float64    `json:"inclination_rad"`
	Tangent            [3]float64 `json:"tangent"`
	RotatedTangent     [3]float64 `json:"rotated_tangent"`
	PhysicalRadius     float64    `json:"physical_radius"`
	Error              string     `json:"error,omitempty"`
}

func vecArray(v astro.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// ExportProjection converts a star and its projection to an exportable
// form. If err is non-nil only the star's identity is kept, since the
// projection may hold NaN which JSON cannot encode.
func ExportProjection(star astro.Star, p astro.Projection, err error) ProjectionExport {
	export := ProjectionExport{
		Name:         star.Name,
		RAdeg:        star.RAdeg,
		DecDeg:       star.DecDeg,
		DistanceLy:   star.DistanceLy,
		DiameterRsun: star.DiameterRsun,
	}
	if err != nil {
		export.Error = err.Error()
		return export
	}

	export.DistanceKm = p.Distance
	export.AngularDiameterRad = p.AngularDiameter
	export.AngularDiameterMas = astro.MilliArcSecondsFromRadians(p.AngularDiameter)
	export.Direction = vecArray(p.Direction)
	export.InclinationRad = p.Inclination
	export.Tangent = vecArray(p.Tangent)
	export.RotatedTangent = vecArray(p.RotatedTangent)
	export.PhysicalRadius = p.PhysicalRadius
	return export
}

// ExportCatalog projects every star in the catalog.
func ExportCatalog(cat astro.StarCatalog, generatedAt time.Time) *SnapshotExport {
	export := &SnapshotExport{GeneratedAt: generatedAt}
	for _, star := range cat.Stars {
		p, err := star.Project()
		export.Stars = append(export.Stars, ExportProjection(star, p, err))
	}
	return export
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteStarReport writes the labelled projection lines for one star,
// followed by its physical radius on the unit sphere.
func WriteStarReport(w io.Writer, name string, p astro.Projection) {
	fmt.Fprintf(w, "Star: %s\n", name)
	astro.WriteProjection(w, p)
	fmt.Fprintln(w, "Physical Radius: ", astro.FormatFloat(p.PhysicalRadius))
}

// WriteSphereDemo writes each step of the unit-sphere walk-through.
func WriteSphereDemo(w io.Writer, d astro.SphereDemoResult) {
	fmt.Fprintln(w, "Point: ", d.Point)
	fmt.Fprintln(w, "Angle: ", astro.FormatFloat(d.Angle))
	fmt.Fprintln(w, "Tangent: ", d.Tangent)
	fmt.Fprintln(w, "Tangent Vector: ", d.TangentVector)
	fmt.Fprintln(w, "Rotated Tangent Vector:", d.RotatedTangent)
	fmt.Fprintln(w, d.Tip)
}

// WriteAngularSize writes an angular diameter in every supported unit.
func WriteAngularSize(w io.Writer, r astro.AngularSizeResult) {
	fmt.Fprintln(w, "Radians:", astro.FormatFloat(r.Radians))
	fmt.Fprintln(w, "Degrees: ", astro.FormatFloat(r.Degrees))
	fmt.Fprintln(w, "Arc Seconds: ", astro.FormatFloat(r.ArcSeconds))
	fmt.Fprintln(w, "Milliarc Seconds: ", astro.FormatFloat(r.MilliArcSeconds))
	fmt.Fprintln(w, "Sexagesimal: ", astro.FormatAngle(r.Radians, 2))
}

// SummaryRow represents one row in the summary table.
type SummaryRow struct {
	Name        string
	DistanceLy  string
	DistanceKm  string
	Angular     string // milliarc-seconds
	Inclination string // sexagesimal
	Radius      string // physical radius on the unit sphere
	Err         error
}

// GenerateSummaryRows projects each star and formats the table cells.
// prec is the number of decimals used for angles.
func GenerateSummaryRows(cat astro.StarCatalog, prec int) []SummaryRow {
	var rows []SummaryRow
	for _, star := range cat.Stars {
		row := SummaryRow{
			Name:       star.Name,
			DistanceLy: FormatDecimal(star.DistanceLy, 2),
		}

		p, err := star.Project()
		if err != nil {
			row.Err = err
			rows = append(rows, row)
			continue
		}

		row.DistanceKm = FormatKm(p.Distance)
		row.Angular = fmt.Sprintf("%.*f", prec, astro.MilliArcSecondsFromRadians(p.AngularDiameter))
		row.Inclination = astro.FormatAngle(p.Inclination, prec)
		row.Radius = fmt.Sprintf("%.3e", p.PhysicalRadius)
		rows = append(rows, row)
	}
	return rows
}

// WriteSummaryTable writes a text table to the given writer.
func WriteSummaryTable(w io.Writer, rows []SummaryRow, timestamp time.Time) {
	fmt.Fprintf(w, "Star projections @ %s\n", timestamp.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 96))

	if len(rows) == 0 {
		fmt.Fprintln(w, "No stars")
		return
	}

	fmt.Fprintf(w, "%-16s %10s %26s %12s %16s %10s\n",
		"Star", "Dist ly", "Dist km", "Ang mas", "Inclination", "Radius")
	fmt.Fprintln(w, strings.Repeat("─", 96))

	for _, r := range rows {
		if r.Err != nil {
			fmt.Fprintf(w, "%-16s %10s  error: %v\n", truncateStr(r.Name, 16), r.DistanceLy, r.Err)
			continue
		}
		fmt.Fprintf(w, "%-16s %10s %26s %12s %16s %10s\n",
			truncateStr(r.Name, 16),
			r.DistanceLy,
			r.DistanceKm,
			r.Angular,
			r.Inclination,
			r.Radius,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d stars\n", len(rows))
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
