package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skybox/internal/astro"
	"github.com/litescript/ls-skybox/internal/report"
	"github.com/litescript/ls-skybox/internal/state"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Width(24)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
)

// DetailModel shows every derived quantity for the focused star.
type DetailModel struct {
	width    int
	height   int
	prec     int
	snapshot state.Snapshot
	events   []state.Event
}

// NewDetailModel creates a new star detail model.
func NewDetailModel(prec int) DetailModel {
	return DetailModel{prec: prec}
}

// SetSize updates the viewport size.
func (m DetailModel) SetSize(width, height int) DetailModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with new data snapshot.
func (m DetailModel) UpdateData(snapshot state.Snapshot) DetailModel {
	m.snapshot = snapshot
	return m
}

// SetEvents sets the session events listed under the star.
func (m DetailModel) SetEvents(events []state.Event) DetailModel {
	m.events = events
	return m
}

// View renders the focused star.
func (m DetailModel) View() string {
	e, ok := m.snapshot.Focused()
	if !ok {
		return "  No star selected\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(e.Star.Name))
	b.WriteString(fmt.Sprintf("  (%d/%d)", m.snapshot.Focus+1, len(m.snapshot.Stars)))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Catalog"))
	b.WriteString("\n")
	writeField(&b, "Right ascension", fmt.Sprintf("%.3f°", e.Star.RAdeg))
	writeField(&b, "Declination", fmt.Sprintf("%+.3f°", e.Star.DecDeg))
	lon, lat := astro.EclipticFromPosition(e.Star.PositionLy)
	writeField(&b, "Ecliptic lon / lat", fmt.Sprintf("%.3f° / %+.3f°", lon, lat))
	if first := m.snapshot.Stars[0].Star; m.snapshot.Focus != 0 {
		sep := astro.AngularSeparation(first.RAdeg, first.DecDeg, e.Star.RAdeg, e.Star.DecDeg)
		writeField(&b, "From "+truncate(first.Name, 16), fmt.Sprintf("%.3f°", sep))
	}
	writeField(&b, "Distance", report.FormatDecimal(e.Star.DistanceLy, 2)+" ly")
	writeField(&b, "Diameter", report.FormatDecimal(e.Star.DiameterRsun, 2)+" R☉ ("+
		report.FormatKm(e.Star.DiameterKm())+" km)")
	b.WriteString("\n")

	if !e.OK() {
		b.WriteString(errorStyle.Render("  Projection failed: " + e.Err.Error()))
		b.WriteString("\n\n")
		m.writeEvents(&b)
		return b.String()
	}

	p := e.Projection
	b.WriteString(sectionStyle.Render("Projection"))
	b.WriteString("\n")
	writeField(&b, "Distance km", report.FormatKm(p.Distance))
	writeField(&b, "Angular diameter", fmt.Sprintf("%s rad  %.*f mas",
		astro.FormatFloat(p.AngularDiameter), m.prec, astro.MilliArcSecondsFromRadians(p.AngularDiameter)))
	writeField(&b, "Normal vector", p.Direction.String())
	writeField(&b, "Inclination", fmt.Sprintf("%s rad  %s",
		astro.FormatFloat(p.Inclination), astro.FormatAngle(p.Inclination, m.prec)))
	writeField(&b, "Tangent vector", p.Tangent.String())
	writeField(&b, "Rotated tangent", p.RotatedTangent.String())
	writeField(&b, "Physical radius", astro.FormatFloat(p.PhysicalRadius))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Frame checks"))
	b.WriteString("\n")
	writeField(&b, "normal · tangent", fmt.Sprintf("%.2e", p.Direction.Dot(p.Tangent)))
	writeField(&b, "normal · rotated", fmt.Sprintf("%.2e", p.Direction.Dot(p.RotatedTangent)))
	writeField(&b, "tangent · rotated", fmt.Sprintf("%.2e", p.Tangent.Dot(p.RotatedTangent)))
	b.WriteString("\n")
	m.writeEvents(&b)

	return b.String()
}

func (m DetailModel) writeEvents(b *strings.Builder) {
	if len(m.events) == 0 {
		return
	}
	b.WriteString(sectionStyle.Render("Recent events"))
	b.WriteString("\n")
	for i := len(m.events) - 1; i >= 0; i-- {
		ev := m.events[i]
		line := string(ev.Type)
		if ev.Star != "" {
			line += " " + ev.Star
		}
		if ev.Detail != "" {
			line += ": " + ev.Detail
		}
		writeField(b, ev.Timestamp.Format("15:04:05"), line)
	}
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(label))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}
