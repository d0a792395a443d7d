package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skybox/internal/astro"
	"github.com/litescript/ls-skybox/internal/report"
	"github.com/litescript/ls-skybox/internal/state"
)

// Styles for the catalog table
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9D4EDD"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// Angular size bar range in milliarc-seconds (log scale).
const (
	barMinMas = 0.1
	barMaxMas = 100.0
)

// CatalogModel lists every star with its projection summary.
type CatalogModel struct {
	width    int
	height   int
	prec     int
	snapshot state.Snapshot
}

// NewCatalogModel creates a new catalog model.
func NewCatalogModel(prec int) CatalogModel {
	return CatalogModel{prec: prec}
}

// SetSize updates the viewport size.
func (m CatalogModel) SetSize(width, height int) CatalogModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m CatalogModel) UpdateData(snapshot state.Snapshot) CatalogModel {
	m.snapshot = snapshot
	return m
}

// View renders the catalog table.
func (m CatalogModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Star Catalog"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-16s %9s %12s %10s %-12s %s",
		"Star", "Dist ly", "Ang mas", "Incl °", "Size", "Direction")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	stars := m.snapshot.Stars
	if len(stars) == 0 {
		b.WriteString("  No stars\n")
		return b.String()
	}

	// Calculate visible rows based on height
	maxRows := m.height - 4
	if maxRows < 5 {
		maxRows = 5
	}

	cursor := m.snapshot.Focus
	startIdx := 0
	if cursor >= maxRows {
		startIdx = cursor - maxRows + 1
	}
	endIdx := startIdx + maxRows
	if endIdx > len(stars) {
		endIdx = len(stars)
	}

	for i := startIdx; i < endIdx; i++ {
		row := m.renderRow(stars[i])
		if i == cursor {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(stars) > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d stars", startIdx+1, endIdx, len(stars)))
	}

	return b.String()
}

func (m CatalogModel) renderRow(e state.StarEntry) string {
	name := truncate(e.Star.Name, 16)
	dist := report.FormatDecimal(e.Star.DistanceLy, 2)

	if !e.OK() {
		return fmt.Sprintf("%-16s %9s %s", name, dist, errorStyle.Render("error: "+e.Err.Error()))
	}

	p := e.Projection
	mas := astro.MilliArcSecondsFromRadians(p.AngularDiameter)
	return fmt.Sprintf("%-16s %9s %12.*f %10.*f %-12s %s",
		name,
		dist,
		m.prec, mas,
		m.prec, astro.DegreesFromRadians(p.Inclination),
		renderSizeBar(mas, 10),
		formatDirection(p.Direction),
	)
}

// renderSizeBar draws a log-scaled bar of an angular diameter in mas.
func renderSizeBar(mas float64, width int) string {
	frac := 0.0
	if mas > barMinMas {
		frac = math.Log10(mas/barMinMas) / math.Log10(barMaxMas/barMinMas)
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return "[" + barStyle.Render(bar) + "]"
}

func formatDirection(v astro.Vec3) string {
	return fmt.Sprintf("(%+.3f, %+.3f, %+.3f)", v.X, v.Y, v.Z)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
