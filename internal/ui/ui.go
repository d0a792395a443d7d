// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skybox/internal/state"
	"github.com/litescript/ls-skybox/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewCatalog ViewMode = iota
	ViewDetail
)

const viewCount = 2

// recentEvents is how many session events the star view lists.
const recentEvents = 5

// ErrorMsg signals an error to show in the footer.
type ErrorMsg struct {
	Error error
}

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	lastErr  error

	// Sub-models
	catalog CatalogModel
	detail  DetailModel

	snapshot state.Snapshot
	startup  []tea.Cmd
}

// New creates a new root UI model. prec is the number of decimals used
// for sexagesimal angles.
func New(stateMgr *state.Manager, prec int) Model {
	m := Model{
		state:    stateMgr,
		viewMode: ViewCatalog,
		catalog:  NewCatalogModel(prec),
		detail:   NewDetailModel(prec),
	}
	m.refresh()
	return m
}

// WithError returns a model that shows err in the footer once the
// program starts.
func (m Model) WithError(err error) Model {
	m.startup = append(m.startup, SendError(err))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startup...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "c":
			m.viewMode = ViewCatalog
		case "2", "d", "enter":
			m.viewMode = ViewDetail

		case "tab":
			// Cycle through views
			m.viewMode = (m.viewMode + 1) % viewCount

		case "up", "k":
			m.state.MoveFocus(-1)
			m.refresh()
		case "down", "j":
			m.state.MoveFocus(1)
			m.refresh()
		case "home", "g":
			m.state.SetFocus(0)
			m.refresh()
		case "end", "G":
			m.state.SetFocus(len(m.snapshot.Stars) - 1)
			m.refresh()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header ~4 lines, footer ~2 lines
		contentHeight := msg.Height - 6
		m.catalog = m.catalog.SetSize(msg.Width, contentHeight)
		m.detail = m.detail.SetSize(msg.Width, contentHeight)

	case ErrorMsg:
		m.lastErr = msg.Error
	}

	return m, nil
}

func (m *Model) refresh() {
	snap := m.state.Snapshot()
	m.snapshot = snap
	m.catalog = m.catalog.UpdateData(snap)
	m.detail = m.detail.UpdateData(snap).SetEvents(m.state.RecentEvents(recentEvents))
}

// ActiveView returns the active view.
func (m Model) ActiveView() ViewMode {
	return m.viewMode
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewCatalog:
		content = m.catalog.View()
	case ViewDetail:
		content = m.detail.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.renderTitle("  ls-skybox"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  Unit celestial sphere · v%s", version.Version)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

// renderTitle draws text with a horizontal truecolor gradient.
func (m Model) renderTitle(text string) string {
	var b strings.Builder
	runes := []rune(text)
	for col, r := range runes {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(gradientColor(col, len(runes))))
		b.WriteString(style.Render(string(r)))
	}
	b.WriteString("\n")
	return b.String()
}

// gradientColor returns a hex color for a position in the title gradient:
// blue -> purple -> pink.
func gradientColor(col, width int) string {
	if width <= 0 {
		width = 1
	}
	x := float64(col) / float64(width)

	var r, g, b float64
	if x < 0.5 {
		t := x / 0.5
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	} else {
		t := (x - 0.5) / 0.5
		r = 139 + t*(236-139)
		g = 92 + t*(72-92)
		b = 246 + t*(153-246)
	}

	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v float64) int {
	i := int(v)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return i
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Catalog", "[2] Star"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	var status string
	switch {
	case m.lastErr != nil:
		status = errStyle.Render("ERROR: " + m.lastErr.Error())
	case !m.state.HasData():
		status = dimStyle.Render("No catalog loaded")
	case len(m.snapshot.Stars) == 0:
		status = dimStyle.Render("No stars loaded")
	default:
		status = dimStyle.Render(fmt.Sprintf("%d stars", len(m.snapshot.Stars)))
		if failed := m.snapshot.Failed(); failed > 0 {
			status += " " + errStyle.Render(fmt.Sprintf("(%d failed)", failed))
		}
	}

	help := dimStyle.Render("↑↓/jk: focus | tab: switch view | q: quit")
	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

// SendError creates a command that sends an error message.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}
