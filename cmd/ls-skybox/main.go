// Command ls-skybox places stars on the unit celestial sphere and prints
// their direction, angular size and tangent frame.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/litescript/ls-skybox/internal/astro"
	"github.com/litescript/ls-skybox/internal/config"
	"github.com/litescript/ls-skybox/internal/logging"
	"github.com/litescript/ls-skybox/internal/report"
	"github.com/litescript/ls-skybox/internal/state"
	"github.com/litescript/ls-skybox/internal/ui"
	"github.com/litescript/ls-skybox/internal/version"
)

// ErrNotTerminal is returned when the TUI is requested without a terminal.
var ErrNotTerminal = errors.New("the TUI needs an interactive terminal")

// demoPoint is the direction walked through by the sphere demo.
var demoPoint = astro.Vec3{X: 1, Y: 3, Z: 5}

type options struct {
	configPath string
	logLevel   string
	star       string
	json       bool
	demo       bool
	sun        bool
	table      bool
	tui        bool
	precision  int
	version    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("ls-skybox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML file with stars and output settings")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.star, "star", "", "Report a single star by name")
	fs.BoolVar(&opts.json, "json", false, "Write JSON instead of text")
	fs.BoolVar(&opts.demo, "demo", false, "Walk through the tangent frame for (1, 3, 5)")
	fs.BoolVar(&opts.sun, "sun", false, "Print the angular size of the Sun from 1 AU")
	fs.BoolVar(&opts.table, "table", false, "Print one row per star")
	fs.BoolVar(&opts.tui, "tui", false, "Start the interactive inspector")
	fs.IntVar(&opts.precision, "precision", -1, "Decimals for angles (default from config)")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// resolveConfig loads the config file, if any, and applies flag overrides.
func resolveConfig(opts options) (config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.star != "" {
		cfg.Output.Star = opts.star
	}
	if opts.json {
		cfg.Output.JSON = true
	}
	if opts.precision >= 0 {
		cfg.Output.Precision = opts.precision
	}

	switch {
	case opts.tui:
		cfg.Output.Mode = config.ModeTUI
	case opts.table:
		cfg.Output.Mode = config.ModeTable
	case opts.sun:
		cfg.Output.Mode = config.ModeSun
	case opts.demo:
		cfg.Output.Mode = config.ModeDemo
	case opts.star != "":
		cfg.Output.Mode = config.ModeReport
	}

	return cfg, cfg.Validate()
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintf(stdout, "ls-skybox v%s\n", version.Version)
		return nil
	}

	// The flag level covers config loading; the resolved level applies after.
	logger := logging.New(logging.ParseLevel(opts.logLevel))
	logger.SetOutput(stderr)
	defer logger.Sync()

	if opts.configPath != "" {
		logger.Debug("Loading config %s", opts.configPath)
	}
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))

	cat := cfg.Catalog()
	logger.Debug("Mode %s, %d stars", cfg.Output.Mode, len(cat.Stars))

	switch cfg.Output.Mode {
	case config.ModeDemo:
		report.WriteSphereDemo(stdout, astro.SphereDemo(demoPoint))
		return nil

	case config.ModeSun:
		report.WriteAngularSize(stdout, astro.SunAngularSize())
		return nil

	case config.ModeTable:
		return runTable(stdout, cat, cfg, logger)

	case config.ModeTUI:
		return runTUI(stdout, cat, cfg, logger)

	default:
		return runReport(stdout, cat, cfg, logger)
	}
}

func runTable(stdout io.Writer, cat astro.StarCatalog, cfg config.Config, logger *logging.Logger) error {
	now := time.Now().UTC()
	if cfg.Output.JSON {
		return report.ExportCatalog(cat, now).WriteJSON(stdout)
	}

	if isTerminal(stdout) {
		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
		fmt.Fprintln(stdout, title.Render(fmt.Sprintf("ls-skybox v%s", version.Version)))
	}

	rows := report.GenerateSummaryRows(cat, cfg.Output.Precision)
	for _, r := range rows {
		if r.Err != nil {
			logger.Warn("Star %s: %v", r.Name, r.Err)
		}
	}
	report.WriteSummaryTable(stdout, rows, now)
	return nil
}

// runReport prints one star when a name is configured. Otherwise it runs
// the sphere demo and draws the reference star in kilometres.
func runReport(stdout io.Writer, cat astro.StarCatalog, cfg config.Config, logger *logging.Logger) error {
	if cfg.Output.Star != "" {
		star, ok := cat.Find(cfg.Output.Star)
		if !ok {
			return fmt.Errorf("star %q not found", cfg.Output.Star)
		}
		p, err := star.Project()
		if cfg.Output.JSON {
			snap := &report.SnapshotExport{
				GeneratedAt: time.Now().UTC(),
				Stars:       []report.ProjectionExport{report.ExportProjection(star, p, err)},
			}
			return snap.WriteJSON(stdout)
		}
		if err != nil {
			return fmt.Errorf("project %s: %w", star.Name, err)
		}
		report.WriteStarReport(stdout, star.Name, p)
		return nil
	}

	star, ok := cat.Find(astro.ReferenceStarName)
	if !ok {
		star = astro.ReferenceStar()
	}
	if cfg.Output.JSON {
		single := astro.StarCatalog{Stars: []astro.Star{star}}
		return report.ExportCatalog(single, time.Now().UTC()).WriteJSON(stdout)
	}

	report.WriteSphereDemo(stdout, astro.SphereDemo(demoPoint))
	fmt.Fprintln(stdout)
	radius := astro.DrawStar(stdout, star.DiameterKm(), star.PositionKm())
	logger.Debug("Reference star physical radius %s", astro.FormatFloat(radius))
	return nil
}

func runTUI(stdout io.Writer, cat astro.StarCatalog, cfg config.Config, logger *logging.Logger) error {
	if !isTerminal(stdout) {
		return ErrNotTerminal
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	model := newTUIModel(cat, cfg, logger)

	// Logs would corrupt the alternate screen.
	logger.SetOutput(io.Discard)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(stdout))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

// newTUIModel loads the catalog into a session and focuses the configured
// star. A missing star is reported in the TUI footer.
func newTUIModel(cat astro.StarCatalog, cfg config.Config, logger *logging.Logger) ui.Model {
	stateCfg := state.DefaultConfig()
	stateCfg.Logger = logger
	stateMgr := state.NewManager(stateCfg)
	stateMgr.Load(cat)

	missing := cfg.Output.Star != "" && !stateMgr.FocusByName(cfg.Output.Star)

	model := ui.New(stateMgr, cfg.Output.Precision)
	if missing {
		logger.Warn("Star %q not in catalog", cfg.Output.Star)
		model = model.WithError(fmt.Errorf("star %q not found", cfg.Output.Star))
	}
	return model
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
