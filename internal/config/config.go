// Package config loads the star list and output settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-skybox/internal/astro"
)

// Output modes.
const (
	ModeReport = "report" // labelled projection lines
	ModeTable  = "table"  // one row per star
	ModeDemo   = "demo"   // unit-sphere walk-through
	ModeSun    = "sun"    // Sun angular size
	ModeTUI    = "tui"    // interactive inspector
)

var validModes = map[string]bool{
	ModeReport: true,
	ModeTable:  true,
	ModeDemo:   true,
	ModeSun:    true,
	ModeTUI:    true,
}

// Config is the full application configuration.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Output   OutputConfig `yaml:"output"`
	Stars    []StarConfig `yaml:"stars"`
}

// OutputConfig controls what is printed and how.
type OutputConfig struct {
	Mode      string `yaml:"mode"`
	JSON      bool   `yaml:"json"`
	Star      string `yaml:"star,omitempty"`
	Precision int    `yaml:"precision"`
}

// StarConfig describes one star. Either PositionLy or the RA/Dec/distance
// triple must be given.
type StarConfig struct {
	Name         string    `yaml:"name"`
	DiameterRsun float64   `yaml:"diameter_rsun"`
	PositionLy   []float64 `yaml:"position_ly,omitempty"`
	RAdeg        *float64  `yaml:"ra_deg,omitempty"`
	DecDeg       *float64  `yaml:"dec_deg,omitempty"`
	DistanceLy   *float64  `yaml:"distance_ly,omitempty"`
}

// MaxPrecision is the most angle decimals the sexagesimal formatter can
// render.
const MaxPrecision = 9

// Errors for configuration validation.
var (
	ErrUnknownMode   = errors.New("unknown output mode")
	ErrStarName      = errors.New("star name is required")
	ErrStarPosition  = errors.New("star needs position_ly or ra_deg/dec_deg/distance_ly")
	ErrStarDiameter  = errors.New("star diameter_rsun must be positive")
	ErrDuplicateStar = errors.New("duplicate star name")
	ErrPrecision     = fmt.Errorf("precision must be between 0 and %d", MaxPrecision)
)

// DefaultConfig returns the configuration used when no file is given:
// the built-in catalog and the labelled report for the reference star.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Output: OutputConfig{
			Mode:      ModeReport,
			Precision: 3,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadYAML(f)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// LoadYAML decodes YAML from r on top of DefaultConfig and validates it.
func LoadYAML(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if !validModes[c.Output.Mode] {
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Output.Mode)
	}
	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("%w: %d", ErrPrecision, c.Output.Precision)
	}

	seen := make(map[string]bool)
	for i, s := range c.Stars {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("stars[%d]: %w", i, err)
		}
		if seen[s.Name] {
			return fmt.Errorf("stars[%d]: %w: %s", i, ErrDuplicateStar, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Validate checks a single star entry.
func (s StarConfig) Validate() error {
	if s.Name == "" {
		return ErrStarName
	}
	if !(s.DiameterRsun > 0) {
		return fmt.Errorf("%w: %s", ErrStarDiameter, s.Name)
	}
	hasCartesian := len(s.PositionLy) == 3
	hasEquatorial := s.RAdeg != nil && s.DecDeg != nil && s.DistanceLy != nil
	if !hasCartesian && !hasEquatorial {
		return fmt.Errorf("%w: %s", ErrStarPosition, s.Name)
	}
	return nil
}

// ToStar converts the entry to an astro.Star. A Cartesian position wins
// when both forms are present.
func (s StarConfig) ToStar() astro.Star {
	if len(s.PositionLy) == 3 {
		pos := astro.Vec3{X: s.PositionLy[0], Y: s.PositionLy[1], Z: s.PositionLy[2]}
		return astro.NewCartesianStar(s.Name, pos, s.DiameterRsun)
	}
	return astro.NewEquatorialStar(s.Name, *s.RAdeg, *s.DecDeg, *s.DistanceLy, s.DiameterRsun)
}

// Catalog returns the configured stars, or the default catalog when the
// configuration lists none.
func (c Config) Catalog() astro.StarCatalog {
	if len(c.Stars) == 0 {
		return astro.DefaultStarCatalog()
	}
	cat := astro.StarCatalog{Stars: make([]astro.Star, 0, len(c.Stars))}
	for _, s := range c.Stars {
		cat.Stars = append(cat.Stars, s.ToStar())
	}
	return cat
}
