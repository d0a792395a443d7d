// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - YAML star lists, summary table, JSON export, catalog TUI
// 0.2.0 - Equatorial placement, built-in bright star catalog, sexagesimal output
// 0.1.0 - Initial release: unit-sphere projection, tangent frame, sphere demo
