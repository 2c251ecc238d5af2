// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Altitude sparkline strip, UTC/local day-window toggle, JSON snapshot export
// 0.1.0 - Initial release: sun/moon almanac TUI, headless summary mode
