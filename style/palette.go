// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import "github.com/charmbracelet/lipgloss"

// Catppuccin-mocha slice backing the full-screen views. Hex values stay
// fixed regardless of the terminal theme, unlike the ANSI palette in the
// color package.
var (
	// Base tones
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")

	// Accents
	Mauve    = lipgloss.Color("#cba6f7")
	Lavender = lipgloss.Color("#b4befe")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Red      = lipgloss.Color("#f38ba8")
)

// Semantic roles the views reference instead of raw colors.
var (
	AccentColor = Mauve
	ErrorColor  = Red
	FaintColor  = Overlay
	HiRed       = Red
)
