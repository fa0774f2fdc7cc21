// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shadowheroku/mu/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a stateless rendering function that colors a string's foreground.
// Both the ANSI palette (package color) and the hex palette in palette.go fit
// the parameter.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Truncate returns a rendering function that constrains the output string to a maximum width.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

// Text transformation helpers used across command output.
var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a view heading as a padded colored block.
var Title = func(s string) string {
	return New().Foreground(color.New("230")).Background(color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders a failure heading in the error palette.
var ErrorTitle = func(s string) string {
	return New().Foreground(color.New("230")).Background(color.Red).Padding(0, 1).Render(s)
}
