// Package color provides the terminal color palette shared by every
// command surface.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps a terminal color value, an ANSI index or a hex triplet.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI palette. Indexed colors inherit the user's terminal theme, which
// keeps command output readable on both light and dark backgrounds.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")

	HiRed    = New("9")
	HiPurple = New("13")
)

// Orange highlights the playback bindings; no ANSI slot comes close.
var Orange = New("#ffb703")
