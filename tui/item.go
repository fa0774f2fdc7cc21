// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shadowheroku/mu/history"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/util"
	"github.com/shadowheroku/mu/youtube"
	"github.com/spf13/viper"
)

// listItem implements the list.Item interface, wrapping domain models for terminal display.
type listItem struct {
	internal interface{}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case youtube.Track:
		title = e.Title
	case *history.SavedTrack:
		title = e.Title
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	return
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case youtube.Track:
		var parts []string

		if e.Duration != "" {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.AccentColor).Render(e.Duration))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.Green).Render("live"))
		}

		if viper.GetBool(key.TUIShowURLs) && e.Link != "" {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.FaintColor).Render(e.Link))
		}

		description = strings.Join(parts, " • ")

	case *history.SavedTrack:
		var parts []string

		parts = append(parts, lipgloss.NewStyle().Foreground(style.AccentColor).Render(util.Quantify(e.Plays, "play", "plays")))
		if e.Duration != "" {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.FaintColor).Render(e.Duration))
		}
		if !e.LastPlayedAt.IsZero() {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.FaintColor).Render(fmt.Sprintf("last played %s", e.LastPlayedAt.Format("Jan 2 15:04"))))
		}

		description = strings.Join(parts, " • ")

	case string:
		description = ""
	}

	return
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case youtube.Track:
		return e.Title
	case *history.SavedTrack:
		return e.Title
	case string:
		return e
	default:
		return ""
	}
}
