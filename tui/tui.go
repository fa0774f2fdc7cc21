// Package tui implements the interactive full-screen interface: search,
// result browsing, playback control and the history browser.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shadowheroku/mu/youtube"
)

// Options configures a single interface session.
type Options struct {
	// API resolves searches, stream locations and downloads.
	API *youtube.API

	// Query preseeds the first search, skipping the input prompt.
	Query string

	// Video plays tracks with their video instead of audio only.
	Video bool

	// Continue starts at the playback history instead of a fresh search.
	Continue bool
}

// Run drives the Bubble Tea loop until the user quits. With Continue set it
// opens on the history browser, otherwise on the search input.
func Run(options *Options) error {
	bubble := newBubble(options)

	if options.Continue {
		if _, err := bubble.loadHistory(); err != nil {
			return err
		}

		bubble.newState(historyState)
	} else {
		bubble.inputC.SetValue(options.Query)
		bubble.newState(searchState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
