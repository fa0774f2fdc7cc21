// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init initializes the terminal user interface, dispatching the preseeded
// search when one was provided on the command line.
func (b *statefulBubble) Init() tea.Cmd {
	if q := b.inputC.Value(); b.state == searchState && q != "" {
		return tea.Batch(textinput.Blink, b.submitSearch(q))
	}

	return textinput.Blink
}
