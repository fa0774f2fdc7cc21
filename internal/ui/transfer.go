// Package ui provides internal state management and rendering utilities for live transfer progress.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/shadowheroku/mu/style"
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 60
)

// ProgressMsg carries one transfer update from the fetch subprocess.
type ProgressMsg struct {
	Downloaded int64
	Total      int64
	ETA        time.Duration
}

// DoneMsg signals that the transfer finished, successfully or not.
type DoneMsg struct{}

// Transfer encapsulates the state for rendering a single media transfer.
type Transfer struct {
	title  string
	cancel func()

	spinnerC  spinner.Model
	progressC progress.Model

	downloaded int64
	total      int64
	eta        time.Duration

	width      int
	cancelling bool
	done       bool
}

// NewTransfer builds the transfer view for one title. cancel is invoked when
// the user interrupts the transfer; the view stays up until DoneMsg arrives.
func NewTransfer(title string, cancel func()) *Transfer {
	spinnerC := spinner.New()
	spinnerC.Spinner = spinner.Dot
	spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	progressC := progress.New(progress.WithDefaultGradient())
	progressC.Width = defaultBarWidth

	return &Transfer{
		title:     title,
		cancel:    cancel,
		spinnerC:  spinnerC,
		progressC: progressC,
	}
}

func (m *Transfer) Init() tea.Cmd {
	return m.spinnerC.Tick
}

func (m *Transfer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// The subprocess needs a moment to die; quitting happens on DoneMsg.
			m.cancelling = true
			if m.cancel != nil {
				m.cancel()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progressC.Width = clampBarWidth(msg.Width)
		return m, nil

	case ProgressMsg:
		m.downloaded = msg.Downloaded
		m.total = msg.Total
		m.eta = msg.ETA
		return m, nil

	case DoneMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinnerC, cmd = m.spinnerC.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Transfer) View() string {
	if m.done {
		return ""
	}

	title := m.title
	if m.width > 8 {
		title = truncate.StringWithTail(title, uint(m.width-8), "…")
	}

	header := fmt.Sprintf("%s Fetching %s", m.spinnerC.View(), style.Bold(title))
	if m.cancelling {
		return header + "\n  " + style.Faint("stopping...") + "\n"
	}

	if m.total <= 0 {
		if m.downloaded > 0 {
			return fmt.Sprintf("%s\n  %s\n", header, style.Faint(fmt.Sprintf("%.1f MiB so far", mib(m.downloaded))))
		}
		return header + "\n"
	}

	counters := fmt.Sprintf("%.1f of %.1f MiB", mib(m.downloaded), mib(m.total))
	if m.eta > 0 {
		counters += fmt.Sprintf(", eta %s", m.eta.Round(time.Second))
	}

	return fmt.Sprintf(
		"%s\n  %s %s\n",
		header,
		m.progressC.ViewAs(float64(m.downloaded)/float64(m.total)),
		style.Faint(counters),
	)
}

func clampBarWidth(terminal int) int {
	width := terminal - 30
	if width < 10 {
		return 10
	}
	if width > maxBarWidth {
		return maxBarWidth
	}
	return width
}

func mib(n int64) float64 {
	return float64(n) / 1024 / 1024
}
