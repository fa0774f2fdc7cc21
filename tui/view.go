// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/shadowheroku/mu/icon"
	"github.com/shadowheroku/mu/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case historyState:
		return b.viewHistory()
	case searchState:
		return b.viewSearch()
	case tracksState:
		return b.viewTracks()
	case playState:
		return b.viewPlay()
	case postPlayState:
		return b.viewPostPlay()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewHistory() string {
	return listExtraPaddingStyle.Render(b.historyC.View())
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search Track"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint(fmt.Sprintf("tab: %s", suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewTracks() string {
	return listExtraPaddingStyle.Render(b.tracksC.View())
}

func (b *statefulBubble) viewPlay() string {
	var trackName string
	if b.currentTrack != nil {
		trackName = b.currentTrack.Title
	}

	playingIcon := icon.Get(icon.Audio)
	if b.video {
		playingIcon = icon.Get(icon.Video)
	}

	status := b.spinnerC.View() + " " + b.progressStatus
	if b.paused {
		status = style.Faint("Paused")
	}

	return b.renderLines(
		true,
		[]string{
			style.Title("Now Playing"),
			"",
			style.Truncate(b.width)(fmt.Sprintf("%s %s", playingIcon, style.Fg(style.AccentColor)(trackName))),
			"",
			style.Truncate(b.width)(status),
		},
	)
}

func (b *statefulBubble) viewPostPlay() string {
	return listExtraPaddingStyle.Render(b.postPlayC.View())
}

func (b *statefulBubble) viewError() string {
	errorMsg := wrap.String(style.Fg(style.ErrorColor)(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
