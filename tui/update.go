// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/shadowheroku/mu/history"
	"github.com/shadowheroku/mu/open"
	"github.com/shadowheroku/mu/query"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/youtube"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case error:
		b.stopLoading()
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			b.stopPlayback()
			return b, tea.Quit
		}

		// Input Guard: Ignore non-priority keys during asynchronous operations.
		if b.busy && b.state != playState && b.state != errorState {
			return b, nil
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			onListBack := func(l *list.Model) tea.Cmd {
				l.ResetSelected()
				l.ResetFilter()
				return tea.Batch(cmd, l.NewStatusMessage(""))
			}

			switch b.state {
			case searchState:
				b.inputC.SetValue("")
			case tracksState:
				cmd = onListBack(&b.tracksC)
			case historyState:
				cmd = onListBack(&b.historyC)
			case playState:
				b.stopPlayback()
			}

			b.previousState()
			b.stopLoading()
			return b, cmd
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case historyState:
		return b.updateHistory(msg)
	case searchState:
		return b.updateSearch(msg)
	case tracksState:
		return b.updateTracks(msg)
	case playState:
		return b.updatePlay(msg)
	case postPlayState:
		return b.updatePostPlay(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds = make([]tea.Cmd, 0)
	)

	switch msg := msg.(type) {
	case []youtube.Track:
		items := make([]list.Item, len(msg))
		for i, t := range msg {
			items[i] = &listItem{internal: t}
		}

		cmds = append(cmds, b.tracksC.SetItems(items))
		b.stopLoading()
		b.newState(tracksState)
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case downloadedMsg:
		return b, b.historyC.NewStatusMessage(fmt.Sprintf("Saved to %s", style.Faint(msg.path)))
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.historyC.Items()); n > 0 && b.historyC.Index() == 0 {
				b.historyC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.historyC.Items()); n > 0 && b.historyC.Index() == n-1 {
				b.historyC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if b.historyC.SelectedItem() != nil {
				record := b.historyC.SelectedItem().(*listItem).internal.(*history.SavedTrack)
				if err := open.Start(record.Link); err != nil {
					b.raiseError(err)
				}
			}
		case bubblesKey.Matches(msg, b.keymap.remove):
			if b.historyC.SelectedItem() != nil {
				record := b.historyC.SelectedItem().(*listItem).internal.(*history.SavedTrack)
				_ = history.Remove(record)

				cmd, err := b.loadHistory()
				if err != nil {
					b.raiseError(err)
					return b, nil
				}
				return b, cmd
			}
		case bubblesKey.Matches(msg, b.keymap.download):
			if b.historyC.SelectedItem() != nil {
				record := b.historyC.SelectedItem().(*listItem).internal.(*history.SavedTrack)
				return b, tea.Batch(
					b.historyC.NewStatusMessage(fmt.Sprintf("Fetching %s", style.Fg(style.AccentColor)(record.Title))),
					b.downloadTrack(record.Track()),
					b.waitForDownloaded(),
				)
			}
		case bubblesKey.Matches(msg, b.keymap.search):
			b.newState(searchState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm, b.keymap.selectOne):
			if b.historyC.SelectedItem() != nil {
				record := b.historyC.SelectedItem().(*listItem).internal.(*history.SavedTrack)
				b.newState(playState)
				return b, tea.Batch(b.playTrack(record.Track()), b.startLoading())
			}
		}
	}

	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			return b, b.submitSearch(b.inputC.Value())
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" {
		if suggestion, ok := query.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

// submitSearch dispatches an indexed lookup and transitions to the loading view.
func (b *statefulBubble) submitSearch(q string) tea.Cmd {
	b.progressStatus = fmt.Sprintf("Searching for %s", style.Fg(style.AccentColor)(q))
	go query.Remember(q, 1)
	b.newState(loadingState)
	return tea.Batch(b.startLoading(), b.searchTracks(q), b.waitForTracks(), b.spinnerC.Tick)
}

func (b *statefulBubble) updateTracks(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case downloadedMsg:
		return b, b.tracksC.NewStatusMessage(fmt.Sprintf("Saved to %s", style.Faint(msg.path)))
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.tracksC.Items()); n > 0 && b.tracksC.Index() == 0 {
				b.tracksC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.tracksC.Items()); n > 0 && b.tracksC.Index() == n-1 {
				b.tracksC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if b.tracksC.SelectedItem() != nil {
				track := b.tracksC.SelectedItem().(*listItem).internal.(youtube.Track)
				if err := open.Start(track.Link); err != nil {
					b.raiseError(err)
				}
			}
		case bubblesKey.Matches(msg, b.keymap.download):
			if b.tracksC.SelectedItem() != nil {
				track := b.tracksC.SelectedItem().(*listItem).internal.(youtube.Track)
				go query.Remember(track.Title, 2)
				return b, tea.Batch(
					b.tracksC.NewStatusMessage(fmt.Sprintf("Fetching %s", style.Fg(style.AccentColor)(track.Title))),
					b.downloadTrack(track),
					b.waitForDownloaded(),
				)
			}
		case bubblesKey.Matches(msg, b.keymap.search):
			b.newState(searchState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm, b.keymap.selectOne):
			if b.tracksC.SelectedItem() != nil {
				track := b.tracksC.SelectedItem().(*listItem).internal.(youtube.Track)
				go query.Remember(track.Title, 2)
				b.newState(playState)
				return b, tea.Batch(b.playTrack(track), b.startLoading())
			}
		}
	}

	b.tracksC, cmd = b.tracksC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case playerExitMsg:
		b.stopLoading()
		b.paused = false

		if b.nextTrack != nil {
			track := *b.nextTrack
			b.nextTrack = nil
			return b, tea.Batch(b.playTrack(track), b.startLoading())
		}

		b.newState(postPlayState)
		b.postPlayC.Select(0)
		return b, nil
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.playPause):
			if b.backend != nil {
				if err := b.backend.TogglePause(); err == nil {
					b.paused = !b.paused
				}
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.nextTrack):
			if track, ok := b.adjacentTrack(1); ok {
				b.nextTrack = &track
				b.stopPlayback()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.prevTrack):
			if track, ok := b.adjacentTrack(-1); ok {
				b.nextTrack = &track
				b.stopPlayback()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.replay):
			if b.currentTrack != nil {
				b.nextTrack = b.currentTrack
				b.stopPlayback()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if b.currentTrack != nil {
				if err := open.Start(b.currentTrack.Link); err != nil {
					b.raiseError(err)
				}
			}
			return b, nil
		}
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

// adjacentTrack resolves the results-list neighbor of the currently playing
// track. Playing from history leaves the results list empty, making every
// neighbor lookup miss.
func (b *statefulBubble) adjacentTrack(offset int) (youtube.Track, bool) {
	if b.currentTrack == nil {
		return youtube.Track{}, false
	}

	items := b.tracksC.Items()
	idx := -1
	for i, item := range items {
		if track, ok := item.(*listItem).internal.(youtube.Track); ok && track.VideoID == b.currentTrack.VideoID {
			idx = i
			break
		}
	}

	target := idx + offset
	if idx < 0 || target < 0 || target >= len(items) {
		return youtube.Track{}, false
	}

	track, ok := items[target].(*listItem).internal.(youtube.Track)
	return track, ok
}

func (b *statefulBubble) updatePostPlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.postPlayC.Items()); n > 0 && b.postPlayC.Index() == 0 {
				b.postPlayC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.postPlayC.Items()); n > 0 && b.postPlayC.Index() == n-1 {
				b.postPlayC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.confirm, b.keymap.selectOne):
			if b.postPlayC.SelectedItem() == nil {
				break
			}

			switch b.postPlayC.SelectedItem().(*listItem).internal.(string) {
			case "Next":
				if track, ok := b.adjacentTrack(1); ok {
					b.newState(playState)
					return b, tea.Batch(b.playTrack(track), b.startLoading())
				}
				b.previousState()
			case "Replay":
				if b.currentTrack != nil {
					b.newState(playState)
					return b, tea.Batch(b.playTrack(*b.currentTrack), b.startLoading())
				}
			case "Previous":
				if track, ok := b.adjacentTrack(-1); ok {
					b.newState(playState)
					return b, tea.Batch(b.playTrack(track), b.startLoading())
				}
				b.previousState()
			case "Back to Results":
				b.previousState()
				return b, nil
			}
		}
	}

	b.postPlayC, cmd = b.postPlayC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	return b, nil
}
