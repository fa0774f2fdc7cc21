// Package mini implements a lightweight, minimalist interface for music search and playback.
package mini

import (
	"os"

	"github.com/shadowheroku/mu/player"
	"github.com/shadowheroku/mu/util"
	"github.com/shadowheroku/mu/youtube"
)

var (
	truncateAt = 100
)

// Options configures a mini session.
type Options struct {
	// API resolves searches and stream locations.
	API *youtube.API

	// Query preseeds the first search, skipping the prompt.
	Query string

	// Video plays tracks with their video instead of audio only.
	Video bool

	// Continue starts at the playback history instead of a fresh search.
	Continue bool
}

type mini struct {
	width, height int

	state         state
	statesHistory util.Stack[state]

	api     *youtube.API
	backend player.Player
	video   bool

	cachedTracks map[string][]youtube.Track

	query          string
	pendingQuery   string
	selectedTracks []youtube.Track
	cursor         int
}

func newMini(options *Options) *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		api:           options.API,
		video:         options.Video,
		pendingQuery:  options.Query,
		cachedTracks:  make(map[string][]youtube.Track),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

func (m *mini) mediaKind() youtube.MediaKind {
	if m.video {
		return youtube.MediaVideo
	}
	return youtube.MediaAudio
}

// Run drives the interactive loop until the user quits.
func Run(options *Options) error {
	m := newMini(options)
	m.state = searchState
	if options.Continue {
		m.state = historySelectState
	}

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = util.Max(w-4, 20)
	}

	for {
		if err := m.handleState(); err != nil {
			m.stopPlayback()
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case searchState:
		return m.handleSearchState()
	case historySelectState:
		return m.handleHistorySelectState()
	case trackSelectState:
		return m.handleTrackSelectState()
	case playState:
		return m.handlePlayState()
	case quitState:
		m.stopPlayback()
		os.Exit(0)
	}

	return nil
}

func (m *mini) stopPlayback() {
	if m.backend != nil {
		_ = m.backend.Close()
	}
}
