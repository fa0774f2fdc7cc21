package mini

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/history"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/log"
	"github.com/shadowheroku/mu/player"
	"github.com/shadowheroku/mu/query"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/util"
	"github.com/shadowheroku/mu/youtube"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type state int

const (
	searchState state = iota + 1
	historySelectState
	trackSelectState
	playState
	quitState
)

func (m *mini) handleSearchState() error {
	var searchLoop func() error
	title("Search Track")

	searchLoop = func() error {
		q := m.pendingQuery
		m.pendingQuery = ""

		if q == "" {
			in, err := getInput(func(s string) bool {
				return s != ""
			})
			if err != nil {
				return err
			}
			q = in.value
		}

		erase := progress("Searching Query..")
		tracks, err := m.api.Search(context.Background(), q, viper.GetInt(key.MiniSearchLimit))
		erase()
		if err != nil {
			return err
		}

		m.cachedTracks[q] = tracks
		if len(tracks) == 0 {
			fail("No search results found")
			return searchLoop()
		}

		_ = query.Remember(q, 1)

		m.query = q
		m.newState(trackSelectState)
		return nil
	}

	return searchLoop()
}

func (m *mini) handleHistorySelectState() error {
	saved, err := history.Get()
	if err != nil {
		return err
	}

	records := lo.Values(saved)
	if len(records) == 0 {
		fail("No playback history")
		m.newState(searchState)
		return nil
	}

	slices.SortFunc(records, func(a, b *history.SavedTrack) int {
		return b.LastPlayedAt.Compare(a.LastPlayedAt)
	})

	title("History >>")
	b, record, err := menu(records)
	if err != nil {
		return err
	}

	if quit.eq(b) {
		m.newState(quitState)
		return nil
	}

	m.selectedTracks = []youtube.Track{record.Track()}
	m.cursor = 0
	m.newState(playState)
	return nil
}

func (m *mini) handleTrackSelectState() error {
	title("Query Results >>")
	b, track, err := menu(m.cachedTracks[m.query])
	if err != nil {
		return err
	}

	if quit.eq(b) {
		m.newState(quitState)
		return nil
	}

	m.selectedTracks = m.cachedTracks[m.query]
	m.cursor = lo.IndexOf(m.selectedTracks, track)
	m.newState(playState)
	return nil
}

func (m *mini) handlePlayState() error {
	type controls struct {
		next   chan struct{}
		prev   chan struct{}
		replay chan struct{}
		stop   chan struct{}
		err    chan error
	}

	if m.backend == nil {
		m.backend = player.New(m.video)
	}

	var playLoop func(track youtube.Track, c *controls, hasPrev, hasNext bool)

	playLoop = func(track youtube.Track, c *controls, hasPrev, hasNext bool) {
		util.ClearScreen()
		title(fmt.Sprintf("Currently playing %s", track.Title))
		if pos, err := m.backend.GetTimePos(); err == nil {
			if dur, err := m.backend.GetDuration(); err == nil {
				fmt.Println(style.Faint(fmt.Sprintf("at %s / %s", youtube.DurationText(int(pos)), youtube.DurationText(int(dur)))))
			}
		}

		var options []*bind
		if hasPrev {
			options = append(options, prev)
		}
		if hasNext {
			options = append(options, next)
		}

		suspend := pause
		if paused, err := m.backend.GetPausedStatus(); err == nil && paused {
			suspend = resume
		}
		options = append(options, replay, suspend, back, search)

		b, _, err := menu([]fmt.Stringer{}, options...)
		if err != nil {
			c.err <- err
			return
		}

		switch b {
		case next:
			c.next <- struct{}{}
		case prev:
			c.prev <- struct{}{}
		case replay:
			c.replay <- struct{}{}
		case pause, resume:
			if err := m.backend.TogglePause(); err != nil {
				fail(err.Error())
			}
			playLoop(track, c, hasPrev, hasNext)
		case back:
			m.previousState()
			c.stop <- struct{}{}
		case search:
			m.newState(searchState)
			c.stop <- struct{}{}
		case quit:
			m.newState(quitState)
			c.stop <- struct{}{}
		}
	}

	c := &controls{
		next:   make(chan struct{}),
		prev:   make(chan struct{}),
		replay: make(chan struct{}),
		stop:   make(chan struct{}),
		err:    make(chan error),
	}

	i := m.cursor

	for {
		track := m.selectedTracks[i]

		if err := m.startPlayback(track); err != nil {
			fail(err.Error())
			m.previousState()
			return nil
		}

		_ = history.Save(track)

		var (
			hasPrev = i > 0
			hasNext = i+1 < len(m.selectedTracks)
		)

		go playLoop(track, c, hasPrev, hasNext)

		select {
		case <-c.next:
			i++
		case <-c.prev:
			i--
		case <-c.replay:
		case <-c.stop:
			return nil
		case err := <-c.err:
			return err
		}
	}
}

// startPlayback resolves the stream location and hands it to the backend.
// Without a direct stream the watch page goes to the player as-is; mpv
// resolves those itself through its yt-dlp hook.
func (m *mini) startPlayback(track youtube.Track) error {
	erase := progress("Resolving stream..")
	link, err := m.api.StreamURL(context.Background(), track.Link, m.mediaKind())
	erase()
	if err != nil {
		log.Warnf("no direct stream for %s, handing the page link to the player: %s", track.VideoID, err)
		link = track.Link
	}

	erase = progress("Starting playback..")
	err = m.backend.Play(link, track.Title)
	erase()
	return err
}
