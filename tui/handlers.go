// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/shadowheroku/mu/color"
	"github.com/shadowheroku/mu/history"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/log"
	"github.com/shadowheroku/mu/player"
	"github.com/shadowheroku/mu/sponsorblock"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/util"
	"github.com/shadowheroku/mu/youtube"
	"github.com/spf13/viper"
)

// playerExitMsg signals that the playback backend terminated, naturally or
// through a teardown.
type playerExitMsg struct{}

// downloadedMsg reports where a background fetch landed.
type downloadedMsg struct {
	path string
}

// loadHistory populates the history list with saved playback records, most
// recently played first.
func (b *statefulBubble) loadHistory() (tea.Cmd, error) {
	saved, err := history.Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	sort.Slice(records, func(i, j int) bool {
		return records[i].LastPlayedAt.After(records[j].LastPlayedAt)
	})

	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = &listItem{internal: r}
	}

	return b.historyC.SetItems(items), nil
}

func (b *statefulBubble) searchTracks(query string) tea.Cmd {
	return func() tea.Msg {
		log.Info("searching for " + query)

		tracks, err := b.api.Search(context.Background(), query, viper.GetInt(key.SearchSliderLimit))
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		log.Infof("found %s", util.Quantify(len(tracks), "track", "tracks"))
		b.foundTracksChannel <- tracks
		return nil
	}
}

func (b *statefulBubble) waitForTracks() tea.Cmd {
	return func() tea.Msg {
		select {
		case found := <-b.foundTracksChannel:
			return found
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

// playTrack resolves the stream location, hands it to the backend, and blocks
// until playback ends. Tearing the backend down unblocks it as well.
func (b *statefulBubble) playTrack(track youtube.Track) tea.Cmd {
	return func() tea.Msg {
		b.currentTrack = &track

		_ = history.Save(track)

		backend := b.backend
		if backend == nil {
			backend = player.New(b.video)
			b.backend = backend
		}

		log.Infof("playing %s via %s", track.Title, viper.GetString(key.Player))
		b.progressStatus = fmt.Sprintf("Resolving %s", style.Fg(color.Purple)(track.Title))

		link, err := b.api.StreamURL(context.Background(), track.Link, b.mediaKind())
		if err != nil {
			// The player resolves watch pages itself through its yt-dlp hook.
			log.Warnf("no direct stream for %s, handing the page link to the player: %s", track.VideoID, err)
			link = track.Link
		}

		if err := backend.Play(link, track.Title); err != nil {
			log.Errorf("playback failed: %v", err)
			return fmt.Errorf("playback failed: %w", err)
		}

		b.paused = false
		b.progressStatus = fmt.Sprintf("Playing %s", style.Fg(color.Purple)(track.Title))
		log.Infof("player launched on socket %s", backend.Socket())

		// Segment skipping and chapter markers need the IPC surface, which
		// only the mpv backend provides.
		if mpv, ok := backend.(*player.MPV); ok {
			// A previous track's skipper must not outlive its segments.
			mpv.StopIPCTicker()

			var segments []sponsorblock.Segment
			if viper.GetBool(key.SkipSegments) {
				segments, _ = sponsorblock.Fetch(track.VideoID)
			}

			if len(segments) > 0 {
				log.Infof("watching %s on %s", util.Quantify(len(segments), "flagged segment", "flagged segments"), track.VideoID)

				skipper := player.NewSkipper(mpv, segments)
				if err := skipper.ApplyChapters(); err != nil {
					log.Warnf("failed to apply chapters: %v", err)
				}

				mpv.StartIPCTicker(func(pos, dur int) {
					if _, err := skipper.Check(float64(pos)); err != nil {
						log.Warnf("segment skip failed: %v", err)
					}
				})
			}
		}

		<-backend.Wait()
		return playerExitMsg{}
	}
}

// downloadTrack fetches a track in the background, reporting the landing path
// through downloadedChannel.
func (b *statefulBubble) downloadTrack(track youtube.Track) tea.Cmd {
	return func() tea.Msg {
		log.Info("downloading " + track.Title)

		path, _, err := b.api.Download(context.Background(), track.Link, youtube.DownloadOptions{})
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		b.downloadedChannel <- path
		return nil
	}
}

func (b *statefulBubble) waitForDownloaded() tea.Cmd {
	return func() tea.Msg {
		select {
		case path := <-b.downloadedChannel:
			return downloadedMsg{path: path}
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}
