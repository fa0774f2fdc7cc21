package history

import (
	"fmt"
	"time"

	"github.com/shadowheroku/mu/util"
	"github.com/shadowheroku/mu/youtube"
)

// SavedTrack represents a single playback entry preserved in the user's history.
type SavedTrack struct {
	Title        string    `json:"title"`
	Link         string    `json:"link"`
	VideoID      string    `json:"vidid"`
	Duration     string    `json:"duration_min"`
	Seconds      int       `json:"duration_sec"`
	Plays        int       `json:"plays"`
	LastPlayedAt time.Time `json:"last_played_at"`
}

func (s *SavedTrack) encode() string {
	return s.VideoID
}

func (s *SavedTrack) String() string {
	return fmt.Sprintf("%s : %s", s.Title, util.Quantify(s.Plays, "play", "plays"))
}

// Track rebuilds the adapter-facing track shape from the stored record.
func (s *SavedTrack) Track() youtube.Track {
	return youtube.Track{
		Title:    s.Title,
		Link:     s.Link,
		VideoID:  s.VideoID,
		Duration: s.Duration,
		Seconds:  s.Seconds,
	}
}

func newSavedTrack(track youtube.Track) *SavedTrack {
	return &SavedTrack{
		Title:    track.Title,
		Link:     track.Link,
		VideoID:  track.VideoID,
		Duration: track.Duration,
		Seconds:  track.Seconds,
	}
}
