package player

import (
	"fmt"

	"github.com/shadowheroku/mu/log"
	"github.com/shadowheroku/mu/sponsorblock"
)

// Skipper handles auto-skipping of community-flagged segments.
type Skipper struct {
	Segments []sponsorblock.Segment
	mpv      *MPV
}

// NewSkipper creates a new Skipper instance.
func NewSkipper(mpv *MPV, segments []sponsorblock.Segment) *Skipper {
	return &Skipper{
		Segments: segments,
		mpv:      mpv,
	}
}

// Check inspects the current playback position and skips if inside a flagged
// segment. Returns true if a skip was performed.
func (s *Skipper) Check(pos float64) (bool, error) {
	for _, segment := range s.Segments {
		if pos >= segment.Start && pos < segment.End {
			log.Infof("Skipping %s segment: %v -> %v", segment.Label(), pos, segment.End)
			if err := s.mpv.Seek(segment.End); err != nil {
				return false, fmt.Errorf("segment skip seek: %w", err)
			}
			return true, nil
		}
	}

	return false, nil
}

// ApplyChapters sends chapter markers to the player for visual feedback.
func (s *Skipper) ApplyChapters() error {
	if len(s.Segments) == 0 {
		return nil
	}

	return s.mpv.SetChapters(buildChapters(s.Segments))
}

// buildChapters lays out alternating music and flagged-segment markers.
// Segments must be sorted by start time.
func buildChapters(segments []sponsorblock.Segment) []map[string]interface{} {
	var chapters []map[string]interface{}

	for _, segment := range segments {
		if len(chapters) == 0 && segment.Start > 0 {
			chapters = append(chapters, map[string]interface{}{
				"title": "Music",
				"time":  0.0,
			})
		}

		chapters = append(chapters, map[string]interface{}{
			"title": segment.Label(),
			"time":  segment.Start,
		})
		chapters = append(chapters, map[string]interface{}{
			"title": "Music",
			"time":  segment.End,
		})
	}

	return chapters
}
