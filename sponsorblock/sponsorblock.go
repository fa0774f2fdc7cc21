// Package sponsorblock provides a client for the SponsorBlock API, enabling
// automated retrieval of community-flagged segments in YouTube videos.
package sponsorblock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/constant"
	"github.com/shadowheroku/mu/log"
	"github.com/shadowheroku/mu/network"
	"github.com/shadowheroku/mu/util"
)

const baseURL = "https://sponsor.ajay.app/api/skipSegments"

// categories lists the segment classes worth skipping in a music player:
// sponsor reads, self promotion and the non-music sections of music videos.
var categories = []string{"sponsor", "selfpromo", "music_offtopic"}

// Segment represents a continuous temporal range flagged for skipping,
// defined in seconds.
type Segment struct {
	Category string
	Start    float64
	End      float64
}

// Label returns a short human-readable title for the segment's category.
func (s Segment) Label() string {
	switch s.Category {
	case "sponsor":
		return "Sponsor"
	case "selfpromo":
		return "Self-Promo"
	case "music_offtopic":
		return "Non-Music"
	default:
		return s.Category
	}
}

// apiSegment defines the internal structural mapping for SponsorBlock API responses.
type apiSegment struct {
	Category string     `json:"category"`
	Segment  [2]float64 `json:"segment"`
}

// Fetch retrieves the flagged segments for a YouTube video from the
// SponsorBlock service, sorted by start time.
// Returns nil (not an error) if the video has no flagged segments.
func Fetch(videoID string) ([]Segment, error) {
	query := url.Values{}
	query.Set("videoID", videoID)
	query.Set("categories", string(lo.Must(json.Marshal(categories))))

	request, err := http.NewRequest(http.MethodGet, baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(request)
	if err != nil {
		log.Warnf("sponsorblock API request failed: %v", err)
		return nil, nil // Graceful degradation
	}
	defer util.Ignore(resp.Body.Close)

	// The service answers 404 for videos without registered segments.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		log.Warnf("sponsorblock API returned status %d", resp.StatusCode)
		return nil, nil
	}

	var data []apiSegment
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("parse sponsorblock response: %w", err)
	}

	segments := make([]Segment, 0, len(data))
	for _, s := range data {
		if s.Segment[1] <= s.Segment[0] {
			continue
		}
		segments = append(segments, Segment{
			Category: s.Category,
			Start:    s.Segment[0],
			End:      s.Segment[1],
		})
	}

	if len(segments) == 0 {
		return nil, nil
	}

	sort.Slice(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})

	return segments, nil
}
