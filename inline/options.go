// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/shadowheroku/mu/util"
	"github.com/shadowheroku/mu/youtube"
)

type (
	TrackPicker   func([]youtube.Track) *youtube.Track
	FormatsFilter func([]youtube.Format) ([]youtube.Format, error)
)

type Options struct {
	Out           io.Writer
	API           *youtube.API
	Json          bool
	Query         string
	Limit         int
	Media         youtube.MediaKind
	TrackPicker   mo.Option[TrackPicker]
	FormatsFilter mo.Option[FormatsFilter]
	Formats       bool
	Stream        bool
}

// ParseTrackPicker parses a track selector.
// Format: "first", "last", "[index]"
func ParseTrackPicker(description string) (TrackPicker, error) {
	if description == "first" {
		return func(tracks []youtube.Track) *youtube.Track {
			if len(tracks) == 0 {
				return nil
			}
			return &tracks[0]
		}, nil
	}
	if description == "last" {
		return func(tracks []youtube.Track) *youtube.Track {
			if len(tracks) == 0 {
				return nil
			}
			return &tracks[len(tracks)-1]
		}, nil
	}

	// Index: "5"
	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(tracks []youtube.Track) *youtube.Track {
			if len(tracks) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(tracks)-1))
			return &tracks[i]
		}, nil
	}

	return nil, fmt.Errorf("invalid track selector: %s", description)
}

// ParseFormatsFilter parses a rendition selector.
// Format: "all", "audio", "video", "@[substring]@", "[format id]"
func ParseFormatsFilter(description string) (FormatsFilter, error) {
	if description == "" {
		return nil, fmt.Errorf("empty rendition selector")
	}
	if description == "all" {
		return func(formats []youtube.Format) ([]youtube.Format, error) {
			return formats, nil
		}, nil
	}
	if description == "audio" {
		return func(formats []youtube.Format) ([]youtube.Format, error) {
			return lo.Filter(formats, func(f youtube.Format, _ int) bool {
				return audioOnly(f)
			}), nil
		}, nil
	}
	if description == "video" {
		return func(formats []youtube.Format) ([]youtube.Format, error) {
			return lo.Filter(formats, func(f youtube.Format, _ int) bool {
				return !audioOnly(f)
			}), nil
		}, nil
	}

	// Substring: "@text@"
	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") && len(description) > 1 {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(formats []youtube.Format) ([]youtube.Format, error) {
			return lo.Filter(formats, func(f youtube.Format, _ int) bool {
				haystack := strings.ToLower(strings.Join([]string{f.ID, f.Ext, f.Note, f.Label}, " "))
				return strings.Contains(haystack, sub)
			}), nil
		}, nil
	}

	// Anything else addresses a rendition by its id.
	return func(formats []youtube.Format) ([]youtube.Format, error) {
		return lo.Filter(formats, func(f youtube.Format, _ int) bool {
			return f.ID == description
		}), nil
	}, nil
}

func audioOnly(f youtube.Format) bool {
	label := strings.ToLower(f.Label + " " + f.Note)
	return strings.Contains(label, "audio only")
}
