package youtube

import (
	"regexp"
	"strings"

	"github.com/samber/mo"
)

// Canonical URL prefixes media identifiers expand to.
const (
	watchBase = "https://www.youtube.com/watch?v="
	listBase  = "https://youtube.com/playlist?list="
)

// linkPattern recognizes anything served by this adapter, long or short host.
var linkPattern = regexp.MustCompile(`(?:youtube\.com|youtu\.be)`)

// idPatterns cover the URL shapes a video id can be carried in.
// Order matters: the watch form is by far the most common.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&]+)`),
	regexp.MustCompile(`youtu\.be/([^?]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^/]+)`),
	regexp.MustCompile(`youtube\.com/v/([^/]+)`),
}

// WatchURL expands a bare video id to its canonical watch URL.
func WatchURL(id string) string {
	return watchBase + id
}

// PlaylistURL expands a bare playlist id to its canonical listing URL.
func PlaylistURL(id string) string {
	return listBase + id
}

// IsLink reports whether the text contains a link this adapter serves.
func IsLink(text string) bool {
	return linkPattern.MatchString(text)
}

// VideoID extracts the video id from any recognized URL shape.
func VideoID(link string) mo.Option[string] {
	for _, pattern := range idPatterns {
		if match := pattern.FindStringSubmatch(link); match != nil {
			return mo.Some(match[1])
		}
	}
	return mo.None[string]()
}

// NormalizeID reduces a link to a bare video id. When no pattern matches it
// falls back to a naive split that never fails: everything after the last
// "v=", cut at the first "&". Malformed input maps to a malformed id, never
// to an error.
func NormalizeID(link string) string {
	if id, ok := VideoID(link).Get(); ok {
		return id
	}

	rest := link
	if i := strings.LastIndex(link, "v="); i >= 0 {
		rest = link[i+2:]
	}
	id, _, _ := strings.Cut(rest, "&")
	return id
}

// stripParams drops everything from the first "&" on, normalizing watch links
// that carry playlist or tracking parameters.
func stripParams(link string) string {
	base, _, _ := strings.Cut(link, "&")
	return base
}
