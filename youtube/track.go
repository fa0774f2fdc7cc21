package youtube

import "fmt"

// Track is the adapter's projection of one search hit. The same shape backs
// single-result lookups, indexed slider lookups and the hosting bot's track
// mapping; values live for the request only, nothing is persisted.
// JSON keys follow the chat-bot wire shape.
type Track struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	VideoID   string `json:"vidid"`
	Duration  string `json:"duration_min"` // clock style, empty for live streams
	Seconds   int    `json:"duration_sec"`
	Thumbnail string `json:"thumb"`
}

// String renders the track as a single list line.
func (t Track) String() string {
	if t.Duration == "" {
		return fmt.Sprintf("%s (live)", t.Title)
	}
	return fmt.Sprintf("%s (%s)", t.Title, t.Duration)
}
