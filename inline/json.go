// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/shadowheroku/mu/youtube"
)

type Entry struct {
	// Track is the resolved search hit.
	Track youtube.Track `json:"track"`
	// Formats are the delivered renditions (optional).
	Formats []youtube.Format `json:"formats,omitempty"`
	// Stream is the resolved direct stream URL (optional).
	Stream string `json:"stream,omitempty"`
}

type Output struct {
	Query  string   `json:"query"`
	Result []*Entry `json:"result"`
}

func asJson(entries []*Entry, query string) ([]byte, error) {
	if entries == nil {
		entries = []*Entry{}
	}

	return json.Marshal(&Output{
		Query:  query,
		Result: entries,
	})
}

func writeJson(out io.Writer, entries []*Entry, options *Options) error {
	data, err := asJson(entries, options.Query)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
