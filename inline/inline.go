// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/log"
	"github.com/shadowheroku/mu/youtube"
	"github.com/spf13/viper"
)

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	limit := options.Limit
	if limit <= 0 {
		limit = viper.GetInt(key.SearchSliderLimit)
	}

	// Step 1: Resolve the result page for the query.
	tracks, err := options.API.Search(ctx, options.Query, limit)
	if err != nil {
		return fmt.Errorf("search failed for %q: %w", options.Query, err)
	}

	// Step 2: Apply track selection logic if a picker is defined.
	if options.TrackPicker.IsPresent() {
		picker := options.TrackPicker.MustGet()
		if choice := picker(tracks); choice != nil {
			tracks = []youtube.Track{*choice}
		} else {
			tracks = nil
		}
	}

	entries := make([]*Entry, len(tracks))
	for i := range tracks {
		entries[i] = &Entry{Track: tracks[i]}
	}

	if len(entries) == 0 {
		if options.Json {
			return writeJson(options.Out, nil, options)
		}
		return nil // Nothing found
	}

	// Step 3: Enrich the selected subset with renditions and stream URLs.
	for _, entry := range entries {
		if err := prepareEntry(ctx, entry, options); err != nil {
			return err
		}
	}

	// Step 4: Dispatch the processed results to the configured output writer.
	if options.Json {
		return writeJson(options.Out, entries, options)
	}

	for _, entry := range entries {
		if options.Stream && entry.Stream != "" {
			fmt.Fprintln(options.Out, entry.Stream)
		} else {
			fmt.Fprintln(options.Out, entry.Track.Link)
		}
	}

	return nil
}

func prepareEntry(ctx context.Context, entry *Entry, options *Options) error {
	// Renditions are credential-gated upstream. A failure here is a
	// configuration problem the caller has to know about.
	if options.Formats {
		formats, _, err := options.API.Formats(ctx, entry.Track.Link, false)
		if err != nil {
			return fmt.Errorf("formats of %s: %w", entry.Track.VideoID, err)
		}

		if options.FormatsFilter.IsPresent() {
			filter := options.FormatsFilter.MustGet()
			filtered, err := filter(formats)
			if err != nil {
				return err
			}
			formats = filtered
		}
		entry.Formats = formats
	}

	// Stream URLs expire quickly and occasionally resolve to nothing.
	// Inline consumers still get the rest of the entry.
	if options.Stream {
		url, err := options.API.StreamURL(ctx, entry.Track.Link, options.Media)
		if err != nil {
			log.Warnf("failed to resolve stream for %s: %v", entry.Track.VideoID, err)
		} else {
			entry.Stream = url
		}
	}

	return nil
}
