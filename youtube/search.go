package youtube

import (
	"context"
	"fmt"
	"strings"

	"github.com/raitonoberu/ytsearch"
	"github.com/samber/lo"
	"github.com/shadowheroku/mu/internal/cache"
)

// Searcher resolves free-text queries, or pasted links, against the public
// search index. Implementations return at most limit tracks.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Track, error)
}

// indexSearch is the scrape-backed default Searcher.
type indexSearch struct{}

// NewSearcher returns the default search index client.
func NewSearcher() Searcher {
	return indexSearch{}
}

func (indexSearch) Search(_ context.Context, query string, limit int) ([]Track, error) {
	// The full result page is cached before the limit applies, so narrowing
	// and widening the same query both stay local.
	cacheKey := cache.GenerateKey(query, "index")

	var tracks []Track
	if !cache.Read(cacheKey, &tracks) {
		result, err := ytsearch.VideoSearch(query).Next()
		if err != nil {
			return nil, fmt.Errorf("%w: search: %s", ErrUpstream, err)
		}

		tracks = lo.Map(result.Videos, func(v *ytsearch.VideoItem, _ int) Track {
			// Thumbnail URLs carry sizing parameters after "?", callers want the
			// bare image.
			thumb := ""
			if len(v.Thumbnails) > 0 {
				thumb, _, _ = strings.Cut(v.Thumbnails[0].URL, "?")
			}

			return Track{
				Title:     v.Title,
				Link:      WatchURL(v.ID),
				VideoID:   v.ID,
				Duration:  DurationText(v.Duration),
				Seconds:   v.Duration,
				Thumbnail: thumb,
			}
		})

		if len(tracks) > 0 {
			_ = cache.Write(cacheKey, tracks)
		}
	}

	if limit > 0 && len(tracks) > limit {
		tracks = tracks[:limit]
	}

	return tracks, nil
}
