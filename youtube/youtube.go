package youtube

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/cookies"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/log"
	"github.com/spf13/viper"
)

// API is the adapter surface the hosting bot talks to. Construction wires the
// real extractor, search index and credential provider; options swap any of
// them out, which is how tests run without subprocesses.
type API struct {
	extractor Extractor
	search    Searcher
	jars      cookies.Provider
}

// Option customizes an API during construction.
type Option func(*API)

// WithExtractor swaps the extraction backend.
func WithExtractor(e Extractor) Option {
	return func(a *API) { a.extractor = e }
}

// WithSearcher swaps the search index client.
func WithSearcher(s Searcher) Option {
	return func(a *API) { a.search = s }
}

// WithCookies swaps the credential provider.
func WithCookies(p cookies.Provider) Option {
	return func(a *API) { a.jars = p }
}

// New assembles the adapter with production defaults.
func New(opts ...Option) *API {
	api := &API{
		extractor: NewExtractor(),
		search:    NewSearcher(),
		jars:      cookies.Random(),
	}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

// resolve expands a bare video id to its canonical watch URL.
func resolve(link string, videoID bool) string {
	if videoID {
		return WatchURL(link)
	}
	return link
}

// Exists reports whether the text looks like a link this adapter serves.
func (a *API) Exists(link string, videoID bool) bool {
	return IsLink(resolve(link, videoID))
}

// Details resolves the top search hit for a query or pasted link.
func (a *API) Details(ctx context.Context, link string, videoID bool) (Track, error) {
	link = stripParams(resolve(link, videoID))

	track, err := a.first(ctx, link)
	if err != nil {
		log.Errorf("details %q: %s", link, err)
		return Track{}, err
	}
	return track, nil
}

// Track resolves the same hit as Details. The hosting bot consumes both
// shapes, so both stay addressable.
func (a *API) Track(ctx context.Context, link string, videoID bool) (Track, error) {
	return a.Details(ctx, link, videoID)
}

// Slider resolves the index-th hit, 0-based, within the first results page.
func (a *API) Slider(ctx context.Context, query string, index int, videoID bool) (Track, error) {
	query = stripParams(resolve(query, videoID))

	tracks, err := a.search.Search(ctx, query, viper.GetInt(key.SearchSliderLimit))
	if err != nil {
		log.Errorf("slider %q: %s", query, err)
		return Track{}, err
	}
	if index < 0 || index >= len(tracks) {
		return Track{}, fmt.Errorf("%w: no hit at position %d", ErrNotFound, index)
	}
	return tracks[index], nil
}

// Search returns up to limit hits for a query, in index order.
func (a *API) Search(ctx context.Context, query string, limit int) ([]Track, error) {
	tracks, err := a.search.Search(ctx, query, limit)
	if err != nil {
		log.Errorf("search %q: %s", query, err)
		return nil, err
	}
	return tracks, nil
}

// Playlist enumerates up to limit video ids of a playlist using a flat,
// non-recursive listing. requestedBy is accepted for call compatibility with
// the hosting bot and ignored. Without credentials the listing degrades to
// empty.
func (a *API) Playlist(ctx context.Context, link string, limit int, requestedBy int64, videoID bool) ([]string, error) {
	_ = requestedBy

	if videoID {
		link = PlaylistURL(link)
	}
	link = stripParams(link)

	jar := a.jars()
	if jar.IsAbsent() {
		log.Warnf("playlist %q needs cookies, returning nothing", link)
		return nil, ErrAuthMissing
	}

	info, err := a.extractor.Probe(ctx, link, ExtractOptions{
		Cookies: jar,
		Flat:    true,
		Limit:   limit,
	})
	if err != nil {
		log.Errorf("playlist %q: %s", link, err)
		return nil, err
	}

	entries := info.Entries
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return lo.FilterMap(entries, func(entry MediaInfo, _ int) (string, bool) {
		return entry.ID, entry.ID != ""
	}), nil
}

// Formats lists the non-DASH renditions of a video together with the
// normalized link they came from. Without credentials the listing degrades to
// empty.
func (a *API) Formats(ctx context.Context, link string, videoID bool) ([]Format, string, error) {
	link = stripParams(resolve(link, videoID))

	jar := a.jars()
	if jar.IsAbsent() {
		log.Warnf("formats of %q need cookies, returning nothing", link)
		return nil, link, ErrAuthMissing
	}

	info, err := a.extractor.Probe(ctx, link, ExtractOptions{Cookies: jar})
	if err != nil {
		log.Errorf("formats %q: %s", link, err)
		return nil, link, err
	}

	formats := lo.FilterMap(info.Formats, func(f FormatInfo, _ int) (Format, bool) {
		// DASH segments cannot be handed over as a single rendition.
		if strings.Contains(strings.ToLower(f.Format), "dash") {
			return Format{}, false
		}
		return Format{
			ID:       f.FormatID,
			Ext:      f.Ext,
			Filesize: f.Filesize,
			Note:     f.FormatNote,
			Label:    f.Format,
			Link:     link,
		}, true
	})
	return formats, link, nil
}

// Video resolves a playable rendition of a video: a direct stream URL when
// the upstream offers one, otherwise a local download.
func (a *API) Video(ctx context.Context, link string, videoID bool) (string, error) {
	link = stripParams(resolve(link, videoID))

	if url, err := a.StreamURL(ctx, link, MediaVideo); err == nil {
		return url, nil
	}

	path, err := a.fetchMedia(ctx, link, MediaVideo, DownloadOptions{})
	if err != nil {
		log.Errorf("video %q: %s", link, err)
		return "", err
	}
	return path, nil
}

// FileSize sums the reported sizes of every rendition of a video.
// Credential-gated like the other format-level probes.
func (a *API) FileSize(ctx context.Context, link string, videoID bool) (int64, error) {
	link = stripParams(resolve(link, videoID))

	jar := a.jars()
	if jar.IsAbsent() {
		log.Warnf("size probe of %q needs cookies", link)
		return 0, ErrAuthMissing
	}

	info, err := a.extractor.Probe(ctx, link, ExtractOptions{Cookies: jar})
	if err != nil {
		log.Errorf("size probe %q: %s", link, err)
		return 0, err
	}

	return lo.SumBy(info.Formats, func(f FormatInfo) int64 { return f.Filesize }), nil
}

// first resolves the single top hit for a query.
func (a *API) first(ctx context.Context, query string) (Track, error) {
	tracks, err := a.search.Search(ctx, query, 1)
	if err != nil {
		return Track{}, err
	}
	if len(tracks) == 0 {
		return Track{}, ErrNotFound
	}
	return tracks[0], nil
}
