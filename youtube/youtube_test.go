package youtube

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/cookies"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

// fakeExtractor replaces the subprocess backend, answering canned info and
// recording every invocation.
type fakeExtractor struct {
	probeInfo *MediaInfo
	probeErr  error
	fetchInfo *MediaInfo
	fetchErr  error

	// fetchFiles are created on the active filesystem when Fetch runs,
	// standing in for what the real tool leaves on disk.
	fetchFiles []string

	probes   int
	fetches  int
	lastLink string
	lastOpts ExtractOptions
}

func (f *fakeExtractor) Probe(_ context.Context, link string, opts ExtractOptions) (*MediaInfo, error) {
	f.probes++
	f.lastLink = link
	f.lastOpts = opts

	if f.probeErr != nil {
		return nil, f.probeErr
	}
	return f.probeInfo, nil
}

func (f *fakeExtractor) Fetch(_ context.Context, link string, opts ExtractOptions) (*MediaInfo, error) {
	f.fetches++
	f.lastLink = link
	f.lastOpts = opts

	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	for _, path := range f.fetchFiles {
		lo.Must0(filesystem.API().WriteFile(path, []byte("media"), 0o644))
	}
	return f.fetchInfo, nil
}

// fakeSearcher replaces the search index with a canned result page.
type fakeSearcher struct {
	tracks []Track
	err    error

	lastQuery string
	lastLimit int
}

func (f *fakeSearcher) Search(_ context.Context, query string, limit int) ([]Track, error) {
	f.lastQuery = query
	f.lastLimit = limit

	if f.err != nil {
		return nil, f.err
	}
	tracks := f.tracks
	if limit > 0 && len(tracks) > limit {
		tracks = tracks[:limit]
	}
	return tracks, nil
}

func testAPI(extractor Extractor, searcher Searcher, jars cookies.Provider) *API {
	return New(WithExtractor(extractor), WithSearcher(searcher), WithCookies(jars))
}

func TestExists(t *testing.T) {
	Convey("Link recognition through the adapter", t, func() {
		api := testAPI(&fakeExtractor{}, &fakeSearcher{}, cookies.None())

		So(api.Exists("https://youtu.be/dQw4w9WgXcQ", false), ShouldBeTrue)
		So(api.Exists("https://open.spotify.com/track/xyz", false), ShouldBeFalse)
		So(api.Exists("dQw4w9WgXcQ", true), ShouldBeTrue)
	})
}

func TestDetails(t *testing.T) {
	Convey("Details", t, func() {
		hit := Track{
			Title:     "Never Gonna Give You Up",
			Link:      WatchURL("dQw4w9WgXcQ"),
			VideoID:   "dQw4w9WgXcQ",
			Duration:  "4:20",
			Seconds:   260,
			Thumbnail: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hq720.jpg",
		}
		search := &fakeSearcher{tracks: []Track{hit}}
		api := testAPI(&fakeExtractor{}, search, cookies.None())

		Convey("A bare video id expands to the canonical watch link", func() {
			track, err := api.Details(context.Background(), "dQw4w9WgXcQ", true)

			So(err, ShouldBeNil)
			So(search.lastQuery, ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
			So(search.lastLimit, ShouldEqual, 1)
			So(track, ShouldResemble, hit)
		})

		Convey("Trailing parameters are cut before the lookup", func() {
			_, err := api.Details(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123", false)

			So(err, ShouldBeNil)
			So(search.lastQuery, ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		})

		Convey("An empty result page reports missing media", func() {
			search.tracks = nil

			_, err := api.Details(context.Background(), "no such song", false)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Track answers the same hit", func() {
			track, err := api.Track(context.Background(), "dQw4w9WgXcQ", true)

			So(err, ShouldBeNil)
			So(track, ShouldResemble, hit)
		})
	})
}

func TestSlider(t *testing.T) {
	Convey("Slider", t, func() {
		viper.Set(key.SearchSliderLimit, 10)

		hits := lo.Map(lo.Range(5), func(i int, _ int) Track {
			return Track{Title: fmt.Sprintf("hit %d", i), VideoID: fmt.Sprintf("id%d", i)}
		})
		search := &fakeSearcher{tracks: hits}
		api := testAPI(&fakeExtractor{}, search, cookies.None())

		Convey("Resolves the hit at the requested position", func() {
			track, err := api.Slider(context.Background(), "lofi beats", 3, false)

			So(err, ShouldBeNil)
			So(track.VideoID, ShouldEqual, "id3")
			So(search.lastLimit, ShouldEqual, 10)
		})

		Convey("A position beyond the page is missing media", func() {
			_, err := api.Slider(context.Background(), "lofi beats", 12, false)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Negative positions are rejected the same way", func() {
			_, err := api.Slider(context.Background(), "lofi beats", -1, false)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestPlaylist(t *testing.T) {
	Convey("Playlist", t, func() {
		ctx := context.Background()

		Convey("Without cookies it degrades to an empty listing", func() {
			extractor := &fakeExtractor{}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			ids, err := api.Playlist(ctx, "PL123", 5, 42, true)

			So(errors.Is(err, ErrAuthMissing), ShouldBeTrue)
			So(ids, ShouldBeEmpty)
			So(extractor.probes, ShouldEqual, 0)
		})

		Convey("With cookies it lists ids from a flat probe", func() {
			extractor := &fakeExtractor{probeInfo: &MediaInfo{Entries: []MediaInfo{
				{ID: "aaa"}, {}, {ID: "bbb"}, {ID: "ccc"},
			}}}
			api := testAPI(extractor, &fakeSearcher{}, cookies.Fixed("cookies/main.txt"))

			ids, err := api.Playlist(ctx, "PL123", 3, 42, true)

			So(err, ShouldBeNil)
			So(ids, ShouldResemble, []string{"aaa", "bbb"})
			So(extractor.lastLink, ShouldEqual, "https://youtube.com/playlist?list=PL123")
			So(extractor.lastOpts.Flat, ShouldBeTrue)
			So(extractor.lastOpts.Limit, ShouldEqual, 3)
			So(extractor.lastOpts.Cookies.MustGet(), ShouldEqual, "cookies/main.txt")
		})
	})
}

func TestFormats(t *testing.T) {
	Convey("Formats", t, func() {
		ctx := context.Background()

		Convey("Without cookies it degrades to an empty listing", func() {
			api := testAPI(&fakeExtractor{}, &fakeSearcher{}, cookies.None())

			formats, link, err := api.Formats(ctx, "dQw4w9WgXcQ", true)

			So(errors.Is(err, ErrAuthMissing), ShouldBeTrue)
			So(formats, ShouldBeEmpty)
			So(link, ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		})

		Convey("DASH renditions are dropped, sparse ones kept", func() {
			extractor := &fakeExtractor{probeInfo: &MediaInfo{Formats: []FormatInfo{
				{FormatID: "18", Ext: "mp4", Filesize: 1 << 20, Format: "18 - 640x360 (360p)", FormatNote: "360p"},
				{FormatID: "137", Format: "137 - 1920x1080 (DASH video)"},
				{FormatID: "140", Format: "140 - audio only (dash audio)"},
				{},
			}}}
			api := testAPI(extractor, &fakeSearcher{}, cookies.Fixed("cookies/main.txt"))

			formats, link, err := api.Formats(ctx, "https://youtu.be/dQw4w9WgXcQ", false)

			So(err, ShouldBeNil)
			So(link, ShouldEqual, "https://youtu.be/dQw4w9WgXcQ")
			So(formats, ShouldHaveLength, 2)
			So(formats[0].ID, ShouldEqual, "18")
			So(formats[0].Label, ShouldEqual, "18 - 640x360 (360p)")
			So(formats[0].Link, ShouldEqual, link)
			So(formats[1], ShouldResemble, Format{Link: link})
		})
	})
}

func TestFileSize(t *testing.T) {
	Convey("FileSize", t, func() {
		ctx := context.Background()

		Convey("Sums every rendition", func() {
			extractor := &fakeExtractor{probeInfo: &MediaInfo{Formats: []FormatInfo{
				{FormatID: "18", Filesize: 100},
				{FormatID: "22", Filesize: 250},
				{FormatID: "140"},
			}}}
			api := testAPI(extractor, &fakeSearcher{}, cookies.Fixed("cookies/main.txt"))

			size, err := api.FileSize(ctx, "dQw4w9WgXcQ", true)

			So(err, ShouldBeNil)
			So(size, ShouldEqual, 350)
		})

		Convey("Without cookies it degrades to zero", func() {
			api := testAPI(&fakeExtractor{}, &fakeSearcher{}, cookies.None())

			size, err := api.FileSize(ctx, "dQw4w9WgXcQ", true)

			So(errors.Is(err, ErrAuthMissing), ShouldBeTrue)
			So(size, ShouldEqual, 0)
		})
	})
}

func TestVideo(t *testing.T) {
	Convey("Video", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.DownloadsPath, "downloads")
		viper.Set(key.DownloadsAudioCodec, "mp3")
		viper.Set(key.DownloadsAudioQuality, "192")
		ctx := context.Background()

		Convey("Prefers the direct stream", func() {
			extractor := &fakeExtractor{probeInfo: &MediaInfo{URL: "https://cdn.example/stream.m3u8"}}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			out, err := api.Video(ctx, "dQw4w9WgXcQ", true)

			So(err, ShouldBeNil)
			So(out, ShouldEqual, "https://cdn.example/stream.m3u8")
			So(extractor.fetches, ShouldEqual, 0)
		})

		Convey("Falls back to a download when no stream is offered", func() {
			extractor := &fakeExtractor{
				probeInfo:  &MediaInfo{},
				fetchInfo:  &MediaInfo{Ext: "mp4"},
				fetchFiles: []string{filepath.Join("downloads", "dQw4w9WgXcQ.mp4")},
			}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			out, err := api.Video(ctx, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", false)

			So(err, ShouldBeNil)
			So(out, ShouldEqual, filepath.Join("downloads", "dQw4w9WgXcQ.mp4"))
			So(extractor.fetches, ShouldEqual, 1)
		})
	})
}
