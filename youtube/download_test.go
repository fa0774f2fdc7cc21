package youtube

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/cookies"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestDownload(t *testing.T) {
	Convey("Download", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.DownloadsPath, "downloads")
		viper.Set(key.DownloadsAudioCodec, "mp3")
		viper.Set(key.DownloadsAudioQuality, "192")
		ctx := context.Background()
		fs := filesystem.API()

		Convey("The default variant fetches audio keyed by video id", func() {
			extractor := &fakeExtractor{
				fetchInfo:  &MediaInfo{Ext: "webm"},
				fetchFiles: []string{filepath.Join("downloads", "dQw4w9WgXcQ.mp3")},
			}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			path, local, err := api.Download(ctx, "dQw4w9WgXcQ", DownloadOptions{ID: true})

			So(err, ShouldBeNil)
			So(local, ShouldBeTrue)
			So(path, ShouldEqual, filepath.Join("downloads", "dQw4w9WgXcQ.mp3"))
			So(extractor.fetches, ShouldEqual, 1)
			So(extractor.lastLink, ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
			So(extractor.lastOpts.Format, ShouldEqual, "bestaudio/best")
			So(extractor.lastOpts.Output, ShouldEqual, filepath.Join("downloads", "dQw4w9WgXcQ.%(ext)s"))
			So(extractor.lastOpts.Audio.MustGet().Codec, ShouldEqual, "mp3")
			So(extractor.lastOpts.Audio.MustGet().Quality, ShouldEqual, "192")
		})

		Convey("A cached file is answered without a subprocess", func() {
			lo.Must0(fs.MkdirAll("downloads", os.ModePerm))
			lo.Must0(fs.WriteFile(filepath.Join("downloads", "dQw4w9WgXcQ.mp3"), []byte("cached"), 0o644))

			extractor := &fakeExtractor{}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			path, local, err := api.Download(ctx, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", DownloadOptions{})

			So(err, ShouldBeNil)
			So(local, ShouldBeTrue)
			So(path, ShouldEqual, filepath.Join("downloads", "dQw4w9WgXcQ.mp3"))
			So(extractor.fetches, ShouldEqual, 0)
			So(extractor.probes, ShouldEqual, 0)
		})

		Convey("The cache also answers explicit-format song requests", func() {
			lo.Must0(fs.MkdirAll("downloads", os.ModePerm))
			lo.Must0(fs.WriteFile(filepath.Join("downloads", "dQw4w9WgXcQ.mp3"), []byte("cached"), 0o644))

			extractor := &fakeExtractor{}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			path, local, err := api.Download(ctx, "dQw4w9WgXcQ", DownloadOptions{
				ID:        true,
				SongAudio: true,
				FormatID:  "140",
				Title:     "Never Gonna Give You Up",
			})

			So(err, ShouldBeNil)
			So(local, ShouldBeTrue)
			So(path, ShouldEqual, filepath.Join("downloads", "dQw4w9WgXcQ.mp3"))
			So(extractor.fetches, ShouldEqual, 0)
		})

		Convey("Explicit-format song requests are keyed by sanitized title", func() {
			extractor := &fakeExtractor{
				fetchInfo:  &MediaInfo{Ext: "m4a"},
				fetchFiles: []string{filepath.Join("downloads", "Never_Gonna_Give_You_Up.mp3")},
			}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			path, local, err := api.Download(ctx, "dQw4w9WgXcQ", DownloadOptions{
				ID:        true,
				SongVideo: true,
				FormatID:  "140",
				Title:     "Never Gonna Give You Up",
			})

			So(err, ShouldBeNil)
			So(local, ShouldBeTrue)
			So(path, ShouldEqual, filepath.Join("downloads", "Never_Gonna_Give_You_Up.mp3"))
			So(extractor.lastOpts.Format, ShouldEqual, "140")
			So(extractor.lastOpts.Output, ShouldEqual, filepath.Join("downloads", "Never_Gonna_Give_You_Up.%(ext)s"))
		})

		Convey("A fetch that leaves no file behind is reported", func() {
			extractor := &fakeExtractor{fetchInfo: &MediaInfo{Ext: "webm"}}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			_, _, err := api.Download(ctx, "dQw4w9WgXcQ", DownloadOptions{ID: true})

			So(errors.Is(err, ErrUpstream), ShouldBeTrue)
		})

		Convey("The video variant prefers a stream URL", func() {
			extractor := &fakeExtractor{probeInfo: &MediaInfo{URL: "https://cdn.example/video"}}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			out, local, err := api.Download(ctx, "dQw4w9WgXcQ", DownloadOptions{ID: true, Video: true})

			So(err, ShouldBeNil)
			So(local, ShouldBeFalse)
			So(out, ShouldEqual, "https://cdn.example/video")
			So(extractor.fetches, ShouldEqual, 0)
		})

		Convey("The video variant downloads when no stream is offered", func() {
			extractor := &fakeExtractor{
				probeInfo:  &MediaInfo{},
				fetchInfo:  &MediaInfo{Ext: "mp4"},
				fetchFiles: []string{filepath.Join("downloads", "dQw4w9WgXcQ.mp4")},
			}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			out, local, err := api.Download(ctx, "dQw4w9WgXcQ", DownloadOptions{ID: true, Video: true})

			So(err, ShouldBeNil)
			So(local, ShouldBeTrue)
			So(out, ShouldEqual, filepath.Join("downloads", "dQw4w9WgXcQ.mp4"))
			So(extractor.lastOpts.Format, ShouldEqual, "bestvideo[height<=720]+bestaudio")
		})
	})
}

func TestStreamURL(t *testing.T) {
	Convey("StreamURL", t, func() {
		ctx := context.Background()

		Convey("Reports the probed URL", func() {
			extractor := &fakeExtractor{probeInfo: &MediaInfo{URL: "https://cdn.example/audio"}}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			url, err := api.StreamURL(ctx, "https://youtu.be/dQw4w9WgXcQ", MediaAudio)

			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://cdn.example/audio")
			So(extractor.lastOpts.Format, ShouldEqual, "bestaudio/best")
			So(extractor.lastOpts.Output, ShouldBeEmpty)
		})

		Convey("A merged-only rendition offers no single URL", func() {
			extractor := &fakeExtractor{probeInfo: &MediaInfo{}}
			api := testAPI(extractor, &fakeSearcher{}, cookies.None())

			_, err := api.StreamURL(ctx, "https://youtu.be/dQw4w9WgXcQ", MediaVideo)

			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(extractor.lastOpts.Format, ShouldEqual, "bestvideo[height<=720]+bestaudio")
		})
	})
}
