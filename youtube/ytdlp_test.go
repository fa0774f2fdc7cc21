package youtube

import (
	"context"
	"errors"
	"testing"

	"github.com/cenkalti/backoff/v5"
	"github.com/lrstanley/go-ytdlp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Failure classification", t, func() {
		upstream := errors.New("exit status 1")

		Convey("Dead media never retries", func() {
			err := classify(&ytdlp.Result{Stderr: "ERROR: Video unavailable\nThis video has been removed"}, upstream)

			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			var permanent *backoff.PermanentError
			So(errors.As(err, &permanent), ShouldBeTrue)
		})

		Convey("Credential walls never retry", func() {
			err := classify(&ytdlp.Result{Stderr: "ERROR: Sign in to confirm you're not a bot"}, upstream)

			So(errors.Is(err, ErrAuthMissing), ShouldBeTrue)
			var permanent *backoff.PermanentError
			So(errors.As(err, &permanent), ShouldBeTrue)
		})

		Convey("Anything else is assumed transient", func() {
			err := classify(&ytdlp.Result{Stderr: "ERROR: HTTP Error 503: Service Unavailable"}, upstream)

			So(errors.Is(err, ErrUpstream), ShouldBeTrue)
			var permanent *backoff.PermanentError
			So(errors.As(err, &permanent), ShouldBeFalse)
		})

		Convey("Caller cancellation passes through", func() {
			err := classify(nil, context.Canceled)

			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			var permanent *backoff.PermanentError
			So(errors.As(err, &permanent), ShouldBeTrue)
		})
	})
}

func TestDecodeInfo(t *testing.T) {
	Convey("Media info decoding", t, func() {
		Convey("A clean dump", func() {
			info, err := decodeInfo(`{"id":"dQw4w9WgXcQ","title":"Never Gonna Give You Up","ext":"webm","duration":212}`)

			So(err, ShouldBeNil)
			So(info.ID, ShouldEqual, "dQw4w9WgXcQ")
			So(info.Ext, ShouldEqual, "webm")
			So(info.Duration, ShouldEqual, 212.0)
		})

		Convey("Progress noise after the document is tolerated", func() {
			info, err := decodeInfo("{\"id\":\"dQw4w9WgXcQ\"}\n[download] 100% of 3.37MiB in 00:02\n")

			So(err, ShouldBeNil)
			So(info.ID, ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Garbage is an upstream failure", func() {
			_, err := decodeInfo("yt-dlp: command not found")

			So(errors.Is(err, ErrUpstream), ShouldBeTrue)
		})
	})
}
