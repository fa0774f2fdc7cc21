package youtube

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVideoID(t *testing.T) {
	Convey("Video id extraction", t, func() {
		Convey("Recognized URL shapes", func() {
			So(VideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42").MustGet(), ShouldEqual, "dQw4w9WgXcQ")
			So(VideoID("https://youtu.be/dQw4w9WgXcQ?si=abc").MustGet(), ShouldEqual, "dQw4w9WgXcQ")
			So(VideoID("https://www.youtube.com/embed/dQw4w9WgXcQ").MustGet(), ShouldEqual, "dQw4w9WgXcQ")
			So(VideoID("https://www.youtube.com/v/dQw4w9WgXcQ").MustGet(), ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Anything else carries no id", func() {
			So(VideoID("https://soundcloud.com/artist/track").IsAbsent(), ShouldBeTrue)
			So(VideoID("just words").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestNormalizeID(t *testing.T) {
	Convey("Id normalization", t, func() {
		Convey("Pattern-recognized links", func() {
			So(NormalizeID("https://youtu.be/dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
			So(NormalizeID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL1"), ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Unrecognized links fall back to a naive split", func() {
			So(NormalizeID("m.yewtu.be.example/watch?v=dQw4w9WgXcQ&list=PL1"), ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Bare ids pass through", func() {
			So(NormalizeID("dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
		})
	})
}

func TestLinks(t *testing.T) {
	Convey("Link recognition", t, func() {
		So(IsLink("check https://www.youtube.com/watch?v=dQw4w9WgXcQ out"), ShouldBeTrue)
		So(IsLink("https://youtu.be/dQw4w9WgXcQ"), ShouldBeTrue)
		So(IsLink("https://vimeo.com/123"), ShouldBeFalse)
	})

	Convey("Canonical expansion", t, func() {
		So(WatchURL("dQw4w9WgXcQ"), ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		So(PlaylistURL("PL123"), ShouldEqual, "https://youtube.com/playlist?list=PL123")
	})

	Convey("Parameter stripping", t, func() {
		So(stripParams("https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL1&index=2"), ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		So(stripParams("https://youtu.be/dQw4w9WgXcQ"), ShouldEqual, "https://youtu.be/dQw4w9WgXcQ")
	})
}
