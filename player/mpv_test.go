package player

import (
	"testing"

	"github.com/shadowheroku/mu/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Should accept http and https URLs", func() {
			for _, link := range []string{
				"https://rr4---sn-4g5e6nsz.googlevideo.com/videoplayback?expire=1",
				"http://example.com/audio.m4a",
			} {
				got, err := sanitizeMediaTarget(link)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, link)
			}
		})

		Convey("Should reject other URL schemes", func() {
			_, err := sanitizeMediaTarget("rtmp://example.com/live")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject flag lookalikes", func() {
			_, err := sanitizeMediaTarget("--script=evil.lua")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject control characters", func() {
			_, err := sanitizeMediaTarget("https://example.com/\nvideo")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject empty input", func() {
			_, err := sanitizeMediaTarget("  ")
			So(err, ShouldNotBeNil)
		})

		Convey("Should clean local paths", func() {
			got, err := sanitizeMediaTarget("downloads/../downloads/dQw4w9WgXcQ.mp3")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "downloads/dQw4w9WgXcQ.mp3")
		})
	})
}

func TestSanitizeTitle(t *testing.T) {
	Convey("sanitizeTitle", t, func() {
		So(sanitizeTitle("Artist\n-\tSong\r"), ShouldEqual, "Artist - Song")
		So(sanitizeTitle("Plain Title"), ShouldEqual, "Plain Title")
		So(sanitizeTitle("nul\x00byte"), ShouldEqual, "nulbyte")
	})
}

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		Convey("Should default to mpv", func() {
			viper.Set(key.Player, "mpv")
			p := New(false)
			mpv, ok := p.(*MPV)
			So(ok, ShouldBeTrue)
			So(mpv.IsRunning(), ShouldBeFalse)
			So(mpv.Socket(), ShouldBeEmpty)
		})
	})
}
