package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shadowheroku/mu/youtube"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWriteJsonResponse(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for an empty result", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "test", Json: true}
			err := writeJson(&buf, nil, opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Query, ShouldEqual, "test")
			So(output.Result, ShouldHaveLength, 0)
		})

		Convey("Should round-trip enriched entries", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "daft punk", Json: true}
			entries := []*Entry{
				{
					Track:  youtube.Track{Title: "One More Time", VideoID: "FGBhQbmPwH8"},
					Stream: "https://cdn.example/stream",
				},
			}
			So(writeJson(&buf, entries, opts), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].Track.VideoID, ShouldEqual, "FGBhQbmPwH8")
			So(output.Result[0].Stream, ShouldEqual, "https://cdn.example/stream")
			So(output.Result[0].Formats, ShouldBeEmpty)
		})
	})
}

func TestParseTrackPicker(t *testing.T) {
	Convey("ParseTrackPicker", t, func() {
		tracks := []youtube.Track{
			{VideoID: "aaa"},
			{VideoID: "bbb"},
			{VideoID: "ccc"},
		}

		Convey("first", func() {
			picker, err := ParseTrackPicker("first")
			So(err, ShouldBeNil)
			So(picker(tracks).VideoID, ShouldEqual, "aaa")
			So(picker(nil), ShouldBeNil)
		})

		Convey("last", func() {
			picker, err := ParseTrackPicker("last")
			So(err, ShouldBeNil)
			So(picker(tracks).VideoID, ShouldEqual, "ccc")
		})

		Convey("index", func() {
			picker, err := ParseTrackPicker("1")
			So(err, ShouldBeNil)
			So(picker(tracks).VideoID, ShouldEqual, "bbb")
		})

		Convey("index past the end clamps", func() {
			picker, err := ParseTrackPicker("99")
			So(err, ShouldBeNil)
			So(picker(tracks).VideoID, ShouldEqual, "ccc")
		})

		Convey("garbage is rejected", func() {
			_, err := ParseTrackPicker("third one")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseFormatsFilter(t *testing.T) {
	Convey("ParseFormatsFilter", t, func() {
		formats := []youtube.Format{
			{ID: "140", Ext: "m4a", Note: "medium", Label: "140 - audio only (medium)"},
			{ID: "251", Ext: "webm", Note: "medium", Label: "251 - audio only (medium)"},
			{ID: "18", Ext: "mp4", Note: "360p", Label: "18 - 640x360 (360p)"},
		}

		apply := func(selector string) []youtube.Format {
			filter, err := ParseFormatsFilter(selector)
			So(err, ShouldBeNil)
			filtered, err := filter(formats)
			So(err, ShouldBeNil)
			return filtered
		}

		Convey("all keeps everything", func() {
			So(apply("all"), ShouldHaveLength, 3)
		})

		Convey("audio keeps audio-only renditions", func() {
			filtered := apply("audio")
			So(filtered, ShouldHaveLength, 2)
			So(filtered[0].ID, ShouldEqual, "140")
		})

		Convey("video keeps the rest", func() {
			filtered := apply("video")
			So(filtered, ShouldHaveLength, 1)
			So(filtered[0].ID, ShouldEqual, "18")
		})

		Convey("substring matches note and extension", func() {
			So(apply("@webm@"), ShouldHaveLength, 1)
			So(apply("@360@"), ShouldHaveLength, 1)
		})

		Convey("anything else selects by id", func() {
			filtered := apply("251")
			So(filtered, ShouldHaveLength, 1)
			So(filtered[0].Ext, ShouldEqual, "webm")
		})

		Convey("empty selector is rejected", func() {
			_, err := ParseFormatsFilter("")
			So(err, ShouldNotBeNil)
		})
	})
}
