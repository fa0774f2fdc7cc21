package sponsorblock

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFetch(t *testing.T) {
	Convey("Fetch", t, func() {
		Convey("Should return ordered segments for a heavily flagged video", func() {
			segments, err := Fetch("dQw4w9WgXcQ")

			// SponsorBlock is a third-party API. If it is down or unreachable,
			// we degrade gracefully, so structure is only asserted when data exists.
			So(err, ShouldBeNil)

			for i, segment := range segments {
				So(segment.End, ShouldBeGreaterThan, segment.Start)
				if i > 0 {
					So(segment.Start, ShouldBeGreaterThanOrEqualTo, segments[i-1].Start)
				}
			}
		})

		Convey("Should return nil for an unknown video id", func() {
			segments, err := Fetch("mu-no-such-video")
			So(err, ShouldBeNil)
			So(segments, ShouldBeNil)
		})
	})
}

func TestSegmentLabel(t *testing.T) {
	Convey("Segment.Label", t, func() {
		Convey("Known categories get human titles", func() {
			So(Segment{Category: "sponsor"}.Label(), ShouldEqual, "Sponsor")
			So(Segment{Category: "selfpromo"}.Label(), ShouldEqual, "Self-Promo")
			So(Segment{Category: "music_offtopic"}.Label(), ShouldEqual, "Non-Music")
		})

		Convey("Unknown categories pass through", func() {
			So(Segment{Category: "exclusive_access"}.Label(), ShouldEqual, "exclusive_access")
		})
	})
}
