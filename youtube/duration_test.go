package youtube

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSeconds(t *testing.T) {
	Convey("Clock text to seconds", t, func() {
		Convey("Live streams report no duration", func() {
			So(Seconds("None"), ShouldEqual, 0)
			So(Seconds(""), ShouldEqual, 0)
		})

		Convey("Clock shapes up to days", func() {
			So(Seconds("45"), ShouldEqual, 45)
			So(Seconds("3:07"), ShouldEqual, 187)
			So(Seconds("1:02:03"), ShouldEqual, 3723)
			So(Seconds("1:00:00:00"), ShouldEqual, 86400)
		})

		Convey("Unparsable text degrades to zero", func() {
			So(Seconds("soon"), ShouldEqual, 0)
			So(Seconds("1:xx"), ShouldEqual, 0)
			So(Seconds("-5"), ShouldEqual, 0)
			So(Seconds("1:2:3:4:5"), ShouldEqual, 0)
		})
	})
}

func TestDurationText(t *testing.T) {
	Convey("Seconds to clock text", t, func() {
		So(DurationText(0), ShouldEqual, "")
		So(DurationText(45), ShouldEqual, "0:45")
		So(DurationText(187), ShouldEqual, "3:07")
		So(DurationText(3723), ShouldEqual, "1:02:03")
	})
}
