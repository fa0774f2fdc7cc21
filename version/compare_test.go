package version

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Semantic version ordering", t, func() {
		Convey("Newer, older, equal", func() {
			So(lo.Must(Compare("1.2.3", "1.2.2")), ShouldEqual, 1)
			So(lo.Must(Compare("1.2.3", "1.3.0")), ShouldEqual, -1)
			So(lo.Must(Compare("1.2.3", "1.2.3")), ShouldEqual, 0)
			So(lo.Must(Compare("2.0.0", "1.9.9")), ShouldEqual, 1)
		})

		Convey("The v prefix is tolerated", func() {
			So(lo.Must(Compare("v1.2.3", "1.2.3")), ShouldEqual, 0)
		})

		Convey("Unparsable versions are rejected", func() {
			_, err := Compare("latest", "1.2.3")
			So(err, ShouldNotBeNil)
		})
	})
}
