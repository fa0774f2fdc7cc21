package query

import (
	"testing"

	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Search history", t, func() {
		So(Remember("Never Gonna Give You Up", 1), ShouldBeNil)
		So(Remember("never gonna give you up", 10), ShouldBeNil)
		So(Remember("lofi hip hop radio", 2), ShouldBeNil)

		memo = make(map[string][]*record)

		Convey("Case and padding collect into one record", func() {
			suggestions := SuggestMany("never")

			So(len(suggestions), ShouldBeGreaterThanOrEqualTo, 1)
			So(suggestions[0], ShouldEqual, "never gonna give you up")
		})

		Convey("The heaviest match comes first", func() {
			So(Remember("daft punk around the world", 1), ShouldBeNil)
			So(Remember("daft punk one more time", 5), ShouldBeNil)
			memo = make(map[string][]*record)

			suggestions := SuggestMany("daft")
			So(suggestions, ShouldHaveLength, 2)
			So(suggestions[0], ShouldEqual, "daft punk one more time")
		})

		Convey("Suggest picks the top completion", func() {
			So(Suggest("never").MustGet(), ShouldEqual, "never gonna give you up")
		})

		Convey("Disabled suggestions stay silent", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)

			So(SuggestMany("never"), ShouldBeEmpty)
		})

		Convey("Normalization", func() {
			So(normalize("  NARUTO OP  "), ShouldEqual, "naruto op")
		})
	})
}
