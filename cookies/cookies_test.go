package cookies

import (
	"os"
	"testing"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestRandom(t *testing.T) {
	Convey("Random provider", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.CookiesPath, "cookies")
		fs := filesystem.API()

		Convey("With a single jar present", func() {
			lo.Must0(fs.MkdirAll("cookies", os.ModePerm))
			lo.Must0(fs.WriteFile("cookies/main.txt", []byte("# Netscape HTTP Cookie File"), 0o644))

			jar := Random()()
			So(jar.IsPresent(), ShouldBeTrue)
			So(jar.MustGet(), ShouldEqual, "cookies/main.txt")
		})

		Convey("With several jars it picks one of them", func() {
			lo.Must0(fs.MkdirAll("cookies", os.ModePerm))
			lo.Must0(fs.WriteFile("cookies/a.txt", []byte{}, 0o644))
			lo.Must0(fs.WriteFile("cookies/b.txt", []byte{}, 0o644))

			jar := Random()()
			So(jar.IsPresent(), ShouldBeTrue)
			So(jar.MustGet(), ShouldBeIn, "cookies/a.txt", "cookies/b.txt")
		})

		Convey("Non-jar files are not candidates", func() {
			lo.Must0(fs.MkdirAll("cookies", os.ModePerm))
			lo.Must0(fs.WriteFile("cookies/readme.md", []byte{}, 0o644))

			jar := Random()()
			So(jar.IsAbsent(), ShouldBeTrue)
		})

		Convey("A missing directory degrades to none", func() {
			jar := Random()()
			So(jar.IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestFixedAndNone(t *testing.T) {
	Convey("Fixed provider", t, func() {
		jar := Fixed("jars/exported.txt")()
		So(jar.IsPresent(), ShouldBeTrue)
		So(jar.MustGet(), ShouldEqual, "jars/exported.txt")
	})

	Convey("None provider", t, func() {
		So(None()().IsAbsent(), ShouldBeTrue)
	})
}
