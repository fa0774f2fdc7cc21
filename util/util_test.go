package util

import (
	"testing"

	"github.com/shadowheroku/mu/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
		Convey("Should keep track titles readable", func() {
			So(SanitizeFilename("Artist - Song (Official Video)"), ShouldEqual, "Artist_-_Song_(Official_Video)")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "track", "tracks"), ShouldEqual, "1 track")
		So(Quantify(2, "track", "tracks"), ShouldEqual, "2 tracks")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)

		Convey("Popping empty yields the zero value", func() {
			So(s.Pop(), ShouldEqual, 0)
			So(s.Len(), ShouldEqual, 0)
		})
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()

		Convey("Removes a single file", func() {
			So(fs.WriteFile("/song.mp3", []byte("x"), 0644), ShouldBeNil)
			So(Delete("/song.mp3"), ShouldBeNil)
			exists, _ := fs.Exists("/song.mp3")
			So(exists, ShouldBeFalse)
		})

		Convey("Removes a directory tree", func() {
			So(fs.MkdirAll("/downloads/inner", 0755), ShouldBeNil)
			So(fs.WriteFile("/downloads/inner/a.mp3", []byte("x"), 0644), ShouldBeNil)
			So(Delete("/downloads"), ShouldBeNil)
			exists, _ := fs.DirExists("/downloads")
			So(exists, ShouldBeFalse)
		})

		Convey("Missing targets report an error", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
