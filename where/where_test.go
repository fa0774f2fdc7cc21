package where

import (
	"path/filepath"
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

func TestPaths(t *testing.T) {
	Convey("Directories are created on resolve", t, func() {
		resolvers := map[string]func() string{
			"Config":  Config,
			"Cache":   Cache,
			"Logs":    Logs,
			"Temp":    Temp,
			"Results": Results,
		}

		for name, resolve := range resolvers {
			Convey(name+"()", func() {
				path := resolve()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}
	})

	Convey("Configured paths", t, func() {
		Convey("Downloads comes from configuration and is created", func() {
			viper.Set(key.DownloadsPath, "downloads")
			path := Downloads()
			So(path, ShouldEqual, "downloads")
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cookies comes straight from configuration", func() {
			viper.Set(key.CookiesPath, "cookies")
			So(Cookies(), ShouldEqual, "cookies")
		})

		Convey("Cookies is not created when absent", func() {
			viper.Set(key.CookiesPath, "nonexistent-jars")
			exists := lo.Must(filesystem.API().DirExists(Cookies()))
			So(exists, ShouldBeFalse)
		})
	})

	Convey("File paths live under their parents", t, func() {
		Convey("History sits in the config directory", func() {
			So(History(), ShouldEqual, filepath.Join(Config(), "history.json"))
		})

		Convey("Queries sits in the cache directory", func() {
			So(Queries(), ShouldEqual, filepath.Join(Cache(), "queries.json"))
		})
	})
}
