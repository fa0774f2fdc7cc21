package config

import (
	"testing"

	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should expose the extraction bounds", func() {
			_ = Setup()
			So(viper.GetInt(key.ExtractorMaxRetries), ShouldEqual, 3)
			So(viper.GetDuration(key.ExtractorRetryDelay).Seconds(), ShouldEqual, 2)
			So(viper.GetInt(key.SearchSliderLimit), ShouldEqual, 10)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("downloads.audio_codec")
			So(result, ShouldEqual, "downloads_audio_codec")
		})

		Convey("Env names should carry the application prefix", func() {
			field := Default[key.DownloadsPath]
			So(field.Env(), ShouldEqual, "MU_DOWNLOADS_PATH")
		})
	})
}
