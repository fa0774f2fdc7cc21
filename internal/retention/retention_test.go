package retention

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSweep(t *testing.T) {
	Convey("Retention sweep", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.DownloadsPath, "downloads")
		fs := filesystem.API()

		stale := filepath.Join("downloads", "old.mp3")
		fresh := filepath.Join("downloads", "new.mp3")
		lo.Must0(fs.MkdirAll("downloads", os.ModePerm))
		lo.Must0(fs.WriteFile(stale, []byte("media"), 0o644))
		lo.Must0(fs.WriteFile(fresh, []byte("media"), 0o644))
		lo.Must0(fs.Chtimes(stale, time.Now(), time.Now().Add(-48*time.Hour)))

		Convey("Disabled by default, nothing is touched", func() {
			viper.Set(key.DownloadsRetention, "0s")

			Sweep()

			So(lo.Must(fs.Exists(stale)), ShouldBeTrue)
			So(lo.Must(fs.Exists(fresh)), ShouldBeTrue)
		})

		Convey("With a period set, only aged files go", func() {
			viper.Set(key.DownloadsRetention, "24h")

			Sweep()

			So(lo.Must(fs.Exists(stale)), ShouldBeFalse)
			So(lo.Must(fs.Exists(fresh)), ShouldBeTrue)
		})
	})
}
