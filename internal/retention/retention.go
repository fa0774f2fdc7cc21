// Package retention prunes aged media out of the download directory.
package retention

import (
	"os"
	"time"

	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/log"
	"github.com/shadowheroku/mu/where"
	"github.com/spf13/viper"
)

// Sweep removes downloads older than the configured retention period.
// A zero or negative period keeps everything forever. Pruned files are
// re-fetched on the next request, so losing one costs a download, not data.
func Sweep() {
	ttl := viper.GetDuration(key.DownloadsRetention)
	if ttl <= 0 {
		return
	}

	removed := 0
	err := filesystem.API().Walk(where.Downloads(), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if time.Since(info.ModTime()) > ttl {
			if filesystem.API().Remove(path) == nil {
				removed++
			}
		}
		return nil
	})
	if err != nil {
		log.Warnf("retention sweep: %s", err)
		return
	}

	if removed > 0 {
		log.Infof("retention sweep removed %d stale downloads", removed)
	}
}
