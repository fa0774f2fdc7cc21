package icon

import (
	"testing"

	"github.com/shadowheroku/mu/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Icon registry", t, func() {
		all := []Icon{Progress, Success, Fail, Audio, Video, Link, Cookie}

		Convey("Every icon renders under every variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)

					for _, target := range all {
						So(Get(target), ShouldNotBeEmpty)
					}
				})
			}
		})

		Convey("An unknown variant renders empty", func() {
			viper.Set(key.IconsVariant, "unknown")
			So(Get(Success), ShouldBeEmpty)
		})
	})
}
