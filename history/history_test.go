package history

import (
	"testing"

	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/youtube"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a track", t, func() {
		track := youtube.Track{
			Title:    "Never Gonna Give You Up",
			Link:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			VideoID:  "dQw4w9WgXcQ",
			Duration: "3:33",
			Seconds:  213,
		}

		Convey("When saving a playback", func() {
			err := Save(track)
			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the track should be recorded", func() {
					tracks, err := Get()
					So(err, ShouldBeNil)
					So(len(tracks), ShouldBeGreaterThan, 0)

					saved := tracks[track.VideoID]
					So(saved, ShouldNotBeNil)
					So(saved.Title, ShouldEqual, track.Title)
					So(saved.Plays, ShouldBeGreaterThanOrEqualTo, 1)
					So(saved.LastPlayedAt.IsZero(), ShouldBeFalse)
				})

				Convey("And a second playback should accumulate", func() {
					before, err := Get()
					So(err, ShouldBeNil)
					plays := before[track.VideoID].Plays

					So(Save(track), ShouldBeNil)

					after, err := Get()
					So(err, ShouldBeNil)
					So(after[track.VideoID].Plays, ShouldEqual, plays+1)
				})

				Convey("And removing should forget it", func() {
					tracks, err := Get()
					So(err, ShouldBeNil)

					So(Remove(tracks[track.VideoID]), ShouldBeNil)

					tracks, err = Get()
					So(err, ShouldBeNil)
					So(tracks[track.VideoID], ShouldBeNil)
				})
			})
		})
	})
}
