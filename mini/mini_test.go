package mini

import (
	"testing"

	"github.com/shadowheroku/mu/youtube"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStateTransitions(t *testing.T) {
	Convey("State transitions", t, func() {
		m := newMini(&Options{Video: true, Query: "some song"})
		m.state = searchState

		Convey("Should record history on forward transitions", func() {
			m.newState(trackSelectState)
			m.newState(playState)
			So(m.state, ShouldEqual, playState)

			m.previousState()
			So(m.state, ShouldEqual, trackSelectState)
			m.previousState()
			So(m.state, ShouldEqual, searchState)
		})

		Convey("Should ignore transitions to the current state", func() {
			m.newState(searchState)
			So(m.statesHistory.Len(), ShouldEqual, 0)
		})

		Convey("Should stay put when history is empty", func() {
			m.previousState()
			So(m.state, ShouldEqual, searchState)
		})

		Convey("Should carry the preseeded query", func() {
			So(m.pendingQuery, ShouldEqual, "some song")
		})

		Convey("Should map the video switch to the media kind", func() {
			So(m.mediaKind(), ShouldEqual, youtube.MediaVideo)
			So(newMini(&Options{}).mediaKind(), ShouldEqual, youtube.MediaAudio)
		})
	})
}

func TestBinds(t *testing.T) {
	Convey("Binds", t, func() {
		Convey("Should compare by identity", func() {
			So(quit.eq(quit), ShouldBeTrue)
			So(quit.eq(next), ShouldBeFalse)
			So(quit.eq(nil), ShouldBeFalse)
			So(quit.eq(&bind{"quit"}), ShouldBeFalse)
		})

		Convey("Should render their names", func() {
			So(search.String(), ShouldEqual, "new search")
			So(pause.String(), ShouldEqual, "pause")
		})
	})
}
