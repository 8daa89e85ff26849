package style

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWrap(t *testing.T) {
	Convey("Wrap", t, func() {
		Convey("Short text is left alone", func() {
			So(Wrap("Write logs"), ShouldEqual, "Write logs")
		})

		Convey("Long text is broken into lines no wider than the fallback width", func() {
			long := strings.Repeat("word ", 40)
			for _, line := range strings.Split(Wrap(long), "\n") {
				So(len(strings.TrimSpace(line)), ShouldBeLessThanOrEqualTo, defaultWidth)
			}
		})
	})
}

func TestWidth(t *testing.T) {
	Convey("Width is always positive", t, func() {
		So(Width(), ShouldBeGreaterThan, 0)
	})
}
