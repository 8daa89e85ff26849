package locator

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubelist-cli/tubelist/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestLocator(t *testing.T) {
	Convey("Given remembered locators", t, func() {
		filesystem.SetMemMapFs()

		jazz := "https://www.youtube.com/playlist?list=PLjazz"
		rock := "https://www.youtube.com/playlist?list=PLrock"

		So(Remember(jazz, 1), ShouldBeNil)
		So(Remember(rock, 1), ShouldBeNil)
		So(Remember(rock, 5), ShouldBeNil)

		Convey("Then suggestions are ranked by use", func() {
			s := SuggestMany("youtube")
			So(s, ShouldHaveLength, 2)
			So(s[0], ShouldEqual, rock)
			So(s[1], ShouldEqual, jazz)
		})

		Convey("Then matching is fuzzy and case-insensitive", func() {
			So(SuggestMany("pljz"), ShouldResemble, []string{jazz})
		})

		Convey("Then Suggest picks the best match", func() {
			So(Suggest("list").MustGet(), ShouldEqual, rock)
			So(Suggest("vimeo").IsAbsent(), ShouldBeTrue)
		})

		Convey("Then Resolve prefers an explicit locator", func() {
			So(Resolve(" PLexplicit ", jazz).MustGet(), ShouldEqual, "PLexplicit")
			So(Resolve("", jazz).MustGet(), ShouldEqual, jazz)
		})

		Convey("Then Resolve falls back to the most used locator", func() {
			So(Resolve("", "  ").MustGet(), ShouldEqual, rock)
		})

		Convey("Then blank locators are ignored", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(SuggestMany(""), ShouldHaveLength, 2)
		})

		Convey("Then surrounding space is trimmed but case is kept", func() {
			So(sanitize("  PLAbC "), ShouldEqual, "PLAbC")
		})
	})

	Convey("Given nothing remembered", t, func() {
		filesystem.SetMemMapFs()

		Convey("Then Resolve of blank candidates is absent", func() {
			So(Resolve("", " ").IsAbsent(), ShouldBeTrue)
		})
	})
}
