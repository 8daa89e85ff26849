package export

import (
	"encoding/json"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubelist-cli/tubelist/source"
)

func TestEncode(t *testing.T) {
	Convey("Given records with non-ASCII and HTML-sensitive titles", t, func() {
		records := source.Normalize([]mo.Option[source.Entry]{
			source.Present(source.Entry{ID: mo.Some("x1"), Title: mo.Some("Café <en directo> & más")}),
			source.Missing(),
			source.Present(source.Entry{ID: mo.Some("abc")}),
		})

		data, err := Encode(records)
		So(err, ShouldBeNil)

		Convey("Then the document is indented with four spaces in fixed key order", func() {
			So(string(data), ShouldEqual, `[
    {
        "id": "1",
        "label": "Café <en directo> & más",
        "type": "youtube",
        "youtubeId": "x1",
        "thumbnail": "https://img.youtube.com/vi/x1/0.jpg"
    },
    {
        "id": "2",
        "label": null,
        "type": "youtube",
        "youtubeId": "abc",
        "thumbnail": "https://img.youtube.com/vi/abc/0.jpg"
    }
]
`)
		})

		Convey("Then it decodes back into the same videos", func() {
			var videos []Video
			So(json.Unmarshal(data, &videos), ShouldBeNil)
			So(videos, ShouldHaveLength, 2)
			So(videos[1].Label, ShouldBeNil)
			So(*videos[1].YoutubeID, ShouldEqual, "abc")
		})
	})

	Convey("Given a record without an identifier", t, func() {
		data, err := Encode(source.Normalize([]mo.Option[source.Entry]{
			source.Present(source.Entry{Title: mo.Some("Untitled")}),
		}))

		Convey("Then youtubeId is null and the thumbnail carries the placeholder", func() {
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"youtubeId": null`)
			So(string(data), ShouldContainSubstring, `"thumbnail": "https://img.youtube.com/vi/None/0.jpg"`)
		})
	})

	Convey("Given no records", t, func() {
		Convey("Then an empty array is produced", func() {
			data, err := Encode(nil)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "[]\n")
		})
	})
}
