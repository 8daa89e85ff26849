// Package export turns a fetched playlist into the JSON document consumed by the player frontend.
package export

import (
	"bytes"
	"encoding/json"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tubelist-cli/tubelist/source"
)

// indent is the per-level indentation of the written document.
const indent = "    "

// Video is the on-disk shape of one record. Field order is the key order of the document.
type Video struct {
	ID        string  `json:"id" jsonschema:"description=1-based position in the document,pattern=^[1-9][0-9]*$"`
	Label     *string `json:"label" jsonschema:"oneof_type=string;null,description=Video title as reported by the provider"`
	Type      string  `json:"type" jsonschema:"enum=youtube"`
	YoutubeID *string `json:"youtubeId" jsonschema:"oneof_type=string;null,description=Provider video identifier"`
	Thumbnail string  `json:"thumbnail" jsonschema:"description=Thumbnail image address derived from youtubeId"`
}

func newVideo(r source.Record) *Video {
	return &Video{
		ID:        r.ID,
		Label:     pointer(r.Label),
		Type:      r.Type,
		YoutubeID: pointer(r.YoutubeID),
		Thumbnail: r.Thumbnail,
	}
}

func pointer(o mo.Option[string]) *string {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

// Encode renders records as an indented JSON array.
// Non-ASCII text and HTML-sensitive characters are written literally.
func Encode(records []source.Record) ([]byte, error) {
	videos := lo.Map(records, func(r source.Record, _ int) *Video {
		return newVideo(r)
	})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(videos); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
