package source

import (
	"fmt"

	"github.com/samber/mo"
	"github.com/tubelist-cli/tubelist/constant"
)

// Record is the normalized, write-once description of one exported video.
type Record struct {
	// ID is the 1-based position among exported records, in decimal.
	ID string
	// Label is the entry title, unchanged. None when the provider gave no title.
	Label mo.Option[string]
	// Type is always constant.SourceKind.
	Type string
	// YoutubeID is the provider identifier, unchanged.
	YoutubeID mo.Option[string]
	// Thumbnail is derived from YoutubeID by ThumbnailURL.
	Thumbnail string
}

// ThumbnailURL returns the thumbnail address of a video.
// The identifier is substituted verbatim without escaping; an absent one yields constant.MissingIDPlaceholder.
func ThumbnailURL(id mo.Option[string]) string {
	return fmt.Sprintf(constant.ThumbnailTemplate, id.OrElse(constant.MissingIDPlaceholder))
}
