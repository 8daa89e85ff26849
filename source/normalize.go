package source

import (
	"strconv"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tubelist-cli/tubelist/constant"
)

// Normalize maps provider entries to records, preserving order.
//
// Missing entries are dropped before numbering, so record IDs are always "1".."N"
// with N the number of present entries. The result is never nil.
func Normalize(entries []mo.Option[Entry]) []Record {
	records := make([]Record, 0, len(entries))

	var counter int
	for _, opt := range entries {
		entry, ok := opt.Get()
		if !ok {
			continue
		}

		counter++
		records = append(records, Record{
			ID:        strconv.Itoa(counter),
			Label:     entry.Title,
			Type:      constant.SourceKind,
			YoutubeID: entry.ID,
			Thumbnail: ThumbnailURL(entry.ID),
		})
	}

	return records
}

// CountMissing reports how many entries the provider could not resolve.
func CountMissing(entries []mo.Option[Entry]) int {
	return lo.CountBy(entries, func(e mo.Option[Entry]) bool {
		return e.IsAbsent()
	})
}
