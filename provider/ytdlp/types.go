package ytdlp

import "encoding/json"

// document is the single JSON document printed by --dump-single-json.
// Entries are kept raw so that one malformed element cannot fail the whole playlist.
type document struct {
	Type    *string            `json:"_type"`
	Entries *[]json.RawMessage `json:"entries"`
}

// entry is one element of document.Entries. Fields stay raw and are decoded one by one.
type entry struct {
	ID    json.RawMessage `json:"id"`
	Title json.RawMessage `json:"title"`
}
