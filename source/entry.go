// Package source defines the playlist domain model: entries as the provider reports them
// and the fixed-shape records derived from them.
package source

import "github.com/samber/mo"

// Entry is one playlist item as reported by a metadata provider.
// Every attribute is optional: flat extraction routinely omits fields for private or removed videos.
type Entry struct {
	// ID is the provider's video identifier.
	ID mo.Option[string]
	// Title is the display title.
	Title mo.Option[string]
}

// NewEntry builds an entry from possibly-nil provider fields.
func NewEntry(id, title *string) Entry {
	return Entry{
		ID:    mo.PointerToOption(id),
		Title: mo.PointerToOption(title),
	}
}

// Present wraps an entry that the provider resolved.
func Present(e Entry) mo.Option[Entry] {
	return mo.Some(e)
}

// Missing is the placeholder for an entry the provider could not resolve.
func Missing() mo.Option[Entry] {
	return mo.None[Entry]()
}
