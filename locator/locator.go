// Package locator remembers exported playlist addresses and suggests them for completion.
package locator

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tubelist-cli/tubelist/filesystem"
	"github.com/tubelist-cli/tubelist/where"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank    int    `json:"rank"`
	Locator string `json:"locator"`
}

func store() *gache.Cache[map[string]*record] {
	return gache.New[map[string]*record](&gache.Options{
		Path:       where.Locators(),
		FileSystem: &filesystem.GacheFs{},
	})
}

// Remember records a locator or raises its rank by weight.
func Remember(l string, weight int) error {
	l = sanitize(l)
	if l == "" {
		return nil
	}

	cache := store()
	cached, expired, err := cache.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*record)
	}

	if r, ok := cached[l]; ok {
		r.Rank += weight
	} else {
		cached[l] = &record{Rank: weight, Locator: l}
	}

	return cache.Set(cached)
}

// Suggest returns the best remembered locator matching the partial input.
func Suggest(partial string) mo.Option[string] {
	suggestions := SuggestMany(partial)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered locators fuzzily matching partial, highest rank first.
func SuggestMany(partial string) []string {
	cached, expired, err := store().Get()
	if err != nil || expired || cached == nil {
		return []string{}
	}

	partial = sanitize(partial)
	records := lo.Filter(lo.Values(cached), func(r *record, _ int) bool {
		return fuzzy.MatchFold(partial, r.Locator)
	})

	slices.SortFunc(records, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Locator, b.Locator)
	})

	return lo.Map(records, func(r *record, _ int) string {
		return r.Locator
	})
}

// Resolve returns the first non-blank candidate. When every candidate is blank
// it falls back to the most used remembered locator.
func Resolve(candidates ...string) mo.Option[string] {
	for _, c := range candidates {
		if c = sanitize(c); c != "" {
			return mo.Some(c)
		}
	}
	return Suggest("")
}

// Playlist identifiers are case-sensitive, so only surrounding space is trimmed.
func sanitize(l string) string {
	return strings.TrimSpace(l)
}
