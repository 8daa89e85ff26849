// Package history keeps a log of completed playlist exports.
package history

import (
	"time"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/tubelist-cli/tubelist/filesystem"
	"github.com/tubelist-cli/tubelist/where"
)

// MaxEntries bounds the log; the oldest exports are dropped first.
const MaxEntries = 100

// Export describes one successful run.
type Export struct {
	Provider    string    `json:"provider"`
	Locator     string    `json:"locator"`
	Destination string    `json:"destination"`
	Written     int       `json:"written"`
	Skipped     int       `json:"skipped"`
	At          time.Time `json:"at"`
}

func store() *gache.Cache[[]*Export] {
	return gache.New[[]*Export](&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	})
}

// Get returns the logged exports, oldest first.
func Get() ([]*Export, error) {
	saved, expired, err := store().Get()
	if err != nil {
		return nil, err
	}
	if expired || saved == nil {
		return []*Export{}, nil
	}
	return saved, nil
}

// Save appends an export to the log.
func Save(export *Export) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved = append(saved, export)
	if len(saved) > MaxEntries {
		saved = lo.Subset(saved, len(saved)-MaxEntries, MaxEntries)
	}

	return store().Set(saved)
}

// Last returns the most recent export of locator.
func Last(locator string) (*Export, bool, error) {
	saved, err := Get()
	if err != nil {
		return nil, false, err
	}

	found, _, ok := lo.FindLastIndexOf(saved, func(e *Export) bool {
		return e.Locator == locator
	})
	return found, ok, nil
}
