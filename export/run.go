package export

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/tubelist-cli/tubelist/history"
	"github.com/tubelist-cli/tubelist/key"
	"github.com/tubelist-cli/tubelist/locator"
	"github.com/tubelist-cli/tubelist/log"
	"github.com/tubelist-cli/tubelist/source"
)

// Options configure a single export.
type Options struct {
	Client      source.Client
	Locator     string
	Destination string
	Fetch       source.FetchOptions
	// DryRun writes the document to Out instead of Destination and records nothing.
	DryRun bool
	Out    io.Writer
}

// Summary describes a finished export.
type Summary struct {
	Provider    string    `json:"provider"`
	Locator     string    `json:"locator"`
	Destination string    `json:"destination,omitempty"`
	Fetched     int       `json:"fetched"`
	Skipped     int       `json:"skipped"`
	Written     int       `json:"written"`
	At          time.Time `json:"at"`
}

// Run fetches the playlist, normalizes it and writes the document.
// Nothing is written when the fetch fails.
func Run(ctx context.Context, options *Options) (*Summary, error) {
	if options.Client == nil {
		return nil, errors.New("no metadata provider configured")
	}
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	logger := log.WithFields(log.Fields{
		"provider": options.Client.Name(),
		"locator":  options.Locator,
	})

	logger.Info("fetching playlist")
	entries, err := options.Client.FetchPlaylist(ctx, options.Locator, options.Fetch)
	if err != nil {
		logger.WithError(err).Error("fetch failed")
		return nil, err
	}

	records := source.Normalize(entries)
	summary := &Summary{
		Provider: options.Client.Name(),
		Locator:  options.Locator,
		Fetched:  len(entries),
		Skipped:  source.CountMissing(entries),
		Written:  len(records),
		At:       time.Now(),
	}
	logger.WithFields(log.Fields{"fetched": summary.Fetched, "skipped": summary.Skipped}).Debug("normalized entries")

	if options.DryRun {
		data, err := Encode(records)
		if err != nil {
			return nil, err
		}
		if _, err := out.Write(data); err != nil {
			return nil, err
		}
		return summary, nil
	}

	if err := Write(records, options.Destination); err != nil {
		logger.WithError(err).Error("write failed")
		return nil, err
	}
	summary.Destination = options.Destination
	logger.WithField("destination", options.Destination).Infof("wrote %d records", summary.Written)

	remember(summary)
	return summary, nil
}

// remember records a finished export. Failures are logged and never fail the run.
func remember(summary *Summary) {
	if viper.GetBool(key.HistorySave) {
		err := history.Save(&history.Export{
			Provider:    summary.Provider,
			Locator:     summary.Locator,
			Destination: summary.Destination,
			Written:     summary.Written,
			Skipped:     summary.Skipped,
			At:          summary.At,
		})
		if err != nil {
			log.Warnf("failed to save history: %v", err)
		}
	}

	if viper.GetBool(key.HistoryRememberLocators) {
		if err := locator.Remember(summary.Locator, 1); err != nil {
			log.Warnf("failed to remember locator: %v", err)
		}
	}
}
