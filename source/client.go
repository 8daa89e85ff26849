package source

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"
)

// Client is a metadata provider able to list a playlist.
type Client interface {
	// Name identifies the provider in logs and messages.
	Name() string

	// FetchPlaylist returns the playlist entries in declared order.
	// Entries the provider could not resolve are mo.None placeholders, not errors.
	// A *FetchError is returned only when the playlist as a whole is unreachable.
	FetchPlaylist(ctx context.Context, locator string, opts FetchOptions) ([]mo.Option[Entry], error)
}

// FetchOptions shape a single fetch. The zero value asks for a strict, verbose, deep fetch.
type FetchOptions struct {
	// IgnoreErrors turns per-entry failures into placeholders.
	IgnoreErrors bool
	// Quiet suppresses the provider's own diagnostics.
	Quiet bool
	// ExtractFlat requests id and title only, without resolving each video page.
	ExtractFlat bool
	// Timeout bounds the whole fetch. Zero means no bound.
	Timeout time.Duration
}

// DefaultFetchOptions returns the options used for playlist exports.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		IgnoreErrors: true,
		Quiet:        true,
		ExtractFlat:  true,
	}
}

// FetchError reports that a playlist could not be retrieved at all.
type FetchError struct {
	Locator string
	// Stderr holds the tail of the provider's diagnostic output, if any.
	Stderr string
	Err    error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch playlist %s: %v", e.Locator, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
