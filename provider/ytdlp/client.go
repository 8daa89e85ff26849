// Package ytdlp implements a metadata provider backed by the yt-dlp executable.
package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tubelist-cli/tubelist/log"
	"github.com/tubelist-cli/tubelist/source"
)

// DefaultBinary is looked up on PATH when no explicit binary is configured.
const DefaultBinary = "yt-dlp"

// waitDelay bounds how long a killed process may keep its output pipes open.
const waitDelay = 2 * time.Second

// stderrTail caps how much provider diagnostics end up in an error message.
const stderrTail = 512

var errNoDocument = errors.New("provider printed no metadata")

// CommandClient implements source.Client by running yt-dlp.
type CommandClient struct {
	// BinaryPath is the yt-dlp executable. Defaults to DefaultBinary.
	BinaryPath string
}

// NewClient creates a CommandClient for binary, falling back to DefaultBinary when empty.
func NewClient(binary string) *CommandClient {
	return &CommandClient{BinaryPath: binary}
}

func (c *CommandClient) Name() string {
	return "yt-dlp"
}

func (c *CommandClient) binary() string {
	if c.BinaryPath == "" {
		return DefaultBinary
	}
	return c.BinaryPath
}

// FetchPlaylist runs yt-dlp once and decodes its single JSON document.
func (c *CommandClient) FetchPlaylist(ctx context.Context, locator string, opts source.FetchOptions) ([]mo.Option[source.Entry], error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	args := Args(locator, opts)
	log.WithFields(log.Fields{"binary": c.binary(), "args": strings.Join(args, " ")}).Debug("running provider")

	cmd := exec.CommandContext(ctx, c.binary(), args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	return outcome(locator, opts, runErr, ctx.Err(), stdout.Bytes(), stderr.String())
}

// outcome decides what a finished run yields. The context error counts only when the run failed.
func outcome(locator string, opts source.FetchOptions, runErr, ctxErr error, stdout []byte, stderr string) ([]mo.Option[source.Entry], error) {
	if runErr != nil && ctxErr != nil {
		return nil, &source.FetchError{Locator: locator, Err: ctxErr, Stderr: tail(stderr)}
	}

	entries, parseErr := parse(stdout)
	switch {
	case runErr == nil && parseErr == nil:
		return entries, nil
	case runErr != nil && parseErr == nil && opts.IgnoreErrors:
		// yt-dlp exits non-zero after skipping unavailable videos but still prints the playlist.
		log.Warnf("yt-dlp exited with %v, keeping %d entries", runErr, len(entries))
		return entries, nil
	case runErr != nil:
		return nil, &source.FetchError{Locator: locator, Err: runErr, Stderr: tail(stderr)}
	default:
		return nil, &source.FetchError{Locator: locator, Err: parseErr, Stderr: tail(stderr)}
	}
}

// Args builds the yt-dlp argument list for opts. The locator always comes last, after "--".
func Args(locator string, opts source.FetchOptions) []string {
	args := []string{"--dump-single-json", "--no-progress"}
	if opts.ExtractFlat {
		args = append(args, "--flat-playlist")
	}
	if opts.IgnoreErrors {
		args = append(args, "--ignore-errors")
	} else {
		args = append(args, "--abort-on-error")
	}
	if opts.Quiet {
		args = append(args, "--quiet", "--no-warnings")
	} else {
		args = append(args, "--verbose")
	}
	return append(args, "--", locator)
}

// parse decodes a --dump-single-json document.
// Null or malformed elements of entries become mo.None, and a field of the wrong type is treated as absent.
// A document without entries, such as a single video, yields no entries.
func parse(data []byte) ([]mo.Option[source.Entry], error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errNoDocument
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}

	if doc.Entries == nil {
		if doc.Type != nil {
			log.Debugf("yt-dlp returned a %s without entries", *doc.Type)
		}
		return []mo.Option[source.Entry]{}, nil
	}

	return lo.Map(*doc.Entries, func(raw json.RawMessage, i int) mo.Option[source.Entry] {
		return parseEntry(raw, i)
	}), nil
}

func parseEntry(raw json.RawMessage, index int) mo.Option[source.Entry] {
	if isNull(raw) {
		return source.Missing()
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		log.Debugf("skipping entry %d: %v", index, err)
		return source.Missing()
	}

	return source.Present(source.NewEntry(
		stringField(e.ID, "id", index),
		stringField(e.Title, "title", index),
	))
}

// stringField decodes a string field, or nil when it is absent, null or not a string.
func stringField(raw json.RawMessage, name string, index int) *string {
	if isNull(raw) {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		log.Debugf("entry %d: ignoring %s: %v", index, name, err)
		return nil
	}
	return &s
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// tail keeps the last stderrTail bytes of s, starting on a rune boundary.
func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= stderrTail {
		return s
	}

	cut := len(s) - stderrTail
	for cut < len(s) && !utf8.RuneStart(s[cut]) {
		cut++
	}
	return s[cut:]
}
