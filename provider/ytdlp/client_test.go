package ytdlp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubelist-cli/tubelist/source"
)

// fakeBinary writes a shell script standing in for yt-dlp.
func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake yt-dlp relies on /bin/sh")
	}
	bin := filepath.Join(t.TempDir(), "yt-dlp")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	return bin
}

func TestFetchPlaylist(t *testing.T) {
	Convey("Given yt-dlp prints a playlist with an unavailable video", t, func() {
		bin := fakeBinary(t, `cat <<'JSON'
{"_type":"playlist","id":"PL1","title":"Mix","entries":[
  {"_type":"url","id":"bpOSxM0rNPM","title":"Arctic Monkeys - Do I Wanna Know?"},
  null,
  {"_type":"url","id":"XFkzRNyygfk"}
]}
JSON
`)
		client := NewClient(bin)

		entries, err := client.FetchPlaylist(context.Background(), "https://www.youtube.com/playlist?list=PL1", source.DefaultFetchOptions())

		Convey("Then every position is kept in order", func() {
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 3)
		})

		Convey("Then resolved entries carry their fields", func() {
			first := entries[0].MustGet()
			So(first.ID.MustGet(), ShouldEqual, "bpOSxM0rNPM")
			So(first.Title.MustGet(), ShouldEqual, "Arctic Monkeys - Do I Wanna Know?")
		})

		Convey("Then the null entry becomes a placeholder", func() {
			So(entries[1].IsAbsent(), ShouldBeTrue)
		})

		Convey("Then a missing title stays absent", func() {
			third := entries[2].MustGet()
			So(third.ID.MustGet(), ShouldEqual, "XFkzRNyygfk")
			So(third.Title.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given yt-dlp prints an empty playlist", t, func() {
		bin := fakeBinary(t, `echo '{"_type":"playlist","id":"PL2","entries":[]}'`)

		entries, err := NewClient(bin).FetchPlaylist(context.Background(), "https://www.youtube.com/playlist?list=PL2", source.DefaultFetchOptions())

		Convey("Then the result is empty without error", func() {
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 0)
		})
	})

	Convey("Given yt-dlp fails outright", t, func() {
		bin := fakeBinary(t, `echo "ERROR: Incomplete YouTube ID" >&2
exit 1
`)

		_, err := NewClient(bin).FetchPlaylist(context.Background(), "not-a-url", source.DefaultFetchOptions())

		Convey("Then a FetchError carrying stderr is returned", func() {
			So(err, ShouldNotBeNil)
			var fetchErr *source.FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.Locator, ShouldEqual, "not-a-url")
			So(fetchErr.Stderr, ShouldContainSubstring, "Incomplete YouTube ID")
		})
	})

	Convey("Given yt-dlp exits non-zero after printing the playlist", t, func() {
		bin := fakeBinary(t, `echo '{"_type":"playlist","entries":[{"id":"a","title":"A"},null]}'
echo "ERROR: Private video" >&2
exit 1
`)

		Convey("With ignore-errors the document is kept", func() {
			entries, err := NewClient(bin).FetchPlaylist(context.Background(), "pl", source.DefaultFetchOptions())
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 2)
		})

		Convey("Without ignore-errors the fetch fails", func() {
			opts := source.DefaultFetchOptions()
			opts.IgnoreErrors = false
			_, err := NewClient(bin).FetchPlaylist(context.Background(), "pl", opts)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given yt-dlp prints garbage", t, func() {
		bin := fakeBinary(t, `echo 'not json'`)

		_, err := NewClient(bin).FetchPlaylist(context.Background(), "pl", source.DefaultFetchOptions())

		Convey("Then the fetch fails", func() {
			var fetchErr *source.FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
		})
	})

	Convey("Given yt-dlp prints nothing", t, func() {
		bin := fakeBinary(t, `exit 0`)

		_, err := NewClient(bin).FetchPlaylist(context.Background(), "pl", source.DefaultFetchOptions())

		Convey("Then the fetch fails", func() {
			So(errors.Is(err, errNoDocument), ShouldBeTrue)
		})
	})

	Convey("Given a single video locator", t, func() {
		bin := fakeBinary(t, `echo '{"_type":"video","id":"dQw4w9WgXcQ","title":"Never Gonna Give You Up"}'`)

		entries, err := NewClient(bin).FetchPlaylist(context.Background(), "https://youtu.be/dQw4w9WgXcQ", source.DefaultFetchOptions())

		Convey("Then no entries are returned", func() {
			So(err, ShouldBeNil)
			So(entries, ShouldNotBeNil)
			So(entries, ShouldHaveLength, 0)
		})
	})

	Convey("Given a playlist with malformed entries", t, func() {
		bin := fakeBinary(t, `cat <<'JSON'
{"_type":"playlist","entries":[
  {"id":"a","title":"A"},
  {"id":"b","title":123},
  "oops",
  [1, 2],
  {"id":42,"title":"Numbered"}
]}
JSON
`)

		entries, err := NewClient(bin).FetchPlaylist(context.Background(), "pl", source.DefaultFetchOptions())

		Convey("Then the fetch still succeeds with every position kept", func() {
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 5)
		})

		Convey("Then a field of the wrong type is treated as absent", func() {
			second := entries[1].MustGet()
			So(second.ID.MustGet(), ShouldEqual, "b")
			So(second.Title.IsAbsent(), ShouldBeTrue)

			fifth := entries[4].MustGet()
			So(fifth.ID.IsAbsent(), ShouldBeTrue)
			So(fifth.Title.MustGet(), ShouldEqual, "Numbered")
		})

		Convey("Then elements that are not objects become placeholders", func() {
			So(entries[0].IsPresent(), ShouldBeTrue)
			So(entries[2].IsAbsent(), ShouldBeTrue)
			So(entries[3].IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given the arguments yt-dlp receives", t, func() {
		argsFile := filepath.Join(t.TempDir(), "args")
		bin := fakeBinary(t, `printf '%s\n' "$@" > '`+argsFile+`'
echo '{"_type":"playlist","entries":[]}'
`)

		_, err := NewClient(bin).FetchPlaylist(context.Background(), "https://www.youtube.com/playlist?list=PL3", source.DefaultFetchOptions())
		So(err, ShouldBeNil)

		data, err := os.ReadFile(argsFile)
		So(err, ShouldBeNil)
		args := strings.Split(strings.TrimSpace(string(data)), "\n")

		Convey("Then the flat, quiet, tolerant mode is requested", func() {
			So(args, ShouldContain, "--dump-single-json")
			So(args, ShouldContain, "--flat-playlist")
			So(args, ShouldContain, "--ignore-errors")
			So(args, ShouldContain, "--quiet")
		})

		Convey("Then the locator comes last", func() {
			So(args[len(args)-1], ShouldEqual, "https://www.youtube.com/playlist?list=PL3")
		})
	})

	Convey("Given a fetch that outlives its timeout", t, func() {
		bin := fakeBinary(t, `exec sleep 5
echo '{"entries":[]}'
`)
		opts := source.DefaultFetchOptions()
		opts.Timeout = 50 * time.Millisecond

		_, err := NewClient(bin).FetchPlaylist(context.Background(), "pl", opts)

		Convey("Then the deadline surfaces as the cause", func() {
			So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
		})
	})

	Convey("Given a canceled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewClient("").FetchPlaylist(ctx, "pl", source.DefaultFetchOptions())

		Convey("Then the fetch fails", func() {
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("parse", t, func() {
		Convey("A document without entries yields an empty slice", func() {
			for _, doc := range []string{`{"_type":"video","id":"x"}`, `{}`, `{"_type":"playlist","entries":null}`} {
				entries, err := parse([]byte(doc))
				So(err, ShouldBeNil)
				So(entries, ShouldNotBeNil)
				So(entries, ShouldHaveLength, 0)
			}
		})

		Convey("Empty or null output is not a document", func() {
			for _, doc := range []string{"", "  \n", "null"} {
				_, err := parse([]byte(doc))
				So(errors.Is(err, errNoDocument), ShouldBeTrue)
			}
		})

		Convey("A document that is not an object fails", func() {
			_, err := parse([]byte(`[1]`))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestOutcome(t *testing.T) {
	doc := []byte(`{"_type":"playlist","entries":[{"id":"a","title":"A"}]}`)

	Convey("Given a run that completed as the deadline passed", t, func() {
		entries, err := outcome("pl", source.DefaultFetchOptions(), nil, context.DeadlineExceeded, doc, "")

		Convey("Then the printed document is kept", func() {
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
		})
	})

	Convey("Given a run that was killed by the deadline", t, func() {
		_, err := outcome("pl", source.DefaultFetchOptions(), errors.New("signal: killed"), context.DeadlineExceeded, doc, "")

		Convey("Then the deadline is the cause", func() {
			So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
		})
	})
}

func TestTail(t *testing.T) {
	Convey("tail", t, func() {
		Convey("Short output is kept whole", func() {
			So(tail("  ERROR: boom \n"), ShouldEqual, "ERROR: boom")
		})

		Convey("Long output is cut on a rune boundary", func() {
			s := strings.Repeat("é", stderrTail)
			got := tail(s)
			So(utf8.ValidString(got), ShouldBeTrue)
			So(len(got), ShouldBeLessThanOrEqualTo, stderrTail)
			So(strings.HasSuffix(s, got), ShouldBeTrue)
		})
	})
}

func TestArgs(t *testing.T) {
	Convey("Args", t, func() {
		Convey("The zero options ask for a strict deep fetch", func() {
			args := Args("pl", source.FetchOptions{})
			So(args, ShouldNotContain, "--flat-playlist")
			So(args, ShouldContain, "--abort-on-error")
			So(args, ShouldContain, "--verbose")
		})

		Convey("A locator starting with a dash cannot be read as a flag", func() {
			args := Args("-x", source.DefaultFetchOptions())
			So(args[len(args)-2], ShouldEqual, "--")
		})
	})
}

func TestName(t *testing.T) {
	Convey("Name and default binary", t, func() {
		c := NewClient("")
		So(c.Name(), ShouldEqual, "yt-dlp")
		So(c.binary(), ShouldEqual, DefaultBinary)
	})
}
