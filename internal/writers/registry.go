// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"slices"

	"herd/internal/output"
	"herd/internal/pretty"
)

// Options shared by all writers.
type Options struct {
	Header bool           // text: emit the TSV header row
	Pretty pretty.Options // pretty: rendering options
}

// StartFunc starts a writer goroutine. Values sent on the returned channel are
// written to out; the error channel yields once after the input is closed.
type StartFunc[T any] func(out io.Writer, opt Options, bufSize int) (chan<- T, <-chan error)

// Writer registries (format → start function). Register in init() blocks.
var (
	TrackWriters   = map[string]StartFunc[output.Row]{}
	SummaryWriters = map[string]StartFunc[output.Summary]{}
)

// Register helpers (idempotent last-wins).
func RegisterTrack(format string, fn StartFunc[output.Row])       { TrackWriters[format] = fn }
func RegisterSummary(format string, fn StartFunc[output.Summary]) { SummaryWriters[format] = fn }

// Formats lists the registered formats in sorted order.
func Formats[T any](reg map[string]StartFunc[T]) []string {
	out := make([]string, 0, len(reg))
	for f := range reg {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// StartTrackWriter dispatches to the track writer registered for format.
func StartTrackWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- output.Row, <-chan error) {
	fn, ok := TrackWriters[format]
	if !ok {
		return failed[output.Row](fmt.Errorf("unknown track format %q (no writer registered)", format))
	}
	return fn(out, opt, bufSize)
}

// StartSummaryWriter dispatches to the summary writer registered for format.
func StartSummaryWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- output.Summary, <-chan error) {
	fn, ok := SummaryWriters[format]
	if !ok {
		return failed[output.Summary](fmt.Errorf("unknown summary format %q (no writer registered)", format))
	}
	return fn(out, opt, bufSize)
}

// failed drains its input and reports err.
func failed[T any](err error) (chan<- T, <-chan error) {
	in := make(chan T)
	done := make(chan error, 1)
	go func() {
		for range in {
		}
		done <- err
	}()
	return in, done
}

// buffered collects every value before calling write once.
func buffered[T any](out io.Writer, bufSize int, write func(io.Writer, []T) error) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)
	go func() {
		var buf []T
		for v := range in {
			buf = append(buf, v)
		}
		done <- write(out, buf)
	}()
	return in, done
}

// streaming writes one line per value.
func streaming[T any](out io.Writer, bufSize int, header string, format func(T) string) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)
	go func() {
		done <- output.StreamText(out, in, header, format)
	}()
	return in, done
}
