package jsonlutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type point struct {
	N int `json:"n"`
}

func TestStart_OneLinePerValue(t *testing.T) {
	var b bytes.Buffer
	in, done := Start[int](&b, 2, func(n int) any { return point{N: n} }, func(error) bool { return false })
	for i := 0; i < 3; i++ {
		in <- i
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("done: %v", err)
	}
	want := "{\"n\":0}\n{\"n\":1}\n{\"n\":2}\n"
	if b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestStart_DrainsAfterError(t *testing.T) {
	// A tiny channel buffer: senders would block if the goroutine stopped reading.
	in, done := Start[string](failWriter{}, 1, func(s string) any { return strings.Repeat(s, 70000) }, func(error) bool { return false })
	for i := 0; i < 10; i++ {
		in <- "x"
	}
	close(in)
	if err := <-done; err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("want disk full error, got %v", err)
	}
}

func TestStart_BrokenPipeSuppressed(t *testing.T) {
	broken := errors.New("broken")
	w := writerFunc(func([]byte) (int, error) { return 0, broken })
	in, done := Start[int](w, 1, func(n int) any { return n }, func(err error) bool { return errors.Is(err, broken) })
	in <- 1
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("broken pipe must be suppressed, got %v", err)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
