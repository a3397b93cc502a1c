// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"herd/core/evolve"
	"herd/core/quantity"
	"herd/internal/cmdutil"
	"herd/internal/pipeline"
	"herd/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, configuration or physical preconditions
	ExitRuntime  = 3 // numerical failure or write error
	ExitCanceled = 130
)

type Options struct {
	Threads int
	Quiet   bool
}

type VisitorFunc[T any] func(pipeline.Result) (out []T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// ExitCode maps an evolution error to an exit code.
func ExitCode(err error) int {
	var pe *quantity.PreconditionError
	switch {
	case err == nil, errors.Is(err, evolve.ErrStepLimit):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.As(err, &pe):
		return ExitUsage
	}
	return ExitRuntime
}

// Run evolves stars, visits each finished trajectory and streams the outputs
// through the writer made by wf. Per-star failures are reported on stderr;
// the exit code is the worst seen.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	stars []pipeline.Star,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	if thr > len(stars) && len(stars) > 0 {
		thr = len(stars)
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// visit runs on the pipeline's collector goroutine only.
	worst := ExitOK
	_, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr},
		stars,
		func(r pipeline.Result) ([]T, error) {
			switch code := ExitCode(r.Err); {
			case r.Err == nil:
			case code == ExitOK:
				cmdutil.Warnf(stderr, o.Quiet, "star %q: %v after %d points", r.Star.ID, r.Err, len(r.Points))
			default:
				cmdutil.Errorf(stderr, "star %q: %v", r.Star.ID, r.Err)
				worst = max(worst, code)
			}
			return visit(r)
		},
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitRuntime
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		fmt.Fprintln(stderr, perr)
		return ExitRuntime
	}
	return worst
}
