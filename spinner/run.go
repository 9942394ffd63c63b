package spinner

import (
	"context"
	"errors"

	"github.com/simonhull/clytia/terminal"
)

// Task is the long-running operation a spinner decorates.
type Task func(ctx context.Context) error

// Run shows a spinner with fixed text while task runs, then replaces it
// with "✔ text" or "✗ text" depending on the task's result.
//
// The spinner is always stopped before Run returns, including when task
// panics. Run returns the task's error; a terminal write failure is only
// reported when the task itself succeeded.
//
// Example:
//
//	err := spinner.Run(ctx, term, "Waiting for 2 seconds", func(ctx context.Context) error {
//	    time.Sleep(2 * time.Second)
//	    return nil
//	}, nil)
func Run(ctx context.Context, t *terminal.Terminal, text string, task Task, opts *Options) error {
	s := Start(t, text, opts)
	return decorate(ctx, s, func() string { return text }, task)
}

// RunDynamic is Run with text recomputed on every frame and once more for
// the final line.
func RunDynamic(ctx context.Context, t *terminal.Terminal, textFn func() string, task Task, opts *Options) error {
	s := StartDynamic(t, textFn, opts)
	return decorate(ctx, s, textFn, task)
}

func decorate(ctx context.Context, s *Spinner, final func() string, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			_ = s.Fail(final())
			panic(r)
		}
	}()

	err = task(ctx)
	if err != nil {
		_ = s.Fail(final())
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return terminal.Cancelled(err)
		}
		return err
	}
	return s.Success(final())
}
