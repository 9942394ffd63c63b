package spinner

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/simonhull/clytia/terminal"
)

const minBarWidth = 10

// Bar is a single-line progress bar redrawn on a ticker.
type Bar struct {
	*animator

	term       *terminal.Terminal
	label      string
	progressFn func() int
	model      progress.Model
	logger     *log.Logger
	last       atomic.Int64
}

// StartProgress shows label followed by a bar filled to progressFn()
// percent. progressFn is polled on every frame from the bar's goroutine;
// values are clamped to [0, 100].
func StartProgress(t *terminal.Terminal, label string, progressFn func() int, opts *Options) *Bar {
	o := opts.withDefaults()

	width := t.Width() - ansi.StringWidth(label) - 1
	if width < minBarWidth {
		width = minBarWidth
	}

	b := &Bar{
		term:       t,
		label:      label,
		progressFn: progressFn,
		model: progress.New(
			progress.WithSolidFill(t.Theme().Prompt),
			progress.WithColorProfile(t.Profile()),
			progress.WithWidth(width),
		),
		logger: o.Logger,
	}
	b.animator = newAnimator(t, o.Interval, b.frame, func() {})
	b.logger.Debug("progress started", "label", label, "width", width)
	b.start()
	return b
}

// Percent returns the last value read from progressFn, after clamping.
func (b *Bar) Percent() int {
	return int(b.last.Load())
}

// Writer returns a writer for host output while the bar runs.
func (b *Bar) Writer() io.Writer {
	return b.animator
}

// Stop removes the bar.
func (b *Bar) Stop() error {
	return b.finish(func() string { return "" })
}

// Success stops the bar and leaves "✔ label".
func (b *Bar) Success() error {
	return b.finish(func() string {
		return b.term.Styles().Success.Render("✔ "+b.label) + "\n"
	})
}

// Fail stops the bar and leaves "✗ label" with the bar frozen where it stopped.
func (b *Bar) Fail() error {
	return b.finish(func() string {
		pct := float64(b.Percent()) / 100
		return b.term.Styles().Failure.Render("✗ "+b.label) + " " + b.model.ViewAs(pct) + "\n"
	})
}

func (b *Bar) frame() string {
	p := b.progressFn()
	p = max(0, min(p, 100))
	b.last.Store(int64(p))
	return b.label + " " + b.model.ViewAs(float64(p)/100)
}

// Progress runs task while showing a progress bar, like Run does with a
// spinner. The bar is always stopped before Progress returns.
//
// Example:
//
//	var done atomic.Int64
//	err := spinner.Progress(ctx, term, "Copying", func() int { return int(done.Load()) }, copyFiles, nil)
func Progress(ctx context.Context, t *terminal.Terminal, label string, progressFn func() int, task Task, opts *Options) (err error) {
	b := StartProgress(t, label, progressFn, opts)
	defer func() {
		if r := recover(); r != nil {
			_ = b.Fail()
			panic(r)
		}
	}()

	err = task(ctx)
	if err != nil {
		_ = b.Fail()
		b.logger.Debug("progress failed", "label", label, "percent", b.Percent(), "err", err)
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return terminal.Cancelled(err)
		}
		return err
	}
	return b.Success()
}
