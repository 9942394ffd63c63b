package spinner

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	bspinner "github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/log"

	"github.com/simonhull/clytia/terminal"
)

// Braille is the default animation: a dot circling a braille cell.
var Braille = bspinner.Spinner{
	Frames: []string{"⠹", "⢸", "⣰", "⣤", "⣆", "⡇", "⠏", "⠛"},
	FPS:    50 * time.Millisecond,
}

var styles = map[string]bspinner.Spinner{
	"braille":   Braille,
	"dot":       bspinner.Dot,
	"line":      bspinner.Line,
	"minidot":   bspinner.MiniDot,
	"jump":      bspinner.Jump,
	"pulse":     bspinner.Pulse,
	"points":    bspinner.Points,
	"meter":     bspinner.Meter,
	"ellipsis":  bspinner.Ellipsis,
	"globe":     bspinner.Globe,
	"moon":      bspinner.Moon,
	"hamburger": bspinner.Hamburger,
}

// Style looks up a named animation ("braille", "dot", "line", ...).
func Style(name string) (bspinner.Spinner, error) {
	if name == "" {
		return Braille, nil
	}
	s, ok := styles[name]
	if !ok {
		return bspinner.Spinner{}, fmt.Errorf("unknown spinner style %q (available: %v)", name, StyleNames())
	}
	return s, nil
}

// StyleNames lists the names Style accepts.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options configures a spinner or progress bar
type Options struct {
	Style    bspinner.Spinner // Frames to cycle through; zero value means Braille
	Interval time.Duration    // Time between frames; defaults to Style.FPS
	Logger   *log.Logger      // Debug events; discarded when nil
}

func (o *Options) withDefaults() Options {
	var opts Options
	if o != nil {
		opts = *o
	}
	if len(opts.Style.Frames) == 0 {
		opts.Style = Braille
	}
	if opts.Interval <= 0 {
		opts.Interval = opts.Style.FPS
	}
	if opts.Interval <= 0 {
		opts.Interval = Braille.FPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return opts
}

// Spinner animates a line on the terminal until stopped.
type Spinner struct {
	*animator

	term   *terminal.Terminal
	frames []string
	logger *log.Logger

	mu     sync.Mutex
	index  int
	text   string
	textFn func() string
}

// Start shows text next to an animation and returns immediately.
// The animation runs on its own goroutine until Stop, Success or Fail.
//
// Example:
//
//	s := spinner.Start(term, "Downloading", nil)
//	err := download()
//	if err != nil {
//	    s.Fail("Download failed")
//	} else {
//	    s.Success("Downloaded")
//	}
func Start(t *terminal.Terminal, text string, opts *Options) *Spinner {
	s := newSpinner(t, opts)
	s.text = text
	s.begin()
	return s
}

// StartDynamic is Start with text that is re-evaluated on every frame.
// textFn runs on the spinner goroutine and must be safe for concurrent use.
func StartDynamic(t *terminal.Terminal, textFn func() string, opts *Options) *Spinner {
	s := newSpinner(t, opts)
	s.textFn = textFn
	s.begin()
	return s
}

func newSpinner(t *terminal.Terminal, opts *Options) *Spinner {
	o := opts.withDefaults()
	s := &Spinner{
		term:   t,
		frames: o.Style.Frames,
		logger: o.Logger,
	}
	s.animator = newAnimator(t, o.Interval, s.frame, s.advance)
	return s
}

func (s *Spinner) begin() {
	s.logger.Debug("spinner started", "text", s.Text(), "interval", s.interval)
	s.start()
}

// Text returns what the spinner is currently showing.
func (s *Spinner) Text() string {
	s.mu.Lock()
	fn, text := s.textFn, s.text
	s.mu.Unlock()
	if fn != nil {
		return fn()
	}
	return text
}

// SetText replaces the text shown next to the animation.
func (s *Spinner) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.textFn = nil
}

// SetTextFunc makes the text dynamic; see StartDynamic.
func (s *Spinner) SetTextFunc(fn func() string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textFn = fn
}

// Writer returns a writer for host output while the spinner runs. Each
// complete line is printed above the spinner instead of over it. It writes
// through the terminal, so writing to the terminal directly is equivalent.
func (s *Spinner) Writer() io.Writer {
	return s.animator
}

// Stop removes the spinner line. Nothing is drawn after Stop returns.
// Stop, Success and Fail are safe to call more than once; only the first
// call has an effect.
func (s *Spinner) Stop() error {
	return s.end(func() string { return "" })
}

// Success stops the spinner and leaves "✔ msg" in its place.
func (s *Spinner) Success(msg string) error {
	return s.end(func() string {
		return s.term.Styles().Success.Render("✔ "+msg) + "\n"
	})
}

// Fail stops the spinner and leaves "✗ msg" in its place.
func (s *Spinner) Fail(msg string) error {
	return s.end(func() string {
		return s.term.Styles().Failure.Render("✗ "+msg) + "\n"
	})
}

func (s *Spinner) end(final func() string) error {
	err := s.finish(final)
	s.logger.Debug("spinner stopped", "frames", s.renders.Load())
	return err
}

func (s *Spinner) frame() string {
	s.mu.Lock()
	glyph := s.frames[s.index]
	s.mu.Unlock()
	return s.term.Styles().Prompt.Render(glyph) + " " + s.Text()
}

func (s *Spinner) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = (s.index + 1) % len(s.frames)
}
