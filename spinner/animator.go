package spinner

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/simonhull/clytia/terminal"
)

// animator redraws the terminal's status line on a ticker until finished.
//
// The terminal keeps host output above the status line, so anything the
// program, its logger or a subprocess writes while the animation runs
// lands on its own line. finish joins the goroutine before clearing the
// status, which is what makes "no frame after finish" hold.
type animator struct {
	term     *terminal.Terminal
	interval time.Duration
	frame    func() string // Current frame, without the line reset
	advance  func()        // Step to the next frame

	mu  sync.Mutex
	err error

	renders atomic.Int64
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newAnimator(t *terminal.Terminal, interval time.Duration, frame func() string, advance func()) *animator {
	return &animator{
		term:     t,
		interval: interval,
		frame:    frame,
		advance:  advance,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (a *animator) start() {
	if hide := a.term.HideCursor(); hide != "" {
		a.record(a.term.Print(hide))
	}
	go a.loop()
}

func (a *animator) loop() {
	defer close(a.done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.render()
	for {
		select {
		case <-a.stop:
			return
		case <-ticker.C:
			a.advance()
			a.render()
		}
	}
}

func (a *animator) render() {
	// Build the frame outside the terminal lock: it may call host code.
	a.record(a.term.ShowStatus(a.frame()))
	a.renders.Add(1)
}

// Write prints complete lines above the animation. Partial lines are held
// until their newline arrives or the animation finishes.
func (a *animator) Write(p []byte) (int, error) {
	n, err := a.term.Write(p)
	if err != nil {
		return n, &terminal.IOError{Op: "write", Err: err}
	}
	return n, nil
}

// finish stops the ticker, waits for the goroutine to exit and replaces
// the animation with final. Only the first call has any effect.
func (a *animator) finish(final func() string) error {
	var err error
	a.once.Do(func() {
		close(a.stop)
		<-a.done

		a.record(a.term.ClearStatus(final() + a.term.ShowCursor()))

		a.mu.Lock()
		err = a.err
		a.mu.Unlock()
	})
	return err
}

// record keeps the first write failure.
func (a *animator) record(err error) {
	if err == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err == nil {
		a.err = err
	}
}

var _ io.Writer = (*animator)(nil)
