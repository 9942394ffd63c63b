package choose

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonhull/clytia/terminal"
)

// keyFeed hands a bubbletea program one key per Read from the terminal's
// shared reader. After the first key each Read waits until the model has
// handled the previous one, so keys past the one that ends the selection
// stay buffered for whoever reads next.
type keyFeed struct {
	ctx    context.Context // done once the program has returned
	reader *terminal.Reader
	ack    chan struct{}
	eof    func()
	primed bool

	exhausted atomic.Bool
}

func newKeyFeed(ctx context.Context, r *terminal.Reader) *keyFeed {
	return &keyFeed{
		ctx:    ctx,
		reader: r,
		ack:    make(chan struct{}, 1),
		eof:    func() {},
	}
}

func (f *keyFeed) Read(p []byte) (int, error) {
	if f.primed {
		select {
		case <-f.ack:
		case <-f.ctx.Done():
			return 0, io.EOF
		}
	}

	key, err := f.reader.ReadKey(f.ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			f.exhausted.Store(true)
			f.eof()
		}
		return 0, io.EOF
	}
	f.primed = true
	return copy(p, key), nil
}

// handled releases the next key.
func (f *keyFeed) handled() {
	select {
	case f.ack <- struct{}{}:
	default:
	}
}

type finisher interface {
	finished() bool
}

// gated wraps a selector model and tells the feed when a key was handled.
type gated struct {
	tea.Model
	feed *keyFeed
}

func (g gated) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := g.Model.Update(msg)
	g.Model = m

	switch msg.(type) {
	case tea.WindowSizeMsg, tea.FocusMsg, tea.BlurMsg:
		return g, cmd
	}
	if f, ok := m.(finisher); ok && f.finished() {
		return g, cmd
	}
	g.feed.handled()
	return g, cmd
}
