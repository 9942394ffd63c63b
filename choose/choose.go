package choose

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/simonhull/clytia/terminal"
)

// ErrNoOptions is returned when asked to choose from an empty list.
var ErrNoOptions = errors.New("no options to choose from")

// Options configures a Selector
type Options struct {
	Edge     EdgePolicy  // Cursor behaviour at either end of the list (default Wrap)
	HideHelp bool        // Don't render the key help line
	Logger   *log.Logger // Debug events; discarded when nil
}

// Selection is the outcome of a confirmed multichoice.
type Selection struct {
	Indices []int    // Selected positions, ascending
	Labels  []string // Labels of the selected options, same order as Indices
	Cursor  int      // Where the cursor was when the user confirmed
}

// Selector shows keyboard-driven option lists on a terminal.
type Selector struct {
	term     *terminal.Terminal
	edge     EdgePolicy
	showHelp bool
	logger   *log.Logger
}

// New creates a Selector drawing on t.
func New(t *terminal.Terminal, opts *Options) *Selector {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Selector{
		term:     t,
		edge:     opts.Edge,
		showHelp: !opts.HideHelp,
		logger:   logger,
	}
}

// Multi lets the user pick any number of choices. Choices start selected
// or not according to their Selected field; the caller's slice is not modified.
//
// Cancelling returns terminal.ErrCancelled and an empty Selection.
//
// Example:
//
//	sel, err := s.Multi(ctx, []choose.Choice{{Label: "cats"}, {Label: "dogs"}})
//	fmt.Println(sel.Labels)
func (s *Selector) Multi(ctx context.Context, choices []Choice) (Selection, error) {
	if len(choices) == 0 {
		return Selection{}, ErrNoOptions
	}

	final, err := s.run(ctx, newMultiModel(choices, s.edge, s.term.Styles(), s.showHelp))
	if err != nil {
		return Selection{}, err
	}

	m, ok := final.(multiModel)
	if !ok {
		return Selection{}, fmt.Errorf("unexpected model type %T", final)
	}
	if m.cancelled {
		s.logger.Debug("multichoice cancelled")
		return Selection{}, terminal.ErrCancelled
	}

	sel := m.selection()
	s.logger.Debug("multichoice confirmed", "selected", sel.Labels, "cursor", sel.Cursor)
	return sel, nil
}

// One lets the user pick exactly one option. It returns the index and the
// option itself.
func (s *Selector) One(ctx context.Context, options []string) (int, string, error) {
	if len(options) == 0 {
		return 0, "", ErrNoOptions
	}

	final, err := s.run(ctx, newMenuModel(options, s.edge, s.term.Styles(), s.showHelp))
	if err != nil {
		return 0, "", err
	}

	m, ok := final.(menuModel)
	if !ok {
		return 0, "", fmt.Errorf("unexpected model type %T", final)
	}
	if m.cancelled {
		s.logger.Debug("menu cancelled")
		return 0, "", terminal.ErrCancelled
	}

	i := m.cursor.Index()
	s.logger.Debug("menu confirmed", "option", options[i])
	return i, options[i], nil
}

// run drives one bubbletea program with exclusive use of the terminal.
//
// On a terminal device bubbletea reads the device itself, switching it to
// raw mode and restoring it on every exit path. Otherwise keys come from
// the terminal's shared reader one at a time, and running out of input
// cancels the selection.
func (s *Selector) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	reader := s.term.Reader()
	feedCtx, stopFeed := context.WithCancel(ctx)
	defer stopFeed()
	feed := newKeyFeed(feedCtx, reader)

	var input io.Reader = feed
	if dev := reader.Device(); dev != nil {
		if reader.Buffered() > 0 {
			s.logger.Debug("typed-ahead input kept for the next prompt", "bytes", reader.Buffered())
		}
		input = dev
	}

	var final tea.Model
	err := s.term.Exclusive(func(w io.Writer) error {
		p := tea.NewProgram(gated{Model: m, feed: feed},
			tea.WithContext(ctx),
			tea.WithInput(input),
			tea.WithOutput(w),
			tea.WithoutSignalHandler(),
		)
		feed.eof = p.Kill
		var err error
		final, err = p.Run()
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, terminal.Cancelled(ctx.Err())
		}
		if feed.exhausted.Load() {
			return nil, terminal.Cancelled(io.EOF)
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil, terminal.Cancelled(err)
		}
		return nil, &terminal.IOError{Op: "select", Err: err}
	}
	if g, ok := final.(gated); ok {
		final = g.Model
	}
	return final, nil
}

// MultiOf is Multi for arbitrary values, labelled with fmt.Sprint.
func MultiOf[T any](ctx context.Context, s *Selector, items []T) ([]T, error) {
	choices := make([]Choice, len(items))
	for i, item := range items {
		choices[i] = Choice{Label: fmt.Sprint(item)}
	}

	sel, err := s.Multi(ctx, choices)
	if err != nil {
		return nil, err
	}

	picked := make([]T, 0, len(sel.Indices))
	for _, i := range sel.Indices {
		picked = append(picked, items[i])
	}
	return picked, nil
}

// OneOf is One for arbitrary values, labelled with fmt.Sprint.
func OneOf[T any](ctx context.Context, s *Selector, items []T) (T, error) {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = fmt.Sprint(item)
	}

	i, _, err := s.One(ctx, labels)
	if err != nil {
		var zero T
		return zero, err
	}
	return items[i], nil
}
