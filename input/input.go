// Package input provides interactive terminal input utilities.
//
// All prompts read one line at a time in the terminal's normal (cooked)
// mode, so line editing, paste and pipes behave as users expect.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/simonhull/clytia/terminal"
)

var (
	// ErrNonOptionalInput is returned when nothing was entered and there is no default.
	ErrNonOptionalInput = errors.New("non optional input, but no input given")

	// ErrTooManyAttempts is returned when MaxAttempts rejections happened in a row.
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// ParseError reports input that could not be converted to the requested type.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Options configures a Prompter
type Options struct {
	MaxAttempts int         // Rejections allowed before giving up; 0 means unlimited
	Logger      *log.Logger // Debug events; discarded when nil
}

// Prompter reads answers from a terminal. A Prompter is not safe for
// concurrent use: only one question can be on screen at a time.
type Prompter struct {
	term        *terminal.Terminal
	maxAttempts int
	logger      *log.Logger
}

// New creates a Prompter reading from t.
func New(t *terminal.Terminal, opts *Options) *Prompter {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Prompter{
		term:        t,
		maxAttempts: opts.MaxAttempts,
		logger:      logger,
	}
}

// Text asks for free text with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
// Example:
//
//	name, err := p.Text(ctx, "Project name", "myapp")
//	// Displays: Project name (myapp): _
func (p *Prompter) Text(ctx context.Context, question, defaultValue string) (string, error) {
	s := p.term.Styles()
	if defaultValue != "" {
		question = s.Prompt.Render(question) + " " + s.Hint.Render(fmt.Sprintf("(%s)", defaultValue)) + ": "
	} else {
		question = s.Prompt.Render(question) + ": "
	}
	if err := p.term.Print(question); err != nil {
		return "", err
	}

	line, err := p.readLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return defaultValue, nil
		}
		return "", err
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Confirm asks a yes/no question. Anything other than y/yes (or Enter with
// defaultYes) counts as no.
//
// Example:
//
//	ok, err := p.Confirm(ctx, "Overwrite existing file?", true)
//	// Displays: Overwrite existing file? [Y/n]: _
func (p *Prompter) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	s := p.term.Styles()
	if err := p.term.Print(s.Prompt.Render(question) + " " + s.Hint.Render(hint) + ": "); err != nil {
		return false, err
	}

	line, err := p.readLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return defaultYes, nil
		}
		return false, err
	}

	switch strings.ToLower(line) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine reads one trimmed line. End of input with nothing typed is
// returned as io.EOF; cancellation as terminal.ErrCancelled.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.term.Interactive() {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
	}

	line, err := p.term.Reader().ReadLine(ctx)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			// Leave the cursor on a fresh line for whatever the host prints next.
			_ = p.term.Print("\n")
			return "", terminal.Cancelled(err)
		}
		line = strings.TrimSpace(line)
		if errors.Is(err, io.EOF) {
			if line != "" {
				return line, nil
			}
			return "", io.EOF
		}
		return "", &terminal.IOError{Op: "read", Err: err}
	}
	return strings.TrimSpace(line), nil
}
