package terminal

import (
	"bytes"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal or its size
// cannot be queried.
const DefaultWidth = 80

// ClearLine returns the cursor to column zero and erases the whole line.
var ClearLine = "\r" + ansi.EraseEntireLine

// Options configures a Terminal
type Options struct {
	Theme Theme // Zero fields fall back to DefaultTheme
	Plain bool  // Disable colour regardless of what the output supports
	Width int   // Override the detected width
}

// Terminal is the single owner of an input stream and an output stream.
//
// Every write goes through one mutex, so spinners, prompt renderers and
// host output never interleave inside a line. Every read goes through one
// Reader, so consecutive prompts never lose each other's input.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	mu     sync.Mutex
	reader *Reader

	// status is the live bottom line; held is host output waiting for its
	// newline while status is shown. Both are guarded by mu.
	status string
	live   bool
	held   []byte

	renderer *lipgloss.Renderer
	theme    Theme
	styles   Styles
	width    int
}

// New creates a terminal over the given streams.
func New(in io.Reader, out io.Writer, opts *Options) *Terminal {
	if opts == nil {
		opts = &Options{}
	}
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	r := lipgloss.NewRenderer(out)
	if opts.Plain || os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}

	theme := opts.Theme.withDefaults()

	return &Terminal{
		in:       in,
		out:      out,
		reader:   newReader(in),
		renderer: r,
		theme:    theme,
		styles:   theme.Styles(r),
		width:    opts.Width,
	}
}

// Stdio creates a terminal over os.Stdin and os.Stdout.
func Stdio(opts *Options) *Terminal {
	return New(os.Stdin, os.Stdout, opts)
}

// Reader returns the buffered reader every prompt and selector on this
// terminal consumes input through.
func (t *Terminal) Reader() *Reader {
	return t.reader
}

// Write writes p while holding the output lock. While a status line is
// shown, complete lines are printed above it and partial lines are held
// until their newline arrives.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.live {
		return t.out.Write(p)
	}

	t.held = append(t.held, p...)
	i := bytes.LastIndexByte(t.held, '\n')
	if i < 0 {
		return len(p), nil
	}

	var buf bytes.Buffer
	buf.WriteString(ClearLine)
	buf.Write(t.held[:i+1])
	buf.WriteString(ClearLine)
	buf.WriteString(t.status)
	t.held = slices.Clone(t.held[i+1:])

	if _, err := t.out.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Print writes s while holding the output lock, wrapping failures in an IOError.
func (t *Terminal) Print(s string) error {
	if _, err := t.Write([]byte(s)); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// Exclusive runs fn with sole access to the output stream. Nothing else
// can write to the terminal until fn returns. fn must not call back into
// Write, Print or Exclusive, and what it writes bypasses the status line.
func (t *Terminal) Exclusive(fn func(w io.Writer) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.out)
}

// Output returns the raw output stream. Writers that bypass the lock must
// only use it from inside Exclusive.
func (t *Terminal) Output() io.Writer {
	return t.out
}

// Interactive reports whether both input and output are attached to a terminal.
func (t *Terminal) Interactive() bool {
	return isTerminal(t.in) && isTerminal(t.out)
}

// IsTTY reports whether the output is attached to a terminal.
func (t *Terminal) IsTTY() bool {
	return isTerminal(t.out)
}

// Width returns the output width in cells.
func (t *Terminal) Width() int {
	if t.width > 0 {
		return t.width
	}
	if f, ok := t.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// Theme returns the colours the terminal was configured with.
func (t *Terminal) Theme() Theme {
	return t.theme
}

// Styles returns the lipgloss styles bound to this terminal's renderer.
func (t *Terminal) Styles() Styles {
	return t.styles
}

// Renderer returns the lipgloss renderer bound to the output.
func (t *Terminal) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// Profile returns the colour profile detected (or forced) for the output.
func (t *Terminal) Profile() termenv.Profile {
	return t.renderer.ColorProfile()
}

// HideCursor returns the escape sequence hiding the cursor, or "" when the
// output is not a terminal.
func (t *Terminal) HideCursor() string {
	if !t.IsTTY() {
		return ""
	}
	return ansi.HideCursor
}

// ShowCursor is the counterpart of HideCursor.
func (t *Terminal) ShowCursor() string {
	if !t.IsTTY() {
		return ""
	}
	return ansi.ShowCursor
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
