package output

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/simonhull/clytia/terminal"
)

// Printer writes styled status lines to a terminal. Lines go through the
// terminal's lock, so they never land in the middle of a spinner frame.
type Printer struct {
	term    *terminal.Terminal
	verbose atomic.Bool
}

// New creates a Printer writing to t.
func New(t *terminal.Terminal) *Printer {
	return &Printer{term: t}
}

// SetVerbose enables or disables Verbose lines.
func (p *Printer) SetVerbose(v bool) {
	p.verbose.Store(v)
}

// IsVerbose reports whether Verbose lines are printed.
func (p *Printer) IsVerbose() bool {
	return p.verbose.Load()
}

// Success prints "✔ msg" in the success colour.
// Use this for completed operations.
func (p *Printer) Success(msg string) error {
	return p.line(p.term.Styles().Success.Render("✔ " + msg))
}

// Error prints "✗ msg" in the failure colour.
// Use this for failures that need user attention.
func (p *Printer) Error(msg string) error {
	return p.line(p.term.Styles().Failure.Render("✗ " + msg))
}

// Info prints "ℹ msg" in the hint colour.
func (p *Printer) Info(msg string) error {
	return p.line(p.term.Styles().Hint.Render("ℹ " + msg))
}

// Step prints an indented, muted line.
//
// Example:
//
//	out.Info("Next steps:")
//	out.Step("clytia choose cats dogs")
func (p *Printer) Step(msg string) error {
	return p.line(p.term.Styles().Muted.Render("   " + msg))
}

// Verbose prints "🔍 msg" only when verbose mode is enabled.
func (p *Printer) Verbose(msg string) error {
	if !p.IsVerbose() {
		return nil
	}
	return p.line(p.term.Styles().Muted.Render("🔍 " + msg))
}

func (p *Printer) line(s string) error {
	return p.term.Print(s + "\n")
}

var (
	defaultMu      sync.RWMutex
	defaultPrinter = New(terminal.New(os.Stdin, os.Stderr, nil))
)

// Default returns the package-level Printer used by the top-level functions.
func Default() *Printer {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultPrinter
}

// SetDefault replaces the package-level Printer, keeping its verbose setting.
// The CLI calls this once the terminal has been configured.
func SetDefault(p *Printer) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	p.SetVerbose(defaultPrinter.IsVerbose())
	defaultPrinter = p
}

// SetVerbose enables or disables verbose output on the default Printer.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	Default().SetVerbose(v)
}

// Success prints a success line on the default Printer.
//
// Example:
//
//	output.Success("Saved 3 choices")
func Success(msg string) {
	_ = Default().Success(msg)
}

// Error prints an error line on the default Printer.
func Error(msg string) {
	_ = Default().Error(msg)
}

// Info prints an informational line on the default Printer.
func Info(msg string) {
	_ = Default().Info(msg)
}

// Step prints an indented step on the default Printer.
func Step(msg string) {
	_ = Default().Step(msg)
}

// Verbose prints a debug line on the default Printer when verbose mode is on.
func Verbose(msg string) {
	_ = Default().Verbose(msg)
}
