package clytia

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/simonhull/clytia/choose"
	"github.com/simonhull/clytia/input"
	"github.com/simonhull/clytia/output"
	"github.com/simonhull/clytia/spinner"
	"github.com/simonhull/clytia/terminal"
)

// ErrCancelled is returned by every prompt the user backs out of.
var ErrCancelled = terminal.ErrCancelled

// Options configures a Clytia. Nil sections use their package defaults.
type Options struct {
	Terminal *terminal.Options
	Input    *input.Options
	Selector *choose.Options
	Spinner  *spinner.Options
	Logger   *log.Logger // Passed to every component that has no logger of its own
}

// Clytia bundles one terminal with every prompt drawn on it.
type Clytia struct {
	Terminal *terminal.Terminal
	Prompter *input.Prompter
	Selector *choose.Selector
	Output   *output.Printer

	spinner *spinner.Options
}

// New creates a Clytia reading from in and drawing on out.
func New(in io.Reader, out io.Writer, opts *Options) *Clytia {
	if opts == nil {
		opts = &Options{}
	}
	return From(terminal.New(in, out, opts.Terminal), opts)
}

// From creates a Clytia on an existing terminal. opts.Terminal is ignored.
func From(t *terminal.Terminal, opts *Options) *Clytia {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	inOpts := input.Options{}
	if opts.Input != nil {
		inOpts = *opts.Input
	}
	if inOpts.Logger == nil {
		inOpts.Logger = logger
	}

	selOpts := choose.Options{}
	if opts.Selector != nil {
		selOpts = *opts.Selector
	}
	if selOpts.Logger == nil {
		selOpts.Logger = logger
	}

	spinOpts := spinner.Options{}
	if opts.Spinner != nil {
		spinOpts = *opts.Spinner
	}
	if spinOpts.Logger == nil {
		spinOpts.Logger = logger
	}

	return &Clytia{
		Terminal: t,
		Prompter: input.New(t, &inOpts),
		Selector: choose.New(t, &selOpts),
		Output:   output.New(t),
		spinner:  &spinOpts,
	}
}

// Default creates a Clytia on stdin and stdout.
func Default() *Clytia {
	return New(nil, nil, nil)
}

// Text asks a free-form question. Empty input returns defaultValue.
func (c *Clytia) Text(ctx context.Context, question, defaultValue string) (string, error) {
	return c.Prompter.Text(ctx, question, defaultValue)
}

// Confirm asks a yes/no question.
func (c *Clytia) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	return c.Prompter.Confirm(ctx, question, defaultYes)
}

// Validated asks until validate accepts the answer. See input.Validated.
func (c *Clytia) Validated(ctx context.Context, prompt input.Prompt, validate input.Validator[string]) (string, error) {
	return c.Prompter.Validated(ctx, prompt, validate)
}

// ParsedInput asks once and parses the answer. Empty input returns def,
// or input.ErrNonOptionalInput when def is nil.
//
// Example:
//
//	n, err := clytia.ParsedInput(ctx, cli, "Please enter a number", nil, strconv.Atoi)
//	if errors.Is(err, input.ErrNonOptionalInput) {
//	    fmt.Println("You didn't enter a number!")
//	}
func ParsedInput[T any](ctx context.Context, c *Clytia, question string, def *T, parse func(string) (T, error)) (T, error) {
	return input.Parsed(ctx, c.Prompter, question, def, parse)
}

// ValidatedInput asks until the answer parses and satisfies valid.
// requirements is shown next to the question and in the rejection reason.
//
// Example:
//
//	n, err := clytia.ValidatedInput(ctx, cli, "Please enter a number", "0-10",
//	    strconv.Atoi, func(n int) bool { return n >= 0 && n <= 10 })
func ValidatedInput[T any](ctx context.Context, c *Clytia, question, requirements string, parse func(string) (T, error), valid func(T) bool) (T, error) {
	reason := "does not meet the requirements"
	if requirements != "" {
		reason += ": " + requirements
	}
	return input.Validated(ctx, c.Prompter, input.Prompt{
		Question:     question,
		Requirements: requirements,
	}, input.Check(parse, valid, reason))
}

// Multichoice lets the user pick any number of items.
func Multichoice[T any](ctx context.Context, c *Clytia, items []T) ([]T, error) {
	return choose.MultiOf(ctx, c.Selector, items)
}

// OptionsMenu lets the user pick exactly one item.
func OptionsMenu[T any](ctx context.Context, c *Clytia, items []T) (T, error) {
	return choose.OneOf(ctx, c.Selector, items)
}

// StaticSpinner shows text next to a spinner while task runs.
//
// Example:
//
//	err := cli.StaticSpinner(ctx, "Waiting for 2 seconds", func(ctx context.Context) error {
//	    time.Sleep(2 * time.Second)
//	    return nil
//	})
func (c *Clytia) StaticSpinner(ctx context.Context, text string, task spinner.Task) error {
	return spinner.Run(ctx, c.Terminal, text, task, c.spinner)
}

// DynamicSpinner is StaticSpinner with text recomputed on every frame.
func (c *Clytia) DynamicSpinner(ctx context.Context, textFn func() string, task spinner.Task) error {
	return spinner.RunDynamic(ctx, c.Terminal, textFn, task, c.spinner)
}

// ProgressBar shows label and a bar filled to progressFn() percent while
// task runs.
func (c *Clytia) ProgressBar(ctx context.Context, label string, progressFn func() int, task spinner.Task) error {
	return spinner.Progress(ctx, c.Terminal, label, progressFn, task, c.spinner)
}
