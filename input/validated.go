package input

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/clytia/terminal"
)

// Validator turns raw input into a value, or rejects it. The error message
// is shown to the user as the reason, so keep it short and human.
// Validators must be pure: the same input always gives the same answer.
type Validator[T any] func(raw string) (T, error)

// Prompt describes one question.
type Prompt struct {
	Question     string
	Default      string // Used in place of empty input; still validated
	Requirements string // Shown as "(requirements: ...)" when set
}

// Validated asks the question until validate accepts the answer.
//
// Each rejection prints the reason and asks again. A rejected value is
// never returned. Cancellation (Ctrl-C, end of input, ctx) returns
// terminal.ErrCancelled.
//
// Example:
//
//	n, err := input.Validated(ctx, p, input.Prompt{
//	    Question:     "Please enter a number",
//	    Requirements: "1-10",
//	}, input.IntRange(1, 10))
func Validated[T any](ctx context.Context, p *Prompter, prompt Prompt, validate Validator[T]) (T, error) {
	var zero T
	s := p.term.Styles()

	question := s.Prompt.Render(prompt.Question)
	if prompt.Requirements != "" {
		question += " " + s.Hint.Render(fmt.Sprintf("(requirements: %s)", prompt.Requirements))
	}
	if prompt.Default != "" {
		question += " " + s.Hint.Render(fmt.Sprintf("(default: %s)", prompt.Default))
	}
	question += s.Prompt.Render(" => ")

	for attempt := 1; ; attempt++ {
		if err := p.term.Print(question); err != nil {
			return zero, err
		}

		line, err := p.readLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				_ = p.term.Print("\n")
				return zero, terminal.Cancelled(io.EOF)
			}
			return zero, err
		}
		if line == "" {
			line = prompt.Default
		}

		value, reason := validate(line)
		if reason == nil {
			p.logger.Debug("input accepted", "question", prompt.Question, "attempt", attempt)
			return value, nil
		}

		p.logger.Debug("input rejected", "question", prompt.Question, "attempt", attempt, "reason", reason)
		if err := p.term.Print(s.Error.Render("✗ "+reason.Error()) + "\n"); err != nil {
			return zero, err
		}

		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return zero, fmt.Errorf("%w: %w", ErrTooManyAttempts, reason)
		}
	}
}

// Validated is the string form of the package-level Validated.
func (p *Prompter) Validated(ctx context.Context, prompt Prompt, validate Validator[string]) (string, error) {
	return Validated(ctx, p, prompt, validate)
}

// Parsed asks once and converts the answer with parse.
//
// Empty input (or end of input) returns *def when def is non-nil and
// ErrNonOptionalInput otherwise. Unparseable input returns a *ParseError.
//
// Example:
//
//	def := 1
//	n, err := input.Parsed(ctx, p, "Please enter a number", &def, input.Int)
//	// Displays: Please enter a number (default: 1) => _
func Parsed[T any](ctx context.Context, p *Prompter, question string, def *T, parse func(string) (T, error)) (T, error) {
	var zero T
	s := p.term.Styles()

	text := s.Prompt.Render(question)
	if def != nil {
		text += " " + s.Hint.Render(fmt.Sprintf("(default: %v)", *def))
	}
	text += s.Prompt.Render(" => ")
	if err := p.term.Print(text); err != nil {
		return zero, err
	}

	line, err := p.readLine(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		return zero, err
	}
	if line == "" {
		if def != nil {
			return *def, nil
		}
		return zero, ErrNonOptionalInput
	}

	v, err := parse(line)
	if err != nil {
		return zero, &ParseError{Input: line, Err: err}
	}
	return v, nil
}
