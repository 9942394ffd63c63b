package terminal

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user aborts a prompt, selector or
// spinner-decorated task (Ctrl-C, Esc, end of input, context cancellation).
var ErrCancelled = errors.New("cancelled")

// Cancelled wraps cause so that errors.Is matches both ErrCancelled and cause.
func Cancelled(cause error) error {
	if cause == nil {
		return ErrCancelled
	}
	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}

// IOError reports a failure reading from or writing to the terminal.
// These are not retried: a broken terminal stays broken.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
