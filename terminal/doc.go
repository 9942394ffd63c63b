// Package terminal adapts a pair of input/output streams into something the
// clytia components can share safely.
//
// # Overview
//
// A Terminal owns one reader and one writer. All output is serialized
// through a single lock:
//
//	t := terminal.Stdio(nil)
//	t.Print("hello\n")
//
//	// Bubbletea programs and multi-line redraws take the lock for longer
//	t.Exclusive(func(w io.Writer) error {
//	    _, err := io.WriteString(w, terminal.ClearLine+"redrawn")
//	    return err
//	})
//
// All input goes through Reader. Line prompts call ReadLine and piped
// selectors call ReadKey, so bytes one component read ahead are left for
// the next. A read abandoned by cancellation lands in the buffer rather
// than being dropped. Device hands a real terminal over to bubbletea after
// cancelling any read still in flight.
//
// # Styling
//
// Colours come from a Theme rendered with lipgloss on a renderer bound to
// the output, so piping to a file or setting NO_COLOR drops escape codes.
// Options.Plain forces the same behaviour (tests use it).
//
// # Errors
//
//   - ErrCancelled: the user aborted. Check with errors.Is.
//   - *IOError: the terminal itself failed. Never retried.
package terminal
