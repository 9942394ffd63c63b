package terminal

import (
	"bytes"
	"io"
)

// ShowStatus draws line as the terminal's live bottom line, replacing the
// previous one. Until ClearStatus, everything written through Write or
// Print appears above it.
func (t *Terminal) ShowStatus(line string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = line
	t.live = true
	if _, err := io.WriteString(t.out, ClearLine+line); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// ClearStatus removes the status line and writes final in its place.
// Held partial output is flushed on a line of its own first.
func (t *Terminal) ClearStatus(final string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var buf bytes.Buffer
	buf.WriteString(ClearLine)
	if len(t.held) > 0 {
		buf.Write(t.held)
		buf.WriteByte('\n')
	}
	buf.WriteString(final)

	t.status, t.live, t.held = "", false, nil
	if _, err := t.out.Write(buf.Bytes()); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// StatusShown reports whether a status line is currently live.
func (t *Terminal) StatusShown() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
}
