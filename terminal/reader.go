package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

const readChunk = 4096

// Reader is the single consumer of a terminal's input stream.
//
// Line prompts and key-driven selectors both take their bytes from its
// buffer, so whatever one of them read ahead is still there for the next.
// At most one read of the underlying stream is in flight; a read abandoned
// by cancellation completes into the buffer instead of being lost.
type Reader struct {
	src  io.Reader
	file *os.File // set when src is a terminal device

	mu     sync.Mutex
	buf    []byte
	err    error
	fetch  chan struct{} // closed when the in-flight read lands; nil when idle
	cancel cancelreader.CancelReader
}

func newReader(src io.Reader) *Reader {
	r := &Reader{src: src}
	if f, ok := src.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.file = f
	}
	return r
}

// ReadLine returns the next line including its newline. At end of input the
// remaining bytes are returned with the error, like bufio.Reader.ReadString.
// When ctx is done ReadLine returns ctx.Err() and consumes nothing.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	for {
		r.mu.Lock()
		if i := bytes.IndexByte(r.buf, '\n'); i >= 0 {
			line := string(r.buf[:i+1])
			r.buf = r.buf[i+1:]
			r.mu.Unlock()
			return line, nil
		}
		if r.err != nil {
			line, err := string(r.buf), r.err
			r.buf, r.err = nil, nil
			r.mu.Unlock()
			return line, err
		}
		wait := r.fetchLocked()
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-wait:
		}
	}
}

// ReadKey returns the bytes of the next key press: one rune, or one whole
// escape sequence. When ctx is done ReadKey returns ctx.Err() and consumes
// nothing.
func (r *Reader) ReadKey(ctx context.Context) ([]byte, error) {
	for {
		r.mu.Lock()
		n := keyLength(r.buf)
		if n == 0 && len(r.buf) > 0 && r.err != nil {
			n = len(r.buf)
		}
		if n > 0 {
			key := append([]byte(nil), r.buf[:n]...)
			r.buf = r.buf[n:]
			r.mu.Unlock()
			return key, nil
		}
		if r.err != nil {
			err := r.err
			r.err = nil
			r.mu.Unlock()
			return nil, err
		}
		wait := r.fetchLocked()
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-wait:
		}
	}
}

// Buffered returns the number of bytes read from the stream but not yet consumed.
func (r *Reader) Buffered() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buf)
}

// Device returns the input as a terminal device with no read of ours in
// flight, so another reader can take it over. It returns nil when the input
// is not a terminal.
func (r *Reader) Device() *os.File {
	if r.file == nil {
		return nil
	}

	r.mu.Lock()
	cr, wait := r.cancel, r.fetch
	r.cancel = nil
	r.mu.Unlock()

	if cr != nil {
		if wait != nil && cr.Cancel() {
			<-wait
		}
		_ = cr.Close()
	}
	return r.file
}

// fetchLocked starts a read of the stream unless one is already running
// and returns a channel closed when it lands. r.mu must be held.
func (r *Reader) fetchLocked() <-chan struct{} {
	if r.fetch != nil {
		return r.fetch
	}

	src := r.src
	if r.file != nil {
		if r.cancel == nil {
			cr, err := cancelreader.NewReader(r.file)
			if err == nil {
				r.cancel = cr
			}
		}
		if r.cancel != nil {
			src = r.cancel
		}
	}

	done := make(chan struct{})
	r.fetch = done
	go func() {
		chunk := make([]byte, readChunk)
		n, err := src.Read(chunk)

		r.mu.Lock()
		r.buf = append(r.buf, chunk[:n]...)
		if err != nil && !errors.Is(err, cancelreader.ErrCanceled) {
			r.err = err
		}
		r.fetch = nil
		r.mu.Unlock()
		close(done)
	}()
	return done
}

// keyLength returns the length of the first key in b, or 0 when b holds
// only the start of one.
func keyLength(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	if b[0] != 0x1b {
		if !utf8.FullRune(b) {
			return 0
		}
		_, n := utf8.DecodeRune(b)
		return n
	}

	if len(b) < 2 {
		return 0
	}
	switch b[1] {
	case '[':
		for i := 2; i < len(b); i++ {
			if b[i] >= 0x40 && b[i] <= 0x7e {
				return i + 1
			}
		}
		return 0
	case 'O':
		if len(b) < 3 {
			return 0
		}
		return 3
	default:
		return 2
	}
}
