package terminal

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_LinesThenKeys(t *testing.T) {
	r := newReader(strings.NewReader("ok\n\x1b[B \r"))
	ctx := context.Background()

	line, err := r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", line)

	for _, want := range []string{"\x1b[B", " ", "\r"} {
		key, err := r.ReadKey(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, string(key))
	}

	_, err = r.ReadKey(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_KeysThenLine(t *testing.T) {
	r := newReader(strings.NewReader("j\rfido\n"))
	ctx := context.Background()

	key, err := r.ReadKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "j", string(key))
	key, err = r.ReadKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "\r", string(key))

	line, err := r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fido\n", line)
}

func TestReader_PartialLineAtEnd(t *testing.T) {
	r := newReader(strings.NewReader("abc"))

	line, err := r.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "abc", line)

	line, err = r.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, line)
}

func TestReader_LoneEscapeAtEnd(t *testing.T) {
	r := newReader(strings.NewReader("\x1b"))

	key, err := r.ReadKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "\x1b", string(key))
}

func TestReader_CancelledReadIsKept(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	r := newReader(pr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	go func() {
		_, _ = io.WriteString(pw, "later\n")
	}()

	key, err := r.ReadKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "l", string(key))

	line, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ater\n", line)
}

func TestReader_DeviceIsNilForPipes(t *testing.T) {
	r := newReader(strings.NewReader("x"))
	assert.Nil(t, r.Device())

	key, err := r.ReadKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x", string(key))
}

func TestKeyLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "ab", 1},
		{"multibyte rune", "é!", 2},
		{"incomplete rune", "\xc3", 0},
		{"lone escape", "\x1b", 0},
		{"arrow", "\x1b[Bx", 3},
		{"modified arrow", "\x1b[1;5A", 6},
		{"incomplete csi", "\x1b[1;", 0},
		{"ss3 arrow", "\x1bOA", 3},
		{"alt key", "\x1bx", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyLength([]byte(tt.in)))
		})
	}
}
