package input

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/clytia/terminal"
)

// newTestPrompter returns a prompter reading the given input with colour disabled.
func newTestPrompter(in io.Reader, opts *Options) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	t := terminal.New(in, &out, &terminal.Options{Plain: true})
	return New(t, opts), &out
}

func TestValidated_RepromptsUntilValid(t *testing.T) {
	p, out := newTestPrompter(strings.NewReader("\n\nok\n"), nil)

	got, err := Validated(context.Background(), p, Prompt{Question: "Name"}, NotEmpty())
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	assert.Equal(t, 2, strings.Count(out.String(), "✗ a value is required"), "one reason per rejection")
	assert.Equal(t, 3, strings.Count(out.String(), "Name => "), "question shown before every attempt")
}

func TestValidated_NeverReturnsRejectedValue(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       int
		rejections int
	}{
		{name: "first answer valid", input: "7\n", want: 7, rejections: 0},
		{name: "below range", input: "0\n3\n", want: 3, rejections: 1},
		{name: "above range", input: "11\n10\n", want: 10, rejections: 1},
		{name: "not a number", input: "abc\n1\n", want: 1, rejections: 1},
		{name: "many bad answers", input: "-1\n\n99\nten\n5\n", want: 5, rejections: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(strings.NewReader(tt.input), nil)

			got, err := Validated(context.Background(), p, Prompt{
				Question:     "Number",
				Requirements: "1-10",
			}, IntRange(1, 10))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rejections, strings.Count(out.String(), "✗ "))
			assert.Contains(t, out.String(), "Number (requirements: 1-10) => ")
		})
	}
}

func TestValidated_DefaultIsValidated(t *testing.T) {
	p, _ := newTestPrompter(strings.NewReader("\n"), nil)
	got, err := Validated(context.Background(), p, Prompt{Question: "Number", Default: "5"}, IntRange(1, 10))
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	p, out := newTestPrompter(strings.NewReader("\n4\n"), nil)
	got, err = Validated(context.Background(), p, Prompt{Question: "Number", Default: "50"}, IntRange(1, 10))
	require.NoError(t, err)
	assert.Equal(t, 4, got)
	assert.Contains(t, out.String(), "✗ 50 is not between 1 and 10")
}

func TestValidated_EndOfInputCancels(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "after rejection", input: "bad\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(strings.NewReader(tt.input), nil)
			_, err := Validated(context.Background(), p, Prompt{Question: "Number"}, IntRange(1, 10))
			require.Error(t, err)
			assert.ErrorIs(t, err, terminal.ErrCancelled)
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestValidated_LastLineWithoutNewline(t *testing.T) {
	p, _ := newTestPrompter(strings.NewReader("ok"), nil)
	got, err := p.Validated(context.Background(), Prompt{Question: "Name"}, NotEmpty())
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestValidated_MaxAttempts(t *testing.T) {
	p, out := newTestPrompter(strings.NewReader("\n\n\nok\n"), &Options{MaxAttempts: 2})

	_, err := p.Validated(context.Background(), Prompt{Question: "Name"}, NotEmpty())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.Contains(t, err.Error(), "a value is required")
	assert.Equal(t, 2, strings.Count(out.String(), "✗ "))
}

func TestValidated_ContextCancellation(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p, _ := newTestPrompter(r, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := p.Validated(ctx, Prompt{Question: "Name"}, NotEmpty())
		errCh <- err
	}()

	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, terminal.ErrCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("prompt did not return after cancellation")
	}

	// The abandoned read is handed to the next question, not lost.
	go func() {
		_, _ = io.WriteString(w, "later\n")
	}()
	got, err := p.Text(context.Background(), "Again", "")
	require.NoError(t, err)
	assert.Equal(t, "later", got)
}

func TestParsed(t *testing.T) {
	one := 1

	tests := []struct {
		name    string
		input   string
		def     *int
		want    int
		wantErr error
	}{
		{name: "value", input: "42\n", want: 42},
		{name: "default on empty", input: "\n", def: &one, want: 1},
		{name: "default on eof", input: "", def: &one, want: 1},
		{name: "required", input: "\n", wantErr: ErrNonOptionalInput},
		{name: "value beats default", input: "3\n", def: &one, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(strings.NewReader(tt.input), nil)
			got, err := Parsed(context.Background(), p, "Number", tt.def, Int)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsed_ParseError(t *testing.T) {
	p, _ := newTestPrompter(strings.NewReader("abc\n"), nil)
	_, err := Parsed(context.Background(), p, "Number", nil, Int)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "abc", parseErr.Input)
}

func TestParsed_Output(t *testing.T) {
	zero := 0
	p, out := newTestPrompter(strings.NewReader("1\n"), nil)
	_, err := Parsed(context.Background(), p, "input a number", &zero, Int)
	require.NoError(t, err)
	assert.Equal(t, "input a number (default: 0) => ", out.String())

	p, out = newTestPrompter(strings.NewReader("1\n"), nil)
	_, err = Parsed(context.Background(), p, "input a number", nil, Int)
	require.NoError(t, err)
	assert.Equal(t, "input a number => ", out.String())
}

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{name: "typed", input: "myapp\n", def: "default", want: "myapp"},
		{name: "trimmed", input: "  myapp  \n", want: "myapp"},
		{name: "default", input: "\n", def: "default", want: "default"},
		{name: "eof", input: "", def: "default", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(strings.NewReader(tt.input), nil)
			got, err := p.Text(context.Background(), "Project", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "y", input: "y\n", want: true},
		{name: "YES", input: "YES\n", want: true},
		{name: "no", input: "no\n", defaultYes: true, want: false},
		{name: "anything else", input: "maybe\n", defaultYes: true, want: false},
		{name: "enter default yes", input: "\n", defaultYes: true, want: true},
		{name: "enter default no", input: "\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(strings.NewReader(tt.input), nil)
			got, err := p.Confirm(context.Background(), "Continue?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.defaultYes {
				assert.Contains(t, out.String(), "[Y/n]")
			} else {
				assert.Contains(t, out.String(), "[y/N]")
			}
		})
	}
}

func TestPrompter_SequentialQuestionsShareInput(t *testing.T) {
	p, _ := newTestPrompter(strings.NewReader("alice\ny\n30\n"), nil)
	ctx := context.Background()

	name, err := p.Text(ctx, "Name", "")
	require.NoError(t, err)
	ok, err := p.Confirm(ctx, "Sure?", false)
	require.NoError(t, err)
	age, err := Validated(ctx, p, Prompt{Question: "Age"}, IntRange(0, 150))
	require.NoError(t, err)

	assert.Equal(t, "alice", name)
	assert.True(t, ok)
	assert.Equal(t, 30, age)
}
