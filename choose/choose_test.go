package choose

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/clytia/terminal"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plainStyles() terminal.Styles {
	return terminal.New(strings.NewReader(""), io.Discard, &terminal.Options{Plain: true}).Styles()
}

func labels(ls ...string) []Choice {
	choices := make([]Choice, len(ls))
	for i, l := range ls {
		choices[i] = Choice{Label: l}
	}
	return choices
}

// press feeds keys to the model in order and returns the final model and
// the command produced by the last key.
func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestMulti_DownDownToggleConfirm(t *testing.T) {
	m := newMultiModel(labels("A", "B", "C"), Wrap, plainStyles(), true)

	final, cmd := press(t, m, keyDown, keyDown, keySpace, keyEnter)
	mm := final.(multiModel)

	assert.True(t, isQuit(cmd), "confirm should quit the program")
	sel := mm.selection()
	assert.Equal(t, []string{"C"}, sel.Labels)
	assert.Equal(t, []int{2}, sel.Indices)
	assert.Equal(t, 2, sel.Cursor)
}

func TestMulti_DirectionKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{name: "down arrow", keys: []tea.KeyMsg{keyDown}, want: 1},
		{name: "j", keys: []tea.KeyMsg{runes("j")}, want: 1},
		{name: "down then up arrow", keys: []tea.KeyMsg{keyDown, keyDown, keyUp}, want: 1},
		{name: "k", keys: []tea.KeyMsg{keyDown, keyDown, runes("k")}, want: 1},
		{name: "up from top wraps to bottom", keys: []tea.KeyMsg{keyUp}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMultiModel(labels("a", "b", "c", "d"), Wrap, plainStyles(), false)
			final, _ := press(t, m, tt.keys...)
			assert.Equal(t, tt.want, final.(multiModel).cursor.Index())
		})
	}
}

func TestMulti_DownNThenConfirm(t *testing.T) {
	const options = 4
	for _, policy := range []EdgePolicy{Wrap, Clamp} {
		for n := 0; n <= 9; n++ {
			m := newMultiModel(labels("a", "b", "c", "d"), policy, plainStyles(), false)
			keys := make([]tea.KeyMsg, 0, n+1)
			for i := 0; i < n; i++ {
				keys = append(keys, keyDown)
			}
			keys = append(keys, keyEnter)

			final, _ := press(t, m, keys...)
			want := n % options
			if policy == Clamp {
				want = min(n, options-1)
			}
			assert.Equal(t, want, final.(multiModel).selection().Cursor, "%s N=%d", policy, n)
		}
	}
}

func TestMulti_DoubleToggleRestoresState(t *testing.T) {
	initial := []Choice{{Label: "a"}, {Label: "b", Selected: true}, {Label: "c"}}

	for pos := range initial {
		m := newMultiModel(initial, Wrap, plainStyles(), false)
		keys := make([]tea.KeyMsg, 0, pos+2)
		for i := 0; i < pos; i++ {
			keys = append(keys, keyDown)
		}
		keys = append(keys, keySpace, runes("x"))

		final, _ := press(t, m, keys...)
		assert.Equal(t, initial, final.(multiModel).choices, "position %d", pos)
	}
}

func TestMulti_DoesNotModifyCallerSlice(t *testing.T) {
	choices := labels("a", "b")
	m := newMultiModel(choices, Wrap, plainStyles(), false)

	_, _ = press(t, m, keySpace, keyDown, keySpace)
	assert.False(t, choices[0].Selected)
	assert.False(t, choices[1].Selected)
}

func TestMulti_ToggleAll(t *testing.T) {
	m := newMultiModel([]Choice{{Label: "a", Selected: true}, {Label: "b"}, {Label: "c"}}, Wrap, plainStyles(), false)

	final, _ := press(t, m, runes("a"))
	assert.Equal(t, []string{"a", "b", "c"}, final.(multiModel).selection().Labels)

	final, _ = press(t, final, runes("a"))
	assert.Empty(t, final.(multiModel).selection().Labels)
}

func TestMulti_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyEsc, runes("q"), {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			m := newMultiModel(labels("a", "b"), Wrap, plainStyles(), false)
			final, cmd := press(t, m, keySpace, k)

			mm := final.(multiModel)
			assert.True(t, mm.cancelled)
			assert.True(t, isQuit(cmd))
			assert.Empty(t, mm.View(), "cancel clears the list")
		})
	}
}

func TestMulti_View(t *testing.T) {
	m := newMultiModel([]Choice{{Label: "cats"}, {Label: "dogs", Selected: true}, {Label: "birds"}}, Wrap, plainStyles(), false)

	assert.Equal(t, "> [ ] cats\n  [X] dogs\n  [ ] birds\n", m.View())

	final, _ := press(t, m, keyDown)
	assert.Equal(t, "  [ ] cats\n> [X] dogs\n  [ ] birds\n", final.View())

	final, _ = press(t, final, keyEnter)
	assert.Equal(t, "[X] dogs\n", final.View(), "only the answer stays on screen")
}

func TestMulti_ViewHelp(t *testing.T) {
	m := newMultiModel(labels("a"), Wrap, plainStyles(), true)
	view := m.View()
	assert.Contains(t, view, "toggle")
	assert.Contains(t, view, "confirm")
}

func TestMenu(t *testing.T) {
	m := newMenuModel([]string{"cats", "dogs", "both"}, Wrap, plainStyles(), false)
	assert.Equal(t, "=> cats\n   dogs\n   both\n", m.View())

	final, cmd := press(t, m, keyDown, keySpace, keyEnter)
	mm := final.(menuModel)
	assert.True(t, isQuit(cmd))
	assert.True(t, mm.done)
	assert.Equal(t, 1, mm.cursor.Index(), "space does nothing in a single choice menu")
	assert.Equal(t, "=> dogs\n", mm.View())
}

func TestMenu_HelpHidesToggle(t *testing.T) {
	m := newMenuModel([]string{"a"}, Wrap, plainStyles(), true)
	view := m.View()
	assert.NotContains(t, view, "toggle")
	assert.Contains(t, view, "confirm")
}

func newTestSelector(in io.Reader, opts *Options) (*Selector, *bytes.Buffer) {
	var out bytes.Buffer
	t := terminal.New(in, &out, &terminal.Options{Plain: true})
	return New(t, opts), &out
}

func TestSelector_Multi(t *testing.T) {
	s, _ := newTestSelector(strings.NewReader("\x1b[B\x1b[B \r"), nil)

	sel, err := s.Multi(context.Background(), labels("A", "B", "C"))
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, sel.Labels)
	assert.Equal(t, 2, sel.Cursor)
}

func TestSelector_MultiCancelled(t *testing.T) {
	s, _ := newTestSelector(strings.NewReader(" \x03"), nil)

	sel, err := s.Multi(context.Background(), labels("A", "B"))
	assert.ErrorIs(t, err, terminal.ErrCancelled)
	assert.Empty(t, sel.Labels)
}

func TestSelector_One(t *testing.T) {
	s, _ := newTestSelector(strings.NewReader("\x1b[B\x1b[B\r"), &Options{Edge: Clamp})

	i, opt, err := s.One(context.Background(), []string{"cats", "dogs"})
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, "dogs", opt)
}

func TestSelector_NoOptions(t *testing.T) {
	s, _ := newTestSelector(strings.NewReader(""), nil)

	_, err := s.Multi(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoOptions)

	_, _, err = s.One(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoOptions)
}

func TestSelector_ContextCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	s, _ := newTestSelector(r, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.Multi(ctx, labels("A", "B"))
	assert.ErrorIs(t, err, terminal.ErrCancelled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenericHelpers(t *testing.T) {
	s, _ := newTestSelector(strings.NewReader(" j \r"), nil)
	picked, err := MultiOf(context.Background(), s, []int{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, picked)

	s, _ = newTestSelector(strings.NewReader("k\r"), nil)
	got, err := OneOf(context.Background(), s, []int{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}

func TestSelector_LeavesLaterInputBuffered(t *testing.T) {
	term := terminal.New(strings.NewReader("\x1b[B\rnext answer\n"), io.Discard, &terminal.Options{Plain: true})
	s := New(term, nil)

	i, _, err := s.One(context.Background(), []string{"cats", "dogs"})
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	line, err := term.Reader().ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "next answer\n", line)
}

func TestSelector_EndOfInputCancels(t *testing.T) {
	s, _ := newTestSelector(strings.NewReader(" "), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := s.Multi(ctx, labels("A", "B"))
	assert.ErrorIs(t, err, terminal.ErrCancelled)
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, ctx.Err())
}

func TestGated_HoldsKeysOnceFinished(t *testing.T) {
	feed := newKeyFeed(context.Background(), nil)
	g := gated{Model: newMenuModel([]string{"a", "b"}, Wrap, plainStyles(), false), feed: feed}

	m, _ := g.Update(keyDown)
	assert.Len(t, feed.ack, 1, "a handled key releases the next one")
	<-feed.ack

	m, _ = m.Update(tea.WindowSizeMsg{Width: 80})
	assert.Empty(t, feed.ack, "resizes are not keys")

	_, _ = m.Update(keyEnter)
	assert.Empty(t, feed.ack, "nothing is released after the selection ends")
}
