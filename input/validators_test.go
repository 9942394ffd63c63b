package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntRange(t *testing.T) {
	v := IntRange(1, 10)

	tests := []struct {
		raw    string
		want   int
		reason string
	}{
		{raw: "1", want: 1},
		{raw: "10", want: 10},
		{raw: "0", reason: "0 is not between 1 and 10"},
		{raw: "11", reason: "11 is not between 1 and 10"},
		{raw: "x", reason: `"x" is not a whole number`},
		{raw: "", reason: `"" is not a whole number`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := v(tt.raw)
			if tt.reason != "" {
				assert.EqualError(t, err, tt.reason)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotEmpty(t *testing.T) {
	v := NotEmpty()

	_, err := v("")
	assert.Error(t, err)
	_, err = v("   ")
	assert.Error(t, err)

	got, err := v("ok")
	assert.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestOneOf(t *testing.T) {
	v := OneOf("cats", "dogs")

	got, err := v("dogs")
	assert.NoError(t, err)
	assert.Equal(t, "dogs", got)

	_, err = v("birds")
	assert.EqualError(t, err, `"birds" is not one of: cats, dogs`)
}

func TestCheck(t *testing.T) {
	even := Check(Int, func(n int) bool { return n%2 == 0 }, "must be even")

	got, err := even("4")
	assert.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = even("3")
	assert.EqualError(t, err, "must be even")

	_, err = even("four")
	assert.EqualError(t, err, `could not parse "four": must be even`)
}

func TestBool(t *testing.T) {
	for raw, want := range map[string]bool{"y": true, "YES": true, "true": true, "1": true, "n": false, "no": false, "false": false} {
		got, err := Bool(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := Bool("maybe")
	assert.Error(t, err)
}

func TestFloat(t *testing.T) {
	got, err := Float("2.5")
	assert.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-9)

	_, err = Float("two")
	assert.Error(t, err)
}

func TestAll(t *testing.T) {
	v := All(NotEmpty(), OneOf("cats", "dogs"))

	got, err := v("cats")
	assert.NoError(t, err)
	assert.Equal(t, "cats", got)

	_, err = v("")
	assert.EqualError(t, err, "a value is required", "first rejection wins")

	_, err = v("birds")
	assert.EqualError(t, err, `"birds" is not one of: cats, dogs`)

	got, err = All()("anything")
	assert.NoError(t, err)
	assert.Equal(t, "anything", got)
}

func TestRaw(t *testing.T) {
	v := Raw(IntRange(1, 10))

	got, err := v("07")
	assert.NoError(t, err)
	assert.Equal(t, "07", got, "accepted text is returned as typed")

	_, err = v("11")
	assert.EqualError(t, err, "11 is not between 1 and 10")
}
