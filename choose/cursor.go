package choose

import "fmt"

// EdgePolicy decides what happens when the cursor moves past either end of the list.
type EdgePolicy int

const (
	// Wrap moves from the last option to the first and vice versa.
	// Moving down N times from the top lands on N mod len.
	Wrap EdgePolicy = iota
	// Clamp stops at the first and last option.
	// Moving down N times from the top lands on min(N, len-1).
	Clamp
)

func (p EdgePolicy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", int(p))
	}
}

// ParseEdgePolicy converts "wrap" or "clamp" into an EdgePolicy.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "", "wrap":
		return Wrap, nil
	case "clamp":
		return Clamp, nil
	default:
		return Wrap, fmt.Errorf("unknown edge policy %q (want wrap or clamp)", s)
	}
}

// Cursor is an index into a list of a fixed length. For a non-empty list
// the index is always within [0, length).
type Cursor struct {
	index  int
	length int
	policy EdgePolicy
}

// NewCursor returns a cursor on the first of length options.
func NewCursor(length int, policy EdgePolicy) Cursor {
	return Cursor{length: length, policy: policy}
}

// Index returns the current position.
func (c Cursor) Index() int {
	return c.index
}

// Up moves towards the first option (index - 1).
func (c Cursor) Up() Cursor {
	return c.move(-1)
}

// Down moves towards the last option (index + 1).
func (c Cursor) Down() Cursor {
	return c.move(1)
}

func (c Cursor) move(step int) Cursor {
	if c.length == 0 {
		return c
	}
	next := c.index + step
	switch c.policy {
	case Clamp:
		next = max(0, min(next, c.length-1))
	default:
		next = ((next % c.length) + c.length) % c.length
	}
	c.index = next
	return c
}
