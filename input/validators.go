package input

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// String returns the input unchanged.
func String(raw string) (string, error) {
	return raw, nil
}

// Int parses a base 10 integer.
func Int(raw string) (int, error) {
	return strconv.Atoi(raw)
}

// Float parses a 64-bit float.
func Float(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

// Bool parses anything strconv.ParseBool accepts plus y/yes/n/no.
func Bool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// NotEmpty rejects blank input.
func NotEmpty() Validator[string] {
	return func(raw string) (string, error) {
		if strings.TrimSpace(raw) == "" {
			return "", errors.New("a value is required")
		}
		return raw, nil
	}
}

// IntRange accepts integers in [lo, hi].
func IntRange(lo, hi int) Validator[int] {
	return func(raw string) (int, error) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%q is not a whole number", raw)
		}
		if n < lo || n > hi {
			return 0, fmt.Errorf("%d is not between %d and %d", n, lo, hi)
		}
		return n, nil
	}
}

// OneOf accepts only the listed options (case-sensitive).
func OneOf(options ...string) Validator[string] {
	return func(raw string) (string, error) {
		if !slices.Contains(options, raw) {
			return "", fmt.Errorf("%q is not one of: %s", raw, strings.Join(options, ", "))
		}
		return raw, nil
	}
}

// Check builds a validator from a parser and a predicate. Inputs that fail
// to parse or fail the predicate are rejected with reason.
//
// Example:
//
//	even := input.Check(input.Int, func(n int) bool { return n%2 == 0 }, "must be even")
func Check[T any](parse func(string) (T, error), ok func(T) bool, reason string) Validator[T] {
	return func(raw string) (T, error) {
		var zero T
		v, err := parse(raw)
		if err != nil {
			return zero, fmt.Errorf("could not parse %q: %s", raw, reason)
		}
		if !ok(v) {
			return zero, errors.New(reason)
		}
		return v, nil
	}
}

// All accepts input only when every validator does. The first rejection
// is the one reported.
func All(validators ...Validator[string]) Validator[string] {
	return func(raw string) (string, error) {
		for _, v := range validators {
			if _, err := v(raw); err != nil {
				return "", err
			}
		}
		return raw, nil
	}
}

// Raw adapts a validator that parses into T so that it returns the input
// text unchanged once accepted.
func Raw[T any](v Validator[T]) Validator[string] {
	return func(raw string) (string, error) {
		if _, err := v(raw); err != nil {
			return "", err
		}
		return raw, nil
	}
}
