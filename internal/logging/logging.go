// Package logging configures the CLI's structured logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level, without
// timestamps. An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		if lvl, err = log.ParseLevel(level); err != nil {
			return nil, err
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "clytia",
	})
	logger.SetTimeFormat("")
	return logger, nil
}

// Configure builds the CLI logger. Output goes to w (stderr when nil)
// unless file is set, in which case it is appended to. The returned close
// function must be called once the logger is no longer used.
func Configure(w io.Writer, level, file string) (*log.Logger, func() error, error) {
	out := w
	if out == nil {
		out = os.Stderr
	}
	closeFn := func() error { return nil }

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = f.Close
	}

	logger, err := New(out, level)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}
