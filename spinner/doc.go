// Package spinner draws background activity indicators: an animated
// spinner next to a line of text, and a single-line progress bar.
//
// Both run on their own goroutine and draw the terminal's status line, so
// anything written through the same terminal (Writer(), output.Printer, a
// logger on the terminal) lands above the animation instead of on top of
// it. Once Stop,
// Success or Fail returns, the goroutine has exited and no further frame
// is drawn.
//
// Run, RunDynamic and Progress wrap a Task and guarantee the indicator is
// stopped on every exit path, panics included.
package spinner
