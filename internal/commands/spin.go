package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonhull/clytia/spinner"
)

// errSimulated is what --fail makes the demo task return.
var errSimulated = errors.New("simulated failure")

// SpinCmd creates the 'spin' command
func SpinCmd() *cobra.Command {
	var (
		text     string
		duration time.Duration
		style    string
		dynamic  bool
		fail     bool
	)

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Show a spinner for a while",
		Long: `Shows a spinner for --duration, then a ✔ line (or ✗ with --fail).

With --dynamic the text counts down the remaining time.

Examples:
  clytia spin --text "Waiting for 2 seconds" --duration 2s
  clytia spin --style moon --dynamic`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			opts := a.cfg.SpinnerOptions(a.logger)
			if style != "" {
				if opts.Style, err = spinner.Style(style); err != nil {
					return err
				}
				opts.Interval = opts.Style.FPS
			}

			task := func(ctx context.Context) error {
				if err := wait(ctx, duration); err != nil {
					return err
				}
				if fail {
					return errSimulated
				}
				return nil
			}

			if !dynamic {
				return spinner.Run(cmd.Context(), a.cli.Terminal, text, task, opts)
			}

			deadline := time.Now().Add(duration)
			textFn := func() string {
				left := max(time.Until(deadline), 0)
				return fmt.Sprintf("%s (%.1fs left)", text, left.Seconds())
			}
			return spinner.RunDynamic(cmd.Context(), a.cli.Terminal, textFn, task, opts)
		},
	}

	cmd.Flags().StringVar(&text, "text", "Working", "Text shown next to the spinner")
	cmd.Flags().DurationVar(&duration, "duration", 2*time.Second, "How long to spin")
	cmd.Flags().StringVar(&style, "style", "", fmt.Sprintf("Spinner style %v (default from config)", spinner.StyleNames()))
	cmd.Flags().BoolVar(&dynamic, "dynamic", false, "Count down the remaining time in the text")
	cmd.Flags().BoolVar(&fail, "fail", false, "Finish with a failure")

	return cmd
}

// ProgressCmd creates the 'progress' command
func ProgressCmd() *cobra.Command {
	var (
		label    string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Fill a progress bar over a period of time",
		Long: `Shows a progress bar that fills up over --duration.

Example:
  clytia progress --label "Copying" --duration 3s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			progressFn := func() int {
				if duration <= 0 {
					return 100
				}
				return int(time.Since(start) * 100 / duration)
			}

			return a.cli.ProgressBar(cmd.Context(), label, progressFn, func(ctx context.Context) error {
				return wait(ctx, duration)
			})
		},
	}

	cmd.Flags().StringVar(&label, "label", "Progress", "Label shown before the bar")
	cmd.Flags().DurationVar(&duration, "duration", 3*time.Second, "How long until the bar is full")

	return cmd
}

// wait sleeps for d or until ctx is done
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
