package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/clytia/input"
)

// AskCmd creates the 'ask' command: a question that repeats until the
// answer is valid
func AskCmd() *cobra.Command {
	var (
		requirements string
		defaultValue string
		notEmpty     bool
		oneOf        []string
		intRange     string
	)

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask until the answer passes validation",
		Long: `Asks a question and repeats it, showing the reason, until the answer
is valid. The accepted answer is printed on stdout.

Examples:
  clytia ask "Your name" --not-empty
  clytia ask "Pick a number" --range 1:10
  clytia ask "Colour" --one-of red,green,blue --default red`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			validators := []input.Validator[string]{}
			hints := []string{}
			if notEmpty {
				validators = append(validators, input.NotEmpty())
				hints = append(hints, "not empty")
			}
			if len(oneOf) > 0 {
				validators = append(validators, input.OneOf(oneOf...))
				hints = append(hints, strings.Join(oneOf, "/"))
			}
			if intRange != "" {
				lo, hi, err := parseRange(intRange)
				if err != nil {
					return err
				}
				validators = append(validators, input.Raw(input.IntRange(lo, hi)))
				hints = append(hints, fmt.Sprintf("%d-%d", lo, hi))
			}
			if requirements == "" {
				requirements = strings.Join(hints, ", ")
			}

			answer, err := a.cli.Validated(cmd.Context(), input.Prompt{
				Question:     args[0],
				Default:      defaultValue,
				Requirements: requirements,
			}, input.All(validators...))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&requirements, "requirements", "r", "", "Requirements hint (default: derived from the validation flags)")
	cmd.Flags().StringVarP(&defaultValue, "default", "d", "", "Answer used when nothing is entered")
	cmd.Flags().BoolVar(&notEmpty, "not-empty", false, "Reject empty answers")
	cmd.Flags().StringSliceVar(&oneOf, "one-of", nil, "Only accept one of these values")
	cmd.Flags().StringVar(&intRange, "range", "", "Only accept whole numbers in LO:HI")

	return cmd
}

// parseRange parses "lo:hi" into its bounds
func parseRange(s string) (int, int, error) {
	loStr, hiStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid range %q: expected LO:HI", s)
	}
	lo, err := input.Int(strings.TrimSpace(loStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %w", s, err)
	}
	hi, err := input.Int(strings.TrimSpace(hiStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("invalid range %q: %d is greater than %d", s, lo, hi)
	}
	return lo, hi, nil
}
