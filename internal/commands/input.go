package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/clytia"
	"github.com/simonhull/clytia/input"
)

// InputCmd creates the 'input' command: a single typed question with an
// optional default
func InputCmd() *cobra.Command {
	var (
		kind         string
		defaultValue string
	)

	cmd := &cobra.Command{
		Use:   "input [question]",
		Short: "Ask once and parse the answer",
		Long: `Asks a question once and parses the answer as the requested type.

An empty answer uses --default; without one it is an error. An answer
that doesn't parse is an error too.

Examples:
  clytia input "How many workers" --type int --default 4
  clytia input "Ratio" --type float`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			var def *string
			if cmd.Flags().Changed("default") {
				def = &defaultValue
			}

			var answer any
			switch kind {
			case "string":
				answer, err = parsed(cmd.Context(), a.cli, args[0], def, input.String)
			case "int":
				answer, err = parsed(cmd.Context(), a.cli, args[0], def, input.Int)
			case "float":
				answer, err = parsed(cmd.Context(), a.cli, args[0], def, input.Float)
			case "bool":
				answer, err = parsed(cmd.Context(), a.cli, args[0], def, input.Bool)
			default:
				return fmt.Errorf("unknown type %q (available: string, int, float, bool)", kind)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "string", "Answer type: string, int, float, bool")
	cmd.Flags().StringVarP(&defaultValue, "default", "d", "", "Answer used when nothing is entered")

	return cmd
}

// parsed converts the textual default with parse before asking, so an
// invalid --default is reported up front
func parsed[T any](ctx context.Context, cli *clytia.Clytia, question string, def *string, parse func(string) (T, error)) (T, error) {
	var typedDef *T
	if def != nil {
		v, err := parse(*def)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("invalid --default: %w", &input.ParseError{Input: *def, Err: err})
		}
		typedDef = &v
	}
	return clytia.ParsedInput(ctx, cli, question, typedDef, parse)
}
