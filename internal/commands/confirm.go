package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrDeclined is returned by 'confirm' when the answer is no.
var ErrDeclined = errors.New("declined")

// ConfirmCmd creates the 'confirm' command
func ConfirmCmd() *cobra.Command {
	var (
		defaultYes  bool
		printResult bool
	)

	cmd := &cobra.Command{
		Use:   "confirm [question]",
		Short: "Ask a yes/no question",
		Long: `Asks a yes/no question. Exits 0 for yes and 1 for no, so it can guard
shell commands:

  clytia confirm "Deploy now?" && make deploy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			ok, err := a.cli.Confirm(cmd.Context(), args[0], defaultYes)
			if err != nil {
				return err
			}
			if printResult {
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				return nil
			}
			if !ok {
				return ErrDeclined
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&defaultYes, "yes", "y", false, "Default to yes when nothing is entered")
	cmd.Flags().BoolVar(&printResult, "print", false, "Print true/false instead of using the exit status")

	return cmd
}
