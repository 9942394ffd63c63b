package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/simonhull/clytia/choose"
)

// ChooseCmd creates the 'choose' command: pick any number of options
func ChooseCmd() *cobra.Command {
	var (
		selected []string
		indices  bool
	)

	cmd := &cobra.Command{
		Use:   "choose [options...]",
		Short: "Pick any number of options",
		Long: `Shows a list of options. Move with ↑/↓ (or k/j), toggle with space,
toggle everything with a, confirm with enter, cancel with esc.

The chosen options are printed one per line.

Example:
  clytia choose cats dogs birds --selected dogs`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			choices := make([]choose.Choice, len(args))
			for i, label := range args {
				choices[i] = choose.Choice{Label: label, Selected: slices.Contains(selected, label)}
			}

			sel, err := a.cli.Selector.Multi(cmd.Context(), choices)
			if err != nil {
				return err
			}

			for i, label := range sel.Labels {
				if indices {
					fmt.Fprintln(cmd.OutOrStdout(), sel.Indices[i])
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), label)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&selected, "selected", nil, "Options that start out selected")
	cmd.Flags().BoolVar(&indices, "indices", false, "Print positions instead of labels")

	return cmd
}

// MenuCmd creates the 'menu' command: pick exactly one option
func MenuCmd() *cobra.Command {
	var index bool

	cmd := &cobra.Command{
		Use:   "menu [options...]",
		Short: "Pick one option",
		Long: `Shows a list of options and prints the one confirmed with enter.

Example:
  clytia menu small medium large`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			i, label, err := a.cli.Selector.One(cmd.Context(), args)
			if err != nil {
				return err
			}

			if index {
				fmt.Fprintln(cmd.OutOrStdout(), i)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&index, "index", false, "Print the position instead of the label")

	return cmd
}
