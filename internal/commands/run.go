package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/clytia/exec"
)

// RunCmd creates the 'run' command: an external command behind a spinner
func RunCmd() *cobra.Command {
	var (
		message string
		dir     string
		env     []string
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "run [flags] -- command [args...]",
		Short: "Run a command behind a spinner",
		Long: `Runs a command while showing a spinner. The command's output is
printed above the spinner as it arrives.

Example:
  clytia run --message "Running tests" -- go test ./...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			if message == "" {
				message = strings.Join(args, " ")
			}

			run := exec.NewCommand(a.exec, args[0]).
				WithArgs(args[1:]...).
				WithEnv(env...).
				WithDir(dir)
			if quiet {
				return run.Run(cmd.Context())
			}
			return run.WithSpinner(message).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Spinner text (default: the command line)")
	cmd.Flags().StringVar(&dir, "dir", "", "Working directory")
	cmd.Flags().StringArrayVarP(&env, "env", "e", nil, "Extra environment variable, KEY=VALUE (repeatable)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Run without a spinner, passing output straight through")
	// Everything after the command name belongs to the command.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
