package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/simonhull/clytia"
	"github.com/simonhull/clytia/exec"
	"github.com/simonhull/clytia/internal/config"
	"github.com/simonhull/clytia/internal/logging"
	"github.com/simonhull/clytia/output"
	"github.com/simonhull/clytia/terminal"
)

// Exit statuses returned by ExitCode.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitCancelled = 130
)

// app is everything a subcommand needs, built once per invocation.
type app struct {
	cfg    *config.Config
	cli    *clytia.Clytia
	exec   *exec.Executor
	logger *log.Logger

	closeLog func() error
}

type appKey struct{}

func appFrom(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("command was not initialised by the root command")
	}
	a, ok := ctx.Value(appKey{}).(*app)
	if !ok {
		return nil, errors.New("command was not initialised by the root command")
	}
	return a, nil
}

// RootCmd creates and returns the root command for the clytia CLI
func RootCmd() *cobra.Command {
	var (
		verbose bool
		plain   bool
		cfgFile string
		envFile string
	)

	cmd := &cobra.Command{
		Use:   "clytia",
		Short: "Colourful interactive prompts for the command line",
		Long: `Clytia asks questions in the terminal and prints the answers.

Use it from shell scripts, or try out the Go library it is built on:
• Validated and parsed input with defaults
• Multichoice and single-choice selectors with keyboard navigation
• Spinners and progress bars around long-running work

Prompts are drawn on stderr; answers are printed on stdout, so
$(clytia choose a b c) captures only the selection.`,
		Version:       clytia.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		output.SetVerbose(verbose)

		if err := config.LoadEnv(envFile); err != nil {
			return err
		}

		v := config.New()
		if err := v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level")); err != nil {
			return err
		}
		if err := v.BindPFlag("log.file", cmd.PersistentFlags().Lookup("log-file")); err != nil {
			return err
		}

		cfg, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}

		term := terminal.New(c.InOrStdin(), c.ErrOrStderr(), cfg.TerminalOptions(plain))

		logger, closeFn, err := logging.Configure(term, cfg.Log.Level, cfg.Log.File)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}

		cli := clytia.From(term, &clytia.Options{
			Input:    cfg.InputOptions(logger),
			Selector: cfg.SelectorOptions(logger),
			Spinner:  cfg.SpinnerOptions(logger),
			Logger:   logger,
		})
		output.SetDefault(cli.Output)
		output.Verbose(fmt.Sprintf("Loaded config (selector.edge=%s, spinner.style=%s)", cfg.Selector.Edge, cfg.Spinner.Style))

		a := &app{
			cfg: cfg,
			cli: cli,
			exec: exec.NewExecutor(&exec.Options{
				Terminal: term,
				Stdout:   c.OutOrStdout(),
				Stderr:   term,
				Spinner:  cfg.SpinnerOptions(logger),
				Logger:   logger,
			}),
			logger:   logger,
			closeLog: closeFn,
		}
		c.SetContext(context.WithValue(c.Context(), appKey{}, a))
		return nil
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colours")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./clytia.yml or ~/.config/clytia/clytia.yml)")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Load environment variables from this file if it exists")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-file", "", "Append logs to this file instead of stderr")

	return cmd
}

// NewApp creates the root command with every subcommand registered.
func NewApp() *cobra.Command {
	root := RootCmd()
	root.AddCommand(AskCmd())
	root.AddCommand(InputCmd())
	root.AddCommand(ConfirmCmd())
	root.AddCommand(ChooseCmd())
	root.AddCommand(MenuCmd())
	root.AddCommand(SpinCmd())
	root.AddCommand(ProgressCmd())
	root.AddCommand(RunCmd())
	root.AddCommand(ConfigCmd())
	return root
}

// Execute runs root and closes the log file the root command opened,
// whether or not the command succeeded.
func Execute(ctx context.Context, root *cobra.Command) error {
	c, err := root.ExecuteContextC(ctx)
	return release(c, err)
}

func release(c *cobra.Command, err error) error {
	if c == nil {
		return err
	}
	a, aerr := appFrom(c)
	if aerr != nil {
		return err
	}
	if cerr := a.closeLog(); cerr != nil && err == nil {
		return fmt.Errorf("failed to close log: %w", cerr)
	}
	return err
}

// ExitCode maps an error returned by a command to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, clytia.ErrCancelled):
		return ExitCancelled
	default:
		return ExitError
	}
}
