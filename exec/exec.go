package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/simonhull/clytia/spinner"
	"github.com/simonhull/clytia/terminal"
)

// OutputPrefix is put in front of every line a command prints while a
// spinner is running.
const OutputPrefix = "  │ "

// Executor runs external commands on a terminal
type Executor struct {
	term        *terminal.Terminal
	stdout      io.Writer
	stderr      io.Writer
	env         []string
	dir         string
	timeout     time.Duration
	showCommand bool
	hideOutput  bool
	spinner     *spinner.Options
	logger      *log.Logger

	// For mocking in tests
	commandFunc func(name string, args ...string) *exec.Cmd
}

// Options configures command execution
type Options struct {
	Terminal    *terminal.Terminal // Where spinners and command lines are drawn; defaults to stdio
	Stdout      io.Writer          // Defaults to the terminal
	Stderr      io.Writer          // Defaults to the terminal
	Env         []string           // Additional environment variables
	Dir         string             // Working directory
	Timeout     time.Duration      // Command timeout
	ShowCommand bool               // Print command before running
	HideOutput  bool               // Discard command output while a spinner runs
	Spinner     *spinner.Options   // Spinner look for RunWithSpinner
	Logger      *log.Logger        // Debug events; discarded when nil
}

// NewExecutor creates an executor with sensible defaults
func NewExecutor(opts *Options) *Executor {
	if opts == nil {
		opts = &Options{}
	}

	t := opts.Terminal
	if t == nil {
		t = terminal.Stdio(nil)
	}

	// Set defaults for nil fields
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = t
	}
	if stderr == nil {
		stderr = t
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Executor{
		term:        t,
		stdout:      stdout,
		stderr:      stderr,
		env:         opts.Env,
		dir:         opts.Dir,
		timeout:     opts.Timeout,
		showCommand: opts.ShowCommand,
		hideOutput:  opts.HideOutput,
		spinner:     opts.Spinner,
		logger:      logger,
		commandFunc: exec.Command, // Can be mocked for tests
	}
}

// Run executes a command, streaming its output to the executor's writers.
// Cancelling ctx kills the process and returns an error matching
// terminal.ErrCancelled.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	return e.run(ctx, e.stdout, e.stderr, name, args...)
}

func (e *Executor) run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := e.commandFunc(name, args...)

	// Set working directory
	if e.dir != "" {
		cmd.Dir = e.dir
	}

	// Set environment
	if len(e.env) > 0 {
		cmd.Env = append(cmd.Environ(), e.env...)
	}

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	line := commandLine(name, args)
	if e.showCommand {
		if err := e.term.Print(e.term.Styles().Muted.Render("$ "+line) + "\n"); err != nil {
			return err
		}
	}
	e.logger.Debug("running command", "cmd", line, "dir", cmd.Dir)

	if err := cmd.Start(); err != nil {
		if isCommandNotFound(err) {
			return enhanceError(err, name)
		}
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		// Wait closes the output pipes; nothing may write after we return.
		<-errCh
		e.logger.Debug("command cancelled", "cmd", line, "err", ctx.Err())
		return fmt.Errorf("%s %w: %w", name, terminal.ErrCancelled, ctx.Err())
	case err := <-errCh:
		if err != nil {
			if isCommandNotFound(err) {
				return enhanceError(err, name)
			}
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return nil
	}
}

// RunWithSpinner runs a command behind a spinner showing message. The
// command's output is printed above the spinner, each line prefixed with
// OutputPrefix, unless HideOutput is set.
func (e *Executor) RunWithSpinner(ctx context.Context, message string, name string, args ...string) error {
	s := spinner.Start(e.term, message, e.spinner)

	var w io.Writer = io.Discard
	var pw *PrefixWriter
	if !e.hideOutput {
		pw = NewPrefixWriter(s.Writer(), OutputPrefix, e.term.Styles().Muted)
		w = pw
	}

	err := e.run(ctx, w, w, name, args...)
	if pw != nil {
		if ferr := pw.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}

	if err != nil {
		_ = s.Fail(message)
		return err
	}
	return s.Success(message)
}

func commandLine(name string, args []string) string {
	parts := []string{name}
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}

// isCommandNotFound checks if an error indicates a command was not found
func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) ||
		// Some systems return different errors
		strings.Contains(err.Error(), "executable file not found") ||
		strings.Contains(err.Error(), "command not found")
}

// enhanceError adds helpful message for missing commands
func enhanceError(err error, cmd string) error {
	return fmt.Errorf("%w\n💡 Command '%s' not found. Please install it and try again", err, cmd)
}

// Command provides a fluent API for building and executing commands
type Command struct {
	executor    *Executor
	command     string
	args        []string
	env         []string
	dir         string
	showSpinner bool
	spinnerMsg  string
}

// NewCommand creates a new command builder
func NewCommand(executor *Executor, command string) *Command {
	return &Command{
		executor: executor,
		command:  command,
		args:     []string{},
	}
}

// WithArgs adds arguments to the command
func (c *Command) WithArgs(args ...string) *Command {
	c.args = append(c.args, args...)
	return c
}

// WithEnv adds environment variables
func (c *Command) WithEnv(env ...string) *Command {
	c.env = append(c.env, env...)
	return c
}

// WithDir sets the working directory
func (c *Command) WithDir(dir string) *Command {
	c.dir = dir
	return c
}

// WithSpinner enables spinner with the given message
func (c *Command) WithSpinner(message string) *Command {
	c.showSpinner = true
	c.spinnerMsg = message
	return c
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	e := *c.executor
	e.env = append(append([]string{}, c.executor.env...), c.env...)
	if c.dir != "" {
		e.dir = c.dir
	}

	if c.showSpinner {
		return e.RunWithSpinner(ctx, c.spinnerMsg, c.command, c.args...)
	}
	return e.Run(ctx, c.command, c.args...)
}

// String returns the command string representation for debugging
func (c *Command) String() string {
	return commandLine(c.command, c.args)
}
