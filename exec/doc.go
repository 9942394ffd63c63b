// Package exec runs external commands on a terminal, optionally behind a
// spinner.
//
// # Basic Usage
//
// Create an executor and run commands:
//
//	executor := exec.NewExecutor(nil)
//	err := executor.Run(ctx, "echo", "Hello, World!")
//
// # Spinners
//
// RunWithSpinner shows a spinner while the command runs. Whatever the
// command prints is streamed above the spinner line, prefixed so it reads
// as the command's output:
//
//	err := executor.RunWithSpinner(ctx, "Running tests", "go", "test", "./...")
//
//	  │ ok  	example.com/pkg	0.012s
//	✔ Running tests
//
// # Builder
//
// Command is a fluent alternative for one-off invocations:
//
//	err := exec.NewCommand(executor, "git").
//	    WithArgs("pull").
//	    WithDir(repo).
//	    WithSpinner("Updating").
//	    Run(ctx)
//
// Cancelling the context kills the process. The returned error matches
// terminal.ErrCancelled.
package exec
