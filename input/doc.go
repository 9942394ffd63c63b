// Package input provides interactive terminal input utilities.
//
// # Overview
//
// A Prompter asks questions on a terminal.Terminal and reads one line per
// answer. Three kinds of question are supported:
//
//	p := input.New(terminal.Stdio(nil), nil)
//
//	// Free text with a default
//	name, err := p.Text(ctx, "Project name", "myapp")
//
//	// Yes/no
//	ok, err := p.Confirm(ctx, "Continue?", true)
//
//	// Ask until the answer is valid
//	n, err := input.Validated(ctx, p, input.Prompt{
//	    Question:     "Pick a number",
//	    Requirements: "1-10",
//	}, input.IntRange(1, 10))
//
// # Validation
//
// A Validator converts the raw line into a value or returns an error whose
// message is shown to the user before asking again. Validators are plain
// functions; build your own or combine a parser with Check:
//
//	port := input.Check(input.Int, func(n int) bool { return n > 1024 }, "must be above 1024")
//
// # Cancellation
//
// Ctrl-C on an interactive terminal, end of input (Ctrl-D, closed pipe) and
// context cancellation all return terminal.ErrCancelled:
//
//	if errors.Is(err, terminal.ErrCancelled) {
//	    return nil // user backed out
//	}
//
// # Styling
//
// Questions use the terminal theme: prompt colour for the question, hint
// colour for defaults and requirements, error colour for rejection reasons.
package input
