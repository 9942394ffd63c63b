// Package clytia provides colourful, interactive command-line prompts:
// validated and parsed input, multichoice and single-choice selectors,
// spinners and progress bars.
//
// A Clytia bundles one terminal with every primitive, so they all share
// a single serialized output:
//
//	cli := clytia.Default()
//
//	name, err := cli.Text(ctx, "What is your name?", "")
//	age, err := clytia.ValidatedInput(ctx, cli, "How old are you?", "0-150",
//	    strconv.Atoi, func(n int) bool { return n >= 0 && n <= 150 })
//	pets, err := clytia.Multichoice(ctx, cli, []string{"cats", "dogs", "birds"})
//	err = cli.StaticSpinner(ctx, "Saving", save)
//
// Any prompt the user cancels (Ctrl-C, Esc, end of input or a cancelled
// context) returns an error matching ErrCancelled.
//
// The building blocks live in their own packages and can be used directly:
// terminal, input, choose, spinner, output and exec.
package clytia
