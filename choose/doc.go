// Package choose provides keyboard-driven option lists.
//
// # Usage
//
//	s := choose.New(terminal.Stdio(nil), nil)
//
//	// Pick any number of options
//	sel, err := s.Multi(ctx, []choose.Choice{
//	    {Label: "cats"},
//	    {Label: "dogs", Selected: true},
//	})
//
//	// Pick exactly one
//	i, option, err := s.One(ctx, []string{"cats", "dogs", "both"})
//
// # Keys
//
//   - ↑ / k: move up (towards the first option)
//   - ↓ / j: move down (towards the last option)
//   - space / x: toggle the option under the cursor (Multi only)
//   - a: select all, or clear all when everything is selected (Multi only)
//   - enter: confirm
//   - esc / q / ctrl+c: cancel, returning terminal.ErrCancelled
//
// # Edges
//
// By default the cursor wraps: moving down from the last option lands on
// the first. Options.Edge = choose.Clamp makes it stop at either end instead.
//
// The terminal is held exclusively while a list is on screen, so spinners
// and other writers wait until the user answers.
package choose
