// Package output prints styled status lines for command-line tools.
//
// # Usage
//
// Create a Printer over a terminal, or use the package-level functions,
// which write to a default Printer over stderr:
//
//	output.Success("Operation completed!")
//	output.Info("Next steps:")
//	output.Step("clytia spin")
//	output.Error("Something went wrong")
//
// # Verbose Mode
//
// Enable verbose output for debugging:
//
//	output.SetVerbose(true)
//	output.Verbose("This only prints in verbose mode")
//
// # Styling
//
// Colours come from the terminal's theme:
//
//   - Success: ✔ success colour, bold
//   - Error: ✗ failure colour, bold
//   - Info: ℹ hint colour
//   - Step: indented, muted
//   - Verbose: 🔍 muted (when enabled)
package output
