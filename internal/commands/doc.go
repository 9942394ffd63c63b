// Package commands implements the clytia CLI's cobra commands.
//
// Every subcommand gets its terminal, prompts and configuration from the
// root command's PersistentPreRunE, so subcommands must be added to a root
// created by RootCmd (NewApp does this).
package commands
