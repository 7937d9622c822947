// Package commands implements the number-converter command line.
//
// Without a subcommand the desktop form is launched. The convert and
// modes subcommands expose the same conversion core for scripts.
package commands
