// Package commands implements the sealchat CLI.
//
// The root command loads configuration, prepares the home directory and wires
// the application before any subcommand runs. Passphrases come from the -p
// flag or an interactive no-echo prompt.
package commands
