// Package app wires application dependencies for the CLI.
//
// It loads Config from the home directory and environment, then builds the
// logger, the key/value backend and the account store, exposing them via
// the Wire struct for commands to use.
package app
