// Package commands defines the acctkeep CLI and wires dependencies for subcommands.
//
// Commands
//
//   - list     Print every stored account with its index
//   - show     Print one account as JSON
//   - add      Append an account
//   - update   Replace the account at an index
//   - remove   Delete the account at an index
//   - watch    Print the list again whenever the stored file changes
//
// # Implementation
//
// The root command resolves the home directory and configuration, then builds
// the dependency graph (logger, backend, account store) before any subcommand
// runs. Indices are positions in the current list and shift after removals.
package commands
