// Package commands defines the headless group-creator CLI.
//
// Commands
//
//   - create    Validate a group, run the creation progress and append it to the group log
//   - journal   Print the group log or its location
//
// The root command builds the diagnostic logger from the persistent
// --log-level and --log-format flags before any subcommand runs.
package commands
