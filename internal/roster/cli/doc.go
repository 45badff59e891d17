// Package cli provides the interactive roster console.
//
// It wires configuration, the record repository, the roster service and a
// numbered-menu REPL. Typical flow: load the roster file, print the menu,
// dispatch the user's choice, repeat until exit or end of input.
//
// Menu actions:
//   - Sort and list the top N records (N from config, default 20)
//   - List all records in current order
//   - Search by full name ("first last", case-insensitive)
//   - Add a record from prompted input (numbered category menus or free text)
//   - Generate a random record and persist it
//   - Exit
//
// Bad input never ends the session: invalid menu choices and option numbers
// are re-prompted, and an unparseable salary becomes 0.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// The same actions back the non-interactive subcommands in cmd/roster.
package cli
