package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// execIface defines the action surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	SortAndList(ctx context.Context) error
	ListAll(ctx context.Context) error
	Search(ctx context.Context) error
	Add(ctx context.Context) error
	Generate(ctx context.Context) error
}

// runREPL prints the menu, reads a choice and dispatches it until the user
// picks Exit, input ends, or ctx is cancelled.
//
// A choice is a menu number or a command word ("sort", "list", "search",
// "add", "generate", "exit"). Anything else prints a hint and the menu is
// shown again.
//
// Errors returned by actions are reported and the loop continues; no action
// failure ends the session.
func runREPL(ctx context.Context, a execIface, r *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		printMenu(w)
		line, err := GetSimpleText(r, "Enter your choice: ", w)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		if line == "" {
			continue
		}

		opt, ok := parseChoice(line)
		if !ok {
			fmt.Fprintf(w, "Invalid option. Please enter a number between %d and %d.\n", int(OptionSort), int(OptionExit))
			continue
		}

		var actErr error
		switch opt {
		case OptionSort:
			actErr = a.SortAndList(ctx)
		case OptionList:
			actErr = a.ListAll(ctx)
		case OptionSearch:
			actErr = a.Search(ctx)
		case OptionAdd:
			actErr = a.Add(ctx)
		case OptionGenerate:
			actErr = a.Generate(ctx)
		case OptionExit:
			fmt.Fprintln(w, "Exiting program. Goodbye!")
			return
		}

		if actErr != nil {
			fmt.Fprintf(w, "error: %v\n", actErr)
		}
	}
}
