package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MenuOption is one entry of the main menu. Values start at 1 and match the
// number the user types.
type MenuOption int

const (
	OptionSort MenuOption = iota + 1
	OptionList
	OptionSearch
	OptionAdd
	OptionGenerate
	OptionExit
)

var menuOptions = []MenuOption{OptionSort, OptionList, OptionSearch, OptionAdd, OptionGenerate, OptionExit}

func (o MenuOption) String() string {
	switch o {
	case OptionSort:
		return "Sort and list top records"
	case OptionList:
		return "List all"
	case OptionSearch:
		return "Search by full name"
	case OptionAdd:
		return "Add employee"
	case OptionGenerate:
		return "Generate random employee"
	case OptionExit:
		return "Exit"
	default:
		return fmt.Sprintf("MenuOption(%d)", int(o))
	}
}

var menuAliases = map[string]MenuOption{
	"sort":     OptionSort,
	"top":      OptionSort,
	"list":     OptionList,
	"l":        OptionList,
	"search":   OptionSearch,
	"find":     OptionSearch,
	"add":      OptionAdd,
	"generate": OptionGenerate,
	"random":   OptionGenerate,
	"exit":     OptionExit,
	"quit":     OptionExit,
}

// parseChoice accepts a menu number or one of the command aliases.
func parseChoice(s string) (MenuOption, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if o, ok := menuAliases[s]; ok {
		return o, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(OptionSort) || n > int(OptionExit) {
		return 0, false
	}
	return MenuOption(n), true
}

func printMenu(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Please select an option:")
	for _, o := range menuOptions {
		fmt.Fprintf(w, "%d. %s\n", int(o), o)
	}
}
