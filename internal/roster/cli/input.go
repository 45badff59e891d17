package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The result is trimmed. If EOF occurs after some input was read, the partial
// line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetNonEmptyText repeats the prompt until a non-blank line is entered.
func GetNonEmptyText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(w, "This field cannot be empty. Please enter a valid value.")
	}
}

// GetOption prints a numbered list of options under title and reads a choice
// until it is a number between 1 and len(options). It returns the chosen
// option text.
func GetOption(reader *bufio.Reader, title string, options []string, w io.Writer) (string, error) {
	if len(options) == 0 {
		return "", errors.New("no options to choose from")
	}

	fmt.Fprintln(w, title)
	for i, o := range options {
		fmt.Fprintf(w, "%d. %s\n", i+1, o)
	}

	prompt := fmt.Sprintf("Enter a number between 1 and %d: ", len(options))
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(w, "Invalid input. Please enter a valid number.")
			continue
		}
		if n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		fmt.Fprintf(w, "Invalid option. Please enter a number between 1 and %d.\n", len(options))
	}
}
