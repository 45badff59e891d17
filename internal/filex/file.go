// Package filex holds the line-oriented file helpers used by the roster file
// repository: read every line, append lines, and make sure a parent directory
// exists.
package filex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EnsureParentDir creates the directory that will hold path, if any.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadLines returns every line of the file at path with surrounding
// whitespace trimmed. Blank lines are kept so line numbers stay meaningful.
// Lines have no length limit; judging their content is left to the caller.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	lines := make([]string, 0)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimSpace(line))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
}

// AppendLines appends lines to the file at path, creating it if needed.
//
// If the file is new or empty and header is not empty, header is written
// first. If the existing content does not end in a newline, one is added so
// the first appended line starts on its own line.
func AppendLines(path, header string, lines ...string) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	var b strings.Builder
	prefix, err := appendPrefix(f, header)
	if err != nil {
		_ = f.Close()
		return err
	}
	b.WriteString(prefix)
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(f, b.String()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func appendPrefix(f *os.File, header string) (string, error) {
	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", f.Name(), err)
	}

	if fi.Size() == 0 {
		if header == "" {
			return "", nil
		}
		return header + "\n", nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, fi.Size()-1); err != nil {
		return "", fmt.Errorf("read %s: %w", f.Name(), err)
	}
	if last[0] != '\n' {
		return "\n", nil
	}
	return "", nil
}
