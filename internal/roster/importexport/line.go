// Package importexport maps between one flat comma-separated line and a
// models.Record.
//
// The format has no quoting or escaping: a comma inside a field value splits
// that field and corrupts the positional mapping. Values are written as-is.
package importexport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/roster/internal/roster/models"
)

// FieldCount is the minimum number of comma-separated fields in a record line.
const FieldCount = 9

// Separator splits fields on a line.
const Separator = ","

// Header is the first line of a roster file.
const Header = "firstName,lastName,gender,email,salary,department,position,jobTitle,company"

var (
	// ErrTooFewFields means no record could be produced from the line.
	ErrTooFewFields = errors.New("too few fields")

	// ErrInvalidSalary is returned together with a usable record whose salary
	// was defaulted to 0.
	ErrInvalidSalary = errors.New("invalid salary")
)

// ParseLine converts a line into a Record. Every field is trimmed; fields past
// the ninth are ignored.
//
// On ErrTooFewFields the returned Record is the zero value and must not be
// used. On ErrInvalidSalary the Record is fully populated with Salary 0 and
// may be kept; the error only carries the diagnostic.
func ParseLine(line string) (models.Record, error) {
	parts := strings.Split(line, Separator)
	if len(parts) < FieldCount {
		return models.Record{}, fmt.Errorf("%w: got %d, need %d", ErrTooFewFields, len(parts), FieldCount)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	r := models.Record{
		FirstName:  parts[0],
		LastName:   parts[1],
		Gender:     parts[2],
		Email:      parts[3],
		Department: parts[5],
		Position:   parts[6],
		JobTitle:   parts[7],
		Company:    parts[8],
	}

	salary, err := ParseSalary(parts[4])
	if err != nil {
		return r, fmt.Errorf("%w for %s", err, r.FullName())
	}
	r.Salary = salary

	return r, nil
}

// FormatLine joins the nine fields of r in file order. Salary uses the
// shortest decimal representation that parses back to the same value.
func FormatLine(r models.Record) string {
	return strings.Join([]string{
		r.FirstName,
		r.LastName,
		r.Gender,
		r.Email,
		FormatSalary(r.Salary),
		r.Department,
		r.Position,
		r.JobTitle,
		r.Company,
	}, Separator)
}

// FormatSalary renders a salary the way FormatLine writes it.
func FormatSalary(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseSalary parses user-entered salary text. Unparseable input yields 0 and
// ErrInvalidSalary.
func ParseSalary(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidSalary, s)
	}
	return v, nil
}
