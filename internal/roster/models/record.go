// Package models defines the employee record and the closed category sets
// used by the roster.
package models

import (
	"fmt"
	"strings"
)

// Record is one employee's attribute set. It is a value type: the store keeps
// records by value and hands out copies, so a Record is never mutated after
// construction.
//
// Department and Position are open string tags; the closed sets in Catalog
// are only enforced when strict category validation is enabled.
type Record struct {
	FirstName  string  `json:"first_name" validate:"required"`
	LastName   string  `json:"last_name" validate:"required"`
	Gender     string  `json:"gender" validate:"gender"`
	Email      string  `json:"email"`
	Salary     float64 `json:"salary" validate:"gte=0"`
	Department string  `json:"department" validate:"department"`
	Position   string  `json:"position" validate:"position"`
	JobTitle   string  `json:"job_title"`
	Company    string  `json:"company"`
}

// FullName returns the search and ordering key: trimmed first name, a single
// space, trimmed last name. Comparisons against it are case-insensitive.
func (r Record) FullName() string {
	return strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName)
}

// String renders "First Last - JobTitle (Department) - Company".
func (r Record) String() string {
	return fmt.Sprintf("%s - %s (%s) - %s", r.FullName(), r.JobTitle, r.Department, r.Company)
}
