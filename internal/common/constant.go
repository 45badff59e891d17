// Package common contains shared constants and sentinel errors used across
// roster components.
package common

// DefaultDataFile is the roster file read at startup and appended to on add.
const DefaultDataFile = "Applicants_Form.txt"

// DefaultTopN is how many records the sort-and-list action prints.
const DefaultTopN = 20
