package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/roster/internal/roster/models"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const (
	separator = "======================================"
	nameWidth = 28
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	okColor      = color.New(color.FgGreen, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)
)

func formatSalary(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

func printHeading(w io.Writer, c *color.Color, title string) {
	fmt.Fprintln(w)
	c.Fprintf(w, "*** %s ***\n", title)
	fmt.Fprintln(w, separator)
}

// printTop renders the numbered sort-and-list block.
func printTop(w io.Writer, rs []models.Record) {
	printHeading(w, headingColor, fmt.Sprintf("Top %d Sorted Employees", len(rs)))
	for i, r := range rs {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.FullName())
		fmt.Fprintf(w, "   Position: %s\n", r.Position)
		fmt.Fprintf(w, "   Department: %s\n", r.Department)
		fmt.Fprintln(w, "--------------------------------------")
	}
}

// printList renders one aligned summary line per record.
func printList(w io.Writer, rs []models.Record) {
	printHeading(w, headingColor, fmt.Sprintf("All Employees (%d)", len(rs)))
	for i, r := range rs {
		name := runewidth.FillRight(runewidth.Truncate(r.FullName(), nameWidth, "…"), nameWidth)
		fmt.Fprintf(w, "%4d. %s %s (%s) - %s\n", i+1, name, r.JobTitle, r.Department, r.Company)
	}
}

// printDetails renders every field of r under title.
func printDetails(w io.Writer, c *color.Color, title string, r models.Record) {
	printHeading(w, c, title)
	fmt.Fprintf(w, "Name: %s\n", r.FullName())
	fmt.Fprintf(w, "Gender: %s\n", r.Gender)
	fmt.Fprintf(w, "Email: %s\n", r.Email)
	fmt.Fprintf(w, "Salary: %s\n", formatSalary(r.Salary))
	fmt.Fprintf(w, "Department: %s\n", r.Department)
	fmt.Fprintf(w, "Position: %s\n", r.Position)
	fmt.Fprintf(w, "Job Title: %s\n", r.JobTitle)
	fmt.Fprintf(w, "Company: %s\n", r.Company)
	fmt.Fprintln(w, separator)
}

func printNotFound(w io.Writer, query string) {
	failColor.Fprintf(w, "!!! Employee %q not found !!!\n", query)
}
