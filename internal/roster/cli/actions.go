package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/roster/config"
	"github.com/dmitrijs2005/roster/internal/roster/importexport"
	"github.com/dmitrijs2005/roster/internal/roster/models"
)

// SortAndList sorts the roster by full name and prints the first TopN records.
func (a *App) SortAndList(ctx context.Context) error {
	printTop(a.out, a.service.Top(a.config.TopN))
	return nil
}

// ListAll prints every record in current order.
func (a *App) ListAll(ctx context.Context) error {
	printList(a.out, a.service.All())
	return nil
}

// Search prompts for a full name and prints the matching record.
// A miss is reported to the user and is not an error.
func (a *App) Search(ctx context.Context) error {
	query, err := GetSimpleText(a.reader, "Enter the full name to search (First and Last name): ", a.out)
	if err != nil {
		return err
	}
	if err := a.SearchFor(ctx, query); err != nil && !errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return nil
}

// SearchFor prints the record matching query, or returns an error wrapping
// common.ErrorNotFound after telling the user.
func (a *App) SearchFor(ctx context.Context, query string) error {
	r, ok := a.service.Search(query)
	if !ok {
		printNotFound(a.out, strings.TrimSpace(query))
		return fmt.Errorf("%q: %w", strings.TrimSpace(query), common.ErrorNotFound)
	}
	printDetails(a.out, okColor, "Employee Found!", r)
	return nil
}

// Add prompts for a new record, stores it and appends it to the roster file.
func (a *App) Add(ctx context.Context) error {
	r, err := a.inputRecord(ctx)
	if err != nil {
		return err
	}

	if err := a.service.Add(ctx, r); err != nil {
		if !errors.Is(err, common.ErrorNotPersisted) {
			return err
		}
		failColor.Fprintln(a.out, "Warning: the employee was added for this session but could not be saved.")
	}

	printDetails(a.out, okColor, "Employee added successfully!", r)
	return nil
}

// Generate creates one random record and persists it.
func (a *App) Generate(ctx context.Context) error {
	return a.GenerateN(ctx, 1)
}

// GenerateN creates n random records, persists them and prints each one.
func (a *App) GenerateN(ctx context.Context, n int) error {
	rs, err := a.service.Generate(ctx, n)
	if err != nil && !errors.Is(err, common.ErrorNotPersisted) {
		return err
	}
	if err != nil {
		failColor.Fprintln(a.out, "Warning: generated employees are kept for this session only.")
	}

	for _, r := range rs {
		printDetails(a.out, headingColor, "Random Employee Generated", r)
	}
	return nil
}

// inputRecord prompts for the nine fields in file order. In select mode the
// gender, department and position come from numbered menus; in free mode
// every field is typed. Once ctx is cancelled no further field is read.
func (a *App) inputRecord(ctx context.Context) (models.Record, error) {
	var r models.Record
	var err error

	text := a.textField
	if a.config.AddMode == config.AddModeFree {
		text = a.freeField
	}
	choose := func(title string, options []string, prompt string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if a.config.AddMode == config.AddModeFree {
			return a.freeField(ctx, prompt)
		}
		return GetOption(a.reader, title, options, a.out)
	}

	if r.FirstName, err = text(ctx, "First Name: "); err != nil {
		return r, err
	}
	if r.LastName, err = text(ctx, "Last Name: "); err != nil {
		return r, err
	}
	if r.Gender, err = choose("Select Gender:", a.catalog.Genders, "Gender: "); err != nil {
		return r, err
	}
	if r.Email, err = text(ctx, "Email: "); err != nil {
		return r, err
	}
	if r.Salary, err = a.salaryField(ctx); err != nil {
		return r, err
	}
	if r.Department, err = choose("Select Department:", a.catalog.Departments, "Department: "); err != nil {
		return r, err
	}
	if r.Position, err = choose("Select Position:", a.catalog.Positions, "Position: "); err != nil {
		return r, err
	}
	if r.JobTitle, err = text(ctx, "Job Title: "); err != nil {
		return r, err
	}
	if r.Company, err = text(ctx, "Company: "); err != nil {
		return r, err
	}

	return r, nil
}

func (a *App) textField(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s, err := GetNonEmptyText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	a.warnSeparator(ctx, prompt, s)
	return s, nil
}

func (a *App) freeField(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	a.warnSeparator(ctx, prompt, s)
	return s, nil
}

// salaryField reads a salary; unparseable text becomes 0.
func (a *App) salaryField(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s, err := GetSimpleText(a.reader, "Salary: ", a.out)
	if err != nil {
		return 0, err
	}
	v, err := importexport.ParseSalary(s)
	if err != nil {
		a.log.Warn(ctx, "invalid salary input, using 0", "input", s)
		fmt.Fprintln(a.out, "Invalid salary input. Setting salary to 0.0.")
		return 0, nil
	}
	return v, nil
}

// warnSeparator flags values that the roster file cannot store faithfully.
func (a *App) warnSeparator(ctx context.Context, prompt, value string) {
	if strings.Contains(value, importexport.Separator) {
		a.log.Warn(ctx, "value contains a comma and will be split when the roster is reloaded",
			"field", strings.TrimSuffix(prompt, ": "), "value", value)
	}
}
