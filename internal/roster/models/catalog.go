package models

import "slices"

// Catalog lists the closed option sets offered by the interactive add flow
// and enforced by strict category validation.
type Catalog struct {
	Genders     []string
	Departments []string
	Positions   []string
}

// DefaultCatalog returns the built-in option sets.
func DefaultCatalog() Catalog {
	return Catalog{
		Genders: []string{"Male", "Female"},
		Departments: []string{
			"IT Development", "Sales", "HR", "Finance",
			"Marketing", "Accounting", "Operations",
			"Technical Support", "Customer Service", "IT",
		},
		Positions: []string{"Senior", "Middle", "Intern", "Junior", "Contract", "Analista"},
	}
}

func (c Catalog) HasGender(v string) bool     { return slices.Contains(c.Genders, v) }
func (c Catalog) HasDepartment(v string) bool { return slices.Contains(c.Departments, v) }
func (c Catalog) HasPosition(v string) bool   { return slices.Contains(c.Positions, v) }
