// Package generator produces synthetic employee records for demos and tests.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/dmitrijs2005/roster/internal/roster/models"
)

var (
	firstNames = []string{"Abby", "Abdul", "Ada", "Addison", "Adelbert", "Adelina", "Adella", "Adolf", "Adriane", "Alex", "Alice", "Aaron", "Ava", "Vitor", "Hugo", "Tainara", "Carlos"}
	lastNames  = []string{"Lulham", "Siaskowski", "Blinkhorn", "Tamburo", "Ramsey", "Alderton", "Pattle", "Chrispin", "Johnson", "Smith", "Williams"}
	domains    = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "icloud.com", "aol.com", "live.com"}
	jobTitles  = []string{"Java Developer", "HR Specialist", "Finance Analyst", "Marketing Coordinator", "Support Clerk"}
	companies  = []string{"VTR-TECH", "TechCorp", "InfoSphere", "CodeSolutions", "DevsUnited"}
)

const (
	minSalary   = 2500
	salaryRange = 100000
)

// Generator draws records from fixed value pools. Gender, department and
// position come from the catalog, so generated records always pass strict
// validation. Not safe for concurrent use.
type Generator struct {
	rnd     *rand.Rand
	catalog models.Catalog
}

// New returns a Generator. A zero seed picks a random one.
func New(seed uint64, c models.Catalog) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), catalog: c}
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rnd.IntN(len(pool))]
}

// Record returns one random record.
func (g *Generator) Record() models.Record {
	first := g.pick(firstNames)
	last := g.pick(lastNames)

	email := strings.ToLower(fmt.Sprintf("%c%s%d@%s", []rune(first)[0], last, g.rnd.IntN(100), g.pick(domains)))

	return models.Record{
		FirstName:  first,
		LastName:   last,
		Gender:     g.pick(g.catalog.Genders),
		Email:      email,
		Salary:     minSalary + g.rnd.Float64()*salaryRange,
		Department: g.pick(g.catalog.Departments),
		Position:   g.pick(g.catalog.Positions),
		JobTitle:   g.pick(jobTitles),
		Company:    g.pick(companies),
	}
}
