// Package roster joins the flat employee and dependent collections returned
// by the data source.
package roster

import (
	"slices"

	"github.com/cpeele00/employee-benefits/internal/model"
)

// Group pairs every employee with the dependents whose EmployeeID matches its
// ID. Employees and dependents keep their input order. An employee with no
// dependents gets an empty, non-nil slice. Dependents without a matching
// employee are left out.
func Group(employees []model.Employee, dependents []model.Dependent) []model.EmployeeWithDependents {
	byEmployee := make(map[string][]model.Dependent, len(employees))
	for _, d := range dependents {
		if d.EmployeeID == "" {
			continue
		}
		byEmployee[d.EmployeeID] = append(byEmployee[d.EmployeeID], d)
	}

	groups := make([]model.EmployeeWithDependents, 0, len(employees))
	for _, e := range employees {
		var deps []model.Dependent
		if e.ID != "" {
			deps = slices.Clone(byEmployee[e.ID])
		}
		if deps == nil {
			deps = []model.Dependent{}
		}
		groups = append(groups, model.EmployeeWithDependents{Employee: e, Dependents: deps})
	}
	return groups
}

// Unmatched returns the indices, in ascending order, of the dependents that
// Group leaves out.
func Unmatched(employees []model.Employee, dependents []model.Dependent) []int {
	known := make(map[string]struct{}, len(employees))
	for _, e := range employees {
		if e.ID != "" {
			known[e.ID] = struct{}{}
		}
	}

	var out []int
	for i, d := range dependents {
		if _, ok := known[d.EmployeeID]; !ok {
			out = append(out, i)
		}
	}
	return out
}
