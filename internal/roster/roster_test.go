package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpeele00/employee-benefits/internal/model"
)

func TestGroupPreservesOrder(t *testing.T) {
	employees := []model.Employee{
		{ID: "e2", FirstName: "John"},
		{ID: "e1", FirstName: "Alice"},
		{ID: "e3", FirstName: "Mary"},
	}
	dependents := []model.Dependent{
		{ID: "d1", EmployeeID: "e1", FirstName: "Ava"},
		{ID: "d2", EmployeeID: "e2", FirstName: "Jane"},
		{ID: "d3", EmployeeID: "e1", FirstName: "Ben"},
		{ID: "d4", EmployeeID: "missing", FirstName: "Ghost"},
		{ID: "d5", FirstName: "NoParent"},
	}

	groups := Group(employees, dependents)
	require.Len(t, groups, 3)

	assert.Equal(t, "e2", groups[0].Employee.ID)
	assert.Equal(t, []string{"d2"}, ids(groups[0].Dependents))

	assert.Equal(t, "e1", groups[1].Employee.ID)
	assert.Equal(t, []string{"d1", "d3"}, ids(groups[1].Dependents))

	assert.Equal(t, "e3", groups[2].Employee.ID)
	assert.NotNil(t, groups[2].Dependents)
	assert.Empty(t, groups[2].Dependents)
}

func TestGroupEmptyInputs(t *testing.T) {
	assert.Empty(t, Group(nil, nil))

	groups := Group([]model.Employee{{ID: "e1"}}, nil)
	require.Len(t, groups, 1)
	assert.NotNil(t, groups[0].Dependents)
}

func TestGroupEmployeeWithoutID(t *testing.T) {
	groups := Group(
		[]model.Employee{{FirstName: "Draft"}},
		[]model.Dependent{{ID: "d1", FirstName: "Loose"}},
	)
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Dependents)
}

func TestGroupDoesNotShareSlices(t *testing.T) {
	employees := []model.Employee{{ID: "e1"}, {ID: "e1"}}
	dependents := []model.Dependent{{ID: "d1", EmployeeID: "e1", FirstName: "Ava"}}

	groups := Group(employees, dependents)
	groups[0].Dependents[0].FirstName = "Changed"
	assert.Equal(t, "Ava", groups[1].Dependents[0].FirstName)
}

func TestUnmatched(t *testing.T) {
	employees := []model.Employee{{ID: "e1"}}
	dependents := []model.Dependent{
		{ID: "d1", EmployeeID: "e1"},
		{ID: "d2", EmployeeID: "e9"},
		{ID: "d3"},
	}

	assert.Equal(t, []int{1, 2}, Unmatched(employees, dependents))
	assert.Empty(t, Unmatched(employees, dependents[:1]))
}

func ids(deps []model.Dependent) []string {
	out := make([]string, 0, len(deps))
	for _, d := range deps {
		out = append(out, d.ID)
	}
	return out
}
