// Package benefits computes flat-rate benefit costs for employees and their
// dependents. Every function here is pure and safe for concurrent use.
//
// Benefit selections never affect the price: only the presence of an
// employee or dependent record does.
package benefits

import (
	"strings"

	"github.com/cpeele00/employee-benefits/internal/model"
)

const (
	EmployeeAnnualCost    = 1000.0
	DependentAnnualCost   = 500.0
	DiscountRate          = 0.10
	PaychecksPerYear      = 26
	BaseSalaryPerPaycheck = 2000.0
	AnnualSalary          = BaseSalaryPerPaycheck * PaychecksPerYear

	discountPrefix = "a"
)

// discountFor returns the discount applied to one person's base cost.
func discountFor(baseCost float64, firstName string) float64 {
	if strings.HasPrefix(strings.ToLower(firstName), discountPrefix) {
		return baseCost * DiscountRate
	}
	return 0
}

type breakdown struct {
	employeeCost   float64
	dependentsCost float64
	discount       float64
}

func (b breakdown) total() float64 {
	return b.employeeCost + b.dependentsCost - b.discount
}

func breakdownFor(employee *model.Employee, dependents []model.Dependent) breakdown {
	b := breakdown{
		employeeCost: EmployeeAnnualCost,
		discount:     discountFor(EmployeeAnnualCost, employee.FirstName),
	}

	for _, d := range dependents {
		b.dependentsCost += DependentAnnualCost
		b.discount += discountFor(DependentAnnualCost, d.FirstName)
	}

	return b
}

// CalculateEmployeeBenefitsCost returns the annual and per-paycheck cost for
// one employee. A nil employee or a nil dependents slice yields a zero
// result; an empty non-nil slice means the employee has no dependents.
func CalculateEmployeeBenefitsCost(employee *model.Employee, dependents []model.Dependent) model.BenefitsCostResult {
	if employee == nil || dependents == nil {
		return model.BenefitsCostResult{}
	}

	b := breakdownFor(employee, dependents)
	total := b.total()
	perPaycheck := total / PaychecksPerYear

	return model.BenefitsCostResult{
		EmployeeCost:          b.employeeCost,
		DependentsCost:        b.dependentsCost,
		DiscountAmount:        b.discount,
		TotalAnnualCost:       total,
		PerPaycheckAmount:     perPaycheck,
		BaseSalaryPerPaycheck: BaseSalaryPerPaycheck,
		AnnualSalary:          AnnualSalary,
		NetPayPerPaycheck:     BaseSalaryPerPaycheck - perPaycheck,
	}
}

// CalculateTotalEmployeeBenefitsCost sums benefit costs across every group.
func CalculateTotalEmployeeBenefitsCost(groups []model.EmployeeWithDependents) model.OrgTotals {
	var totals model.OrgTotals

	for i := range groups {
		b := breakdownFor(&groups[i].Employee, groups[i].Dependents)
		totals.TotalDependents += len(groups[i].Dependents)
		totals.TotalEmployeeCost += b.employeeCost
		totals.TotalDependentsCost += b.dependentsCost
		totals.TotalDiscountAmount += b.discount
	}

	totals.TotalEmployees = len(groups)
	totals.TotalAnnualCost = totals.TotalEmployeeCost + totals.TotalDependentsCost - totals.TotalDiscountAmount
	totals.TotalBenefitsCost = totals.TotalAnnualCost

	return totals
}
