package model

type BenefitsCostResult struct {
	EmployeeCost          float64 `json:"employeeCost"`
	DependentsCost        float64 `json:"dependentsCost"`
	DiscountAmount        float64 `json:"discountAmount"`
	TotalAnnualCost       float64 `json:"totalAnnualCost"`
	PerPaycheckAmount     float64 `json:"perPaycheckAmount"`
	BaseSalaryPerPaycheck float64 `json:"baseSalaryPerPaycheck"`
	AnnualSalary          float64 `json:"annualSalary"`
	NetPayPerPaycheck     float64 `json:"netPayPerPaycheck"`
}

// OrgTotals aggregates benefit costs across every employee.
// TotalBenefitsCost is kept for callers that still read the older name and
// always carries the same value as TotalAnnualCost.
type OrgTotals struct {
	TotalEmployees      int     `json:"totalEmployees"`
	TotalDependents     int     `json:"totalDependents"`
	TotalEmployeeCost   float64 `json:"totalEmployeeCost"`
	TotalDependentsCost float64 `json:"totalDependentsCost"`
	TotalDiscountAmount float64 `json:"totalDiscountAmount"`
	TotalAnnualCost     float64 `json:"totalAnnualCost"`
	TotalBenefitsCost   float64 `json:"totalBenefitsCost"`
}

type EmployeeCost struct {
	Employee   Employee           `json:"employee"`
	Dependents []Dependent        `json:"dependents"`
	Cost       BenefitsCostResult `json:"cost"`
}
