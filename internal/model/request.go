package model

type CalculationRequest struct {
	Employees  []Employee  `json:"employees"`
	Dependents []Dependent `json:"dependents"`
}

// EmployeeCostRequest carries a single employee and its dependents. A missing
// employee or dependents field yields an all-zero result.
type EmployeeCostRequest struct {
	Employee   *Employee   `json:"employee"`
	Dependents []Dependent `json:"dependents"`
}

// PreviewRequest compares the saved state of an employee with an edit that
// has not been saved yet.
type PreviewRequest struct {
	Current  EmployeeWithDependents `json:"current"`
	Proposed EmployeeWithDependents `json:"proposed"`
}
