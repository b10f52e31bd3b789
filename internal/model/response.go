package model

import "github.com/cpeele00/employee-benefits/internal/jsonpatch"

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculationMetadata"`
	CalculationResult   CalculationResult   `json:"calculationResult"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculationId"`
	CalculationStartedAt   string `json:"calculationStartedAt"`
	CalculationCompletedAt string `json:"calculationCompletedAt"`
	CalculationDurationMs  int64  `json:"calculationDurationMs"`
	CalculationOutcome     string `json:"calculationOutcome"`
}

type CalculationResult struct {
	Messages  []CalculationMessage `json:"messages"`
	Employees []EmployeeCost       `json:"employees"`
	Totals    *OrgTotals           `json:"totals"`
}

type PreviewResponse struct {
	Current  BenefitsCostResult `json:"current"`
	Proposed BenefitsCostResult `json:"proposed"`
	Delta    float64            `json:"delta"`
	Changes  []jsonpatch.Op     `json:"changes"`
}

type ErrorResponse struct {
	Status   int                  `json:"status"`
	Message  string               `json:"message"`
	Messages []CalculationMessage `json:"messages,omitempty"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
