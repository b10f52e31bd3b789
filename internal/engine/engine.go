package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/cpeele00/employee-benefits/internal/benefits"
	"github.com/cpeele00/employee-benefits/internal/jsonpatch"
	"github.com/cpeele00/employee-benefits/internal/model"
	"github.com/cpeele00/employee-benefits/internal/roster"
	"github.com/cpeele00/employee-benefits/internal/validation"
)

// Process validates the roster and, when nothing critical was found, returns
// the per-employee costs and the organization totals.
func Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	messages := validation.Roster(req.Employees, req.Dependents)
	if messages == nil {
		messages = []model.CalculationMessage{}
	}

	result := model.CalculationResult{
		Messages:  messages,
		Employees: []model.EmployeeCost{},
	}
	outcome := model.OutcomeSuccess

	if validation.HasCritical(messages) {
		outcome = model.OutcomeFailure
	} else {
		groups := roster.Group(req.Employees, req.Dependents)
		for i := range groups {
			result.Employees = append(result.Employees, model.EmployeeCost{
				Employee:   groups[i].Employee,
				Dependents: groups[i].Dependents,
				Cost:       benefits.CalculateEmployeeBenefitsCost(&groups[i].Employee, groups[i].Dependents),
			})
		}
		totals := benefits.CalculateTotalEmployeeBenefitsCost(groups)
		result.Totals = &totals
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: result,
	}
}

// Preview compares the cost of a saved employee with an unsaved edit.
func Preview(req *model.PreviewRequest) (*model.PreviewResponse, error) {
	current := costOf(req.Current)
	proposed := costOf(req.Proposed)

	changes, err := jsonpatch.DiffValues(current, proposed)
	if err != nil {
		return nil, err
	}

	return &model.PreviewResponse{
		Current:  current,
		Proposed: proposed,
		Delta:    proposed.TotalAnnualCost - current.TotalAnnualCost,
		Changes:  changes,
	}, nil
}

func costOf(g model.EmployeeWithDependents) model.BenefitsCostResult {
	deps := g.Dependents
	if deps == nil {
		deps = []model.Dependent{}
	}
	return benefits.CalculateEmployeeBenefitsCost(&g.Employee, deps)
}
