// Package validation checks employee and dependent records before they reach
// the cost calculators. Problems are reported as calculation messages rather
// than errors so a caller sees every problem at once.
package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cpeele00/employee-benefits/internal/model"
	"github.com/cpeele00/employee-benefits/internal/roster"
)

const (
	CodeInvalidFirstName    = "INVALID_FIRST_NAME"
	CodeInvalidLastName     = "INVALID_LAST_NAME"
	CodeBenefitsRequired    = "BENEFITS_REQUIRED"
	CodeInvalidBenefit      = "INVALID_BENEFIT"
	CodeDuplicateBenefit    = "DUPLICATE_BENEFIT"
	CodeInvalidRelationship = "INVALID_RELATIONSHIP"
	CodeUnmatchedDependent  = "UNMATCHED_DEPENDENT"
)

// Employee validates a single employee record. path prefixes every message
// path, e.g. "employees[0]".
func Employee(e model.Employee, path string) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	msgs = append(msgs, names(e.FirstName, e.LastName, path)...)
	msgs = append(msgs, benefits(e.Benefits, path+".benefits")...)
	return msgs
}

// Dependent validates a single dependent record.
func Dependent(d model.Dependent, path string) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	msgs = append(msgs, names(d.FirstName, d.LastName, path)...)

	if _, ok := model.ParseRelationship(string(d.Relationship)); !ok {
		msgs = append(msgs, critical(CodeInvalidRelationship, path+".relationship",
			fmt.Sprintf("Relationship %q must be spouse or child", d.Relationship)))
	}

	msgs = append(msgs, benefits(d.Benefits, path+".benefits")...)
	return msgs
}

// Roster validates every record and warns about dependents that reference no
// employee in the roster. Messages are numbered in the order they occur.
func Roster(employees []model.Employee, dependents []model.Dependent) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	for i, e := range employees {
		msgs = append(msgs, Employee(e, fmt.Sprintf("employees[%d]", i))...)
	}

	unmatched := roster.Unmatched(employees, dependents)
	for i, d := range dependents {
		path := fmt.Sprintf("dependents[%d]", i)
		msgs = append(msgs, Dependent(d, path)...)
		if _, ok := slices.BinarySearch(unmatched, i); ok {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    CodeUnmatchedDependent,
				Path:    path + ".employeeId",
				Message: fmt.Sprintf("Dependent %s %s does not belong to any employee and is excluded", d.FirstName, d.LastName),
			})
		}
	}
	return Number(msgs)
}

// Number assigns sequential IDs to msgs in place and returns it.
func Number(msgs []model.CalculationMessage) []model.CalculationMessage {
	for i := range msgs {
		msgs[i].ID = i
	}
	return msgs
}

// HasCritical reports whether any message blocks a calculation.
func HasCritical(msgs []model.CalculationMessage) bool {
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return true
		}
	}
	return false
}

func names(first, last, path string) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	if strings.TrimSpace(first) == "" {
		msgs = append(msgs, critical(CodeInvalidFirstName, path+".firstName", "First name is required"))
	}
	if strings.TrimSpace(last) == "" {
		msgs = append(msgs, critical(CodeInvalidLastName, path+".lastName", "Last name is required"))
	}
	return msgs
}

func benefits(selected []model.BenefitType, path string) []model.CalculationMessage {
	if len(selected) == 0 {
		return []model.CalculationMessage{critical(CodeBenefitsRequired, path, "At least one benefit is required")}
	}

	var msgs []model.CalculationMessage
	seen := make(map[model.BenefitType]struct{}, len(selected))
	for i, raw := range selected {
		b, ok := model.ParseBenefitType(string(raw))
		if !ok {
			msgs = append(msgs, critical(CodeInvalidBenefit, fmt.Sprintf("%s[%d]", path, i),
				fmt.Sprintf("Unknown benefit %q", raw)))
			continue
		}
		if _, dup := seen[b]; dup {
			msgs = append(msgs, critical(CodeDuplicateBenefit, fmt.Sprintf("%s[%d]", path, i),
				fmt.Sprintf("Benefit %s is selected more than once", b)))
			continue
		}
		seen[b] = struct{}{}
	}
	return msgs
}

func critical(code, path, message string) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    code,
		Path:    path,
		Message: message,
	}
}
