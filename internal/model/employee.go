package model

import "strings"

type BenefitType string

const (
	BenefitMedical BenefitType = "medical"
	BenefitDental  BenefitType = "dental"
	BenefitVision  BenefitType = "vision"
	BenefitLife    BenefitType = "life"
)

// BenefitTypes lists every benefit an employee or dependent may select.
var BenefitTypes = []BenefitType{BenefitMedical, BenefitDental, BenefitVision, BenefitLife}

// ParseBenefitType accepts any casing ("Medical", "medical") and returns the
// canonical lower-case tag.
func ParseBenefitType(s string) (BenefitType, bool) {
	b := BenefitType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range BenefitTypes {
		if b == known {
			return b, true
		}
	}
	return "", false
}

type Relationship string

const (
	RelationshipSpouse Relationship = "spouse"
	RelationshipChild  Relationship = "child"
)

func ParseRelationship(s string) (Relationship, bool) {
	switch r := Relationship(strings.ToLower(strings.TrimSpace(s))); r {
	case RelationshipSpouse, RelationshipChild:
		return r, true
	default:
		return "", false
	}
}

type Employee struct {
	ID        string        `json:"id,omitempty"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Benefits  []BenefitType `json:"benefits"`
}

type Dependent struct {
	ID           string        `json:"id,omitempty"`
	EmployeeID   string        `json:"employeeId,omitempty"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Relationship Relationship  `json:"relationship"`
	Benefits     []BenefitType `json:"benefits"`
}

// EmployeeWithDependents joins one employee to the dependents that reference
// it. It is rebuilt on every grouping and never persisted.
type EmployeeWithDependents struct {
	Employee   Employee    `json:"employee"`
	Dependents []Dependent `json:"dependents"`
}
