package enums

import "fmt"

// Branch is the academic branch a student belongs to.
type Branch string

const (
	BranchCSE     Branch = "cse"
	BranchECE     Branch = "ece"
	BranchEEE     Branch = "eee"
	BranchMech    Branch = "mech"
	BranchCivil   Branch = "civil"
	BranchChem    Branch = "chem"
	BranchBiotech Branch = "biotech"
	BranchIT      Branch = "it"
	BranchMCA     Branch = "mca"
	BranchMTech   Branch = "mtech"
	BranchMBA     Branch = "mba"
	BranchOther   Branch = "other"
)

var validBranches = []Branch{
	BranchCSE,
	BranchECE,
	BranchEEE,
	BranchMech,
	BranchCivil,
	BranchChem,
	BranchBiotech,
	BranchIT,
	BranchMCA,
	BranchMTech,
	BranchMBA,
	BranchOther,
}

func (b Branch) String() string {
	return string(b)
}

// IsValid reports whether the value is a known Branch.
func (b Branch) IsValid() bool {
	for _, candidate := range validBranches {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBranch converts raw input into a Branch.
func ParseBranch(value string) (Branch, error) {
	for _, candidate := range validBranches {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid branch %q", value)
}
