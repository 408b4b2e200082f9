package enums

import "fmt"

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleJudge   Role = "judge"
	RoleStudent Role = "student"
)

var validRoles = []Role{
	RoleAdmin,
	RoleJudge,
	RoleStudent,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}

// AuthzFlags captures the staff/superuser authorization bits derived from
// a role. Only admins carry elevated flags; the computation lives here so
// record construction never mutates flags conditionally.
type AuthzFlags struct {
	Staff     bool
	Superuser bool
}

// AuthzFlagsFor returns the authorization flags a role grants.
func AuthzFlagsFor(role Role) AuthzFlags {
	if role == RoleAdmin {
		return AuthzFlags{Staff: true, Superuser: true}
	}
	return AuthzFlags{}
}
