package user

import "strings"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Full access to every calendar and planning view
	RoleManager  Role = "MANAGER"  // Team calendars and planning
	RoleEmployee Role = "EMPLOYEE" // Own calendar only
)

// ParseRole normalizes a role claim. Unknown values return false.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return r, true
	}
	return "", false
}
