package user

type Permission string

const (
	// Calendar
	PermissionCalendarViewOwn Permission = "calendar.view_own"
	PermissionCalendarViewAll Permission = "calendar.view_all"

	// Planning
	PermissionPlanningView   Permission = "planning.view"
	PermissionPlanningExport Permission = "planning.export"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionCalendarViewOwn,
		PermissionCalendarViewAll,
		PermissionPlanningView,
		PermissionPlanningExport,
	},
	RoleManager: {
		PermissionCalendarViewOwn,
		PermissionCalendarViewAll,
		PermissionPlanningView,
	},
	RoleEmployee: {
		PermissionCalendarViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
