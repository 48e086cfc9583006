package rbac

import "fmt"

// DeletePermission is an advisory decision record; it is never persisted.
type DeletePermission struct {
	Allowed bool
	Reason  string
}

// CanStaffDeleteLog decides whether a staff caller may delete a behavior
// log. Only consulted for non-manager callers; manager tier bypasses it.
func CanStaffDeleteLog(isStaff, isOwner, isVerified bool) DeletePermission {
	if isStaff && !isOwner {
		return DeletePermission{Reason: "not owner"}
	}
	if isStaff && isVerified {
		return DeletePermission{Reason: "verified logs are immutable"}
	}
	return DeletePermission{Allowed: true}
}

// CanDeleteRole decides whether a role definition may be removed. Roles
// with assigned users stay.
func CanDeleteRole(assignedUserCount int) DeletePermission {
	if assignedUserCount > 0 {
		return DeletePermission{
			Reason: fmt.Sprintf("role is assigned to %d user(s)", assignedUserCount),
		}
	}
	return DeletePermission{Allowed: true}
}

// CanVerifyLogs: verifying behavior logs is a manager-tier action.
func CanVerifyLogs(role Role) bool {
	return IsManagerRole(role)
}

// CanViewAllUsers: browsing the full user list is manager-tier only.
func CanViewAllUsers(role Role) bool {
	return IsManagerRole(role)
}

// CanAccessManager gates the manager surface.
func CanAccessManager(role Role) bool {
	return IsManagerRole(role)
}

// CanAccessAdmin gates the admin surface; managers do not qualify.
func CanAccessAdmin(role Role) bool {
	return IsAdminRole(role)
}

// CanEditUserProfile allows editing one's own profile, otherwise
// manager-tier only.
func CanEditUserProfile(role Role, isOwnProfile bool) bool {
	if isOwnProfile {
		return true
	}
	return IsManagerRole(role)
}

// CanAccessFeature dispatches over the closed feature set. Unknown
// features are denied.
func CanAccessFeature(role Role, feature string) bool {
	switch feature {
	case "briefings":
		return true
	case "verification", "analytics", "users":
		return IsManagerRole(role)
	case "settings", "roles":
		return IsAdminRole(role)
	default:
		return false
	}
}

// Base routes every authenticated role may reach; manager-tier roles get
// the management surfaces appended.
var (
	baseRoutes = []string{
		"/dashboard",
		"/leaderboard",
		"/logs",
		"/briefings",
		"/profile",
	}

	managerRoutes = []string{
		"/verification",
		"/analytics",
		"/users",
	}
)

// AllowedRoutes lists the navigable routes for a role.
func AllowedRoutes(role Role) []string {
	routes := append([]string(nil), baseRoutes...)
	if IsManagerRole(role) {
		routes = append(routes, managerRoutes...)
	}
	return routes
}
