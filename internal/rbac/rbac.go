// Package rbac holds the pure policy rules: role classification and
// permission decisions. It never touches storage or sessions; callers load
// the requester's role and enforce whatever this package decides.
package rbac

// Role is a closed enumeration of assignable roles.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleManager      Role = "MANAGER"
	RoleServer       Role = "SERVER"
	RoleHost         Role = "HOST"
	RoleBartender    Role = "BARTENDER"
	RoleBusser       Role = "BUSSER"
	RolePurchaser    Role = "PURCHASER"
	RoleChef         Role = "CHEF"
	RoleAccountant   Role = "ACCOUNTANT"
	RoleFacilities   Role = "FACILITIES"
	RoleFrontDesk    Role = "FRONT_DESK"
	RoleHousekeeping Role = "HOUSEKEEPING"
	RoleCustom       Role = "CUSTOM"
)

// The three role groups. Membership is exclusive: a role belongs to at most
// one group.
var (
	managerRoles = map[Role]struct{}{
		RoleAdmin:   {},
		RoleManager: {},
	}

	staffRoles = map[Role]struct{}{
		RoleServer:       {},
		RoleHost:         {},
		RoleBartender:    {},
		RoleBusser:       {},
		RoleChef:         {},
		RoleFrontDesk:    {},
		RoleHousekeeping: {},
	}

	backofficeRoles = map[Role]struct{}{
		RolePurchaser:  {},
		RoleAccountant: {},
		RoleFacilities: {},
	}
)

// IsManagerRole reports membership in the manager tier.
func IsManagerRole(role Role) bool {
	_, ok := managerRoles[role]
	return ok
}

// IsStaffRole reports membership in the staff tier.
func IsStaffRole(role Role) bool {
	_, ok := staffRoles[role]
	return ok
}

// IsBackofficeRole reports membership in the back-office tier.
func IsBackofficeRole(role Role) bool {
	_, ok := backofficeRoles[role]
	return ok
}

// IsAdminRole reports whether the role is the admin role itself.
func IsAdminRole(role Role) bool {
	return role == RoleAdmin
}

// EffectiveActorID resolves whose data a request may read. Manager-tier
// requesters may ask for any actor (defaulting to themselves); everyone
// else is forced onto their own id.
func EffectiveActorID(requesterRole Role, requesterID uint, requestedID *uint) uint {
	if IsManagerRole(requesterRole) && requestedID != nil {
		return *requestedID
	}
	return requesterID
}
