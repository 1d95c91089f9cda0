package authz

import "sort"

// Role identifies one of the fixed staff roles. The set of roles is closed:
// unknown values simply resolve to an empty permission set.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleFrontDesk    Role = "front_desk"
	RoleHousekeeping Role = "housekeeping"
	RoleMaintenance  Role = "maintenance"
	RoleFinance      Role = "finance"
)

// Permission is an opaque "<resource>:<action>" identifier. The catalog only
// ever does exact-match lookups on it.
type Permission string

// Permission constants, grouped by resource.
const (
	ReservationCreate   Permission = "reservation:create"
	ReservationRead     Permission = "reservation:read"
	ReservationUpdate   Permission = "reservation:update"
	ReservationDelete   Permission = "reservation:delete"
	ReservationCheckin  Permission = "reservation:checkin"
	ReservationCheckout Permission = "reservation:checkout"

	GuestCreate Permission = "guest:create"
	GuestRead   Permission = "guest:read"
	GuestUpdate Permission = "guest:update"
	GuestDelete Permission = "guest:delete"

	PropertyCreate Permission = "property:create"
	PropertyRead   Permission = "property:read"
	PropertyUpdate Permission = "property:update"
	PropertyDelete Permission = "property:delete"

	FinancialCreate Permission = "financial:create"
	FinancialRead   Permission = "financial:read"
	FinancialUpdate Permission = "financial:update"
	FinancialDelete Permission = "financial:delete"

	ReportRead   Permission = "report:read"
	ReportExport Permission = "report:export"

	InventoryCreate Permission = "inventory:create"
	InventoryRead   Permission = "inventory:read"
	InventoryUpdate Permission = "inventory:update"
	InventoryDelete Permission = "inventory:delete"

	MessageCreate Permission = "message:create"
	MessageRead   Permission = "message:read"
	MessageDelete Permission = "message:delete"

	UserCreate Permission = "user:create"
	UserRead   Permission = "user:read"
	UserUpdate Permission = "user:update"
	UserDelete Permission = "user:delete"
)

// allPermissions is the full catalog. super_admin's set is built from this
// slice, so adding a new permission constant here automatically grants it to
// super_admin as well.
var allPermissions = []Permission{
	ReservationCreate, ReservationRead, ReservationUpdate, ReservationDelete,
	ReservationCheckin, ReservationCheckout,
	GuestCreate, GuestRead, GuestUpdate, GuestDelete,
	PropertyCreate, PropertyRead, PropertyUpdate, PropertyDelete,
	FinancialCreate, FinancialRead, FinancialUpdate, FinancialDelete,
	ReportRead, ReportExport,
	InventoryCreate, InventoryRead, InventoryUpdate, InventoryDelete,
	MessageCreate, MessageRead, MessageDelete,
	UserCreate, UserRead, UserUpdate, UserDelete,
}

var rolePermissions = map[Role][]Permission{
	RoleSuperAdmin: allPermissions,
	RoleAdmin: {
		ReservationCreate, ReservationRead, ReservationUpdate, ReservationDelete,
		ReservationCheckin, ReservationCheckout,
		GuestCreate, GuestRead, GuestUpdate, GuestDelete,
		PropertyCreate, PropertyRead, PropertyUpdate, PropertyDelete,
		FinancialCreate, FinancialRead, FinancialUpdate, FinancialDelete,
		ReportRead, ReportExport,
		InventoryCreate, InventoryRead, InventoryUpdate, InventoryDelete,
		MessageCreate, MessageRead, MessageDelete,
		UserRead, UserUpdate,
	},
	RoleManager: {
		ReservationCreate, ReservationRead, ReservationUpdate, ReservationDelete,
		ReservationCheckin, ReservationCheckout,
		GuestCreate, GuestRead, GuestUpdate,
		PropertyRead, PropertyUpdate,
		FinancialCreate, FinancialRead, FinancialUpdate,
		ReportRead, ReportExport,
		InventoryCreate, InventoryRead, InventoryUpdate, InventoryDelete,
		MessageCreate, MessageRead,
	},
	RoleFrontDesk: {
		ReservationCreate, ReservationRead, ReservationUpdate,
		ReservationCheckin, ReservationCheckout,
		GuestCreate, GuestRead, GuestUpdate,
		PropertyRead,
		FinancialCreate, FinancialRead,
		InventoryRead,
		MessageCreate, MessageRead,
	},
	RoleHousekeeping: {
		ReservationRead,
		PropertyRead,
		InventoryRead, InventoryUpdate,
		MessageCreate, MessageRead,
	},
	RoleMaintenance: {
		PropertyRead, PropertyUpdate,
		InventoryRead, InventoryUpdate,
		MessageCreate, MessageRead,
	},
	RoleFinance: {
		ReservationRead,
		GuestRead,
		FinancialCreate, FinancialRead, FinancialUpdate, FinancialDelete,
		ReportRead, ReportExport,
	},
}

// permissionIndex is the lookup structure the public functions consult.
// Built once at init; never mutated afterwards.
var permissionIndex = buildIndex()

func buildIndex() map[Role]map[Permission]struct{} {
	idx := make(map[Role]map[Permission]struct{}, len(rolePermissions))
	for role, perms := range rolePermissions {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		idx[role] = set
	}
	return idx
}

// HasPermission reports whether the role holds the exact permission.
// Unknown roles resolve to an empty set, so this fails closed.
func HasPermission(role Role, permission Permission) bool {
	set, ok := permissionIndex[role]
	if !ok {
		return false
	}
	_, ok = set[permission]
	return ok
}

// HasAnyPermission reports whether the role holds at least one of the given permissions.
func HasAnyPermission(role Role, permissions ...Permission) bool {
	for _, p := range permissions {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the role holds every one of the given permissions.
func HasAllPermissions(role Role, permissions ...Permission) bool {
	for _, p := range permissions {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}

// RolePermissions returns the role's permission set as a sorted slice.
// Unknown roles return an empty slice, never nil.
func RolePermissions(role Role) []Permission {
	set, ok := permissionIndex[role]
	if !ok {
		return []Permission{}
	}
	perms := make([]Permission, 0, len(set))
	for p := range set {
		perms = append(perms, p)
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })
	return perms
}

// CanAccessResource reconstructs "<resource>:<action>" and checks it.
func CanAccessResource(role Role, resource, action string) bool {
	return HasPermission(role, Permission(resource+":"+action))
}

// AllPermissions returns a copy of the full permission catalog.
func AllPermissions() []Permission {
	perms := make([]Permission, len(allPermissions))
	copy(perms, allPermissions)
	return perms
}

// Roles returns every known role.
func Roles() []Role {
	return []Role{
		RoleSuperAdmin, RoleAdmin, RoleManager, RoleFrontDesk,
		RoleHousekeeping, RoleMaintenance, RoleFinance,
	}
}

// IsAdminRole reports whether the role is one of the administrative roles.
func IsAdminRole(role Role) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
