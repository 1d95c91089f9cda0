package authz_test

import (
	"testing"

	"github.com/lodgebook/lodgebook/internal/authz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       authz.Role
		permission authz.Permission
		want       bool
	}{
		{"front desk cannot delete financial records", authz.RoleFrontDesk, authz.FinancialDelete, false},
		{"finance can delete financial records", authz.RoleFinance, authz.FinancialDelete, true},
		{"front desk can check guests in", authz.RoleFrontDesk, authz.ReservationCheckin, true},
		{"housekeeping can read properties", authz.RoleHousekeeping, authz.PropertyRead, true},
		{"housekeeping cannot update properties", authz.RoleHousekeeping, authz.PropertyUpdate, false},
		{"maintenance can update properties", authz.RoleMaintenance, authz.PropertyUpdate, true},
		{"finance cannot manage users", authz.RoleFinance, authz.UserDelete, false},
		{"admin cannot delete users", authz.RoleAdmin, authz.UserDelete, false},
		{"super admin can delete users", authz.RoleSuperAdmin, authz.UserDelete, true},
		{"unknown role has nothing", authz.Role("intern"), authz.ReservationRead, false},
		{"empty role has nothing", authz.Role(""), authz.ReservationRead, false},
		{"unknown permission is denied", authz.RoleSuperAdmin, authz.Permission("financial:mint"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.HasPermission(tt.role, tt.permission))
		})
	}
}

// The super_admin set must remain the union of every permission in the
// catalog. A permission added to the catalog without reaching super_admin
// fails here.
func TestSuperAdminHoldsEntireCatalog(t *testing.T) {
	for _, p := range authz.AllPermissions() {
		assert.Truef(t, authz.HasPermission(authz.RoleSuperAdmin, p),
			"super_admin missing %q", p)
	}
	assert.Len(t, authz.RolePermissions(authz.RoleSuperAdmin), len(authz.AllPermissions()))
}

func TestRolePermissions(t *testing.T) {
	t.Run("unknown role returns empty slice, not nil", func(t *testing.T) {
		perms := authz.RolePermissions(authz.Role("ghost"))
		require.NotNil(t, perms)
		assert.Empty(t, perms)
	})

	t.Run("every role's listed permissions pass HasPermission", func(t *testing.T) {
		for _, role := range authz.Roles() {
			for _, p := range authz.RolePermissions(role) {
				assert.Truef(t, authz.HasPermission(role, p), "role %s permission %s", role, p)
			}
		}
	})

	t.Run("result is sorted and stable across calls", func(t *testing.T) {
		first := authz.RolePermissions(authz.RoleFinance)
		second := authz.RolePermissions(authz.RoleFinance)
		assert.Equal(t, first, second)
		assert.IsIncreasing(t, first)
	})
}

func TestHasAnyPermission(t *testing.T) {
	assert.True(t, authz.HasAnyPermission(authz.RoleHousekeeping, authz.FinancialDelete, authz.PropertyRead))
	assert.False(t, authz.HasAnyPermission(authz.RoleHousekeeping, authz.FinancialDelete, authz.UserDelete))
	assert.False(t, authz.HasAnyPermission(authz.RoleHousekeeping))
}

func TestHasAllPermissions(t *testing.T) {
	assert.True(t, authz.HasAllPermissions(authz.RoleMaintenance, authz.PropertyRead, authz.PropertyUpdate))
	assert.False(t, authz.HasAllPermissions(authz.RoleMaintenance, authz.PropertyRead, authz.PropertyDelete))
	// Vacuously true, matching the catalog contract.
	assert.True(t, authz.HasAllPermissions(authz.Role("ghost")))
}

func TestCanAccessResource(t *testing.T) {
	assert.False(t, authz.CanAccessResource(authz.RoleHousekeeping, "property", "update"))
	assert.True(t, authz.CanAccessResource(authz.RoleMaintenance, "property", "update"))
	assert.True(t, authz.CanAccessResource(authz.RoleFinance, "financial", "delete"))
	assert.False(t, authz.CanAccessResource(authz.RoleFrontDesk, "financial", "delete"))
}

func TestIsAdminRole(t *testing.T) {
	assert.True(t, authz.IsAdminRole(authz.RoleAdmin))
	assert.True(t, authz.IsAdminRole(authz.RoleSuperAdmin))
	assert.False(t, authz.IsAdminRole(authz.RoleManager))
	assert.False(t, authz.IsAdminRole(authz.Role("")))
}
