package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePriorityTotalOrder(t *testing.T) {
	assert.Less(t, RolePriority(RoleUser), RolePriority(RoleAdmin))
	assert.Less(t, RolePriority(RoleAdmin), RolePriority(RoleSuperAdmin))
	assert.Zero(t, RolePriority("owner")) // role tak dikenal
}

func TestRoleAtLeast(t *testing.T) {
	// setiap role memenuhi dirinya sendiri
	for _, r := range AllRoles {
		assert.True(t, RoleAtLeast(r, r), r)
	}

	assert.True(t, RoleAtLeast(RoleSuperAdmin, RoleUser))
	assert.True(t, RoleAtLeast(RoleSuperAdmin, RoleAdmin))
	assert.True(t, RoleAtLeast(RoleAdmin, RoleUser))

	assert.False(t, RoleAtLeast(RoleUser, RoleAdmin))
	assert.False(t, RoleAtLeast(RoleAdmin, RoleSuperAdmin))

	// role tak dikenal tidak pernah lolos
	assert.False(t, RoleAtLeast("owner", RoleUser))
	assert.False(t, RoleAtLeast(RoleAdmin, "owner"))
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, IsValidRole(r), r)
	}
	assert.False(t, IsValidRole("Owner"))
	assert.False(t, IsValidRole(""))
}
