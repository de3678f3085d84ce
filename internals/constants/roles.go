package constants

import "fmt"

// ==========================
// ✅ Role names
// ==========================
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// Urutan role: user < admin < super-admin
var rolePriority = map[string]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// RolePriority mengembalikan prioritas role (0 kalau tidak dikenal)
func RolePriority(role string) int {
	return rolePriority[role]
}

// IsValidRole cek apakah role termasuk role yang dikenal
func IsValidRole(role string) bool {
	_, ok := rolePriority[role]
	return ok
}

// RoleAtLeast: apakah role memenuhi minimal minRole (total order).
// Khusus super-admin hanya dipenuhi oleh super-admin itu sendiri.
func RoleAtLeast(role, minRole string) bool {
	rp, ok1 := rolePriority[role]
	mp, ok2 := rolePriority[minRole]
	if !ok1 || !ok2 {
		return false
	}
	return rp >= mp
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
		RoleSuperAdmin,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin atau super-admin yang boleh mengakses fitur %s."
	ErrOnlySuperAdminCanAccess = "❌ Hanya super-admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}
