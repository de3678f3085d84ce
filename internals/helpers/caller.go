package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"acaraku_backend/internals/constants"
)

// Caller adalah identitas pemanggil yang sudah diresolve dari JWT.
// Service menerima nilai ini secara eksplisit, tidak membaca Locals sendiri,
// supaya logika inti tidak terikat ke transport tertentu.
type Caller struct {
	ID   uuid.UUID
	Role string
}

// IsSuperAdmin true hanya untuk role super-admin persis.
func (cl Caller) IsSuperAdmin() bool {
	return cl.Role == constants.RoleSuperAdmin
}

// CanManage cek ownership: super-admin bebas, selain itu harus pemilik resource.
func (cl Caller) CanManage(ownerID uuid.UUID) bool {
	if cl.IsSuperAdmin() {
		return true
	}
	return cl.ID == ownerID
}

// GetCaller resolve Caller dari Locals yang diisi auth middleware.
func GetCaller(c *fiber.Ctx) (Caller, error) {
	userID, err := GetUserIDFromToken(c)
	if err != nil {
		return Caller{}, err
	}
	role, err := GetRoleFromToken(c)
	if err != nil {
		return Caller{}, err
	}
	return Caller{ID: userID, Role: role}, nil
}
