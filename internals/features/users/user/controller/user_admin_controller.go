package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/constants"
	"acaraku_backend/internals/features/users/user/dto"
	"acaraku_backend/internals/features/users/user/model"
	"acaraku_backend/internals/features/users/user/service"
	helper "acaraku_backend/internals/helpers"
)

var validate = validator.New()

type UserAdminController struct {
	Service *service.UserAdminService
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{Service: service.NewUserAdminService(db)}
}

func toAccountResponse(u *model.UserModel) dto.AccountResponse {
	return dto.AccountResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

/* ==========================
   Users (role user)
========================== */

// POST /api/super-admin/users/create
func (uc *UserAdminController) CreateUser(c *fiber.Ctx) error {
	return uc.createAccount(c, constants.RoleUser)
}

// POST /api/super-admin/users/delete
func (uc *UserAdminController) DeleteUser(c *fiber.Ctx) error {
	return uc.deleteAccount(c, constants.RoleUser)
}

// POST /api/super-admin/users/toggle-status
func (uc *UserAdminController) ToggleUserStatus(c *fiber.Ctx) error {
	return uc.toggleStatus(c, constants.RoleUser)
}

// GET /api/super-admin/users
func (uc *UserAdminController) ListUsers(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, helper.AdminOpts)
	role := c.Query("role")
	if role != "" && !constants.IsValidRole(role) {
		return helper.Error(c, fiber.StatusBadRequest, "Role tidak valid")
	}

	users, total, err := uc.Service.ListAccounts(role, p.Limit(), p.Offset())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp := make([]dto.AccountResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toAccountResponse(&users[i]))
	}
	return helper.Success(c, "Berhasil mengambil data akun", fiber.Map{
		"accounts": resp,
		"meta":     helper.BuildMeta(total, p),
	})
}

/* ==========================
   Admins (role admin)
========================== */

// POST /api/super-admin/admins/create
func (uc *UserAdminController) CreateAdmin(c *fiber.Ctx) error {
	return uc.createAccount(c, constants.RoleAdmin)
}

// POST /api/super-admin/admins/delete
func (uc *UserAdminController) DeleteAdmin(c *fiber.Ctx) error {
	return uc.deleteAccount(c, constants.RoleAdmin)
}

// POST /api/super-admin/admins/toggle-status
func (uc *UserAdminController) ToggleAdminStatus(c *fiber.Ctx) error {
	return uc.toggleStatus(c, constants.RoleAdmin)
}

/* ==========================
   Shared handlers
========================== */

func (uc *UserAdminController) createAccount(c *fiber.Ctx, role string) error {
	var req dto.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := uc.Service.CreateAccount(role, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Akun berhasil dibuat", toAccountResponse(user))
}

func (uc *UserAdminController) deleteAccount(c *fiber.Ctx, role string) error {
	var req dto.AccountIDRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := uc.Service.DeleteAccount(role, req.UserID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Akun berhasil dihapus", nil)
}

func (uc *UserAdminController) toggleStatus(c *fiber.Ctx, role string) error {
	var req dto.AccountIDRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	active, err := uc.Service.ToggleStatus(role, req.UserID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Status akun berhasil diubah", fiber.Map{"is_active": active})
}
