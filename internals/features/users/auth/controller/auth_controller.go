package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/users/auth/dto"
	"acaraku_backend/internals/features/users/auth/service"
	userModel "acaraku_backend/internals/features/users/user/model"
	helper "acaraku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: service.NewAuthService(db)}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ac.Service.Login(req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Login berhasil", resp)
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ac.Service.Register(req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", resp)
}

// POST /api/auth/refresh-token
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ac.Service.RefreshToken(req.RefreshToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Token diperbarui", resp)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.Error(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}
	token := strings.Trim(fields[1], "\"'")

	// blacklist sampai 24 jam ke depan (>= sisa umur access token)
	if err := ac.Service.Logout(token, time.Now().UTC().Add(24*time.Hour)); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Logout berhasil", nil)
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ac.Service.ChangePassword(userID, req); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Password berhasil diganti", nil)
}

// GET /api/auth/me — profile user dari JWT
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ac.Service.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "Profil berhasil diambil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
		"is_active": user.IsActive,
	})
}
