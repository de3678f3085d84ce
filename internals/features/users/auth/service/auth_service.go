package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"acaraku_backend/internals/constants"
	"acaraku_backend/internals/features/users/auth/dto"
	userModel "acaraku_backend/internals/features/users/user/model"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login verifikasi email+password, tolak akun nonaktif.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user userModel.UserModel
	if err := s.DB.Where("lower(email) = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sengaja sama dengan password salah, jangan bocorkan keberadaan akun
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Println("[ERROR] Login query gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	return s.buildLoginResponse(&user)
}

// Register bikin akun baru dengan role user.
func (s *AuthService) Register(req dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := s.DB.Model(&userModel.UserModel{}).Where("lower(email) = ?", email).Count(&count).Error; err != nil {
		log.Println("[ERROR] Register cek email gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    email,
		Password: string(hashed),
		Role:     constants.RoleUser,
		IsActive: true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		log.Println("[ERROR] Register create user gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return s.buildLoginResponse(&user)
}

// RefreshToken rotasi refresh token + access token baru.
func (s *AuthService) RefreshToken(raw string) (*dto.LoginResponse, error) {
	user, err := ConsumeRefreshToken(s.DB, raw)
	if err != nil {
		return nil, err
	}
	return s.buildLoginResponse(user)
}

// Logout blacklist access token yang sedang dipakai.
func (s *AuthService) Logout(token string, expiredAt time.Time) error {
	return BlacklistAccessToken(s.DB, token, expiredAt)
}

// ChangePassword verifikasi password lama lalu simpan yang baru.
func (s *AuthService) ChangePassword(userID uuid.UUID, req dto.ChangePasswordRequest) error {
	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Password lama salah")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	if err := s.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		log.Println("[ERROR] ChangePassword update gagal:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengganti password")
	}
	return nil
}

func (s *AuthService) buildLoginResponse(user *userModel.UserModel) (*dto.LoginResponse, error) {
	access, err := CreateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := IssueRefreshToken(s.DB, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User: dto.UserSnapshot{
			ID:       user.ID.String(),
			UserName: user.UserName,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}
