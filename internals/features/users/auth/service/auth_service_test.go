package service

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acaraku_backend/internals/configs"
	"acaraku_backend/internals/constants"
	"acaraku_backend/internals/features/users/auth/dto"
	authModel "acaraku_backend/internals/features/users/auth/model"
	userModel "acaraku_backend/internals/features/users/user/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshToken{},
		&authModel.TokenBlacklist{},
	))
	return db
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

func TestRegisterThenLogin(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	resp, err := svc.Register(dto.RegisterRequest{
		UserName: "alice",
		Email:    "Alice@Example.com",
		Password: "rahasia-123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, constants.RoleUser, resp.User.Role)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	login, err := svc.Login(dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "rahasia-123",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register(dto.RegisterRequest{
		UserName: "alice", Email: "alice@example.com", Password: "rahasia-123",
	})
	require.NoError(t, err)

	_, err = svc.Register(dto.RegisterRequest{
		UserName: "alice2", Email: "ALICE@example.com", Password: "rahasia-123",
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

// Email tak dikenal dan password salah harus menghasilkan pesan yang sama.
func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register(dto.RegisterRequest{
		UserName: "alice", Email: "alice@example.com", Password: "rahasia-123",
	})
	require.NoError(t, err)

	_, errUnknown := svc.Login(dto.LoginRequest{Email: "tidakada@example.com", Password: "apapun"})
	require.Error(t, errUnknown)
	_, errWrongPass := svc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "salah-total"})
	require.Error(t, errWrongPass)

	assert.Equal(t, fiber.StatusUnauthorized, fiberCode(t, errUnknown))
	assert.Equal(t, fiber.StatusUnauthorized, fiberCode(t, errWrongPass))
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLoginInactiveAccount(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	resp, err := svc.Register(dto.RegisterRequest{
		UserName: "alice", Email: "alice@example.com", Password: "rahasia-123",
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("id = ?", resp.User.ID).
		Update("is_active", false).Error)

	_, err = svc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "rahasia-123"})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

// Refresh token single-use: dipakai sekali langsung direvoke.
func TestRefreshTokenRotation(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	resp, err := svc.Register(dto.RegisterRequest{
		UserName: "alice", Email: "alice@example.com", Password: "rahasia-123",
	})
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	// token lama tidak bisa dipakai lagi
	_, err = svc.RefreshToken(resp.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, fiberCode(t, err))

	// token hasil rotasi masih valid
	_, err = svc.RefreshToken(rotated.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshTokenUnknown(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.RefreshToken("bukan-token")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, fiberCode(t, err))
}

func TestChangePassword(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	resp, err := svc.Register(dto.RegisterRequest{
		UserName: "alice", Email: "alice@example.com", Password: "rahasia-123",
	})
	require.NoError(t, err)

	var user userModel.UserModel
	require.NoError(t, db.First(&user, "email = ?", "alice@example.com").Error)

	err = svc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		OldPassword: "salah", NewPassword: "rahasia-baru-456",
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, fiberCode(t, err))

	require.NoError(t, svc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		OldPassword: "rahasia-123", NewPassword: "rahasia-baru-456",
	}))

	_, err = svc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "rahasia-123"})
	require.Error(t, err)
	login, err := svc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "rahasia-baru-456"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}
