package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acaraku_backend/internals/configs"
	authModel "acaraku_backend/internals/features/users/auth/model"
	userModel "acaraku_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

// CreateAccessToken bikin JWT access token berisi klaim id/role/user_name.
func CreateAccessToken(user *userModel.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}

	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"role":      user.Role,
		"user_name": user.UserName,
		"exp":       nowUTC().Add(accessTTLDefault).Unix(),
		"iat":       nowUTC().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// hashRefreshToken: HMAC-SHA256 dengan refresh secret, jangan simpan plaintext.
func hashRefreshToken(raw string) ([]byte, error) {
	secret := configs.JWTRefreshSecret
	if secret == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return mac.Sum(nil), nil
}

// IssueRefreshToken bikin refresh token acak, simpan hash-nya di DB.
func IssueRefreshToken(db *gorm.DB, userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	raw := hex.EncodeToString(buf)

	hash, err := hashRefreshToken(raw)
	if err != nil {
		return "", err
	}

	rt := authModel.RefreshToken{
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: nowUTC().Add(refreshTTLDefault),
	}
	if err := db.Create(&rt).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}
	return raw, nil
}

// ConsumeRefreshToken validasi + revoke (rotation). Return user pemilik token.
func ConsumeRefreshToken(db *gorm.DB, raw string) (*userModel.UserModel, error) {
	hash, err := hashRefreshToken(raw)
	if err != nil {
		return nil, err
	}

	var rt authModel.RefreshToken
	if err := db.Where("token_hash = ?", hash).First(&rt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}
	if rt.RevokedAt != nil || nowUTC().After(rt.ExpiresAt) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token sudah tidak berlaku")
	}

	// revoke token lama (single-use)
	now := nowUTC()
	if err := db.Model(&rt).Update("revoked_at", &now).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal merevoke refresh token")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", rt.UserID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	return &user, nil
}

// BlacklistAccessToken simpan token ke blacklist sampai masa exp-nya lewat.
func BlacklistAccessToken(db *gorm.DB, token string, expiredAt time.Time) error {
	entry := authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		// token sudah ada di blacklist → tidak apa-apa, logout tetap sukses
		return nil
	}
	return nil
}
