package service

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"acaraku_backend/internals/constants"
	attendanceModel "acaraku_backend/internals/features/events/attendance/model"
	eventModel "acaraku_backend/internals/features/events/events/model"
	registrationModel "acaraku_backend/internals/features/events/registrations/model"
	moduleModel "acaraku_backend/internals/features/modules/model"
	"acaraku_backend/internals/features/users/user/dto"
	"acaraku_backend/internals/features/users/user/model"
)

// UserAdminService: mutasi akun oleh super-admin.
// Invariant: akun super-admin tidak pernah bisa dinonaktifkan/dihapus
// lewat endpoint ini, oleh siapa pun.
type UserAdminService struct {
	DB *gorm.DB
}

func NewUserAdminService(db *gorm.DB) *UserAdminService {
	return &UserAdminService{DB: db}
}

// CreateAccount bikin akun baru dengan role tertentu (user/admin).
func (s *UserAdminService) CreateAccount(role string, req dto.CreateAccountRequest) (*model.UserModel, error) {
	if role != constants.RoleUser && role != constants.RoleAdmin {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Role tidak valid")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	if err := s.DB.Model(&model.UserModel{}).Where("lower(email) = ?", email).Count(&count).Error; err != nil {
		log.Println("[ERROR] CreateAccount cek email gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    email,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		log.Println("[ERROR] CreateAccount gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
	}
	return &user, nil
}

// DeleteAccount hapus akun + seluruh aggregate miliknya (event, registrasi,
// form field, attendance, grant modul) dalam satu transaksi.
func (s *UserAdminService) DeleteAccount(expectedRole string, userID uuid.UUID) error {
	var user model.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		log.Println("[ERROR] DeleteAccount query gagal:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	if user.IsSuperAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Akun super-admin tidak bisa dihapus")
	}
	if expectedRole != "" && user.Role != expectedRole {
		return fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		// kumpulkan event milik user, lalu hapus anak-anaknya dari leaf ke root
		var eventIDs []uuid.UUID
		if err := tx.Model(&eventModel.EventModel{}).
			Where("event_user_id = ?", userID).
			Pluck("event_id", &eventIDs).Error; err != nil {
			return err
		}

		if len(eventIDs) > 0 {
			var regIDs []uuid.UUID
			if err := tx.Model(&registrationModel.EventRegistrationModel{}).
				Where("event_registration_event_id IN ?", eventIDs).
				Pluck("event_registration_id", &regIDs).Error; err != nil {
				return err
			}
			if len(regIDs) > 0 {
				if err := tx.Where("event_attendance_registration_id IN ?", regIDs).
					Delete(&attendanceModel.EventAttendanceModel{}).Error; err != nil {
					return err
				}
				if err := tx.Where("event_registration_id IN ?", regIDs).
					Delete(&registrationModel.EventRegistrationModel{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("form_field_event_id IN ?", eventIDs).
				Delete(&eventModel.FormFieldModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("event_id IN ?", eventIDs).
				Delete(&eventModel.EventModel{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_module_user_id = ?", userID).
			Delete(&moduleModel.UserModuleModel{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.UserModel{}, "id = ?", userID).Error
	})
}

// ToggleStatus flip is_active. Akun super-admin dilindungi.
func (s *UserAdminService) ToggleStatus(expectedRole string, userID uuid.UUID) (bool, error) {
	var user model.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		log.Println("[ERROR] ToggleStatus query gagal:", err)
		return false, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	if user.IsSuperAdmin() {
		return false, fiber.NewError(fiber.StatusForbidden, "Akun super-admin tidak bisa dinonaktifkan")
	}
	if expectedRole != "" && user.Role != expectedRole {
		return false, fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
	}

	next := !user.IsActive
	if err := s.DB.Model(&user).Update("is_active", next).Error; err != nil {
		log.Println("[ERROR] ToggleStatus update gagal:", err)
		return false, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah status akun")
	}
	return next, nil
}

// ListAccounts untuk panel super-admin (filter role opsional).
func (s *UserAdminService) ListAccounts(role string, limit, offset int) ([]model.UserModel, int64, error) {
	q := s.DB.Model(&model.UserModel{})
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung akun")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data akun")
	}
	return users, total, nil
}
