package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/events/attendance/model"
	eventModel "acaraku_backend/internals/features/events/events/model"
	registrationModel "acaraku_backend/internals/features/events/registrations/model"
	helper "acaraku_backend/internals/helpers"
)

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// CheckIn catat kehadiran satu registrasi. Maksimal satu baris attendance
// per registrasi; duplicate check-in balas 409 + attendance lama (timestamp
// asli ikut dikembalikan, tidak dibuat baris baru).
func (s *AttendanceService) CheckIn(caller helper.Caller, registrationID uuid.UUID) (*model.EventAttendanceModel, error) {
	var reg registrationModel.EventRegistrationModel
	if err := s.DB.First(&reg, "event_registration_id = ?", registrationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Registrasi tidak ditemukan")
		}
		log.Println("[ERROR] CheckIn query registrasi gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	var event eventModel.EventModel
	if err := s.DB.First(&event, "event_id = ?", reg.EventRegistrationEventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		log.Println("[ERROR] CheckIn query event gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	if !caller.CanManage(event.EventUserID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda bukan pemilik event ini")
	}

	// fast path: sudah pernah check-in
	if existing, ok := s.findExisting(registrationID); ok {
		return existing, fiber.NewError(fiber.StatusConflict, "Registrasi sudah check-in")
	}

	attendance := model.EventAttendanceModel{
		EventAttendanceRegistrationID: registrationID,
		EventAttendanceCheckedInBy:    caller.ID,
		EventAttendanceCheckedInAt:    time.Now().UTC(),
	}
	if err := s.DB.Create(&attendance).Error; err != nil {
		// race dua scanner: yang kalah kena unique violation → 409, bukan 500
		if isDuplicateKeyErr(err) {
			if existing, ok := s.findExisting(registrationID); ok {
				return existing, fiber.NewError(fiber.StatusConflict, "Registrasi sudah check-in")
			}
		}
		log.Println("[ERROR] CheckIn insert gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat kehadiran")
	}
	return &attendance, nil
}

func (s *AttendanceService) findExisting(registrationID uuid.UUID) (*model.EventAttendanceModel, bool) {
	var existing model.EventAttendanceModel
	if err := s.DB.First(&existing, "event_attendance_registration_id = ?", registrationID).Error; err != nil {
		return nil, false
	}
	return &existing, true
}

func isDuplicateKeyErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// ListAttendance daftar kehadiran satu event (khusus pemilik).
func (s *AttendanceService) ListAttendance(caller helper.Caller, eventID uuid.UUID) ([]model.EventAttendanceModel, error) {
	var event eventModel.EventModel
	if err := s.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		log.Println("[ERROR] ListAttendance query event gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	if !caller.CanManage(event.EventUserID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda bukan pemilik event ini")
	}

	var rows []model.EventAttendanceModel
	if err := s.DB.
		Joins("JOIN event_registrations ON event_registrations.event_registration_id = event_attendance.event_attendance_registration_id").
		Where("event_registrations.event_registration_event_id = ?", eventID).
		Order("event_attendance_checked_in_at DESC").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] ListAttendance query gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}
	return rows, nil
}
