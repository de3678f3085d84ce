package service

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "acaraku_backend/internals/features/events/attendance/model"
	"acaraku_backend/internals/features/events/events/dto"
	"acaraku_backend/internals/features/events/events/model"
	registrationModel "acaraku_backend/internals/features/events/registrations/model"
	helper "acaraku_backend/internals/helpers"
)

type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

// loadOwnedEvent ambil event + enforce ownership (super-admin bebas).
func (s *EventService) loadOwnedEvent(caller helper.Caller, eventID uuid.UUID) (*model.EventModel, error) {
	var event model.EventModel
	if err := s.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		log.Println("[ERROR] loadOwnedEvent query gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	if !caller.CanManage(event.EventUserID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda bukan pemilik event ini")
	}
	return &event, nil
}

// CreateEvent bikin event baru milik caller, slug digenerate unik dari nama.
func (s *EventService) CreateEvent(caller helper.Caller, req dto.EventRequest) (*model.EventModel, error) {
	slug, err := helper.EnsureUniqueSlug(s.DB, helper.GenerateSlug(req.EventName), "events", "event_slug")
	if err != nil {
		log.Println("[ERROR] CreateEvent slug gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slug event")
	}

	event := model.EventModel{
		EventUserID:        caller.ID,
		EventName:          strings.TrimSpace(req.EventName),
		EventSlug:          slug,
		EventDescription:   req.EventDescription,
		EventLocation:      req.EventLocation,
		EventEmailTemplate: req.EventEmailTemplate,
	}
	if err := s.DB.Create(&event).Error; err != nil {
		log.Println("[ERROR] CreateEvent gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan event")
	}
	return &event, nil
}

// UpdateEvent ubah data event (slug tidak berubah).
func (s *EventService) UpdateEvent(caller helper.Caller, eventID uuid.UUID, req dto.EventRequest) (*model.EventModel, error) {
	event, err := s.loadOwnedEvent(caller, eventID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"event_name":           strings.TrimSpace(req.EventName),
		"event_description":    req.EventDescription,
		"event_location":       req.EventLocation,
		"event_email_template": req.EventEmailTemplate,
	}
	if err := s.DB.Model(event).Updates(updates).Error; err != nil {
		log.Println("[ERROR] UpdateEvent gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah event")
	}
	return event, nil
}

// DeleteEvent hapus event + anak-anaknya dalam satu transaksi.
func (s *EventService) DeleteEvent(caller helper.Caller, eventID uuid.UUID) error {
	event, err := s.loadOwnedEvent(caller, eventID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var regIDs []uuid.UUID
		if err := tx.Model(&registrationModel.EventRegistrationModel{}).
			Where("event_registration_event_id = ?", event.EventID).
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
		if err := tx.Where("form_field_event_id = ?", event.EventID).
			Delete(&model.FormFieldModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.EventModel{}, "event_id = ?", event.EventID).Error
	})
}

// GetEventBySlug untuk halaman pendaftaran publik.
func (s *EventService) GetEventBySlug(slug string) (*model.EventModel, error) {
	var event model.EventModel
	if err := s.DB.First(&event, "event_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		log.Println("[ERROR] GetEventBySlug query gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	return &event, nil
}

// ListEvents: milik caller; super-admin dapat semua.
func (s *EventService) ListEvents(caller helper.Caller, limit, offset int) ([]model.EventModel, int64, error) {
	q := s.DB.Model(&model.EventModel{})
	if !caller.IsSuperAdmin() {
		q = q.Where("event_user_id = ?", caller.ID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung event")
	}

	var events []model.EventModel
	if err := q.Order("event_created_at DESC").Limit(limit).Offset(offset).Find(&events).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data event")
	}
	return events, total, nil
}

// SaveForm full replace: hapus semua field lama event, insert set baru,
// satu transaksi supaya pembaca tidak pernah lihat campuran lama+baru.
func (s *EventService) SaveForm(caller helper.Caller, eventID uuid.UUID, fields []dto.FormFieldInput) ([]model.FormFieldModel, error) {
	if _, err := s.loadOwnedEvent(caller, eventID); err != nil {
		return nil, err
	}

	newFields := make([]model.FormFieldModel, 0, len(fields))
	for i := range fields {
		m, err := fields[i].ToModel(eventID, i)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Opsi field tidak valid")
		}
		newFields = append(newFields, *m)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_field_event_id = ?", eventID).
			Delete(&model.FormFieldModel{}).Error; err != nil {
			return err
		}
		if len(newFields) == 0 {
			return nil
		}
		return tx.Create(&newFields).Error
	})
	if err != nil {
		log.Println("[ERROR] SaveForm gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan form")
	}
	return newFields, nil
}

// ListFields urut sesuai form builder.
func (s *EventService) ListFields(eventID uuid.UUID) ([]model.FormFieldModel, error) {
	var fields []model.FormFieldModel
	if err := s.DB.Where("form_field_event_id = ?", eventID).
		Order("form_field_order ASC").
		Find(&fields).Error; err != nil {
		log.Println("[ERROR] ListFields query gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data form")
	}
	return fields, nil
}

// SetLogoURL simpan URL logo hasil upload OSS ke event.
func (s *EventService) SetLogoURL(caller helper.Caller, eventID uuid.UUID, url string) error {
	event, err := s.loadOwnedEvent(caller, eventID)
	if err != nil {
		return err
	}
	if err := s.DB.Model(event).Update("event_logo_url", url).Error; err != nil {
		log.Println("[ERROR] SetLogoURL gagal:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan logo event")
	}
	return nil
}
