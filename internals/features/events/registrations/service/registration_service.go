package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"acaraku_backend/internals/configs"
	attendanceService "acaraku_backend/internals/features/events/attendance/service"
	eventModel "acaraku_backend/internals/features/events/events/model"
	"acaraku_backend/internals/features/events/registrations/dto"
	"acaraku_backend/internals/features/events/registrations/model"
	helper "acaraku_backend/internals/helpers"
	"acaraku_backend/internals/helpers/mailer"
)

type RegistrationService struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
}

func NewRegistrationService(db *gorm.DB, m mailer.Mailer) *RegistrationService {
	if m == nil {
		m = mailer.NoopMailer{}
	}
	return &RegistrationService{DB: db, Mailer: m}
}

// Register pendaftaran publik: validasi field wajib, status awal pending.
func (s *RegistrationService) Register(eventSlug string, req dto.PublicRegisterRequest) (*model.EventRegistrationModel, error) {
	var event eventModel.EventModel
	if err := s.DB.First(&event, "event_slug = ?", eventSlug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		log.Println("[ERROR] Register query event gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	var fields []eventModel.FormFieldModel
	if err := s.DB.Where("form_field_event_id = ?", event.EventID).Find(&fields).Error; err != nil {
		log.Println("[ERROR] Register query form gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	for _, f := range fields {
		if f.FormFieldIsRequired && strings.TrimSpace(req.Data[f.FormFieldLabel]) == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Field '%s' wajib diisi", f.FormFieldLabel))
		}
	}

	payload, err := json.Marshal(req.Data)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Data pendaftaran tidak valid")
	}

	reg := model.EventRegistrationModel{
		EventRegistrationEventID: event.EventID,
		EventRegistrationStatus:  model.StatusPending,
		EventRegistrationData:    datatypes.JSON(payload),
	}
	if err := s.DB.Create(&reg).Error; err != nil {
		log.Println("[ERROR] Register create gagal:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
	}
	return &reg, nil
}

// Transition: satu registrasi, khusus pemilik event.
func (s *RegistrationService) Transition(caller helper.Caller, registrationID uuid.UUID, action string) (int64, error) {
	status, ok := dto.ActionToStatus(action)
	if !ok {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Aksi tidak dikenal")
	}

	var reg model.EventRegistrationModel
	if err := s.DB.First(&reg, "event_registration_id = ?", registrationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Registrasi tidak ditemukan")
		}
		log.Println("[ERROR] Transition query registrasi gagal:", err)
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	event, err := s.loadOwnedEvent(caller, reg.EventRegistrationEventID)
	if err != nil {
		return 0, err
	}

	res := s.DB.Model(&model.EventRegistrationModel{}).
		Where("event_registration_id = ?", registrationID).
		Update("event_registration_status", status)
	if res.Error != nil {
		log.Println("[ERROR] Transition update gagal:", res.Error)
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah status registrasi")
	}

	if status == model.StatusAccepted {
		s.sendAcceptanceEmails(event, []uuid.UUID{registrationID})
	}
	return res.RowsAffected, nil
}

// BulkTransition: satu aksi untuk banyak registrasi dalam satu event.
// Query difilter event_id, jadi id dari event lain otomatis ter-skip
// (scoping safeguard, bukan error) — count hasil bisa < len(ids).
func (s *RegistrationService) BulkTransition(caller helper.Caller, eventID uuid.UUID, registrationIDs []uuid.UUID, action string) (int64, error) {
	status, ok := dto.ActionToStatus(action)
	if !ok {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Aksi tidak dikenal")
	}
	if len(registrationIDs) == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "registration_ids tidak boleh kosong")
	}

	event, err := s.loadOwnedEvent(caller, eventID)
	if err != nil {
		return 0, err
	}

	res := s.DB.Model(&model.EventRegistrationModel{}).
		Where("event_registration_event_id = ? AND event_registration_id IN ?", eventID, registrationIDs).
		Update("event_registration_status", status)
	if res.Error != nil {
		log.Println("[ERROR] BulkTransition update gagal:", res.Error)
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah status registrasi")
	}

	if status == model.StatusAccepted && res.RowsAffected > 0 {
		// kirim email hanya untuk id yang benar-benar milik event ini
		var ownedIDs []uuid.UUID
		if err := s.DB.Model(&model.EventRegistrationModel{}).
			Where("event_registration_event_id = ? AND event_registration_id IN ?", eventID, registrationIDs).
			Pluck("event_registration_id", &ownedIDs).Error; err == nil {
			s.sendAcceptanceEmails(event, ownedIDs)
		}
	}
	return res.RowsAffected, nil
}

// ListRegistrations per event milik caller, filter status opsional.
func (s *RegistrationService) ListRegistrations(caller helper.Caller, eventID uuid.UUID, status string, limit, offset int) ([]model.EventRegistrationModel, int64, error) {
	if _, err := s.loadOwnedEvent(caller, eventID); err != nil {
		return nil, 0, err
	}

	q := s.DB.Model(&model.EventRegistrationModel{}).
		Where("event_registration_event_id = ?", eventID)
	if status != "" {
		q = q.Where("event_registration_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung registrasi")
	}

	var regs []model.EventRegistrationModel
	if err := q.Order("event_registration_created_at DESC").Limit(limit).Offset(offset).Find(&regs).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data registrasi")
	}
	return regs, total, nil
}

func (s *RegistrationService) loadOwnedEvent(caller helper.Caller, eventID uuid.UUID) (*eventModel.EventModel, error) {
	var event eventModel.EventModel
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

/* ==========================
   Email penerimaan
========================== */

const defaultAcceptanceTemplate = `<p>Halo {{name}},</p>
<p>Pendaftaran Anda sudah kami terima. Tunjukkan QR code terlampir saat check-in.</p>
<p><a href="{{qr_url}}">Link check-in</a></p>`

// sendAcceptanceEmails kirim email + QR per registrasi yang punya alamat
// email di data formnya. Best-effort: gagal kirim hanya dicatat di log,
// transisi status tidak di-rollback.
func (s *RegistrationService) sendAcceptanceEmails(event *eventModel.EventModel, registrationIDs []uuid.UUID) {
	var regs []model.EventRegistrationModel
	if err := s.DB.Where("event_registration_id IN ?", registrationIDs).Find(&regs).Error; err != nil {
		log.Println("[ERROR] sendAcceptanceEmails query gagal:", err)
		return
	}

	tpl := defaultAcceptanceTemplate
	if event.EventEmailTemplate != nil && strings.TrimSpace(*event.EventEmailTemplate) != "" {
		tpl = *event.EventEmailTemplate
	}

	for i := range regs {
		reg := &regs[i]
		to, name := extractContact(reg.EventRegistrationData)
		if to == "" {
			continue
		}

		qrURL := attendanceService.BuildCheckinURL(configs.AppBaseURL, reg.EventRegistrationID)
		html := strings.NewReplacer("{{name}}", name, "{{qr_url}}", qrURL).Replace(tpl)

		qrPNG, err := attendanceService.GenerateQRPNG(configs.AppBaseURL, reg.EventRegistrationID, 256)
		if err != nil {
			log.Println("[ERROR] sendAcceptanceEmails QR gagal:", err)
			qrPNG = nil
		}

		msg := mailer.Message{
			To:      to,
			Subject: fmt.Sprintf("Pendaftaran diterima — %s", event.EventName),
			HTML:    html,
		}
		if qrPNG != nil {
			msg.AttachmentName = "qr-checkin.png"
			msg.AttachmentBytes = qrPNG
			msg.AttachmentMIME = "image/png"
		}

		if err := s.Mailer.Send(msg); err != nil {
			log.Printf("[ERROR] Gagal kirim email penerimaan reg=%s: %v", reg.EventRegistrationID, err)
		}
	}
}

// extractContact cari alamat email + nama dari jawaban form (key umum).
func extractContact(raw datatypes.JSON) (email, name string) {
	if len(raw) == 0 {
		return "", ""
	}
	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", ""
	}

	for k, v := range data {
		lk := strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		switch {
		case email == "" && strings.Contains(lk, "email") && strings.Contains(v, "@"):
			email = v
		case name == "" && (strings.Contains(lk, "nama") || strings.Contains(lk, "name")):
			name = v
		}
	}
	if name == "" {
		name = "Peserta"
	}
	return email, name
}
