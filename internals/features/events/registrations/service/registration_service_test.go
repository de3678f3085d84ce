package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acaraku_backend/internals/constants"
	eventModel "acaraku_backend/internals/features/events/events/model"
	"acaraku_backend/internals/features/events/registrations/dto"
	"acaraku_backend/internals/features/events/registrations/model"
	helper "acaraku_backend/internals/helpers"
	"acaraku_backend/internals/helpers/mailer"
)

// recordMailer rekam pesan yang "terkirim" untuk diverifikasi test.
type recordMailer struct {
	sent []mailer.Message
}

func (m *recordMailer) Send(msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

// failingMailer selalu gagal — buat memastikan transisi tidak ikut gagal.
type failingMailer struct{}

func (failingMailer) Send(mailer.Message) error {
	return errors.New("smtp down")
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&eventModel.EventModel{},
		&eventModel.FormFieldModel{},
		&model.EventRegistrationModel{},
	))
	return db
}

func seedEvent(t *testing.T, db *gorm.DB, ownerID uuid.UUID, slug string) *eventModel.EventModel {
	t.Helper()
	event := eventModel.EventModel{
		EventUserID: ownerID,
		EventName:   "Tech Meetup",
		EventSlug:   slug,
	}
	require.NoError(t, db.Create(&event).Error)
	return &event
}

func seedRegistration(t *testing.T, db *gorm.DB, eventID uuid.UUID, data map[string]string) *model.EventRegistrationModel {
	t.Helper()
	payload, err := json.Marshal(data)
	require.NoError(t, err)
	reg := model.EventRegistrationModel{
		EventRegistrationEventID: eventID,
		EventRegistrationStatus:  model.StatusPending,
		EventRegistrationData:    payload,
	}
	require.NoError(t, db.Create(&reg).Error)
	return &reg
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

func regStatus(t *testing.T, db *gorm.DB, id uuid.UUID) string {
	t.Helper()
	var reg model.EventRegistrationModel
	require.NoError(t, db.First(&reg, "event_registration_id = ?", id).Error)
	return reg.EventRegistrationStatus
}

func TestRegisterCreatesPendingRegistration(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegistrationService(db, nil)

	event := seedEvent(t, db, uuid.New(), "tech-meetup")
	require.NoError(t, db.Create(&eventModel.FormFieldModel{
		FormFieldEventID:    event.EventID,
		FormFieldLabel:      "Nama Lengkap",
		FormFieldType:       "text",
		FormFieldIsRequired: true,
	}).Error)

	reg, err := svc.Register("tech-meetup", dto.PublicRegisterRequest{
		Data: map[string]string{"Nama Lengkap": "Alice", "Email": "alice@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, reg.EventRegistrationStatus)
	assert.Equal(t, event.EventID, reg.EventRegistrationEventID)

	var stored map[string]string
	require.NoError(t, json.Unmarshal(reg.EventRegistrationData, &stored))
	assert.Equal(t, "Alice", stored["Nama Lengkap"])
}

func TestRegisterRejectsMissingRequiredField(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegistrationService(db, nil)

	event := seedEvent(t, db, uuid.New(), "tech-meetup")
	require.NoError(t, db.Create(&eventModel.FormFieldModel{
		FormFieldEventID:    event.EventID,
		FormFieldLabel:      "Nama Lengkap",
		FormFieldType:       "text",
		FormFieldIsRequired: true,
	}).Error)

	// hilang sama sekali
	_, err := svc.Register("tech-meetup", dto.PublicRegisterRequest{
		Data: map[string]string{"Email": "alice@example.com"},
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	// string kosong juga dianggap belum diisi
	_, err = svc.Register("tech-meetup", dto.PublicRegisterRequest{
		Data: map[string]string{"Nama Lengkap": "   "},
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestRegisterUnknownEventSlug(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegistrationService(db, nil)

	_, err := svc.Register("tidak-ada", dto.PublicRegisterRequest{
		Data: map[string]string{"Nama": "Alice"},
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestTransitionAcceptAndReject(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegistrationService(db, nil)

	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	event := seedEvent(t, db, owner.ID, "tech-meetup")
	regA := seedRegistration(t, db, event.EventID, map[string]string{"Nama": "Alice"})
	regB := seedRegistration(t, db, event.EventID, map[string]string{"Nama": "Bob"})

	updated, err := svc.Transition(owner, regA.EventRegistrationID, dto.ActionAccept)
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated)
	assert.Equal(t, model.StatusAccepted, regStatus(t, db, regA.EventRegistrationID))

	updated, err = svc.Transition(owner, regB.EventRegistrationID, dto.ActionReject)
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated)
	assert.Equal(t, model.StatusRejected, regStatus(t, db, regB.EventRegistrationID))
}

func TestTransitionRequiresOwnership(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegistrationService(db, nil)

	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	event := seedEvent(t, db, owner.ID, "tech-meetup")
	reg := seedRegistration(t, db, event.EventID, map[string]string{"Nama": "Alice"})

	other := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	_, err := svc.Transition(other, reg.EventRegistrationID, dto.ActionAccept)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	assert.Equal(t, model.StatusPending, regStatus(t, db, reg.EventRegistrationID))

	// super-admin boleh
	super := helper.Caller{ID: uuid.New(), Role: constants.RoleSuperAdmin}
	_, err = svc.Transition(super, reg.EventRegistrationID, dto.ActionAccept)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, regStatus(t, db, reg.EventRegistrationID))
}

func TestTransitionUnknownAction(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegistrationService(db, nil)

	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	event := seedEvent(t, db, owner.ID, "tech-meetup")
	reg := seedRegistration(t, db, event.EventID, map[string]string{"Nama": "Alice"})

	_, err := svc.Transition(owner, reg.EventRegistrationID, "archive")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

// Bulk update dibatasi event_id: id milik event lain di-skip diam-diam,
// count yang dikembalikan hanya baris yang benar-benar berubah.
func TestBulkTransitionScopedToEvent(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegistrationService(db, nil)

	alice := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	bob := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}

	eventA := seedEvent(t, db, alice.ID, "acara-alice")
	eventB := seedEvent(t, db, bob.ID, "acara-bob")

	reg1 := seedRegistration(t, db, eventA.EventID, map[string]string{"Nama": "P1"})
	reg2 := seedRegistration(t, db, eventA.EventID, map[string]string{"Nama": "P2"})
	reg3 := seedRegistration(t, db, eventB.EventID, map[string]string{"Nama": "P3"})

	updated, err := svc.BulkTransition(alice, eventA.EventID,
		[]uuid.UUID{reg1.EventRegistrationID, reg2.EventRegistrationID, reg3.EventRegistrationID},
		dto.ActionAccept)
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	assert.Equal(t, model.StatusAccepted, regStatus(t, db, reg1.EventRegistrationID))
	assert.Equal(t, model.StatusAccepted, regStatus(t, db, reg2.EventRegistrationID))
	// registrasi event milik Bob tidak tersentuh
	assert.Equal(t, model.StatusPending, regStatus(t, db, reg3.EventRegistrationID))
}

func TestBulkTransitionRequiresOwnership(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegistrationService(db, nil)

	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	event := seedEvent(t, db, owner.ID, "tech-meetup")
	reg := seedRegistration(t, db, event.EventID, map[string]string{"Nama": "Alice"})

	other := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	_, err := svc.BulkTransition(other, event.EventID,
		[]uuid.UUID{reg.EventRegistrationID}, dto.ActionAccept)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestAcceptSendsEmailWithTemplateAndQR(t *testing.T) {
	db := openTestDB(t)
	rec := &recordMailer{}
	svc := NewRegistrationService(db, rec)

	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	tpl := "<p>Selamat {{name}}! QR: {{qr_url}}</p>"
	event := seedEvent(t, db, owner.ID, "tech-meetup")
	require.NoError(t, db.Model(event).Update("event_email_template", tpl).Error)

	reg := seedRegistration(t, db, event.EventID, map[string]string{
		"Nama Lengkap": "Alice",
		"Alamat Email": "alice@example.com",
	})

	_, err := svc.Transition(owner, reg.EventRegistrationID, dto.ActionAccept)
	require.NoError(t, err)

	require.Len(t, rec.sent, 1)
	msg := rec.sent[0]
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Contains(t, msg.HTML, "Selamat Alice!")
	assert.Contains(t, msg.HTML, "/attendance/"+reg.EventRegistrationID.String())
	assert.Equal(t, "qr-checkin.png", msg.AttachmentName)
	assert.Equal(t, "image/png", msg.AttachmentMIME)
	assert.NotEmpty(t, msg.AttachmentBytes)
}

func TestAcceptWithoutEmailAddressSkipsSend(t *testing.T) {
	db := openTestDB(t)
	rec := &recordMailer{}
	svc := NewRegistrationService(db, rec)

	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	event := seedEvent(t, db, owner.ID, "tech-meetup")
	reg := seedRegistration(t, db, event.EventID, map[string]string{"Nama": "Alice"})

	_, err := svc.Transition(owner, reg.EventRegistrationID, dto.ActionAccept)
	require.NoError(t, err)
	assert.Empty(t, rec.sent)
	assert.Equal(t, model.StatusAccepted, regStatus(t, db, reg.EventRegistrationID))
}

func TestRejectDoesNotSendEmail(t *testing.T) {
	db := openTestDB(t)
	rec := &recordMailer{}
	svc := NewRegistrationService(db, rec)

	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	event := seedEvent(t, db, owner.ID, "tech-meetup")
	reg := seedRegistration(t, db, event.EventID, map[string]string{
		"Email": "alice@example.com",
	})

	_, err := svc.Transition(owner, reg.EventRegistrationID, dto.ActionReject)
	require.NoError(t, err)
	assert.Empty(t, rec.sent)
}

// Email gagal = log saja, status tetap berubah.
func TestEmailFailureDoesNotRollbackTransition(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegistrationService(db, failingMailer{})

	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	event := seedEvent(t, db, owner.ID, "tech-meetup")
	reg := seedRegistration(t, db, event.EventID, map[string]string{
		"Email": "alice@example.com",
	})

	updated, err := svc.Transition(owner, reg.EventRegistrationID, dto.ActionAccept)
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated)
	assert.Equal(t, model.StatusAccepted, regStatus(t, db, reg.EventRegistrationID))
}

func TestListRegistrationsFilterByStatus(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegistrationService(db, nil)

	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	event := seedEvent(t, db, owner.ID, "tech-meetup")
	reg1 := seedRegistration(t, db, event.EventID, map[string]string{"Nama": "P1"})
	seedRegistration(t, db, event.EventID, map[string]string{"Nama": "P2"})

	_, err := svc.Transition(owner, reg1.EventRegistrationID, dto.ActionAccept)
	require.NoError(t, err)

	regs, total, err := svc.ListRegistrations(owner, event.EventID, model.StatusPending, 25, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, regs, 1)
	assert.Equal(t, model.StatusPending, regs[0].EventRegistrationStatus)

	regs, total, err = svc.ListRegistrations(owner, event.EventID, "", 25, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, regs, 2)
}

func TestExtractContact(t *testing.T) {
	payload, _ := json.Marshal(map[string]string{
		"Nama Lengkap": "Alice",
		"Alamat Email": "alice@example.com",
	})
	email, name := extractContact(payload)
	assert.Equal(t, "alice@example.com", email)
	assert.Equal(t, "Alice", name)

	// tanpa email → kosong, nama fallback
	payload, _ = json.Marshal(map[string]string{"Instansi": "ACME"})
	email, name = extractContact(payload)
	assert.Empty(t, email)
	assert.Equal(t, "Peserta", name)
}
