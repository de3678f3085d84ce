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
	attendanceModel "acaraku_backend/internals/features/events/attendance/model"
	"acaraku_backend/internals/features/events/events/dto"
	"acaraku_backend/internals/features/events/events/model"
	registrationModel "acaraku_backend/internals/features/events/registrations/model"
	helper "acaraku_backend/internals/helpers"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.EventModel{},
		&model.FormFieldModel{},
		&registrationModel.EventRegistrationModel{},
		&attendanceModel.EventAttendanceModel{},
	))
	return db
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

func strptr(s string) *string { return &s }

func TestCreateEventGeneratesUniqueSlug(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)
	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}

	e1, err := svc.CreateEvent(owner, dto.EventRequest{EventName: "Tech Meetup"})
	require.NoError(t, err)
	assert.Equal(t, "tech-meetup", e1.EventSlug)
	assert.Equal(t, owner.ID, e1.EventUserID)

	e2, err := svc.CreateEvent(owner, dto.EventRequest{EventName: "Tech Meetup"})
	require.NoError(t, err)
	assert.NotEqual(t, e1.EventSlug, e2.EventSlug)
	assert.Contains(t, e2.EventSlug, "tech-meetup")
}

func TestUpdateEventKeepsSlugAndEnforcesOwner(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)
	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}

	event, err := svc.CreateEvent(owner, dto.EventRequest{EventName: "Tech Meetup"})
	require.NoError(t, err)

	other := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	_, err = svc.UpdateEvent(other, event.EventID, dto.EventRequest{EventName: "Diubah"})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	updated, err := svc.UpdateEvent(owner, event.EventID, dto.EventRequest{
		EventName:     "Tech Meetup 2026",
		EventLocation: "Jakarta",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tech Meetup 2026", updated.EventName)
	assert.Equal(t, "tech-meetup", updated.EventSlug)
}

func TestGetEventBySlug(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)
	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}

	created, err := svc.CreateEvent(owner, dto.EventRequest{EventName: "Tech Meetup"})
	require.NoError(t, err)

	found, err := svc.GetEventBySlug("tech-meetup")
	require.NoError(t, err)
	assert.Equal(t, created.EventID, found.EventID)

	_, err = svc.GetEventBySlug("tidak-ada")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestListEventsOwnerVsSuperAdmin(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)

	alice := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	bob := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}

	_, err := svc.CreateEvent(alice, dto.EventRequest{EventName: "Acara Alice"})
	require.NoError(t, err)
	_, err = svc.CreateEvent(bob, dto.EventRequest{EventName: "Acara Bob"})
	require.NoError(t, err)

	events, total, err := svc.ListEvents(alice, 25, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, events, 1)
	assert.Equal(t, alice.ID, events[0].EventUserID)

	super := helper.Caller{ID: uuid.New(), Role: constants.RoleSuperAdmin}
	_, total, err = svc.ListEvents(super, 25, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

// Simpan form = replace total: field lama hilang, set baru dipakai utuh.
func TestSaveFormReplacesExistingFields(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)
	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}

	event, err := svc.CreateEvent(owner, dto.EventRequest{EventName: "Tech Meetup"})
	require.NoError(t, err)

	first := []dto.FormFieldInput{
		{Label: "Nama Lengkap", FieldType: "text", IsRequired: true},
		{Label: "Email", FieldType: "email", IsRequired: true},
		{Label: "Instansi", FieldType: "text"},
	}
	saved, err := svc.SaveForm(owner, event.EventID, first)
	require.NoError(t, err)
	require.Len(t, saved, 3)

	second := []dto.FormFieldInput{
		{Label: "Ukuran Kaos", FieldType: "select", Options: strptr("S\nM\nL")},
		{Label: "Email", FieldType: "email", IsRequired: true},
	}
	saved, err = svc.SaveForm(owner, event.EventID, second)
	require.NoError(t, err)
	require.Len(t, saved, 2)

	fields, err := svc.ListFields(event.EventID)
	require.NoError(t, err)
	require.Len(t, fields, 2)

	// urutan = posisi di array
	assert.Equal(t, "Ukuran Kaos", fields[0].FormFieldLabel)
	assert.Equal(t, 0, fields[0].FormFieldOrder)
	assert.Equal(t, "Email", fields[1].FormFieldLabel)
	assert.Equal(t, 1, fields[1].FormFieldOrder)

	// options ternormalisasi jadi array JSON
	var opts []string
	require.NoError(t, json.Unmarshal(fields[0].FormFieldOptions, &opts))
	assert.Equal(t, []string{"S", "M", "L"}, opts)
}

func TestSaveFormEmptyClearsForm(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)
	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}

	event, err := svc.CreateEvent(owner, dto.EventRequest{EventName: "Tech Meetup"})
	require.NoError(t, err)

	_, err = svc.SaveForm(owner, event.EventID, []dto.FormFieldInput{
		{Label: "Nama", FieldType: "text"},
	})
	require.NoError(t, err)

	saved, err := svc.SaveForm(owner, event.EventID, nil)
	require.NoError(t, err)
	assert.Empty(t, saved)

	fields, err := svc.ListFields(event.EventID)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestSaveFormRequiresOwnership(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)
	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}

	event, err := svc.CreateEvent(owner, dto.EventRequest{EventName: "Tech Meetup"})
	require.NoError(t, err)

	other := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	_, err = svc.SaveForm(other, event.EventID, []dto.FormFieldInput{
		{Label: "Nama", FieldType: "text"},
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestDeleteEventCascades(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)
	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}

	event, err := svc.CreateEvent(owner, dto.EventRequest{EventName: "Tech Meetup"})
	require.NoError(t, err)

	_, err = svc.SaveForm(owner, event.EventID, []dto.FormFieldInput{
		{Label: "Nama", FieldType: "text"},
	})
	require.NoError(t, err)

	reg := registrationModel.EventRegistrationModel{
		EventRegistrationEventID: event.EventID,
		EventRegistrationStatus:  registrationModel.StatusAccepted,
	}
	require.NoError(t, db.Create(&reg).Error)
	require.NoError(t, db.Create(&attendanceModel.EventAttendanceModel{
		EventAttendanceRegistrationID: reg.EventRegistrationID,
		EventAttendanceCheckedInBy:    owner.ID,
	}).Error)

	require.NoError(t, svc.DeleteEvent(owner, event.EventID))

	for _, m := range []interface{}{
		&model.EventModel{}, &model.FormFieldModel{},
		&registrationModel.EventRegistrationModel{}, &attendanceModel.EventAttendanceModel{},
	} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	}
}

func TestSetLogoURL(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)
	owner := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}

	event, err := svc.CreateEvent(owner, dto.EventRequest{EventName: "Tech Meetup"})
	require.NoError(t, err)

	other := helper.Caller{ID: uuid.New(), Role: constants.RoleAdmin}
	err = svc.SetLogoURL(other, event.EventID, "https://cdn.example.com/logo.webp")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	require.NoError(t, svc.SetLogoURL(owner, event.EventID, "https://cdn.example.com/logo.webp"))

	var reloaded model.EventModel
	require.NoError(t, db.First(&reloaded, "event_id = ?", event.EventID).Error)
	require.NotNil(t, reloaded.EventLogoURL)
	assert.Equal(t, "https://cdn.example.com/logo.webp", *reloaded.EventLogoURL)
}
