package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventAttendanceModel: satu baris = satu registrasi sudah check-in.
// Unique index pada registration_id jadi arbiter race duplicate check-in:
// insert yang kalah gagal dan diterjemahkan ke 409, bukan 500.
type EventAttendanceModel struct {
	EventAttendanceID             uuid.UUID `gorm:"column:event_attendance_id;type:uuid;primaryKey" json:"event_attendance_id"`
	EventAttendanceRegistrationID uuid.UUID `gorm:"column:event_attendance_registration_id;type:uuid;not null;uniqueIndex:ux_event_attendance_registration" json:"event_attendance_registration_id"`
	EventAttendanceCheckedInBy    uuid.UUID `gorm:"column:event_attendance_checked_in_by;type:uuid;not null" json:"event_attendance_checked_in_by"`
	EventAttendanceCheckedInAt    time.Time `gorm:"column:event_attendance_checked_in_at;not null" json:"event_attendance_checked_in_at"`
}

func (EventAttendanceModel) TableName() string {
	return "event_attendance"
}

func (a *EventAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.EventAttendanceID == uuid.Nil {
		a.EventAttendanceID = uuid.New()
	}
	return nil
}
