package dto

import (
	"time"

	"github.com/google/uuid"

	"acaraku_backend/internals/features/events/attendance/model"
)

// AttendanceResponse hasil check-in
type AttendanceResponse struct {
	ID             uuid.UUID `json:"id"`
	RegistrationID uuid.UUID `json:"registration_id"`
	CheckedInBy    uuid.UUID `json:"checked_in_by"`
	CheckedInAt    time.Time `json:"checked_in_at"`
}

func ToAttendanceResponse(m *model.EventAttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:             m.EventAttendanceID,
		RegistrationID: m.EventAttendanceRegistrationID,
		CheckedInBy:    m.EventAttendanceCheckedInBy,
		CheckedInAt:    m.EventAttendanceCheckedInAt,
	}
}
