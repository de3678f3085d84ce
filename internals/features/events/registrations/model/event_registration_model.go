package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status pendaftaran. Transisi yang diizinkan hanya
// pending → accepted dan pending → rejected (terminal).
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type EventRegistrationModel struct {
	EventRegistrationID      uuid.UUID `gorm:"column:event_registration_id;type:uuid;primaryKey" json:"event_registration_id"`
	EventRegistrationEventID uuid.UUID `gorm:"column:event_registration_event_id;type:uuid;not null;index:idx_event_registrations_event_id" json:"event_registration_event_id"`
	EventRegistrationStatus  string    `gorm:"column:event_registration_status;type:varchar(20);not null;default:'pending'" json:"event_registration_status"`

	// Jawaban form pendaftar (map label → nilai), disimpan sebagai JSON
	EventRegistrationData datatypes.JSON `gorm:"column:event_registration_data;type:jsonb" json:"event_registration_data"`

	EventRegistrationCreatedAt time.Time `gorm:"column:event_registration_created_at;autoCreateTime" json:"event_registration_created_at"`
	EventRegistrationUpdatedAt time.Time `gorm:"column:event_registration_updated_at;autoUpdateTime" json:"event_registration_updated_at"`
}

func (EventRegistrationModel) TableName() string {
	return "event_registrations"
}

func (r *EventRegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if r.EventRegistrationID == uuid.Nil {
		r.EventRegistrationID = uuid.New()
	}
	if r.EventRegistrationStatus == "" {
		r.EventRegistrationStatus = StatusPending
	}
	return nil
}
