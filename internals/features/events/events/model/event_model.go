package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	EventUserID      uuid.UUID `gorm:"column:event_user_id;type:uuid;not null;index:idx_events_user_id" json:"event_user_id"`
	EventName        string    `gorm:"column:event_name;type:varchar(255);not null" json:"event_name"`
	EventSlug        string    `gorm:"column:event_slug;type:varchar(100);not null;unique" json:"event_slug"`
	EventDescription string    `gorm:"column:event_description;type:text" json:"event_description"`
	EventLocation    string    `gorm:"column:event_location;type:varchar(255)" json:"event_location"`

	// Template HTML email penerimaan, placeholder {{name}} dan {{qr_url}}
	EventEmailTemplate *string `gorm:"column:event_email_template;type:text" json:"event_email_template,omitempty"`
	EventLogoURL       *string `gorm:"column:event_logo_url;type:text" json:"event_logo_url,omitempty"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	return nil
}
