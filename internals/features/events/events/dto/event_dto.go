package dto

import (
	"time"

	"github.com/google/uuid"

	"acaraku_backend/internals/features/events/events/model"
)

// EventRequest body create/update event
type EventRequest struct {
	EventName          string  `json:"event_name" validate:"required,min=3,max=255"`
	EventDescription   string  `json:"event_description"`
	EventLocation      string  `json:"event_location" validate:"max=255"`
	EventEmailTemplate *string `json:"event_email_template"`
}

// EventResponse untuk menampilkan data event
type EventResponse struct {
	EventID            uuid.UUID `json:"event_id"`
	EventUserID        uuid.UUID `json:"event_user_id"`
	EventName          string    `json:"event_name"`
	EventSlug          string    `json:"event_slug"`
	EventDescription   string    `json:"event_description"`
	EventLocation      string    `json:"event_location"`
	EventEmailTemplate *string   `json:"event_email_template,omitempty"`
	EventLogoURL       *string   `json:"event_logo_url,omitempty"`
	EventCreatedAt     time.Time `json:"event_created_at"`
}

func ToEventResponse(m *model.EventModel) EventResponse {
	return EventResponse{
		EventID:            m.EventID,
		EventUserID:        m.EventUserID,
		EventName:          m.EventName,
		EventSlug:          m.EventSlug,
		EventDescription:   m.EventDescription,
		EventLocation:      m.EventLocation,
		EventEmailTemplate: m.EventEmailTemplate,
		EventLogoURL:       m.EventLogoURL,
		EventCreatedAt:     m.EventCreatedAt,
	}
}
