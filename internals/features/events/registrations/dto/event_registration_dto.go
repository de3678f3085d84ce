package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"acaraku_backend/internals/features/events/registrations/model"
)

// Aksi transisi yang dikenal. pending → accepted | rejected, terminal.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// PublicRegisterRequest body pendaftaran publik.
// Data = jawaban form (label → nilai); divalidasi terhadap field wajib event.
type PublicRegisterRequest struct {
	Data map[string]string `json:"data" validate:"required"`
}

// TransitionRequest body untuk PATCH /api/a/registrations/:id
type TransitionRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
}

// BulkTransitionRequest body untuk POST /api/a/events/:id/registrations/bulk
type BulkTransitionRequest struct {
	RegistrationIDs []uuid.UUID `json:"registration_ids" validate:"required,min=1"`
	Action          string      `json:"action" validate:"required,oneof=accept reject"`
}

// RegistrationResponse untuk menampilkan data pendaftaran
type RegistrationResponse struct {
	ID           uuid.UUID         `json:"id"`
	EventID      uuid.UUID         `json:"event_id"`
	Status       string            `json:"status"`
	Data         map[string]string `json:"data"`
	RegisteredAt time.Time         `json:"registered_at"`
}

func ToRegistrationResponse(m *model.EventRegistrationModel) RegistrationResponse {
	resp := RegistrationResponse{
		ID:           m.EventRegistrationID,
		EventID:      m.EventRegistrationEventID,
		Status:       m.EventRegistrationStatus,
		RegisteredAt: m.EventRegistrationCreatedAt,
	}
	if len(m.EventRegistrationData) > 0 {
		_ = json.Unmarshal(m.EventRegistrationData, &resp.Data)
	}
	return resp
}

// ActionToStatus map aksi API ke status tersimpan.
func ActionToStatus(action string) (string, bool) {
	switch action {
	case ActionAccept:
		return model.StatusAccepted, true
	case ActionReject:
		return model.StatusRejected, true
	default:
		return "", false
	}
}
