package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"acaraku_backend/internals/features/events/events/model"
)

// FormFieldInput: satu field dari form builder.
// Options boleh dikirim sebagai JSON array literal (`["a","b"]`)
// ATAU teks dipisah newline; dua-duanya dinormalisasi ke JSON array.
type FormFieldInput struct {
	Label       string  `json:"label" validate:"required,min=1,max=255"`
	FieldType   string  `json:"field_type" validate:"required,oneof=text textarea email number date select radio checkbox"`
	Placeholder *string `json:"placeholder" validate:"omitempty,max=255"`
	HelpText    *string `json:"help_text" validate:"omitempty,max=255"`
	IsRequired  bool    `json:"is_required"`
	Options     *string `json:"options"`
}

// SaveFormRequest body untuk POST /api/a/events/:id/form
type SaveFormRequest struct {
	Fields []FormFieldInput `json:"fields" validate:"dive"`
}

// FormFieldResponse untuk menampilkan field tersimpan
type FormFieldResponse struct {
	FormFieldID uuid.UUID `json:"form_field_id"`
	Label       string    `json:"label"`
	FieldType   string    `json:"field_type"`
	Placeholder *string   `json:"placeholder,omitempty"`
	HelpText    *string   `json:"help_text,omitempty"`
	IsRequired  bool      `json:"is_required"`
	Options     []string  `json:"options,omitempty"`
	Order       int       `json:"order"`
}

// NormalizeOptions parse Options jadi slice string.
// nil / string kosong → nil (field bebas tanpa opsi).
func (f *FormFieldInput) NormalizeOptions() []string {
	if f.Options == nil {
		return nil
	}
	raw := strings.TrimSpace(*f.Options)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			return cleanOptions(arr)
		}
		// array literal rusak → fallback perlakukan sebagai teks biasa
	}

	return cleanOptions(strings.Split(raw, "\n"))
}

func cleanOptions(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ToModel konversi input jadi model siap simpan (order dari posisi di array).
func (f *FormFieldInput) ToModel(eventID uuid.UUID, order int) (*model.FormFieldModel, error) {
	m := &model.FormFieldModel{
		FormFieldEventID:     eventID,
		FormFieldLabel:       strings.TrimSpace(f.Label),
		FormFieldType:        f.FieldType,
		FormFieldPlaceholder: f.Placeholder,
		FormFieldHelpText:    f.HelpText,
		FormFieldIsRequired:  f.IsRequired,
		FormFieldOrder:       order,
	}

	if opts := f.NormalizeOptions(); opts != nil {
		b, err := json.Marshal(opts)
		if err != nil {
			return nil, err
		}
		m.FormFieldOptions = datatypes.JSON(b)
	}
	return m, nil
}

func ToFormFieldResponse(m *model.FormFieldModel) FormFieldResponse {
	resp := FormFieldResponse{
		FormFieldID: m.FormFieldID,
		Label:       m.FormFieldLabel,
		FieldType:   m.FormFieldType,
		Placeholder: m.FormFieldPlaceholder,
		HelpText:    m.FormFieldHelpText,
		IsRequired:  m.FormFieldIsRequired,
		Order:       m.FormFieldOrder,
	}
	if len(m.FormFieldOptions) > 0 {
		var arr []string
		if err := json.Unmarshal(m.FormFieldOptions, &arr); err == nil {
			resp.Options = arr
		}
	}
	return resp
}
