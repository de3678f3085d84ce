package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormFieldModel: satu field pada form pendaftaran event.
// Simpan-ulang form selalu full replace: semua field lama event dihapus
// dan diganti set baru dalam satu transaksi.
type FormFieldModel struct {
	FormFieldID      uuid.UUID `gorm:"column:form_field_id;type:uuid;primaryKey" json:"form_field_id"`
	FormFieldEventID uuid.UUID `gorm:"column:form_field_event_id;type:uuid;not null;index:idx_form_fields_event_id" json:"form_field_event_id"`

	FormFieldLabel       string  `gorm:"column:form_field_label;type:varchar(255);not null" json:"form_field_label"`
	FormFieldType        string  `gorm:"column:form_field_type;type:varchar(30);not null" json:"form_field_type"`
	FormFieldPlaceholder *string `gorm:"column:form_field_placeholder;type:varchar(255)" json:"form_field_placeholder,omitempty"`
	FormFieldHelpText    *string `gorm:"column:form_field_help_text;type:varchar(255)" json:"form_field_help_text,omitempty"`
	FormFieldIsRequired  bool    `gorm:"column:form_field_is_required;not null;default:false" json:"form_field_is_required"`

	// Opsi pilihan (select/radio/checkbox) sebagai JSON array; NULL untuk field bebas
	FormFieldOptions datatypes.JSON `gorm:"column:form_field_options;type:jsonb" json:"form_field_options,omitempty"`

	FormFieldOrder int `gorm:"column:form_field_order;not null;default:0" json:"form_field_order"`

	FormFieldCreatedAt time.Time `gorm:"column:form_field_created_at;autoCreateTime" json:"form_field_created_at"`
}

func (FormFieldModel) TableName() string {
	return "form_fields"
}

func (f *FormFieldModel) BeforeCreate(tx *gorm.DB) error {
	if f.FormFieldID == uuid.Nil {
		f.FormFieldID = uuid.New()
	}
	return nil
}
