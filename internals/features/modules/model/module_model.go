package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModuleModel: data referensi fitur yang bisa diaktifkan per user
type ModuleModel struct {
	ModuleID          uuid.UUID `gorm:"column:module_id;type:uuid;primaryKey" json:"module_id"`
	ModuleName        string    `gorm:"column:module_name;type:varchar(100);not null;unique" json:"module_name"`
	ModuleDescription string    `gorm:"column:module_description;type:text" json:"module_description"`
	ModuleIsActive    bool      `gorm:"column:module_is_active;not null;default:true" json:"module_is_active"`

	ModuleCreatedAt time.Time `gorm:"column:module_created_at;autoCreateTime" json:"module_created_at"`
	ModuleUpdatedAt time.Time `gorm:"column:module_updated_at;autoUpdateTime" json:"module_updated_at"`
}

func (ModuleModel) TableName() string {
	return "modules"
}

func (m *ModuleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModuleID == uuid.Nil {
		m.ModuleID = uuid.New()
	}
	return nil
}
