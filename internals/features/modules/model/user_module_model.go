package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModuleModel: grant modul per user.
// Unik per (user_id, module_id) — diikat unique index gabungan.
type UserModuleModel struct {
	UserModuleID        uuid.UUID `gorm:"column:user_module_id;type:uuid;primaryKey" json:"user_module_id"`
	UserModuleUserID    uuid.UUID `gorm:"column:user_module_user_id;type:uuid;not null;uniqueIndex:ux_user_modules_user_module" json:"user_module_user_id"`
	UserModuleModuleID  uuid.UUID `gorm:"column:user_module_module_id;type:uuid;not null;uniqueIndex:ux_user_modules_user_module" json:"user_module_module_id"`
	UserModuleIsEnabled bool      `gorm:"column:user_module_is_enabled;not null;default:true" json:"user_module_is_enabled"`

	UserModuleCreatedAt time.Time `gorm:"column:user_module_created_at;autoCreateTime" json:"user_module_created_at"`
	UserModuleUpdatedAt time.Time `gorm:"column:user_module_updated_at;autoUpdateTime" json:"user_module_updated_at"`
}

func (UserModuleModel) TableName() string {
	return "user_modules"
}

func (um *UserModuleModel) BeforeCreate(tx *gorm.DB) error {
	if um.UserModuleID == uuid.Nil {
		um.UserModuleID = uuid.New()
	}
	return nil
}
