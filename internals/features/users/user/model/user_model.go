package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"acaraku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserName string    `gorm:"column:user_name;size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"column:email;size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"column:password;not null" json:"-" validate:"required,min=8"`
	Role     string    `gorm:"column:role;type:varchar(20);not null;default:'user'" json:"role"`
	IsActive bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleUser
	}
	return nil
}

// IsSuperAdmin true hanya untuk akun super-admin
func (u *UserModel) IsSuperAdmin() bool {
	return u.Role == constants.RoleSuperAdmin
}
