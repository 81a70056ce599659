package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is an administrator account. UserSchoolID is set only for
// school_admin rows; superadmins carry no school binding.
type UserModel struct {
	UserID           uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserFullName     string     `gorm:"column:user_full_name;type:varchar(100);not null" json:"user_full_name"`
	UserEmail        string     `gorm:"column:user_email;type:varchar(255);not null" json:"user_email"`
	UserPasswordHash string     `gorm:"column:user_password_hash;type:text;not null" json:"-"`
	UserRole         string     `gorm:"column:user_role;type:varchar(20);not null" json:"user_role"`
	UserSchoolID     *uuid.UUID `gorm:"column:user_school_id;type:uuid" json:"user_school_id,omitempty"`
	UserIsActive     bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt    time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt    time.Time  `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
