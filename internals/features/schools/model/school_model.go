package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SchoolModel is the tenant record. It is never hard-deleted; deactivation
// flips SchoolIsActive and leaves descendants untouched.
type SchoolModel struct {
	SchoolID            uuid.UUID      `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`
	SchoolName          string         `gorm:"column:school_name;type:varchar(150);not null;unique" json:"school_name"`
	SchoolAddress       *string        `gorm:"column:school_address;type:text" json:"school_address,omitempty"`
	SchoolCity          *string        `gorm:"column:school_city;type:varchar(100)" json:"school_city,omitempty"`
	SchoolContactEmail  *string        `gorm:"column:school_contact_email;type:varchar(255)" json:"school_contact_email,omitempty"`
	SchoolContactPhones pq.StringArray `gorm:"column:school_contact_phones;type:text[]" json:"school_contact_phones"`
	SchoolIsActive      bool           `gorm:"column:school_is_active;not null;default:true" json:"school_is_active"`
	SchoolCreatedBy     *uuid.UUID     `gorm:"column:school_created_by;type:uuid" json:"school_created_by,omitempty"`
	SchoolCreatedAt     time.Time      `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt     time.Time      `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
