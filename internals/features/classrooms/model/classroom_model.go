package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassroomModel carries the seat ledger. ClassroomEnrolledCount is owned by
// the enrollment engine; nothing else may write it. The invariant
// 0 <= enrolled_count <= capacity holds after every committed operation and
// is backed by a CHECK constraint in the schema.
type ClassroomModel struct {
	ClassroomID            uuid.UUID  `gorm:"column:classroom_id;type:uuid;default:gen_random_uuid();primaryKey" json:"classroom_id"`
	ClassroomSchoolID      uuid.UUID  `gorm:"column:classroom_school_id;type:uuid;not null" json:"classroom_school_id"`
	ClassroomName          string     `gorm:"column:classroom_name;type:varchar(100);not null" json:"classroom_name"`
	ClassroomGradeLevel    int        `gorm:"column:classroom_grade_level;not null" json:"classroom_grade_level"`
	ClassroomSection       *string    `gorm:"column:classroom_section;type:varchar(20)" json:"classroom_section,omitempty"`
	ClassroomCapacity      int        `gorm:"column:classroom_capacity;not null" json:"classroom_capacity"`
	ClassroomEnrolledCount int        `gorm:"column:classroom_enrolled_count;not null;default:0" json:"classroom_enrolled_count"`
	ClassroomIsActive      bool       `gorm:"column:classroom_is_active;not null;default:true" json:"classroom_is_active"`
	ClassroomCreatedBy     *uuid.UUID `gorm:"column:classroom_created_by;type:uuid" json:"classroom_created_by,omitempty"`
	ClassroomCreatedAt     time.Time  `gorm:"column:classroom_created_at;autoCreateTime" json:"classroom_created_at"`
	ClassroomUpdatedAt     time.Time  `gorm:"column:classroom_updated_at;autoUpdateTime" json:"classroom_updated_at"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}
