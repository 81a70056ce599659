package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/classrooms/model"
)

/* ===============================
   Requests
=================================*/

type CreateClassroomRequest struct {
	ClassroomSchoolID   uuid.UUID `json:"classroom_school_id" validate:"required"`
	ClassroomName       string    `json:"classroom_name" validate:"required,min=1,max=100"`
	ClassroomGradeLevel int       `json:"classroom_grade_level" validate:"gte=0,lte=12"`
	ClassroomSection    *string   `json:"classroom_section" validate:"omitempty,max=20"`
	ClassroomCapacity   int       `json:"classroom_capacity" validate:"required,gt=0"`
}

func (r *CreateClassroomRequest) ToModel(createdBy uuid.UUID) *model.ClassroomModel {
	return &model.ClassroomModel{
		ClassroomSchoolID:      r.ClassroomSchoolID,
		ClassroomName:          r.ClassroomName,
		ClassroomGradeLevel:    r.ClassroomGradeLevel,
		ClassroomSection:       r.ClassroomSection,
		ClassroomCapacity:      r.ClassroomCapacity,
		ClassroomEnrolledCount: 0,
		ClassroomIsActive:      true,
		ClassroomCreatedBy:     &createdBy,
	}
}

// UpdateClassroomRequest is a partial patch. The school binding and the
// enrolled counter are not patchable; the counter belongs to the enrollment
// engine alone.
type UpdateClassroomRequest struct {
	ClassroomName       *string `json:"classroom_name" validate:"omitempty,min=1,max=100"`
	ClassroomGradeLevel *int    `json:"classroom_grade_level" validate:"omitempty,gte=0,lte=12"`
	ClassroomSection    *string `json:"classroom_section" validate:"omitempty,max=20"`
	ClassroomCapacity   *int    `json:"classroom_capacity" validate:"omitempty,gt=0"`
}

func (r *UpdateClassroomRequest) ApplyToModel(m *model.ClassroomModel) {
	if r.ClassroomName != nil {
		m.ClassroomName = *r.ClassroomName
	}
	if r.ClassroomGradeLevel != nil {
		m.ClassroomGradeLevel = *r.ClassroomGradeLevel
	}
	if r.ClassroomSection != nil {
		m.ClassroomSection = r.ClassroomSection
	}
	if r.ClassroomCapacity != nil {
		m.ClassroomCapacity = *r.ClassroomCapacity
	}
}

/* ===============================
   Responses
=================================*/

type ClassroomResponse struct {
	ClassroomID            uuid.UUID  `json:"classroom_id"`
	ClassroomSchoolID      uuid.UUID  `json:"classroom_school_id"`
	ClassroomName          string     `json:"classroom_name"`
	ClassroomGradeLevel    int        `json:"classroom_grade_level"`
	ClassroomSection       *string    `json:"classroom_section,omitempty"`
	ClassroomCapacity      int        `json:"classroom_capacity"`
	ClassroomEnrolledCount int        `json:"classroom_enrolled_count"`
	ClassroomIsActive      bool       `json:"classroom_is_active"`
	ClassroomCreatedBy     *uuid.UUID `json:"classroom_created_by,omitempty"`
	ClassroomCreatedAt     time.Time  `json:"classroom_created_at"`
	ClassroomUpdatedAt     time.Time  `json:"classroom_updated_at"`
}

func FromModel(m *model.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID:            m.ClassroomID,
		ClassroomSchoolID:      m.ClassroomSchoolID,
		ClassroomName:          m.ClassroomName,
		ClassroomGradeLevel:    m.ClassroomGradeLevel,
		ClassroomSection:       m.ClassroomSection,
		ClassroomCapacity:      m.ClassroomCapacity,
		ClassroomEnrolledCount: m.ClassroomEnrolledCount,
		ClassroomIsActive:      m.ClassroomIsActive,
		ClassroomCreatedBy:     m.ClassroomCreatedBy,
		ClassroomCreatedAt:     m.ClassroomCreatedAt,
		ClassroomUpdatedAt:     m.ClassroomUpdatedAt,
	}
}

func FromModels(ms []model.ClassroomModel) []ClassroomResponse {
	out := make([]ClassroomResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// ClassroomSummary is the denormalized header returned with a classroom's
// student roster.
type ClassroomSummary struct {
	ClassroomID            uuid.UUID `json:"classroom_id"`
	ClassroomName          string    `json:"classroom_name"`
	ClassroomGradeLevel    int       `json:"classroom_grade_level"`
	ClassroomSection       *string   `json:"classroom_section,omitempty"`
	ClassroomCapacity      int       `json:"classroom_capacity"`
	ClassroomEnrolledCount int       `json:"classroom_enrolled_count"`
}

func SummaryFromModel(m *model.ClassroomModel) ClassroomSummary {
	return ClassroomSummary{
		ClassroomID:            m.ClassroomID,
		ClassroomName:          m.ClassroomName,
		ClassroomGradeLevel:    m.ClassroomGradeLevel,
		ClassroomSection:       m.ClassroomSection,
		ClassroomCapacity:      m.ClassroomCapacity,
		ClassroomEnrolledCount: m.ClassroomEnrolledCount,
	}
}
