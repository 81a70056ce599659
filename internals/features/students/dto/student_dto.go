package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/students/model"
)

/* ===============================
   Requests
=================================*/

// CreateStudentRequest enrolls a new student into a classroom. The school
// binding is stated explicitly and checked against the classroom's school.
type CreateStudentRequest struct {
	StudentSchoolID      uuid.UUID `json:"student_school_id" validate:"required"`
	StudentClassroomID   uuid.UUID `json:"student_classroom_id" validate:"required"`
	StudentFirstName     string    `json:"student_first_name" validate:"required,min=1,max=100"`
	StudentLastName      string    `json:"student_last_name" validate:"required,min=1,max=100"`
	StudentBirthDate     *string   `json:"student_birth_date" validate:"omitempty,datetime=2006-01-02"`
	StudentGuardianPhone *string   `json:"student_guardian_phone" validate:"omitempty,min=5,max=30"`
}

func (r *CreateStudentRequest) ToModel(code string) *model.StudentModel {
	m := &model.StudentModel{
		StudentSchoolID:        r.StudentSchoolID,
		StudentClassroomID:     r.StudentClassroomID,
		StudentCode:            code,
		StudentFirstName:       r.StudentFirstName,
		StudentLastName:        r.StudentLastName,
		StudentGuardianPhone:   r.StudentGuardianPhone,
		StudentStatus:          constants.StudentStatusActive,
		StudentTransferHistory: datatypes.JSON([]byte("[]")),
	}
	if r.StudentBirthDate != nil {
		if t, err := time.Parse("2006-01-02", *r.StudentBirthDate); err == nil {
			m.StudentBirthDate = &t
		}
	}
	return m
}

// UpdateStudentRequest is the capacity-aware general update. A classroom
// change here goes through the same engine path as a transfer; the school
// binding, status, code, and history are not patchable.
type UpdateStudentRequest struct {
	StudentClassroomID   *uuid.UUID `json:"student_classroom_id"`
	StudentFirstName     *string    `json:"student_first_name" validate:"omitempty,min=1,max=100"`
	StudentLastName      *string    `json:"student_last_name" validate:"omitempty,min=1,max=100"`
	StudentBirthDate     *string    `json:"student_birth_date" validate:"omitempty,datetime=2006-01-02"`
	StudentGuardianPhone *string    `json:"student_guardian_phone" validate:"omitempty,min=5,max=30"`
}

// ApplyFieldsToModel copies the plain-field part of the patch. The classroom
// reference is deliberately excluded; only the engine may move it.
func (r *UpdateStudentRequest) ApplyFieldsToModel(m *model.StudentModel) {
	if r.StudentFirstName != nil {
		m.StudentFirstName = *r.StudentFirstName
	}
	if r.StudentLastName != nil {
		m.StudentLastName = *r.StudentLastName
	}
	if r.StudentBirthDate != nil {
		if t, err := time.Parse("2006-01-02", *r.StudentBirthDate); err == nil {
			m.StudentBirthDate = &t
		}
	}
	if r.StudentGuardianPhone != nil {
		m.StudentGuardianPhone = r.StudentGuardianPhone
	}
}

type TransferStudentRequest struct {
	ToClassroomID uuid.UUID `json:"to_classroom_id" validate:"required"`
	Reason        *string   `json:"reason" validate:"omitempty,max=255"`
}

type ChangeStudentStatusRequest struct {
	StudentStatus string `json:"student_status" validate:"required,oneof=active transferred graduated withdrawn"`
}

/* ===============================
   Responses
=================================*/

type StudentResponse struct {
	StudentID              uuid.UUID      `json:"student_id"`
	StudentSchoolID        uuid.UUID      `json:"student_school_id"`
	StudentClassroomID     uuid.UUID      `json:"student_classroom_id"`
	StudentCode            string         `json:"student_code"`
	StudentFirstName       string         `json:"student_first_name"`
	StudentLastName        string         `json:"student_last_name"`
	StudentBirthDate       *time.Time     `json:"student_birth_date,omitempty"`
	StudentGuardianPhone   *string        `json:"student_guardian_phone,omitempty"`
	StudentStatus          string         `json:"student_status"`
	StudentTransferHistory datatypes.JSON `json:"student_transfer_history"`
	StudentCreatedAt       time.Time      `json:"student_created_at"`
	StudentUpdatedAt       time.Time      `json:"student_updated_at"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	history := m.StudentTransferHistory
	if len(history) == 0 {
		history = datatypes.JSON([]byte("[]"))
	}
	return StudentResponse{
		StudentID:              m.StudentID,
		StudentSchoolID:        m.StudentSchoolID,
		StudentClassroomID:     m.StudentClassroomID,
		StudentCode:            m.StudentCode,
		StudentFirstName:       m.StudentFirstName,
		StudentLastName:        m.StudentLastName,
		StudentBirthDate:       m.StudentBirthDate,
		StudentGuardianPhone:   m.StudentGuardianPhone,
		StudentStatus:          m.StudentStatus,
		StudentTransferHistory: history,
		StudentCreatedAt:       m.StudentCreatedAt,
		StudentUpdatedAt:       m.StudentUpdatedAt,
	}
}

func FromModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
