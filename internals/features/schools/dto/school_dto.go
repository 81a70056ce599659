package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"sekolahku_backend/internals/features/schools/model"
)

/* ===============================
   Requests
=================================*/

type CreateSchoolRequest struct {
	SchoolName          string   `json:"school_name" validate:"required,min=3,max=150"`
	SchoolAddress       *string  `json:"school_address" validate:"omitempty,max=500"`
	SchoolCity          *string  `json:"school_city" validate:"omitempty,max=100"`
	SchoolContactEmail  *string  `json:"school_contact_email" validate:"omitempty,email"`
	SchoolContactPhones []string `json:"school_contact_phones" validate:"omitempty,dive,min=5,max=30"`
}

func (r *CreateSchoolRequest) ToModel(createdBy uuid.UUID) *model.SchoolModel {
	phones := r.SchoolContactPhones
	if phones == nil {
		phones = []string{}
	}
	return &model.SchoolModel{
		SchoolName:          r.SchoolName,
		SchoolAddress:       r.SchoolAddress,
		SchoolCity:          r.SchoolCity,
		SchoolContactEmail:  r.SchoolContactEmail,
		SchoolContactPhones: pq.StringArray(phones),
		SchoolIsActive:      true,
		SchoolCreatedBy:     &createdBy,
	}
}

// UpdateSchoolRequest is a partial patch: fields present in the body replace
// the stored value wholesale, absent fields are left untouched. The contact
// phone list is replaced as a whole, never merged.
type UpdateSchoolRequest struct {
	SchoolName          *string   `json:"school_name" validate:"omitempty,min=3,max=150"`
	SchoolAddress       *string   `json:"school_address" validate:"omitempty,max=500"`
	SchoolCity          *string   `json:"school_city" validate:"omitempty,max=100"`
	SchoolContactEmail  *string   `json:"school_contact_email" validate:"omitempty,email"`
	SchoolContactPhones *[]string `json:"school_contact_phones" validate:"omitempty,dive,min=5,max=30"`
}

func (r *UpdateSchoolRequest) ApplyToModel(m *model.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = *r.SchoolName
	}
	if r.SchoolAddress != nil {
		m.SchoolAddress = r.SchoolAddress
	}
	if r.SchoolCity != nil {
		m.SchoolCity = r.SchoolCity
	}
	if r.SchoolContactEmail != nil {
		m.SchoolContactEmail = r.SchoolContactEmail
	}
	if r.SchoolContactPhones != nil {
		m.SchoolContactPhones = pq.StringArray(*r.SchoolContactPhones)
	}
}

/* ===============================
   Responses
=================================*/

type SchoolResponse struct {
	SchoolID            uuid.UUID  `json:"school_id"`
	SchoolName          string     `json:"school_name"`
	SchoolAddress       *string    `json:"school_address,omitempty"`
	SchoolCity          *string    `json:"school_city,omitempty"`
	SchoolContactEmail  *string    `json:"school_contact_email,omitempty"`
	SchoolContactPhones []string   `json:"school_contact_phones"`
	SchoolIsActive      bool       `json:"school_is_active"`
	SchoolCreatedBy     *uuid.UUID `json:"school_created_by,omitempty"`
	SchoolCreatedAt     time.Time  `json:"school_created_at"`
	SchoolUpdatedAt     time.Time  `json:"school_updated_at"`
}

func FromModel(m *model.SchoolModel) SchoolResponse {
	phones := []string(m.SchoolContactPhones)
	if phones == nil {
		phones = []string{}
	}
	return SchoolResponse{
		SchoolID:            m.SchoolID,
		SchoolName:          m.SchoolName,
		SchoolAddress:       m.SchoolAddress,
		SchoolCity:          m.SchoolCity,
		SchoolContactEmail:  m.SchoolContactEmail,
		SchoolContactPhones: phones,
		SchoolIsActive:      m.SchoolIsActive,
		SchoolCreatedBy:     m.SchoolCreatedBy,
		SchoolCreatedAt:     m.SchoolCreatedAt,
		SchoolUpdatedAt:     m.SchoolUpdatedAt,
	}
}

func FromModels(ms []model.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// SchoolStatsResponse is the tenant occupancy summary. UtilizationRate is a
// percentage rounded to two decimals; zero capacity reports zero.
type SchoolStatsResponse struct {
	SchoolID         uuid.UUID `json:"school_id"`
	ActiveClassrooms int64     `json:"active_classrooms"`
	ActiveStudents   int64     `json:"active_students"`
	TotalCapacity    int64     `json:"total_capacity"`
	UtilizationRate  float64   `json:"utilization_rate"`
}
