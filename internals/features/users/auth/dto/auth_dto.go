package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserFullName string     `json:"user_full_name"`
	UserEmail    string     `json:"user_email"`
	UserRole     string     `json:"user_role"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty"`
}

func UserFromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID,
		UserFullName: m.UserFullName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		UserSchoolID: m.UserSchoolID,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

// MeResponse echoes the resolved claim so clients can introspect their scope.
type MeResponse struct {
	UserID   uuid.UUID  `json:"user_id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	SchoolID *uuid.UUID `json:"school_id,omitempty"`
}
