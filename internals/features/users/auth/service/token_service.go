package service

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/users/auth/dto"
	"sekolahku_backend/internals/features/users/auth/model"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login verifies the credential pair and issues an access token. Unknown
// email and wrong password produce the same message so the endpoint cannot
// be used to probe accounts.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, *helper.ApiError) {
	var user model.UserModel
	if err := s.DB.Where("LOWER(user_email) = LOWER(?)", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewAuthenticationError("invalid email or password")
		}
		return nil, helper.TranslateDBError(err, "user")
	}
	if !user.UserIsActive {
		return nil, helper.NewAuthenticationError("account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(req.Password)); err != nil {
		return nil, helper.NewAuthenticationError("invalid email or password")
	}

	cl := &authHelper.Claim{
		UserID:   user.UserID,
		Email:    user.UserEmail,
		Role:     user.UserRole,
		SchoolID: user.UserSchoolID,
	}
	token, err := authHelper.SignAccessToken(cl, configs.JWTSecret, configs.AccessTokenTTL)
	if err != nil {
		log.Printf("[AuthService] sign token: %v", err)
		return nil, helper.NewServerError("")
	}

	log.Printf("[AuthService] login %s (role=%s)", user.UserEmail, user.UserRole)
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(configs.AccessTokenTTL.Seconds()),
		User:        dto.UserFromModel(&user),
	}, nil
}
