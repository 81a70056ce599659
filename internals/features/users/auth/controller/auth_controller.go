package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/auth/dto"
	"sekolahku_backend/internals/features/users/auth/service"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: service.NewAuthService(db)}
}

var validate = helper.NewValidator()

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return err
	}

	res, apiErr := ctl.Service.Login(&req)
	if apiErr != nil {
		return apiErr
	}
	return helper.JsonOK(c, "login successful", res)
}

// Me echoes the verified claim so a client can discover its role and scope.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	return helper.JsonOK(c, "claim resolved", dto.MeResponse{
		UserID:   claim.UserID,
		Email:    claim.Email,
		Role:     claim.Role,
		SchoolID: claim.SchoolID,
	})
}
