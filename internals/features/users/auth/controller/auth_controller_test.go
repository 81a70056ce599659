package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

func newTestApp(claim *authHelper.Claim) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	if claim != nil {
		app.Use(func(c *fiber.Ctx) error {
			authHelper.StoreClaim(c, claim)
			return c.Next()
		})
	}

	ctl := NewAuthController(nil)
	app.Post("/login", ctl.Login)
	app.Get("/me", ctl.Me)
	return app
}

func TestLoginValidatesBody(t *testing.T) {
	app := newTestApp(nil)

	payload, err := json.Marshal(fiber.Map{"email": "not-an-email", "password": "short"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code    string `json:"code"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, helper.CodeValidation, body.Code)
	require.Len(t, body.Details, 2)
}

func TestMeRequiresClaim(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMeEchoesClaim(t *testing.T) {
	schoolID := uuid.New()
	userID := uuid.New()
	app := newTestApp(&authHelper.Claim{
		UserID:   userID,
		Email:    "admin@sekolah.test",
		Role:     constants.RoleSchoolAdmin,
		SchoolID: &schoolID,
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			UserID   string `json:"user_id"`
			Email    string `json:"email"`
			Role     string `json:"role"`
			SchoolID string `json:"school_id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, userID.String(), body.Data.UserID)
	assert.Equal(t, "admin@sekolah.test", body.Data.Email)
	assert.Equal(t, constants.RoleSchoolAdmin, body.Data.Role)
	assert.Equal(t, schoolID.String(), body.Data.SchoolID)
}
