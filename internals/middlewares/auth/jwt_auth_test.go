package auth

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

func newAuthedApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "middleware-test-secret"

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Get("/whoami", AuthJWT(), func(c *fiber.Ctx) error {
		claim, apiErr := authHelper.ClaimFrom(c)
		if apiErr != nil {
			return apiErr
		}
		return c.JSON(fiber.Map{"email": claim.Email, "role": claim.Role})
	})
	return app
}

func signTestToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	raw, err := authHelper.SignAccessToken(&authHelper.Claim{
		UserID: uuid.New(),
		Email:  "admin@sekolah.test",
		Role:   constants.RoleSuperadmin,
	}, "middleware-test-secret", ttl)
	require.NoError(t, err)
	return raw
}

func TestAuthJWTMissingHeader(t *testing.T) {
	app := newAuthedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, helper.CodeAuthentication, body["code"])
}

func TestAuthJWTMalformedHeader(t *testing.T) {
	app := newAuthedApp(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Token abc123")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTExpiredTokenDistinct(t *testing.T) {
	app := newAuthedApp(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, -time.Minute))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, helper.CodeTokenExpired, body["code"])
}

func TestAuthJWTValidToken(t *testing.T) {
	app := newAuthedApp(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, time.Hour))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin@sekolah.test", body["email"])
	assert.Equal(t, constants.RoleSuperadmin, body["role"])
}
