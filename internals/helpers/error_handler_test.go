package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
}

func decodeErrorBody(t *testing.T, resp io.Reader) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(resp).Decode(&body))
	return body
}

func TestErrorHandlerRendersApiError(t *testing.T) {
	tests := []struct {
		name       string
		err        *ApiError
		wantStatus int
	}{
		{"forbidden", NewForbiddenError(""), fiber.StatusForbidden},
		{"not found", NewNotFoundError("student"), fiber.StatusNotFound},
		{"duplicate", NewDuplicateError("school already exists"), fiber.StatusConflict},
		{"capacity full", NewCapacityFullError(2), fiber.StatusUnprocessableEntity},
		{"business rule", NewBusinessRuleError("nope"), fiber.StatusUnprocessableEntity},
		{"token expired", NewTokenExpiredError(), fiber.StatusUnauthorized},
		{"server", NewServerError(""), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decodeErrorBody(t, resp.Body)
			assert.False(t, body.Success)
			assert.Equal(t, tt.err.Code, body.Code)
			assert.Equal(t, tt.err.Message, body.Error)
		})
	}
}

func TestErrorHandlerRendersValidationDetails(t *testing.T) {
	type loginShape struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	v := NewValidator()

	app := newTestApp()
	app.Get("/v", func(c *fiber.Ctx) error {
		return v.Struct(&loginShape{Email: "nope", Password: "x"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/v", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeErrorBody(t, resp.Body)
	assert.Equal(t, CodeValidation, body.Code)
	require.Len(t, body.Details, 2)

	fields := []string{body.Details[0].Field, body.Details[1].Field}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestErrorHandlerNormalizesUnknownErrors(t *testing.T) {
	app := newTestApp()
	app.Get("/oops", func(c *fiber.Ctx) error {
		return errors.New("driver: bad connection")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/oops", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decodeErrorBody(t, resp.Body)
	assert.Equal(t, CodeServer, body.Code)
	assert.NotContains(t, body.Error, "driver", "internal detail must not leak")
}

func TestErrorHandlerMapsUnknownRouteTo404(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/no/such/route", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeErrorBody(t, resp.Body)
	assert.Equal(t, CodeNotFound, body.Code)
}
