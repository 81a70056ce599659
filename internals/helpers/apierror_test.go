package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{CodeValidation, fiber.StatusBadRequest},
		{CodeAuthentication, fiber.StatusUnauthorized},
		{CodeTokenExpired, fiber.StatusUnauthorized},
		{CodeForbidden, fiber.StatusForbidden},
		{CodeNotFound, fiber.StatusNotFound},
		{CodeDuplicate, fiber.StatusConflict},
		{CodeCapacityFull, fiber.StatusUnprocessableEntity},
		{CodeBusinessRule, fiber.StatusUnprocessableEntity},
		{CodeServer, fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForCode(tt.code))
		})
	}
}

func TestStatusForCodeUnmappedDefaultsTo400(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, StatusForCode("SOMETHING_NEW"))
	assert.Equal(t, fiber.StatusBadRequest, StatusForCode(""))
}

func TestCapacityFullErrorNamesCapacity(t *testing.T) {
	apiErr := NewCapacityFullError(30)
	assert.Equal(t, CodeCapacityFull, apiErr.Code)
	assert.Contains(t, apiErr.Message, "(30)")
}

func TestNotFoundErrorNamesEntity(t *testing.T) {
	apiErr := NewNotFoundError("classroom")
	assert.Equal(t, CodeNotFound, apiErr.Code)
	assert.Equal(t, "classroom not found", apiErr.Message)
}

func TestApiErrorImplementsError(t *testing.T) {
	var err error = NewBusinessRuleError("capacity cannot shrink")
	require.EqualError(t, err, "capacity cannot shrink")
}

func TestConstructorsFallBackToDefaultMessages(t *testing.T) {
	assert.NotEmpty(t, NewAuthenticationError("").Message)
	assert.NotEmpty(t, NewForbiddenError("").Message)
	assert.NotEmpty(t, NewServerError("").Message)
	assert.NotEmpty(t, NewValidationError("").Message)
}
