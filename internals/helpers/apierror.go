package helper

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Stable error codes
=================================*/

// Machine-readable error codes. The code is the only field callers should
// branch on; messages are free to change.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeTokenExpired   = "TOKEN_EXPIRED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeDuplicate      = "DUPLICATE"
	CodeCapacityFull   = "CAPACITY_FULL"
	CodeBusinessRule   = "BUSINESS_RULE"
	CodeServer         = "SERVER_ERROR"
)

// StatusForCode maps a domain error code to its HTTP status. The table is
// total: unknown codes fall back to 400 so a typo can never leak a 500.
func StatusForCode(code string) int {
	switch code {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeAuthentication, CodeTokenExpired:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeDuplicate:
		return fiber.StatusConflict
	case CodeCapacityFull, CodeBusinessRule:
		return fiber.StatusUnprocessableEntity
	case CodeServer:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}

/* ===============================
   ApiError
=================================*/

// FieldError is one per-field entry in a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ApiError is the typed outcome every entity operation returns for an expected
// domain failure. Unexpected failures stay plain errors and are normalized
// once, at the Fiber error handler.
type ApiError struct {
	Code    string       `json:"code"`
	Message string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(code, message string) *ApiError {
	return &ApiError{Code: code, Message: message}
}

func NewValidationError(message string, details ...FieldError) *ApiError {
	if message == "" {
		message = "validation failed"
	}
	return &ApiError{Code: CodeValidation, Message: message, Details: details}
}

func NewAuthenticationError(message string) *ApiError {
	if message == "" {
		message = "authentication required"
	}
	return &ApiError{Code: CodeAuthentication, Message: message}
}

func NewTokenExpiredError() *ApiError {
	return &ApiError{Code: CodeTokenExpired, Message: "access token has expired"}
}

func NewForbiddenError(message string) *ApiError {
	if message == "" {
		message = "you are not allowed to access this resource"
	}
	return &ApiError{Code: CodeForbidden, Message: message}
}

func NewNotFoundError(entity string) *ApiError {
	return &ApiError{Code: CodeNotFound, Message: entity + " not found"}
}

func NewDuplicateError(message string) *ApiError {
	return &ApiError{Code: CodeDuplicate, Message: message}
}

// NewCapacityFullError reports the capacity bound that was hit.
func NewCapacityFullError(capacity int) *ApiError {
	return &ApiError{
		Code:    CodeCapacityFull,
		Message: fmt.Sprintf("classroom is at full capacity (%d)", capacity),
	}
}

func NewBusinessRuleError(message string) *ApiError {
	return &ApiError{Code: CodeBusinessRule, Message: message}
}

func NewServerError(message string) *ApiError {
	if message == "" {
		message = "internal server error"
	}
	return &ApiError{Code: CodeServer, Message: message}
}
