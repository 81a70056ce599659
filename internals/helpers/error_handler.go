package helper

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// errorBody is the single JSON shape for every failed request.
type errorBody struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

func writeError(c *fiber.Ctx, apiErr *ApiError) error {
	return c.Status(StatusForCode(apiErr.Code)).JSON(errorBody{
		Success: false,
		Error:   apiErr.Message,
		Code:    apiErr.Code,
		Details: apiErr.Details,
	})
}

// JsonError renders an *ApiError immediately. Controllers normally just
// return the error and let the app-level handler do this, but middlewares
// that cannot bubble (limiter, recover) call it directly.
func JsonError(c *fiber.Ctx, apiErr *ApiError) error {
	return writeError(c, apiErr)
}

// ErrorHandler is wired into fiber.Config. Every error returned by a handler
// or middleware lands here exactly once and leaves as the standard envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return writeError(c, apiErr)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return writeError(c, NewValidationError("validation failed", ValidationDetails(verrs)...))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return writeError(c, fromFiberError(fiberErr))
	}

	log.Printf("[ERROR] unhandled: %v (path=%s)", err, c.Path())
	return writeError(c, NewServerError(""))
}

// fromFiberError folds Fiber's own errors (404 on unknown routes, 405, body
// limit, etc.) into the domain code table.
func fromFiberError(e *fiber.Error) *ApiError {
	switch e.Code {
	case fiber.StatusUnauthorized:
		return NewAuthenticationError(e.Message)
	case fiber.StatusForbidden:
		return NewForbiddenError(e.Message)
	case fiber.StatusNotFound:
		return NewNotFoundError("resource")
	case fiber.StatusConflict:
		return NewDuplicateError(e.Message)
	case fiber.StatusUnprocessableEntity:
		return NewBusinessRuleError(e.Message)
	default:
		if e.Code >= 500 {
			log.Printf("[ERROR] fiber: %d %s", e.Code, e.Message)
			return NewServerError("")
		}
		return &ApiError{Code: CodeValidation, Message: e.Message}
	}
}
