package helper

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
)

// pgSQLErr matches both lib/pq and pgx error types without importing either.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// TranslateDBError normalizes a storage failure into the domain error
// vocabulary. entity names the record the caller was touching and only
// feeds the not-found message.
func TranslateDBError(err error, entity string) *ApiError {
	if err == nil {
		return nil
	}

	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError(entity)
	}

	var pe pgSQLErr
	if errors.As(err, &pe) {
		switch pe.SQLState() {
		case "23505": // unique_violation
			return NewDuplicateError(entity + " already exists")
		case "23503": // foreign_key_violation
			return NewValidationError("referenced record does not exist")
		case "23514": // check_violation
			return NewBusinessRuleError("operation violates a data constraint")
		case "22P02": // invalid_text_representation
			return NewValidationError("malformed identifier")
		case "40001", "40P01": // serialization_failure, deadlock_detected
			log.Printf("[WARN] db contention (%s): %v", pe.SQLState(), err)
			return NewBusinessRuleError("operation conflicted with a concurrent change, please retry")
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		log.Printf("[WARN] db timeout: %v", err)
		return NewServerError("database timeout")
	}

	log.Printf("[ERROR] db: %v", err)
	return NewServerError("")
}
