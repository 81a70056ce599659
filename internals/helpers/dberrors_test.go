package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePgError struct {
	state string
}

func (e *fakePgError) SQLState() string { return e.state }
func (e *fakePgError) Error() string    { return "pq: sqlstate " + e.state }

func TestTranslateDBErrorNil(t *testing.T) {
	assert.Nil(t, TranslateDBError(nil, "student"))
}

func TestTranslateDBErrorRecordNotFound(t *testing.T) {
	apiErr := TranslateDBError(gorm.ErrRecordNotFound, "classroom")
	require.NotNil(t, apiErr)
	assert.Equal(t, CodeNotFound, apiErr.Code)
	assert.Equal(t, "classroom not found", apiErr.Message)
}

func TestTranslateDBErrorWrappedNotFound(t *testing.T) {
	wrapped := fmt.Errorf("load student: %w", gorm.ErrRecordNotFound)
	apiErr := TranslateDBError(wrapped, "student")
	require.NotNil(t, apiErr)
	assert.Equal(t, CodeNotFound, apiErr.Code)
}

func TestTranslateDBErrorSQLStates(t *testing.T) {
	tests := []struct {
		state    string
		wantCode string
	}{
		{"23505", CodeDuplicate},
		{"23503", CodeValidation},
		{"23514", CodeBusinessRule},
		{"22P02", CodeValidation},
		{"40001", CodeBusinessRule},
		{"40P01", CodeBusinessRule},
	}
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			apiErr := TranslateDBError(&fakePgError{state: tt.state}, "school")
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestTranslateDBErrorPassesThroughApiError(t *testing.T) {
	original := NewCapacityFullError(25)
	apiErr := TranslateDBError(original, "classroom")
	assert.Same(t, original, apiErr)
}

func TestTranslateDBErrorUnknownBecomesServer(t *testing.T) {
	apiErr := TranslateDBError(errors.New("connection reset by peer"), "student")
	require.NotNil(t, apiErr)
	assert.Equal(t, CodeServer, apiErr.Code)
	assert.NotContains(t, apiErr.Message, "connection", "driver detail must not leak")
}
