package service

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
)

func TestGuardHasCapacity(t *testing.T) {
	tests := []struct {
		name     string
		enrolled int
		capacity int
		wantFull bool
	}{
		{"empty classroom", 0, 30, false},
		{"one seat left", 29, 30, false},
		{"exactly full", 2, 2, true},
		{"over capacity drift", 3, 2, true},
		{"capacity one empty", 0, 1, false},
		{"capacity one full", 1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := guardHasCapacity(tt.enrolled, tt.capacity)
			if !tt.wantFull {
				assert.Nil(t, apiErr)
				return
			}
			require.NotNil(t, apiErr)
			assert.Equal(t, helper.CodeCapacityFull, apiErr.Code)
			assert.Contains(t, apiErr.Message, "full capacity")
		})
	}
}

func TestGuardHasCapacityReportsCapacityValue(t *testing.T) {
	apiErr := guardHasCapacity(2, 2)
	require.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Message, "(2)")
}

func TestGuardSameSchool(t *testing.T) {
	schoolA := uuid.New()
	schoolB := uuid.New()

	assert.Nil(t, guardSameSchool(schoolA, schoolA))

	apiErr := guardSameSchool(schoolA, schoolB)
	require.NotNil(t, apiErr)
	assert.Equal(t, helper.CodeBusinessRule, apiErr.Code)
	assert.Contains(t, apiErr.Message, "same school")
}

func TestGuardNotSameClassroom(t *testing.T) {
	classroomA := uuid.New()
	classroomB := uuid.New()

	assert.Nil(t, guardNotSameClassroom(classroomA, classroomB))

	apiErr := guardNotSameClassroom(classroomA, classroomA)
	require.NotNil(t, apiErr)
	assert.Equal(t, helper.CodeBusinessRule, apiErr.Code)
	assert.Contains(t, apiErr.Message, "already in this classroom")
}

func TestGuardActiveStudent(t *testing.T) {
	assert.Nil(t, guardActiveStudent(constants.StudentStatusActive, "transferred"))

	for _, status := range []string{
		constants.StudentStatusTransferred,
		constants.StudentStatusGraduated,
		constants.StudentStatusWithdrawn,
	} {
		apiErr := guardActiveStudent(status, "withdrawn")
		require.NotNil(t, apiErr, "status %s", status)
		assert.Equal(t, helper.CodeBusinessRule, apiErr.Code)
	}
}

func TestGenerateStudentCode(t *testing.T) {
	pattern := regexp.MustCompile(`^S-[0-9A-F]{10}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := generateStudentCode()
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
