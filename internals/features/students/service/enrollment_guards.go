package service

import (
	"strings"

	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
)

// DefaultTransferReason is recorded when the caller gives no reason.
const DefaultTransferReason = "Classroom transfer"

// guardSameSchool rejects any classroom assignment that crosses schools. A
// student's school binding is immutable, so the destination must match it.
func guardSameSchool(studentSchoolID, classroomSchoolID uuid.UUID) *helper.ApiError {
	if studentSchoolID != classroomSchoolID {
		return helper.NewBusinessRuleError("student and destination classroom must belong to the same school")
	}
	return nil
}

// guardNotSameClassroom rejects a transfer that goes nowhere.
func guardNotSameClassroom(currentClassroomID, destClassroomID uuid.UUID) *helper.ApiError {
	if currentClassroomID == destClassroomID {
		return helper.NewBusinessRuleError("student is already in this classroom")
	}
	return nil
}

// guardHasCapacity is the strict capacity check: a classroom at exactly
// enrolled == capacity refuses one more.
func guardHasCapacity(enrolledCount, capacity int) *helper.ApiError {
	if enrolledCount >= capacity {
		return helper.NewCapacityFullError(capacity)
	}
	return nil
}

// guardActiveStudent gates the operations that move seats. Non-active
// students hold no seat, so moving or withdrawing them would corrupt the
// counters.
func guardActiveStudent(status, action string) *helper.ApiError {
	if status != constants.StudentStatusActive {
		return helper.NewBusinessRuleError("only active students can be " + action)
	}
	return nil
}

// generateStudentCode builds the unique enrollment code assigned at
// creation, e.g. S-3F2A9C01BD.
func generateStudentCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "S-" + strings.ToUpper(raw[:10])
}
