package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/constants"
	classroomModel "sekolahku_backend/internals/features/classrooms/model"
	classroomService "sekolahku_backend/internals/features/classrooms/service"
	"sekolahku_backend/internals/features/students/dto"
	"sekolahku_backend/internals/features/students/model"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

// EnrollmentService is the only writer of classroom membership. Every entry
// point validates all preconditions before the first mutation, and once
// mutation begins, counter writes settle before the student reference they
// back. Each operation runs in one transaction with the touched classroom
// rows locked, so a partially applied move can never commit.
type EnrollmentService struct {
	DB        *gorm.DB
	Occupancy classroomService.OccupancyService
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{
		DB:        db,
		Occupancy: classroomService.NewOccupancyService(),
	}
}

/* ===============================
   Enroll
=================================*/

// Enroll creates a student and claims a seat in the target classroom.
func (s *EnrollmentService) Enroll(claim *authHelper.Claim, req *dto.CreateStudentRequest) (*model.StudentModel, *helper.ApiError) {
	if apiErr := authHelper.RequireSchoolAccess(claim, req.StudentSchoolID); apiErr != nil {
		return nil, apiErr
	}

	student := req.ToModel(generateStudentCode())

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var classroom classroomModel.ClassroomModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("classroom_id = ?", req.StudentClassroomID).
			First(&classroom).Error; err != nil {
			return helper.TranslateDBError(err, "classroom")
		}
		if classroom.ClassroomSchoolID != req.StudentSchoolID {
			return helper.NewBusinessRuleError("classroom must belong to the same school as the student")
		}
		if !classroom.ClassroomIsActive {
			return helper.NewBusinessRuleError("classroom is not active")
		}
		if apiErr := guardHasCapacity(classroom.ClassroomEnrolledCount, classroom.ClassroomCapacity); apiErr != nil {
			return apiErr
		}

		// Student row first, counter second. The shared transaction keeps a
		// persisted student with a stale counter from ever committing.
		if err := tx.Create(student).Error; err != nil {
			return helper.TranslateDBError(err, "student")
		}
		claimed, err := s.Occupancy.ClaimSeat(tx, classroom.ClassroomID)
		if err != nil {
			return helper.TranslateDBError(err, "classroom")
		}
		if !claimed {
			return helper.NewCapacityFullError(classroom.ClassroomCapacity)
		}
		return nil
	})
	if err != nil {
		return nil, asApiError(err)
	}

	log.Printf("[EnrollmentService] enrolled %s into classroom %s", student.StudentCode, student.StudentClassroomID)
	return student, nil
}

/* ===============================
   Transfer
=================================*/

// Transfer moves an active student to a different classroom in the same
// school and records the move in the transfer history.
func (s *EnrollmentService) Transfer(claim *authHelper.Claim, studentID uuid.UUID, req *dto.TransferStudentRequest) (*model.StudentModel, *helper.ApiError) {
	reason := DefaultTransferReason
	if req.Reason != nil && *req.Reason != "" {
		reason = *req.Reason
	}

	var student model.StudentModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_id = ?", studentID).
			First(&student).Error; err != nil {
			return helper.TranslateDBError(err, "student")
		}
		if apiErr := authHelper.RequireSchoolAccess(claim, student.StudentSchoolID); apiErr != nil {
			return apiErr
		}
		if apiErr := guardActiveStudent(student.StudentStatus, "transferred"); apiErr != nil {
			return apiErr
		}

		dest, derr := s.lockDestination(tx, req.ToClassroomID)
		if derr != nil {
			return derr
		}
		if apiErr := guardSameSchool(student.StudentSchoolID, dest.ClassroomSchoolID); apiErr != nil {
			return apiErr
		}
		if apiErr := guardNotSameClassroom(student.StudentClassroomID, dest.ClassroomID); apiErr != nil {
			return apiErr
		}
		if apiErr := guardHasCapacity(dest.ClassroomEnrolledCount, dest.ClassroomCapacity); apiErr != nil {
			return apiErr
		}

		if err := s.relocate(tx, &student, dest, reason); err != nil {
			return err
		}
		return saveStudent(tx, &student)
	})
	if err != nil {
		return nil, asApiError(err)
	}

	log.Printf("[EnrollmentService] transferred %s to classroom %s (reason=%q)", student.StudentCode, student.StudentClassroomID, reason)
	return &student, nil
}

/* ===============================
   Capacity-aware update
=================================*/

// Update patches a student's plain fields. When the patch moves the
// classroom reference it follows the exact transfer sequence; a field-only
// patch never touches the counters.
func (s *EnrollmentService) Update(claim *authHelper.Claim, studentID uuid.UUID, req *dto.UpdateStudentRequest) (*model.StudentModel, *helper.ApiError) {
	var student model.StudentModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_id = ?", studentID).
			First(&student).Error; err != nil {
			return helper.TranslateDBError(err, "student")
		}
		if apiErr := authHelper.RequireSchoolAccess(claim, student.StudentSchoolID); apiErr != nil {
			return apiErr
		}

		req.ApplyFieldsToModel(&student)

		if req.StudentClassroomID != nil && *req.StudentClassroomID != student.StudentClassroomID {
			if apiErr := guardActiveStudent(student.StudentStatus, "moved to another classroom"); apiErr != nil {
				return apiErr
			}
			dest, derr := s.lockDestination(tx, *req.StudentClassroomID)
			if derr != nil {
				return derr
			}
			if apiErr := guardSameSchool(student.StudentSchoolID, dest.ClassroomSchoolID); apiErr != nil {
				return apiErr
			}
			if apiErr := guardHasCapacity(dest.ClassroomEnrolledCount, dest.ClassroomCapacity); apiErr != nil {
				return apiErr
			}
			if err := s.relocate(tx, &student, dest, DefaultTransferReason); err != nil {
				return err
			}
		}

		return saveStudent(tx, &student)
	})
	if err != nil {
		return nil, asApiError(err)
	}
	return &student, nil
}

/* ===============================
   Withdraw
=================================*/

// Withdraw releases the student's seat and flips the status to withdrawn.
// Students are never hard-deleted; the transfer history stays intact.
func (s *EnrollmentService) Withdraw(claim *authHelper.Claim, studentID uuid.UUID) (*model.StudentModel, *helper.ApiError) {
	var student model.StudentModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_id = ?", studentID).
			First(&student).Error; err != nil {
			return helper.TranslateDBError(err, "student")
		}
		if apiErr := authHelper.RequireSchoolAccess(claim, student.StudentSchoolID); apiErr != nil {
			return apiErr
		}
		if apiErr := guardActiveStudent(student.StudentStatus, "withdrawn"); apiErr != nil {
			return apiErr
		}

		// Seat release settles before the status flip.
		if err := s.Occupancy.ReleaseSeat(tx, student.StudentClassroomID); err != nil {
			return helper.TranslateDBError(err, "classroom")
		}
		student.StudentStatus = constants.StudentStatusWithdrawn
		return saveStudent(tx, &student)
	})
	if err != nil {
		return nil, asApiError(err)
	}

	log.Printf("[EnrollmentService] withdrew %s from classroom %s", student.StudentCode, student.StudentClassroomID)
	return &student, nil
}

/* ===============================
   Status change
=================================*/

// ChangeStatus applies a seat-accounting-correct status transition. Leaving
// active releases the seat; returning to active claims one, capacity
// checked. Transitions between non-active statuses touch no counter.
func (s *EnrollmentService) ChangeStatus(claim *authHelper.Claim, studentID uuid.UUID, newStatus string) (*model.StudentModel, *helper.ApiError) {
	var student model.StudentModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_id = ?", studentID).
			First(&student).Error; err != nil {
			return helper.TranslateDBError(err, "student")
		}
		if apiErr := authHelper.RequireSchoolAccess(claim, student.StudentSchoolID); apiErr != nil {
			return apiErr
		}
		if student.StudentStatus == newStatus {
			return helper.NewBusinessRuleError("student already has this status")
		}

		wasActive := student.StudentStatus == constants.StudentStatusActive
		becomesActive := newStatus == constants.StudentStatusActive

		switch {
		case wasActive && !becomesActive:
			if err := s.Occupancy.ReleaseSeat(tx, student.StudentClassroomID); err != nil {
				return helper.TranslateDBError(err, "classroom")
			}
		case !wasActive && becomesActive:
			dest, derr := s.lockDestination(tx, student.StudentClassroomID)
			if derr != nil {
				return derr
			}
			if apiErr := guardHasCapacity(dest.ClassroomEnrolledCount, dest.ClassroomCapacity); apiErr != nil {
				return apiErr
			}
			claimed, err := s.Occupancy.ClaimSeat(tx, dest.ClassroomID)
			if err != nil {
				return helper.TranslateDBError(err, "classroom")
			}
			if !claimed {
				return helper.NewCapacityFullError(dest.ClassroomCapacity)
			}
		}

		student.StudentStatus = newStatus
		return saveStudent(tx, &student)
	})
	if err != nil {
		return nil, asApiError(err)
	}

	log.Printf("[EnrollmentService] status of %s is now %s", student.StudentCode, student.StudentStatus)
	return &student, nil
}

/* ===============================
   Internals
=================================*/

// lockDestination loads a classroom under FOR UPDATE so the capacity check
// and the seat claim see the same row state. Inactive destinations are
// rejected here for every caller.
func (s *EnrollmentService) lockDestination(tx *gorm.DB, classroomID uuid.UUID) (*classroomModel.ClassroomModel, error) {
	var dest classroomModel.ClassroomModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("classroom_id = ?", classroomID).
		First(&dest).Error; err != nil {
		return nil, helper.TranslateDBError(err, "destination classroom")
	}
	if !dest.ClassroomIsActive {
		return nil, helper.NewBusinessRuleError("destination classroom is not active")
	}
	return &dest, nil
}

// relocate applies the settled write order for a classroom move: origin
// release, destination claim, history append, then the reference flip on
// the in-memory record. The caller persists the student row afterwards, so
// the reference changes only after both counters are written.
func (s *EnrollmentService) relocate(tx *gorm.DB, student *model.StudentModel, dest *classroomModel.ClassroomModel, reason string) error {
	var origin classroomModel.ClassroomModel
	if err := tx.Select("classroom_id", "classroom_name").
		Where("classroom_id = ?", student.StudentClassroomID).
		First(&origin).Error; err != nil {
		return helper.TranslateDBError(err, "classroom")
	}

	if err := s.Occupancy.ReleaseSeat(tx, student.StudentClassroomID); err != nil {
		return helper.TranslateDBError(err, "classroom")
	}
	claimed, err := s.Occupancy.ClaimSeat(tx, dest.ClassroomID)
	if err != nil {
		return helper.TranslateDBError(err, "classroom")
	}
	if !claimed {
		return helper.NewCapacityFullError(dest.ClassroomCapacity)
	}

	history, err := model.AppendTransferHistory(student.StudentTransferHistory, model.TransferRecord{
		FromClassroomID:    student.StudentClassroomID,
		FromClassroomLabel: origin.ClassroomName,
		ToClassroomID:      dest.ClassroomID,
		TransferredAt:      time.Now().UTC(),
		Reason:             reason,
	})
	if err != nil {
		log.Printf("[EnrollmentService] history encode: %v", err)
		return helper.NewServerError("")
	}

	student.StudentTransferHistory = history
	student.StudentClassroomID = dest.ClassroomID
	return nil
}

func saveStudent(tx *gorm.DB, student *model.StudentModel) error {
	if err := tx.Save(student).Error; err != nil {
		return helper.TranslateDBError(err, "student")
	}
	return nil
}

// asApiError unwraps the typed error a transaction closure returned. A raw
// error here means the commit itself failed; the student/counter pair was
// rolled back together, so it surfaces as a server fault.
func asApiError(err error) *helper.ApiError {
	var apiErr *helper.ApiError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	log.Printf("[EnrollmentService] tx: %v", err)
	return helper.NewServerError("")
}
