package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/classrooms/dto"
	"sekolahku_backend/internals/features/classrooms/model"
	schoolModel "sekolahku_backend/internals/features/schools/model"
	studentDTO "sekolahku_backend/internals/features/students/dto"
	studentModel "sekolahku_backend/internals/features/students/model"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

type ClassroomController struct {
	DB *gorm.DB
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db}
}

var validate = helper.NewValidator()

// List returns classrooms in the caller's scope. School admins see their
// own school implicitly; superadmins see everything, optionally narrowed by
// school_id. Inactive classrooms are hidden unless include_inactive is set.
func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}

	// Filters are resolved and validated in full before the first query.
	pg := helper.ResolvePaging(c, 20, 100)

	var schoolFilter *uuid.UUID
	if claim.IsSuperadmin() {
		if raw := c.Query("school_id"); raw != "" {
			schoolID, apiErr := helper.QueryUUID(c, "school_id")
			if apiErr != nil {
				return apiErr
			}
			schoolFilter = &schoolID
		}
	} else {
		if claim.SchoolID == nil {
			return helper.NewForbiddenError("you do not have access to this school")
		}
		schoolFilter = claim.SchoolID
	}
	includeInactive := c.Query("include_inactive") == "true"

	q := ctl.DB.Model(&model.ClassroomModel{})
	if schoolFilter != nil {
		q = q.Where("classroom_school_id = ?", *schoolFilter)
	}
	if !includeInactive {
		q = q.Where("classroom_is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.TranslateDBError(err, "classroom")
	}

	var classrooms []model.ClassroomModel
	if err := q.Order("classroom_grade_level ASC, classroom_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&classrooms).Error; err != nil {
		return helper.TranslateDBError(err, "classroom")
	}

	return helper.JsonList(c, "classrooms retrieved", dto.FromModels(classrooms), helper.BuildPagination(pg, total))
}

func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	classroom, apiErr := ctl.loadAuthorized(c, claim)
	if apiErr != nil {
		return apiErr
	}
	return helper.JsonOK(c, "classroom retrieved", dto.FromModel(classroom))
}

// Create opens a classroom under an existing school; the enrollment counter
// starts at zero.
func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}

	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return err
	}
	if apiErr := authHelper.RequireSchoolAccess(claim, req.ClassroomSchoolID); apiErr != nil {
		return apiErr
	}

	var school schoolModel.SchoolModel
	if err := ctl.DB.Select("school_id", "school_is_active").
		Where("school_id = ?", req.ClassroomSchoolID).
		First(&school).Error; err != nil {
		return helper.TranslateDBError(err, "school")
	}
	if !school.SchoolIsActive {
		return helper.NewBusinessRuleError("school is not active")
	}

	classroom := req.ToModel(claim.UserID)
	if err := ctl.DB.Create(classroom).Error; err != nil {
		return helper.TranslateDBError(err, "classroom")
	}
	return helper.JsonCreated(c, "classroom created", dto.FromModel(classroom))
}

// Update patches classroom fields. Capacity may rise freely but can never
// drop below the students already seated.
func (ctl *ClassroomController) Update(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}

	var req dto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return err
	}

	classroom, apiErr := ctl.loadAuthorized(c, claim)
	if apiErr != nil {
		return apiErr
	}

	if req.ClassroomCapacity != nil {
		if apiErr := guardCapacityNotBelowEnrollment(*req.ClassroomCapacity, classroom.ClassroomEnrolledCount); apiErr != nil {
			return apiErr
		}
	}

	req.ApplyToModel(classroom)
	if err := ctl.DB.Save(classroom).Error; err != nil {
		return helper.TranslateDBError(err, "classroom")
	}
	return helper.JsonUpdated(c, "classroom updated", dto.FromModel(classroom))
}

// Delete deactivates a classroom once it is empty: no seated students on
// the counter and no active students still referencing it.
func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	classroom, apiErr := ctl.loadAuthorized(c, claim)
	if apiErr != nil {
		return apiErr
	}

	var activeStudents int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_classroom_id = ? AND student_status = ?", classroom.ClassroomID, constants.StudentStatusActive).
		Count(&activeStudents).Error; err != nil {
		return helper.TranslateDBError(err, "student")
	}
	if apiErr := guardNoActiveStudents(activeStudents, classroom.ClassroomEnrolledCount); apiErr != nil {
		return apiErr
	}

	classroom.ClassroomIsActive = false
	if err := ctl.DB.Save(classroom).Error; err != nil {
		return helper.TranslateDBError(err, "classroom")
	}
	return helper.JsonDeleted(c, "classroom deactivated")
}

// ListStudents returns the active roster of one classroom, ordered by last
// then first name, with a denormalized classroom header.
func (ctl *ClassroomController) ListStudents(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	classroom, apiErr := ctl.loadAuthorized(c, claim)
	if apiErr != nil {
		return apiErr
	}

	var students []studentModel.StudentModel
	if err := ctl.DB.
		Where("student_classroom_id = ? AND student_status = ?", classroom.ClassroomID, constants.StudentStatusActive).
		Order("student_last_name ASC, student_first_name ASC").
		Find(&students).Error; err != nil {
		return helper.TranslateDBError(err, "student")
	}

	payload := fiber.Map{
		"classroom": dto.SummaryFromModel(classroom),
		"students":  studentDTO.FromModels(students),
	}
	return helper.JsonOK(c, "classroom students retrieved", payload)
}

/* ===============================
   Internals
=================================*/

// loadAuthorized fetches the classroom from the :id param and runs the
// scope check against its owning school.
func (ctl *ClassroomController) loadAuthorized(c *fiber.Ctx, claim *authHelper.Claim) (*model.ClassroomModel, *helper.ApiError) {
	classroomID, apiErr := helper.ParamUUID(c, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	var classroom model.ClassroomModel
	if err := ctl.DB.Where("classroom_id = ?", classroomID).First(&classroom).Error; err != nil {
		return nil, helper.TranslateDBError(err, "classroom")
	}
	if apiErr := authHelper.RequireSchoolAccess(claim, classroom.ClassroomSchoolID); apiErr != nil {
		return nil, apiErr
	}
	return &classroom, nil
}

func guardCapacityNotBelowEnrollment(newCapacity, enrolledCount int) *helper.ApiError {
	if newCapacity < enrolledCount {
		return helper.NewBusinessRuleError(
			fmt.Sprintf("capacity cannot be lower than current enrollment (%d)", enrolledCount))
	}
	return nil
}

func guardNoActiveStudents(activeStudents int64, enrolledCount int) *helper.ApiError {
	if activeStudents > 0 {
		return helper.NewBusinessRuleError(
			fmt.Sprintf("classroom still has %d active student(s), transfer or withdraw them first", activeStudents))
	}
	if enrolledCount != 0 {
		return helper.NewBusinessRuleError(
			fmt.Sprintf("classroom enrollment counter is %d, expected 0", enrolledCount))
	}
	return nil
}
