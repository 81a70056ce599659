package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/students/dto"
	"sekolahku_backend/internals/features/students/model"
	"sekolahku_backend/internals/features/students/service"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

// StudentController reads the roster directly and routes every membership
// write through the enrollment engine.
type StudentController struct {
	DB     *gorm.DB
	Engine *service.EnrollmentService
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:     db,
		Engine: service.NewEnrollmentService(db),
	}
}

var validate = helper.NewValidator()

// List returns students in the caller's scope with optional classroom,
// status, and name/code filters.
func (ctl *StudentController) List(c *fiber.Ctx) error {
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

	var classroomFilter *uuid.UUID
	if raw := c.Query("classroom_id"); raw != "" {
		classroomID, apiErr := helper.QueryUUID(c, "classroom_id")
		if apiErr != nil {
			return apiErr
		}
		classroomFilter = &classroomID
	}

	status := c.Query("status")
	if status != "" && !constants.IsValidStudentStatus(status) {
		return helper.NewValidationError("status must be one of: active, transferred, graduated, withdrawn")
	}
	search := strings.TrimSpace(c.Query("search"))

	q := ctl.DB.Model(&model.StudentModel{})
	if schoolFilter != nil {
		q = q.Where("student_school_id = ?", *schoolFilter)
	}
	if classroomFilter != nil {
		q = q.Where("student_classroom_id = ?", *classroomFilter)
	}
	if status != "" {
		q = q.Where("student_status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("student_first_name ILIKE ? OR student_last_name ILIKE ? OR student_code ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.TranslateDBError(err, "student")
	}

	var students []model.StudentModel
	if err := q.Order("student_last_name ASC, student_first_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&students).Error; err != nil {
		return helper.TranslateDBError(err, "student")
	}

	return helper.JsonList(c, "students retrieved", dto.FromModels(students), helper.BuildPagination(pg, total))
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	studentID, apiErr := helper.ParamUUID(c, "id")
	if apiErr != nil {
		return apiErr
	}

	var student model.StudentModel
	if err := ctl.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		return helper.TranslateDBError(err, "student")
	}
	if apiErr := authHelper.RequireSchoolAccess(claim, student.StudentSchoolID); apiErr != nil {
		return apiErr
	}
	return helper.JsonOK(c, "student retrieved", dto.FromModel(&student))
}

// Create enrolls a new student through the engine.
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return err
	}

	student, apiErr := ctl.Engine.Enroll(claim, &req)
	if apiErr != nil {
		return apiErr
	}
	return helper.JsonCreated(c, "student enrolled", dto.FromModel(student))
}

// Update applies a capacity-aware patch through the engine.
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	studentID, apiErr := helper.ParamUUID(c, "id")
	if apiErr != nil {
		return apiErr
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return err
	}

	student, apiErr := ctl.Engine.Update(claim, studentID, &req)
	if apiErr != nil {
		return apiErr
	}
	return helper.JsonUpdated(c, "student updated", dto.FromModel(student))
}

// Transfer moves a student to another classroom in the same school.
func (ctl *StudentController) Transfer(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	studentID, apiErr := helper.ParamUUID(c, "id")
	if apiErr != nil {
		return apiErr
	}

	var req dto.TransferStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return err
	}

	student, apiErr := ctl.Engine.Transfer(claim, studentID, &req)
	if apiErr != nil {
		return apiErr
	}
	return helper.JsonOK(c, "student transferred", dto.FromModel(student))
}

// ChangeStatus applies a seat-accounting-correct status transition.
func (ctl *StudentController) ChangeStatus(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	studentID, apiErr := helper.ParamUUID(c, "id")
	if apiErr != nil {
		return apiErr
	}

	var req dto.ChangeStudentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return err
	}

	student, apiErr := ctl.Engine.ChangeStatus(claim, studentID, req.StudentStatus)
	if apiErr != nil {
		return apiErr
	}
	return helper.JsonUpdated(c, "student status updated", dto.FromModel(student))
}

// Withdraw is the delete operation; students are never hard-deleted.
func (ctl *StudentController) Withdraw(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	studentID, apiErr := helper.ParamUUID(c, "id")
	if apiErr != nil {
		return apiErr
	}

	student, apiErr := ctl.Engine.Withdraw(claim, studentID)
	if apiErr != nil {
		return apiErr
	}
	return helper.JsonOK(c, "student withdrawn", dto.FromModel(student))
}
