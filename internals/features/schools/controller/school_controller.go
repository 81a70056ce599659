package controller

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomModel "sekolahku_backend/internals/features/classrooms/model"
	"sekolahku_backend/internals/features/schools/dto"
	"sekolahku_backend/internals/features/schools/model"
	studentModel "sekolahku_backend/internals/features/students/model"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"

	"sekolahku_backend/internals/constants"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

var validate = helper.NewValidator()

// List returns active schools, newest first. Superadmin only; a school
// admin browses nothing here, not even its own school.
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	if apiErr := authHelper.RequireSuperadmin(claim); apiErr != nil {
		return apiErr
	}

	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.SchoolModel{}).Where("school_is_active = ?", true)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("school_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.TranslateDBError(err, "school")
	}

	var schools []model.SchoolModel
	if err := q.Order("school_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&schools).Error; err != nil {
		return helper.TranslateDBError(err, "school")
	}

	return helper.JsonList(c, "schools retrieved", dto.FromModels(schools), helper.BuildPagination(pg, total))
}

func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	schoolID, apiErr := helper.ParamUUID(c, "id")
	if apiErr != nil {
		return apiErr
	}
	if apiErr := authHelper.RequireSchoolAccess(claim, schoolID); apiErr != nil {
		return apiErr
	}

	var school model.SchoolModel
	if err := ctl.DB.Where("school_id = ?", schoolID).First(&school).Error; err != nil {
		return helper.TranslateDBError(err, "school")
	}
	return helper.JsonOK(c, "school retrieved", dto.FromModel(&school))
}

func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	if apiErr := authHelper.RequireSuperadmin(claim); apiErr != nil {
		return apiErr
	}

	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return err
	}

	school := req.ToModel(claim.UserID)
	if err := ctl.DB.Create(school).Error; err != nil {
		return helper.TranslateDBError(err, "school")
	}
	return helper.JsonCreated(c, "school created", dto.FromModel(school))
}

func (ctl *SchoolController) Update(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	if apiErr := authHelper.RequireSuperadmin(claim); apiErr != nil {
		return apiErr
	}
	schoolID, apiErr := helper.ParamUUID(c, "id")
	if apiErr != nil {
		return apiErr
	}

	var req dto.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewValidationError("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return err
	}

	var school model.SchoolModel
	if err := ctl.DB.Where("school_id = ?", schoolID).First(&school).Error; err != nil {
		return helper.TranslateDBError(err, "school")
	}

	req.ApplyToModel(&school)
	if err := ctl.DB.Save(&school).Error; err != nil {
		return helper.TranslateDBError(err, "school")
	}
	return helper.JsonUpdated(c, "school updated", dto.FromModel(&school))
}

// Delete deactivates the school. Classrooms and students keep their own
// active flags; nothing cascades.
func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	if apiErr := authHelper.RequireSuperadmin(claim); apiErr != nil {
		return apiErr
	}
	schoolID, apiErr := helper.ParamUUID(c, "id")
	if apiErr != nil {
		return apiErr
	}

	var school model.SchoolModel
	if err := ctl.DB.Where("school_id = ?", schoolID).First(&school).Error; err != nil {
		return helper.TranslateDBError(err, "school")
	}

	school.SchoolIsActive = false
	if err := ctl.DB.Save(&school).Error; err != nil {
		return helper.TranslateDBError(err, "school")
	}
	return helper.JsonDeleted(c, "school deactivated")
}

// Stats reports active classroom and student counts plus seat utilization
// for one school.
func (ctl *SchoolController) Stats(c *fiber.Ctx) error {
	claim, apiErr := authHelper.ClaimFrom(c)
	if apiErr != nil {
		return apiErr
	}
	schoolID, apiErr := helper.ParamUUID(c, "id")
	if apiErr != nil {
		return apiErr
	}
	if apiErr := authHelper.RequireSchoolAccess(claim, schoolID); apiErr != nil {
		return apiErr
	}

	var school model.SchoolModel
	if err := ctl.DB.Select("school_id").Where("school_id = ?", schoolID).First(&school).Error; err != nil {
		return helper.TranslateDBError(err, "school")
	}

	var activeClassrooms int64
	if err := ctl.DB.Model(&classroomModel.ClassroomModel{}).
		Where("classroom_school_id = ? AND classroom_is_active = ?", schoolID, true).
		Count(&activeClassrooms).Error; err != nil {
		return helper.TranslateDBError(err, "classroom")
	}

	var activeStudents int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_school_id = ? AND student_status = ?", schoolID, constants.StudentStatusActive).
		Count(&activeStudents).Error; err != nil {
		return helper.TranslateDBError(err, "student")
	}

	var totalCapacity int64
	if err := ctl.DB.Model(&classroomModel.ClassroomModel{}).
		Where("classroom_school_id = ? AND classroom_is_active = ?", schoolID, true).
		Select("COALESCE(SUM(classroom_capacity), 0)").
		Scan(&totalCapacity).Error; err != nil {
		return helper.TranslateDBError(err, "classroom")
	}

	stats := dto.SchoolStatsResponse{
		SchoolID:         schoolID,
		ActiveClassrooms: activeClassrooms,
		ActiveStudents:   activeStudents,
		TotalCapacity:    totalCapacity,
		UtilizationRate:  utilizationPercent(activeStudents, totalCapacity),
	}
	return helper.JsonOK(c, "school stats retrieved", stats)
}

// utilizationPercent is activeStudents / totalCapacity as a percentage
// rounded to two decimals. Zero capacity reports zero, not NaN.
func utilizationPercent(activeStudents, totalCapacity int64) float64 {
	if totalCapacity <= 0 {
		return 0
	}
	return math.Round(float64(activeStudents)/float64(totalCapacity)*10000) / 100
}
