package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/classrooms/model"
)

// OccupancyService owns every write to classroom_enrolled_count. Claims are
// conditional on free capacity in the same statement, releases floor at
// zero, so the counter can never leave 0 <= enrolled <= capacity on its own.
type OccupancyService interface {
	// ClaimSeat increments the counter iff a seat is free. Returns false
	// when the classroom is already at capacity.
	ClaimSeat(tx *gorm.DB, classroomID uuid.UUID) (bool, error)

	// ReleaseSeat decrements the counter, never below zero. Releasing an
	// already-empty classroom is a no-op, not an error.
	ReleaseSeat(tx *gorm.DB, classroomID uuid.UUID) error
}

type occupancyService struct{}

func NewOccupancyService() OccupancyService {
	return &occupancyService{}
}

func (s *occupancyService) ClaimSeat(tx *gorm.DB, classroomID uuid.UUID) (bool, error) {
	res := tx.Model(&model.ClassroomModel{}).
		Where("classroom_id = ? AND classroom_enrolled_count < classroom_capacity", classroomID).
		UpdateColumn("classroom_enrolled_count", gorm.Expr("classroom_enrolled_count + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (s *occupancyService) ReleaseSeat(tx *gorm.DB, classroomID uuid.UUID) error {
	res := tx.Model(&model.ClassroomModel{}).
		Where("classroom_id = ?", classroomID).
		UpdateColumn("classroom_enrolled_count", gorm.Expr("GREATEST(classroom_enrolled_count - 1, 0)"))
	return res.Error
}
