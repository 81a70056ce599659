package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TransferRecord is one entry in a student's transfer history. Entries are
// append-only and chronological; past entries are never edited.
type TransferRecord struct {
	FromClassroomID    uuid.UUID `json:"from_classroom_id"`
	FromClassroomLabel string    `json:"from_classroom_label"`
	ToClassroomID      uuid.UUID `json:"to_classroom_id"`
	TransferredAt      time.Time `json:"transferred_at"`
	Reason             string    `json:"reason"`
}

// StudentModel is the roster record. StudentSchoolID is immutable after
// enrollment; StudentClassroomID changes only through the enrollment engine
// so the classroom counters stay consistent.
type StudentModel struct {
	StudentID              uuid.UUID      `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentSchoolID        uuid.UUID      `gorm:"column:student_school_id;type:uuid;not null" json:"student_school_id"`
	StudentClassroomID     uuid.UUID      `gorm:"column:student_classroom_id;type:uuid;not null" json:"student_classroom_id"`
	StudentCode            string         `gorm:"column:student_code;type:varchar(20);not null;unique" json:"student_code"`
	StudentFirstName       string         `gorm:"column:student_first_name;type:varchar(100);not null" json:"student_first_name"`
	StudentLastName        string         `gorm:"column:student_last_name;type:varchar(100);not null" json:"student_last_name"`
	StudentBirthDate       *time.Time     `gorm:"column:student_birth_date;type:date" json:"student_birth_date,omitempty"`
	StudentGuardianPhone   *string        `gorm:"column:student_guardian_phone;type:varchar(30)" json:"student_guardian_phone,omitempty"`
	StudentStatus          string         `gorm:"column:student_status;type:varchar(20);not null;default:'active'" json:"student_status"`
	StudentTransferHistory datatypes.JSON `gorm:"column:student_transfer_history;type:jsonb;not null;default:'[]'" json:"student_transfer_history"`
	StudentCreatedAt       time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt       time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}

// TransferHistory decodes the stored log. An empty column decodes to an
// empty slice, never nil-errors.
func (s *StudentModel) TransferHistory() ([]TransferRecord, error) {
	if len(s.StudentTransferHistory) == 0 {
		return []TransferRecord{}, nil
	}
	var records []TransferRecord
	if err := json.Unmarshal(s.StudentTransferHistory, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AppendTransferHistory re-encodes the log with one record appended at the
// end, preserving existing order.
func AppendTransferHistory(history datatypes.JSON, rec TransferRecord) (datatypes.JSON, error) {
	var records []TransferRecord
	if len(history) > 0 {
		if err := json.Unmarshal(history, &records); err != nil {
			return nil, err
		}
	}
	records = append(records, rec)
	out, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}
