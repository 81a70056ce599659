package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestAppendTransferHistoryStartsEmpty(t *testing.T) {
	rec := TransferRecord{
		FromClassroomID:    uuid.New(),
		FromClassroomLabel: "Grade 1 A",
		ToClassroomID:      uuid.New(),
		TransferredAt:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Reason:             "Classroom transfer",
	}

	out, err := AppendTransferHistory(nil, rec)
	require.NoError(t, err)

	student := StudentModel{StudentTransferHistory: out}
	records, err := student.TransferHistory()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.FromClassroomLabel, records[0].FromClassroomLabel)
	assert.Equal(t, rec.Reason, records[0].Reason)
}

func TestAppendTransferHistoryPreservesOrder(t *testing.T) {
	history := datatypes.JSON([]byte("[]"))
	labels := []string{"Grade 1 A", "Grade 2 B", "Grade 3 C"}

	var err error
	for _, label := range labels {
		history, err = AppendTransferHistory(history, TransferRecord{
			FromClassroomID:    uuid.New(),
			FromClassroomLabel: label,
			ToClassroomID:      uuid.New(),
			TransferredAt:      time.Now().UTC(),
			Reason:             "promotion",
		})
		require.NoError(t, err)
	}

	student := StudentModel{StudentTransferHistory: history}
	records, err := student.TransferHistory()
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, label := range labels {
		assert.Equal(t, label, records[i].FromClassroomLabel, "entry %d out of order", i)
	}
}

func TestTransferHistoryEmptyColumn(t *testing.T) {
	student := StudentModel{}
	records, err := student.TransferHistory()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTransferHistoryMalformed(t *testing.T) {
	student := StudentModel{StudentTransferHistory: datatypes.JSON([]byte("{not json"))}
	_, err := student.TransferHistory()
	assert.Error(t, err)
}
