package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/schools/model"
)

func TestCreateSchoolRequestToModel(t *testing.T) {
	creator := uuid.New()
	addr := "Jl. Merdeka 1"
	req := CreateSchoolRequest{
		SchoolName:          "SD Harapan",
		SchoolAddress:       &addr,
		SchoolContactPhones: []string{"081234567890"},
	}

	m := req.ToModel(creator)
	assert.Equal(t, "SD Harapan", m.SchoolName)
	assert.True(t, m.SchoolIsActive)
	require.NotNil(t, m.SchoolCreatedBy)
	assert.Equal(t, creator, *m.SchoolCreatedBy)
	assert.Equal(t, pq.StringArray{"081234567890"}, m.SchoolContactPhones)
}

func TestCreateSchoolRequestToModelNilPhones(t *testing.T) {
	req := CreateSchoolRequest{SchoolName: "SD Harapan"}
	m := req.ToModel(uuid.New())
	assert.NotNil(t, m.SchoolContactPhones)
	assert.Empty(t, m.SchoolContactPhones)
}

func TestUpdateSchoolRequestPatchSemantics(t *testing.T) {
	city := "Bandung"
	m := model.SchoolModel{
		SchoolName:          "SD Harapan",
		SchoolCity:          &city,
		SchoolContactPhones: pq.StringArray{"081", "082"},
	}

	newName := "SD Harapan Baru"
	req := UpdateSchoolRequest{SchoolName: &newName}
	req.ApplyToModel(&m)

	assert.Equal(t, "SD Harapan Baru", m.SchoolName)
	require.NotNil(t, m.SchoolCity)
	assert.Equal(t, "Bandung", *m.SchoolCity, "absent fields stay untouched")
	assert.Equal(t, pq.StringArray{"081", "082"}, m.SchoolContactPhones)
}

func TestUpdateSchoolRequestReplacesPhonesWholesale(t *testing.T) {
	m := model.SchoolModel{SchoolContactPhones: pq.StringArray{"081", "082", "083"}}

	phones := []string{"089999"}
	req := UpdateSchoolRequest{SchoolContactPhones: &phones}
	req.ApplyToModel(&m)

	assert.Equal(t, pq.StringArray{"089999"}, m.SchoolContactPhones, "list replaces as a whole, no merge")
}
