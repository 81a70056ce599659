package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
)

func TestCanAccessSchool(t *testing.T) {
	schoolA := uuid.New()
	schoolB := uuid.New()

	tests := []struct {
		name   string
		claim  *Claim
		target uuid.UUID
		want   bool
	}{
		{
			name:   "superadmin reaches any school",
			claim:  &Claim{Role: constants.RoleSuperadmin},
			target: schoolA,
			want:   true,
		},
		{
			name:   "school admin reaches own school",
			claim:  &Claim{Role: constants.RoleSchoolAdmin, SchoolID: &schoolA},
			target: schoolA,
			want:   true,
		},
		{
			name:   "school admin denied on other school",
			claim:  &Claim{Role: constants.RoleSchoolAdmin, SchoolID: &schoolA},
			target: schoolB,
			want:   false,
		},
		{
			name:   "school admin without binding denied everywhere",
			claim:  &Claim{Role: constants.RoleSchoolAdmin},
			target: schoolA,
			want:   false,
		},
		{
			name:   "unknown role denied",
			claim:  &Claim{Role: "teacher", SchoolID: &schoolA},
			target: schoolA,
			want:   false,
		},
		{
			name:   "nil claim denied",
			claim:  nil,
			target: schoolA,
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessSchool(tt.claim, tt.target))
		})
	}
}

func TestRequireSchoolAccess(t *testing.T) {
	schoolA := uuid.New()
	schoolB := uuid.New()
	claim := &Claim{Role: constants.RoleSchoolAdmin, SchoolID: &schoolA}

	assert.Nil(t, RequireSchoolAccess(claim, schoolA))

	apiErr := RequireSchoolAccess(claim, schoolB)
	require.NotNil(t, apiErr)
	assert.Equal(t, helper.CodeForbidden, apiErr.Code)
}

func TestRequireSuperadmin(t *testing.T) {
	schoolA := uuid.New()

	assert.Nil(t, RequireSuperadmin(&Claim{Role: constants.RoleSuperadmin}))

	apiErr := RequireSuperadmin(&Claim{Role: constants.RoleSchoolAdmin, SchoolID: &schoolA})
	require.NotNil(t, apiErr)
	assert.Equal(t, helper.CodeForbidden, apiErr.Code)
}
