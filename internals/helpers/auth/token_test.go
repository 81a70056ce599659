package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
)

const testSecret = "test-secret-key"

func TestAccessTokenRoundtrip(t *testing.T) {
	schoolID := uuid.New()
	original := &Claim{
		UserID:   uuid.New(),
		Email:    "admin@sekolah.test",
		Role:     constants.RoleSchoolAdmin,
		SchoolID: &schoolID,
	}

	raw, err := SignAccessToken(original, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, apiErr := VerifyAccessToken(raw, testSecret)
	require.Nil(t, apiErr)
	assert.Equal(t, original.UserID, got.UserID)
	assert.Equal(t, original.Email, got.Email)
	assert.Equal(t, original.Role, got.Role)
	require.NotNil(t, got.SchoolID)
	assert.Equal(t, schoolID, *got.SchoolID)
}

func TestAccessTokenSuperadminHasNoSchool(t *testing.T) {
	original := &Claim{
		UserID: uuid.New(),
		Email:  "root@sekolah.test",
		Role:   constants.RoleSuperadmin,
	}

	raw, err := SignAccessToken(original, testSecret, time.Hour)
	require.NoError(t, err)

	got, apiErr := VerifyAccessToken(raw, testSecret)
	require.Nil(t, apiErr)
	assert.Nil(t, got.SchoolID)
}

func TestExpiredTokenReportedDistinctly(t *testing.T) {
	cl := &Claim{UserID: uuid.New(), Email: "a@b.test", Role: constants.RoleSuperadmin}

	raw, err := SignAccessToken(cl, testSecret, -time.Minute)
	require.NoError(t, err)

	_, apiErr := VerifyAccessToken(raw, testSecret)
	require.NotNil(t, apiErr)
	assert.Equal(t, helper.CodeTokenExpired, apiErr.Code)
}

func TestTamperedTokenRejected(t *testing.T) {
	cl := &Claim{UserID: uuid.New(), Email: "a@b.test", Role: constants.RoleSuperadmin}

	raw, err := SignAccessToken(cl, testSecret, time.Hour)
	require.NoError(t, err)

	_, apiErr := VerifyAccessToken(raw, "another-secret")
	require.NotNil(t, apiErr)
	assert.Equal(t, helper.CodeAuthentication, apiErr.Code)

	_, apiErr = VerifyAccessToken(raw+"x", testSecret)
	require.NotNil(t, apiErr)
	assert.Equal(t, helper.CodeAuthentication, apiErr.Code)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, apiErr := VerifyAccessToken("not-a-jwt", testSecret)
	require.NotNil(t, apiErr)
	assert.Equal(t, helper.CodeAuthentication, apiErr.Code)
}
