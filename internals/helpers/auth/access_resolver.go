package auth

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
)

// IsSuperadmin reports whether the claim carries the global role.
func (cl *Claim) IsSuperadmin() bool {
	return cl != nil && cl.Role == constants.RoleSuperadmin
}

// CanAccessSchool is the one place scope decisions are made. Superadmins see
// every school; school admins see exactly the school on their claim. A
// school admin without a school binding can access nothing.
func CanAccessSchool(cl *Claim, schoolID uuid.UUID) bool {
	if cl == nil {
		return false
	}
	switch cl.Role {
	case constants.RoleSuperadmin:
		return true
	case constants.RoleSchoolAdmin:
		return cl.SchoolID != nil && *cl.SchoolID == schoolID
	default:
		return false
	}
}

// RequireSchoolAccess turns a failed scope check into the standard outcome.
func RequireSchoolAccess(cl *Claim, schoolID uuid.UUID) *helper.ApiError {
	if !CanAccessSchool(cl, schoolID) {
		return helper.NewForbiddenError("you do not have access to this school")
	}
	return nil
}

// RequireSuperadmin guards the operations only the global role may perform.
func RequireSuperadmin(cl *Claim) *helper.ApiError {
	if !cl.IsSuperadmin() {
		return helper.NewForbiddenError("this operation requires superadmin access")
	}
	return nil
}
