package constants

// Roles carried in the access token. A superadmin claim is not scoped to any
// school; a school_admin claim is valid for exactly one school.
const (
	RoleSuperadmin  = "superadmin"
	RoleSchoolAdmin = "school_admin"
)

var AllRoles = []string{
	RoleSuperadmin,
	RoleSchoolAdmin,
}

// IsValidRole reports whether s is one of the known roles.
func IsValidRole(s string) bool {
	for _, r := range AllRoles {
		if r == s {
			return true
		}
	}
	return false
}
