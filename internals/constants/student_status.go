package constants

// Student lifecycle statuses. A student is never hard-deleted; leaving the
// school (withdrawn/transferred/graduated) only changes the status and frees
// the classroom seat.
const (
	StudentStatusActive      = "active"
	StudentStatusTransferred = "transferred"
	StudentStatusGraduated   = "graduated"
	StudentStatusWithdrawn   = "withdrawn"
)

var StudentStatuses = []string{
	StudentStatusActive,
	StudentStatusTransferred,
	StudentStatusGraduated,
	StudentStatusWithdrawn,
}

func IsValidStudentStatus(s string) bool {
	for _, st := range StudentStatuses {
		if st == s {
			return true
		}
	}
	return false
}
