package constants

import "fmt"

const (
	RoleAdmin     = "admin"
	RoleCounselor = "counselor"
	RoleStudent   = "student"
	RoleStaff     = "staff"
)

// Template pesan error role
const (
	ErrOnlyCounselorsCanAccess = "❌ Hanya counselor yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess      = "❌ Hanya admin, staff, atau counselor yang boleh mengakses fitur %s."
)

func RoleErrorCounselor(feature string) string {
	return fmt.Sprintf(ErrOnlyCounselorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleCounselor,
		RoleStudent,
		RoleStaff,
	}

	StaffAndAbove = []string{
		RoleAdmin,
		RoleStaff,
		RoleCounselor,
	}

	CounselorAndAdmin = []string{
		RoleCounselor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
