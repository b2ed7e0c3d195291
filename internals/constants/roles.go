package constants

import "fmt"

// =========================================================
// Role per sumber. Tiga sumber hidup berdampingan:
// site_memberships (baru), org_memberships (baru), user_site_roles (legacy).
// =========================================================

// site_memberships.site_membership_role
const (
	SiteRoleAdmin  = "SITE_ADMIN"
	SiteRoleStaff  = "STAFF"
	SiteRoleViewer = "VIEWER"
)

// org_memberships.org_membership_role
const (
	OrgRoleAdmin = "ORG_ADMIN"
	OrgRoleStaff = "ORG_STAFF"
)

// user_site_roles.user_site_role_role (tabel legacy, jangan dihapus — masih
// dipakai tenant lama)
const (
	LegacyRoleAdmin       = "ADMIN"
	LegacyRoleTeacher     = "TEACHER"
	LegacyRoleCoordinator = "COORDINATOR"
	LegacyRoleMember      = "MEMBER"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	// Site role yang boleh menandai kehadiran staff.
	SiteRolesCanMark = []string{SiteRoleAdmin, SiteRoleStaff}

	// Org role yang boleh menandai kehadiran staff di semua site miliknya.
	OrgRolesCanMark = []string{OrgRoleAdmin}

	// Legacy role yang boleh menandai kehadiran staff.
	LegacyRolesCanMark = []string{LegacyRoleAdmin, LegacyRoleTeacher, LegacyRoleCoordinator}
)

// HasRole cek keanggotaan role dalam slice (exact match, role sudah uppercase di DB).
func HasRole(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Hanya staff atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
