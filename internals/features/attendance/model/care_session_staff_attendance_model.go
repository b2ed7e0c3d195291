package model

import (
	"time"

	"github.com/google/uuid"
)

// Status kehadiran staff (enum string di DB).
const (
	AttendanceStatusPresent = "PRESENT"
	AttendanceStatusAbsent  = "ABSENT"
	AttendanceStatusUnknown = "UNKNOWN"
)

// CareSessionStaffAttendanceModel — satu baris per (site, session, staff).
// Unique constraint komposit adalah mekanisme anti-duplikat saat race:
// upsert ON CONFLICT di constraint ini, last-writer-wins.
type CareSessionStaffAttendanceModel struct {
	CareSessionStaffAttendanceID uuid.UUID `gorm:"column:care_session_staff_attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"care_session_staff_attendance_id"`

	CareSessionStaffAttendanceSiteID      uuid.UUID `gorm:"column:care_session_staff_attendance_site_id;type:uuid;not null;uniqueIndex:uq_css_attendance_site_session_staff" json:"care_session_staff_attendance_site_id"`
	CareSessionStaffAttendanceSessionID   uuid.UUID `gorm:"column:care_session_staff_attendance_session_id;type:uuid;not null;uniqueIndex:uq_css_attendance_site_session_staff" json:"care_session_staff_attendance_session_id"`
	CareSessionStaffAttendanceStaffUserID uuid.UUID `gorm:"column:care_session_staff_attendance_staff_user_id;type:uuid;not null;uniqueIndex:uq_css_attendance_site_session_staff" json:"care_session_staff_attendance_staff_user_id"`

	CareSessionStaffAttendanceStatus string `gorm:"column:care_session_staff_attendance_status;type:varchar(16);not null;default:UNKNOWN" json:"care_session_staff_attendance_status"`

	CareSessionStaffAttendanceMarkedByUserID uuid.UUID `gorm:"column:care_session_staff_attendance_marked_by_user_id;type:uuid;not null" json:"care_session_staff_attendance_marked_by_user_id"`
	CareSessionStaffAttendanceMarkedAt       time.Time `gorm:"column:care_session_staff_attendance_marked_at;not null" json:"care_session_staff_attendance_marked_at"`

	CareSessionStaffAttendanceCreatedAt time.Time  `gorm:"column:care_session_staff_attendance_created_at;autoCreateTime" json:"care_session_staff_attendance_created_at"`
	CareSessionStaffAttendanceUpdatedAt *time.Time `gorm:"column:care_session_staff_attendance_updated_at;autoUpdateTime" json:"care_session_staff_attendance_updated_at,omitempty"`
}

func (CareSessionStaffAttendanceModel) TableName() string { return "care_session_staff_attendance" }

// ValidAttendanceStatus — guard enum sebelum nyentuh DB.
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusUnknown:
		return true
	}
	return false
}
