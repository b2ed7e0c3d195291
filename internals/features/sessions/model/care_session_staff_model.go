package model

import (
	"time"

	"github.com/google/uuid"
)

// CareSessionStaffModel — penugasan staff ke sesi (lead/support/coordinator).
// Read-only untuk core ini: dibuat oleh modul penjadwalan, dibaca oleh roster
// builder dan attendance upsert.
type CareSessionStaffModel struct {
	CareSessionStaffID        uuid.UUID `gorm:"column:care_session_staff_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"care_session_staff_id"`
	CareSessionStaffSessionID uuid.UUID `gorm:"column:care_session_staff_session_id;type:uuid;not null;index:idx_care_session_staff_session_user,unique" json:"care_session_staff_session_id"`
	CareSessionStaffUserID    uuid.UUID `gorm:"column:care_session_staff_user_id;type:uuid;not null;index:idx_care_session_staff_session_user,unique" json:"care_session_staff_user_id"`

	// Role mentah dari penjadwalan (bebas huruf besar/kecil): lead, SUPPORT, teacher, ...
	CareSessionStaffRole string `gorm:"column:care_session_staff_role;type:varchar(32);not null" json:"care_session_staff_role"`

	CareSessionStaffCreatedAt time.Time `gorm:"column:care_session_staff_created_at;autoCreateTime" json:"care_session_staff_created_at"`
}

func (CareSessionStaffModel) TableName() string { return "care_session_staff" }
