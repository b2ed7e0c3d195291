package model

import (
	"time"

	GroupModel "carehub_backend/internals/features/groups/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareSessionModel struct {
	CareSessionID     uuid.UUID `gorm:"column:care_session_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"care_session_id"`
	CareSessionSiteID uuid.UUID `gorm:"column:care_session_site_id;type:uuid;not null;index" json:"care_session_site_id"`

	CareSessionTitle *string `gorm:"column:care_session_title;type:varchar(255)" json:"care_session_title,omitempty"`

	// ⏰ Jadwal. Invariant: ends_at harus SETELAH starts_at (strict).
	CareSessionStartsAt time.Time `gorm:"column:care_session_starts_at;not null;index" json:"care_session_starts_at"`
	CareSessionEndsAt   time.Time `gorm:"column:care_session_ends_at;not null" json:"care_session_ends_at"`

	// Relasi many-to-many ke groups. Semua group wajib milik site yang sama.
	Groups []GroupModel.GroupModel `gorm:"many2many:care_session_groups;foreignKey:CareSessionID;joinForeignKey:CareSessionGroupSessionID;references:GroupID;joinReferences:CareSessionGroupGroupID" json:"groups,omitempty"`

	CareSessionCreatedAt time.Time      `gorm:"column:care_session_created_at;autoCreateTime" json:"care_session_created_at"`
	CareSessionUpdatedAt *time.Time     `gorm:"column:care_session_updated_at;autoUpdateTime" json:"care_session_updated_at,omitempty"`
	CareSessionDeletedAt gorm.DeletedAt `gorm:"column:care_session_deleted_at;index" json:"care_session_deleted_at,omitempty"`
}

func (CareSessionModel) TableName() string { return "care_sessions" }
