package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSiteRoleModel — tabel role LEGACY (ADMIN/TEACHER/COORDINATOR/...).
// Masih dibaca oleh role resolver; tenant lama belum dimigrasi ke
// site_memberships. Jangan hapus selama migrasi belum selesai.
type UserSiteRoleModel struct {
	UserSiteRoleID     uuid.UUID `gorm:"column:user_site_role_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_site_role_id"`
	UserSiteRoleUserID uuid.UUID `gorm:"column:user_site_role_user_id;type:uuid;not null;index" json:"user_site_role_user_id"`
	UserSiteRoleSiteID uuid.UUID `gorm:"column:user_site_role_site_id;type:uuid;not null;index" json:"user_site_role_site_id"`
	UserSiteRoleRole   string    `gorm:"column:user_site_role_role;type:varchar(32);not null" json:"user_site_role_role"`

	UserSiteRoleCreatedAt time.Time `gorm:"column:user_site_role_created_at;autoCreateTime" json:"user_site_role_created_at"`
	UserSiteRoleUpdatedAt time.Time `gorm:"column:user_site_role_updated_at;autoUpdateTime" json:"user_site_role_updated_at"`
}

func (UserSiteRoleModel) TableName() string { return "user_site_roles" }
