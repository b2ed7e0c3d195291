package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteMembershipModel — sumber role level site (baru).
// Role: SITE_ADMIN | STAFF | VIEWER (lihat constants.SiteRole*).
type SiteMembershipModel struct {
	SiteMembershipID     uuid.UUID `gorm:"column:site_membership_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"site_membership_id"`
	SiteMembershipUserID uuid.UUID `gorm:"column:site_membership_user_id;type:uuid;not null;index:idx_site_memberships_user_site,unique" json:"site_membership_user_id"`
	SiteMembershipSiteID uuid.UUID `gorm:"column:site_membership_site_id;type:uuid;not null;index:idx_site_memberships_user_site,unique" json:"site_membership_site_id"`
	SiteMembershipRole   string    `gorm:"column:site_membership_role;type:varchar(32);not null" json:"site_membership_role"`

	SiteMembershipCreatedAt time.Time      `gorm:"column:site_membership_created_at;autoCreateTime" json:"site_membership_created_at"`
	SiteMembershipUpdatedAt *time.Time     `gorm:"column:site_membership_updated_at;autoUpdateTime" json:"site_membership_updated_at,omitempty"`
	SiteMembershipDeletedAt gorm.DeletedAt `gorm:"column:site_membership_deleted_at;index" json:"site_membership_deleted_at,omitempty"`
}

func (SiteMembershipModel) TableName() string { return "site_memberships" }
