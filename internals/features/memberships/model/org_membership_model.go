package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrgMembershipModel — sumber role level org (baru).
// ORG_ADMIN berlaku untuk semua site di bawah org tersebut.
type OrgMembershipModel struct {
	OrgMembershipID     uuid.UUID `gorm:"column:org_membership_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"org_membership_id"`
	OrgMembershipUserID uuid.UUID `gorm:"column:org_membership_user_id;type:uuid;not null;index:idx_org_memberships_user_org,unique" json:"org_membership_user_id"`
	OrgMembershipOrgID  uuid.UUID `gorm:"column:org_membership_org_id;type:uuid;not null;index:idx_org_memberships_user_org,unique" json:"org_membership_org_id"`
	OrgMembershipRole   string    `gorm:"column:org_membership_role;type:varchar(32);not null" json:"org_membership_role"`

	OrgMembershipCreatedAt time.Time      `gorm:"column:org_membership_created_at;autoCreateTime" json:"org_membership_created_at"`
	OrgMembershipUpdatedAt *time.Time     `gorm:"column:org_membership_updated_at;autoUpdateTime" json:"org_membership_updated_at,omitempty"`
	OrgMembershipDeletedAt gorm.DeletedAt `gorm:"column:org_membership_deleted_at;index" json:"org_membership_deleted_at,omitempty"`
}

func (OrgMembershipModel) TableName() string { return "org_memberships" }
