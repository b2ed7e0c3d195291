package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Site = tenant. Satu site selalu milik tepat satu org.
type SiteModel struct {
	SiteID    uuid.UUID `gorm:"column:site_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"site_id"`
	SiteOrgID uuid.UUID `gorm:"column:site_org_id;type:uuid;not null;index" json:"site_org_id"`
	SiteName  string    `gorm:"column:site_name;type:varchar(255);not null" json:"site_name"`

	// Batas keras jumlah sesi aktif (NULL = tanpa batas). Dihitung oleh
	// entitlement gate, bukan oleh session store.
	SiteSessionCap *int `gorm:"column:site_session_cap" json:"site_session_cap,omitempty"`

	Org OrgModel `gorm:"foreignKey:SiteOrgID;references:OrgID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"org,omitempty"`

	SiteCreatedAt time.Time      `gorm:"column:site_created_at;autoCreateTime" json:"site_created_at"`
	SiteUpdatedAt *time.Time     `gorm:"column:site_updated_at;autoUpdateTime" json:"site_updated_at,omitempty"`
	SiteDeletedAt gorm.DeletedAt `gorm:"column:site_deleted_at;index" json:"site_deleted_at,omitempty"`
}

func (SiteModel) TableName() string { return "sites" }
