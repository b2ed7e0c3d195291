package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupModel struct {
	GroupID     uuid.UUID `gorm:"column:group_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"group_id"`
	GroupSiteID uuid.UUID `gorm:"column:group_site_id;type:uuid;not null;uniqueIndex:uq_groups_site_name" json:"group_site_id"`

	// Nama unik per site (partial unique index WHERE group_deleted_at IS NULL)
	GroupName string `gorm:"column:group_name;type:varchar(100);not null;uniqueIndex:uq_groups_site_name" json:"group_name"`

	// Rentang usia peserta (opsional)
	GroupAgeMin *int `gorm:"column:group_age_min" json:"group_age_min,omitempty"`
	GroupAgeMax *int `gorm:"column:group_age_max" json:"group_age_max,omitempty"`

	GroupCreatedAt time.Time      `gorm:"column:group_created_at;autoCreateTime" json:"group_created_at"`
	GroupUpdatedAt *time.Time     `gorm:"column:group_updated_at;autoUpdateTime" json:"group_updated_at,omitempty"`
	GroupDeletedAt gorm.DeletedAt `gorm:"column:group_deleted_at;index" json:"group_deleted_at,omitempty"`
}

func (GroupModel) TableName() string { return "groups" }
