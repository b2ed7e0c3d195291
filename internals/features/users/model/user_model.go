package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	UserUserName    string  `gorm:"column:user_user_name;type:varchar(50);unique;not null" json:"user_user_name"`
	UserEmail       string  `gorm:"column:user_email;type:varchar(255);unique;not null" json:"user_email"`
	UserDisplayName *string `gorm:"column:user_display_name;type:varchar(100)" json:"user_display_name,omitempty"`
	UserFullName    *string `gorm:"column:user_full_name;type:varchar(100)" json:"user_full_name,omitempty"`
	UserFirstName   *string `gorm:"column:user_first_name;type:varchar(50)" json:"user_first_name,omitempty"`
	UserLastName    *string `gorm:"column:user_last_name;type:varchar(50)" json:"user_last_name,omitempty"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true;index" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
