package model

import (
	"github.com/google/uuid"
)

// Join table sesi ↔ group. Pasangan unik supaya group tidak nempel dua kali.
type CareSessionGroupModel struct {
	CareSessionGroupSessionID uuid.UUID `gorm:"column:care_session_group_session_id;type:uuid;not null;primaryKey" json:"care_session_group_session_id"`
	CareSessionGroupGroupID   uuid.UUID `gorm:"column:care_session_group_group_id;type:uuid;not null;primaryKey" json:"care_session_group_group_id"`
}

func (CareSessionGroupModel) TableName() string { return "care_session_groups" }
