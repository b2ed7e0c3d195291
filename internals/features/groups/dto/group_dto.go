package dto

import (
	"carehub_backend/internals/features/groups/model"

	"github.com/google/uuid"
)

// =========================
// Request DTOs: Create & Update
// =========================

type CreateGroupRequest struct {
	GroupName   string `json:"group_name" validate:"required,min=2,max=100"`
	GroupAgeMin *int   `json:"group_age_min" validate:"omitempty,min=0"`
	GroupAgeMax *int   `json:"group_age_max" validate:"omitempty,min=0"`
}

type UpdateGroupRequest struct {
	GroupName   *string `json:"group_name" validate:"omitempty,min=2,max=100"`
	GroupAgeMin *int    `json:"group_age_min" validate:"omitempty,min=0"`
	GroupAgeMax *int    `json:"group_age_max" validate:"omitempty,min=0"`
}

// =========================
// Response DTO
// =========================

type GroupDTO struct {
	GroupID     uuid.UUID `json:"group_id"`
	GroupSiteID uuid.UUID `json:"group_site_id"`
	GroupName   string    `json:"group_name"`
	GroupAgeMin *int      `json:"group_age_min,omitempty"`
	GroupAgeMax *int      `json:"group_age_max,omitempty"`
}

func (r CreateGroupRequest) ToModel(siteID uuid.UUID) model.GroupModel {
	return model.GroupModel{
		GroupSiteID: siteID,
		GroupName:   r.GroupName,
		GroupAgeMin: r.GroupAgeMin,
		GroupAgeMax: r.GroupAgeMax,
	}
}

func ToGroupDTO(m model.GroupModel) GroupDTO {
	return GroupDTO{
		GroupID:     m.GroupID,
		GroupSiteID: m.GroupSiteID,
		GroupName:   m.GroupName,
		GroupAgeMin: m.GroupAgeMin,
		GroupAgeMax: m.GroupAgeMax,
	}
}
