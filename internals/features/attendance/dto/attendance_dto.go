package dto

import (
	"time"

	"github.com/google/uuid"
)

// =========================
// Request DTO
// =========================

type MarkAttendanceRequest struct {
	StaffUserID uuid.UUID `json:"staff_user_id" validate:"required"`
	Status      string    `json:"status" validate:"required,oneof=PRESENT ABSENT UNKNOWN"`
}

// =========================
// Response DTO (roster)
// =========================

type RosterEntryDTO struct {
	StaffUserID      uuid.UUID `json:"staff_user_id"`
	DisplayName      string    `json:"display_name"`
	RoleLabel        string    `json:"role_label"`
	Assigned         bool      `json:"assigned"`
	AttendanceStatus string    `json:"attendance_status"`

	MarkedByUserID *uuid.UUID `json:"marked_by_user_id,omitempty"`
	MarkedAt       *time.Time `json:"marked_at,omitempty"`
}
