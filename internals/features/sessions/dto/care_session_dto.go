package dto

import (
	"encoding/json"
	"time"

	attendanceModel "carehub_backend/internals/features/attendance/model"
	groupModel "carehub_backend/internals/features/groups/model"
	"carehub_backend/internals/features/sessions/model"

	"github.com/google/uuid"
)

// =========================
// Patch tri-state untuk group_ids
// =========================

// UUIDListPatch membedakan tiga bentuk payload:
//   - key tidak dikirim          → Set=false (asosiasi tidak diubah)
//   - "group_ids": null / []     → Set=true, IDs kosong (asosiasi dihapus)
//   - "group_ids": ["..."]       → Set=true, IDs diganti seluruhnya
type UUIDListPatch struct {
	Set bool
	IDs []uuid.UUID
}

func (p *UUIDListPatch) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.IDs = nil
		return nil
	}
	return json.Unmarshal(b, &p.IDs)
}

// =========================
// Request DTOs: Create & Update
// =========================

type CreateCareSessionRequest struct {
	// Opsional; kalau dikirim wajib sama dengan site aktif di token.
	CareSessionSiteID *uuid.UUID `json:"care_session_site_id"`

	CareSessionTitle    *string   `json:"care_session_title"`
	CareSessionStartsAt time.Time `json:"care_session_starts_at" validate:"required"`
	CareSessionEndsAt   time.Time `json:"care_session_ends_at" validate:"required"`

	CareSessionGroupIDs []uuid.UUID `json:"care_session_group_ids"`
}

type UpdateCareSessionRequest struct {
	CareSessionTitle    *string    `json:"care_session_title"`
	CareSessionStartsAt *time.Time `json:"care_session_starts_at"`
	CareSessionEndsAt   *time.Time `json:"care_session_ends_at"`

	CareSessionGroupIDs UUIDListPatch `json:"care_session_group_ids"`
}

// =========================
// Response DTOs
// =========================

type GroupLiteDTO struct {
	GroupID     uuid.UUID `json:"group_id"`
	GroupName   string    `json:"group_name"`
	GroupAgeMin *int      `json:"group_age_min,omitempty"`
	GroupAgeMax *int      `json:"group_age_max,omitempty"`
}

type SessionStaffDTO struct {
	StaffUserID uuid.UUID `json:"staff_user_id"`
	StaffRole   string    `json:"staff_role"`
}

type AttendanceCountsDTO struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Unknown int `json:"unknown"`
}

type CareSessionDTO struct {
	CareSessionID       uuid.UUID  `json:"care_session_id"`
	CareSessionSiteID   uuid.UUID  `json:"care_session_site_id"`
	CareSessionTitle    *string    `json:"care_session_title,omitempty"`
	CareSessionStartsAt time.Time  `json:"care_session_starts_at"`
	CareSessionEndsAt   time.Time  `json:"care_session_ends_at"`
	CareSessionGroups   []GroupLiteDTO `json:"care_session_groups"`

	// Diisi hanya pada detail (read-model turunan)
	CareSessionStaff            []SessionStaffDTO    `json:"care_session_staff,omitempty"`
	CareSessionAttendanceCounts *AttendanceCountsDTO `json:"care_session_attendance_counts,omitempty"`

	CareSessionCreatedAt time.Time  `json:"care_session_created_at"`
	CareSessionUpdatedAt *time.Time `json:"care_session_updated_at,omitempty"`
}

// =========================
// Model → Response
// =========================

func ToGroupLiteDTO(g groupModel.GroupModel) GroupLiteDTO {
	return GroupLiteDTO{
		GroupID:     g.GroupID,
		GroupName:   g.GroupName,
		GroupAgeMin: g.GroupAgeMin,
		GroupAgeMax: g.GroupAgeMax,
	}
}

func ToCareSessionDTO(m model.CareSessionModel) CareSessionDTO {
	groups := make([]GroupLiteDTO, 0, len(m.Groups))
	for _, g := range m.Groups {
		groups = append(groups, ToGroupLiteDTO(g))
	}
	return CareSessionDTO{
		CareSessionID:        m.CareSessionID,
		CareSessionSiteID:    m.CareSessionSiteID,
		CareSessionTitle:     m.CareSessionTitle,
		CareSessionStartsAt:  m.CareSessionStartsAt,
		CareSessionEndsAt:    m.CareSessionEndsAt,
		CareSessionGroups:    groups,
		CareSessionCreatedAt: m.CareSessionCreatedAt,
		CareSessionUpdatedAt: m.CareSessionUpdatedAt,
	}
}

func ToSessionStaffDTOs(rows []model.CareSessionStaffModel) []SessionStaffDTO {
	out := make([]SessionStaffDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, SessionStaffDTO{
			StaffUserID: r.CareSessionStaffUserID,
			StaffRole:   r.CareSessionStaffRole,
		})
	}
	return out
}

// BuildAttendanceCounts: hitungan per status; staff yang belum ditandai dihitung UNKNOWN.
func BuildAttendanceCounts(assigned int, marks []attendanceModel.CareSessionStaffAttendanceModel) AttendanceCountsDTO {
	c := AttendanceCountsDTO{}
	for _, m := range marks {
		switch m.CareSessionStaffAttendanceStatus {
		case attendanceModel.AttendanceStatusPresent:
			c.Present++
		case attendanceModel.AttendanceStatusAbsent:
			c.Absent++
		default:
			c.Unknown++
		}
	}
	if rest := assigned - len(marks); rest > 0 {
		c.Unknown += rest
	}
	return c
}
