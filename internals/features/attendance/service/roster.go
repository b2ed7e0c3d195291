package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carehub_backend/internals/apperr"
	"carehub_backend/internals/features/attendance/dto"
	attendanceModel "carehub_backend/internals/features/attendance/model"
	sessionModel "carehub_backend/internals/features/sessions/model"
	userModel "carehub_backend/internals/features/users/model"
	"carehub_backend/internals/storerr"

	"github.com/google/uuid"
)

/* =====================
   Ports
===================== */

type SessionReader interface {
	Exists(ctx context.Context, siteID, sessionID uuid.UUID) (bool, error)
	ListAssignments(ctx context.Context, sessionID uuid.UUID) ([]sessionModel.CareSessionStaffModel, error)
}

type AttendanceRepository interface {
	ListBySession(ctx context.Context, siteID, sessionID uuid.UUID) ([]attendanceModel.CareSessionStaffAttendanceModel, error)
	Upsert(ctx context.Context, m *attendanceModel.CareSessionStaffAttendanceModel) error
}

type StaffDirectory interface {
	ListByIDs(ctx context.Context, userIDs []uuid.UUID) ([]userModel.UserModel, error)
}

/* =====================
   Roster builder
===================== */

type RosterBuilder struct {
	sessions   SessionReader
	attendance AttendanceRepository
	users      StaffDirectory
}

func NewRosterBuilder(sessions SessionReader, attendance AttendanceRepository, users StaffDirectory) *RosterBuilder {
	return &RosterBuilder{sessions: sessions, attendance: attendance, users: users}
}

// GetRoster — gabungan penugasan staff + status kehadiran terakhir + label
// role/nama. Urut mengikuti urutan penugasan; staff yang belum ditandai
// default UNKNOWN. Hanya staff yang ditugaskan yang muncul (assigned=true).
func (b *RosterBuilder) GetRoster(ctx context.Context, siteID, sessionID uuid.UUID) ([]dto.RosterEntryDTO, error) {
	ok, err := b.sessions.Exists(ctx, siteID, sessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.NotFound("Sesi tidak ditemukan")
	}

	assignments, err := b.sessions.ListAssignments(ctx, sessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	marks, err := b.attendance.ListBySession(ctx, siteID, sessionID)
	if err != nil {
		if !errors.Is(err, storerr.ErrNotFound) {
			return nil, apperr.Internal(err)
		}
		marks = nil
	}
	markByStaff := make(map[uuid.UUID]attendanceModel.CareSessionStaffAttendanceModel, len(marks))
	for _, m := range marks {
		markByStaff[m.CareSessionStaffAttendanceStaffUserID] = m
	}

	staffIDs := make([]uuid.UUID, 0, len(assignments))
	for _, a := range assignments {
		staffIDs = append(staffIDs, a.CareSessionStaffUserID)
	}
	userByID := make(map[uuid.UUID]userModel.UserModel, len(staffIDs))
	if len(staffIDs) > 0 {
		users, err := b.users.ListByIDs(ctx, staffIDs)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		for _, u := range users {
			userByID[u.UserID] = u
		}
	}

	roster := make([]dto.RosterEntryDTO, 0, len(assignments))
	for _, a := range assignments {
		entry := dto.RosterEntryDTO{
			StaffUserID:      a.CareSessionStaffUserID,
			DisplayName:      DisplayNameOf(userByID[a.CareSessionStaffUserID], a.CareSessionStaffUserID),
			RoleLabel:        RoleLabel(a.CareSessionStaffRole),
			Assigned:         true,
			AttendanceStatus: attendanceModel.AttendanceStatusUnknown,
		}
		if m, ok := markByStaff[a.CareSessionStaffUserID]; ok {
			entry.AttendanceStatus = m.CareSessionStaffAttendanceStatus
			entry.MarkedByUserID = &m.CareSessionStaffAttendanceMarkedByUserID
			markedAt := m.CareSessionStaffAttendanceMarkedAt
			entry.MarkedAt = &markedAt
		}
		roster = append(roster, entry)
	}
	return roster, nil
}

/* ===================== label & nama ===================== */

// RoleLabel — normalisasi role mentah penugasan ke label tampilan.
// Case-insensitive; role tak dikenal jatuh ke "Support" (default aman, bukan error).
func RoleLabel(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "LEAD", "TEACHER", "ADMIN":
		return "Lead"
	case "COORDINATOR":
		return "Coordinator"
	case "SUPPORT":
		return "Support"
	default:
		return "Support"
	}
}

// DisplayNameOf — rantai fallback nama tampilan, jaminan non-empty dan tidak
// membocorkan email: display_name (kecuali mirip email) → full_name →
// "First Last" → "Staff <8 char id>".
func DisplayNameOf(u userModel.UserModel, staffID uuid.UUID) string {
	if u.UserDisplayName != nil {
		if name := strings.TrimSpace(*u.UserDisplayName); name != "" && !looksLikeEmail(name) {
			return name
		}
	}
	if u.UserFullName != nil {
		if name := strings.TrimSpace(*u.UserFullName); name != "" {
			return name
		}
	}
	first, last := "", ""
	if u.UserFirstName != nil {
		first = strings.TrimSpace(*u.UserFirstName)
	}
	if u.UserLastName != nil {
		last = strings.TrimSpace(*u.UserLastName)
	}
	if first != "" || last != "" {
		return strings.TrimSpace(first + " " + last)
	}
	return fmt.Sprintf("Staff %s", staffID.String()[:8])
}

// looksLikeEmail — heuristik: ada '@' dan suffix domain dengan titik.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
