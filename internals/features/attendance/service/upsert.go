package service

import (
	"context"
	"errors"
	"time"

	"carehub_backend/internals/apperr"
	"carehub_backend/internals/features/attendance/dto"
	attendanceModel "carehub_backend/internals/features/attendance/model"
	"carehub_backend/internals/storerr"

	"github.com/google/uuid"
)

// AttendanceAuthorizer — keputusan tulis dari role resolver.
type AttendanceAuthorizer interface {
	CanMarkAttendance(ctx context.Context, userID, siteID uuid.UUID) (bool, error)
}

// AttendanceService — engine upsert kehadiran staff per sesi.
type AttendanceService struct {
	authorizer AttendanceAuthorizer
	sessions   SessionReader
	attendance AttendanceRepository
	roster     *RosterBuilder

	// now dipisah supaya markedAt bisa dikontrol di test.
	now func() time.Time
}

func NewAttendanceService(
	authorizer AttendanceAuthorizer,
	sessions SessionReader,
	attendance AttendanceRepository,
	roster *RosterBuilder,
) *AttendanceService {
	return &AttendanceService{
		authorizer: authorizer,
		sessions:   sessions,
		attendance: attendance,
		roster:     roster,
		now:        time.Now,
	}
}

// Mark — upsert idempotent satu record kehadiran, lalu kembalikan roster
// terbaru. Tiap step adalah hard gate; semua cek jalan sebelum write.
func (s *AttendanceService) Mark(ctx context.Context, siteID, sessionID, actingUserID uuid.UUID, req dto.MarkAttendanceRequest) ([]dto.RosterEntryDTO, error) {
	// 1) Authorization: denial berlaku untuk SEMUA staff di site ini.
	can, err := s.authorizer.CanMarkAttendance(ctx, actingUserID, siteID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !can {
		return nil, apperr.Forbidden("Anda tidak berhak menandai kehadiran di site ini")
	}

	// 2) Eksistensi + scope site.
	ok, err := s.sessions.Exists(ctx, siteID, sessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.NotFound("Sesi tidak ditemukan")
	}

	// 3) Staff target wajib ada di penugasan sesi.
	if !attendanceModel.ValidAttendanceStatus(req.Status) {
		return nil, apperr.Validation("Status kehadiran tidak dikenal")
	}
	assignments, err := s.sessions.ListAssignments(ctx, sessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	assigned := false
	for _, a := range assignments {
		if a.CareSessionStaffUserID == req.StaffUserID {
			assigned = true
			break
		}
	}
	if !assigned {
		return nil, apperr.Validation("Staff tidak ditugaskan pada sesi ini")
	}

	// 4) Upsert keyed unique (site, session, staff). Race antar penanda
	// diselesaikan constraint di storage: last-writer-wins, tanpa lock.
	mark := attendanceModel.CareSessionStaffAttendanceModel{
		CareSessionStaffAttendanceSiteID:         siteID,
		CareSessionStaffAttendanceSessionID:      sessionID,
		CareSessionStaffAttendanceStaffUserID:    req.StaffUserID,
		CareSessionStaffAttendanceStatus:         req.Status,
		CareSessionStaffAttendanceMarkedByUserID: actingUserID,
		CareSessionStaffAttendanceMarkedAt:       s.now(),
	}
	if err := s.attendance.Upsert(ctx, &mark); err != nil {
		if errors.Is(err, storerr.ErrFKViolation) {
			return nil, apperr.Validation("Referensi tidak valid")
		}
		return nil, apperr.Internal(err)
	}

	// 5) Roster pasca-write dalam satu round trip.
	return s.roster.GetRoster(ctx, siteID, sessionID)
}
