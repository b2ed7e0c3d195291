package service

import (
	"context"
	"errors"
	"time"

	"carehub_backend/internals/apperr"
	attendanceModel "carehub_backend/internals/features/attendance/model"
	"carehub_backend/internals/features/sessions/dto"
	"carehub_backend/internals/features/sessions/model"
	"carehub_backend/internals/storerr"

	"github.com/google/uuid"
)

/* =====================
   Ports (diinject via constructor, tanpa DI container)
===================== */

// ListFilter — filter query list sesi. From/To dipakai sebagai uji OVERLAP
// inklusif (starts_at <= to AND ends_at >= from), bukan containment.
type ListFilter struct {
	GroupID *uuid.UUID
	From    *time.Time
	To      *time.Time
}

type SessionRepository interface {
	List(ctx context.Context, siteID uuid.UUID, f ListFilter) ([]model.CareSessionModel, error)
	GetByID(ctx context.Context, siteID, sessionID uuid.UUID) (*model.CareSessionModel, error)
	// groupIDs: daftar group yang dihubungkan saat create (boleh kosong).
	Create(ctx context.Context, m *model.CareSessionModel, groupIDs []uuid.UUID) error
	// groupIDs nil = asosiasi tidak disentuh; non-nil = diganti wholesale.
	Update(ctx context.Context, m *model.CareSessionModel, groupIDs *[]uuid.UUID) error
	Delete(ctx context.Context, siteID, sessionID uuid.UUID) error
	ListAssignments(ctx context.Context, sessionID uuid.UUID) ([]model.CareSessionStaffModel, error)
}

type GroupReader interface {
	// CountOwned menghitung berapa dari groupIDs yang benar-benar milik site.
	CountOwned(ctx context.Context, siteID uuid.UUID, groupIDs []uuid.UUID) (int64, error)
}

type SiteReader interface {
	Exists(ctx context.Context, siteID uuid.UUID) (bool, error)
}

// EntitlementGate — kolaborator eksternal (billing). Dikonsultasi sekali per
// create; isi perhitungannya opaque bagi session store.
type EntitlementGate interface {
	EnsureSessionCapacity(ctx context.Context, siteID uuid.UUID) error
}

type AttendanceCounter interface {
	ListBySession(ctx context.Context, siteID, sessionID uuid.UUID) ([]attendanceModel.CareSessionStaffAttendanceModel, error)
}

/* =====================
   Service
===================== */

type CareSessionService struct {
	sessions   SessionRepository
	groups     GroupReader
	sites      SiteReader
	gate       EntitlementGate
	attendance AttendanceCounter
}

func NewCareSessionService(
	sessions SessionRepository,
	groups GroupReader,
	sites SiteReader,
	gate EntitlementGate,
	attendance AttendanceCounter,
) *CareSessionService {
	return &CareSessionService{
		sessions:   sessions,
		groups:     groups,
		sites:      sites,
		gate:       gate,
		attendance: attendance,
	}
}

/* ===================== LIST ===================== */

func (s *CareSessionService) List(ctx context.Context, siteID uuid.UUID, f ListFilter) ([]dto.CareSessionDTO, error) {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, apperr.Validation("Rentang tanggal tidak valid: to sebelum from")
	}
	rows, err := s.sessions.List(ctx, siteID, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	out := make([]dto.CareSessionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToCareSessionDTO(r))
	}
	return out, nil
}

/* ===================== GET DETAIL ===================== */

// GetByID — detail sesi + read-model turunan (staff & hitungan kehadiran).
// Scoping site dilakukan di query, bukan post-filter, supaya keberadaan sesi
// milik site lain tidak bocor (selalu 404).
func (s *CareSessionService) GetByID(ctx context.Context, siteID, sessionID uuid.UUID) (*dto.CareSessionDTO, error) {
	m, err := s.sessions.GetByID(ctx, siteID, sessionID)
	if err != nil {
		if errors.Is(err, storerr.ErrNotFound) {
			return nil, apperr.NotFound("Sesi tidak ditemukan")
		}
		return nil, apperr.Internal(err)
	}

	resp := dto.ToCareSessionDTO(*m)

	staff, err := s.sessions.ListAssignments(ctx, sessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	resp.CareSessionStaff = dto.ToSessionStaffDTOs(staff)

	marks, err := s.attendance.ListBySession(ctx, siteID, sessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	counts := dto.BuildAttendanceCounts(len(staff), marks)
	resp.CareSessionAttendanceCounts = &counts

	return &resp, nil
}

/* ===================== CREATE ===================== */

// Create — semua validasi yang nyentuh DB jalan SEBELUM write, supaya caller
// dapat penolakan domain yang bersih, bukan constraint violation mentah.
func (s *CareSessionService) Create(ctx context.Context, siteID uuid.UUID, req dto.CreateCareSessionRequest) (*dto.CareSessionDTO, error) {
	if req.CareSessionSiteID != nil && *req.CareSessionSiteID != siteID {
		return nil, apperr.Validation("Site pada payload tidak sesuai dengan site aktif")
	}
	if err := validateDates(req.CareSessionStartsAt, req.CareSessionEndsAt); err != nil {
		return nil, err
	}

	ok, err := s.sites.Exists(ctx, siteID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.NotFound("Site tidak ditemukan")
	}

	// 💳 Konsultasi entitlement gate sebelum write apa pun.
	if err := s.gate.EnsureSessionCapacity(ctx, siteID); err != nil {
		return nil, err
	}

	groupIDs := dedupUUIDs(req.CareSessionGroupIDs)
	if err := s.ensureGroupsOwned(ctx, siteID, groupIDs); err != nil {
		return nil, err
	}

	m := model.CareSessionModel{
		CareSessionSiteID:   siteID,
		CareSessionTitle:    req.CareSessionTitle,
		CareSessionStartsAt: req.CareSessionStartsAt,
		CareSessionEndsAt:   req.CareSessionEndsAt,
	}
	if err := s.sessions.Create(ctx, &m, groupIDs); err != nil {
		return nil, mapWriteErr(err)
	}

	fresh, err := s.sessions.GetByID(ctx, siteID, m.CareSessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	resp := dto.ToCareSessionDTO(*fresh)
	return &resp, nil
}

/* ===================== UPDATE (partial) ===================== */

// Update — invariant dicek terhadap state HASIL MERGE (existing + patch),
// bukan terhadap patch saja.
func (s *CareSessionService) Update(ctx context.Context, siteID, sessionID uuid.UUID, req dto.UpdateCareSessionRequest) (*dto.CareSessionDTO, error) {
	cur, err := s.sessions.GetByID(ctx, siteID, sessionID)
	if err != nil {
		if errors.Is(err, storerr.ErrNotFound) {
			return nil, apperr.NotFound("Sesi tidak ditemukan")
		}
		return nil, apperr.Internal(err)
	}

	if req.CareSessionTitle != nil {
		cur.CareSessionTitle = req.CareSessionTitle
	}
	startsAt := cur.CareSessionStartsAt
	if req.CareSessionStartsAt != nil {
		startsAt = *req.CareSessionStartsAt
	}
	endsAt := cur.CareSessionEndsAt
	if req.CareSessionEndsAt != nil {
		endsAt = *req.CareSessionEndsAt
	}
	if err := validateDates(startsAt, endsAt); err != nil {
		return nil, err
	}
	cur.CareSessionStartsAt = startsAt
	cur.CareSessionEndsAt = endsAt

	// Tri-state group patch: Set=false → biarkan; Set=true IDs kosong → clear;
	// Set=true IDs isi → replace wholesale (semua wajib valid milik site).
	var groupIDs *[]uuid.UUID
	if req.CareSessionGroupIDs.Set {
		ids := dedupUUIDs(req.CareSessionGroupIDs.IDs)
		if err := s.ensureGroupsOwned(ctx, siteID, ids); err != nil {
			return nil, err
		}
		groupIDs = &ids
	}

	if err := s.sessions.Update(ctx, cur, groupIDs); err != nil {
		return nil, mapWriteErr(err)
	}

	fresh, err := s.sessions.GetByID(ctx, siteID, sessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	resp := dto.ToCareSessionDTO(*fresh)
	return &resp, nil
}

/* ===================== DELETE ===================== */

func (s *CareSessionService) Delete(ctx context.Context, siteID, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, siteID, sessionID); err != nil {
		if errors.Is(err, storerr.ErrNotFound) {
			return apperr.NotFound("Sesi tidak ditemukan")
		}
		return apperr.Internal(err)
	}
	return nil
}

/* ===================== internals ===================== */

func validateDates(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() || endsAt.IsZero() {
		return apperr.Validation("Waktu mulai dan selesai wajib diisi")
	}
	if !endsAt.After(startsAt) {
		return apperr.Validation("Waktu selesai harus setelah waktu mulai")
	}
	return nil
}

// ensureGroupsOwned: SEMUA id harus resolve ke group milik site.
// Partial match = gagal, bukan difilter diam-diam.
func (s *CareSessionService) ensureGroupsOwned(ctx context.Context, siteID uuid.UUID, groupIDs []uuid.UUID) error {
	if len(groupIDs) == 0 {
		return nil
	}
	n, err := s.groups.CountOwned(ctx, siteID, groupIDs)
	if err != nil {
		return apperr.Internal(err)
	}
	if n != int64(len(groupIDs)) {
		return apperr.Validation("Ada group yang tidak ditemukan atau bukan milik site ini")
	}
	return nil
}

// mapWriteErr: violation storage yang lolos dari pre-check (race) dipetakan ke
// taxonomy domain yang sama dengan hasil pre-check-nya.
func mapWriteErr(err error) error {
	switch {
	case errors.Is(err, storerr.ErrDuplicate):
		return apperr.Conflict("Data duplikat terdeteksi, coba lagi")
	case errors.Is(err, storerr.ErrFKViolation):
		return apperr.Validation("Referensi tidak valid")
	case errors.Is(err, storerr.ErrNotFound):
		return apperr.NotFound("Data tidak ditemukan")
	default:
		return apperr.Internal(err)
	}
}

func dedupUUIDs(in []uuid.UUID) []uuid.UUID {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(in))
	out := make([]uuid.UUID, 0, len(in))
	for _, id := range in {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
