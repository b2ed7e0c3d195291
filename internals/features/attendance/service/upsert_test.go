package service

import (
	"context"
	"testing"
	"time"

	"carehub_backend/internals/apperr"
	"carehub_backend/internals/constants"
	"carehub_backend/internals/features/attendance/dto"
	attendanceModel "carehub_backend/internals/features/attendance/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthorizer struct {
	allow bool
	err   error
}

func (s stubAuthorizer) CanMarkAttendance(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return s.allow, s.err
}

type markFixture struct {
	svc       *AttendanceService
	sessions  *fakeSessionReader
	store     *fakeAttendanceStore
	dir       *fakeStaffDirectory
	siteID    uuid.UUID
	sessionID uuid.UUID
	staffID   uuid.UUID
	actorID   uuid.UUID
}

func newMarkFixture(allow bool) *markFixture {
	sessions := newFakeSessionReader()
	store := newFakeAttendanceStore()
	dir := newFakeStaffDirectory()

	siteID := uuid.New()
	sessionID := sessions.addSession(siteID)
	staffID := dir.addUser(sp("Pak Budi"), nil, nil, nil)
	sessions.assign(sessionID, staffID, "lead")

	roster := NewRosterBuilder(sessions, store, dir)
	svc := NewAttendanceService(stubAuthorizer{allow: allow}, sessions, store, roster)

	return &markFixture{
		svc:       svc,
		sessions:  sessions,
		store:     store,
		dir:       dir,
		siteID:    siteID,
		sessionID: sessionID,
		staffID:   staffID,
		actorID:   uuid.New(),
	}
}

func (f *markFixture) mark(t *testing.T, staffID uuid.UUID, status string) ([]dto.RosterEntryDTO, error) {
	t.Helper()
	return f.svc.Mark(context.Background(), f.siteID, f.sessionID, f.actorID, dto.MarkAttendanceRequest{
		StaffUserID: staffID,
		Status:      status,
	})
}

func TestMark_ForbiddenBeforeAnyWrite(t *testing.T) {
	f := newMarkFixture(false)

	_, err := f.mark(t, f.staffID, attendanceModel.AttendanceStatusPresent)
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.Zero(t, f.store.upserts)
}

func TestMark_SessionOutsideSiteIsNotFound(t *testing.T) {
	f := newMarkFixture(true)

	_, err := f.svc.Mark(context.Background(), uuid.New(), f.sessionID, f.actorID, dto.MarkAttendanceRequest{
		StaffUserID: f.staffID,
		Status:      attendanceModel.AttendanceStatusPresent,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Zero(t, f.store.upserts)
}

func TestMark_UnknownStatusRejected(t *testing.T) {
	f := newMarkFixture(true)

	_, err := f.mark(t, f.staffID, "HADIR")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Zero(t, f.store.upserts)
}

func TestMark_UnassignedStaffRejectedWithoutWrite(t *testing.T) {
	f := newMarkFixture(true)
	outsider := f.dir.addUser(sp("Orang Lain"), nil, nil, nil)

	_, err := f.mark(t, outsider, attendanceModel.AttendanceStatusPresent)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Zero(t, f.store.upserts, "penolakan assignment tidak boleh menyentuh storage")
}

func TestMark_Success_ReturnsFreshRoster(t *testing.T) {
	f := newMarkFixture(true)
	fixed := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return fixed }

	roster, err := f.mark(t, f.staffID, attendanceModel.AttendanceStatusPresent)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, f.staffID, roster[0].StaffUserID)
	assert.Equal(t, attendanceModel.AttendanceStatusPresent, roster[0].AttendanceStatus)
	require.NotNil(t, roster[0].MarkedByUserID)
	assert.Equal(t, f.actorID, *roster[0].MarkedByUserID)
	require.NotNil(t, roster[0].MarkedAt)
	assert.True(t, roster[0].MarkedAt.Equal(fixed))
	assert.Equal(t, "Pak Budi", roster[0].DisplayName)
}

func TestMark_DoubleMarkIsIdempotentSingleRow(t *testing.T) {
	f := newMarkFixture(true)

	_, err := f.mark(t, f.staffID, attendanceModel.AttendanceStatusPresent)
	require.NoError(t, err)
	_, err = f.mark(t, f.staffID, attendanceModel.AttendanceStatusPresent)
	require.NoError(t, err)

	assert.Len(t, f.store.rows, 1, "key sama harus tetap satu row")
	assert.Equal(t, 2, f.store.upserts)
}

func TestMark_LastWriterWins(t *testing.T) {
	f := newMarkFixture(true)

	_, err := f.mark(t, f.staffID, attendanceModel.AttendanceStatusPresent)
	require.NoError(t, err)

	roster, err := f.mark(t, f.staffID, attendanceModel.AttendanceStatusAbsent)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, attendanceModel.AttendanceStatusAbsent, roster[0].AttendanceStatus)
	assert.Len(t, f.store.rows, 1)
}

// Skenario lengkap tanpa stub authorizer: resolver asli dirangkai sebagai
// authorizer Mark. Org admin TANPA site membership menandai staff PRESENT,
// dan roster hasil Mark memperlihatkan status barunya.
func TestMark_OrgAdminWithoutSiteMembershipEndToEnd(t *testing.T) {
	sessions := newFakeSessionReader()
	store := newFakeAttendanceStore()
	dir := newFakeStaffDirectory()

	siteID := uuid.New()
	orgID := uuid.New()
	sessionID := sessions.addSession(siteID)
	staffID := dir.addUser(sp("Pak Budi"), nil, nil, nil)
	sessions.assign(sessionID, staffID, "lead")

	// acting user: org admin, tidak punya row site membership maupun legacy
	resolver := NewRoleResolver(
		stubSiteRoles{},
		stubOrgRoles{role: constants.OrgRoleAdmin, found: true},
		stubLegacyRoles{},
		stubSiteOrg{orgID: orgID, found: true},
	)
	roster := NewRosterBuilder(sessions, store, dir)
	svc := NewAttendanceService(resolver, sessions, store, roster)

	actorID := uuid.New()
	out, err := svc.Mark(context.Background(), siteID, sessionID, actorID, dto.MarkAttendanceRequest{
		StaffUserID: staffID,
		Status:      attendanceModel.AttendanceStatusPresent,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, attendanceModel.AttendanceStatusPresent, out[0].AttendanceStatus)
	require.NotNil(t, out[0].MarkedByUserID)
	assert.Equal(t, actorID, *out[0].MarkedByUserID)
	assert.Len(t, store.rows, 1)

	// user lain di org yang sama tapi tanpa role sama sekali tetap ditolak
	denied := NewAttendanceService(
		NewRoleResolver(stubSiteRoles{}, stubOrgRoles{}, stubLegacyRoles{}, stubSiteOrg{orgID: orgID, found: true}),
		sessions, store, roster,
	)
	_, err = denied.Mark(context.Background(), siteID, sessionID, uuid.New(), dto.MarkAttendanceRequest{
		StaffUserID: staffID,
		Status:      attendanceModel.AttendanceStatusAbsent,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestMark_UnknownIsExplicitlyMarkable(t *testing.T) {
	f := newMarkFixture(true)

	_, err := f.mark(t, f.staffID, attendanceModel.AttendanceStatusPresent)
	require.NoError(t, err)

	// balikkan ke UNKNOWN secara eksplisit; berbeda dari "belum pernah ditandai"
	roster, err := f.mark(t, f.staffID, attendanceModel.AttendanceStatusUnknown)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, attendanceModel.AttendanceStatusUnknown, roster[0].AttendanceStatus)
	assert.NotNil(t, roster[0].MarkedAt, "mark eksplisit tetap tercatat metadata-nya")
}
