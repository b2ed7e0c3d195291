package service

import (
	"context"
	"testing"
	"time"

	"carehub_backend/internals/apperr"
	attendanceModel "carehub_backend/internals/features/attendance/model"
	sessionModel "carehub_backend/internals/features/sessions/model"
	userModel "carehub_backend/internals/features/users/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ===================== fakes (dipakai juga oleh upsert_test) ===================== */

type fakeSessionReader struct {
	siteBySession map[uuid.UUID]uuid.UUID
	assignments   map[uuid.UUID][]sessionModel.CareSessionStaffModel
}

func newFakeSessionReader() *fakeSessionReader {
	return &fakeSessionReader{
		siteBySession: map[uuid.UUID]uuid.UUID{},
		assignments:   map[uuid.UUID][]sessionModel.CareSessionStaffModel{},
	}
}

func (f *fakeSessionReader) Exists(_ context.Context, siteID, sessionID uuid.UUID) (bool, error) {
	return f.siteBySession[sessionID] == siteID, nil
}

func (f *fakeSessionReader) ListAssignments(_ context.Context, sessionID uuid.UUID) ([]sessionModel.CareSessionStaffModel, error) {
	return f.assignments[sessionID], nil
}

func (f *fakeSessionReader) addSession(siteID uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.siteBySession[id] = siteID
	return id
}

func (f *fakeSessionReader) assign(sessionID, userID uuid.UUID, role string) {
	f.assignments[sessionID] = append(f.assignments[sessionID], sessionModel.CareSessionStaffModel{
		CareSessionStaffID:        uuid.New(),
		CareSessionStaffSessionID: sessionID,
		CareSessionStaffUserID:    userID,
		CareSessionStaffRole:      role,
	})
}

type markKey struct {
	siteID    uuid.UUID
	sessionID uuid.UUID
	staffID   uuid.UUID
}

// fakeAttendanceStore meniru semantik upsert keyed (site, session, staff):
// key sama → row yang sama ditimpa, bukan row baru.
type fakeAttendanceStore struct {
	rows      map[markKey]attendanceModel.CareSessionStaffAttendanceModel
	upsertErr error
	upserts   int
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{rows: map[markKey]attendanceModel.CareSessionStaffAttendanceModel{}}
}

func (f *fakeAttendanceStore) ListBySession(_ context.Context, siteID, sessionID uuid.UUID) ([]attendanceModel.CareSessionStaffAttendanceModel, error) {
	var out []attendanceModel.CareSessionStaffAttendanceModel
	for k, v := range f.rows {
		if k.siteID == siteID && k.sessionID == sessionID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) Upsert(_ context.Context, m *attendanceModel.CareSessionStaffAttendanceModel) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	k := markKey{
		siteID:    m.CareSessionStaffAttendanceSiteID,
		sessionID: m.CareSessionStaffAttendanceSessionID,
		staffID:   m.CareSessionStaffAttendanceStaffUserID,
	}
	if cur, ok := f.rows[k]; ok {
		cur.CareSessionStaffAttendanceStatus = m.CareSessionStaffAttendanceStatus
		cur.CareSessionStaffAttendanceMarkedByUserID = m.CareSessionStaffAttendanceMarkedByUserID
		cur.CareSessionStaffAttendanceMarkedAt = m.CareSessionStaffAttendanceMarkedAt
		f.rows[k] = cur
		return nil
	}
	m.CareSessionStaffAttendanceID = uuid.New()
	f.rows[k] = *m
	return nil
}

type fakeStaffDirectory struct {
	users map[uuid.UUID]userModel.UserModel
}

func newFakeStaffDirectory() *fakeStaffDirectory {
	return &fakeStaffDirectory{users: map[uuid.UUID]userModel.UserModel{}}
}

func (f *fakeStaffDirectory) ListByIDs(_ context.Context, ids []uuid.UUID) ([]userModel.UserModel, error) {
	var out []userModel.UserModel
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStaffDirectory) addUser(display, full, first, last *string) uuid.UUID {
	id := uuid.New()
	f.users[id] = userModel.UserModel{
		UserID:          id,
		UserDisplayName: display,
		UserFullName:    full,
		UserFirstName:   first,
		UserLastName:    last,
	}
	return id
}

func sp(s string) *string { return &s }

/* ===================== GetRoster ===================== */

func TestGetRoster_NotFoundWhenSessionOutsideSite(t *testing.T) {
	sessions := newFakeSessionReader()
	b := NewRosterBuilder(sessions, newFakeAttendanceStore(), newFakeStaffDirectory())
	sessionID := sessions.addSession(uuid.New())

	_, err := b.GetRoster(context.Background(), uuid.New(), sessionID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetRoster_DefaultsUnknownAndKeepsAssignmentOrder(t *testing.T) {
	siteID := uuid.New()
	sessions := newFakeSessionReader()
	store := newFakeAttendanceStore()
	dir := newFakeStaffDirectory()
	b := NewRosterBuilder(sessions, store, dir)

	sessionID := sessions.addSession(siteID)
	u1 := dir.addUser(sp("Sari"), nil, nil, nil)
	u2 := dir.addUser(sp("Budi"), nil, nil, nil)
	u3 := dir.addUser(sp("Tono"), nil, nil, nil)
	sessions.assign(sessionID, u1, "lead")
	sessions.assign(sessionID, u2, "support")
	sessions.assign(sessionID, u3, "coordinator")

	marker := uuid.New()
	now := time.Now()
	require.NoError(t, store.Upsert(context.Background(), &attendanceModel.CareSessionStaffAttendanceModel{
		CareSessionStaffAttendanceSiteID:         siteID,
		CareSessionStaffAttendanceSessionID:      sessionID,
		CareSessionStaffAttendanceStaffUserID:    u2,
		CareSessionStaffAttendanceStatus:         attendanceModel.AttendanceStatusPresent,
		CareSessionStaffAttendanceMarkedByUserID: marker,
		CareSessionStaffAttendanceMarkedAt:       now,
	}))

	roster, err := b.GetRoster(context.Background(), siteID, sessionID)
	require.NoError(t, err)
	require.Len(t, roster, 3)

	// urutan mengikuti urutan penugasan
	assert.Equal(t, u1, roster[0].StaffUserID)
	assert.Equal(t, u2, roster[1].StaffUserID)
	assert.Equal(t, u3, roster[2].StaffUserID)

	// default UNKNOWN untuk yang belum ditandai; mark muncul dengan metadata lengkap
	assert.Equal(t, attendanceModel.AttendanceStatusUnknown, roster[0].AttendanceStatus)
	assert.Nil(t, roster[0].MarkedAt)
	assert.Equal(t, attendanceModel.AttendanceStatusPresent, roster[1].AttendanceStatus)
	require.NotNil(t, roster[1].MarkedByUserID)
	assert.Equal(t, marker, *roster[1].MarkedByUserID)
	require.NotNil(t, roster[1].MarkedAt)
	assert.True(t, roster[1].MarkedAt.Equal(now))
	assert.Equal(t, attendanceModel.AttendanceStatusUnknown, roster[2].AttendanceStatus)

	for _, e := range roster {
		assert.True(t, e.Assigned)
	}
	assert.Equal(t, "Lead", roster[0].RoleLabel)
	assert.Equal(t, "Support", roster[1].RoleLabel)
	assert.Equal(t, "Coordinator", roster[2].RoleLabel)
}

func TestGetRoster_EmptyWhenNoAssignments(t *testing.T) {
	siteID := uuid.New()
	sessions := newFakeSessionReader()
	b := NewRosterBuilder(sessions, newFakeAttendanceStore(), newFakeStaffDirectory())
	sessionID := sessions.addSession(siteID)

	roster, err := b.GetRoster(context.Background(), siteID, sessionID)
	require.NoError(t, err)
	assert.Empty(t, roster)
}

/* ===================== RoleLabel ===================== */

func TestRoleLabel(t *testing.T) {
	cases := map[string]string{
		"lead":        "Lead",
		"LEAD":        "Lead",
		"teacher":     "Lead",
		"ADMIN":       "Lead",
		"coordinator": "Coordinator",
		"support":     "Support",
		" Support ":   "Support",
		"volunteer":   "Support", // role tak dikenal → default aman
		"":            "Support",
	}
	for raw, want := range cases {
		assert.Equal(t, want, RoleLabel(raw), "raw=%q", raw)
	}
}

/* ===================== DisplayNameOf ===================== */

func TestDisplayNameOf_FallbackChain(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")

	t.Run("display name dipakai apa adanya", func(t *testing.T) {
		u := userModel.UserModel{UserDisplayName: sp("Bu Sari")}
		assert.Equal(t, "Bu Sari", DisplayNameOf(u, id))
	})

	t.Run("display name mirip email dilewati", func(t *testing.T) {
		u := userModel.UserModel{
			UserDisplayName: sp("sari@contoh.co.id"),
			UserFullName:    sp("Sari Dewi"),
		}
		assert.Equal(t, "Sari Dewi", DisplayNameOf(u, id))
	})

	t.Run("full name sebagai fallback kedua", func(t *testing.T) {
		u := userModel.UserModel{UserFullName: sp("Sari Dewi")}
		assert.Equal(t, "Sari Dewi", DisplayNameOf(u, id))
	})

	t.Run("first+last digabung", func(t *testing.T) {
		u := userModel.UserModel{UserFirstName: sp("Sari"), UserLastName: sp("Dewi")}
		assert.Equal(t, "Sari Dewi", DisplayNameOf(u, id))
	})

	t.Run("first saja tanpa trailing space", func(t *testing.T) {
		u := userModel.UserModel{UserFirstName: sp("Sari")}
		assert.Equal(t, "Sari", DisplayNameOf(u, id))
	})

	t.Run("semua kosong → placeholder dari id", func(t *testing.T) {
		assert.Equal(t, "Staff a1b2c3d4", DisplayNameOf(userModel.UserModel{}, id))
	})

	t.Run("whitespace dianggap kosong", func(t *testing.T) {
		u := userModel.UserModel{UserDisplayName: sp("   "), UserFullName: sp("Sari Dewi")}
		assert.Equal(t, "Sari Dewi", DisplayNameOf(u, id))
	})
}

func TestLooksLikeEmail(t *testing.T) {
	assert.True(t, looksLikeEmail("a@b.co"))
	assert.False(t, looksLikeEmail("bukan email"))
	assert.False(t, looksLikeEmail("@b.co"))
	assert.False(t, looksLikeEmail("a@"))
	assert.False(t, looksLikeEmail("a@tanpadomain"))
}
