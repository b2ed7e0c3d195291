package dto

import (
	"encoding/json"
	"fmt"
	"testing"

	attendanceModel "carehub_backend/internals/features/attendance/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDListPatch_KeyAbsent(t *testing.T) {
	var req UpdateCareSessionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"care_session_title":"x"}`), &req))

	assert.False(t, req.CareSessionGroupIDs.Set, "key absen tidak boleh dianggap patch")
	assert.Nil(t, req.CareSessionGroupIDs.IDs)
}

func TestUUIDListPatch_ExplicitNull(t *testing.T) {
	var req UpdateCareSessionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"care_session_group_ids":null}`), &req))

	assert.True(t, req.CareSessionGroupIDs.Set)
	assert.Empty(t, req.CareSessionGroupIDs.IDs)
}

func TestUUIDListPatch_EmptyList(t *testing.T) {
	var req UpdateCareSessionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"care_session_group_ids":[]}`), &req))

	assert.True(t, req.CareSessionGroupIDs.Set)
	assert.Empty(t, req.CareSessionGroupIDs.IDs)
}

func TestUUIDListPatch_ExplicitList(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()
	payload := fmt.Sprintf(`{"care_session_group_ids":[%q,%q]}`, id1, id2)

	var req UpdateCareSessionRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.True(t, req.CareSessionGroupIDs.Set)
	assert.Equal(t, []uuid.UUID{id1, id2}, req.CareSessionGroupIDs.IDs)
}

func TestUUIDListPatch_MalformedUUIDRejected(t *testing.T) {
	var req UpdateCareSessionRequest
	err := json.Unmarshal([]byte(`{"care_session_group_ids":["bukan-uuid"]}`), &req)
	assert.Error(t, err)
}

func TestBuildAttendanceCounts_UnmarkedCountedUnknown(t *testing.T) {
	marks := []attendanceModel.CareSessionStaffAttendanceModel{
		{CareSessionStaffAttendanceStatus: attendanceModel.AttendanceStatusPresent},
		{CareSessionStaffAttendanceStatus: attendanceModel.AttendanceStatusPresent},
		{CareSessionStaffAttendanceStatus: attendanceModel.AttendanceStatusAbsent},
		{CareSessionStaffAttendanceStatus: attendanceModel.AttendanceStatusUnknown},
	}

	// 6 staff ditugaskan, 4 mark tersimpan → 2 sisanya UNKNOWN implisit
	c := BuildAttendanceCounts(6, marks)
	assert.Equal(t, 2, c.Present)
	assert.Equal(t, 1, c.Absent)
	assert.Equal(t, 3, c.Unknown)
}
