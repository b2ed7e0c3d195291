package service

import (
	"context"
	"errors"
	"testing"

	"carehub_backend/internals/constants"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ===================== stub sumber role ===================== */

type stubSiteRoles struct {
	role  string
	found bool
	err   error
}

func (s stubSiteRoles) SiteRole(context.Context, uuid.UUID, uuid.UUID) (string, bool, error) {
	return s.role, s.found, s.err
}

type stubOrgRoles struct {
	role  string
	found bool
	err   error
}

func (s stubOrgRoles) OrgRole(context.Context, uuid.UUID, uuid.UUID) (string, bool, error) {
	return s.role, s.found, s.err
}

type stubLegacyRoles struct {
	role  string
	found bool
	err   error
}

func (s stubLegacyRoles) LegacyRole(context.Context, uuid.UUID, uuid.UUID) (string, bool, error) {
	return s.role, s.found, s.err
}

type stubSiteOrg struct {
	orgID uuid.UUID
	found bool
	err   error
}

func (s stubSiteOrg) OrgIDOf(context.Context, uuid.UUID) (uuid.UUID, bool, error) {
	return s.orgID, s.found, s.err
}

func resolverWith(site stubSiteRoles, org stubOrgRoles, legacy stubLegacyRoles) *RoleResolver {
	return NewRoleResolver(site, org, legacy, stubSiteOrg{orgID: uuid.New(), found: true})
}

/* ===================== union matrix ===================== */

func TestCanMark_UnionOfGrants(t *testing.T) {
	cases := []struct {
		name   string
		site   stubSiteRoles
		org    stubOrgRoles
		legacy stubLegacyRoles
		want   bool
	}{
		{"tanpa membership sama sekali", stubSiteRoles{}, stubOrgRoles{}, stubLegacyRoles{}, false},
		{"site admin saja", stubSiteRoles{role: constants.SiteRoleAdmin, found: true}, stubOrgRoles{}, stubLegacyRoles{}, true},
		{"site staff saja", stubSiteRoles{role: constants.SiteRoleStaff, found: true}, stubOrgRoles{}, stubLegacyRoles{}, true},
		{"site viewer saja", stubSiteRoles{role: constants.SiteRoleViewer, found: true}, stubOrgRoles{}, stubLegacyRoles{}, false},
		{"org admin saja", stubSiteRoles{}, stubOrgRoles{role: constants.OrgRoleAdmin, found: true}, stubLegacyRoles{}, true},
		{"org staff saja", stubSiteRoles{}, stubOrgRoles{role: constants.OrgRoleStaff, found: true}, stubLegacyRoles{}, false},
		{"legacy teacher saja", stubSiteRoles{}, stubOrgRoles{}, stubLegacyRoles{role: constants.LegacyRoleTeacher, found: true}, true},
		{"legacy coordinator saja", stubSiteRoles{}, stubOrgRoles{}, stubLegacyRoles{role: constants.LegacyRoleCoordinator, found: true}, true},
		{"legacy member saja", stubSiteRoles{}, stubOrgRoles{}, stubLegacyRoles{role: constants.LegacyRoleMember, found: true}, false},
		// VIEWER di site TIDAK menekan grant dari sumber lain
		{"site viewer + org admin", stubSiteRoles{role: constants.SiteRoleViewer, found: true}, stubOrgRoles{role: constants.OrgRoleAdmin, found: true}, stubLegacyRoles{}, true},
		{"site viewer + legacy admin", stubSiteRoles{role: constants.SiteRoleViewer, found: true}, stubOrgRoles{}, stubLegacyRoles{role: constants.LegacyRoleAdmin, found: true}, true},
		{"ketiganya memberi grant", stubSiteRoles{role: constants.SiteRoleAdmin, found: true}, stubOrgRoles{role: constants.OrgRoleAdmin, found: true}, stubLegacyRoles{role: constants.LegacyRoleAdmin, found: true}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := resolverWith(tc.site, tc.org, tc.legacy)
			got, err := r.CanMarkAttendance(context.Background(), uuid.New(), uuid.New())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

/* ===================== fail closed & propagasi ===================== */

func TestCanMark_SiteWithoutOrgFailsClosed(t *testing.T) {
	// site tidak resolve ke org → deny, meski site membership memberi grant
	r := NewRoleResolver(
		stubSiteRoles{role: constants.SiteRoleAdmin, found: true},
		stubOrgRoles{},
		stubLegacyRoles{},
		stubSiteOrg{found: false},
	)
	got, err := r.CanMarkAttendance(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCanMark_OrgResolveErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	r := NewRoleResolver(stubSiteRoles{}, stubOrgRoles{}, stubLegacyRoles{}, stubSiteOrg{err: boom})

	got, err := r.CanMarkAttendance(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, boom)
	assert.False(t, got)
}

func TestCanMark_LookupErrorPropagates(t *testing.T) {
	boom := errors.New("timeout")
	// error di satu sumber menggagalkan keputusan, bukan diam-diam deny/grant
	r := resolverWith(
		stubSiteRoles{role: constants.SiteRoleAdmin, found: true},
		stubOrgRoles{err: boom},
		stubLegacyRoles{},
	)
	got, err := r.CanMarkAttendance(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, boom)
	assert.False(t, got)
}
