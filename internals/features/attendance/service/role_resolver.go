package service

import (
	"context"

	"carehub_backend/internals/constants"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

/* =====================
   Ports — tiga sumber role yang hidup berdampingan
===================== */

// SiteRoleSource — site_memberships (baru). found=false kalau tidak ada row.
type SiteRoleSource interface {
	SiteRole(ctx context.Context, userID, siteID uuid.UUID) (role string, found bool, err error)
}

// OrgRoleSource — org_memberships (baru).
type OrgRoleSource interface {
	OrgRole(ctx context.Context, userID, orgID uuid.UUID) (role string, found bool, err error)
}

// LegacyRoleSource — user_site_roles (legacy, pra-migrasi).
type LegacyRoleSource interface {
	LegacyRole(ctx context.Context, userID, siteID uuid.UUID) (role string, found bool, err error)
}

// SiteOrgResolver — site → org pemiliknya. found=false kalau site tidak ada.
type SiteOrgResolver interface {
	OrgIDOf(ctx context.Context, siteID uuid.UUID) (orgID uuid.UUID, found bool, err error)
}

/* =====================
   Resolver
===================== */

// RoleResolver memutuskan boleh-tidaknya user menandai kehadiran di sebuah site.
// Model UNION-of-grants: satu sumber saja yang memberi grant sudah cukup;
// role non-granting di satu sumber (mis. VIEWER) TIDAK memblokir grant dari
// sumber lain. Jangan "dirapikan" jadi satu tabel — perilaku observable berubah.
type RoleResolver struct {
	siteRoles   SiteRoleSource
	orgRoles    OrgRoleSource
	legacyRoles LegacyRoleSource
	orgs        SiteOrgResolver
}

func NewRoleResolver(
	siteRoles SiteRoleSource,
	orgRoles OrgRoleSource,
	legacyRoles LegacyRoleSource,
	orgs SiteOrgResolver,
) *RoleResolver {
	return &RoleResolver{
		siteRoles:   siteRoles,
		orgRoles:    orgRoles,
		legacyRoles: legacyRoles,
		orgs:        orgs,
	}
}

func (r *RoleResolver) CanMarkAttendance(ctx context.Context, userID, siteID uuid.UUID) (bool, error) {
	// 1) Resolve org pemilik. Site tidak ada → fail closed.
	orgID, found, err := r.orgs.OrgIDOf(ctx, siteID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	// 2-4) Tiga lookup independen, fan-out paralel (pure reads, tanpa ordering).
	var (
		siteGrant   bool
		orgGrant    bool
		legacyGrant bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		role, ok, err := r.siteRoles.SiteRole(gctx, userID, siteID)
		if err != nil {
			return err
		}
		// VIEWER tidak memberi grant, tapi juga tidak menekan grant sumber lain.
		siteGrant = ok && constants.HasRole(role, constants.SiteRolesCanMark)
		return nil
	})
	g.Go(func() error {
		role, ok, err := r.orgRoles.OrgRole(gctx, userID, orgID)
		if err != nil {
			return err
		}
		orgGrant = ok && constants.HasRole(role, constants.OrgRolesCanMark)
		return nil
	})
	g.Go(func() error {
		role, ok, err := r.legacyRoles.LegacyRole(gctx, userID, siteID)
		if err != nil {
			return err
		}
		legacyGrant = ok && constants.HasRole(role, constants.LegacyRolesCanMark)
		return nil
	})
	if err := g.Wait(); err != nil {
		return false, err
	}

	return siteGrant || orgGrant || legacyGrant, nil
}
