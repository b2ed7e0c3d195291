package repository

import (
	"context"
	"errors"

	attendanceService "carehub_backend/internals/features/attendance/service"
	"carehub_backend/internals/features/memberships/model"
	orgModel "carehub_backend/internals/features/orgs/model"
	"carehub_backend/internals/storerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =====================================================
   Tiga sumber role (pure reads). Masing-masing berdiri
   sendiri; resolver yang meng-union hasilnya.
===================================================== */

// SiteMembershipSource — site_memberships (baru).
type SiteMembershipSource struct {
	DB *gorm.DB
}

func NewSiteMembershipSource(db *gorm.DB) *SiteMembershipSource { return &SiteMembershipSource{DB: db} }

var _ attendanceService.SiteRoleSource = (*SiteMembershipSource)(nil)

func (r *SiteMembershipSource) SiteRole(ctx context.Context, userID, siteID uuid.UUID) (string, bool, error) {
	var m model.SiteMembershipModel
	err := r.DB.WithContext(ctx).
		Select("site_membership_role").
		Where("site_membership_user_id = ? AND site_membership_site_id = ?", userID, siteID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, storerr.Classify(err)
	}
	return m.SiteMembershipRole, true, nil
}

// OrgMembershipSource — org_memberships (baru).
type OrgMembershipSource struct {
	DB *gorm.DB
}

func NewOrgMembershipSource(db *gorm.DB) *OrgMembershipSource { return &OrgMembershipSource{DB: db} }

var _ attendanceService.OrgRoleSource = (*OrgMembershipSource)(nil)

func (r *OrgMembershipSource) OrgRole(ctx context.Context, userID, orgID uuid.UUID) (string, bool, error) {
	var m model.OrgMembershipModel
	err := r.DB.WithContext(ctx).
		Select("org_membership_role").
		Where("org_membership_user_id = ? AND org_membership_org_id = ?", userID, orgID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, storerr.Classify(err)
	}
	return m.OrgMembershipRole, true, nil
}

// LegacyRoleGormSource — user_site_roles (legacy). Masih dibaca selama tenant
// lama belum dimigrasi.
type LegacyRoleGormSource struct {
	DB *gorm.DB
}

func NewLegacyRoleGormSource(db *gorm.DB) *LegacyRoleGormSource { return &LegacyRoleGormSource{DB: db} }

var _ attendanceService.LegacyRoleSource = (*LegacyRoleGormSource)(nil)

func (r *LegacyRoleGormSource) LegacyRole(ctx context.Context, userID, siteID uuid.UUID) (string, bool, error) {
	var m model.UserSiteRoleModel
	err := r.DB.WithContext(ctx).
		Select("user_site_role_role").
		Where("user_site_role_user_id = ? AND user_site_role_site_id = ?", userID, siteID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, storerr.Classify(err)
	}
	return m.UserSiteRoleRole, true, nil
}

// SiteOrgGormResolver — site → org pemiliknya (untuk step 1 resolver).
type SiteOrgGormResolver struct {
	DB *gorm.DB
}

func NewSiteOrgGormResolver(db *gorm.DB) *SiteOrgGormResolver { return &SiteOrgGormResolver{DB: db} }

var _ attendanceService.SiteOrgResolver = (*SiteOrgGormResolver)(nil)

func (r *SiteOrgGormResolver) OrgIDOf(ctx context.Context, siteID uuid.UUID) (uuid.UUID, bool, error) {
	var m orgModel.SiteModel
	err := r.DB.WithContext(ctx).
		Select("site_org_id").
		Where("site_id = ?", siteID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, storerr.Classify(err)
	}
	return m.SiteOrgID, true, nil
}
