package repository

import (
	"context"

	groupModel "carehub_backend/internals/features/groups/model"
	orgModel "carehub_backend/internals/features/orgs/model"
	"carehub_backend/internals/features/sessions/service"
	"carehub_backend/internals/storerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupOwnershipReader — implementasi service.GroupReader di atas tabel groups.
type GroupOwnershipReader struct {
	DB *gorm.DB
}

func NewGroupOwnershipReader(db *gorm.DB) *GroupOwnershipReader {
	return &GroupOwnershipReader{DB: db}
}

var _ service.GroupReader = (*GroupOwnershipReader)(nil)

func (r *GroupOwnershipReader) CountOwned(ctx context.Context, siteID uuid.UUID, groupIDs []uuid.UUID) (int64, error) {
	if len(groupIDs) == 0 {
		return 0, nil
	}
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&groupModel.GroupModel{}).
		Where("group_site_id = ? AND group_id IN ?", siteID, groupIDs).
		Count(&n).Error
	if err != nil {
		return 0, storerr.Classify(err)
	}
	return n, nil
}

// SiteGormReader — implementasi service.SiteReader di atas tabel sites.
type SiteGormReader struct {
	DB *gorm.DB
}

func NewSiteGormReader(db *gorm.DB) *SiteGormReader {
	return &SiteGormReader{DB: db}
}

var _ service.SiteReader = (*SiteGormReader)(nil)

func (r *SiteGormReader) Exists(ctx context.Context, siteID uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&orgModel.SiteModel{}).
		Where("site_id = ?", siteID).
		Count(&n).Error
	if err != nil {
		return false, storerr.Classify(err)
	}
	return n > 0, nil
}
