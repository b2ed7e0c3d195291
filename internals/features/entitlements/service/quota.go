package service

import (
	"context"
	"errors"

	"carehub_backend/internals/apperr"
	orgModel "carehub_backend/internals/features/orgs/model"
	sessionModel "carehub_backend/internals/features/sessions/model"
	sessionService "carehub_backend/internals/features/sessions/service"
	"carehub_backend/internals/storerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionQuotaGate — implementasi EntitlementGate: tolak create sesi kalau
// jumlah sesi site sudah mencapai hard cap (site_session_cap, NULL = bebas).
// Perhitungan billing yang sebenarnya ada di luar core ini; session store
// hanya melihat lolos/tolak.
type SessionQuotaGate struct {
	DB *gorm.DB
}

func NewSessionQuotaGate(db *gorm.DB) *SessionQuotaGate { return &SessionQuotaGate{DB: db} }

var _ sessionService.EntitlementGate = (*SessionQuotaGate)(nil)

func (g *SessionQuotaGate) EnsureSessionCapacity(ctx context.Context, siteID uuid.UUID) error {
	var site orgModel.SiteModel
	err := g.DB.WithContext(ctx).
		Select("site_session_cap").
		Where("site_id = ?", siteID).
		Take(&site).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Site tidak ditemukan")
		}
		return apperr.Internal(storerr.Classify(err))
	}
	if site.SiteSessionCap == nil {
		return nil
	}

	var n int64
	if err := g.DB.WithContext(ctx).
		Model(&sessionModel.CareSessionModel{}).
		Where("care_session_site_id = ?", siteID).
		Count(&n).Error; err != nil {
		return apperr.Internal(storerr.Classify(err))
	}
	if n >= int64(*site.SiteSessionCap) {
		return apperr.Forbidden("Kuota sesi site sudah mencapai batas")
	}
	return nil
}
