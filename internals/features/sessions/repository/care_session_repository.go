package repository

import (
	"context"
	"time"

	"carehub_backend/internals/features/sessions/model"
	"carehub_backend/internals/features/sessions/service"
	"carehub_backend/internals/storerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareSessionRepository struct {
	DB *gorm.DB
}

func NewCareSessionRepository(db *gorm.DB) *CareSessionRepository {
	return &CareSessionRepository{DB: db}
}

var _ service.SessionRepository = (*CareSessionRepository)(nil)

/* ===================== overlap ===================== */

// OverlapConditions membangun klausa uji overlap interval INKLUSIF:
//
//	starts_at <= to AND ends_at >= from
//
// Satu bound saja → hanya separuh uji yang dipakai. Boundary yang persis
// bersentuhan tetap match (>=/<=, bukan >/<).
func OverlapConditions(from, to *time.Time) (string, []interface{}) {
	switch {
	case from != nil && to != nil:
		return "care_session_starts_at <= ? AND care_session_ends_at >= ?", []interface{}{*to, *from}
	case to != nil:
		return "care_session_starts_at <= ?", []interface{}{*to}
	case from != nil:
		return "care_session_ends_at >= ?", []interface{}{*from}
	default:
		return "", nil
	}
}

/* ===================== queries ===================== */

func (r *CareSessionRepository) List(ctx context.Context, siteID uuid.UUID, f service.ListFilter) ([]model.CareSessionModel, error) {
	q := r.DB.WithContext(ctx).
		Model(&model.CareSessionModel{}).
		Preload("Groups").
		Where("care_session_site_id = ?", siteID)

	if f.GroupID != nil {
		q = q.Where(
			"care_session_id IN (SELECT care_session_group_session_id FROM care_session_groups WHERE care_session_group_group_id = ?)",
			*f.GroupID,
		)
	}

	if cond, args := OverlapConditions(f.From, f.To); cond != "" {
		q = q.Where(cond, args...)
	}

	var rows []model.CareSessionModel
	if err := q.Order("care_session_starts_at ASC").Find(&rows).Error; err != nil {
		return nil, storerr.Classify(err)
	}
	return rows, nil
}

func (r *CareSessionRepository) GetByID(ctx context.Context, siteID, sessionID uuid.UUID) (*model.CareSessionModel, error) {
	var m model.CareSessionModel
	err := r.DB.WithContext(ctx).
		Preload("Groups").
		Where("care_session_id = ? AND care_session_site_id = ?", sessionID, siteID).
		Take(&m).Error
	if err != nil {
		return nil, storerr.Classify(err)
	}
	return &m, nil
}

// Exists — cek keberadaan sesi scoped ke site, tanpa load row penuh.
func (r *CareSessionRepository) Exists(ctx context.Context, siteID, sessionID uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&model.CareSessionModel{}).
		Where("care_session_id = ? AND care_session_site_id = ?", sessionID, siteID).
		Count(&n).Error
	if err != nil {
		return false, storerr.Classify(err)
	}
	return n > 0, nil
}

func (r *CareSessionRepository) Create(ctx context.Context, m *model.CareSessionModel, groupIDs []uuid.UUID) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return replaceSessionGroups(tx, m.CareSessionID, groupIDs)
	})
	return storerr.Classify(err)
}

func (r *CareSessionRepository) Update(ctx context.Context, m *model.CareSessionModel, groupIDs *[]uuid.UUID) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.CareSessionModel{}).
			Where("care_session_id = ? AND care_session_site_id = ?", m.CareSessionID, m.CareSessionSiteID).
			Updates(map[string]interface{}{
				"care_session_title":     m.CareSessionTitle,
				"care_session_starts_at": m.CareSessionStartsAt,
				"care_session_ends_at":   m.CareSessionEndsAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if groupIDs == nil {
			return nil // asosiasi tidak disentuh
		}
		if err := tx.Where("care_session_group_session_id = ?", m.CareSessionID).
			Delete(&model.CareSessionGroupModel{}).Error; err != nil {
			return err
		}
		return replaceSessionGroups(tx, m.CareSessionID, *groupIDs)
	})
	return storerr.Classify(err)
}

func (r *CareSessionRepository) Delete(ctx context.Context, siteID, sessionID uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Where("care_session_id = ? AND care_session_site_id = ?", sessionID, siteID).
		Delete(&model.CareSessionModel{})
	if res.Error != nil {
		return storerr.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return storerr.ErrNotFound
	}
	return nil
}

func (r *CareSessionRepository) ListAssignments(ctx context.Context, sessionID uuid.UUID) ([]model.CareSessionStaffModel, error) {
	var rows []model.CareSessionStaffModel
	err := r.DB.WithContext(ctx).
		Where("care_session_staff_session_id = ?", sessionID).
		Order("care_session_staff_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storerr.Classify(err)
	}
	return rows, nil
}

func replaceSessionGroups(tx *gorm.DB, sessionID uuid.UUID, groupIDs []uuid.UUID) error {
	if len(groupIDs) == 0 {
		return nil
	}
	links := make([]model.CareSessionGroupModel, 0, len(groupIDs))
	for _, gid := range groupIDs {
		links = append(links, model.CareSessionGroupModel{
			CareSessionGroupSessionID: sessionID,
			CareSessionGroupGroupID:   gid,
		})
	}
	return tx.Create(&links).Error
}
