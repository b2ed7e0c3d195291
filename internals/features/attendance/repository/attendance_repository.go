package repository

import (
	"context"

	"carehub_backend/internals/features/attendance/model"
	"carehub_backend/internals/features/attendance/service"
	userModel "carehub_backend/internals/features/users/model"
	"carehub_backend/internals/storerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceGormRepository struct {
	DB *gorm.DB
}

func NewAttendanceGormRepository(db *gorm.DB) *AttendanceGormRepository {
	return &AttendanceGormRepository{DB: db}
}

var _ service.AttendanceRepository = (*AttendanceGormRepository)(nil)

func (r *AttendanceGormRepository) ListBySession(ctx context.Context, siteID, sessionID uuid.UUID) ([]model.CareSessionStaffAttendanceModel, error) {
	var rows []model.CareSessionStaffAttendanceModel
	err := r.DB.WithContext(ctx).
		Where("care_session_staff_attendance_site_id = ? AND care_session_staff_attendance_session_id = ?", siteID, sessionID).
		Find(&rows).Error
	if err != nil {
		return nil, storerr.Classify(err)
	}
	return rows, nil
}

// Upsert — ON CONFLICT di unique (site, session, staff): insert pertama
// membuat row, mark berikutnya update in place. Tidak pernah ada duplikat.
func (r *AttendanceGormRepository) Upsert(ctx context.Context, m *model.CareSessionStaffAttendanceModel) error {
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "care_session_staff_attendance_site_id"},
				{Name: "care_session_staff_attendance_session_id"},
				{Name: "care_session_staff_attendance_staff_user_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"care_session_staff_attendance_status",
				"care_session_staff_attendance_marked_by_user_id",
				"care_session_staff_attendance_marked_at",
				"care_session_staff_attendance_updated_at",
			}),
		}).
		Create(m).Error
	return storerr.Classify(err)
}

// StaffDirectoryGorm — lookup data user untuk label nama roster.
type StaffDirectoryGorm struct {
	DB *gorm.DB
}

func NewStaffDirectoryGorm(db *gorm.DB) *StaffDirectoryGorm {
	return &StaffDirectoryGorm{DB: db}
}

var _ service.StaffDirectory = (*StaffDirectoryGorm)(nil)

func (r *StaffDirectoryGorm) ListByIDs(ctx context.Context, userIDs []uuid.UUID) ([]userModel.UserModel, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var rows []userModel.UserModel
	err := r.DB.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&rows).Error
	if err != nil {
		return nil, storerr.Classify(err)
	}
	return rows, nil
}
