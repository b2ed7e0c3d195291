// internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"carehub_backend/internals/features/attendance/dto"
	"carehub_backend/internals/features/attendance/repository"
	"carehub_backend/internals/features/attendance/service"
	membershipRepo "carehub_backend/internals/features/memberships/repository"
	sessionRepo "carehub_backend/internals/features/sessions/repository"
	helper "carehub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffAttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStaffAttendanceController(db *gorm.DB) *StaffAttendanceController {
	return &StaffAttendanceController{DB: db, Validate: validator.New()}
}

func (ctrl *StaffAttendanceController) rosterBuilder() *service.RosterBuilder {
	return service.NewRosterBuilder(
		sessionRepo.NewCareSessionRepository(ctrl.DB),
		repository.NewAttendanceGormRepository(ctrl.DB),
		repository.NewStaffDirectoryGorm(ctrl.DB),
	)
}

func (ctrl *StaffAttendanceController) attendanceService() *service.AttendanceService {
	resolver := service.NewRoleResolver(
		membershipRepo.NewSiteMembershipSource(ctrl.DB),
		membershipRepo.NewOrgMembershipSource(ctrl.DB),
		membershipRepo.NewLegacyRoleGormSource(ctrl.DB),
		membershipRepo.NewSiteOrgGormResolver(ctrl.DB),
	)
	return service.NewAttendanceService(
		resolver,
		sessionRepo.NewCareSessionRepository(ctrl.DB),
		repository.NewAttendanceGormRepository(ctrl.DB),
		ctrl.rosterBuilder(),
	)
}

/* ===================== ROSTER ===================== */
// GET /api/a/care-sessions/:id/staff-attendance
func (ctrl *StaffAttendanceController) GetRoster(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	roster, err := ctrl.rosterBuilder().GetRoster(c.UserContext(), siteID, sessionID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Roster kehadiran berhasil diambil", roster)
}

/* ===================== MARK ===================== */
// PATCH /api/a/care-sessions/:id/staff-attendance
func (ctrl *StaffAttendanceController) MarkAttendance(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}
	actingUserID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	roster, err := ctrl.attendanceService().Mark(c.UserContext(), siteID, sessionID, actingUserID, req)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Kehadiran berhasil ditandai", roster)
}
