// internals/features/sessions/controller/care_session_controller.go
package controller

import (
	"time"

	attendanceRepo "carehub_backend/internals/features/attendance/repository"
	entitlementService "carehub_backend/internals/features/entitlements/service"
	"carehub_backend/internals/features/sessions/dto"
	"carehub_backend/internals/features/sessions/repository"
	"carehub_backend/internals/features/sessions/service"
	helper "carehub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCareSessionController(db *gorm.DB) *CareSessionController {
	return &CareSessionController{DB: db, Validate: validator.New()}
}

// service dirakit per request — semua dependency stateless & aman dipakai ulang.
func (ctrl *CareSessionController) svc() *service.CareSessionService {
	return service.NewCareSessionService(
		repository.NewCareSessionRepository(ctrl.DB),
		repository.NewGroupOwnershipReader(ctrl.DB),
		repository.NewSiteGormReader(ctrl.DB),
		entitlementService.NewSessionQuotaGate(ctrl.DB),
		attendanceRepo.NewAttendanceGormRepository(ctrl.DB),
	)
}

/* ===================== LIST ===================== */
// GET /api/a/care-sessions?group_id=&from=&to=
func (ctrl *CareSessionController) ListCareSessions(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}

	var f service.ListFilter
	if raw := c.Query("group_id"); raw != "" {
		gid, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		f.GroupID = &gid
	}
	if f.From, err = parseTimeQuery(c.Query("from")); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "from tidak valid (pakai RFC3339 atau YYYY-MM-DD)")
	}
	if f.To, err = parseTimeQuery(c.Query("to")); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "to tidak valid (pakai RFC3339 atau YYYY-MM-DD)")
	}

	rows, err := ctrl.svc().List(c.UserContext(), siteID, f)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Daftar sesi berhasil diambil", rows)
}

/* ===================== DETAIL ===================== */
// GET /api/a/care-sessions/:id
func (ctrl *CareSessionController) GetCareSessionByID(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	row, err := ctrl.svc().GetByID(c.UserContext(), siteID, sessionID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Detail sesi berhasil diambil", row)
}

/* ===================== CREATE ===================== */
// POST /api/a/care-sessions
func (ctrl *CareSessionController) CreateCareSession(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCareSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.svc().Create(c.UserContext(), siteID, req)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi berhasil dibuat", row)
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/care-sessions/:id
func (ctrl *CareSessionController) UpdateCareSession(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var req dto.UpdateCareSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	row, err := ctrl.svc().Update(c.UserContext(), siteID, sessionID, req)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Sesi berhasil diperbarui", row)
}

/* ===================== DELETE ===================== */
// DELETE /api/a/care-sessions/:id
func (ctrl *CareSessionController) DeleteCareSession(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	if err := ctrl.svc().Delete(c.UserContext(), siteID, sessionID); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Sesi berhasil dihapus", fiber.Map{"care_session_id": sessionID})
}

/* ===================== internals ===================== */

// parseTimeQuery menerima RFC3339 penuh atau tanggal saja.
func parseTimeQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
