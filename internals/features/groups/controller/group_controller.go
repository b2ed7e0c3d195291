// internals/features/groups/controller/group_controller.go
package controller

import (
	"errors"
	"strings"

	"carehub_backend/internals/features/groups/dto"
	"carehub_backend/internals/features/groups/model"
	helper "carehub_backend/internals/helpers"
	"carehub_backend/internals/storerr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db, Validate: validator.New()}
}

/* ===================== LIST ===================== */
// GET /api/a/groups
func (ctrl *GroupController) ListGroups(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "name", "asc", helper.AdminOpts)
	order, err := p.SafeOrderClause(map[string]string{
		"name":       "group_name",
		"created_at": "group_created_at",
	}, "name")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Sort key tidak valid")
	}

	var total int64
	if err := ctrl.DB.Model(&model.GroupModel{}).
		Where("group_site_id = ?", siteID).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung group")
	}

	var rows []model.GroupModel
	if err := ctrl.DB.
		Where("group_site_id = ?", siteID).
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar group")
	}

	out := make([]dto.GroupDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToGroupDTO(m))
	}
	return helper.Success(c, "Daftar group berhasil diambil", fiber.Map{
		"items": out,
		"meta":  helper.BuildMeta(total, p),
	})
}

/* ===================== DETAIL ===================== */
// GET /api/a/groups/:id
func (ctrl *GroupController) GetGroupByID(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID group tidak valid")
	}

	var m model.GroupModel
	if err := ctrl.DB.
		Where("group_id = ? AND group_site_id = ?", groupID, siteID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil group")
	}
	return helper.Success(c, "Detail group berhasil diambil", dto.ToGroupDTO(m))
}

/* ===================== CREATE ===================== */
// POST /api/a/groups
func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validateAgeRange(req.GroupAgeMin, req.GroupAgeMax); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	// Pre-check optimistis nama unik per site (latency optimization — kalau
	// kecolongan race, unique index yang jadi penentu dan tetap di-map ke 409).
	var n int64
	if err := ctrl.DB.Model(&model.GroupModel{}).
		Where("group_site_id = ? AND group_name = ?", siteID, req.GroupName).
		Count(&n).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa nama group")
	}
	if n > 0 {
		return helper.Error(c, fiber.StatusConflict, "Nama group sudah dipakai di site ini")
	}

	m := req.ToModel(siteID)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if errors.Is(storerr.Classify(err), storerr.ErrDuplicate) {
			return helper.Error(c, fiber.StatusConflict, "Nama group sudah dipakai di site ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat group")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Group berhasil dibuat", dto.ToGroupDTO(m))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/groups/:id
func (ctrl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID group tidak valid")
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.GroupModel
	if err := ctrl.DB.
		Where("group_id = ? AND group_site_id = ?", groupID, siteID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil group")
	}

	if req.GroupName != nil {
		m.GroupName = *req.GroupName
	}
	if req.GroupAgeMin != nil {
		m.GroupAgeMin = req.GroupAgeMin
	}
	if req.GroupAgeMax != nil {
		m.GroupAgeMax = req.GroupAgeMax
	}
	// Invariant dicek terhadap state hasil merge, bukan patch saja.
	if err := validateAgeRange(m.GroupAgeMin, m.GroupAgeMax); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		if errors.Is(storerr.Classify(err), storerr.ErrDuplicate) {
			return helper.Error(c, fiber.StatusConflict, "Nama group sudah dipakai di site ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui group")
	}
	return helper.Success(c, "Group berhasil diperbarui", dto.ToGroupDTO(m))
}

/* ===================== DELETE ===================== */
// DELETE /api/a/groups/:id
func (ctrl *GroupController) DeleteGroup(c *fiber.Ctx) error {
	siteID, err := helper.GetSiteIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID group tidak valid")
	}

	res := ctrl.DB.
		Where("group_id = ? AND group_site_id = ?", groupID, siteID).
		Delete(&model.GroupModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus group")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan")
	}
	return helper.Success(c, "Group berhasil dihapus", fiber.Map{"group_id": groupID})
}

func validateAgeRange(min, max *int) error {
	if min != nil && max != nil && *min > *max {
		return fiber.NewError(fiber.StatusBadRequest, "group_age_min tidak boleh lebih besar dari group_age_max")
	}
	return nil
}
