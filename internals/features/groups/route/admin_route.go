package route

import (
	"carehub_backend/internals/constants"
	"carehub_backend/internals/features/groups/controller"
	authMiddleware "carehub_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GroupAdminRoutes(api fiber.Router, db *gorm.DB) {
	groupCtrl := controller.NewGroupController(db)

	// 👥 Group: /groups — baca bebas untuk semua role site, mutasi hanya admin
	g := api.Group("/groups")
	g.Get("/", groupCtrl.ListGroups)
	g.Get("/:id", groupCtrl.GetGroupByID)

	adminOnly := authMiddleware.RequireSiteRoles("group", constants.SiteRoleAdmin)
	g.Post("/", adminOnly, groupCtrl.CreateGroup)
	g.Patch("/:id", adminOnly, groupCtrl.UpdateGroup)
	g.Delete("/:id", adminOnly, groupCtrl.DeleteGroup)
}
