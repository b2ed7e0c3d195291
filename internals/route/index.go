// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	groupRoute "carehub_backend/internals/features/groups/route"
	sessionRoute "carehub_backend/internals/features/sessions/route"
	authMiddleware "carehub_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	app.Get("/api/public/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uptime": time.Since(startTime).String()})
	})

	// ===================== ADMIN/STAFF (per site) =====================
	// Auth JWT + scope site dari token. Keputusan tulis kehadiran tetap
	// di role resolver (DB), bukan di guard route.
	log.Println("[INFO] Setting up ADMIN group (Auth + site scope)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
	)

	log.Println("[INFO] Setting up CareSessionRoutes...")
	sessionRoute.CareSessionAdminRoutes(admin, db)

	log.Println("[INFO] Setting up GroupRoutes...")
	groupRoute.GroupAdminRoutes(admin, db)
}
