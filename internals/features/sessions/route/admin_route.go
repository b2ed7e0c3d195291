package route

import (
	attendanceController "carehub_backend/internals/features/attendance/controller"
	"carehub_backend/internals/features/sessions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CareSessionAdminRoutes — CRUD sesi + roster/mark kehadiran staff.
// Guard auth + site scope dipasang di group pemanggil (route.SetupRoutes).
func CareSessionAdminRoutes(api fiber.Router, db *gorm.DB) {
	sessionCtrl := controller.NewCareSessionController(db)
	attendanceCtrl := attendanceController.NewStaffAttendanceController(db)

	// 📅 Group: /care-sessions
	cs := api.Group("/care-sessions")
	cs.Get("/", sessionCtrl.ListCareSessions)
	cs.Post("/", sessionCtrl.CreateCareSession)
	cs.Get("/:id", sessionCtrl.GetCareSessionByID)
	cs.Patch("/:id", sessionCtrl.UpdateCareSession)
	cs.Delete("/:id", sessionCtrl.DeleteCareSession)

	// ✅ Kehadiran staff per sesi
	cs.Get("/:id/staff-attendance", attendanceCtrl.GetRoster)
	cs.Patch("/:id/staff-attendance", attendanceCtrl.MarkAttendance)
}
