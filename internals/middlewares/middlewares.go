package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares — pasang middleware global dengan urutan yang benar:
// recovery paling luar, lalu CORS, lalu rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
