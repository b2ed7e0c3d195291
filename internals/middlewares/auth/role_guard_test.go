package auth

import (
	"net/http/httptest"
	"testing"

	"carehub_backend/internals/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedApp(tokenRole string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if tokenRole != "" {
			c.Locals("site_role", tokenRole)
		}
		return c.Next()
	})
	app.Get("/x", RequireSiteRoles("group", allowed...), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRequireSiteRoles_AllowsMatchingRole(t *testing.T) {
	app := guardedApp(constants.SiteRoleAdmin, constants.SiteRoleAdmin)
	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireSiteRoles_DeniesOtherRole(t *testing.T) {
	app := guardedApp(constants.SiteRoleViewer, constants.SiteRoleAdmin)
	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireSiteRoles_DeniesMissingClaim(t *testing.T) {
	app := guardedApp("", constants.SiteRoleAdmin, constants.SiteRoleStaff)
	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
