package auth

import (
	"github.com/gofiber/fiber/v2"

	"carehub_backend/internals/constants"
)

// RequireSiteRoles — guard route level berbasis klaim site_role di token.
// Cek cepat dan kasar untuk surface admin (tanpa DB); otorisasi yang
// bersumber tiga tabel membership tetap jalan di role resolver.
func RequireSiteRoles(feature string, allowed ...string) fiber.Handler {
	msg := constants.RoleErrorStaff(feature)
	if len(allowed) == 1 && allowed[0] == constants.SiteRoleAdmin {
		msg = constants.RoleErrorAdmin(feature)
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("site_role").(string)
		if !constants.HasRole(role, allowed) {
			return fiber.NewError(fiber.StatusForbidden, msg)
		}
		return c.Next()
	}
}
