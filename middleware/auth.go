package middleware

import (
	"github.com/gofiber/fiber/v2"

	"muhibacademy/config"
	"muhibacademy/utils"
)

// AdminRequired guards every admin route except the login page and login
// submit. Requests without a valid session cookie are redirected to the login
// entry point instead of reaching the handler.
func AdminRequired(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(utils.AdminTokenCookie)
		if token == "" {
			return c.Redirect("/admin")
		}

		claims, err := utils.ParseAdminToken(token, cfg)
		if err != nil {
			return c.Redirect("/admin")
		}

		c.Locals("admin_id", claims.AdminID)
		c.Locals("admin_username", claims.Username)
		return c.Next()
	}
}
