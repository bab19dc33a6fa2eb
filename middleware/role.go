package middleware

import (
	"shikkha/database"
	"shikkha/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that checks the caller's database
// role against the allowed set. The role claim in the token is not
// trusted on its own; blocked or deleted accounts are always rejected.
func RequireRole(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if user.IsBlocked {
			return JsonResponse(c, fiber.StatusForbidden, false, "Your account is blocked!", nil)
		}

		for _, role := range allowed {
			if user.Role == role {
				c.Locals("currentUser", &user)
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}
