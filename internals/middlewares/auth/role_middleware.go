package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// OnlyRoles validasi role dari claims token (HARUS lewat AuthJWT dulu)
func OnlyRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		log.Printf("[WARN] akses ditolak, role=%s tidak diizinkan", role)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden: insufficient role",
		})
	}
}
