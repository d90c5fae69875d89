package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"orderdesk/internal/services"
)

// AdminRequired is a Fiber middleware that only lets requests carrying a
// valid admin session token through.
func AdminRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		if role, _ := claims["role"].(string); role != "admin" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}

		c.Locals("role", claims["role"])
		return c.Next()
	}
}
