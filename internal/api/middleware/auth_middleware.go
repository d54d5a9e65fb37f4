package middleware

import (
	"crypto/subtle"
	"strings"

	config "github.com/Rakifeller/idea-approval/configs"
	"github.com/Rakifeller/idea-approval/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthMiddleware struct {
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// AuthMiddleware admits requests carrying either the shared admin password or
// a session token minted by POST /login as a bearer token.
func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if m.cfg.AdminPassword != "" &&
			subtle.ConstantTimeCompare([]byte(token), []byte(m.cfg.AdminPassword)) == 1 {
			return c.Next()
		}

		if _, err := utils.ValidateToken(m.cfg.SecretKey, token); err == nil {
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
}
