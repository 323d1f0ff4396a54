package api

import (
	"github.com/gofiber/fiber/v2"

	"canteenPreOrder/internal/session"
)

const (
	// SessionCookie carries the user session token.
	SessionCookie = "session"
	// AdminCookie carries the admin capability token. It is independent
	// of SessionCookie: knowing the admin password grants it to any
	// session, logged in or not.
	AdminCookie = "admin"

	localsPrincipal = "principal"
)

// RequireLogin parses the session cookie and stores the Principal in the
// request locals. Any failure reads as "not logged in"; the caller gets a
// uniform 401 regardless of cause.
func RequireLogin(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := c.Cookies(SessionCookie)
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		p, err := sessions.ParseUser(tok)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		c.Locals(localsPrincipal, p)
		return c.Next()
	}
}

// RequireAdmin checks the admin capability cookie.
func RequireAdmin(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := c.Cookies(AdminCookie)
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "admin required"})
		}
		if err := sessions.ParseAdmin(tok); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "admin required"})
		}
		return c.Next()
	}
}

func principalFrom(c *fiber.Ctx) *session.Principal {
	p, _ := c.Locals(localsPrincipal).(*session.Principal)
	return p
}
