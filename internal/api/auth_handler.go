package api

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"canteenPreOrder/internal/session"
	"canteenPreOrder/models"
	"canteenPreOrder/repository"
)

// AuthHandler serves registration, login, logout and the current-user
// probe.
type AuthHandler struct {
	users    repository.UserRepositoryI
	sessions *session.Manager
	validate *validator.Validate
}

func NewAuthHandler(users repository.UserRepositoryI, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, validate: validator.New()}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=student staff"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a student or staff account. The response is always
// 200, with success=false and a message on failure.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"success": false, "msg": "Missing fields"})
	}
	if err := h.validate.Struct(&req); err != nil {
		if req.Username == "" || req.Password == "" || req.Role == "" {
			return c.JSON(fiber.Map{"success": false, "msg": "Missing fields"})
		}
		return c.JSON(fiber.Map{"success": false, "msg": "Invalid role"})
	}
	if _, err := h.users.Create(c.Context(), req.Username, req.Password, models.Role(req.Role)); err != nil {
		if !errors.Is(err, repository.ErrUsernameTaken) {
			log.Printf("register err: %v", err)
		}
		return c.JSON(fiber.Map{"success": false, "msg": "User exists or DB error"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Login checks credentials by exact match and sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"success": false})
	}
	if req.Username == "" || req.Password == "" || req.Role == "" {
		return c.JSON(fiber.Map{"success": false})
	}
	u, err := h.users.GetByCredentials(c.Context(), req.Username, req.Password, models.Role(req.Role))
	if err != nil {
		log.Printf("login err: %v", err)
		return c.JSON(fiber.Map{"success": false})
	}
	if u == nil {
		return c.JSON(fiber.Map{"success": false})
	}
	tok, err := h.sessions.IssueUser(u)
	if err != nil {
		log.Printf("issue session err: %v", err)
		return c.JSON(fiber.Map{"success": false})
	}
	setCookie(c, SessionCookie, tok)
	return c.JSON(fiber.Map{"success": true, "user": u})
}

// Logout clears both the session and the admin capability.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearCookie(c, SessionCookie)
	clearCookie(c, AdminCookie)
	return c.JSON(fiber.Map{"ok": true})
}

// Me reports the current user, or null when the cookie is absent, stale,
// or invalid. It never errors: an unreadable session reads as logged out.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	tok := c.Cookies(SessionCookie)
	if tok == "" {
		return c.JSON(fiber.Map{"user": nil})
	}
	p, err := h.sessions.ParseUser(tok)
	if err != nil {
		return c.JSON(fiber.Map{"user": nil})
	}
	u, err := h.users.GetByID(c.Context(), p.UserID)
	if err != nil {
		log.Printf("api/me err: %v", err)
		return c.JSON(fiber.Map{"user": nil})
	}
	if u == nil {
		return c.JSON(fiber.Map{"user": nil})
	}
	return c.JSON(fiber.Map{"user": u})
}

func setCookie(c *fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
