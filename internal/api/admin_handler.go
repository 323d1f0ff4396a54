package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"canteenPreOrder/internal/dates"
	"canteenPreOrder/internal/session"
	"canteenPreOrder/models"
	"canteenPreOrder/repository"
)

// AdminHandler serves the admin capability and the date-scoped reports.
// Admin access is a shared secret, not a user role: the correct password
// grants the capability to whatever session presents it.
type AdminHandler struct {
	selections repository.SelectionRepositoryI
	sessions   *session.Manager
	password   string
}

func NewAdminHandler(selections repository.SelectionRepositoryI, sessions *session.Manager, password string) *AdminHandler {
	return &AdminHandler{selections: selections, sessions: sessions, password: password}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

// Login grants the admin capability when the shared password matches.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil || req.Password != h.password {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"ok": false})
	}
	tok, err := h.sessions.IssueAdmin()
	if err != nil {
		log.Printf("issue admin token err: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}
	setCookie(c, AdminCookie, tok)
	return c.JSON(fiber.Map{"ok": true})
}

// Totals reports every menu item with its summed quantity for a date.
func (h *AdminHandler) Totals(c *fiber.Ctx) error {
	date, err := dates.DefaultOrParse(c.Query("date"), time.Now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}
	totals, err := h.selections.TotalsByItem(c.Context(), date)
	if err != nil {
		log.Printf("admin/totals err: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "db"})
	}
	if totals == nil {
		totals = []models.ItemTotal{}
	}
	return c.JSON(fiber.Map{"date": date, "totals": totals})
}

// Userwise reports every selection for a date joined with user and item.
func (h *AdminHandler) Userwise(c *fiber.Ctx) error {
	date, err := dates.DefaultOrParse(c.Query("date"), time.Now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}
	rows, err := h.selections.Userwise(c.Context(), date)
	if err != nil {
		log.Printf("admin/userwise err: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "db"})
	}
	if rows == nil {
		rows = []models.UserwiseRow{}
	}
	return c.JSON(fiber.Map{"date": date, "rows": rows})
}

// ExportTotals streams the totals report as a CSV attachment with the
// header row item,meal,total.
func (h *AdminHandler) ExportTotals(c *fiber.Ctx) error {
	date, err := dates.DefaultOrParse(c.Query("date"), time.Now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}
	totals, err := h.selections.TotalsByItem(c.Context(), date)
	if err != nil {
		log.Printf("admin/export err: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("err")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"item", "meal", "total"})
	for _, t := range totals {
		_ = w.Write([]string{t.Name, string(t.Meal), strconv.Itoa(t.Total)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("admin/export csv err: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("err")
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "totals_"+date+".csv"))
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(buf.Bytes())
}
