package api

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"canteenPreOrder/internal/dates"
	"canteenPreOrder/models"
	"canteenPreOrder/repository"
)

// SelectionHandler serves the logged-in selection operations. All three
// endpoints share the date rule: empty means tomorrow, an explicit date
// must parse.
type SelectionHandler struct {
	selections repository.SelectionRepositoryI
}

func NewSelectionHandler(selections repository.SelectionRepositoryI) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

type reconcileRequest struct {
	MenuItemID int64  `json:"menu_item_id"`
	Date       string `json:"date"`
	// Quantity and Delta are coerced, never rejected: missing or
	// unparseable input counts as 0.
	Quantity any `json:"quantity"`
	Delta    any `json:"delta"`
}

// Select sets the quantity for (caller, item, date) to an absolute value.
func (h *SelectionHandler) Select(c *fiber.Ctx) error {
	return h.reconcile(c, func(req *reconcileRequest) int { return coerceInt(req.Quantity) }, h.selections.SetQuantity)
}

// Change adjusts the quantity for (caller, item, date) by a signed delta.
func (h *SelectionHandler) Change(c *fiber.Ctx) error {
	return h.reconcile(c, func(req *reconcileRequest) int { return coerceInt(req.Delta) }, h.selections.ChangeQuantity)
}

func (h *SelectionHandler) reconcile(c *fiber.Ctx, amount func(*reconcileRequest) int, op func(ctx context.Context, userID, menuItemID int64, date string, n int) (int, error)) error {
	p := principalFrom(c)
	if p == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
	}
	var req reconcileRequest
	if err := c.BodyParser(&req); err != nil || req.MenuItemID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "menu_item_id required"})
	}
	date, err := dates.DefaultOrParse(req.Date, time.Now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}
	qty, err := op(c.Context(), p.UserID, req.MenuItemID, date, amount(&req))
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown menu_item_id"})
		}
		log.Printf("reconcile err: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "db"})
	}
	return c.JSON(fiber.Map{"ok": true, "quantity": qty})
}

// MySelections lists the caller's selections for a date.
func (h *SelectionHandler) MySelections(c *fiber.Ctx) error {
	p := principalFrom(c)
	if p == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
	}
	date, err := dates.DefaultOrParse(c.Query("date"), time.Now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}
	list, err := h.selections.ListForUser(c.Context(), p.UserID, date)
	if err != nil {
		log.Printf("my-selections err: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "db"})
	}
	if list == nil {
		list = []models.SelectionDetail{}
	}
	return c.JSON(fiber.Map{"selections": list})
}

// coerceInt turns loosely-typed JSON input into an integer, treating
// anything unusable as 0.
func coerceInt(v any) int {
	switch x := v.(type) {
	case float64:
		return int(x)
	case int:
		return x
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
