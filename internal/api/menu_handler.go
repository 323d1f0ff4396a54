package api

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"canteenPreOrder/repository"
)

// MenuHandler serves the seeded menu.
type MenuHandler struct {
	menu repository.MenuRepositoryI
}

func NewMenuHandler(menu repository.MenuRepositoryI) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// Menu returns all items grouped by meal.
func (h *MenuHandler) Menu(c *fiber.Ctx) error {
	grouped, err := h.menu.GroupByMeal(c.Context())
	if err != nil {
		log.Printf("api/menu err: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "db"})
	}
	return c.JSON(fiber.Map{"menu": grouped})
}
