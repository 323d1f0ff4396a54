package api

import (
	"context"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"canteenPreOrder/internal/config"
	"canteenPreOrder/internal/session"
	"canteenPreOrder/repository"
)

// NewApp builds the fiber application with all routes registered.
// Exposed separately from Start so tests can drive it via app.Test.
func NewApp(cfg *config.Config, users repository.UserRepositoryI, menu repository.MenuRepositoryI, selections repository.SelectionRepositoryI) *fiber.App {
	sessions := session.NewManager(cfg.CookieSecret)

	authH := NewAuthHandler(users, sessions)
	menuH := NewMenuHandler(menu)
	selH := NewSelectionHandler(selections)
	adminH := NewAdminHandler(selections, sessions, cfg.AdminPassword)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(logger.New())

	app.Post("/register", authH.Register)
	app.Post("/login", authH.Login)
	app.Post("/logout", authH.Logout)

	app.Get("/api/me", authH.Me)
	app.Get("/api/menu", menuH.Menu)

	loggedIn := RequireLogin(sessions)
	app.Post("/api/select", loggedIn, selH.Select)
	app.Post("/api/change", loggedIn, selH.Change)
	app.Get("/api/my-selections", loggedIn, selH.MySelections)

	app.Post("/api/admin/login", adminH.Login)
	admin := RequireAdmin(sessions)
	app.Get("/api/admin/totals", admin, adminH.Totals)
	app.Get("/api/admin/userwise", admin, adminH.Userwise)
	app.Get("/api/admin/export-totals", admin, adminH.ExportTotals)

	// Static assets (menu images, SPA bundle) with an index fallback for
	// client-side routes.
	if cfg.PublicDir != "" {
		app.Static("/", cfg.PublicDir)
		index := filepath.Join(cfg.PublicDir, "index.html")
		app.Get("/*", func(c *fiber.Ctx) error {
			if err := c.SendFile(index); err != nil {
				return fiber.ErrNotFound
			}
			return nil
		})
	}

	return app
}

// Start serves the application on cfg.HTTPAddr and returns a shutdown
// function honoring its context deadline.
func Start(cfg *config.Config, users repository.UserRepositoryI, menu repository.MenuRepositoryI, selections repository.SelectionRepositoryI) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}
	app := NewApp(cfg, users, menu, selections)

	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Printf("http listen: %v", err)
		}
	}()

	return func(ctx context.Context) error {
		return app.ShutdownWithContext(ctx)
	}, nil
}
