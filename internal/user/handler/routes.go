package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *UserHandler) {
	api := app.Group("/api/v1")
	api.Post("/register", h.Register)
	api.Post("/login", h.Login)

	// Authenticated routes. /me must be mounted before /:id.
	users := api.Group("/users", h.RequireAuth())
	users.Get("/", h.List)
	users.Get("/me", h.Me)
	users.Get("/:id", h.GetByID)
	users.Put("/:id", h.Update)
	users.Delete("/:id", h.Delete)
}
