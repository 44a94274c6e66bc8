// Package router wires handlers to routes and holds the HTTP middleware that
// is not auth-specific (CORS, request logging).
package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dheurymy/api-task-manager/internal/tasks"
	"github.com/dheurymy/api-task-manager/internal/users"
)

type Router struct {
	UserHandler *users.Handler
	TaskHandler *tasks.Handler
	AuthMW      fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hey this is my API running 🥳")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	app.Post("/register", r.UserHandler.Register)
	app.Post("/login", r.UserHandler.Login)
	app.Post("/logout", r.UserHandler.Logout)

	app.Get("/tasks", r.AuthMW, r.TaskHandler.List)
	app.Post("/addtask", r.AuthMW, r.TaskHandler.Create)
	app.Patch("/:id", r.AuthMW, r.TaskHandler.Update)
	app.Delete("/:id", r.AuthMW, r.TaskHandler.Delete)
}
