package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jakendu/tutorbook/handlers"
)

func DirectoryRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/tutors", handlers.RegisterTutor)
	api.Post("/students", handlers.RegisterStudent)
}
