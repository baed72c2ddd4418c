package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jakendu/tutorbook/handlers"
)

func AvailabilityRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/availability", handlers.ViewAvailability)
	api.Get("/tutors/:tutorId/availability", handlers.GetTutorAvailability)
	api.Post("/tutors/:tutorId/availability", handlers.CreateAvailability)
}
