package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jakendu/tutorbook/handlers"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/bookings", handlers.CreateBooking)
	api.Get("/students/:studentId/bookings", handlers.GetStudentBookings)
	api.Get("/tutors/:tutorId/bookings", handlers.GetTutorBookings)
}
