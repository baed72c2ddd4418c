package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jakendu/tutorbook/handlers"
)

func NotificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/notifications", handlers.SendNotification)
	api.Get("/notifications/:userId", handlers.GetNotifications)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/:userId", websocket.New(handlers.ServeWs))
}
