package handlers

import (
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/database"
	"github.com/jakendu/tutorbook/models"
	"github.com/jakendu/tutorbook/websocket"
)

type SendNotificationRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Message     string `json:"message" validate:"required"`
}

func SendNotification(c *fiber.Ctx) error {
	var req SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	recipientID, _ := uuid.Parse(req.RecipientID)

	notification := models.Notification{
		RecipientID: recipientID,
		Message:     req.Message,
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record notification"})
	}
	websocket.Push(&notification)

	return c.JSON(fiber.Map{"message": "Notification sent successfully"})
}

func GetNotifications(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var list []models.Notification
	database.DB.
		Where("recipient_id = ?", userID).
		Order("created_at desc").
		Find(&list)

	return c.JSON(list)
}

func ServeWs(conn *websocketcontrib.Conn) {
	userID, err := uuid.Parse(conn.Params("userId"))
	if err != nil {
		conn.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: conn}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
