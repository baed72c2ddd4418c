package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/database"
	"github.com/jakendu/tutorbook/models"
	"github.com/jakendu/tutorbook/scheduling"
)

type CreateAvailabilityRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	TimeZone    string `json:"time_zone" validate:"required"`
	Recurrence  string `json:"recurrence,omitempty" validate:"omitempty,oneof=none daily weekly"`
	Occurrences int    `json:"occurrences,omitempty" validate:"omitempty,min=1"`
}

func CreateAvailability(c *fiber.Ctx) error {
	tutorID, err := uuid.Parse(c.Params("tutorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tutor id"})
	}

	var req CreateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	store := database.NewStore(database.DB)
	tutor, err := store.FindTutor(c.Context(), tutorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if tutor == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
	}

	planner := scheduling.NewAvailabilityPlanner(store)
	slots, err := planner.Plan(c.Context(), scheduling.PlanRequest{
		TutorID:     tutorID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		TimeZone:    req.TimeZone,
		Recurrence:  req.Recurrence,
		Occurrences: req.Occurrences,
	})
	if err != nil {
		return respondSchedulingError(c, err)
	}

	if err := store.SaveAvailabilityBatch(c.Context(), slots); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save availability"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Availabilities added successfully",
		"slots":   slots,
	})
}

// ViewAvailability lists every unbooked slot with its times re-expressed in
// the viewer's timezone, anchored to today's date.
func ViewAvailability(c *fiber.Ctx) error {
	viewerZone := c.Query("timezone", "UTC")

	var slots []models.AvailabilitySlot
	if err := database.DB.
		Preload("Tutor").
		Where("is_booked = ?", false).
		Order("date asc, start_time asc").
		Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch availability"})
	}

	converter := scheduling.NewConverter()
	converted := make([]fiber.Map, 0, len(slots))
	for _, slot := range slots {
		start, end, err := converter.Convert(slot.StartTime.String(), slot.EndTime.String(), slot.TimeZone, viewerZone)
		if err != nil {
			return respondSchedulingError(c, err)
		}
		converted = append(converted, fiber.Map{
			"slot":                 slot,
			"start_time_converted": start,
			"end_time_converted":   end,
			"converted_timezone":   viewerZone,
		})
	}

	return c.JSON(fiber.Map{
		"timezone":       viewerZone,
		"availabilities": converted,
	})
}

func GetTutorAvailability(c *fiber.Ctx) error {
	tutorID, err := uuid.Parse(c.Params("tutorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tutor id"})
	}

	store := database.NewStore(database.DB)
	tutor, err := store.FindTutor(c.Context(), tutorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if tutor == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
	}

	var slots []models.AvailabilitySlot
	database.DB.
		Where("tutor_id = ?", tutorID).
		Order("date asc, start_time asc").
		Find(&slots)

	return c.JSON(fiber.Map{"tutor": tutor, "availabilities": slots})
}
