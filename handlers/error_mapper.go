package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jakendu/tutorbook/scheduling"
)

// respondSchedulingError turns a typed core error into the matching HTTP
// response. Anything unrecognized is treated as a storage fault.
func respondSchedulingError(c *fiber.Ctx, err error) error {
	var (
		missing  *scheduling.MissingFieldError
		format   *scheduling.InvalidTimeFormatError
		zone     *scheduling.InvalidTimeZoneError
		rangeErr *scheduling.InvalidRangeError
		conflict *scheduling.ConflictError
		notFound *scheduling.NotFoundError
	)

	switch {
	case errors.As(err, &missing),
		errors.As(err, &format),
		errors.As(err, &zone),
		errors.As(err, &rangeErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":            err.Error(),
			"date":             conflict.Date,
			"conflicting_slot": conflict.Slot,
		})
	case errors.Is(err, scheduling.ErrSlotAlreadyBooked),
		errors.Is(err, scheduling.ErrSlotUnavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("🔥 Scheduling operation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
