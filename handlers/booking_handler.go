package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/database"
	"github.com/jakendu/tutorbook/models"
	"github.com/jakendu/tutorbook/notifications"
	"github.com/jakendu/tutorbook/scheduling"
	"github.com/jakendu/tutorbook/websocket"
)

type CreateBookingRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	TutorID   string `json:"tutor_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	TimeZone  string `json:"time_zone" validate:"required"`
}

func CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	studentID, _ := uuid.Parse(req.StudentID)
	tutorID, _ := uuid.Parse(req.TutorID)

	store := database.NewStore(database.DB)
	validator := scheduling.NewBookingValidator(store, store, store)
	booking, err := validator.Book(c.Context(), scheduling.BookRequest{
		StudentID: studentID,
		TutorID:   tutorID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		TimeZone:  req.TimeZone,
	})
	if err != nil {
		return respondSchedulingError(c, err)
	}

	go notifyBookingConfirmed(booking)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking confirmed!",
		"booking": booking,
	})
}

func notifyBookingConfirmed(booking *models.Booking) {
	var student models.Student
	var tutor models.Tutor
	if err := database.DB.First(&student, "id = ?", booking.StudentID).Error; err != nil {
		log.Printf("Notification skipped, student lookup failed: %v", err)
		return
	}
	if err := database.DB.First(&tutor, "id = ?", booking.TutorID).Error; err != nil {
		log.Printf("Notification skipped, tutor lookup failed: %v", err)
		return
	}

	when := fmt.Sprintf("%s %s - %s (%s)", booking.Date, booking.StartTime, booking.EndTime, booking.TimeZone)
	go notifications.SendEmail(student.FullName, student.Email,
		"Your Booking is Confirmed!",
		fmt.Sprintf("<h1>Booking Confirmed</h1><p>Your session with %s on %s is booked. Reference: %s.</p>", tutor.FullName, when, booking.Reference))
	go notifications.SendEmail(tutor.FullName, tutor.Email,
		"You Have a New Booking!",
		fmt.Sprintf("<h1>New Booking</h1><p>%s booked your %s slot. Reference: %s.</p>", student.FullName, when, booking.Reference))

	for _, n := range []models.Notification{
		{RecipientID: booking.StudentID, Message: "Booking confirmed for " + when},
		{RecipientID: booking.TutorID, Message: "New booking for " + when},
	} {
		record := n
		if err := database.DB.Create(&record).Error; err != nil {
			log.Printf("Failed to record notification: %v", err)
			continue
		}
		websocket.Push(&record)
	}
}

func GetStudentBookings(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	store := database.NewStore(database.DB)
	student, err := store.FindStudent(c.Context(), studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if student == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var bookings []models.Booking
	database.DB.
		Preload("Tutor").
		Where("student_id = ?", studentID).
		Order("date desc, start_time desc").
		Find(&bookings)

	return c.JSON(fiber.Map{"student": student, "bookings": bookings})
}

func GetTutorBookings(c *fiber.Ctx) error {
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

	var bookings []models.Booking
	database.DB.
		Preload("Student").
		Where("tutor_id = ?", tutorID).
		Order("date desc, start_time desc").
		Find(&bookings)

	return c.JSON(fiber.Map{"tutor": tutor, "bookings": bookings})
}
