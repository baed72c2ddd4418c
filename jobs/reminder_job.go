package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/jakendu/tutorbook/database"
	"github.com/jakendu/tutorbook/models"
	"github.com/jakendu/tutorbook/notifications"
	"github.com/jakendu/tutorbook/timetypes"
)

// SendSessionReminders emails both parties of every confirmed booking that
// starts in roughly one hour. The session instant is rebuilt from the stored
// date and wall-clock times in the booking's own timezone, so tutors in
// different zones get reminders at the right moment.
func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	// A zone ahead of or behind the server can put the local date on either
	// side of midnight, so fetch yesterday through tomorrow.
	today := timetypes.Today(now)
	window := []timetypes.DateOnly{today.AddDays(-1), today, today.AddDays(1)}

	var bookings []models.Booking
	err := database.DB.
		Preload("Student").
		Preload("Tutor").
		Where("status = ? AND date IN ?", "confirmed", window).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	for _, booking := range bookings {
		loc, err := time.LoadLocation(booking.TimeZone)
		if err != nil {
			log.Printf("Booking %s has unresolvable timezone %q, skipping reminder", booking.ID, booking.TimeZone)
			continue
		}
		start := booking.Date.At(booking.StartTime, loc)
		if start.Before(lowerBound) || start.After(upperBound) {
			continue
		}

		log.Printf("Sending reminder for booking ID: %s", booking.ID)

		emailSubject := "Reminder: Your Session Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Session Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your tutoring session starts at %s (%s). Reference: %s.</p>",
			booking.StartTime, booking.TimeZone, booking.Reference,
		)

		go notifications.SendEmail(booking.Student.FullName, booking.Student.Email, emailSubject, emailBody)
		go notifications.SendEmail(booking.Tutor.FullName, booking.Tutor.Email, emailSubject, emailBody)
	}
}
