package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jakendu/tutorbook/database"
	"github.com/jakendu/tutorbook/models"
)

var validate = validator.New()

type RegisterTutorRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	TimeZone string `json:"time_zone,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

func RegisterTutor(c *fiber.Ctx) error {
	var req RegisterTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	timeZone := req.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}
	if _, err := time.LoadLocation(timeZone); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid timezone: " + timeZone})
	}

	tutor := models.Tutor{
		FullName: req.FullName,
		Email:    req.Email,
		TimeZone: timeZone,
	}
	if req.Bio != "" {
		tutor.Bio = &req.Bio
	}

	if err := database.DB.Create(&tutor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register tutor"})
	}
	return c.Status(fiber.StatusCreated).JSON(tutor)
}

type RegisterStudentRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	TimeZone string `json:"time_zone,omitempty"`
}

func RegisterStudent(c *fiber.Ctx) error {
	var req RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	timeZone := req.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}
	if _, err := time.LoadLocation(timeZone); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid timezone: " + timeZone})
	}

	student := models.Student{
		FullName: req.FullName,
		Email:    req.Email,
		TimeZone: timeZone,
	}
	if err := database.DB.Create(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register student"})
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}
