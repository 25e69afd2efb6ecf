package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/engajamento-hub/student-engagement-api/config"
	"github.com/engajamento-hub/student-engagement-api/services"
)

func CreateGetStudentHandler(svc *services.StudentService, appConfig *config.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Params("id")

		ctx, cancel := context.WithTimeout(c.Context(), appConfig.RequestTimeout)
		defer cancel()

		students, err := svc.FetchStudents(ctx)
		if err != nil {
			return respondFetchError(c, err)
		}

		student, found := svc.FindByID(students, id)
		if !found {
			log.Printf("Handler: Student '%s' not found.", id)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Student not found",
			})
		}

		return c.JSON(student)
	}
}
