package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/engajamento-hub/student-engagement-api/config"
	"github.com/engajamento-hub/student-engagement-api/services"
)

func CreateStudentStatsHandler(svc *services.StudentService, appConfig *config.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), appConfig.RequestTimeout)
		defer cancel()

		students, err := svc.FetchStudents(ctx)
		if err != nil {
			return respondFetchError(c, err)
		}

		stats := svc.Stats(students)
		log.Printf("Handler: Stats computed over %d students.", stats.TotalStudents)
		return c.JSON(stats)
	}
}
