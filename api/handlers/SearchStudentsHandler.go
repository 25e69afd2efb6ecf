package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	requests "github.com/engajamento-hub/student-engagement-api/api/requests"
	"github.com/engajamento-hub/student-engagement-api/config"
	"github.com/engajamento-hub/student-engagement-api/services"
)

func CreateSearchStudentsHandler(svc *services.StudentService, appConfig *config.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		params := new(requests.SearchStudentsRequest)
		if err := c.Bind().Query(params); err != nil {
			log.Printf("Handler: Error parsing query params: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Invalid query params",
				"details": err.Error(),
			})
		}

		ctx, cancel := context.WithTimeout(c.Context(), appConfig.RequestTimeout)
		defer cancel()

		students, err := svc.FetchStudents(ctx)
		if err != nil {
			return respondFetchError(c, err)
		}

		filtered := svc.FilterStudents(students, params.Search, params.Course, params.Risk)
		log.Printf("Handler: Search matched %d of %d students.", len(filtered), len(students))
		return c.JSON(fiber.Map{"students": filtered})
	}
}
