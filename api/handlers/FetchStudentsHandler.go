package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/engajamento-hub/student-engagement-api/config"
	"github.com/engajamento-hub/student-engagement-api/services"
)

func CreateFetchStudentsHandler(svc *services.StudentService, appConfig *config.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), appConfig.RequestTimeout)
		defer cancel()

		log.Println("Handler: Fetching student collection from Google Sheets...")
		students, err := svc.FetchStudents(ctx)
		if err != nil {
			return respondFetchError(c, err)
		}

		log.Printf("Handler: Returning %d students.", len(students))
		return c.JSON(fiber.Map{"students": students})
	}
}

// respondFetchError maps the fetch error taxonomy onto JSON responses:
// missing credential and unexpected failures report 500, upstream failures
// echo the upstream status and body.
func respondFetchError(c fiber.Ctx, err error) error {
	var upstreamErr *services.UpstreamError

	switch {
	case errors.Is(err, services.ErrMissingAPIKey):
		log.Println("Handler: GOOGLE_SHEETS_API_KEY not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "API key not configured",
		})
	case errors.As(err, &upstreamErr):
		log.Printf("Handler: Google Sheets API error: %d %s", upstreamErr.StatusCode, upstreamErr.Body)
		return c.Status(upstreamErr.StatusCode).JSON(fiber.Map{
			"error":   "Failed to fetch from Google Sheets",
			"details": upstreamErr.Body,
		})
	default:
		log.Printf("Handler: Error fetching students: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
