package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"github.com/engajamento-hub/student-engagement-api/api/handlers"
	"github.com/engajamento-hub/student-engagement-api/config"
	"github.com/engajamento-hub/student-engagement-api/services"
)

func SetupRouter(svc *services.StudentService, appConfig *config.Config) *fiber.App {
	r := fiber.New()

	// The dashboard frontend is served from a different origin, so every
	// response (errors included) carries permissive CORS headers and
	// preflight requests are answered.
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
	}))

	api := r.Group("/api/v1")

	api.Get("/ping", handlers.HandlePing)
	api.Get("/students", handlers.CreateFetchStudentsHandler(svc, appConfig))
	api.Get("/students/search", handlers.CreateSearchStudentsHandler(svc, appConfig))
	api.Get("/students/stats", handlers.CreateStudentStatsHandler(svc, appConfig))
	api.Get("/students/:id", handlers.CreateGetStudentHandler(svc, appConfig))

	return r
}
