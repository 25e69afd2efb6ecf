package main

import (
	"log"

	"github.com/engajamento-hub/student-engagement-api/api"
	"github.com/engajamento-hub/student-engagement-api/config"
	"github.com/engajamento-hub/student-engagement-api/services"
)

func main() {
	config.Init()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	sheetsClient, err := services.NewGoogleSheetsClient(&config.AppConfig)
	if err != nil {
		log.Fatalf("Fatal error creating GoogleSheetsClient: %v", err)
	}

	svc := services.NewStudentService(sheetsClient)

	app := api.SetupRouter(svc, &config.AppConfig)

	log.Printf("Starting Fiber server on %s...", config.AppConfig.ListenAddr)
	if err := app.Listen(config.AppConfig.ListenAddr); err != nil {
		log.Fatalf("Fatal error starting Fiber server: %v", err)
	}
}
