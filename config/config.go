package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIKey              string
	CredentialsFilePath string
	SpreadsheetID       string
	SheetName           string
	SheetRange          string
	ListenAddr          string
	RequestTimeout      time.Duration
}

var AppConfig = Config{
	// Sheet ID from the dashboard spreadsheet URL.
	SpreadsheetID:  "1GdvByvznwciCpZ1QIqln8SbpopEL-L_ePyLcaTM3SQw",
	SheetName:      "Base de Alunos",
	SheetRange:     "A:M",
	ListenAddr:     ":3000",
	RequestTimeout: 30 * time.Second,
}

func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	} else {
		log.Println("Loaded .env file successfully")
	}

	AppConfig.APIKey = os.Getenv("GOOGLE_SHEETS_API_KEY")
	AppConfig.CredentialsFilePath = os.Getenv("CREDENTIALS_FILE_PATH")

	if v := os.Getenv("SPREADSHEET_ID"); v != "" {
		AppConfig.SpreadsheetID = v
	}
	if v := os.Getenv("SHEET_NAME"); v != "" {
		AppConfig.SheetName = v
	}
	if v := os.Getenv("SHEET_RANGE"); v != "" {
		AppConfig.SheetRange = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		AppConfig.ListenAddr = v
	}
}
