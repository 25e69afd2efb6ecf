package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/engajamento-hub/student-engagement-api/config"
)

// ValuesReader is the upstream spreadsheet boundary: a single read of the
// configured range, returning the raw 2D cell values.
type ValuesReader interface {
	ReadValues(ctx context.Context) ([][]interface{}, error)
}

// GoogleSheetsClient reads the student base sheet through the Google Sheets
// API. When no credential is configured the client is still constructed, but
// every read reports a configuration error without touching the network.
type GoogleSheetsClient struct {
	sheetsService *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewGoogleSheetsClient builds a read-only Sheets client. Authentication is
// either a static API key (the sheet must be link-readable) or a service
// account credentials file; the API key takes precedence when both are set.
func NewGoogleSheetsClient(cfg *config.Config) (*GoogleSheetsClient, error) {
	client := &GoogleSheetsClient{
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     fmt.Sprintf("'%s'!%s", cfg.SheetName, cfg.SheetRange),
	}

	ctx := context.Background()

	switch {
	case cfg.APIKey != "":
		svc, err := sheets.NewService(ctx, option.WithAPIKey(cfg.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create Google Sheets API client: %w", err)
		}
		client.sheetsService = svc
	case cfg.CredentialsFilePath != "":
		credentialsJSON, err := os.ReadFile(cfg.CredentialsFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("failed to configure JWT from credentials: %w", err)
		}
		svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
		if err != nil {
			return nil, fmt.Errorf("failed to create Google Sheets API client: %w", err)
		}
		client.sheetsService = svc
	default:
		log.Println("Warning: GOOGLE_SHEETS_API_KEY not configured; student fetches will fail until it is set")
	}

	return client, nil
}

// ReadValues performs a single values.get call against the configured range.
// No retry: a non-success upstream status is surfaced as an UpstreamError
// carrying the status code and response body.
func (c *GoogleSheetsClient) ReadValues(ctx context.Context) ([][]interface{}, error) {
	if c.sheetsService == nil {
		return nil, ErrMissingAPIKey
	}

	log.Printf("API Sheets: Reading range '%s' from spreadsheet '%s'...", c.readRange, c.spreadsheetID)
	resp, err := c.sheetsService.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			body := strings.TrimSpace(string(apiErr.Body))
			if body == "" {
				body = apiErr.Message
			}
			log.Printf("Google Sheets API error: %d %s", apiErr.Code, body)
			return nil, &UpstreamError{StatusCode: apiErr.Code, Body: body}
		}
		return nil, fmt.Errorf("failed to read range '%s' from spreadsheet '%s': %w", c.readRange, c.spreadsheetID, err)
	}

	log.Printf("API Sheets: Range '%s' read successfully (%d rows).", c.readRange, len(resp.Values))
	return resp.Values, nil
}
