package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/engajamento-hub/student-engagement-api/models"
)

// StudentService fetches the raw student base from the spreadsheet source and
// turns it into scored student records. Records are rebuilt on every fetch;
// nothing is cached between requests.
type StudentService struct {
	Reader ValuesReader
}

func NewStudentService(reader ValuesReader) *StudentService {
	return &StudentService{Reader: reader}
}

// FetchStudents retrieves the sheet values and maps them into student
// records. The first row is treated as headers, the rest as data. An empty
// sheet yields an empty collection, not an error.
func (s *StudentService) FetchStudents(ctx context.Context) ([]models.Student, error) {
	values, err := s.Reader.ReadValues(ctx)
	if err != nil {
		return nil, err
	}

	if len(values) == 0 {
		log.Println("No data found in sheet")
		return []models.Student{}, nil
	}

	headers := cellsToStrings(values[0])
	rows := make([][]string, 0, len(values)-1)
	for _, row := range values[1:] {
		rows = append(rows, cellsToStrings(row))
	}

	log.Printf("Processing %d student records", len(rows))
	students := MapRows(headers, rows)
	log.Printf("Successfully processed %d students", len(students))

	return students, nil
}

// FilterStudents narrows a collection the way the dashboard does: a free-text
// term matched against name, CPF and course, an exact course and an exact
// risk level. Empty criteria match everything.
func (s *StudentService) FilterStudents(students []models.Student, search, course, risk string) []models.Student {
	search = strings.ToLower(search)
	filtered := make([]models.Student, 0, len(students))

	for _, student := range students {
		if search != "" {
			matches := strings.Contains(strings.ToLower(student.Name), search) ||
				strings.Contains(student.CPF, search) ||
				strings.Contains(strings.ToLower(student.Course), search)
			if !matches {
				continue
			}
		}
		if course != "" && student.Course != course {
			continue
		}
		if risk != "" && string(student.RiskLevel) != risk {
			continue
		}
		filtered = append(filtered, student)
	}

	return filtered
}

// Stats summarizes a collection for the dashboard cards.
func (s *StudentService) Stats(students []models.Student) models.StudentStats {
	stats := models.StudentStats{TotalStudents: len(students)}

	scoreSum := 0
	for _, student := range students {
		switch student.RiskLevel {
		case models.RiskLow:
			stats.EngagedStudents++
		case models.RiskHigh:
			stats.AtRiskStudents++
		}
		scoreSum += student.RiskScore
	}

	if stats.TotalStudents > 0 {
		stats.AverageRiskScore = int(math.Round(float64(scoreSum) / float64(stats.TotalStudents)))
	}

	return stats
}

// FindByID looks a student up by its sequential id.
func (s *StudentService) FindByID(students []models.Student, id string) (models.Student, bool) {
	for _, student := range students {
		if student.ID == id {
			return student, true
		}
	}
	return models.Student{}, false
}

func cellsToStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		if s, ok := cell.(string); ok {
			out[i] = s
		} else if cell != nil {
			out[i] = fmt.Sprint(cell)
		}
	}
	return out
}
