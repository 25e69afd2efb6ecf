package services

import (
	"strconv"
	"time"

	"github.com/engajamento-hub/student-engagement-api/models"
	"github.com/engajamento-hub/student-engagement-api/utils"
)

// Column labels as they appear in the "Base de Alunos" sheet header row.
// Mapping is by header name, not position.
const (
	colName              = "Nome do Aluno"
	colCPF               = "CPF"
	colCourse            = "Curso"
	colStartDate         = "Data de Início"
	colCompletedSubjects = "Disciplinas Concluídas"
	colTotalSubjects     = "Total de Disciplinas"
	colLastPayment       = "Último Pagamento"
	colLastPaymentValue  = "Último valor pago"
	colOverdueMonths     = "Meses Vencidos"
	colEmail             = "E-mail"
	colPhone             = "Telefone"
)

// MapRows turns a sheet header row plus data rows into student records, one
// per row in row order. Rows are never rejected: missing cells read as empty
// strings and unparseable numbers fall back to defaults.
func MapRows(headers []string, rows [][]string) []models.Student {
	now := time.Now()
	students := make([]models.Student, 0, len(rows))

	for i, row := range rows {
		rowData := make(map[string]string, len(headers))
		for j, header := range headers {
			if j < len(row) {
				rowData[header] = row[j]
			} else {
				rowData[header] = ""
			}
		}

		completedSubjects := parseIntOrDefault(rowData[colCompletedSubjects], 0)
		totalSubjects := parseIntOrDefault(rowData[colTotalSubjects], 1)
		if totalSubjects == 0 {
			totalSubjects = 1
		}
		overdueMonths := parseIntOrDefault(rowData[colOverdueMonths], 0)

		startDate := utils.NormalizeDate(rowData[colStartDate])
		assessment := ScoreRisk(completedSubjects, totalSubjects, overdueMonths, startDate, now)

		students = append(students, models.Student{
			ID:                   strconv.Itoa(i + 1),
			Name:                 rowData[colName],
			CPF:                  rowData[colCPF],
			Course:               rowData[colCourse],
			StartDate:            startDate,
			CompletedSubjects:    completedSubjects,
			TotalSubjects:        totalSubjects,
			LastPayment:          utils.NormalizeDate(rowData[colLastPayment]),
			LastPaymentValue:     parseFloatOrDefault(rowData[colLastPaymentValue], 0),
			OverdueMonths:        overdueMonths,
			RiskScore:            assessment.RiskScore,
			RiskLevel:            assessment.RiskLevel,
			EngagementPercentage: assessment.EngagementPercentage,
			FinancialStatus:      assessment.FinancialStatus,
			Email:                rowData[colEmail],
			Phone:                rowData[colPhone],
		})
	}

	return students
}

func parseIntOrDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseFloatOrDefault(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
