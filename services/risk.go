package services

import (
	"math"
	"time"

	"github.com/engajamento-hub/student-engagement-api/models"
	"github.com/engajamento-hub/student-engagement-api/utils"
)

// expectedCompletionMonths is the nominal program length used to judge
// pace of progress. Historical scores depend on this value; do not replace
// it with calendar-accurate month arithmetic.
const expectedCompletionMonths = 24

type RiskAssessment struct {
	EngagementPercentage int
	FinancialStatus      models.FinancialStatus
	RiskScore            int
	RiskLevel            models.RiskLevel
}

// ScoreRisk derives the engagement percentage, financial status and a 0-100
// risk score (higher is better) from a student's raw academic and financial
// fields. now anchors the pace-of-progress calculation.
func ScoreRisk(completedSubjects, totalSubjects, overdueMonths int, startDate string, now time.Time) RiskAssessment {
	if totalSubjects == 0 {
		totalSubjects = 1
	}
	engagementPercentage := int(math.Round(float64(completedSubjects) / float64(totalSubjects) * 100))

	financialStatus := models.FinancialOK
	if overdueMonths > 2 {
		financialStatus = models.FinancialOverdue
	} else if overdueMonths > 0 {
		financialStatus = models.FinancialWarning
	}

	riskScore := 100.0

	// Engagement factor (40 points).
	riskScore -= float64(100-engagementPercentage) * 0.4

	// Financial factor (40 points).
	if overdueMonths > 0 {
		riskScore -= math.Min(float64(overdueMonths)*10, 40)
	}

	// Time factor (20 points): is the student progressing at the expected
	// pace? Students more than 30 points behind lose 20, more than 15
	// behind lose 10.
	monthsSinceStart := utils.MonthsSince(startDate, now)
	expectedProgress := math.Min(float64(monthsSinceStart)/expectedCompletionMonths*100, 100)
	if float64(engagementPercentage) < expectedProgress-30 {
		riskScore -= 20
	} else if float64(engagementPercentage) < expectedProgress-15 {
		riskScore -= 10
	}

	score := int(math.Round(math.Max(0, math.Min(100, riskScore))))

	riskLevel := models.RiskLow
	if score < 60 {
		riskLevel = models.RiskHigh
	} else if score < 80 {
		riskLevel = models.RiskMedium
	}

	return RiskAssessment{
		EngagementPercentage: engagementPercentage,
		FinancialStatus:      financialStatus,
		RiskScore:            score,
		RiskLevel:            riskLevel,
	}
}
