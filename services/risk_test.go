package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/engajamento-hub/student-engagement-api/models"
)

var scoreNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// freshStart yields zero elapsed months, so the pace-of-progress factor
// never fires.
const freshStart = "2024-06-15"

// staleStart is far enough in the past that expected progress is capped
// at 100.
const staleStart = "2022-04-01"

func TestScoreRiskEngagementPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"eighty percent", 8, 10, 80},
		{"rounds to nearest", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"zero total treated as one", 5, 0, 500},
		{"exceeds one hundred unclamped", 12, 10, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreRisk(tt.completed, tt.total, 0, freshStart, scoreNow)
			assert.Equal(t, tt.want, got.EngagementPercentage)
		})
	}
}

func TestScoreRiskFinancialStatus(t *testing.T) {
	tests := []struct {
		overdueMonths int
		want          models.FinancialStatus
	}{
		{0, models.FinancialOK},
		{1, models.FinancialWarning},
		{2, models.FinancialWarning},
		{3, models.FinancialOverdue},
		{12, models.FinancialOverdue},
	}

	for _, tt := range tests {
		got := ScoreRisk(10, 10, tt.overdueMonths, freshStart, scoreNow)
		assert.Equal(t, tt.want, got.FinancialStatus, "overdueMonths=%d", tt.overdueMonths)
	}
}

func TestScoreRiskLevelBoundaries(t *testing.T) {
	// With a fresh start date the score is
	// 100 - (100-engagement)*0.4 - min(overdue*10, 40).
	tests := []struct {
		name      string
		completed int
		overdue   int
		wantScore int
		wantLevel models.RiskLevel
	}{
		{"score 100", 100, 0, 100, models.RiskLow},
		{"score 80 is low", 50, 0, 80, models.RiskLow},
		{"score 79 is medium", 48, 0, 79, models.RiskMedium},
		{"score 60 is medium", 0, 0, 60, models.RiskMedium},
		{"score 59 is high", 48, 2, 59, models.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreRisk(tt.completed, 100, tt.overdue, freshStart, scoreNow)
			assert.Equal(t, tt.wantScore, got.RiskScore)
			assert.Equal(t, tt.wantLevel, got.RiskLevel)
		})
	}
}

func TestScoreRiskFinancialPenaltyCapped(t *testing.T) {
	capped := ScoreRisk(10, 10, 4, freshStart, scoreNow)
	extreme := ScoreRisk(10, 10, 1000, freshStart, scoreNow)
	assert.Equal(t, 60, capped.RiskScore)
	assert.Equal(t, capped.RiskScore, extreme.RiskScore)
}

func TestScoreRiskClampedToRange(t *testing.T) {
	worst := ScoreRisk(0, 10, 1000, staleStart, scoreNow)
	assert.Equal(t, 0, worst.RiskScore)
	assert.Equal(t, models.RiskHigh, worst.RiskLevel)

	best := ScoreRisk(15, 10, 0, freshStart, scoreNow)
	assert.Equal(t, 100, best.RiskScore)
	assert.Equal(t, models.RiskLow, best.RiskLevel)
}

func TestScoreRiskProgressPacePenalty(t *testing.T) {
	// staleStart puts expected progress at 100, so the deficit tiers are
	// driven by engagement alone.
	tests := []struct {
		name      string
		completed int
		wantScore int
	}{
		{"on pace, no penalty", 90, 96},
		{"moderate deficit loses ten", 80, 82},
		{"large deficit loses twenty", 60, 64},
		{"boundary deficit of fifteen keeps full score", 85, 94},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreRisk(tt.completed, 100, 0, staleStart, scoreNow)
			assert.Equal(t, tt.wantScore, got.RiskScore)
		})
	}
}
