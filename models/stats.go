package models

// StudentStats aggregates a fetched collection for the dashboard summary
// cards: engaged students are those at low risk, at-risk students those at
// high risk.
type StudentStats struct {
	TotalStudents    int `json:"totalStudents"`
	EngagedStudents  int `json:"engagedStudents"`
	AtRiskStudents   int `json:"atRiskStudents"`
	AverageRiskScore int `json:"averageRiskScore"`
}
