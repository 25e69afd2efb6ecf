package models

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type FinancialStatus string

const (
	FinancialOK      FinancialStatus = "ok"
	FinancialWarning FinancialStatus = "warning"
	FinancialOverdue FinancialStatus = "overdue"
)

type Student struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	CPF                  string          `json:"cpf"`
	Course               string          `json:"course"`
	StartDate            string          `json:"startDate"`
	CompletedSubjects    int             `json:"completedSubjects"`
	TotalSubjects        int             `json:"totalSubjects"`
	LastPayment          string          `json:"lastPayment"`
	LastPaymentValue     float64         `json:"lastPaymentValue"`
	OverdueMonths        int             `json:"overdueMonths"`
	RiskScore            int             `json:"riskScore"`
	RiskLevel            RiskLevel       `json:"riskLevel"`
	EngagementPercentage int             `json:"engagementPercentage"`
	FinancialStatus      FinancialStatus `json:"financialStatus"`
	Email                string          `json:"email,omitempty"`
	Phone                string          `json:"phone,omitempty"`
}
