package models

// Impact levels attached to analysis findings
const (
	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

// Risk profiles
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Finding is one strength or weakness entry
type Finding struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Impact      string  `json:"impact"`
}

// LoanEligibility gates each product category on a score threshold
type LoanEligibility struct {
	CreditCards   bool `json:"creditCards"`
	PersonalLoans bool `json:"personalLoans"`
	AutoLoans     bool `json:"autoLoans"`
	Mortgages     bool `json:"mortgages"`
}

// AnalysisResult is the full strengths/weaknesses report
type AnalysisResult struct {
	Strengths       []Finding       `json:"strengths"`
	Weaknesses      []Finding       `json:"weaknesses"`
	Recommendations []string        `json:"recommendations"`
	RiskProfile     string          `json:"riskProfile"`
	LoanEligibility LoanEligibility `json:"loanEligibility"`
	OverallStrength int             `json:"overallStrength"`
}

// AnalyticsSummary is the condensed analysis stored on the user profile
type AnalyticsSummary struct {
	Strengths       []string        `json:"strengths"`
	Weaknesses      []string        `json:"weaknesses"`
	Recommendations []string        `json:"recommendations"`
	RiskProfile     string          `json:"riskProfile"`
	LoanEligibility LoanEligibility `json:"loanEligibility"`
}
