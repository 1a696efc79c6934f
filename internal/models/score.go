package models

// ScoreFactors are the 0-100 sub-scores feeding the hybrid score.
// CashFlow is intentionally not clamped at source and may fall outside
// [0,100] for unusual balance-to-income ratios.
type ScoreFactors struct {
	RentPayments      int `json:"rentPayments"`
	UtilityPayments   int `json:"utilityPayments"`
	CashFlow          int `json:"cashFlow"`
	EmploymentHistory int `json:"employmentHistory"`
	TraditionalCredit int `json:"traditionalCredit"`
}

// Weights is the traditional/alternative blend. The two always sum to 1.0.
type Weights struct {
	Traditional float64 `json:"traditional"`
	Alternative float64 `json:"alternative"`
}

// ScoreResult is the blended score with its breakdown
type ScoreResult struct {
	Score                   int          `json:"score"`
	Factors                 ScoreFactors `json:"factors"`
	Weights                 Weights      `json:"weights"`
	AlternativeScore        int          `json:"alternativeScore"`
	AlternativeDataStrength int          `json:"alternativeDataStrength"`
}

// CreditHistoryEntry is one point of a user's score history
type CreditHistoryEntry struct {
	Date    string       `json:"date"` // YYYY-MM-DD
	Score   int          `json:"score"`
	Factors ScoreFactors `json:"factors"`
}

// ScoreBreakdown itemizes the stateless calculator's additive model
type ScoreBreakdown struct {
	BaseScore              float64 `json:"baseScore"`
	RentContribution       float64 `json:"rentContribution"`
	UtilityContribution    float64 `json:"utilityContribution"`
	CashFlowContribution   float64 `json:"cashFlowContribution"`
	EmploymentContribution float64 `json:"employmentContribution"`
}

// ScoreCalculation is the response of the stateless calculator endpoint
type ScoreCalculation struct {
	Score     int            `json:"score"`
	Factors   ScoreFactors   `json:"factors"`
	Weights   Weights        `json:"weights"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}
