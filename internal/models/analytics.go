package models

// HistoricalPoint is one month of the synthetic score trend
type HistoricalPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Score int    `json:"score"`
	Month string `json:"month"` // e.g. "Jan 2026"
}

// Analytics is the full per-user analytics snapshot
type Analytics struct {
	CurrentScore   ScoreResult       `json:"currentScore"`
	HistoricalData []HistoricalPoint `json:"historicalData"`
	Analysis       AnalysisResult    `json:"analysis"`
	LoanOffers     []LoanOffer       `json:"loanOffers"`
	GeneratedAt    string            `json:"generatedAt"`
}

// SystemStats summarizes the user base for the nightly snapshot
type SystemStats struct {
	TotalUsers   int    `json:"totalUsers"`
	AverageScore int    `json:"averageScore"`
	ActiveUsers  int    `json:"activeUsers"`
	DataPoints   int    `json:"dataPoints"`
	CapturedAt   string `json:"capturedAt"`
}
