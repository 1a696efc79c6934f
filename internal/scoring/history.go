package scoring

import (
	"math"
	"math/rand"
	"time"

	"github.com/creditbridge/credit-service/internal/models"
)

const (
	historyMonths   = 12
	historyBaseline = 580.0
	historyJitter   = 20.0 // uniform noise amplitude, +/-10
)

// GenerateHistory produces a synthetic 12-point monthly trend interpolating
// linearly from the fixed baseline to the current score, with per-point
// jitter drawn from rng. Demo data for charting, not a true history.
func GenerateHistory(score int, now time.Time, rng *rand.Rand) []models.HistoricalPoint {
	points := make([]models.HistoricalPoint, 0, historyMonths)
	for i := historyMonths - 1; i >= 0; i-- {
		date := now.AddDate(0, -i, 0)
		progress := float64(historyMonths-i) / historyMonths
		monthScore := historyBaseline + (float64(score)-historyBaseline)*progress + (rng.Float64()-0.5)*historyJitter
		points = append(points, models.HistoricalPoint{
			Date:  date.Format("2006-01-02"),
			Score: int(clamp(math.Round(monthScore))),
			Month: date.Format("Jan 2006"),
		})
	}
	return points
}

// GenerateSeedHistory backfills a plausible 12-month history for a brand-new
// profile that has no recorded scores yet, trending up to the current score
// with randomized factors.
func GenerateSeedHistory(score int, now time.Time, rng *rand.Rand) []models.CreditHistoryEntry {
	entries := make([]models.CreditHistoryEntry, 0, historyMonths)
	for i := historyMonths - 1; i >= 0; i-- {
		date := now.AddDate(0, -i, 0)
		monthScore := math.Max(MinScore, float64(score)-float64(i)*5+rng.Float64()*20-10)
		entries = append(entries, models.CreditHistoryEntry{
			Date:  date.Format("2006-01-02"),
			Score: int(clamp(math.Round(monthScore))),
			Factors: models.ScoreFactors{
				RentPayments:      int(math.Round(rng.Float64()*20 + 70)),
				UtilityPayments:   int(math.Round(rng.Float64()*15 + 70)),
				CashFlow:          int(math.Round(rng.Float64()*25 + 60)),
				EmploymentHistory: int(math.Round(rng.Float64()*10 + 80)),
			},
		})
	}
	return entries
}
