package scoring

import (
	"math"
	"time"

	"github.com/creditbridge/credit-service/internal/models"
)

// legacyBase and the per-factor multipliers of the stateless calculator's
// additive model. This is the simpler formula exposed by the public
// calculator endpoint; the blended model in blend.go drives the persisted
// analytics.
const (
	legacyBase             = 600.0
	legacyRentWeight       = 0.30
	legacyUtilityWeight    = 0.15
	legacyCashFlowWeight   = 0.25
	legacyEmploymentWeight = 0.20
)

// Calculate runs the stateless additive model over a raw financial payload.
// Sections that are absent simply contribute nothing.
func Calculate(fd models.FinancialData, tc models.TraditionalCredit, now time.Time) models.ScoreCalculation {
	score := legacyBase
	var factors models.ScoreFactors

	if len(fd.Housing.RentPaymentHistory) > 0 {
		onTime := 0
		for _, p := range fd.Housing.RentPaymentHistory {
			if p.Status == models.PaymentOnTime {
				onTime++
			}
		}
		rate := float64(onTime) / float64(len(fd.Housing.RentPaymentHistory))
		factors.RentPayments = int(math.Round(rate * 100))
		score += rate * 30
	}

	if len(fd.Utilities) > 0 {
		totalOnTime := 0
		totalPayments := 0
		for _, u := range fd.Utilities {
			totalPayments += len(u.PaymentHistory)
			for _, p := range u.PaymentHistory {
				if p.Status == models.PaymentOnTime {
					totalOnTime++
				}
			}
		}
		if totalPayments > 0 {
			rate := float64(totalOnTime) / float64(totalPayments)
			factors.UtilityPayments = int(math.Round(rate * 100))
			score += rate * 15
		}
	}

	if fd.Banking.MonthlyIncome > 0 && fd.Banking.MonthlyExpenses > 0 {
		factors.CashFlow = CashFlowScore(fd.Banking)
		score += float64(factors.CashFlow) * 0.25
	}

	if fd.Employment.StartDate != "" {
		factors.EmploymentHistory = EmploymentScore(fd.Employment, now)
		score += float64(factors.EmploymentHistory) * 0.2
	}

	final := int(math.Round(clamp(score)))

	return models.ScoreCalculation{
		Score:   final,
		Factors: factors,
		Weights: blendWeights(tc),
		Breakdown: models.ScoreBreakdown{
			BaseScore:              legacyBase,
			RentContribution:       float64(factors.RentPayments) * legacyRentWeight,
			UtilityContribution:    float64(factors.UtilityPayments) * legacyUtilityWeight,
			CashFlowContribution:   float64(factors.CashFlow) * legacyCashFlowWeight,
			EmploymentContribution: float64(factors.EmploymentHistory) * legacyEmploymentWeight,
		},
	}
}
