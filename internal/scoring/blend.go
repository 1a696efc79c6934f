package scoring

import (
	"math"

	"github.com/creditbridge/credit-service/internal/models"
)

// Score bounds
const (
	MinScore = 300
	MaxScore = 850
)

// Per-factor weights of the alternative score's additive model
const (
	alternativeBase  = 500.0
	rentWeight       = 80.0
	utilityWeight    = 60.0
	cashFlowWeight   = 70.0
	employmentWeight = 50.0
)

// Blend combines the sub-scores into a single 300-850 hybrid score.
// Bureau credit, when present, carries 40% of the blend (25% for limited
// history); users without usable bureau data are scored fully on
// alternative data and can earn a bonus for strong alternative signals.
func Blend(factors models.ScoreFactors, tc models.TraditionalCredit) models.ScoreResult {
	weights := blendWeights(tc)

	alternativeScore := alternativeBase
	if factors.RentPayments > 0 {
		alternativeScore += float64(factors.RentPayments) / 100 * rentWeight
	}
	if factors.UtilityPayments > 0 {
		alternativeScore += float64(factors.UtilityPayments) / 100 * utilityWeight
	}
	if factors.CashFlow > 0 {
		alternativeScore += float64(factors.CashFlow) / 100 * cashFlowWeight
	}
	if factors.EmploymentHistory > 0 {
		alternativeScore += float64(factors.EmploymentHistory) / 100 * employmentWeight
	}
	alternativeScore = clamp(alternativeScore)

	hybridScore := alternativeScore
	if weights.Traditional > 0 && tc.Score != nil {
		hybridScore = float64(*tc.Score)*weights.Traditional + alternativeScore*weights.Alternative
	}

	strength := float64(factors.RentPayments+factors.UtilityPayments+factors.CashFlow+factors.EmploymentHistory) / 4
	if tc.HasCredit == models.CreditNo || tc.HasCredit == models.CreditLimited {
		switch {
		case strength > 80:
			hybridScore += 20
		case strength > 70:
			hybridScore += 15
		case strength > 60:
			hybridScore += 10
		}
	}

	return models.ScoreResult{
		Score:                   int(math.Round(clamp(hybridScore))),
		Factors:                 factors,
		Weights:                 weights,
		AlternativeScore:        int(math.Round(alternativeScore)),
		AlternativeDataStrength: int(math.Round(strength)),
	}
}

func blendWeights(tc models.TraditionalCredit) models.Weights {
	switch {
	case tc.HasCredit == models.CreditYes && tc.Score != nil:
		return models.Weights{Traditional: 0.4, Alternative: 0.6}
	case tc.HasCredit == models.CreditLimited && tc.Score != nil:
		return models.Weights{Traditional: 0.25, Alternative: 0.75}
	default:
		return models.Weights{Traditional: 0, Alternative: 1.0}
	}
}

func clamp(score float64) float64 {
	return math.Min(MaxScore, math.Max(MinScore, score))
}
