package scoring

import (
	"testing"

	"github.com/creditbridge/credit-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateEmptyPayload(t *testing.T) {
	result := Calculate(models.FinancialData{}, models.TraditionalCredit{}, testNow)

	assert.Equal(t, 600, result.Score)
	assert.Equal(t, models.ScoreFactors{}, result.Factors)
	assert.Equal(t, 600.0, result.Breakdown.BaseScore)
	assert.Equal(t, 1.0, result.Weights.Alternative)
}

func TestCalculateFullPayload(t *testing.T) {
	fd := models.FinancialData{
		Employment: models.Employment{
			AnnualSalary: 50000,
			StartDate:    "2023-06-01",
		},
		Housing: models.Housing{
			HousingType:        models.HousingRent,
			RentPaymentHistory: payments(9, 1, 0),
		},
		Utilities: []models.UtilityAccount{
			{Provider: "City Electric", Type: "electric", PaymentHistory: payments(4, 0, 0)},
		},
		Banking: models.Banking{
			MonthlyIncome:   5000,
			MonthlyExpenses: 3000,
			AverageBalance:  10000,
		},
	}

	result := Calculate(fd, models.TraditionalCredit{HasCredit: models.CreditNo}, testNow)

	assert.Equal(t, models.ScoreFactors{
		RentPayments:      90,
		UtilityPayments:   100,
		CashFlow:          104,
		EmploymentHistory: 80,
	}, result.Factors)

	// 600 + 0.9*30 + 1.0*15 + 104*0.25 + 80*0.2 = 684
	assert.Equal(t, 684, result.Score)

	assert.Equal(t, 27.0, result.Breakdown.RentContribution)
	assert.Equal(t, 15.0, result.Breakdown.UtilityContribution)
	assert.Equal(t, 26.0, result.Breakdown.CashFlowContribution)
	assert.Equal(t, 16.0, result.Breakdown.EmploymentContribution)
}

func TestCalculateWeightsFollowTraditionalCredit(t *testing.T) {
	result := Calculate(models.FinancialData{}, models.TraditionalCredit{HasCredit: models.CreditYes, Score: intPtr(700)}, testNow)
	assert.Equal(t, models.Weights{Traditional: 0.4, Alternative: 0.6}, result.Weights)

	result = Calculate(models.FinancialData{}, models.TraditionalCredit{HasCredit: models.CreditLimited, Score: intPtr(640)}, testNow)
	assert.Equal(t, models.Weights{Traditional: 0.25, Alternative: 0.75}, result.Weights)
}

func TestCalculateClampedAtCeiling(t *testing.T) {
	// the additive model cannot reach the ceiling with plausible inputs,
	// but the clamp still bounds the result
	fd := models.FinancialData{
		Banking: models.Banking{MonthlyIncome: 1000, MonthlyExpenses: 1, AverageBalance: 10000000},
	}
	result := Calculate(fd, models.TraditionalCredit{}, testNow)
	assert.LessOrEqual(t, result.Score, MaxScore)
}
