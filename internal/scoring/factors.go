package scoring

import (
	"math"
	"time"

	"github.com/creditbridge/credit-service/internal/models"
)

// Factors computes the four alternative-data sub-scores plus the bureau
// score pass-through. Missing or empty data yields a documented default,
// never an error.
func Factors(fd models.FinancialData, tc models.TraditionalCredit, now time.Time) models.ScoreFactors {
	traditional := 0
	if tc.Score != nil {
		traditional = *tc.Score
	}
	return models.ScoreFactors{
		RentPayments:      RentScore(fd.Housing),
		UtilityPayments:   UtilityScore(fd.Utilities),
		CashFlow:          CashFlowScore(fd.Banking),
		EmploymentHistory: EmploymentScore(fd.Employment, now),
		TraditionalCredit: traditional,
	}
}

// RentScore is the on-time share of the rent payment history in [0,100].
// With no history, a renter scores a neutral 50 and everyone else 0.
func RentScore(h models.Housing) int {
	if len(h.RentPaymentHistory) == 0 {
		if h.HousingType == models.HousingRent {
			return 50
		}
		return 0
	}

	onTime := 0
	for _, p := range h.RentPaymentHistory {
		if p.Status == models.PaymentOnTime {
			onTime++
		}
	}
	return int(math.Round(float64(onTime) / float64(len(h.RentPaymentHistory)) * 100))
}

// UtilityScore is the on-time share aggregated across all utility accounts'
// payment histories combined. 0 with no accounts or no payments.
func UtilityScore(utilities []models.UtilityAccount) int {
	totalOnTime := 0
	totalPayments := 0
	for _, u := range utilities {
		totalPayments += len(u.PaymentHistory)
		for _, p := range u.PaymentHistory {
			if p.Status == models.PaymentOnTime {
				totalOnTime++
			}
		}
	}
	if totalPayments == 0 {
		return 0
	}
	return int(math.Round(float64(totalOnTime) / float64(totalPayments) * 100))
}

// CashFlowScore blends savings rate (60%) and balance-to-income ratio (40%).
// Not clamped: a large balance relative to income can push it past 100 and
// spending above income can push it negative; the blender's final clamp
// absorbs the excursion. 0 when income or expenses are not provided.
func CashFlowScore(b models.Banking) int {
	if b.MonthlyIncome <= 0 || b.MonthlyExpenses <= 0 {
		return 0
	}
	savingsRate := (b.MonthlyIncome - b.MonthlyExpenses) / b.MonthlyIncome
	balanceRatio := b.AverageBalance / b.MonthlyIncome
	return int(math.Round((savingsRate*0.6 + balanceRatio*0.4) * 100))
}

// EmploymentScore combines tenure (20 points per calendar year, capped at 80)
// with salary ($1k per point, capped at 20). 0 without a parseable start date.
func EmploymentScore(e models.Employment, now time.Time) int {
	start, ok := parseDate(e.StartDate)
	if !ok {
		return 0
	}

	yearsEmployed := now.Year() - start.Year()
	if yearsEmployed < 0 {
		yearsEmployed = 0
	}

	stabilityScore := math.Min(float64(yearsEmployed)*20, 80)
	salaryScore := math.Min(e.AnnualSalary/1000, 20)
	return int(math.Round(stabilityScore + salaryScore))
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
