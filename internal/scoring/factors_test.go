package scoring

import (
	"testing"
	"time"

	"github.com/creditbridge/credit-service/internal/models"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func payments(onTime, late, missed int) []models.PaymentRecord {
	var records []models.PaymentRecord
	for i := 0; i < onTime; i++ {
		records = append(records, models.PaymentRecord{Date: "2026-01-01", Amount: 1200, Status: models.PaymentOnTime})
	}
	for i := 0; i < late; i++ {
		records = append(records, models.PaymentRecord{Date: "2026-02-01", Amount: 1200, Status: models.PaymentLate})
	}
	for i := 0; i < missed; i++ {
		records = append(records, models.PaymentRecord{Date: "2026-03-01", Amount: 1200, Status: models.PaymentMissed})
	}
	return records
}

func TestRentScore(t *testing.T) {
	t.Run("nine of ten on time", func(t *testing.T) {
		h := models.Housing{
			HousingType:        models.HousingRent,
			RentPaymentHistory: payments(9, 1, 0),
		}
		assert.Equal(t, 90, RentScore(h))
	})

	t.Run("renter without history is neutral", func(t *testing.T) {
		h := models.Housing{HousingType: models.HousingRent}
		assert.Equal(t, 50, RentScore(h))
	})

	t.Run("non-renter without history", func(t *testing.T) {
		h := models.Housing{HousingType: models.HousingOwn}
		assert.Equal(t, 0, RentScore(h))
	})

	t.Run("all missed", func(t *testing.T) {
		h := models.Housing{
			HousingType:        models.HousingRent,
			RentPaymentHistory: payments(0, 0, 6),
		}
		assert.Equal(t, 0, RentScore(h))
	})
}

func TestUtilityScore(t *testing.T) {
	t.Run("aggregates across accounts", func(t *testing.T) {
		utilities := []models.UtilityAccount{
			{Provider: "City Electric", Type: "electric", PaymentHistory: payments(8, 2, 0)},
			{Provider: "Metro Water", Type: "water", PaymentHistory: payments(4, 0, 0)},
		}
		// 12 on-time of 14 total, not a per-account average
		assert.Equal(t, 86, UtilityScore(utilities))
	})

	t.Run("no accounts", func(t *testing.T) {
		assert.Equal(t, 0, UtilityScore(nil))
	})

	t.Run("accounts without payments", func(t *testing.T) {
		utilities := []models.UtilityAccount{{Provider: "City Gas", Type: "gas"}}
		assert.Equal(t, 0, UtilityScore(utilities))
	})
}

func TestCashFlowScore(t *testing.T) {
	t.Run("can exceed 100 for large balances", func(t *testing.T) {
		b := models.Banking{MonthlyIncome: 5000, MonthlyExpenses: 3000, AverageBalance: 10000}
		// savingsRate 0.4, balanceRatio 2.0 -> round(100*(0.24+0.8)) = 104
		assert.Equal(t, 104, CashFlowScore(b))
	})

	t.Run("negative when spending exceeds income", func(t *testing.T) {
		b := models.Banking{MonthlyIncome: 4000, MonthlyExpenses: 5000}
		assert.Equal(t, -15, CashFlowScore(b))
	})

	t.Run("missing income", func(t *testing.T) {
		b := models.Banking{MonthlyExpenses: 3000}
		assert.Equal(t, 0, CashFlowScore(b))
	})

	t.Run("missing expenses", func(t *testing.T) {
		b := models.Banking{MonthlyIncome: 5000}
		assert.Equal(t, 0, CashFlowScore(b))
	})
}

func TestEmploymentScore(t *testing.T) {
	t.Run("tenure and salary", func(t *testing.T) {
		e := models.Employment{StartDate: "2023-06-01", AnnualSalary: 50000}
		// 3 calendar years -> 60, salary capped at 20
		assert.Equal(t, 80, EmploymentScore(e, testNow))
	})

	t.Run("both capped", func(t *testing.T) {
		e := models.Employment{StartDate: "2010-01-15", AnnualSalary: 120000}
		assert.Equal(t, 100, EmploymentScore(e, testNow))
	})

	t.Run("started this year", func(t *testing.T) {
		e := models.Employment{StartDate: "2026-02-01", AnnualSalary: 12000}
		assert.Equal(t, 12, EmploymentScore(e, testNow))
	})

	t.Run("no start date", func(t *testing.T) {
		e := models.Employment{AnnualSalary: 90000}
		assert.Equal(t, 0, EmploymentScore(e, testNow))
	})

	t.Run("unparseable start date", func(t *testing.T) {
		e := models.Employment{StartDate: "last summer", AnnualSalary: 90000}
		assert.Equal(t, 0, EmploymentScore(e, testNow))
	})
}

func TestFactorsPassThrough(t *testing.T) {
	score := 712
	fd := models.FinancialData{
		Housing: models.Housing{HousingType: models.HousingRent},
	}
	factors := Factors(fd, models.TraditionalCredit{HasCredit: models.CreditYes, Score: &score}, testNow)
	assert.Equal(t, 712, factors.TraditionalCredit)
	assert.Equal(t, 50, factors.RentPayments)

	factors = Factors(fd, models.TraditionalCredit{HasCredit: models.CreditNo}, testNow)
	assert.Equal(t, 0, factors.TraditionalCredit)
}
