package scoring

import (
	"fmt"

	"github.com/creditbridge/credit-service/internal/models"
)

// Loan eligibility score floors per product category
const (
	CreditCardFloor   = 600
	PersonalLoanFloor = 620
	AutoLoanFloor     = 650
	MortgageFloor     = 680
)

const minFindings = 5

// Analyze maps the score result and raw financial ratios into categorized
// strengths and weaknesses, recommendations, a risk tier, and per-product
// loan eligibility. Strengths and weaknesses are each padded with generic
// entries to exactly five when fewer substantive findings qualify.
func Analyze(fd models.FinancialData, tc models.TraditionalCredit, result models.ScoreResult) models.AnalysisResult {
	income := fd.Banking.MonthlyIncome
	expenses := fd.Banking.MonthlyExpenses

	in := ruleInput{
		factors:    result.Factors,
		score:      result.Score,
		employment: fd.Employment,
		housing:    fd.Housing,
		banking:    fd.Banking,
		hasCredit:  tc.HasCredit,
		income:     income,
		salary:     fd.Employment.AnnualSalary,
	}
	if income > 0 {
		in.savingsRate = (income - expenses) / income * 100
	}
	if expenses > 0 && income > 0 {
		in.debtToIncome = expenses / income * 100
	}

	var strengths, weaknesses []models.Finding
	var recommendations []string
	for _, rule := range analysisRules {
		res := rule.apply(in)
		if res.strength != nil {
			strengths = append(strengths, *res.strength)
		}
		if res.weakness != nil {
			weaknesses = append(weaknesses, *res.weakness)
			if res.advice != "" {
				recommendations = append(recommendations, res.advice)
			}
		}
	}

	strengths = padStrengths(strengths, result.Score)
	weaknesses = padWeaknesses(weaknesses, result.Score)

	averageScore := float64(result.Factors.RentPayments+result.Factors.UtilityPayments+
		result.Factors.CashFlow+result.Factors.EmploymentHistory) / 4

	riskProfile := models.RiskHigh
	switch {
	case averageScore >= 75:
		riskProfile = models.RiskLow
	case averageScore >= 60:
		riskProfile = models.RiskMedium
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Continue your excellent financial habits to maintain your strong credit profile")
	}

	return models.AnalysisResult{
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
		RiskProfile:     riskProfile,
		LoanEligibility: Eligibility(result.Score),
		OverallStrength: int(averageScore),
	}
}

// Eligibility gates each product category on its score floor. Floors are
// strictly increasing, so eligibility is monotonic in score.
func Eligibility(score int) models.LoanEligibility {
	return models.LoanEligibility{
		CreditCards:   score >= CreditCardFloor,
		PersonalLoans: score >= PersonalLoanFloor,
		AutoLoans:     score >= AutoLoanFloor,
		Mortgages:     score >= MortgageFloor,
	}
}

func padStrengths(strengths []models.Finding, score int) []models.Finding {
	for len(strengths) < minFindings {
		if score >= 700 {
			strengths = append(strengths, models.Finding{
				Title:       "Good Overall Credit Score",
				Description: fmt.Sprintf("Your CreditBridge score of %d opens many lending opportunities", score),
				Score:       float64(score) / 8.5,
				Impact:      models.ImpactMedium,
			})
		} else {
			strengths = append(strengths, models.Finding{
				Title:       "Credit Building Progress",
				Description: "You're actively working to build your credit profile through alternative data",
				Score:       75,
				Impact:      models.ImpactLow,
			})
		}
	}
	return strengths
}

func padWeaknesses(weaknesses []models.Finding, score int) []models.Finding {
	for len(weaknesses) < minFindings {
		if score < 650 {
			weaknesses = append(weaknesses, models.Finding{
				Title:       "Credit Score Below Prime",
				Description: "Improving your score above 650 will unlock better interest rates",
				Score:       float64(score) / 8.5,
				Impact:      models.ImpactHigh,
			})
		} else {
			weaknesses = append(weaknesses, models.Finding{
				Title:       "Credit Profile Depth",
				Description: "Adding more data sources could provide a more comprehensive credit picture",
				Score:       60,
				Impact:      models.ImpactLow,
			})
		}

		if len(weaknesses) < minFindings {
			weaknesses = append(weaknesses, models.Finding{
				Title:       "Credit Mix Diversification",
				Description: "Consider diversifying your financial relationships and payment history types",
				Score:       55,
				Impact:      models.ImpactLow,
			})
		}
	}
	return weaknesses
}
