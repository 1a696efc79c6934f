package scoring

import (
	"fmt"
	"math"

	"github.com/creditbridge/credit-service/internal/models"
)

// ruleInput carries the raw profile fields and derived ratios every
// analysis rule may consult.
type ruleInput struct {
	factors      models.ScoreFactors
	score        int
	employment   models.Employment
	housing      models.Housing
	banking      models.Banking
	hasCredit    string
	income       float64
	savingsRate  float64 // percent
	debtToIncome float64 // percent
	salary       float64
}

// ruleResult is what one rule contributes: at most one strength, one
// weakness, and the advice tied to that weakness.
type ruleResult struct {
	strength *models.Finding
	weakness *models.Finding
	advice   string
}

type analysisRule struct {
	category string
	apply    func(in ruleInput) ruleResult
}

// analysisRules is the fixed-order battery of threshold checks. Each rule
// evaluates independently; thresholds and texts come from the profile
// analysis requirements.
var analysisRules = []analysisRule{
	{
		category: "rent",
		apply: func(in ruleInput) ruleResult {
			if in.factors.RentPayments >= 80 {
				return ruleResult{strength: &models.Finding{
					Title:       "Excellent Rent Payment History",
					Description: "You have consistently paid rent on time, showing strong housing responsibility",
					Score:       float64(in.factors.RentPayments),
					Impact:      models.ImpactHigh,
				}}
			}
			if in.factors.RentPayments < 60 {
				return ruleResult{
					weakness: &models.Finding{
						Title:       "Inconsistent Rent Payments",
						Description: "Improving rent payment consistency could significantly boost your score",
						Score:       float64(in.factors.RentPayments),
						Impact:      models.ImpactHigh,
					},
					advice: "Set up automatic rent payments to ensure consistency",
				}
			}
			return ruleResult{}
		},
	},
	{
		category: "utility",
		apply: func(in ruleInput) ruleResult {
			if in.factors.UtilityPayments >= 75 {
				return ruleResult{strength: &models.Finding{
					Title:       "Reliable Utility Payments",
					Description: "Your utility payment history demonstrates financial responsibility",
					Score:       float64(in.factors.UtilityPayments),
					Impact:      models.ImpactMedium,
				}}
			}
			if in.factors.UtilityPayments < 65 {
				return ruleResult{
					weakness: &models.Finding{
						Title:       "Utility Payment Issues",
						Description: "Late utility payments are affecting your credit profile",
						Score:       float64(in.factors.UtilityPayments),
						Impact:      models.ImpactMedium,
					},
					advice: "Set up autopay for all utilities to avoid late payments",
				}
			}
			return ruleResult{}
		},
	},
	{
		category: "employment",
		apply: func(in ruleInput) ruleResult {
			if in.factors.EmploymentHistory >= 80 {
				return ruleResult{strength: &models.Finding{
					Title:       "Stable Employment History",
					Description: "Your employment stability shows reliable income potential",
					Score:       float64(in.factors.EmploymentHistory),
					Impact:      models.ImpactMedium,
				}}
			}
			if in.factors.EmploymentHistory < 60 {
				return ruleResult{
					weakness: &models.Finding{
						Title:       "Employment Instability",
						Description: "Frequent job changes may be impacting your creditworthiness",
						Score:       float64(in.factors.EmploymentHistory),
						Impact:      models.ImpactMedium,
					},
					advice: "Focus on job stability and building tenure with current employer",
				}
			}
			return ruleResult{}
		},
	},
	{
		category: "cash-flow",
		apply: func(in ruleInput) ruleResult {
			if in.factors.CashFlow >= 70 {
				return ruleResult{strength: &models.Finding{
					Title:       "Strong Cash Flow Management",
					Description: "You manage your finances well with positive cash flow patterns",
					Score:       float64(in.factors.CashFlow),
					Impact:      models.ImpactHigh,
				}}
			}
			if in.factors.CashFlow < 50 {
				return ruleResult{
					weakness: &models.Finding{
						Title:       "Cash Flow Challenges",
						Description: "Improving your savings rate and reducing expenses could help",
						Score:       float64(in.factors.CashFlow),
						Impact:      models.ImpactHigh,
					},
					advice: "Build an emergency fund and reduce monthly expenses",
				}
			}
			return ruleResult{}
		},
	},
	{
		category: "income",
		apply: func(in ruleInput) ruleResult {
			if in.salary >= 75000 {
				return ruleResult{strength: &models.Finding{
					Title:       "Strong Income Level",
					Description: fmt.Sprintf("Your annual salary of $%s provides good financial foundation", formatAmount(in.salary)),
					Score:       math.Min(100, in.salary/100000*100),
					Impact:      models.ImpactHigh,
				}}
			}
			if in.salary < 35000 && in.salary > 0 {
				return ruleResult{
					weakness: &models.Finding{
						Title:       "Lower Income Level",
						Description: "Increasing income through skills development or career advancement could improve your profile",
						Score:       in.salary / 35000 * 100,
						Impact:      models.ImpactMedium,
					},
					advice: "Consider skills training or career advancement opportunities to increase income",
				}
			}
			return ruleResult{}
		},
	},
	{
		category: "savings",
		apply: func(in ruleInput) ruleResult {
			if in.savingsRate >= 20 {
				return ruleResult{strength: &models.Finding{
					Title:       "Excellent Savings Discipline",
					Description: fmt.Sprintf("You save %.1f%% of your income, showing strong financial planning", in.savingsRate),
					Score:       math.Min(100, in.savingsRate*5),
					Impact:      models.ImpactHigh,
				}}
			}
			if in.savingsRate < 5 && in.income > 0 {
				return ruleResult{
					weakness: &models.Finding{
						Title:       "Low Savings Rate",
						Description: "Building emergency savings is crucial for financial stability and credit health",
						Score:       in.savingsRate * 20,
						Impact:      models.ImpactHigh,
					},
					advice: "Aim to save at least 10-20% of your income for financial security",
				}
			}
			return ruleResult{}
		},
	},
	{
		category: "debt-to-income",
		apply: func(in ruleInput) ruleResult {
			if in.debtToIncome <= 30 && in.income > 0 {
				return ruleResult{strength: &models.Finding{
					Title:       "Healthy Debt-to-Income Ratio",
					Description: fmt.Sprintf("Your DTI of %.1f%% shows responsible debt management", in.debtToIncome),
					Score:       100 - in.debtToIncome,
					Impact:      models.ImpactMedium,
				}}
			}
			if in.debtToIncome > 50 && in.income > 0 {
				return ruleResult{
					weakness: &models.Finding{
						Title:       "High Debt-to-Income Ratio",
						Description: "High debt levels relative to income may limit credit opportunities",
						Score:       math.Max(0, 100-in.debtToIncome),
						Impact:      models.ImpactHigh,
					},
					advice: "Focus on reducing monthly expenses or increasing income to improve DTI ratio",
				}
			}
			return ruleResult{}
		},
	},
	{
		category: "banking",
		apply: func(in ruleInput) ruleResult {
			if in.banking.BankName != "" {
				return ruleResult{strength: &models.Finding{
					Title:       "Established Banking Relationship",
					Description: fmt.Sprintf("Banking with %s shows financial stability", in.banking.BankName),
					Score:       85,
					Impact:      models.ImpactLow,
				}}
			}
			return ruleResult{
				weakness: &models.Finding{
					Title:       "Limited Banking History",
					Description: "Establishing primary banking relationships helps build credit foundation",
					Score:       30,
					Impact:      models.ImpactMedium,
				},
				advice: "Open checking and savings accounts with a major bank to build financial history",
			}
		},
	},
	{
		category: "employment-type",
		apply: func(in ruleInput) ruleResult {
			switch in.employment.EmploymentType {
			case models.EmploymentFullTime:
				return ruleResult{strength: &models.Finding{
					Title:       "Full-time Employment Status",
					Description: "Full-time employment provides stable income verification for lenders",
					Score:       90,
					Impact:      models.ImpactMedium,
				}}
			case models.EmploymentSelfEmployed:
				return ruleResult{
					weakness: &models.Finding{
						Title:       "Self-employment Income Variability",
						Description: "Self-employed income may require additional documentation for loan approval",
						Score:       65,
						Impact:      models.ImpactMedium,
					},
					advice: "Maintain detailed financial records and consider business banking accounts",
				}
			}
			return ruleResult{}
		},
	},
	{
		category: "housing",
		apply: func(in ruleInput) ruleResult {
			switch in.housing.HousingType {
			case models.HousingOwn:
				return ruleResult{strength: &models.Finding{
					Title:       "Homeownership",
					Description: "Property ownership demonstrates financial stability and investment capacity",
					Score:       95,
					Impact:      models.ImpactHigh,
				}}
			case models.HousingFamily:
				return ruleResult{
					weakness: &models.Finding{
						Title:       "Limited Housing Payment History",
						Description: "Living with family may limit verifiable housing payment history",
						Score:       40,
						Impact:      models.ImpactMedium,
					},
					advice: "Consider documenting any financial contributions to household expenses",
				}
			}
			return ruleResult{}
		},
	},
	{
		category: "traditional-credit",
		apply: func(in ruleInput) ruleResult {
			switch in.hasCredit {
			case models.CreditYes:
				return ruleResult{strength: &models.Finding{
					Title:       "Existing Credit History",
					Description: "Having traditional credit products provides additional credit verification",
					Score:       85,
					Impact:      models.ImpactMedium,
				}}
			case models.CreditNo:
				return ruleResult{
					weakness: &models.Finding{
						Title:       "No Traditional Credit History",
						Description: "Limited traditional credit may restrict loan options and interest rates",
						Score:       20,
						Impact:      models.ImpactHigh,
					},
					advice: "Consider secured credit cards or credit-building loans to establish traditional credit",
				}
			}
			return ruleResult{}
		},
	},
}

// formatAmount renders a dollar amount with thousands separators
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
