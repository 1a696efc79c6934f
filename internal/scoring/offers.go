package scoring

import (
	"sort"

	"github.com/creditbridge/credit-service/internal/models"
)

// Partner bank tiers
const (
	tierPremium     = "premium"
	tierTraditional = "traditional"
	tierAlternative = "alternative"
	tierOnline      = "online"
)

type bank struct {
	id   string
	name string
	tier string
}

// bankCatalog is the fixed synthetic partner catalog
var bankCatalog = []bank{
	{"chase", "Chase Bank", tierPremium},
	{"bofa", "Bank of America", tierPremium},
	{"wells", "Wells Fargo", tierTraditional},
	{"citi", "Citibank", tierPremium},
	{"discover", "Discover Bank", tierAlternative},
	{"capital-one", "Capital One", tierAlternative},
	{"ally", "Ally Bank", tierOnline},
	{"marcus", "Marcus by Goldman Sachs", tierPremium},
}

// GenerateOffers produces synthetic loan offers for the given score,
// category by category, and sorts them by approval likelihood descending.
// Offers for a category are only generated when the score clears its floor.
func GenerateOffers(score int) []models.LoanOffer {
	offers := []models.LoanOffer{}

	if score >= CreditCardFloor {
		for _, b := range bankCatalog {
			if score >= 720 || b.tier == tierAlternative {
				offers = append(offers, creditCardOffer(b, score))
			}
		}
	}

	if score >= PersonalLoanFloor {
		var eligible []bank
		for _, b := range bankCatalog {
			if b.tier != tierPremium || score >= 700 {
				eligible = append(eligible, b)
			}
		}
		if len(eligible) > 4 {
			eligible = eligible[:4]
		}
		for _, b := range eligible {
			offers = append(offers, personalLoanOffer(b, score))
		}
	}

	if score >= AutoLoanFloor {
		for _, b := range bankCatalog[:5] {
			offers = append(offers, autoLoanOffer(b, score))
		}
	}

	if score >= MortgageFloor {
		var eligible []bank
		for _, b := range bankCatalog {
			if b.tier == tierPremium || b.tier == tierTraditional {
				eligible = append(eligible, b)
			}
		}
		if len(eligible) > 3 {
			eligible = eligible[:3]
		}
		for _, b := range eligible {
			offers = append(offers, mortgageOffer(b, score))
		}
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].ApprovalLikelihood > offers[j].ApprovalLikelihood
	})
	return offers
}

func creditCardOffer(b bank, score int) models.LoanOffer {
	offer := models.LoanOffer{
		BankID:   b.id,
		BankName: b.name,
		LoanType: models.LoanCreditCard,
		Terms:    "0% APR for 12 months, then variable APR",
	}
	switch {
	case score >= 750:
		offer.ProductName = "Premium Rewards Card"
		offer.InterestRate = 14.99
		offer.MaxAmount = 25000
		offer.Requirements = []string{"Excellent Credit", "$50K+ Income"}
		offer.ApprovalLikelihood = 95
		offer.Features = []string{"2% Cash Back", "No Annual Fee", "Travel Insurance"}
	case score >= 700:
		offer.ProductName = "Rewards Card"
		offer.InterestRate = 18.99
		offer.MaxAmount = 15000
		offer.Requirements = []string{"Good Credit", "$25K+ Income"}
		offer.ApprovalLikelihood = 85
		offer.Features = []string{"1.5% Cash Back", "No Annual Fee"}
	default:
		offer.ProductName = "Standard Card"
		offer.InterestRate = 22.99
		offer.MaxAmount = 5000
		offer.Requirements = []string{"Good Credit", "$25K+ Income"}
		offer.ApprovalLikelihood = 70
		offer.Features = []string{"1% Cash Back"}
	}
	return offer
}

func personalLoanOffer(b bank, score int) models.LoanOffer {
	offer := models.LoanOffer{
		BankID:       b.id,
		BankName:     b.name,
		LoanType:     models.LoanPersonal,
		ProductName:  "Personal Loan",
		Terms:        "3-7 year terms available",
		Requirements: []string{"Steady Income", "Debt-to-Income < 40%"},
		Features:     []string{"Fixed Rate", "No Prepayment Penalty", "Quick Approval"},
	}
	switch {
	case score >= 750:
		offer.InterestRate = 5.99
		offer.MaxAmount = 50000
		offer.ApprovalLikelihood = 90
	case score >= 700:
		offer.InterestRate = 8.99
		offer.MaxAmount = 35000
		offer.ApprovalLikelihood = 80
	default:
		offer.InterestRate = 12.99
		offer.MaxAmount = 20000
		offer.ApprovalLikelihood = 65
	}
	return offer
}

func autoLoanOffer(b bank, score int) models.LoanOffer {
	offer := models.LoanOffer{
		BankID:       b.id,
		BankName:     b.name,
		LoanType:     models.LoanAuto,
		ProductName:  "Auto Loan",
		Terms:        "2-7 year terms available",
		Requirements: []string{"Vehicle as Collateral", "Insurance Required"},
		Features:     []string{"Competitive Rates", "Pre-approval Available", "Online Application"},
	}
	switch {
	case score >= 750:
		offer.InterestRate = 3.49
		offer.MaxAmount = 80000
		offer.ApprovalLikelihood = 95
	case score >= 700:
		offer.InterestRate = 4.99
		offer.MaxAmount = 60000
		offer.ApprovalLikelihood = 85
	default:
		offer.InterestRate = 6.99
		offer.MaxAmount = 40000
		offer.ApprovalLikelihood = 75
	}
	return offer
}

func mortgageOffer(b bank, score int) models.LoanOffer {
	offer := models.LoanOffer{
		BankID:   b.id,
		BankName: b.name,
		LoanType: models.LoanMortgage,
		Terms:    "15-30 year fixed rate options",
	}
	if score >= 740 {
		offer.ProductName = "Conventional Mortgage"
		offer.Requirements = []string{"20% Down Payment", "Stable Income"}
		offer.Features = []string{"Best Rates", "No PMI with 20% Down", "Rate Lock"}
	} else {
		offer.ProductName = "FHA Mortgage"
		offer.Requirements = []string{"3.5% Down Payment", "Stable Income"}
		offer.Features = []string{"Low Down Payment", "FHA Approved", "First-time Buyer Programs"}
	}
	switch {
	case score >= 750:
		offer.InterestRate = 6.25
		offer.MaxAmount = 750000
		offer.ApprovalLikelihood = 85
	case score >= 720:
		offer.InterestRate = 6.75
		offer.MaxAmount = 500000
		offer.ApprovalLikelihood = 75
	default:
		offer.InterestRate = 7.25
		offer.MaxAmount = 350000
		offer.ApprovalLikelihood = 65
	}
	return offer
}
