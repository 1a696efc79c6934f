package models

// Loan product categories
const (
	LoanCreditCard = "credit-card"
	LoanPersonal   = "personal"
	LoanAuto       = "auto"
	LoanMortgage   = "mortgage"
)

// LoanOffer is one synthetic product offer from the partner catalog
type LoanOffer struct {
	BankID             string   `json:"bankId"`
	BankName           string   `json:"bankName"`
	LoanType           string   `json:"loanType"`
	ProductName        string   `json:"productName"`
	InterestRate       float64  `json:"interestRate"`
	MaxAmount          float64  `json:"maxAmount"`
	Terms              string   `json:"terms"`
	Requirements       []string `json:"requirements"`
	ApprovalLikelihood int      `json:"approvalLikelihood"`
	Features           []string `json:"features"`
}
