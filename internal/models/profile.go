package models

// Payment statuses recorded for rent and utility histories
const (
	PaymentOnTime = "on-time"
	PaymentLate   = "late"
	PaymentMissed = "missed"
)

// Housing types
const (
	HousingRent   = "rent"
	HousingOwn    = "own"
	HousingFamily = "family"
	HousingOther  = "other"
)

// Employment types
const (
	EmploymentFullTime     = "full-time"
	EmploymentPartTime     = "part-time"
	EmploymentContract     = "contract"
	EmploymentSelfEmployed = "self-employed"
)

// Traditional credit categories
const (
	CreditYes     = "yes"
	CreditNo      = "no"
	CreditLimited = "limited"
	CreditUnsure  = "unsure"
)

// PaymentRecord is a single rent or utility payment
type PaymentRecord struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// Employment describes the user's current job
type Employment struct {
	EmployerName   string  `json:"employerName"`
	JobTitle       string  `json:"jobTitle"`
	AnnualSalary   float64 `json:"annualSalary"`
	StartDate      string  `json:"startDate"` // YYYY-MM-DD
	EmploymentType string  `json:"employmentType"`
	WorkAddress    string  `json:"workAddress,omitempty"`
}

// Housing describes the user's housing situation and rent history
type Housing struct {
	HousingType        string          `json:"housingType"`
	LandlordName       string          `json:"landlordName,omitempty"`
	MonthlyRent        float64         `json:"monthlyRent,omitempty"`
	LeaseStartDate     string          `json:"leaseStartDate,omitempty"`
	RentPaymentHistory []PaymentRecord `json:"rentPaymentHistory"`
}

// UtilityAccount is one utility provider relationship with its payment history
type UtilityAccount struct {
	Provider       string          `json:"provider"`
	Type           string          `json:"type"`
	AccountNumber  string          `json:"accountNumber"`
	MonthlyAmount  float64         `json:"monthlyAmount"`
	PaymentHistory []PaymentRecord `json:"paymentHistory"`
}

// Banking describes the user's primary banking relationship.
// Zero values mean "not provided".
type Banking struct {
	BankName        string  `json:"bankName"`
	AccountType     string  `json:"accountType"`
	RoutingNumber   string  `json:"routingNumber,omitempty"`
	AverageBalance  float64 `json:"averageBalance"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
}

// TraditionalCredit indicates whether the user has bureau credit history.
// Score is nil when the user did not supply a bureau score.
type TraditionalCredit struct {
	HasCredit string `json:"hasCredit"`
	Score     *int   `json:"score,omitempty"`
}

// FinancialData aggregates the scoring inputs collected from the forms
type FinancialData struct {
	Employment Employment       `json:"employment"`
	Housing    Housing          `json:"housing"`
	Utilities  []UtilityAccount `json:"utilities"`
	Banking    Banking          `json:"banking"`
}

// Address is a postal address
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// PersonalInfo holds the user's identity fields
type PersonalInfo struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone,omitempty"`
	DateOfBirth string  `json:"dateOfBirth"`
	Address     Address `json:"address"`
}

// UserProfile is the persisted per-user document
type UserProfile struct {
	UserID            string               `json:"userId"`
	PersonalInfo      PersonalInfo         `json:"personalInfo"`
	TraditionalCredit TraditionalCredit    `json:"traditionalCredit"`
	FinancialData     FinancialData        `json:"financialData"`
	CreditHistory     []CreditHistoryEntry `json:"creditHistory"`
	Analytics         *AnalyticsSummary    `json:"analytics,omitempty"`
	CreatedAt         string               `json:"createdAt"`
	UpdatedAt         string               `json:"updatedAt"`
}
