package calculations

// PlanType selects between financing (loan) and leasing.
type PlanType string

const (
	PlanLoan  PlanType = "loan"
	PlanLease PlanType = "lease"
)

// Rebates are the fixed-amount purchase incentives a buyer may qualify for.
type Rebates struct {
	Military bool `json:"military"`
	College  bool `json:"college"`
}

// VehicleSelection is the vehicle chosen on the first wizard step.
type VehicleSelection struct {
	Model string  `json:"model"`
	Trim  string  `json:"trim,omitempty"`
	MSRP  float64 `json:"msrp"`
	Year  string  `json:"year"`
	Color string  `json:"color,omitempty"`
}

// FinancialProfile holds the buyer's credit score and (optional) annual income.
// A zero credit score means "not provided".
type FinancialProfile struct {
	CreditScore  int     `json:"credit_score"`
	AnnualIncome float64 `json:"annual_income,omitempty"`
}

// PaymentInputs holds everything about how the vehicle is paid for.
type PaymentInputs struct {
	DownPayment      float64  `json:"down_payment"`
	TradeInValue     float64  `json:"trade_in_value,omitempty"`
	Rebates          Rebates  `json:"rebates"`
	PlanType         PlanType `json:"plan_type"`
	TermLengthMonths int      `json:"term_length_months"`
	AnnualMileage    int      `json:"annual_mileage,omitempty"`
}

// PlanQuote is the derived result for one plan. It is recomputed on every input
// change and carries full precision; call Rounded before presenting it.
type PlanQuote struct {
	Profile           string   `json:"profile"`
	PlanType          PlanType `json:"plan_type"`
	TermMonths        int      `json:"term_months"`
	AnnualMileage     int      `json:"annual_mileage,omitempty"`
	CreditBand        RateBand `json:"credit_band"`
	APR               float64  `json:"apr"`
	MSRP              float64  `json:"msrp"`
	EffectivePrice    float64  `json:"effective_price"`
	RebateTotal       float64  `json:"rebate_total"`
	TaxesAndFees      float64  `json:"taxes_and_fees"`
	DownPayment       float64  `json:"down_payment"`
	TradeInValue      float64  `json:"trade_in_value"`
	FinancedAmount    float64  `json:"financed_amount"`
	MonthlyPayment    float64  `json:"monthly_payment"`
	TotalCost         float64  `json:"total_cost"`
	TotalInterest     float64  `json:"total_interest,omitempty"`
	ResidualValue     float64  `json:"residual_value,omitempty"`
	MileageAdjustment float64  `json:"mileage_adjustment,omitempty"`
}

// ScheduleEntry is one month of a loan payment schedule.
type ScheduleEntry struct {
	Month               int     `json:"month"`
	Payment             float64 `json:"payment"`
	Interest            float64 `json:"interest"`
	PrincipalComponent  float64 `json:"principal_component"`
	RemainingPrincipal  float64 `json:"remaining_principal"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// LoanSummary summarizes a loan payment schedule.
type LoanSummary struct {
	Principal      float64 `json:"principal"`
	APR            float64 `json:"apr"`
	Months         int     `json:"months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPaid      float64 `json:"total_paid"`
	TotalInterest  float64 `json:"total_interest"`
}

// ScheduleResult is a loan summary together with its monthly schedule.
type ScheduleResult struct {
	Summary  LoanSummary     `json:"summary"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// LoanLeaseComparison compares a loan and a lease built from the same inputs.
type LoanLeaseComparison struct {
	Loan            PlanQuote `json:"loan"`
	Lease           PlanQuote `json:"lease"`
	CheaperPlan     PlanType  `json:"cheaper_plan,omitempty"`
	TotalCostDiff   float64   `json:"total_cost_diff"`
	MonthlyDiff     float64   `json:"monthly_diff"`
	LoanAdvantages  []string  `json:"loan_advantages"`
	LeaseAdvantages []string  `json:"lease_advantages"`
	Recommendation  string    `json:"recommendation"`
}

// AffordabilityResult reports whether a monthly payment fits the buyer's income.
type AffordabilityResult struct {
	Known             bool    `json:"known"`
	MaxMonthlyPayment float64 `json:"max_monthly_payment,omitempty"`
	PaymentToIncome   float64 `json:"payment_to_income,omitempty"`
	Deficit           float64 `json:"deficit,omitempty"`
	WithinBudget      bool    `json:"within_budget"`
}

// Summary is everything an exported plan report needs.
type Summary struct {
	Vehicle       VehicleSelection    `json:"vehicle"`
	Financial     FinancialProfile    `json:"financial"`
	Inputs        PaymentInputs       `json:"inputs"`
	Quote         PlanQuote           `json:"quote"`
	Tips          []string            `json:"tips"`
	Affordability AffordabilityResult `json:"affordability"`
}
