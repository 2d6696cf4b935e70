package calculations

// DefaultPaymentToIncome is the share of gross annual income a car payment should
// stay under.
const DefaultPaymentToIncome = 0.20

// Advisory messages returned by FinancingTips.
const (
	TipImproveCredit   = "Consider improving your credit score for better rates"
	TipPaymentToIncome = "Payment may be high relative to income (>20%)"
	TipLargerDown      = "Consider a larger down payment to reduce monthly costs"
	TipShorterTerm     = "Shorter loan terms save money on interest"
	TipLooksGood       = "Your financing looks good!"
)

// FinancingTips returns advice for a quote in a fixed order. Each tip is checked
// independently; when none applies the single TipLooksGood message is returned.
func FinancingTips(f FinancialProfile, p PaymentInputs, q PlanQuote) []string {
	f, p = Normalize(f, p)
	var tips []string

	if f.CreditScore < 670 {
		tips = append(tips, TipImproveCredit)
	}
	if f.AnnualIncome > 0 && q.MonthlyPayment*12/f.AnnualIncome > DefaultPaymentToIncome {
		tips = append(tips, TipPaymentToIncome)
	}
	if p.DownPayment < 0.20*q.MSRP {
		tips = append(tips, TipLargerDown)
	}
	if p.PlanType == PlanLoan && p.TermLengthMonths > 60 {
		tips = append(tips, TipShorterTerm)
	}

	if len(tips) == 0 {
		return []string{TipLooksGood}
	}
	return tips
}

// Affordability compares a quote's monthly payment with ratio of the buyer's
// monthly income. Without an income the result is unknown.
func Affordability(f FinancialProfile, q PlanQuote, ratio float64) AffordabilityResult {
	if f.AnnualIncome <= 0 || ratio <= 0 {
		return AffordabilityResult{}
	}
	maxMonthly := f.AnnualIncome * ratio / 12.0
	res := AffordabilityResult{
		Known:             true,
		MaxMonthlyPayment: maxMonthly,
		PaymentToIncome:   q.MonthlyPayment * 12 / f.AnnualIncome,
		WithinBudget:      q.MonthlyPayment <= maxMonthly,
	}
	if !res.WithinBudget {
		res.Deficit = q.MonthlyPayment - maxMonthly
	}
	return res
}
