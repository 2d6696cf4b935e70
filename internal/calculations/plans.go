package calculations

import "github.com/cloud-ru/autobudget-go/pkg/utils"

var (
	// FinancingPlanTerms are the loan lengths offered in the plan grid.
	FinancingPlanTerms = []int{24, 36, 48, 60, 72}
	// LeasingPlanTerms are the lease lengths offered in the plan grid.
	LeasingPlanTerms = []int{24, 36, 48, 60}
	// LeasingPlanMileages are the annual mileage tiers offered in the plan grid.
	LeasingPlanMileages = []int{10000, 12000, 15000}
)

// FinancingPlans quotes a loan for every term in FinancingPlanTerms, in
// ascending term order. Each term is priced independently.
func (e *Engine) FinancingPlans(v VehicleSelection, f FinancialProfile, p PaymentInputs) []PlanQuote {
	p.PlanType = PlanLoan
	quotes := make([]PlanQuote, 0, len(FinancingPlanTerms))
	for _, term := range FinancingPlanTerms {
		p.TermLengthMonths = term
		quotes = append(quotes, e.Quote(v, f, p))
	}
	return quotes
}

// LeasingPlans quotes a lease for every term and mileage tier, ordered by
// ascending term then ascending mileage.
func (e *Engine) LeasingPlans(v VehicleSelection, f FinancialProfile, p PaymentInputs) []PlanQuote {
	p.PlanType = PlanLease
	quotes := make([]PlanQuote, 0, len(LeasingPlanTerms)*len(LeasingPlanMileages))
	for _, term := range LeasingPlanTerms {
		for _, miles := range LeasingPlanMileages {
			p.TermLengthMonths = term
			p.AnnualMileage = miles
			quotes = append(quotes, e.Quote(v, f, p))
		}
	}
	return quotes
}

// Rounded returns a copy with every monetary amount rounded to cents and the
// APR rounded to basis points.
func (q PlanQuote) Rounded() PlanQuote {
	q.APR = roundTo(q.APR, 4)
	q.MSRP = utils.Round2(q.MSRP)
	q.EffectivePrice = utils.Round2(q.EffectivePrice)
	q.RebateTotal = utils.Round2(q.RebateTotal)
	q.TaxesAndFees = utils.Round2(q.TaxesAndFees)
	q.DownPayment = utils.Round2(q.DownPayment)
	q.TradeInValue = utils.Round2(q.TradeInValue)
	q.FinancedAmount = utils.Round2(q.FinancedAmount)
	q.MonthlyPayment = utils.Round2(q.MonthlyPayment)
	q.TotalCost = utils.Round2(q.TotalCost)
	q.TotalInterest = utils.Round2(q.TotalInterest)
	q.ResidualValue = utils.Round2(q.ResidualValue)
	q.MileageAdjustment = utils.Round2(q.MileageAdjustment)
	return q
}

// RoundQuotes applies Rounded to each quote.
func RoundQuotes(quotes []PlanQuote) []PlanQuote {
	out := make([]PlanQuote, len(quotes))
	for i, q := range quotes {
		out[i] = q.Rounded()
	}
	return out
}
