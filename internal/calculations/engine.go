package calculations

// Engine prices plans under a single profile. It holds no mutable state, so one
// Engine may be shared freely and every call recomputes from its arguments.
type Engine struct {
	profile Profile
}

// NewEngine returns an engine bound to profile.
func NewEngine(profile Profile) *Engine {
	return &Engine{profile: profile}
}

// Profile returns the engine's pricing profile.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Quote prices the plan described by the inputs. Missing or invalid inputs are
// replaced by defaults (see Normalize); it never fails.
func (e *Engine) Quote(v VehicleSelection, f FinancialProfile, p PaymentInputs) PlanQuote {
	f, p = Normalize(f, p)
	msrp := nonNegative(v.MSRP)
	price := EffectivePrice(msrp, p.Rebates)
	apr := e.profile.Rates.ResolveAPR(f.CreditScore, p.TermLengthMonths, p.PlanType)
	fees := e.profile.Fees.TaxesAndFees(price)

	q := PlanQuote{
		Profile:        e.profile.Name,
		PlanType:       p.PlanType,
		TermMonths:     p.TermLengthMonths,
		CreditBand:     e.profile.Rates.Band(f.CreditScore),
		APR:            apr,
		MSRP:           msrp,
		EffectivePrice: price,
		RebateTotal:    msrp - price,
		TaxesAndFees:   fees,
		DownPayment:    p.DownPayment,
		TradeInValue:   p.TradeInValue,
	}

	if p.PlanType == PlanLease {
		l := PriceLease(price, apr, p.TermLengthMonths, e.profile.Lease, p.AnnualMileage, p.DownPayment)
		q.AnnualMileage = p.AnnualMileage
		q.FinancedAmount = price
		q.MonthlyPayment = l.MonthlyPayment
		q.TotalCost = l.TotalCost
		q.ResidualValue = l.ResidualValue
		q.MileageAdjustment = l.MileageAdjustment
		return q
	}

	a := Amortize(price+fees-p.DownPayment-p.TradeInValue, apr, p.TermLengthMonths, p.DownPayment)
	q.FinancedAmount = a.FinancedAmount
	q.MonthlyPayment = a.MonthlyPayment
	q.TotalCost = a.TotalCost
	q.TotalInterest = a.TotalInterest
	return q
}

// Schedule returns the monthly loan schedule for the financed amount of the
// inputs, regardless of the requested plan type.
func (e *Engine) Schedule(v VehicleSelection, f FinancialProfile, p PaymentInputs) (*ScheduleResult, error) {
	p.PlanType = PlanLoan
	q := e.Quote(v, f, p)
	return AnnuitySchedule(q.FinancedAmount, q.APR, q.TermMonths)
}

// Summarize gathers a quote with its tips and affordability for export.
func (e *Engine) Summarize(v VehicleSelection, f FinancialProfile, p PaymentInputs) Summary {
	q := e.Quote(v, f, p)
	nf, np := Normalize(f, p)
	return Summary{
		Vehicle:       v,
		Financial:     nf,
		Inputs:        np,
		Quote:         q,
		Tips:          FinancingTips(nf, np, q),
		Affordability: Affordability(nf, q, DefaultPaymentToIncome),
	}
}
