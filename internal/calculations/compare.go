package calculations

import "github.com/cloud-ru/autobudget-go/pkg/utils"

// CompareLoanLease prices the same inputs as a loan and as a lease and reports
// which costs less in total. A lease term longer than allowed falls back to the
// default term.
func (e *Engine) CompareLoanLease(v VehicleSelection, f FinancialProfile, p PaymentInputs) LoanLeaseComparison {
	p.PlanType = PlanLoan
	loan := e.Quote(v, f, p)
	p.PlanType = PlanLease
	lease := e.Quote(v, f, p)

	totalDiff := utils.Round2(loan.TotalCost - lease.TotalCost)
	monthlyDiff := utils.Round2(loan.MonthlyPayment - lease.MonthlyPayment)

	var cheaper PlanType
	var recommendation string
	switch {
	case totalDiff > 0:
		cheaper = PlanLease
		recommendation = "Leasing costs less over the term, but you return the vehicle at the end and mileage limits apply."
	case totalDiff < 0:
		cheaper = PlanLoan
		recommendation = "Buying costs less over the term and you keep the vehicle once the loan is paid off."
	default:
		recommendation = "Both plans cost the same over the term."
	}

	return LoanLeaseComparison{
		Loan:          loan.Rounded(),
		Lease:         lease.Rounded(),
		CheaperPlan:   cheaper,
		TotalCostDiff: totalDiff,
		MonthlyDiff:   monthlyDiff,
		LoanAdvantages: []string{
			"Own the vehicle after all payments are made",
			"No mileage limits",
			"Build equity you can trade in later",
		},
		LeaseAdvantages: []string{
			"Lower monthly cost",
			"Drive a newer vehicle every few years",
			"Return it at the end of the term",
		},
		Recommendation: recommendation,
	}
}
