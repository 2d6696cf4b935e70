package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/autobudget-go/pkg/utils"
)

// Amortization is the result of pricing a fixed-rate loan.
type Amortization struct {
	FinancedAmount float64
	MonthlyPayment float64
	TotalCost      float64
	TotalInterest  float64
}

// MonthlyPayment returns the level payment that repays principal over months at
// the given APR:
//
//	P * r(1+r)^n / ((1+r)^n - 1),  r = apr/12
//
// A zero rate degrades to P/n. Non-positive principal or term yields 0.
func MonthlyPayment(principal, apr float64, months int) float64 {
	if principal <= 0 || months <= 0 {
		return 0
	}
	n := float64(months)
	r := apr / 12.0
	if r == 0 {
		return principal / n
	}
	factor := math.Pow(1+r, n)
	return principal * r * factor / (factor - 1)
}

// Amortize prices a loan of financedAmount. Negative amounts are clamped to zero,
// which is the fully paid case with no monthly payment. TotalCost includes the
// down payment.
func Amortize(financedAmount, apr float64, termMonths int, downPayment float64) Amortization {
	if financedAmount < 0 {
		financedAmount = 0
	}
	monthly := MonthlyPayment(financedAmount, apr, termMonths)
	paid := monthly * float64(termMonths)
	interest := 0.0
	if financedAmount > 0 {
		interest = paid - financedAmount
	}
	return Amortization{
		FinancedAmount: financedAmount,
		MonthlyPayment: monthly,
		TotalCost:      paid + downPayment,
		TotalInterest:  interest,
	}
}

// AnnuitySchedule builds the month-by-month schedule of a fixed-payment loan.
// Amounts are rounded to cents per period and the last period absorbs rounding.
func AnnuitySchedule(principal, apr float64, months int) (*ScheduleResult, error) {
	if months <= 0 {
		return nil, fmt.Errorf("months must be positive, got %d", months)
	}
	if principal < 0 {
		principal = 0
	}

	r := apr / 12.0
	monthlyPayment := MonthlyPayment(principal, apr, months)

	schedule := make([]ScheduleEntry, 0, months)
	remaining := principal
	cumI := 0.0
	cumP := 0.0
	totalPaid := 0.0

	for m := 1; m <= months; m++ {
		interest := remaining * r
		principalComponent := monthlyPayment - interest
		monthly := monthlyPayment

		if m == months {
			principalComponent = remaining
			monthly = principalComponent + interest
		}

		interest = utils.Round2(interest)
		principalComponent = utils.Round2(principalComponent)
		monthly = utils.Round2(monthly)

		remaining = utils.Round2(remaining - principalComponent)
		cumI = utils.Round2(cumI + interest)
		cumP = utils.Round2(cumP + principalComponent)
		totalPaid = utils.Round2(totalPaid + monthly)

		if remaining < -0.01 {
			return nil, fmt.Errorf("numeric error: remaining principal went negative in month %d", m)
		}
		if remaining < 0 {
			remaining = 0
		}

		schedule = append(schedule, ScheduleEntry{
			Month:               m,
			Payment:             monthly,
			Interest:            interest,
			PrincipalComponent:  principalComponent,
			RemainingPrincipal:  remaining,
			CumulativeInterest:  cumI,
			CumulativePrincipal: cumP,
		})
	}

	return &ScheduleResult{
		Summary: LoanSummary{
			Principal:      utils.Round2(principal),
			APR:            apr,
			Months:         months,
			MonthlyPayment: utils.Round2(monthlyPayment),
			TotalPaid:      totalPaid,
			TotalInterest:  cumI,
		},
		Schedule: schedule,
	}, nil
}
