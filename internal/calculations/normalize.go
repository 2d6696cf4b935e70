package calculations

import (
	"strconv"
	"strings"

	"github.com/cloud-ru/autobudget-go/pkg/utils"
)

const (
	DefaultTermMonths    = 60
	MaxLeaseTerm         = 72
	DefaultAnnualMileage = 12000
	MinAnnualMileage     = 10000
	MaxAnnualMileage     = 20000
)

// LoanTerms are the selectable loan lengths in months. 84 months is loan-only.
var LoanTerms = []int{24, 36, 48, 60, 72, 84}

func validTerm(months int, plan PlanType) bool {
	if plan == PlanLease && months > MaxLeaseTerm {
		return false
	}
	for _, t := range LoanTerms {
		if t == months {
			return true
		}
	}
	return false
}

func nonNegative(v float64) float64 {
	if !utils.IsFinite(v) || v < 0 {
		return 0
	}
	return v
}

// Normalize substitutes documented defaults for missing or invalid inputs instead
// of rejecting them: credit score 0 becomes 700, unknown terms become 60 months,
// mileage outside [10000, 20000] becomes 12000 and negative amounts become 0.
func Normalize(f FinancialProfile, p PaymentInputs) (FinancialProfile, PaymentInputs) {
	f.CreditScore = NormalizeCreditScore(f.CreditScore)
	f.AnnualIncome = nonNegative(f.AnnualIncome)

	if p.PlanType != PlanLease {
		p.PlanType = PlanLoan
	}
	if !validTerm(p.TermLengthMonths, p.PlanType) {
		p.TermLengthMonths = DefaultTermMonths
	}
	if p.AnnualMileage < MinAnnualMileage || p.AnnualMileage > MaxAnnualMileage {
		p.AnnualMileage = DefaultAnnualMileage
	}
	p.DownPayment = nonNegative(p.DownPayment)
	p.TradeInValue = nonNegative(p.TradeInValue)
	return f, p
}

// ParseAmount reads a form amount such as "35,000" or "$1,200.50". Empty or
// malformed text yields 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.NewReplacer(",", "", "$", "").Replace(s))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return nonNegative(v)
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(s, ",", "")))
	if err != nil || v == 0 {
		return def
	}
	return v
}

// ParseCreditScore reads a credit score, defaulting to 700.
func ParseCreditScore(s string) int {
	return parseIntOr(s, DefaultCreditScore)
}

// ParseTerm reads a term in months, defaulting to 60.
func ParseTerm(s string) int {
	return parseIntOr(s, DefaultTermMonths)
}

// ParseMileage reads an annual mileage, defaulting to 12000.
func ParseMileage(s string) int {
	return parseIntOr(s, DefaultAnnualMileage)
}

// ParsePlanType reads "loan" or "lease" (case-insensitive), defaulting to loan.
func ParsePlanType(s string) PlanType {
	if strings.EqualFold(strings.TrimSpace(s), string(PlanLease)) {
		return PlanLease
	}
	return PlanLoan
}
