package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeSchemes(t *testing.T) {
	tests := []struct {
		name   string
		scheme FeeScheme
		price  float64
		want   float64
	}{
		{"none", NoFees(), 35000, 0},
		{"flat percent", FlatPercentFees(), 35000, 2800},
		{"percent plus flat", PercentPlusFlatFees(), 35000, 3475},
		{"percent plus flat on zero price", PercentPlusFlatFees(), 0, 0},
		{"negative price", FlatPercentFees(), -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.scheme.TaxesAndFees(tt.price), 1e-9)
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name    string
		msrp    float64
		rebates Rebates
		want    float64
	}{
		{"no rebates", 35000, Rebates{}, 35000},
		{"military", 35000, Rebates{Military: true}, 34500},
		{"college", 35000, Rebates{College: true}, 34500},
		{"both", 35000, Rebates{Military: true, College: true}, 34000},
		{"clamped at zero", 700, Rebates{Military: true, College: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectivePrice(tt.msrp, tt.rebates))
		})
	}
}

func TestPriceLease(t *testing.T) {
	l := PriceLease(35000, 0.0872, 36, LeaseTerms{ResidualPct: 0.5}, 12000, 0)

	assert.Equal(t, 17500.0, l.ResidualValue)
	assert.InDelta(t, 486.11, l.MonthlyDepreciation, 0.005)
	assert.InDelta(t, 381.50, l.MonthlyFinanceCharge, 0.005)
	assert.Zero(t, l.MileageAdjustment)
	assert.InDelta(t, 867.61, l.MonthlyPayment, 0.005)
	assert.InDelta(t, l.MonthlyPayment*36, l.TotalCost, 1e-9)
}

func TestPriceLease_MileageSwitch(t *testing.T) {
	off := PriceLease(35000, 0.0872, 36, LeaseTerms{ResidualPct: 0.55}, 20000, 0)
	on := PriceLease(35000, 0.0872, 36, LeaseTerms{ResidualPct: 0.55, MileageAdjustment: true}, 20000, 0)

	assert.Zero(t, off.MileageAdjustment)
	assert.InDelta(t, 8000*0.25/12, on.MileageAdjustment, 1e-9)
	assert.InDelta(t, on.MileageAdjustment, on.MonthlyPayment-off.MonthlyPayment, 1e-9)
}

func TestPriceLease_ZeroTerm(t *testing.T) {
	l := PriceLease(35000, 0.0872, 0, LeaseTerms{ResidualPct: 0.5}, 12000, 1500)
	assert.Zero(t, l.MonthlyPayment)
	assert.Equal(t, 1500.0, l.TotalCost)
}

func TestMileageSurcharge(t *testing.T) {
	assert.Zero(t, MileageSurcharge(10000))
	assert.Zero(t, MileageSurcharge(12000))
	assert.InDelta(t, 62.5, MileageSurcharge(15000), 1e-9)
}

func TestFinancingTips(t *testing.T) {
	tests := []struct {
		name    string
		profile FinancialProfile
		inputs  PaymentInputs
		quote   PlanQuote
		want    []string
	}{
		{
			name:    "looks good",
			profile: FinancialProfile{CreditScore: 760, AnnualIncome: 120000},
			inputs:  PaymentInputs{DownPayment: 8000, PlanType: PlanLoan, TermLengthMonths: 60},
			quote:   PlanQuote{MSRP: 35000, MonthlyPayment: 600},
			want:    []string{TipLooksGood},
		},
		{
			name:    "all tips in fixed order",
			profile: FinancialProfile{CreditScore: 600, AnnualIncome: 40000},
			inputs:  PaymentInputs{DownPayment: 1000, PlanType: PlanLoan, TermLengthMonths: 84},
			quote:   PlanQuote{MSRP: 35000, MonthlyPayment: 700},
			want:    []string{TipImproveCredit, TipPaymentToIncome, TipLargerDown, TipShorterTerm},
		},
		{
			name:    "no income skips payment ratio",
			profile: FinancialProfile{CreditScore: 700},
			inputs:  PaymentInputs{DownPayment: 7000, PlanType: PlanLoan, TermLengthMonths: 60},
			quote:   PlanQuote{MSRP: 35000, MonthlyPayment: 5000},
			want:    []string{TipLooksGood},
		},
		{
			name:    "long lease has no term tip",
			profile: FinancialProfile{CreditScore: 700},
			inputs:  PaymentInputs{DownPayment: 7000, PlanType: PlanLease, TermLengthMonths: 72},
			quote:   PlanQuote{MSRP: 35000, MonthlyPayment: 500},
			want:    []string{TipLooksGood},
		},
		{
			name:    "exactly twenty percent is fine",
			profile: FinancialProfile{CreditScore: 670, AnnualIncome: 60000},
			inputs:  PaymentInputs{DownPayment: 7000, PlanType: PlanLoan, TermLengthMonths: 60},
			quote:   PlanQuote{MSRP: 35000, MonthlyPayment: 1000},
			want:    []string{TipLooksGood},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FinancingTips(tt.profile, tt.inputs, tt.quote))
		})
	}
}

func TestAffordability(t *testing.T) {
	unknown := Affordability(FinancialProfile{}, PlanQuote{MonthlyPayment: 500}, DefaultPaymentToIncome)
	assert.False(t, unknown.Known)

	ok := Affordability(FinancialProfile{AnnualIncome: 60000}, PlanQuote{MonthlyPayment: 900}, DefaultPaymentToIncome)
	assert.True(t, ok.Known)
	assert.True(t, ok.WithinBudget)
	assert.InDelta(t, 1000, ok.MaxMonthlyPayment, 1e-9)
	assert.Zero(t, ok.Deficit)

	short := Affordability(FinancialProfile{AnnualIncome: 60000}, PlanQuote{MonthlyPayment: 1250}, DefaultPaymentToIncome)
	assert.False(t, short.WithinBudget)
	assert.InDelta(t, 250, short.Deficit, 1e-9)
	assert.InDelta(t, 0.25, short.PaymentToIncome, 1e-9)
}

func TestNormalize(t *testing.T) {
	f, p := Normalize(FinancialProfile{AnnualIncome: -1}, PaymentInputs{
		PlanType:         PlanLease,
		TermLengthMonths: 84,
		AnnualMileage:    25000,
		TradeInValue:     -50,
	})

	assert.Equal(t, DefaultCreditScore, f.CreditScore)
	assert.Zero(t, f.AnnualIncome)
	assert.Equal(t, PlanLease, p.PlanType)
	assert.Equal(t, DefaultTermMonths, p.TermLengthMonths)
	assert.Equal(t, DefaultAnnualMileage, p.AnnualMileage)
	assert.Zero(t, p.TradeInValue)

	_, p = Normalize(FinancialProfile{}, PaymentInputs{PlanType: PlanLoan, TermLengthMonths: 84, AnnualMileage: 10000})
	assert.Equal(t, 84, p.TermLengthMonths)
	assert.Equal(t, 10000, p.AnnualMileage)
}

func TestParseFormInput(t *testing.T) {
	assert.Equal(t, 35000.0, ParseAmount("35,000"))
	assert.Equal(t, 1200.5, ParseAmount(" $1,200.50 "))
	assert.Zero(t, ParseAmount(""))
	assert.Zero(t, ParseAmount("abc"))
	assert.Zero(t, ParseAmount("-40"))

	assert.Equal(t, 700, ParseCreditScore(""))
	assert.Equal(t, 700, ParseCreditScore("n/a"))
	assert.Equal(t, 742, ParseCreditScore("742"))
	assert.Equal(t, 60, ParseTerm("sixty"))
	assert.Equal(t, 36, ParseTerm("36"))
	assert.Equal(t, 12000, ParseMileage(""))
	assert.Equal(t, 15000, ParseMileage("15,000"))
	assert.Equal(t, PlanLease, ParsePlanType("Lease"))
	assert.Equal(t, PlanLoan, ParsePlanType("rent"))
}
