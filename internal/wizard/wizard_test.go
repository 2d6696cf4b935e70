package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-ru/autobudget-go/internal/calculations"
	"github.com/cloud-ru/autobudget-go/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func TestBuild(t *testing.T) {
	cat := testCatalog(t)

	tests := []struct {
		name    string
		answers Answers
		want    Result
		wantErr bool
	}{
		{
			name: "catalog trim with form strings",
			answers: Answers{
				Model:       "RAV4",
				Trim:        "XLE",
				CreditScore: "720",
				Income:      "85,000",
				DownPayment: "$3,000",
				Military:    true,
				Plan:        "lease",
				Term:        "36",
				Mileage:     "15000",
			},
			want: Result{
				Vehicle:   calculations.VehicleSelection{Model: "RAV4", Trim: "XLE", MSRP: 30445, Year: catalog.DefaultYear},
				Financial: calculations.FinancialProfile{CreditScore: 720, AnnualIncome: 85000},
				Payment: calculations.PaymentInputs{
					DownPayment:      3000,
					Rebates:          calculations.Rebates{Military: true},
					PlanType:         calculations.PlanLease,
					TermLengthMonths: 36,
					AnnualMileage:    15000,
				},
			},
		},
		{
			name:    "typed price and defaults",
			answers: Answers{MSRP: "35000", Year: "2025", CreditScore: "abc", Term: "84", Plan: "lease"},
			want: Result{
				Vehicle:   calculations.VehicleSelection{MSRP: 35000, Year: "2025"},
				Financial: calculations.FinancialProfile{CreditScore: 700},
				Payment: calculations.PaymentInputs{
					PlanType:         calculations.PlanLease,
					TermLengthMonths: 60,
					AnnualMileage:    12000,
				},
			},
		},
		{
			name:    "configurator link",
			answers: Answers{Link: "https://www.toyota.com/configurator/build/year/2025/series/tacoma"},
			want: Result{
				Vehicle:   calculations.VehicleSelection{Model: "Tacoma", MSRP: 31590, Year: "2025"},
				Financial: calculations.FinancialProfile{CreditScore: 700},
				Payment: calculations.PaymentInputs{
					PlanType:         calculations.PlanLoan,
					TermLengthMonths: 60,
					AnnualMileage:    12000,
				},
			},
		},
		{name: "nothing to price", answers: Answers{}, wantErr: true},
		{name: "unknown model", answers: Answers{Model: "Supra"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.answers.Build(cat)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromResultRoundTrip(t *testing.T) {
	cat := testCatalog(t)
	in := Result{
		Vehicle:   calculations.VehicleSelection{Model: "Camry", Trim: "SE", MSRP: 31000, Year: "2026", Color: "Red"},
		Financial: calculations.FinancialProfile{CreditScore: 680, AnnualIncome: 60000},
		Payment: calculations.PaymentInputs{
			DownPayment:      2500.5,
			TradeInValue:     4000,
			Rebates:          calculations.Rebates{College: true},
			PlanType:         calculations.PlanLoan,
			TermLengthMonths: 48,
			AnnualMileage:    12000,
		},
	}

	out, err := FromResult(in).Build(cat)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateAmount(""))
	assert.NoError(t, validateAmount("$1,200.50"))
	assert.Error(t, validateAmount("-5"))
	assert.Error(t, validateAmount("lots"))

	assert.NoError(t, validateCreditScore(""))
	assert.NoError(t, validateCreditScore("850"))
	assert.Error(t, validateCreditScore("299"))
	assert.Error(t, validateCreditScore("abc"))
}

func TestTermOptions(t *testing.T) {
	loan := string(calculations.PlanLoan)
	lease := string(calculations.PlanLease)
	assert.Len(t, termOptions(&loan), 6)
	assert.Len(t, termOptions(&lease), 5)

	cat := testCatalog(t)
	model := "Camry"
	assert.Len(t, trimOptions(cat, &model), 5)
	unknown := "Supra"
	assert.Len(t, trimOptions(cat, &unknown), 1)
}

func TestNewFormPrefillsDefaults(t *testing.T) {
	a := Answers{}
	form := NewForm(testCatalog(t), &a)
	assert.NotNil(t, form)
	assert.Equal(t, "loan", a.Plan)
	assert.Equal(t, catalog.DefaultYear, a.Year)
}
