package calculations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnuitySchedule(t *testing.T) {
	tests := []struct {
		name         string
		principal    float64
		apr          float64
		months       int
		wantError    bool
		checkSummary func(*testing.T, *ScheduleResult)
	}{
		{
			name:      "basic annuity",
			principal: 32800,
			apr:       0.0872,
			months:    60,
			checkSummary: func(t *testing.T, result *ScheduleResult) {
				require.NotNil(t, result)
				assert.Len(t, result.Schedule, 60)
				assert.Equal(t, 32800.0, result.Summary.Principal)
				assert.Equal(t, 676.43, result.Summary.MonthlyPayment)
				assert.Greater(t, result.Summary.TotalPaid, result.Summary.Principal)

				last := result.Schedule[len(result.Schedule)-1]
				assert.Zero(t, last.RemainingPrincipal)
				assert.InDelta(t, 32800, last.CumulativePrincipal, 0.01)
			},
		},
		{
			name:      "zero rate",
			principal: 12000,
			apr:       0,
			months:    12,
			checkSummary: func(t *testing.T, result *ScheduleResult) {
				assert.Equal(t, 1000.0, result.Summary.MonthlyPayment)
				assert.Zero(t, result.Summary.TotalInterest)
				for _, e := range result.Schedule {
					assert.Zero(t, e.Interest)
					assert.Equal(t, 1000.0, e.Payment)
				}
			},
		},
		{
			name:      "fully paid",
			principal: 0,
			apr:       0.05,
			months:    24,
			checkSummary: func(t *testing.T, result *ScheduleResult) {
				assert.Zero(t, result.Summary.MonthlyPayment)
				assert.Zero(t, result.Summary.TotalPaid)
				assert.Len(t, result.Schedule, 24)
			},
		},
		{
			name:      "zero months",
			principal: 1000,
			apr:       0.05,
			months:    0,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AnnuitySchedule(tt.principal, tt.apr, tt.months)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.checkSummary != nil {
				tt.checkSummary(t, result)
			}
		})
	}
}

func TestMonthlyPayment(t *testing.T) {
	assert.InDelta(t, 676.43, MonthlyPayment(32800, 0.0872, 60), 0.005)
	assert.InDelta(t, 552.36, MonthlyPayment(30000, 0.0399, 60), 0.005)
	assert.Zero(t, MonthlyPayment(-5, 0.05, 60))
	assert.Zero(t, MonthlyPayment(1000, 0.05, 0))
}

func TestAmortize_ZeroRateIsExactSplit(t *testing.T) {
	for _, p := range []float64{1, 999.99, 12000, 32800, 47123.45} {
		for _, n := range []int{24, 36, 48, 60, 72, 84} {
			a := Amortize(p, 0, n, 0)
			assert.Equal(t, p/float64(n), a.MonthlyPayment, "P=%v n=%d", p, n)
			assert.InDelta(t, 0, a.TotalInterest, 1e-9)
		}
	}
}

func TestAmortize_InterestRoundTrip(t *testing.T) {
	for _, p := range []float64{500, 18000, 32800, 90000} {
		for _, apr := range []float64{0.0299, 0.0872, 0.1247, 0.18} {
			for _, n := range []int{24, 36, 48, 60, 72, 84} {
				a := Amortize(p, apr, n, 0)
				assert.InDelta(t, a.MonthlyPayment*float64(n), a.TotalInterest+p, 1e-6)
				assert.Greater(t, a.TotalInterest, 0.0)
			}
		}
	}
}

func TestAmortize_NegativeFinancedIsFullyPaid(t *testing.T) {
	a := Amortize(-2500, 0.0872, 60, 40000)
	assert.Zero(t, a.FinancedAmount)
	assert.Zero(t, a.MonthlyPayment)
	assert.Zero(t, a.TotalInterest)
	assert.Equal(t, 40000.0, a.TotalCost)
	assert.False(t, math.IsNaN(a.MonthlyPayment))
}
