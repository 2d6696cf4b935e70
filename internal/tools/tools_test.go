package tools

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/autobudget-go/internal/calculations"
	"github.com/cloud-ru/autobudget-go/internal/catalog"
	"github.com/cloud-ru/autobudget-go/internal/config"
	"github.com/cloud-ru/autobudget-go/internal/metrics"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewRegistry(Deps{
		Config:  cfg,
		Engine:  calculations.NewEngine(calculations.StandardProfile()),
		Catalog: cat,
		Tracer:  noop.NewTracerProvider().Tracer("test"),
	})
}

func baseParams() map[string]interface{} {
	return map[string]interface{}{
		"msrp":         35000.0,
		"credit_score": 720.0,
		"down_payment": 5000.0,
		"term_months":  60.0,
		"plan_type":    "loan",
	}
}

func TestQuotePayment(t *testing.T) {
	r := newTestRegistry(t)

	res, err := r.Call(context.Background(), "quote_payment", baseParams())
	require.NoError(t, err)

	q, ok := res.(calculations.PlanQuote)
	require.True(t, ok)
	assert.Equal(t, 676.43, q.MonthlyPayment)
	assert.Equal(t, 0.0872, q.APR)
	assert.Equal(t, 2800.0, q.TaxesAndFees)
	assert.Equal(t, "standard", q.Profile)
}

func TestQuotePaymentFromCatalog(t *testing.T) {
	r := newTestRegistry(t)

	res, err := r.Call(context.Background(), "quote_payment", map[string]interface{}{
		"model":        "Camry",
		"trim":         "XSE",
		"credit_score": 720,
	})
	require.NoError(t, err)
	q := res.(calculations.PlanQuote)
	assert.Equal(t, 34700.0, q.MSRP)
	assert.Equal(t, calculations.DefaultTermMonths, q.TermMonths)
}

func TestQuotePaymentProfileOverride(t *testing.T) {
	r := newTestRegistry(t)

	params := baseParams()
	params["profile"] = "comparison"
	res, err := r.Call(context.Background(), "quote_payment", params)
	require.NoError(t, err)
	q := res.(calculations.PlanQuote)
	assert.Equal(t, "comparison", q.Profile)
	assert.Equal(t, 690.35, q.MonthlyPayment)
}

func TestInvalidParams(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{name: "negative msrp", mutate: func(p map[string]interface{}) { p["msrp"] = -1.0 }},
		{name: "msrp as string", mutate: func(p map[string]interface{}) { p["msrp"] = "35000" }},
		{name: "no price source", mutate: func(p map[string]interface{}) { delete(p, "msrp") }},
		{name: "credit score out of range", mutate: func(p map[string]interface{}) { p["credit_score"] = 900.0 }},
		{name: "negative down payment", mutate: func(p map[string]interface{}) { p["down_payment"] = -10.0 }},
		{name: "unknown plan type", mutate: func(p map[string]interface{}) { p["plan_type"] = "balloon" }},
		{name: "military not bool", mutate: func(p map[string]interface{}) { p["military"] = "yes" }},
		{name: "unknown profile", mutate: func(p map[string]interface{}) { p["profile"] = "dealer" }},
		{name: "unknown model", mutate: func(p map[string]interface{}) {
			delete(p, "msrp")
			p["model"] = "Supra"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := baseParams()
			tt.mutate(params)
			_, err := r.Call(context.Background(), "quote_payment", params)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestPlanGrids(t *testing.T) {
	r := newTestRegistry(t)

	res, err := r.Call(context.Background(), "financing_plans", baseParams())
	require.NoError(t, err)
	loans := res.([]calculations.PlanQuote)
	require.Len(t, loans, 5)
	assert.Equal(t, 1494.25, loans[0].MonthlyPayment)
	assert.Equal(t, 603.03, loans[4].MonthlyPayment)

	res, err = r.Call(context.Background(), "leasing_plans", baseParams())
	require.NoError(t, err)
	leases := res.([]calculations.PlanQuote)
	assert.Len(t, leases, 12)
	for _, q := range leases {
		assert.Equal(t, calculations.PlanLease, q.PlanType)
	}
}

func TestCompareAndSchedule(t *testing.T) {
	r := newTestRegistry(t)

	res, err := r.Call(context.Background(), "compare_loan_lease", baseParams())
	require.NoError(t, err)
	cmp := res.(calculations.LoanLeaseComparison)
	assert.Equal(t, 676.43, cmp.Loan.MonthlyPayment)
	assert.Equal(t, 673.17, cmp.Lease.MonthlyPayment)

	res, err = r.Call(context.Background(), "loan_schedule", baseParams())
	require.NoError(t, err)
	sched := res.(*calculations.ScheduleResult)
	assert.Len(t, sched.Schedule, 60)
	assert.Equal(t, 676.43, sched.Summary.MonthlyPayment)
}

func TestFinancingTips(t *testing.T) {
	r := newTestRegistry(t)

	params := baseParams()
	params["annual_income"] = 30000.0
	res, err := r.Call(context.Background(), "financing_tips", params)
	require.NoError(t, err)
	s := res.(calculations.Summary)
	assert.Contains(t, s.Tips, calculations.TipPaymentToIncome)
	assert.True(t, s.Affordability.Known)
	assert.False(t, s.Affordability.WithinBudget)
}

func TestVehicleLookup(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	res, err := r.Call(ctx, "vehicle_lookup", nil)
	require.NoError(t, err)
	assert.Len(t, res.([]string), 10)

	res, err = r.Call(ctx, "vehicle_lookup", map[string]interface{}{"model": "RAV4", "trim": "XLE"})
	require.NoError(t, err)
	assert.Equal(t, 30445.0, res.(catalog.Trim).Price)

	res, err = r.Call(ctx, "vehicle_lookup", map[string]interface{}{"category": "minivan"})
	require.NoError(t, err)
	assert.Len(t, res.([]catalog.Model), 1)

	res, err = r.Call(ctx, "vehicle_lookup", map[string]interface{}{"max_price": 25000.0})
	require.NoError(t, err)
	assert.Len(t, res.([]catalog.Model), 2)

	_, err = r.Call(ctx, "vehicle_lookup", map[string]interface{}{"model": "Supra"})
	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.ErrorIs(t, err, catalog.ErrModelNotFound)

	_, err = r.Call(ctx, "vehicle_lookup", map[string]interface{}{"min_price": 50000.0, "max_price": 1000.0})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestUnknownTool(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Call(context.Background(), "deposit_schedule", nil)
	assert.ErrorIs(t, err, ErrUnknownTool)
	assert.Contains(t, r.Names(), "quote_payment")
	assert.Len(t, r.Names(), 7)
}

func TestMetricsRecorded(t *testing.T) {
	r := newTestRegistry(t)
	ok := metrics.ToolCalls.WithLabelValues("loan_schedule", "success")
	invalid := metrics.ToolCalls.WithLabelValues("loan_schedule", "validation_error")
	beforeOK, beforeInvalid := testutil.ToFloat64(ok), testutil.ToFloat64(invalid)

	_, err := r.Call(context.Background(), "loan_schedule", baseParams())
	require.NoError(t, err)
	_, err = r.Call(context.Background(), "loan_schedule", map[string]interface{}{"msrp": -1.0})
	require.Error(t, err)

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(ok))
	assert.Equal(t, beforeInvalid+1, testutil.ToFloat64(invalid))
}
