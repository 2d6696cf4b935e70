package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls counts tool invocations by outcome.
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autobudget_tool_calls_total",
			Help: "Tool invocations by tool and status",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors counts rejected or failed calculations.
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autobudget_calculation_errors_total",
			Help: "Calculation errors by tool and error type",
		},
		[]string{"tool_name", "error_type"},
	)

	// QuotesComputed counts priced plans.
	QuotesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autobudget_quotes_computed_total",
			Help: "Plan quotes computed by profile and plan type",
		},
		[]string{"profile", "plan_type"},
	)

	// MonthlyPayment observes quoted monthly payments in dollars.
	MonthlyPayment = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "autobudget_monthly_payment_dollars",
			Help:    "Distribution of quoted monthly payments",
			Buckets: []float64{200, 300, 400, 500, 600, 750, 900, 1100, 1500, 2000},
		},
		[]string{"plan_type"},
	)

	// HTTPRequests counts HTTP requests by route and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autobudget_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)
)
