package tools

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/autobudget-go/internal/calculations"
	"github.com/cloud-ru/autobudget-go/internal/catalog"
	"github.com/cloud-ru/autobudget-go/internal/config"
	"github.com/cloud-ru/autobudget-go/internal/metrics"
)

// ToolHandler is a named operation over JSON-like parameters.
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Deps are the collaborators shared by every handler.
type Deps struct {
	Config  *config.Config
	Engine  *calculations.Engine
	Catalog *catalog.Catalog
	Tracer  trace.Tracer
}

// engineFor returns the default engine, or one bound to the named profile.
func (d Deps) engineFor(name string) (*calculations.Engine, error) {
	if name == "" || name == d.Engine.Profile().Name {
		return d.Engine, nil
	}
	profile, err := calculations.ProfileByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return calculations.NewEngine(profile), nil
}

// fail records a failed call on the span and in metrics.
func fail(span trace.Span, toolName string, err error) error {
	kind := "calculation"
	status := "error"
	if errors.Is(err, ErrInvalidParams) {
		kind = "validation"
		status = "validation_error"
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, kind)
	span.SetAttributes(attribute.String("error", kind+"_error"))
	metrics.ToolCalls.WithLabelValues(toolName, status).Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, kind).Inc()
	return err
}

func succeed(span trace.Span, toolName string) {
	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
}

// pricingCall runs the boilerplate shared by the pricing tools: span, input
// parsing, engine selection and input attributes.
func pricingCall(ctx context.Context, d Deps, toolName string, params map[string]interface{},
	run func(trace.Span, *calculations.Engine, Inputs) (interface{}, error)) (interface{}, error) {
	_, span := d.Tracer.Start(ctx, toolName)
	defer span.End()

	in, err := ParseInputs(d.Config, d.Catalog, params)
	if err != nil {
		return nil, fail(span, toolName, err)
	}
	engine, err := d.engineFor(in.Profile)
	if err != nil {
		return nil, fail(span, toolName, err)
	}

	span.SetAttributes(
		attribute.String("profile", engine.Profile().Name),
		attribute.String("vehicle.model", in.Vehicle.Model),
		attribute.Float64("vehicle.msrp", in.Vehicle.MSRP),
		attribute.Int("credit_score", in.Financial.CreditScore),
		attribute.String("plan_type", string(in.Payment.PlanType)),
		attribute.Int("term_months", in.Payment.TermLengthMonths),
	)

	result, err := run(span, engine, in)
	if err != nil {
		return nil, fail(span, toolName, fmt.Errorf("calculation failed: %w", err))
	}
	succeed(span, toolName)
	return result, nil
}

func observe(q calculations.PlanQuote) {
	metrics.QuotesComputed.WithLabelValues(q.Profile, string(q.PlanType)).Inc()
	metrics.MonthlyPayment.WithLabelValues(string(q.PlanType)).Observe(q.MonthlyPayment)
}

// QuotePaymentHandler prices a single plan.
func QuotePaymentHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return pricingCall(ctx, d, "quote_payment", params, func(span trace.Span, e *calculations.Engine, in Inputs) (interface{}, error) {
			q := e.Quote(in.Vehicle, in.Financial, in.Payment)
			observe(q)
			span.SetAttributes(attribute.Float64("monthly_payment", q.MonthlyPayment))
			return q.Rounded(), nil
		})
	}
}

// FinancingPlansHandler prices the loan grid.
func FinancingPlansHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return pricingCall(ctx, d, "financing_plans", params, func(_ trace.Span, e *calculations.Engine, in Inputs) (interface{}, error) {
			quotes := e.FinancingPlans(in.Vehicle, in.Financial, in.Payment)
			for _, q := range quotes {
				observe(q)
			}
			return calculations.RoundQuotes(quotes), nil
		})
	}
}

// LeasingPlansHandler prices the lease grid.
func LeasingPlansHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return pricingCall(ctx, d, "leasing_plans", params, func(_ trace.Span, e *calculations.Engine, in Inputs) (interface{}, error) {
			quotes := e.LeasingPlans(in.Vehicle, in.Financial, in.Payment)
			for _, q := range quotes {
				observe(q)
			}
			return calculations.RoundQuotes(quotes), nil
		})
	}
}

// FinancingTipsHandler returns the quote summary with tips and affordability.
func FinancingTipsHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return pricingCall(ctx, d, "financing_tips", params, func(_ trace.Span, e *calculations.Engine, in Inputs) (interface{}, error) {
			s := e.Summarize(in.Vehicle, in.Financial, in.Payment)
			observe(s.Quote)
			s.Quote = s.Quote.Rounded()
			return s, nil
		})
	}
}

// CompareLoanLeaseHandler prices the inputs both ways.
func CompareLoanLeaseHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return pricingCall(ctx, d, "compare_loan_lease", params, func(_ trace.Span, e *calculations.Engine, in Inputs) (interface{}, error) {
			return e.CompareLoanLease(in.Vehicle, in.Financial, in.Payment), nil
		})
	}
}

// LoanScheduleHandler returns the monthly schedule of the financed amount.
func LoanScheduleHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return pricingCall(ctx, d, "loan_schedule", params, func(_ trace.Span, e *calculations.Engine, in Inputs) (interface{}, error) {
			return e.Schedule(in.Vehicle, in.Financial, in.Payment)
		})
	}
}

// VehicleLookupHandler queries the catalog by model, trim, category or price range.
func VehicleLookupHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "vehicle_lookup"

		_, span := d.Tracer.Start(ctx, toolName)
		defer span.End()

		result, err := lookup(d.Catalog, params)
		if err != nil {
			if errors.Is(err, catalog.ErrModelNotFound) || errors.Is(err, catalog.ErrTrimNotFound) {
				err = fmt.Errorf("%w: %w", ErrInvalidParams, err)
			}
			return nil, fail(span, toolName, err)
		}
		succeed(span, toolName)
		return result, nil
	}
}

func lookup(cat *catalog.Catalog, params map[string]interface{}) (interface{}, error) {
	model, err := str(params, "model")
	if err != nil {
		return nil, err
	}
	trim, err := str(params, "trim")
	if err != nil {
		return nil, err
	}
	category, err := str(params, "category")
	if err != nil {
		return nil, err
	}
	minPrice, hasMin, err := number(params, "min_price")
	if err != nil {
		return nil, err
	}
	maxPrice, hasMax, err := number(params, "max_price")
	if err != nil {
		return nil, err
	}

	switch {
	case model != "" && trim != "":
		return cat.Trim(model, trim)
	case model != "":
		return cat.Model(model)
	case category != "":
		return cat.ByCategory(category), nil
	case hasMin || hasMax:
		if !hasMax {
			maxPrice = math.MaxFloat64
		}
		if minPrice > maxPrice {
			return nil, invalidParam("min_price > max_price")
		}
		return cat.InPriceRange(minPrice, maxPrice), nil
	}
	return cat.Models(), nil
}
