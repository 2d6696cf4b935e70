package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloud-ru/autobudget-go/internal/calculations"
	"github.com/cloud-ru/autobudget-go/internal/catalog"
	"github.com/cloud-ru/autobudget-go/internal/config"
	"github.com/cloud-ru/autobudget-go/internal/validators"
)

// ErrInvalidParams marks a request whose parameters are missing, ill-typed or
// out of range.
var ErrInvalidParams = errors.New("invalid parameters")

func invalidParam(name string) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, name)
}

func number(params map[string]interface{}, name string) (float64, bool, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false, invalidParam(name)
		}
		return f, true, nil
	}
	return 0, false, invalidParam(name)
}

func integer(params map[string]interface{}, name string) (int, bool, error) {
	f, ok, err := number(params, name)
	return int(f), ok, err
}

func str(params map[string]interface{}, name string) (string, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalidParam(name)
	}
	return s, nil
}

func boolean(params map[string]interface{}, name string) (bool, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, invalidParam(name)
	}
	return b, nil
}

// Inputs is the parsed form of a pricing request.
type Inputs struct {
	Vehicle   calculations.VehicleSelection
	Financial calculations.FinancialProfile
	Payment   calculations.PaymentInputs
	Profile   string
}

// ParseInputs builds the three input records from tool parameters. When no
// msrp is given the price comes from the catalog model and trim.
func ParseInputs(cfg *config.Config, cat *catalog.Catalog, params map[string]interface{}) (Inputs, error) {
	var in Inputs

	model, err := str(params, "model")
	if err != nil {
		return in, err
	}
	trim, err := str(params, "trim")
	if err != nil {
		return in, err
	}
	year, err := str(params, "year")
	if err != nil {
		return in, err
	}
	color, err := str(params, "color")
	if err != nil {
		return in, err
	}
	msrp, hasMSRP, err := number(params, "msrp")
	if err != nil {
		return in, err
	}

	switch {
	case hasMSRP:
		in.Vehicle = calculations.VehicleSelection{Model: model, Trim: trim, MSRP: msrp, Year: year, Color: color}
	case model != "" && cat != nil:
		in.Vehicle, err = cat.Selection(model, trim, year, color)
		if err != nil {
			return in, fmt.Errorf("%w: %w", ErrInvalidParams, err)
		}
	default:
		return in, invalidParam("msrp or model")
	}
	if err := validators.CheckMSRP(cfg, in.Vehicle.MSRP); err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	if in.Financial.CreditScore, _, err = integer(params, "credit_score"); err != nil {
		return in, err
	}
	if err := validators.CheckCreditScore(in.Financial.CreditScore); err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	if in.Financial.AnnualIncome, _, err = number(params, "annual_income"); err != nil {
		return in, err
	}
	if err := validators.CheckIncome(cfg, in.Financial.AnnualIncome); err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	if in.Payment.DownPayment, _, err = number(params, "down_payment"); err != nil {
		return in, err
	}
	if err := validators.CheckDownPayment(cfg, in.Payment.DownPayment); err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	if in.Payment.TradeInValue, _, err = number(params, "trade_in_value"); err != nil {
		return in, err
	}
	if err := validators.CheckTradeIn(cfg, in.Payment.TradeInValue); err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	if in.Payment.Rebates.Military, err = boolean(params, "military"); err != nil {
		return in, err
	}
	if in.Payment.Rebates.College, err = boolean(params, "college"); err != nil {
		return in, err
	}
	plan, err := str(params, "plan_type")
	if err != nil {
		return in, err
	}
	if err := validators.CheckPlanType(plan); err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	in.Payment.PlanType = calculations.PlanType(plan)
	if in.Payment.TermLengthMonths, _, err = integer(params, "term_months"); err != nil {
		return in, err
	}
	if in.Payment.AnnualMileage, _, err = integer(params, "annual_mileage"); err != nil {
		return in, err
	}

	if in.Profile, err = str(params, "profile"); err != nil {
		return in, err
	}
	return in, nil
}
