package validators

import (
	"fmt"

	"github.com/cloud-ru/autobudget-go/internal/calculations"
	"github.com/cloud-ru/autobudget-go/internal/config"
	"github.com/cloud-ru/autobudget-go/pkg/utils"
)

// ValidateNumber checks that value is finite and within [minInclusive, maxInclusive].
func ValidateNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: value is not a finite number", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: value must be >= %.0f", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: value is too large (>%.0f)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange checks that value is within [minInclusive, maxInclusive].
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: value must be in range [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckMSRP checks the vehicle price.
func CheckMSRP(cfg *config.Config, msrp float64) error {
	return ValidateNumber("msrp", msrp, 0, cfg.MaxPrice)
}

// CheckDownPayment checks the down payment.
func CheckDownPayment(cfg *config.Config, amount float64) error {
	return ValidateNumber("down_payment", amount, 0, cfg.MaxDownPayment)
}

// CheckTradeIn checks the trade-in value.
func CheckTradeIn(cfg *config.Config, amount float64) error {
	return ValidateNumber("trade_in_value", amount, 0, cfg.MaxPrice)
}

// CheckIncome checks the annual income.
func CheckIncome(cfg *config.Config, income float64) error {
	return ValidateNumber("annual_income", income, 0, cfg.MaxIncome)
}

// CheckCreditScore accepts 0 (not provided) or a score in [300, 850].
func CheckCreditScore(score int) error {
	if score == 0 {
		return nil
	}
	return ValidateIntRange("credit_score", score, calculations.MinCreditScore, calculations.MaxCreditScore)
}

// CheckPlanType accepts "", "loan" or "lease".
func CheckPlanType(plan string) error {
	switch calculations.PlanType(plan) {
	case "", calculations.PlanLoan, calculations.PlanLease:
		return nil
	}
	return fmt.Errorf("plan_type: must be %q or %q", calculations.PlanLoan, calculations.PlanLease)
}
