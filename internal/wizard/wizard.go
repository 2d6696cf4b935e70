// Package wizard collects a vehicle, the buyer's finances and the payment
// preferences through a multi-step terminal form.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/cloud-ru/autobudget-go/internal/calculations"
	"github.com/cloud-ru/autobudget-go/internal/catalog"
)

// Result is what the wizard produces.
type Result struct {
	Vehicle   calculations.VehicleSelection
	Financial calculations.FinancialProfile
	Payment   calculations.PaymentInputs
}

// Answers holds the raw form fields. Numbers stay text until Build.
type Answers struct {
	Link        string
	Model       string
	Trim        string
	MSRP        string
	Year        string
	Color       string
	CreditScore string
	Income      string
	DownPayment string
	TradeIn     string
	Military    bool
	College     bool
	Plan        string
	Term        string
	Mileage     string
}

// FromResult prefills answers from earlier inputs.
func FromResult(r Result) Answers {
	a := Answers{
		Model:    r.Vehicle.Model,
		Trim:     r.Vehicle.Trim,
		Year:     r.Vehicle.Year,
		Color:    r.Vehicle.Color,
		Military: r.Payment.Rebates.Military,
		College:  r.Payment.Rebates.College,
		Plan:     string(r.Payment.PlanType),
	}
	if r.Vehicle.MSRP > 0 {
		a.MSRP = strconv.FormatFloat(r.Vehicle.MSRP, 'f', -1, 64)
	}
	if r.Financial.CreditScore > 0 {
		a.CreditScore = strconv.Itoa(r.Financial.CreditScore)
	}
	if r.Financial.AnnualIncome > 0 {
		a.Income = strconv.FormatFloat(r.Financial.AnnualIncome, 'f', -1, 64)
	}
	if r.Payment.DownPayment > 0 {
		a.DownPayment = strconv.FormatFloat(r.Payment.DownPayment, 'f', -1, 64)
	}
	if r.Payment.TradeInValue > 0 {
		a.TradeIn = strconv.FormatFloat(r.Payment.TradeInValue, 'f', -1, 64)
	}
	if r.Payment.TermLengthMonths > 0 {
		a.Term = strconv.Itoa(r.Payment.TermLengthMonths)
	}
	if r.Payment.AnnualMileage > 0 {
		a.Mileage = strconv.Itoa(r.Payment.AnnualMileage)
	}
	return a
}

// Build turns the answers into input records. A configurator link fills the
// model and year; a catalog trim or model fills the price when none was typed.
func (a Answers) Build(cat *catalog.Catalog) (Result, error) {
	if a.Link != "" {
		model, year, err := catalog.ParseConfiguratorLink(a.Link)
		if err != nil {
			return Result{}, err
		}
		a.Model = model
		if year != "" {
			a.Year = year
		}
	}

	var r Result
	msrp := calculations.ParseAmount(a.MSRP)
	switch {
	case msrp > 0:
		r.Vehicle = calculations.VehicleSelection{Model: a.Model, Trim: a.Trim, MSRP: msrp, Year: a.Year, Color: a.Color}
	case a.Model != "" && cat != nil:
		v, err := cat.Selection(a.Model, a.Trim, a.Year, a.Color)
		if err != nil {
			return Result{}, err
		}
		r.Vehicle = v
	default:
		return Result{}, errors.New("a vehicle price or a catalog model is required")
	}
	if r.Vehicle.Year == "" {
		r.Vehicle.Year = catalog.DefaultYear
	}

	r.Financial = calculations.FinancialProfile{
		CreditScore:  calculations.ParseCreditScore(a.CreditScore),
		AnnualIncome: calculations.ParseAmount(a.Income),
	}
	r.Payment = calculations.PaymentInputs{
		DownPayment:      calculations.ParseAmount(a.DownPayment),
		TradeInValue:     calculations.ParseAmount(a.TradeIn),
		Rebates:          calculations.Rebates{Military: a.Military, College: a.College},
		PlanType:         calculations.ParsePlanType(a.Plan),
		TermLengthMonths: calculations.ParseTerm(a.Term),
		AnnualMileage:    calculations.ParseMileage(a.Mileage),
	}
	r.Financial, r.Payment = calculations.Normalize(r.Financial, r.Payment)
	return r, nil
}

func validateAmount(s string) error {
	s = strings.TrimSpace(strings.NewReplacer(",", "", "$", "").Replace(s))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return errors.New("enter a positive amount")
	}
	return nil
}

func validateCreditScore(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < calculations.MinCreditScore || v > calculations.MaxCreditScore {
		return fmt.Errorf("enter a score between %d and %d", calculations.MinCreditScore, calculations.MaxCreditScore)
	}
	return nil
}

func termOptions(plan *string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(calculations.LoanTerms))
	for _, t := range calculations.LoanTerms {
		if calculations.PlanType(*plan) == calculations.PlanLease && t > calculations.MaxLeaseTerm {
			continue
		}
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d months", t), strconv.Itoa(t)))
	}
	return opts
}

func trimOptions(cat *catalog.Catalog, model *string) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("Base", "")}
	trims, err := cat.Trims(*model)
	if err != nil {
		return opts
	}
	for _, t := range trims {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s  $%.0f", t.Name, t.Price), t.Name))
	}
	return opts
}

// NewForm builds the four-step form over a. Submitting fills a in place.
func NewForm(cat *catalog.Catalog, a *Answers) *huh.Form {
	if a.Plan == "" {
		a.Plan = string(calculations.PlanLoan)
	}
	if a.Year == "" {
		a.Year = catalog.DefaultYear
	}

	models := huh.NewOptions(cat.Models()...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Model").
				Options(models...).
				Value(&a.Model),
			huh.NewSelect[string]().
				Title("Trim").
				OptionsFunc(func() []huh.Option[string] { return trimOptions(cat, &a.Model) }, &a.Model).
				Value(&a.Trim),
			huh.NewInput().
				Title("Price override").
				Description("Leave empty to use the trim price").
				Validate(validateAmount).
				Value(&a.MSRP),
			huh.NewInput().Title("Year").Value(&a.Year),
			huh.NewInput().Title("Color").Value(&a.Color),
		).Title("Vehicle"),

		huh.NewGroup(
			huh.NewInput().
				Title("Credit score").
				Placeholder("700").
				Validate(validateCreditScore).
				Value(&a.CreditScore),
			huh.NewInput().
				Title("Annual income").
				Validate(validateAmount).
				Value(&a.Income),
		).Title("Finances"),

		huh.NewGroup(
			huh.NewInput().Title("Down payment").Validate(validateAmount).Value(&a.DownPayment),
			huh.NewInput().Title("Trade-in value").Validate(validateAmount).Value(&a.TradeIn),
			huh.NewConfirm().Title("Military rebate ($500)?").Value(&a.Military),
			huh.NewConfirm().Title("College graduate rebate ($500)?").Value(&a.College),
		).Title("Payment"),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Plan").
				Options(
					huh.NewOption("Finance (loan)", string(calculations.PlanLoan)),
					huh.NewOption("Lease", string(calculations.PlanLease)),
				).
				Value(&a.Plan),
			huh.NewSelect[string]().
				Title("Term").
				OptionsFunc(func() []huh.Option[string] { return termOptions(&a.Plan) }, &a.Plan).
				Value(&a.Term),
			huh.NewSelect[string]().
				Title("Annual mileage").
				Options(
					huh.NewOption("10,000", "10000"),
					huh.NewOption("12,000", "12000"),
					huh.NewOption("15,000", "15000"),
					huh.NewOption("20,000", "20000"),
				).
				Value(&a.Mileage),
		).Title("Plan"),
	)
}

// Run shows the form prefilled from prev and returns the collected inputs.
func Run(cat *catalog.Catalog, prev Result) (Result, error) {
	a := FromResult(prev)
	if err := NewForm(cat, &a).Run(); err != nil {
		return Result{}, fmt.Errorf("wizard: %w", err)
	}
	return a.Build(cat)
}
