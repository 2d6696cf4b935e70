package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/autobudget-go/internal/calculations"
	"github.com/cloud-ru/autobudget-go/internal/catalog"
	"github.com/cloud-ru/autobudget-go/internal/config"
	"github.com/cloud-ru/autobudget-go/internal/logging"
	"github.com/cloud-ru/autobudget-go/internal/validators"
)

var (
	flagModel       string
	flagTrim        string
	flagYear        string
	flagColor       string
	flagLink        string
	flagMSRP        float64
	flagCreditScore int
	flagIncome      float64
	flagDown        float64
	flagTradeIn     float64
	flagMilitary    bool
	flagCollege     bool
	flagPlan        string
	flagTerm        int
	flagMileage     int
	flagProfile     string
	flagJSON        bool
)

// app is the state shared by every command, set up before each run.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	catalog *catalog.Catalog
	engine  *calculations.Engine
}

var state app

var rootCmd = &cobra.Command{
	Use:               "autobudget",
	Short:             "Car payment and lease calculator",
	Long:              "Price vehicle loans and leases from credit score, down payment, trade-in and rebates.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagModel, "model", "m", "", "Vehicle model from the catalog")
	pf.StringVarP(&flagTrim, "trim", "t", "", "Trim level of the model")
	pf.StringVar(&flagYear, "year", "", "Model year (default "+catalog.DefaultYear+")")
	pf.StringVar(&flagColor, "color", "", "Exterior color")
	pf.StringVar(&flagLink, "link", "", "Configurator link to read the model and year from")
	pf.Float64Var(&flagMSRP, "msrp", 0, "Vehicle price; overrides the catalog price")
	pf.IntVarP(&flagCreditScore, "credit-score", "c", 0, "Credit score 300-850 (default 700)")
	pf.Float64Var(&flagIncome, "income", 0, "Annual income for affordability checks")
	pf.Float64VarP(&flagDown, "down", "d", 0, "Down payment")
	pf.Float64Var(&flagTradeIn, "trade-in", 0, "Trade-in value (loans only)")
	pf.BoolVar(&flagMilitary, "military", false, "Apply the military rebate")
	pf.BoolVar(&flagCollege, "college", false, "Apply the college graduate rebate")
	pf.StringVar(&flagPlan, "plan", "loan", "Plan type: loan or lease")
	pf.IntVar(&flagTerm, "term", calculations.DefaultTermMonths, "Term in months")
	pf.IntVar(&flagMileage, "mileage", calculations.DefaultAnnualMileage, "Annual mileage (leases)")
	pf.StringVarP(&flagProfile, "profile", "p", "", "Pricing profile: simple, standard or comparison")
	pf.BoolVar(&flagJSON, "json", false, "Print JSON instead of tables")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagProfile != "" {
		cfg.PricingProfile = flagProfile
		cfg.ProfileFile = ""
	}

	log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	profile, err := cfg.Profile()
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return err
	}

	state = app{
		cfg:     cfg,
		log:     log,
		catalog: cat,
		engine:  calculations.NewEngine(profile),
	}
	log.Debug("configured", "profile", profile.Name, "models", len(cat.Models()))
	return nil
}

// inputs builds the three input records from the persistent flags.
func inputs() (calculations.VehicleSelection, calculations.FinancialProfile, calculations.PaymentInputs, error) {
	var (
		v calculations.VehicleSelection
		f calculations.FinancialProfile
		p calculations.PaymentInputs
	)

	model, year := flagModel, flagYear
	if flagLink != "" {
		m, y, err := catalog.ParseConfiguratorLink(flagLink)
		if err != nil {
			return v, f, p, err
		}
		model = m
		if year == "" {
			year = y
		}
	}

	switch {
	case flagMSRP > 0:
		if year == "" {
			year = catalog.DefaultYear
		}
		v = calculations.VehicleSelection{Model: model, Trim: flagTrim, MSRP: flagMSRP, Year: year, Color: flagColor}
	case model != "":
		var err error
		if v, err = state.catalog.Selection(model, flagTrim, year, flagColor); err != nil {
			return v, f, p, err
		}
	default:
		return v, f, p, errors.New("set --msrp, --model or --link")
	}

	cfg := state.cfg
	for _, err := range []error{
		validators.CheckMSRP(cfg, v.MSRP),
		validators.CheckCreditScore(flagCreditScore),
		validators.CheckIncome(cfg, flagIncome),
		validators.CheckDownPayment(cfg, flagDown),
		validators.CheckTradeIn(cfg, flagTradeIn),
		validators.CheckPlanType(flagPlan),
	} {
		if err != nil {
			return v, f, p, err
		}
	}

	f = calculations.FinancialProfile{CreditScore: flagCreditScore, AnnualIncome: flagIncome}
	p = calculations.PaymentInputs{
		DownPayment:      flagDown,
		TradeInValue:     flagTradeIn,
		Rebates:          calculations.Rebates{Military: flagMilitary, College: flagCollege},
		PlanType:         calculations.PlanType(flagPlan),
		TermLengthMonths: flagTerm,
		AnnualMileage:    flagMileage,
	}
	return v, f, p, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
