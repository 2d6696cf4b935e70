package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/autobudget-go/internal/calculations"
	"github.com/cloud-ru/autobudget-go/internal/cli"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a single loan or lease",
	RunE:  runQuote,
}

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Compare every financing and leasing term",
	Long:  "Price the financing grid (24-72 months) and the leasing grid (24-60 months at 10k/12k/15k miles). --plan limits the output to one grid.",
	RunE:  runPlans,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a loan and a lease for the same inputs",
	RunE:  runCompare,
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Monthly payment schedule of the financed amount",
	RunE:  runSchedule,
}

func init() {
	rootCmd.AddCommand(quoteCmd, plansCmd, compareCmd, scheduleCmd)
}

func runQuote(cmd *cobra.Command, _ []string) error {
	v, f, p, err := inputs()
	if err != nil {
		return err
	}
	q := state.engine.Quote(v, f, p)
	state.log.Debug("quote computed", "plan", q.PlanType, "term", q.TermMonths, "apr", q.APR)

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), q.Rounded())
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderQuote(v, q))
	return nil
}

func runPlans(cmd *cobra.Command, _ []string) error {
	v, f, p, err := inputs()
	if err != nil {
		return err
	}

	only := ""
	if cmd.Flags().Changed("plan") {
		only = flagPlan
	}
	var loans, leases []calculations.PlanQuote
	if only != string(calculations.PlanLease) {
		loans = state.engine.FinancingPlans(v, f, p)
	}
	if only != string(calculations.PlanLoan) {
		leases = state.engine.LeasingPlans(v, f, p)
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), map[string][]calculations.PlanQuote{
			"financing": calculations.RoundQuotes(loans),
			"leasing":   calculations.RoundQuotes(leases),
		})
	}
	out := cmd.OutOrStdout()
	if len(loans) > 0 {
		fmt.Fprintln(out, cli.RenderPlans("Financing", loans))
	}
	if len(leases) > 0 {
		fmt.Fprintln(out, cli.RenderPlans("Leasing", leases))
	}
	return nil
}

func runCompare(cmd *cobra.Command, _ []string) error {
	v, f, p, err := inputs()
	if err != nil {
		return err
	}
	c := state.engine.CompareLoanLease(v, f, p)
	if flagJSON {
		return printJSON(cmd.OutOrStdout(), c)
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderComparison(c))
	return nil
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	v, f, p, err := inputs()
	if err != nil {
		return err
	}
	s, err := state.engine.Schedule(v, f, p)
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	if flagJSON {
		return printJSON(cmd.OutOrStdout(), s)
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSchedule(s))
	return nil
}
