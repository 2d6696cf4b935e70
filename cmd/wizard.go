package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/autobudget-go/internal/cli"
	"github.com/cloud-ru/autobudget-go/internal/wizard"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Step through vehicle, finances, payment and plan interactively",
	RunE:  runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, _ []string) error {
	// Flags that resolve to a complete selection prefill the form.
	var prev wizard.Result
	if v, f, p, err := inputs(); err == nil {
		prev = wizard.Result{Vehicle: v, Financial: f, Payment: p}
	}

	r, err := wizard.Run(state.catalog, prev)
	if err != nil {
		return err
	}
	s := state.engine.Summarize(r.Vehicle, r.Financial, r.Payment)
	if flagJSON {
		s.Quote = s.Quote.Rounded()
		return printJSON(cmd.OutOrStdout(), s)
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(s))
	return nil
}
