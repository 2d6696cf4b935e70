package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/autobudget-go/internal/cli"
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Financing tips and affordability for the inputs",
	RunE:  runTips,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Plan summary with quote, tips and affordability",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(tipsCmd, summaryCmd)
}

func runTips(cmd *cobra.Command, _ []string) error {
	v, f, p, err := inputs()
	if err != nil {
		return err
	}
	s := state.engine.Summarize(v, f, p)
	if flagJSON {
		return printJSON(cmd.OutOrStdout(), map[string]interface{}{
			"tips":          s.Tips,
			"affordability": s.Affordability,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTips(s.Tips, s.Affordability))
	return nil
}

func runSummary(cmd *cobra.Command, _ []string) error {
	v, f, p, err := inputs()
	if err != nil {
		return err
	}
	s := state.engine.Summarize(v, f, p)
	if flagJSON {
		s.Quote = s.Quote.Rounded()
		return printJSON(cmd.OutOrStdout(), s)
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(s))
	return nil
}
