package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/autobudget-go/internal/catalog"
	"github.com/cloud-ru/autobudget-go/internal/cli"
)

var (
	flagCategory string
	flagMinPrice float64
	flagMaxPrice float64
)

var vehiclesCmd = &cobra.Command{
	Use:   "vehicles [model]",
	Short: "List catalog models, trims and prices",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runVehicles,
}

func init() {
	vehiclesCmd.Flags().StringVar(&flagCategory, "category", "", "Only models of this category (sedan, suv, truck, ...)")
	vehiclesCmd.Flags().Float64Var(&flagMinPrice, "min", 0, "Lowest trim price")
	vehiclesCmd.Flags().Float64Var(&flagMaxPrice, "max", 0, "Highest trim price")
	rootCmd.AddCommand(vehiclesCmd)
}

func runVehicles(cmd *cobra.Command, args []string) error {
	var models []catalog.Model
	switch {
	case len(args) == 1:
		m, err := state.catalog.Model(args[0])
		if err != nil {
			return err
		}
		models = []catalog.Model{m}
	case flagCategory != "":
		models = state.catalog.ByCategory(flagCategory)
	case flagMinPrice > 0 || flagMaxPrice > 0:
		maxPrice := flagMaxPrice
		if maxPrice <= 0 {
			maxPrice = math.MaxFloat64
		}
		models = state.catalog.InPriceRange(flagMinPrice, maxPrice)
	default:
		for _, name := range state.catalog.Models() {
			m, _ := state.catalog.Model(name)
			models = append(models, m)
		}
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), models)
	}
	if len(models) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\n  No vehicles match.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderModels(models))
	return nil
}
