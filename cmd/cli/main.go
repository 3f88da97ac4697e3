package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"stockportfolio/cmd"
	"stockportfolio/internal/app"

	"github.com/spf13/cobra"
)

// dev tool: compute a portfolio from the terminal without standing up
// the API

var (
	investment    float64
	strategies    []string
	splitEqually  bool
	splitStrategy bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Compute a simulated portfolio for the given strategies",
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}

		result, err := apiHandler.PortfolioHandler.ComputePortfolio(context.Background(), app.ComputePortfolioInput{
			Investment:    investment,
			Strategies:    strategies,
			SplitEqually:  splitEqually,
			SplitStrategy: splitStrategy,
		})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func main() {
	rootCmd.Flags().Float64Var(&investment, "investment", 10000, "investment amount in USD")
	rootCmd.Flags().StringSliceVar(&strategies, "strategies", []string{"Quality Investing"}, "one or two strategy names")
	rootCmd.Flags().BoolVar(&splitEqually, "split-equally", true, "split evenly across instruments instead of randomizing")
	rootCmd.Flags().BoolVar(&splitStrategy, "split-strategy", true, "split evenly across strategies instead of randomizing")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
