package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quantgrove/option-pricer/src/cmd/price_option/run"
)

var runCmd = &cobra.Command{
	Use:   "price_option --ticker AAPL --strike 180 --expiry 2026-09-18 --type call",
	Short: "Price a European option using historical volatility and Black-Scholes",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		ticker, err := cmd.Flags().GetString("ticker")
		if err != nil {
			log.Fatalf("error getting ticker: %v", err)
		}

		strike, err := cmd.Flags().GetFloat64("strike")
		if err != nil {
			log.Fatalf("error getting strike: %v", err)
		}

		expiry, err := cmd.Flags().GetString("expiry")
		if err != nil {
			log.Fatalf("error getting expiry: %v", err)
		}

		optionType, err := cmd.Flags().GetString("type")
		if err != nil {
			log.Fatalf("error getting type: %v", err)
		}

		rate, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			log.Fatalf("error getting rate: %v", err)
		}

		model, err := cmd.Flags().GetString("model")
		if err != nil {
			log.Fatalf("error getting model: %v", err)
		}

		window, err := cmd.Flags().GetInt("window")
		if err != nil {
			log.Fatalf("error getting window: %v", err)
		}

		result, err := run.Run(context.Background(), run.RunArgs{
			GoEnv:        goEnv,
			Ticker:       ticker,
			Strike:       strike,
			Expiry:       expiry,
			OptionType:   optionType,
			RiskFreeRate: rate,
			Model:        model,
			Window:       window,
		})

		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Println(result.Pricing)
	},
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("ticker", "", "The underlying stock symbol, e.g. AAPL.")
	runCmd.PersistentFlags().Float64("strike", 0, "The option strike price.")
	runCmd.PersistentFlags().String("expiry", "", "The option expiry date, format YYYY-MM-DD.")
	runCmd.PersistentFlags().String("type", "call", "The option type: call or put.")
	runCmd.PersistentFlags().Float64("rate", 0.05, "The annual risk-free rate.")
	runCmd.PersistentFlags().String("model", "BS", "The pricing model. Only BS (Black-Scholes) is supported.")
	runCmd.PersistentFlags().Int("window", -1, "The volatility lookback window in closes. 0 uses the whole series; omit to use the config value.")

	runCmd.MarkPersistentFlagRequired("ticker")
	runCmd.MarkPersistentFlagRequired("strike")
	runCmd.MarkPersistentFlagRequired("expiry")

	runCmd.Execute()
}
