package run

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantgrove/option-pricer/src/marketdata"
	"github.com/quantgrove/option-pricer/src/models"
	"github.com/quantgrove/option-pricer/src/services"
	"github.com/quantgrove/option-pricer/src/utils"
)

type RunArgs struct {
	GoEnv        string
	Ticker       string
	Strike       float64
	Expiry       string
	OptionType   string
	RiskFreeRate float64
	Model        string
	Window       int // volatility lookback in closes; 0 uses the whole series, negative keeps the config value
}

type RunResult struct {
	Pricing *models.PricingResult
}

func Run(ctx context.Context, args RunArgs) (RunResult, error) {
	projectDir := os.Getenv("PROJECTS_DIR")
	if projectDir == "" {
		projectDir = "."
	}

	if err := utils.InitEnvironmentVariables(projectDir, args.GoEnv); err != nil {
		return RunResult{}, fmt.Errorf("Run: error loading environment variables: %w", err)
	}

	config, err := utils.LoadPricerConfig(filepath.Join(projectDir, "pricer.yaml"))
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: error loading config: %w", err)
	}

	if args.Window >= 0 {
		config.VolatilityWindow = args.Window
	}

	provider, err := marketdata.NewServiceFromConfig(config)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: error creating data provider: %w", err)
	}

	service := services.NewPricingService(provider, config)

	result, err := service.PriceOption(ctx, services.PriceOptionRequest{
		Ticker:       args.Ticker,
		Strike:       args.Strike,
		Expiry:       args.Expiry,
		OptionType:   models.OptionType(args.OptionType),
		RiskFreeRate: args.RiskFreeRate,
		Model:        models.ModelType(args.Model),
	})

	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	return RunResult{Pricing: result}, nil
}
