package models

import "fmt"

// PricerConfigYAML holds the application defaults loaded from pricer.yaml.
type PricerConfigYAML struct {
	RiskFreeRate       float64 `yaml:"riskFreeRate"`
	VolatilityWindow   int     `yaml:"volatilityWindow"`
	TradingDaysPerYear int     `yaml:"tradingDaysPerYear"`
	DataProvider       string  `yaml:"dataProvider"`
	LookbackDays       int     `yaml:"lookbackDays"`
}

func (c *PricerConfigYAML) Validate() error {
	if c.VolatilityWindow < 0 {
		return fmt.Errorf("PricerConfigYAML: Validate: volatilityWindow cannot be negative")
	}

	if c.TradingDaysPerYear <= 0 {
		return fmt.Errorf("PricerConfigYAML: Validate: tradingDaysPerYear must be positive")
	}

	if c.LookbackDays <= 0 {
		return fmt.Errorf("PricerConfigYAML: Validate: lookbackDays must be positive")
	}

	return nil
}

func DefaultPricerConfig() *PricerConfigYAML {
	return &PricerConfigYAML{
		RiskFreeRate:       0.05,
		VolatilityWindow:   0,
		TradingDaysPerYear: 252,
		DataProvider:       "polygon",
		LookbackDays:       365,
	}
}
