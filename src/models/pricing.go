package models

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PricingRequest carries the inputs to a closed-form valuation. Constructed by
// the orchestration layer and passed by value; never mutated afterwards.
type PricingRequest struct {
	Symbol         StockSymbol `json:"symbol"`
	Spot           float64     `json:"spot"`
	Strike         float64     `json:"strike"`
	TimeToMaturity float64     `json:"time_to_maturity"` // years
	RiskFreeRate   float64     `json:"risk_free_rate"`
	Volatility     float64     `json:"volatility"`
	OptionType     OptionType  `json:"option_type"`
}

func (r PricingRequest) Validate() error {
	if r.Spot <= 0 {
		return fmt.Errorf("PricingRequest: Validate: %w: spot must be positive, got %v", ErrInvalidInput, r.Spot)
	}

	if r.Strike <= 0 {
		return fmt.Errorf("PricingRequest: Validate: %w: strike must be positive, got %v", ErrInvalidInput, r.Strike)
	}

	if r.TimeToMaturity <= 0 {
		return fmt.Errorf("PricingRequest: Validate: %w: time to maturity must be positive, got %v", ErrInvalidInput, r.TimeToMaturity)
	}

	if r.Volatility <= 0 {
		return fmt.Errorf("PricingRequest: Validate: %w: volatility must be positive, got %v", ErrInvalidInput, r.Volatility)
	}

	if err := r.OptionType.Validate(); err != nil {
		return fmt.Errorf("PricingRequest: Validate: %w", err)
	}

	return nil
}

type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}

// PricingResult echoes the request inputs alongside the computed price.
type PricingResult struct {
	Symbol       StockSymbol `json:"symbol"`
	OptionType   OptionType  `json:"option_type"`
	Spot         float64     `json:"spot"`
	Strike       float64     `json:"strike"`
	DaysToExpiry float64     `json:"days_to_expiry"`
	Volatility   float64     `json:"volatility_pct"`
	RiskFreeRate float64     `json:"risk_free_rate_pct"`
	Price        float64     `json:"price"`
	Greeks       Greeks      `json:"greeks"`
}

func (r *PricingResult) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)

	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	table.SetHeader([]string{"Ticker", "Type", "Spot", "Strike", "Days", "Vol %", "Rate %", "Price"})

	table.Append([]string{
		r.Symbol.String(),
		string(r.OptionType),
		p.Sprintf("$%.2f", r.Spot),
		p.Sprintf("$%.2f", r.Strike),
		p.Sprintf("%.0f", r.DaysToExpiry),
		p.Sprintf("%.2f", r.Volatility),
		p.Sprintf("%.2f", r.RiskFreeRate),
		p.Sprintf("$%.2f", r.Price),
	})

	table.Render()
	return display.String()
}
