package services

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/quantgrove/option-pricer/src/indicators"
	"github.com/quantgrove/option-pricer/src/marketdata"
	"github.com/quantgrove/option-pricer/src/models"
	"github.com/quantgrove/option-pricer/src/pricing"
)

const fetchTimeout = 30 * time.Second

type PriceOptionRequest struct {
	Ticker       string
	Strike       float64
	Expiry       string // ISO 8601 date, e.g. 2026-12-18
	OptionType   models.OptionType
	RiskFreeRate float64
	Model        models.ModelType
}

// PricingService wires the data provider, the volatility estimator and the
// closed-form pricer together.
type PricingService struct {
	marketData marketdata.Service
	config     *models.PricerConfigYAML
	now        func() time.Time
}

func NewPricingService(marketData marketdata.Service, config *models.PricerConfigYAML) *PricingService {
	if config == nil {
		config = models.DefaultPricerConfig()
	}

	return &PricingService{
		marketData: marketData,
		config:     config,
		now:        time.Now,
	}
}

// SetClock overrides the wall clock, for tests.
func (s *PricingService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *PricingService) Config() *models.PricerConfigYAML {
	return s.config
}

func (s *PricingService) PriceOption(ctx context.Context, req PriceOptionRequest) (*models.PricingResult, error) {
	symbol, err := models.NewStockSymbol(req.Ticker)
	if err != nil {
		return nil, fmt.Errorf("PriceOption: %w", err)
	}

	model := req.Model
	if model == "" {
		model = models.ModelTypeBlackScholes
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("PriceOption: %w", err)
	}

	if err := req.OptionType.Validate(); err != nil {
		return nil, fmt.Errorf("PriceOption: %w", err)
	}

	expiry, err := time.Parse("2006-01-02", req.Expiry)
	if err != nil {
		return nil, fmt.Errorf("PriceOption: failed to parse expiry date %s: %w", req.Expiry, err)
	}

	now := s.now()
	days := expiry.Sub(now).Hours() / 24
	timeToMaturity := days / 365

	if timeToMaturity <= 0 {
		return nil, fmt.Errorf("PriceOption: %w: %s", models.ErrInvalidExpiry, req.Expiry)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	from := now.AddDate(0, 0, -s.config.LookbackDays)

	series, err := s.marketData.FetchCandles(fetchCtx, symbol, from, now)
	if err != nil {
		return nil, fmt.Errorf("PriceOption: failed to fetch candles: %w", err)
	}

	spot, err := series.LastClose()
	if err != nil {
		return nil, fmt.Errorf("PriceOption: %w", err)
	}

	estimator := indicators.NewHistoricalVolatility(s.config.VolatilityWindow, s.config.TradingDaysPerYear)

	volatility, err := estimator.Estimate(series)
	if err != nil {
		return nil, fmt.Errorf("PriceOption: failed to estimate volatility: %w", err)
	}

	log.Infof("pricing %s %s: spot=%.2f strike=%.2f T=%.4f vol=%.4f rate=%.4f", symbol, req.OptionType, spot, req.Strike, timeToMaturity, volatility, req.RiskFreeRate)

	pricingReq := models.PricingRequest{
		Symbol:         symbol,
		Spot:           spot,
		Strike:         req.Strike,
		TimeToMaturity: timeToMaturity,
		RiskFreeRate:   req.RiskFreeRate,
		Volatility:     volatility,
		OptionType:     req.OptionType,
	}

	price, greeks, err := pricing.BlackScholes(pricingReq)
	if err != nil {
		return nil, fmt.Errorf("PriceOption: %w", err)
	}

	return &models.PricingResult{
		Symbol:       symbol,
		OptionType:   req.OptionType,
		Spot:         roundTo(spot, 2),
		Strike:       req.Strike,
		DaysToExpiry: math.Round(days),
		Volatility:   roundTo(volatility*100, 2),
		RiskFreeRate: roundTo(req.RiskFreeRate*100, 2),
		Price:        roundTo(price, 2),
		Greeks:       greeks,
	}, nil
}

func roundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
