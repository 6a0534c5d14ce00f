package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgrove/option-pricer/src/marketdata"
	"github.com/quantgrove/option-pricer/src/models"
)

func fixtureSeries(symbol models.StockSymbol, end time.Time, closes ...float64) *models.PriceSeries {
	candles := make([]*models.Candle, 0, len(closes))
	for i, c := range closes {
		candles = append(candles, &models.Candle{
			Timestamp: end.AddDate(0, 0, i-len(closes)+1),
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
			Volume:    1000,
		})
	}

	return &models.PriceSeries{
		Symbol:  symbol,
		Candles: candles,
	}
}

func newFixtureService(t *testing.T, now time.Time) *PricingService {
	t.Helper()

	provider := marketdata.NewInMemoryService(nil)
	provider.Add(fixtureSeries("AAPL", now, 100, 110, 100, 110, 100, 110, 100))
	provider.Add(fixtureSeries("THIN", now, 100))

	svc := NewPricingService(provider, models.DefaultPricerConfig())
	svc.SetClock(func() time.Time { return now })

	return svc
}

func TestPriceOption(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	svc := newFixtureService(t, now)
	ctx := context.Background()

	t.Run("prices a call end to end", func(t *testing.T) {
		result, err := svc.PriceOption(ctx, PriceOptionRequest{
			Ticker:       "aapl",
			Strike:       105,
			Expiry:       "2026-02-14",
			OptionType:   models.OptionTypeCall,
			RiskFreeRate: 0.05,
		})
		require.NoError(t, err)

		assert.Equal(t, models.StockSymbol("AAPL"), result.Symbol)
		assert.Equal(t, models.OptionTypeCall, result.OptionType)
		assert.Equal(t, 100.0, result.Spot)
		assert.Equal(t, 105.0, result.Strike)
		assert.InDelta(t, 30.0, result.DaysToExpiry, 1.0)
		assert.Equal(t, 5.0, result.RiskFreeRate)
		assert.Greater(t, result.Volatility, 0.0)
		assert.Greater(t, result.Price, 0.0)
		assert.Greater(t, result.Greeks.Delta, 0.0)
	})

	t.Run("put costs more than call when strike is above spot", func(t *testing.T) {
		call, err := svc.PriceOption(ctx, PriceOptionRequest{
			Ticker:       "AAPL",
			Strike:       120,
			Expiry:       "2026-02-14",
			OptionType:   models.OptionTypeCall,
			RiskFreeRate: 0.05,
		})
		require.NoError(t, err)

		put, err := svc.PriceOption(ctx, PriceOptionRequest{
			Ticker:       "AAPL",
			Strike:       120,
			Expiry:       "2026-02-14",
			OptionType:   models.OptionTypePut,
			RiskFreeRate: 0.05,
		})
		require.NoError(t, err)

		assert.Greater(t, put.Price, call.Price)
	})

	t.Run("expiry in the past is rejected", func(t *testing.T) {
		_, err := svc.PriceOption(ctx, PriceOptionRequest{
			Ticker:       "AAPL",
			Strike:       105,
			Expiry:       "2025-12-31",
			OptionType:   models.OptionTypeCall,
			RiskFreeRate: 0.05,
		})
		assert.ErrorIs(t, err, models.ErrInvalidExpiry)
	})

	t.Run("malformed expiry is rejected", func(t *testing.T) {
		_, err := svc.PriceOption(ctx, PriceOptionRequest{
			Ticker:       "AAPL",
			Strike:       105,
			Expiry:       "next friday",
			OptionType:   models.OptionTypeCall,
			RiskFreeRate: 0.05,
		})
		assert.Error(t, err)
	})

	t.Run("unknown ticker yields no data found", func(t *testing.T) {
		_, err := svc.PriceOption(ctx, PriceOptionRequest{
			Ticker:       "MISSING",
			Strike:       105,
			Expiry:       "2026-02-14",
			OptionType:   models.OptionTypeCall,
			RiskFreeRate: 0.05,
		})
		assert.ErrorIs(t, err, models.ErrNoDataFound)
	})

	t.Run("single observation yields insufficient data", func(t *testing.T) {
		_, err := svc.PriceOption(ctx, PriceOptionRequest{
			Ticker:       "THIN",
			Strike:       105,
			Expiry:       "2026-02-14",
			OptionType:   models.OptionTypeCall,
			RiskFreeRate: 0.05,
		})
		assert.ErrorIs(t, err, models.ErrInsufficientData)
	})

	t.Run("unrecognized option type is rejected before fetching", func(t *testing.T) {
		_, err := svc.PriceOption(ctx, PriceOptionRequest{
			Ticker:       "AAPL",
			Strike:       105,
			Expiry:       "2026-02-14",
			OptionType:   "straddle",
			RiskFreeRate: 0.05,
		})
		assert.ErrorIs(t, err, models.ErrUnsupportedOptionType)
	})

	t.Run("unsupported model is rejected", func(t *testing.T) {
		_, err := svc.PriceOption(ctx, PriceOptionRequest{
			Ticker:       "AAPL",
			Strike:       105,
			Expiry:       "2026-02-14",
			OptionType:   models.OptionTypeCall,
			RiskFreeRate: 0.05,
			Model:        "MonteCarlo",
		})
		assert.Error(t, err)
	})

	t.Run("model defaults to black-scholes", func(t *testing.T) {
		result, err := svc.PriceOption(ctx, PriceOptionRequest{
			Ticker:       "AAPL",
			Strike:       105,
			Expiry:       "2026-02-14",
			OptionType:   models.OptionTypeCall,
			RiskFreeRate: 0.05,
		})
		require.NoError(t, err)
		assert.Greater(t, result.Price, 0.0)
	})
}
