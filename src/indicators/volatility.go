package indicators

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/quantgrove/option-pricer/src/models"
)

type HistoricalVolatility struct {
	Window             int // most recent closes used for returns; 0 means the whole series
	TradingDaysPerYear int
}

func NewHistoricalVolatility(window, tradingDaysPerYear int) *HistoricalVolatility {
	return &HistoricalVolatility{
		Window:             window,
		TradingDaysPerYear: tradingDaysPerYear,
	}
}

// Estimate returns the annualized sample standard deviation of daily log
// returns. A sample standard deviation needs at least two returns, hence at
// least three closes.
func (h *HistoricalVolatility) Estimate(series *models.PriceSeries) (float64, error) {
	closes := series.Closes()

	if h.Window > 0 && len(closes) > h.Window+1 {
		closes = closes[len(closes)-(h.Window+1):]
	}

	if len(closes) < 2 {
		return 0, fmt.Errorf("HistoricalVolatility: Estimate: %w: got %d closes, need at least 2", models.ErrInsufficientData, len(closes))
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return 0, fmt.Errorf("HistoricalVolatility: Estimate: %w: non-positive close at index %d", models.ErrInvalidInput, i)
		}

		returns = append(returns, math.Log(closes[i]/closes[i-1]))
	}

	if len(returns) < 2 {
		return 0, fmt.Errorf("HistoricalVolatility: Estimate: %w: got %d returns, need at least 2", models.ErrInsufficientData, len(returns))
	}

	sd, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, fmt.Errorf("HistoricalVolatility: Estimate: failed to calculate the standard deviation: %v", err)
	}

	return sd * math.Sqrt(float64(h.TradingDaysPerYear)), nil
}
