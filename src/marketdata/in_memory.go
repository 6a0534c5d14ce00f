package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/quantgrove/option-pricer/src/models"
)

// InMemoryService serves candles from a fixed map, primarily for tests.
type InMemoryService struct {
	series map[models.StockSymbol]*models.PriceSeries
}

func NewInMemoryService(series map[models.StockSymbol]*models.PriceSeries) *InMemoryService {
	if series == nil {
		series = make(map[models.StockSymbol]*models.PriceSeries)
	}

	return &InMemoryService{
		series: series,
	}
}

func (s *InMemoryService) Add(series *models.PriceSeries) {
	s.series[series.Symbol] = series
}

func (s *InMemoryService) FetchCandles(ctx context.Context, symbol models.StockSymbol, from, to time.Time) (*models.PriceSeries, error) {
	stored, found := s.series[symbol]
	if !found {
		return nil, fmt.Errorf("InMemoryService: FetchCandles: %w: %s", models.ErrNoDataFound, symbol)
	}

	var candles []*models.Candle
	for _, c := range stored.Candles {
		if c.Timestamp.Before(from) || c.Timestamp.After(to) {
			continue
		}

		candles = append(candles, c)
	}

	if len(candles) == 0 {
		return nil, fmt.Errorf("InMemoryService: FetchCandles: %w: %s", models.ErrNoDataFound, symbol)
	}

	return &models.PriceSeries{
		Symbol:  symbol,
		Candles: candles,
	}, nil
}
