package marketdata

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	polygonmodels "github.com/polygon-io/client-go/rest/models"
	log "github.com/sirupsen/logrus"

	"github.com/quantgrove/option-pricer/src/models"
)

type PolygonService struct {
	Client *polygon.Client
}

func NewPolygonService(apiKey string) *PolygonService {
	return &PolygonService{
		Client: polygon.New(apiKey),
	}
}

func (s *PolygonService) FetchCandles(ctx context.Context, symbol models.StockSymbol, from, to time.Time) (*models.PriceSeries, error) {
	log.Debugf("fetching polygon daily candles for symbol %s", symbol)

	params := polygonmodels.ListAggsParams{
		Ticker:     symbol.String(),
		Multiplier: 1,
		Timespan:   polygonmodels.Day,
		From:       polygonmodels.Millis(from),
		To:         polygonmodels.Millis(to),
	}.WithOrder(polygonmodels.Asc).WithAdjusted(true)

	iter := s.Client.ListAggs(ctx, params)

	var candles []*models.Candle
	for iter.Next() {
		item := iter.Item()

		candles = append(candles, &models.Candle{
			Timestamp: time.Time(item.Timestamp),
			Open:      item.Open,
			High:      item.High,
			Low:       item.Low,
			Close:     item.Close,
			Volume:    item.Volume,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("PolygonService: FetchCandles: failed to fetch aggregates: %w", err)
	}

	if len(candles) == 0 {
		return nil, fmt.Errorf("PolygonService: FetchCandles: %w: %s", models.ErrNoDataFound, symbol)
	}

	return &models.PriceSeries{
		Symbol:  symbol,
		Candles: candles,
	}, nil
}
