package marketdata

import (
	"context"
	"time"

	"github.com/quantgrove/option-pricer/src/models"
)

// Service is the data-provider boundary. Implementations return a
// chronologically ordered series of daily candles for the symbol, or an error
// wrapping models.ErrNoDataFound when the backend has nothing for it.
type Service interface {
	FetchCandles(ctx context.Context, symbol models.StockSymbol, from, to time.Time) (*models.PriceSeries, error)
}
