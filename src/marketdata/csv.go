package marketdata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/quantgrove/option-pricer/src/models"
)

// CsvService replays daily candles from <Dir>/<SYMBOL>.csv files. Useful for
// deterministic fixtures in place of a live vendor feed.
type CsvService struct {
	Dir string
}

func NewCsvService(dir string) *CsvService {
	return &CsvService{
		Dir: dir,
	}
}

func (s *CsvService) FetchCandles(ctx context.Context, symbol models.StockSymbol, from, to time.Time) (*models.PriceSeries, error) {
	fileName := filepath.Join(s.Dir, fmt.Sprintf("%s.csv", symbol))

	f, err := os.Open(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("CsvService: FetchCandles: %w: %s", models.ErrNoDataFound, symbol)
		}

		return nil, fmt.Errorf("CsvService: FetchCandles: failed to open %s: %w", fileName, err)
	}

	defer f.Close()

	var rows []*models.CsvCandleDTO
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("CsvService: FetchCandles: failed to unmarshal %s: %w", fileName, err)
	}

	var candles []*models.Candle
	for _, row := range rows {
		candle, err := row.ToModel()
		if err != nil {
			return nil, fmt.Errorf("CsvService: FetchCandles: %w", err)
		}

		if candle.Timestamp.Before(from) || candle.Timestamp.After(to) {
			continue
		}

		candles = append(candles, candle)
	}

	if len(candles) == 0 {
		return nil, fmt.Errorf("CsvService: FetchCandles: %w: %s", models.ErrNoDataFound, symbol)
	}

	series := &models.PriceSeries{
		Symbol:  symbol,
		Candles: candles,
	}

	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("CsvService: FetchCandles: %w", err)
	}

	return series, nil
}
