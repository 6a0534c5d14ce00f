package marketdata

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgrove/option-pricer/src/models"
)

const fixtureCsv = `time,open,high,low,close,volume
2026-01-05,100,101,99,100.5,1200
2026-01-06,100.5,103,100,102,900
2026-01-07,102,102.5,101,101.5,1100
2026-01-08,101.5,104,101,103.5,1500
`

func TestCsvService(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AAPL.csv"), []byte(fixtureCsv), 0644))

	svc := NewCsvService(dir)
	ctx := context.Background()

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("reads ordered candles from file", func(t *testing.T) {
		series, err := svc.FetchCandles(ctx, "AAPL", from, to)
		require.NoError(t, err)

		assert.Equal(t, 4, series.Len())
		assert.NoError(t, series.Validate())

		last, err := series.LastClose()
		assert.NoError(t, err)
		assert.Equal(t, 103.5, last)
	})

	t.Run("filters by date range", func(t *testing.T) {
		series, err := svc.FetchCandles(ctx, "AAPL", time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 2, series.Len())
	})

	t.Run("missing file yields no data found", func(t *testing.T) {
		_, err := svc.FetchCandles(ctx, "MSFT", from, to)
		assert.ErrorIs(t, err, models.ErrNoDataFound)
	})

	t.Run("empty range yields no data found", func(t *testing.T) {
		_, err := svc.FetchCandles(ctx, "AAPL", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, models.ErrNoDataFound)
	})
}

func TestInMemoryService(t *testing.T) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	series := &models.PriceSeries{
		Symbol: "AAPL",
		Candles: []*models.Candle{
			{Timestamp: start, Close: 100},
			{Timestamp: start.AddDate(0, 0, 1), Close: 101},
			{Timestamp: start.AddDate(0, 0, 2), Close: 102},
		},
	}

	svc := NewInMemoryService(nil)
	svc.Add(series)
	ctx := context.Background()

	t.Run("returns stored candles", func(t *testing.T) {
		got, err := svc.FetchCandles(ctx, "AAPL", start, start.AddDate(0, 0, 7))
		require.NoError(t, err)
		assert.Equal(t, 3, got.Len())
	})

	t.Run("unknown symbol yields no data found", func(t *testing.T) {
		_, err := svc.FetchCandles(ctx, "TSLA", start, start.AddDate(0, 0, 7))
		assert.ErrorIs(t, err, models.ErrNoDataFound)
	})
}
