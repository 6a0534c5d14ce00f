package run

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgrove/option-pricer/src/models"
)

func writeFixture(t *testing.T, dir string, closes []float64) {
	t.Helper()

	now := time.Now()

	var sb strings.Builder
	sb.WriteString("time,open,high,low,close,volume\n")
	for i, c := range closes {
		date := now.AddDate(0, 0, i-len(closes)+1).Format("2006-01-02")
		sb.WriteString(fmt.Sprintf("%s,%v,%v,%v,%v,1000\n", date, c, c, c, c))
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "SIM.csv"), []byte(sb.String()), 0644))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	// noisy head, flat tail of four closes
	writeFixture(t, dir, []float64{100, 110, 100, 110, 100, 100, 100, 100, 100})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pricer.yaml"), []byte("dataProvider: csv\n"), 0644))

	t.Setenv("PROJECTS_DIR", dir)
	t.Setenv("CSV_DATA_DIR", dir)

	expiry := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	ctx := context.Background()

	baseArgs := RunArgs{
		GoEnv:        "development",
		Ticker:       "SIM",
		Strike:       105,
		Expiry:       expiry,
		OptionType:   "call",
		RiskFreeRate: 0.05,
		Model:        "BS",
	}

	t.Run("prices without an env file, whole series by default", func(t *testing.T) {
		args := baseArgs
		args.Window = -1

		result, err := Run(ctx, args)
		require.NoError(t, err)

		assert.Equal(t, models.StockSymbol("SIM"), result.Pricing.Symbol)
		assert.Greater(t, result.Pricing.Volatility, 0.0)
		assert.Greater(t, result.Pricing.Price, 0.0)
	})

	t.Run("window flag overrides the config", func(t *testing.T) {
		args := baseArgs
		args.Window = 3

		// a window of 3 only sees the flat tail, so volatility is zero and
		// the pricer rejects it
		_, err := Run(ctx, args)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}
