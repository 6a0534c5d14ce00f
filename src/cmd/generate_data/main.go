package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quantgrove/option-pricer/src/models"
)

func transitionJump(probabilityUp, probabilityDown float64, jumpSize float64) float64 {
	if rand.Float64() < probabilityUp {
		return jumpSize
	} else if rand.Float64() < probabilityDown {
		return -jumpSize
	} else {
		return 0
	}
}

func getNextPriceDifference(probabilityCandleUp, volatility float64) float64 {
	if rand.Float64() < probabilityCandleUp {
		return rand.Float64() * volatility
	} else {
		return rand.Float64() * volatility * -1
	}
}

func generateCandle(minStockPrice, open, close, volatility float64, timestamp time.Time) *models.Candle {
	mid := (open + close) / 2

	high := mid + rand.Float64()*volatility
	high = math.Max(high, math.Max(open, close))

	low := mid - rand.Float64()*volatility
	low = math.Min(low, math.Min(open, close))

	if low < minStockPrice {
		low = minStockPrice
	}

	if open < minStockPrice {
		open = minStockPrice
	}

	if close < minStockPrice {
		close = minStockPrice
	}

	if high < minStockPrice {
		high = minStockPrice
	}

	return &models.Candle{
		Timestamp: timestamp,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     close,
		Volume:    rand.Float64() * 1000,
	}
}

func generateSeries(startTime time.Time, durationDays int, initialPrice, minStockPrice, candleVolatility float64) []*models.Candle {
	probabilityTransitionUp := 0.05
	probabilityTransitionDown := 0.1
	probabilityCandleUp := 0.55
	jumpSize := 5.0

	var candles []*models.Candle

	initialDiff := getNextPriceDifference(probabilityCandleUp, candleVolatility)
	candles = append(candles, generateCandle(minStockPrice, initialPrice, initialPrice+initialDiff, candleVolatility, startTime))

	for i := 1; i < durationDays; i++ {
		jump := transitionJump(probabilityTransitionUp, probabilityTransitionDown, jumpSize)
		diff := getNextPriceDifference(probabilityCandleUp, candleVolatility)

		prevClose := candles[len(candles)-1].Close + jump
		candles = append(candles, generateCandle(minStockPrice, prevClose, prevClose+diff, candleVolatility, startTime.AddDate(0, 0, i)))
	}

	return candles
}

var runCmd = &cobra.Command{
	Use:   "generate_data --symbol SIM --days 365 --out ./fixtures",
	Short: "Generate a synthetic daily candle CSV for the csv data provider",
	Run: func(cmd *cobra.Command, args []string) {
		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		days, err := cmd.Flags().GetInt("days")
		if err != nil {
			log.Fatalf("error getting days: %v", err)
		}

		outDir, err := cmd.Flags().GetString("out")
		if err != nil {
			log.Fatalf("error getting out: %v", err)
		}

		initialPrice, err := cmd.Flags().GetFloat64("initial-price")
		if err != nil {
			log.Fatalf("error getting initial-price: %v", err)
		}

		startTime := time.Now().AddDate(0, 0, -days)
		candles := generateSeries(startTime, days, initialPrice, initialPrice/2, initialPrice/100)

		rows := make([]*models.CsvCandleDTO, 0, len(candles))
		for _, c := range candles {
			rows = append(rows, models.NewCsvCandleDTO(c))
		}

		fileName := filepath.Join(outDir, fmt.Sprintf("%s.csv", symbol))

		f, err := os.Create(fileName)
		if err != nil {
			log.Fatalf("error creating %s: %v", fileName, err)
		}

		defer f.Close()

		if err := gocsv.MarshalFile(&rows, f); err != nil {
			log.Fatalf("error writing csv: %v", err)
		}

		log.Infof("wrote %d candles to %s", len(rows), fileName)
	},
}

func main() {
	runCmd.PersistentFlags().String("symbol", "SIM", "The symbol to write the fixture under.")
	runCmd.PersistentFlags().Int("days", 365, "The number of daily candles to generate.")
	runCmd.PersistentFlags().String("out", ".", "The output directory.")
	runCmd.PersistentFlags().Float64("initial-price", 1000.0, "The starting price of the series.")

	runCmd.Execute()
}
