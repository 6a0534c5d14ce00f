package models

import (
	"fmt"
	"time"
)

type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// PriceSeries is a chronologically ordered list of daily candles for a single
// symbol. It is treated as immutable once fetched.
type PriceSeries struct {
	Symbol  StockSymbol `json:"symbol"`
	Candles []*Candle   `json:"candles"`
}

func (p *PriceSeries) Len() int {
	return len(p.Candles)
}

func (p *PriceSeries) Closes() []float64 {
	closes := make([]float64, 0, len(p.Candles))
	for _, c := range p.Candles {
		closes = append(closes, c.Close)
	}

	return closes
}

func (p *PriceSeries) LastClose() (float64, error) {
	if len(p.Candles) == 0 {
		return 0, fmt.Errorf("PriceSeries: LastClose: %w: %s", ErrNoDataFound, p.Symbol)
	}

	return p.Candles[len(p.Candles)-1].Close, nil
}

// Validate checks chronological ordering. Downstream computations assume the
// series is sorted oldest to newest.
func (p *PriceSeries) Validate() error {
	for i := 1; i < len(p.Candles); i++ {
		if p.Candles[i].Timestamp.Before(p.Candles[i-1].Timestamp) {
			return fmt.Errorf("PriceSeries: Validate: candles out of order at index %d", i)
		}
	}

	return nil
}
