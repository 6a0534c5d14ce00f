package models

import (
	"fmt"
	"time"
)

type CsvCandleDTO struct {
	Timestamp string  `csv:"time"`
	Open      float64 `csv:"open"`
	High      float64 `csv:"high"`
	Low       float64 `csv:"low"`
	Close     float64 `csv:"close"`
	Volume    float64 `csv:"volume"`
}

func (c *CsvCandleDTO) ToModel() (*Candle, error) {
	t, err := time.Parse(time.RFC3339, c.Timestamp)
	if err != nil {
		t, err = time.Parse("2006-01-02", c.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("CsvCandleDTO: ToModel: error parsing time %s: %w", c.Timestamp, err)
		}
	}

	return &Candle{
		Timestamp: t,
		Open:      c.Open,
		High:      c.High,
		Low:       c.Low,
		Close:     c.Close,
		Volume:    c.Volume,
	}, nil
}

func NewCsvCandleDTO(c *Candle) *CsvCandleDTO {
	return &CsvCandleDTO{
		Timestamp: c.Timestamp.Format("2006-01-02"),
		Open:      c.Open,
		High:      c.High,
		Low:       c.Low,
		Close:     c.Close,
		Volume:    c.Volume,
	}
}
