package models

import (
	"fmt"
	"time"
)

type TradierHistoryDayDTO struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

func (d *TradierHistoryDayDTO) ToModel() (*Candle, error) {
	timestamp, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return nil, fmt.Errorf("TradierHistoryDayDTO: ToModel: failed to parse date %s: %w", d.Date, err)
	}

	return &Candle{
		Timestamp: timestamp,
		Open:      d.Open,
		High:      d.High,
		Low:       d.Low,
		Close:     d.Close,
		Volume:    d.Volume,
	}, nil
}

type TradierMarketsHistoryResponseDTO struct {
	History struct {
		Day []TradierHistoryDayDTO `json:"day"`
	} `json:"history"`
}
