package models

import (
	"fmt"
	"strings"
)

type StockSymbol string

func NewStockSymbol(symbol string) (StockSymbol, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", fmt.Errorf("NewStockSymbol: symbol cannot be empty")
	}

	return StockSymbol(symbol), nil
}

func (s StockSymbol) String() string {
	return string(s)
}
