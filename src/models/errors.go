package models

import "fmt"

var (
	ErrNoDataFound           = fmt.Errorf("no data found for symbol")
	ErrInvalidExpiry         = fmt.Errorf("expiry date must be in the future")
	ErrInsufficientData      = fmt.Errorf("not enough price observations")
	ErrInvalidInput          = fmt.Errorf("invalid numeric input")
	ErrUnsupportedOptionType = fmt.Errorf("unsupported option type")
)
