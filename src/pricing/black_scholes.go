package pricing

import (
	"fmt"
	"math"

	"github.com/quantgrove/option-pricer/src/models"
)

// normCDF is the standard normal cumulative distribution function. Using the
// error function keeps absolute precision well below 1e-8 for |x| < 10.
func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

func normPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

// BlackScholes evaluates the closed-form price of a European option together
// with its Greeks. Vega and Rho are per one percentage point, Theta is per
// calendar day.
func BlackScholes(req models.PricingRequest) (float64, models.Greeks, error) {
	if err := req.Validate(); err != nil {
		return 0, models.Greeks{}, fmt.Errorf("BlackScholes: %w", err)
	}

	S := req.Spot
	K := req.Strike
	T := req.TimeToMaturity
	r := req.RiskFreeRate
	sigma := req.Volatility

	d1 := (math.Log(S/K) + (r+sigma*sigma/2)*T) / (sigma * math.Sqrt(T))
	d2 := d1 - sigma*math.Sqrt(T)

	discount := math.Exp(-r * T)

	var price float64
	var greeks models.Greeks

	greeks.Gamma = normPDF(d1) / (S * sigma * math.Sqrt(T))
	greeks.Vega = S * math.Sqrt(T) * normPDF(d1) / 100

	switch req.OptionType {
	case models.OptionTypeCall:
		price = S*normCDF(d1) - K*discount*normCDF(d2)
		greeks.Delta = normCDF(d1)
		greeks.Theta = (-S*sigma*normPDF(d1)/(2*math.Sqrt(T)) - r*K*discount*normCDF(d2)) / 365
		greeks.Rho = T * K * discount * normCDF(d2) / 100
	case models.OptionTypePut:
		price = K*discount*normCDF(-d2) - S*normCDF(-d1)
		greeks.Delta = normCDF(d1) - 1
		greeks.Theta = (-S*sigma*normPDF(d1)/(2*math.Sqrt(T)) + r*K*discount*normCDF(-d2)) / 365
		greeks.Rho = -T * K * discount * normCDF(-d2) / 100
	default:
		// unreachable once Validate passes
		return 0, models.Greeks{}, fmt.Errorf("BlackScholes: %w: %s", models.ErrUnsupportedOptionType, req.OptionType)
	}

	return price, greeks, nil
}
